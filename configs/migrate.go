package configs

import (
	"time"

	gormigrate "github.com/go-gormigrate/gormigrate/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var migrations = []*gormigrate.Migration{
	// dishes table, unique on name so create-or-replace can upsert atomically
	{
		ID: "202410150001",
		Migrate: func(tx *gorm.DB) error {
			type Dish struct {
				ID        uint            `gorm:"primaryKey"`
				Name      string          `gorm:"size:255;not null;uniqueIndex"`
				Price     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
				Photo     []byte
				CreatedAt time.Time
				UpdatedAt time.Time
			}
			return tx.AutoMigrate(&Dish{})
		},
		Rollback: func(tx *gorm.DB) error {
			return tx.Migrator().DropTable("dishes")
		},
	},
	{
		ID: "202410150002",
		Migrate: func(tx *gorm.DB) error {
			type Dish struct {
				PhotoType string `gorm:"size:64"`
			}
			return tx.Migrator().AddColumn(&Dish{}, "PhotoType")
		},
		Rollback: func(tx *gorm.DB) error {
			type Dish struct {
				PhotoType string `gorm:"size:64"`
			}
			return tx.Migrator().DropColumn(&Dish{}, "PhotoType")
		},
	},
}

func migrator(db *gorm.DB) *gormigrate.Gormigrate {
	return gormigrate.New(db, gormigrate.DefaultOptions, migrations)
}

// SetupDatabase applies every pending migration.
func SetupDatabase(db *gorm.DB) error {
	return migrator(db).Migrate()
}

// RollbackLast undoes the most recent migration.
func RollbackLast(db *gorm.DB) error {
	return migrator(db).RollbackLast()
}
