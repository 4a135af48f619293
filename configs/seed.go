package configs

import (
	"context"

	"github.com/capDAOIZ/api-mario/entity"
	"github.com/capDAOIZ/api-mario/repository"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var demoDishes = []struct {
	Name  string
	Price string
}{
	{"Pizza", "12.50"},
	{"Paella", "18.00"},
	{"Gazpacho", "6.75"},
}

// SeedDishes adds a few demo dishes; names that already exist are skipped.
func SeedDishes(ctx context.Context, db *gorm.DB, log *zap.Logger) error {
	repo := repository.NewDishRepository(db)
	for _, d := range demoDishes {
		dish := entity.Dish{Name: d.Name, Price: decimal.RequireFromString(d.Price)}
		if err := repo.FirstOrCreate(ctx, &dish); err != nil {
			return err
		}
	}
	log.Info("demo dishes seeded", zap.Int("count", len(demoDishes)))
	return nil
}
