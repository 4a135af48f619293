package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type Dish struct {
	ID    uint            `gorm:"primaryKey" json:"id"`
	Name  string          `gorm:"size:255;not null;uniqueIndex" json:"name"`
	Price decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`

	// nil = NULL; raw file content, never the encoded upload
	Photo     []byte `json:"photo"`
	PhotoType string `gorm:"size:64" json:"-"` // e.g. "image/png"

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Dish) TableName() string {
	return "dishes"
}
