// repository/dish_repository.go
package repository

import (
	"context"

	"github.com/capDAOIZ/api-mario/entity"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DishRepository struct {
	DB *gorm.DB
}

func NewDishRepository(db *gorm.DB) *DishRepository {
	return &DishRepository{DB: db}
}

// FindAll returns dishes in id order, optionally bounded by price (inclusive).
func (r *DishRepository) FindAll(ctx context.Context, minPrice, maxPrice *decimal.Decimal) ([]entity.Dish, error) {
	q := r.DB.WithContext(ctx).Model(&entity.Dish{})
	if minPrice != nil {
		q = q.Where("price >= ?", *minPrice)
	}
	if maxPrice != nil {
		q = q.Where("price <= ?", *maxPrice)
	}

	dishes := []entity.Dish{}
	if err := q.Order("id ASC").Find(&dishes).Error; err != nil {
		return nil, errors.Wrap(err, "find dishes")
	}
	return dishes, nil
}

// FindByID returns gorm.ErrRecordNotFound (wrapped) when there is no such row.
func (r *DishRepository) FindByID(ctx context.Context, id uint) (*entity.Dish, error) {
	var dish entity.Dish
	if err := r.DB.WithContext(ctx).First(&dish, id).Error; err != nil {
		return nil, errors.Wrapf(err, "find dish %d", id)
	}
	return &dish, nil
}

func (r *DishRepository) FindByName(ctx context.Context, name string) (*entity.Dish, error) {
	var dish entity.Dish
	if err := r.DB.WithContext(ctx).Where("name = ?", name).First(&dish).Error; err != nil {
		return nil, errors.Wrapf(err, "find dish %q", name)
	}
	return &dish, nil
}

// UpsertByName inserts the dish or, when the name already exists, overwrites
// price and photo of that row in place. The conflict is resolved by the
// unique index on name, so concurrent upserts of one name cannot duplicate it.
func (r *DishRepository) UpsertByName(ctx context.Context, dish *entity.Dish) (*entity.Dish, error) {
	var out entity.Dish
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := entity.Dish{
			Name:      dish.Name,
			Price:     dish.Price,
			Photo:     dish.Photo,
			PhotoType: dish.PhotoType,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"price", "photo", "photo_type", "updated_at"}),
		}).Create(&row).Error; err != nil {
			return err
		}
		// the id reported for the conflict branch varies by driver; read it back
		return tx.Where("name = ?", dish.Name).First(&out).Error
	})
	if err != nil {
		return nil, errors.Wrapf(err, "upsert dish %q", dish.Name)
	}
	return &out, nil
}

func (r *DishRepository) Update(ctx context.Context, dish *entity.Dish) error {
	if err := r.DB.WithContext(ctx).Save(dish).Error; err != nil {
		return errors.Wrapf(err, "update dish %d", dish.ID)
	}
	return nil
}

func (r *DishRepository) Delete(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&entity.Dish{}, id)
	if res.Error != nil {
		return errors.Wrapf(res.Error, "delete dish %d", id)
	}
	if res.RowsAffected == 0 {
		return errors.Wrapf(gorm.ErrRecordNotFound, "delete dish %d", id)
	}
	return nil
}

// FirstOrCreate is used by seeding; an existing name is left untouched.
func (r *DishRepository) FirstOrCreate(ctx context.Context, dish *entity.Dish) error {
	if err := r.DB.WithContext(ctx).Where(entity.Dish{Name: dish.Name}).FirstOrCreate(dish).Error; err != nil {
		return errors.Wrapf(err, "seed dish %q", dish.Name)
	}
	return nil
}
