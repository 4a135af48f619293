// services/dish_service.go
package services

import (
	"context"
	"errors"

	"github.com/capDAOIZ/api-mario/entity"
	"github.com/capDAOIZ/api-mario/repository"
	"github.com/capDAOIZ/api-mario/utils"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type DishFilter struct {
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
}

type DishService struct {
	Repo *repository.DishRepository
	Log  *zap.Logger
}

func NewDishService(repo *repository.DishRepository, log *zap.Logger) *DishService {
	if log == nil {
		log = zap.NewNop()
	}
	return &DishService{Repo: repo, Log: log}
}

func (s *DishService) List(ctx context.Context, f DishFilter) ([]entity.Dish, error) {
	return s.Repo.FindAll(ctx, f.MinPrice, f.MaxPrice)
}

// CreateOrReplace creates the dish, or overwrites price and photo of the
// dish with the same name. Without an upload the photo becomes NULL, also
// on the overwrite branch.
func (s *DishService) CreateOrReplace(ctx context.Context, in DishInput) (*entity.Dish, error) {
	if verr := ValidateDish(in, ModeCreateOrUpdate); verr != nil {
		return nil, verr
	}

	dish, err := s.createOrReplace(ctx, in)
	if err != nil {
		s.Log.Error("create or replace dish failed", zap.Stringp("name", in.Name), zap.Error(err))
		return nil, &UnexpectedError{Err: err}
	}
	s.Log.Info("dish stored", zap.Uint("id", dish.ID), zap.String("name", dish.Name))
	return dish, nil
}

func (s *DishService) createOrReplace(ctx context.Context, in DishInput) (*entity.Dish, error) {
	price, err := decimal.NewFromString(*in.Price)
	if err != nil {
		return nil, err
	}

	dish := &entity.Dish{Name: *in.Name, Price: price}
	if in.Photo != nil {
		dish.Photo = in.Photo.Data
		dish.PhotoType = utils.DetectPhotoType(in.Photo.Data)
	}
	return s.Repo.UpsertByName(ctx, dish)
}

func (s *DishService) Get(ctx context.Context, id uint) (*entity.Dish, error) {
	dish, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDishNotFound
		}
		return nil, err
	}
	return dish, nil
}

// Update replaces only the fields that were sent. The photo is kept unless
// a new one is uploaded.
func (s *DishService) Update(ctx context.Context, id uint, in DishInput) (*entity.Dish, error) {
	dish, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if verr := ValidateDish(in, ModePartialUpdate); verr != nil {
		return nil, verr
	}

	if in.Name != nil {
		dish.Name = *in.Name
	}
	if in.Price != nil {
		price, err := decimal.NewFromString(*in.Price)
		if err != nil {
			return nil, err
		}
		dish.Price = price
	}
	if in.Photo != nil {
		dish.Photo = in.Photo.Data
		dish.PhotoType = utils.DetectPhotoType(in.Photo.Data)
	}

	if err := s.Repo.Update(ctx, dish); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			verr := &ValidationError{}
			verr.add("name", "The name has already been taken.")
			return nil, verr
		}
		return nil, err
	}
	s.Log.Info("dish updated", zap.Uint("id", dish.ID))
	return dish, nil
}

func (s *DishService) Delete(ctx context.Context, id uint) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		// gone between lookup and delete
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDishNotFound
		}
		return err
	}
	s.Log.Info("dish deleted", zap.Uint("id", id))
	return nil
}

// Photo returns the stored bytes and their detected MIME type.
func (s *DishService) Photo(ctx context.Context, id uint) ([]byte, string, error) {
	dish, err := s.Get(ctx, id)
	if err != nil {
		return nil, "", err
	}
	if dish.Photo == nil {
		return nil, "", ErrPhotoNotFound
	}
	contentType := dish.PhotoType
	if contentType == "" {
		contentType = utils.DetectPhotoType(dish.Photo)
	}
	return dish.Photo, contentType, nil
}
