package services_test

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/capDAOIZ/api-mario/configs"
	"github.com/capDAOIZ/api-mario/repository"
	"github.com/capDAOIZ/api-mario/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(1, 1, color.RGBA{G: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func newTestService(t *testing.T) *services.DishService {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, configs.SetupDatabase(db))

	return services.NewDishService(repository.NewDishRepository(db), zap.NewNop())
}

func TestCreateOrReplace_CreatesWithoutPhoto(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	dish, err := svc.CreateOrReplace(ctx, services.DishInput{Name: ptr("Pizza"), Price: ptr("12.50")})
	require.NoError(t, err)
	require.NotZero(t, dish.ID)
	require.Equal(t, "Pizza", dish.Name)
	require.True(t, decimal.RequireFromString("12.5").Equal(dish.Price))
	require.Nil(t, dish.Photo)

	other, err := svc.CreateOrReplace(ctx, services.DishInput{Name: ptr("Paella"), Price: ptr("18")})
	require.NoError(t, err)
	require.NotEqual(t, dish.ID, other.ID)
}

func TestCreateOrReplace_SameNameUpdatesInPlaceAndDropsPhoto(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	img := pngBytes(t)

	first, err := svc.CreateOrReplace(ctx, services.DishInput{
		Name:  ptr("Pizza"),
		Price: ptr("10"),
		Photo: &services.PhotoUpload{Filename: "pizza.png", Data: img},
	})
	require.NoError(t, err)
	require.Equal(t, img, first.Photo)
	require.Equal(t, "image/png", first.PhotoType)

	second, err := svc.CreateOrReplace(ctx, services.DishInput{Name: ptr("Pizza"), Price: ptr("11.25")})
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)
	require.True(t, decimal.RequireFromString("11.25").Equal(second.Price))
	require.Nil(t, second.Photo)
	require.Empty(t, second.PhotoType)

	all, err := svc.List(ctx, services.DishFilter{})
	require.NoError(t, err)
	require.Len(t, all, 1)
}

func TestCreateOrReplace_ReplacesPhotoWhenGiven(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	svg := []byte(`<svg xmlns="http://www.w3.org/2000/svg" width="1" height="1"></svg>`)

	first, err := svc.CreateOrReplace(ctx, services.DishInput{
		Name: ptr("Pizza"), Price: ptr("10"), Photo: &services.PhotoUpload{Data: pngBytes(t)},
	})
	require.NoError(t, err)

	second, err := svc.CreateOrReplace(ctx, services.DishInput{
		Name: ptr("Pizza"), Price: ptr("10"), Photo: &services.PhotoUpload{Data: svg},
	})
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)
	require.Equal(t, svg, second.Photo)
	require.Equal(t, "image/svg+xml", second.PhotoType)
}

func TestCreateOrReplace_ValidationReportsAllFields(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.CreateOrReplace(context.Background(), services.DishInput{Photo: &services.PhotoUpload{Data: []byte("nope")}})
	var verr *services.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Contains(t, verr.Fields, "name")
	require.Contains(t, verr.Fields, "price")
	require.Contains(t, verr.Fields, "photo")
}

func TestCreateOrReplace_StoreFailureIsUnexpected(t *testing.T) {
	svc := newTestService(t)
	sqlDB, err := svc.Repo.DB.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	_, err = svc.CreateOrReplace(context.Background(), services.DishInput{Name: ptr("Pizza"), Price: ptr("1")})
	var uerr *services.UnexpectedError
	require.ErrorAs(t, err, &uerr)
	require.NotEmpty(t, uerr.Error())
}

func TestList_FiltersByPriceInclusive(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	for name, price := range map[string]string{"Soup": "10", "Steak": "50", "Salad": "20"} {
		_, err := svc.CreateOrReplace(ctx, services.DishInput{Name: ptr(name), Price: ptr(price)})
		require.NoError(t, err)
	}

	twenty := decimal.NewFromInt(20)
	fifty := decimal.NewFromInt(50)

	got, err := svc.List(ctx, services.DishFilter{MinPrice: &twenty})
	require.NoError(t, err)
	require.Len(t, got, 2)

	got, err = svc.List(ctx, services.DishFilter{MinPrice: &twenty, MaxPrice: &twenty})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "Salad", got[0].Name)

	got, err = svc.List(ctx, services.DishFilter{MaxPrice: &fifty})
	require.NoError(t, err)
	require.Len(t, got, 3)
	for i := 1; i < len(got); i++ {
		require.Less(t, got[i-1].ID, got[i].ID)
	}
}

func TestGet_NotFound(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.Get(context.Background(), 42)
	require.ErrorIs(t, err, services.ErrDishNotFound)
}

func TestUpdate_PriceOnlyKeepsNameAndPhoto(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	img := pngBytes(t)

	created, err := svc.CreateOrReplace(ctx, services.DishInput{
		Name: ptr("Pizza"), Price: ptr("10"), Photo: &services.PhotoUpload{Data: img},
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, services.DishInput{Price: ptr("15.75")})
	require.NoError(t, err)
	require.Equal(t, "Pizza", updated.Name)
	require.Equal(t, img, updated.Photo)
	require.True(t, decimal.RequireFromString("15.75").Equal(updated.Price))

	stored, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "Pizza", stored.Name)
	require.Equal(t, img, stored.Photo)
	require.True(t, decimal.RequireFromString("15.75").Equal(stored.Price))
}

func TestUpdate_NewPhotoAndName(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	created, err := svc.CreateOrReplace(ctx, services.DishInput{Name: ptr("Pizza"), Price: ptr("10")})
	require.NoError(t, err)

	img := pngBytes(t)
	updated, err := svc.Update(ctx, created.ID, services.DishInput{Name: ptr("Calzone"), Photo: &services.PhotoUpload{Data: img}})
	require.NoError(t, err)
	require.Equal(t, "Calzone", updated.Name)
	require.Equal(t, img, updated.Photo)
	require.True(t, decimal.NewFromInt(10).Equal(updated.Price))
}

func TestUpdate_NotFoundBeforeValidation(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.Update(context.Background(), 7, services.DishInput{Price: ptr("free")})
	require.ErrorIs(t, err, services.ErrDishNotFound)
}

func TestUpdate_InvalidFieldsChangeNothing(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	created, err := svc.CreateOrReplace(ctx, services.DishInput{Name: ptr("Pizza"), Price: ptr("10")})
	require.NoError(t, err)

	_, err = svc.Update(ctx, created.ID, services.DishInput{Name: ptr("Calzone"), Price: ptr("free")})
	var verr *services.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Contains(t, verr.Fields, "price")

	stored, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "Pizza", stored.Name)
}

func TestUpdate_TakenNameIsValidationError(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	_, err := svc.CreateOrReplace(ctx, services.DishInput{Name: ptr("Pizza"), Price: ptr("10")})
	require.NoError(t, err)
	soup, err := svc.CreateOrReplace(ctx, services.DishInput{Name: ptr("Soup"), Price: ptr("5")})
	require.NoError(t, err)

	_, err = svc.Update(ctx, soup.ID, services.DishInput{Name: ptr("Pizza")})
	var verr *services.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, []string{"The name has already been taken."}, verr.Fields["name"])
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	require.ErrorIs(t, svc.Delete(ctx, 1), services.ErrDishNotFound)

	created, err := svc.CreateOrReplace(ctx, services.DishInput{Name: ptr("Pizza"), Price: ptr("10")})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.Get(ctx, created.ID)
	require.ErrorIs(t, err, services.ErrDishNotFound)
	require.ErrorIs(t, svc.Delete(ctx, created.ID), services.ErrDishNotFound)

	// a deleted name can be created again
	_, err = svc.CreateOrReplace(ctx, services.DishInput{Name: ptr("Pizza"), Price: ptr("10")})
	require.NoError(t, err)
}

func TestPhoto(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	plain, err := svc.CreateOrReplace(ctx, services.DishInput{Name: ptr("Soup"), Price: ptr("5")})
	require.NoError(t, err)
	_, _, err = svc.Photo(ctx, plain.ID)
	require.ErrorIs(t, err, services.ErrPhotoNotFound)

	img := pngBytes(t)
	withPhoto, err := svc.CreateOrReplace(ctx, services.DishInput{Name: ptr("Pizza"), Price: ptr("5"), Photo: &services.PhotoUpload{Data: img}})
	require.NoError(t, err)
	data, contentType, err := svc.Photo(ctx, withPhoto.ID)
	require.NoError(t, err)
	require.Equal(t, img, data)
	require.Equal(t, "image/png", contentType)
}
