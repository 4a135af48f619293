// services/dish_validation.go
package services

import (
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

type Mode int

const (
	ModeCreate Mode = iota
	ModeCreateOrUpdate
	ModePartialUpdate
)

const (
	MaxNameLength = 255
	MaxPhotoKB    = 2048
	MaxPhotoBytes = MaxPhotoKB * 1024
)

// what the "image" rule accepts
var imageTypes = []string{"image/jpeg", "image/png", "image/gif", "image/bmp", "image/svg+xml", "image/webp"}

// jpeg, png, jpg, svg
var photoTypes = []string{"image/jpeg", "image/png", "image/svg+xml"}

var validate = newValidator()

// "decimal" accepts whatever the price column type can parse, exponents included.
func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("decimal", func(fl validator.FieldLevel) bool {
		_, err := decimal.NewFromString(fl.Field().String())
		return err == nil
	})
	return v
}

// PhotoUpload is a received file. Size is the declared upload size; Data may
// be cut short for files larger than MaxPhotoBytes.
type PhotoUpload struct {
	Filename string
	Size     int64
	Data     []byte
}

// DishInput holds the raw request fields. A nil pointer means the field was
// not sent at all.
type DishInput struct {
	Name  *string
	Price *string
	Photo *PhotoUpload
	// set when a "photo" key was sent, file or not
	PhotoPresent bool
}

func (in DishInput) hasPhoto() bool {
	return in.PhotoPresent || in.Photo != nil
}

// ValidateDish checks every field and returns all violations at once, or nil.
func ValidateDish(in DishInput, mode Mode) *ValidationError {
	verr := &ValidationError{}
	partial := mode == ModePartialUpdate

	switch {
	case in.Name == nil || (!partial && *in.Name == ""):
		if !partial {
			verr.add("name", msgRequired("name"))
		}
	case *in.Name == "":
		verr.add("name", fmt.Sprintf("The %s field must be a string.", label("name")))
	case !passes(*in.Name, fmt.Sprintf("max=%d", MaxNameLength)):
		verr.add("name", fmt.Sprintf("The %s field must not be greater than %d characters.", label("name"), MaxNameLength))
	}

	switch {
	case in.Price == nil || (!partial && *in.Price == ""):
		if !partial {
			verr.add("price", msgRequired("price"))
		}
	case !passes(*in.Price, "decimal"):
		verr.add("price", msgNumeric("price"))
	}

	if in.hasPhoto() {
		validatePhoto(verr, in.Photo)
	}

	if verr.empty() {
		return nil
	}
	return verr
}

// ValidatePriceFilters checks the optional list bounds.
func ValidatePriceFilters(minPrice, maxPrice *string) *ValidationError {
	verr := &ValidationError{}
	if minPrice != nil && !passes(*minPrice, "decimal") {
		verr.add("min_price", msgNumeric("min_price"))
	}
	if maxPrice != nil && !passes(*maxPrice, "decimal") {
		verr.add("max_price", msgNumeric("max_price"))
	}
	if verr.empty() {
		return nil
	}
	return verr
}

func validatePhoto(verr *ValidationError, p *PhotoUpload) {
	if p == nil {
		verr.add("photo", fmt.Sprintf("The %s field must be an image.", label("photo")))
		verr.add("photo", msgPhotoTypes())
		return
	}

	mt := mimetype.Detect(p.Data)
	if !mimetype.EqualsAny(mt.String(), imageTypes...) {
		verr.add("photo", fmt.Sprintf("The %s field must be an image.", label("photo")))
	}
	if !mimetype.EqualsAny(mt.String(), photoTypes...) {
		verr.add("photo", msgPhotoTypes())
	}

	size := p.Size
	if size == 0 {
		size = int64(len(p.Data))
	}
	if size > MaxPhotoBytes {
		verr.add("photo", fmt.Sprintf("The %s field must not be greater than %d kilobytes.", label("photo"), MaxPhotoKB))
	}
}

func passes(v any, tag string) bool {
	return validate.Var(v, tag) == nil
}

func label(field string) string {
	return strings.ReplaceAll(field, "_", " ")
}

func msgRequired(field string) string {
	return fmt.Sprintf("The %s field is required.", label(field))
}

func msgNumeric(field string) string {
	return fmt.Sprintf("The %s field must be a number.", label(field))
}

func msgPhotoTypes() string {
	return fmt.Sprintf("The %s field must be a file of type: jpeg, png, jpg, svg.", label("photo"))
}
