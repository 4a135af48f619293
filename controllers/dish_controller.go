package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/capDAOIZ/api-mario/pkg/resp"
	"github.com/capDAOIZ/api-mario/services"
	"github.com/capDAOIZ/api-mario/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

const maxMultipartMemory = 8 << 20

type DishController struct {
	dishService *services.DishService
}

func NewDishController(s *services.DishService) *DishController {
	return &DishController{dishService: s}
}

// dishPayload is the create-or-replace response shape: photo as bare base64.
type dishPayload struct {
	ID        uint            `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Photo     *string         `json:"photo"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// GET /dishes?min_price=&max_price=
func (ctl *DishController) List(c *gin.Context) {
	minRaw := optionalQuery(c, "min_price")
	maxRaw := optionalQuery(c, "max_price")
	if verr := services.ValidatePriceFilters(minRaw, maxRaw); verr != nil {
		resp.Unprocessable(c, verr.Fields)
		return
	}

	var f services.DishFilter
	if minRaw != nil {
		d := decimal.RequireFromString(*minRaw)
		f.MinPrice = &d
	}
	if maxRaw != nil {
		d := decimal.RequireFromString(*maxRaw)
		f.MaxPrice = &d
	}

	dishes, err := ctl.dishService.List(c.Request.Context(), f)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, dishes)
}

// POST /dishes
func (ctl *DishController) CreateOrReplace(c *gin.Context) {
	in := readDishInput(c)
	dish, err := ctl.dishService.CreateOrReplace(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.Created(c, "Dish created successfully.", "dish", dishPayload{
		ID:        dish.ID,
		Name:      dish.Name,
		Price:     dish.Price,
		Photo:     utils.ToWire(dish.Photo),
		CreatedAt: dish.CreatedAt,
		UpdatedAt: dish.UpdatedAt,
	})
}

// GET /dishes/:id
func (ctl *DishController) Get(c *gin.Context) {
	id, ok := dishID(c)
	if !ok {
		return
	}

	dish, err := ctl.dishService.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, gin.H{
		"id":    dish.ID,
		"name":  dish.Name,
		"price": dish.Price,
		"photo": utils.ToDataURI(dish.Photo),
	})
}

// PUT /dishes/:id
func (ctl *DishController) Update(c *gin.Context) {
	id, ok := dishID(c)
	if !ok {
		return
	}

	in := readDishInput(c)
	dish, err := ctl.dishService.Update(c.Request.Context(), id, in)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.Updated(c, "Dish updated successfully.", "dish", dish)
}

// DELETE /dishes/:id
func (ctl *DishController) Delete(c *gin.Context) {
	id, ok := dishID(c)
	if !ok {
		return
	}

	if err := ctl.dishService.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	resp.Message(c, "Dish deleted")
}

// GET /dishes/:id/photo
func (ctl *DishController) Photo(c *gin.Context) {
	id, ok := dishID(c)
	if !ok {
		return
	}

	data, contentType, err := ctl.dishService.Photo(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Data(http.StatusOK, contentType, data)
}

func writeError(c *gin.Context, err error) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		resp.Unprocessable(c, verr.Fields)
	case errors.Is(err, services.ErrDishNotFound):
		resp.NotFound(c, "Dish not found")
	case errors.Is(err, services.ErrPhotoNotFound):
		resp.NotFound(c, "Photo not found")
	default:
		resp.ServerError(c, err)
	}
}

// ids that do not parse cannot exist, so they are reported as not found
func dishID(c *gin.Context) (uint, bool) {
	n, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || n == 0 {
		resp.NotFound(c, "Dish not found")
		return 0, false
	}
	return uint(n), true
}

func optionalQuery(c *gin.Context, key string) *string {
	v, ok := c.GetQuery(key)
	v = strings.TrimSpace(v)
	if !ok || v == "" {
		return nil
	}
	return &v
}

// readDishInput accepts JSON (photo as base64 or data URI), urlencoded and
// multipart bodies (photo as file). A body that cannot be parsed reads as
// empty input, so validation decides the response.
func readDishInput(c *gin.Context) services.DishInput {
	if c.ContentType() == gin.MIMEJSON {
		return readJSONInput(c)
	}
	return readFormInput(c)
}

func readFormInput(c *gin.Context) services.DishInput {
	var in services.DishInput
	if c.ContentType() == gin.MIMEMultipartPOSTForm {
		if err := c.Request.ParseMultipartForm(maxMultipartMemory); err != nil {
			return in
		}
	}

	if v, ok := c.GetPostForm("name"); ok {
		in.Name = trimmed(v)
	}
	if v, ok := c.GetPostForm("price"); ok {
		in.Price = trimmed(v)
	}

	fh, err := c.FormFile("photo")
	if err == nil {
		in.PhotoPresent = true
		// an unreadable file fails the image rule
		if data, err := utils.ReadUpload(fh, services.MaxPhotoBytes); err == nil {
			in.Photo = &services.PhotoUpload{Filename: fh.Filename, Size: fh.Size, Data: data}
		}
		return in
	}
	if _, ok := c.GetPostForm("photo"); ok {
		in.PhotoPresent = true
	}
	return in
}

func readJSONInput(c *gin.Context) services.DishInput {
	var in services.DishInput
	body := map[string]any{}
	dec := json.NewDecoder(c.Request.Body)
	dec.UseNumber()
	if err := dec.Decode(&body); err != nil {
		return in
	}

	if v, ok := body["name"]; ok {
		in.Name = trimmed(cast.ToString(v))
	}
	if v, ok := body["price"]; ok {
		in.Price = trimmed(jsonPrice(v))
	}
	if v, ok := body["photo"]; ok {
		in.PhotoPresent = true
		if s, ok := v.(string); ok {
			if data, err := utils.DecodeBase64Image(s); err == nil {
				in.Photo = &services.PhotoUpload{Size: int64(len(data)), Data: data}
			}
		}
	}
	return in
}

// jsonPrice writes JSON numbers in plain decimal form, so 1e-07 becomes 0.0000001.
func jsonPrice(v any) string {
	if n, ok := v.(json.Number); ok {
		if d, err := decimal.NewFromString(n.String()); err == nil {
			return d.String()
		}
	}
	return cast.ToString(v)
}

func trimmed(s string) *string {
	s = strings.TrimSpace(s)
	return &s
}
