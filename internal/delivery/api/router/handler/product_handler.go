package handler

import (
	"net/http"
	"strconv"
	"time"

	"swapmarket/internal/delivery/api/response"
	"swapmarket/internal/domain/entity"
	domainerrors "swapmarket/internal/domain/errors"
	"swapmarket/internal/market"
	"swapmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	Facade *market.Facade
}

// ProductHandler serves listings. Reads are public.
type ProductHandler struct {
	facade *market.Facade
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{facade: params.Facade}
}

// CreateProductRequest is the body of POST /products
type CreateProductRequest struct {
	Name        string           `json:"name" validate:"required,max=200"`
	Description *string          `json:"description" validate:"omitempty,max=2000"`
	Price       *decimal.Decimal `json:"price" validate:"required"`
	Category    string           `json:"category" validate:"required,category"`
	Location    *string          `json:"location" validate:"omitempty,max=200"`
	ImageURL    *string          `json:"image_url" validate:"omitempty,url"`
}

// UpdateProductRequest is the body of PATCH /products/:id. Absent fields are left untouched.
type UpdateProductRequest struct {
	Name              *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description       *string          `json:"description" validate:"omitempty,max=2000"`
	Price             *decimal.Decimal `json:"price"`
	Category          *string          `json:"category" validate:"omitempty,category"`
	Location          *string          `json:"location" validate:"omitempty,max=200"`
	Status            *string          `json:"status" validate:"omitempty,product_status"`
	ImageURL          *string          `json:"image_url" validate:"omitempty,url"`
	ExpectedUpdatedAt *time.Time       `json:"expected_updated_at"`
}

func (r *UpdateProductRequest) toUpdate() entity.ProductUpdate {
	update := entity.ProductUpdate{
		Name:              r.Name,
		Description:       r.Description,
		Price:             r.Price,
		Location:          r.Location,
		ImageURL:          r.ImageURL,
		ExpectedUpdatedAt: r.ExpectedUpdatedAt,
	}
	if r.Category != nil {
		category := entity.Category(*r.Category)
		update.Category = &category
	}
	if r.Status != nil {
		status := entity.ProductStatus(*r.Status)
		update.Status = &status
	}

	return update
}

// ImageUploadResponse carries the public URL of a stored image.
type ImageUploadResponse struct {
	URL string `json:"url"`
}

// ListProducts supports ?category=, ?owner_id=, ?status= and ?limit=.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	filter, err := productFilter(c)
	if err != nil {
		return err
	}

	products, err := h.facade.Catalog().ListProducts(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, products)
}

func productFilter(c echo.Context) (entity.ProductFilter, error) {
	filter := entity.ProductFilter{
		Category: entity.Category(c.QueryParam("category")),
		Status:   entity.ProductStatus(c.QueryParam("status")),
	}
	if filter.Category != "" && !filter.Category.IsValid() {
		return filter, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("invalid category"))
	}
	if filter.Status != "" && !filter.Status.IsValid() {
		return filter, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("invalid status"))
	}

	if raw := c.QueryParam("owner_id"); raw != "" {
		ownerID, err := uuid.Parse(raw)
		if err != nil {
			return filter, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("invalid owner_id"))
		}
		filter.OwnerID = ownerID
	}

	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return filter, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("invalid limit"))
		}
		filter.Limit = limit
	}

	return filter, nil
}

// MyProducts lists the caller's own listings.
func (h *ProductHandler) MyProducts(c echo.Context) error {
	products, err := scope(c, h.facade).MyProducts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, products)
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	product, err := h.facade.Catalog().GetProduct(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, product)
}

// ShareQRCode renders a PNG linking to the product page.
func (h *ProductHandler) ShareQRCode(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	png, err := h.facade.Catalog().ShareQRCode(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "public, max-age=3600")

	return c.Blob(http.StatusOK, "image/png", png)
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req CreateProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	product, err := scope(c, h.facade).CreateProduct(c.Request().Context(), &usecase.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Category:    entity.Category(req.Category),
		Location:    req.Location,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, product)
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req UpdateProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	product, err := scope(c, h.facade).UpdateProduct(c.Request().Context(), id, req.toUpdate())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, product)
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := scope(c, h.facade).DeleteProduct(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return noContent(c)
}

// UploadImage accepts a multipart form with the file under "image".
func (h *ProductHandler) UploadImage(c echo.Context) error {
	file, err := c.FormFile("image")
	if err != nil {
		return errors.WithStack(domainerrors.ErrImageInvalid.WithDetails("missing image field"))
	}

	src, err := file.Open()
	if err != nil {
		return errors.Wrap(err, "open uploaded image")
	}
	defer src.Close()

	url, err := scope(c, h.facade).UploadImage(c.Request().Context(), &usecase.UploadImageInput{
		Filename:    file.Filename,
		ContentType: file.Header.Get(echo.HeaderContentType),
		Size:        file.Size,
		Body:        src,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, &ImageUploadResponse{URL: url})
}
