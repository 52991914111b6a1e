package handler

import (
	"io"
	"log/slog"
	"net/http"
	"strings"

	deliverycontext "swapmarket/internal/delivery/context"
	domainerrors "swapmarket/internal/domain/errors"
	"swapmarket/internal/domain/service"
	"swapmarket/internal/infra/storage"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ImageHandlerParams holds dependencies for ImageHandler, injected by Fx.
type ImageHandlerParams struct {
	fx.In

	Storage service.ObjectStorage
	Logger  *slog.Logger
}

// ImageHandler streams product images out of the bucket when no CDN fronts it.
type ImageHandler struct {
	storage service.ObjectStorage
	logger  *slog.Logger
}

// NewImageHandler is the constructor for ImageHandler
func NewImageHandler(params ImageHandlerParams) *ImageHandler {
	return &ImageHandler{
		storage: params.Storage,
		logger:  params.Logger,
	}
}

// ServeImage handles GET /api/v1/images/*
func (h *ImageHandler) ServeImage(c echo.Context) error {
	key := strings.TrimPrefix(c.Param("*"), "/")
	if key == "" || strings.Contains(key, "..") {
		return errors.WithStack(domainerrors.ErrNotFound)
	}

	body, contentType, err := h.storage.Open(c.Request().Context(), key)
	if errors.Is(err, storage.ErrObjectNotFound) {
		return errors.WithStack(domainerrors.ErrNotFound)
	}
	if err != nil {
		return errors.Wrapf(err, "open image %s", key)
	}
	defer body.Close()

	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}
	c.Response().Header().Set(echo.HeaderCacheControl, "public, max-age=86400, immutable")
	c.Response().Header().Set(echo.HeaderContentType, contentType)
	c.Response().WriteHeader(http.StatusOK)

	if _, err := io.Copy(c.Response(), body); err != nil {
		// Headers are committed; the client sees a truncated body.
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Warn("Image stream interrupted",
			slog.String("key", key),
			slog.Any("error", err),
		)
	}

	return nil
}
