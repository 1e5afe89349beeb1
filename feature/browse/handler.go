package browse

import (
	"time"

	"s3util/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for browsing buckets and objects.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the browse routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/buckets")
	group.Get("/", h.HandleListBuckets)
	group.Get("/:bucket/objects", h.HandleListObjects)
	group.Get("/:bucket/objects/*", h.HandleGetObject)
	group.Get("/:bucket/presign/*", h.HandlePresign)
}

// HandleListBuckets returns every bucket owned by the account as JSON,
// in the order the storage service reported them.
func (h *Handler) HandleListBuckets(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	buckets, err := h.service.ListBuckets(c.Context())
	if err != nil {
		l.Error("Bucket listing failed", zap.Error(err))
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{"buckets": buckets})
}

// HandleListObjects returns the objects in a bucket, optionally filtered by
// the prefix query parameter.
func (h *Handler) HandleListObjects(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	bucket := c.Params("bucket")
	prefix := c.Query("prefix")

	objects, err := h.service.ListObjects(c.Context(), bucket, prefix)
	if err != nil {
		l.Error("Object listing failed", zap.String("bucket", bucket), zap.Error(err))
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{"bucket": bucket, "prefix": prefix, "objects": objects})
}

// HandleGetObject streams the object body with its stored content type.
func (h *Handler) HandleGetObject(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	bucket := c.Params("bucket")
	key := c.Params("*")

	rc, info, err := h.service.OpenObject(c.Context(), bucket, key)
	if err != nil {
		l.Error("Object download failed",
			zap.String("bucket", bucket), zap.String("key", key), zap.Error(err))
		return errorResponse(c, err)
	}

	if info.ContentType != "" {
		c.Set(fiber.HeaderContentType, info.ContentType)
	}
	if info.Size > 0 {
		return c.SendStream(rc, int(info.Size))
	}
	return c.SendStream(rc)
}

// HandlePresign returns a presigned download URL. The ttl query parameter is
// in seconds and defaults to one hour.
func (h *Handler) HandlePresign(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	bucket := c.Params("bucket")
	key := c.Params("*")
	ttl := time.Duration(c.QueryInt("ttl")) * time.Second

	url, err := h.service.PresignURL(c.Context(), bucket, key, ttl)
	if err != nil {
		l.Error("Presign failed",
			zap.String("bucket", bucket), zap.String("key", key), zap.Error(err))
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{"bucket": bucket, "key": key, "url": url})
}

// errorResponse maps SDK failures onto HTTP statuses without altering the
// error text: missing buckets/objects become 404, everything else 502.
func errorResponse(c *fiber.Ctx, err error) error {
	status := fiber.StatusBadGateway
	if resp := minio.ToErrorResponse(err); resp.StatusCode == fiber.StatusNotFound {
		status = fiber.StatusNotFound
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
