package objects

import (
	"bytes"
	"errors"
	"io"
	"path/filepath"

	"asset-uploader/core/logger"
	"asset-uploader/core/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for object operations.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the object routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/objects")
	group.Post("/", h.HandleUpload)
	group.Post("/stream", h.HandleStreamUpload)
	group.Get("/download/*", h.HandleDownload)
	group.Get("/presign/*", h.HandlePresign)
	group.Delete("/*", h.HandleDelete)
}

// HandleUpload uploads a multipart file.
// @Summary Upload File
// @Description Uploads the multipart "file" field under a timestamped key. Objects are public unless private=true.
// @Tags objects
// @Security ApiKeyAuth
// @Accept mpfd
// @Produce json
// @Param file formData file true "File to upload"
// @Param private formData boolean false "Store with a private ACL"
// @Success 201 {object} UploadResult
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 502 {object} map[string]string "Storage Error"
// @Router /objects [post]
func (h *Handler) HandleUpload(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "multipart field 'file' is required"})
	}

	src, err := fh.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	defer src.Close()

	// Spool to the service filesystem so the upload reads from a local path.
	tmp, err := afero.TempFile(h.service.fs, "", "upload-*")
	if err != nil {
		l.Error("Failed to create spool file", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to buffer upload"})
	}
	tmpPath := tmp.Name()
	defer h.service.fs.Remove(tmpPath)

	size, err := io.Copy(tmp, src)
	closeErr := tmp.Close()
	if err != nil || closeErr != nil {
		l.Error("Failed to buffer upload", zap.Error(errors.Join(err, closeErr)))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to buffer upload"})
	}

	req := UploadRequest{
		LocalPath:   tmpPath,
		DisplayName: fh.Filename,
		MimeType:    fh.Header.Get("Content-Type"),
		SizeBytes:   size,
		IsPrivate:   utils.ToBool(c.FormValue("private")),
	}

	res, err := h.service.Upload(c.Context(), req, UploadOptions{Protected: req.IsPrivate})
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}

	l.Info("Object uploaded", zap.String("key", res.Key), zap.Int64("size", size))
	return c.Status(fiber.StatusCreated).JSON(res)
}

// HandleStreamUpload proxies the raw request body into a streamed upload.
// @Summary Stream Upload
// @Description Streams the request body to {prefix}{name}.{ext}. Objects are private unless private=false.
// @Tags objects
// @Security ApiKeyAuth
// @Accept octet-stream
// @Produce json
// @Param name query string true "Key stem"
// @Param ext query string false "Extension"
// @Param private query boolean false "Store with a private ACL (default true)"
// @Success 201 {object} UploadResult
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 502 {object} map[string]string "Storage Error"
// @Router /objects/stream [post]
func (h *Handler) HandleStreamUpload(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	name := c.Query("name")
	if name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "query parameter 'name' is required"})
	}

	desc := h.service.GetUploadStream(c.Context(), StreamFileMeta{
		Name:        name,
		Ext:         c.Query("ext"),
		ContentType: c.Get(fiber.HeaderContentType),
		IsPrivate:   utils.OptionalBool(c.Query("private")),
	})

	_, copyErr := io.Copy(desc.Writer, bytes.NewReader(c.Body()))
	_ = desc.Writer.Close()

	res, err := desc.Wait()
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}
	if copyErr != nil {
		l.Error("Stream copy failed", zap.String("key", desc.Key), zap.Error(copyErr))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": copyErr.Error()})
	}

	l.Info("Object streamed", zap.String("key", res.Key))
	return c.Status(fiber.StatusCreated).JSON(res)
}

// HandleDownload streams an object back to the client.
// @Summary Download Object
// @Description Streams the object body.
// @Tags objects
// @Security ApiKeyAuth
// @Produce octet-stream
// @Param key path string true "Object key"
// @Success 200 {file} file
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 502 {object} map[string]string "Storage Error"
// @Router /objects/download/{key} [get]
func (h *Handler) HandleDownload(c *fiber.Ctx) error {
	key := c.Params("*")

	body, err := h.service.GetDownloadStream(c.Context(), ObjectRef{Key: key})
	if err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}

	if ext := filepath.Ext(key); ext != "" {
		c.Type(ext)
	}
	// fasthttp closes the body once the response has been written.
	return c.SendStream(body)
}

// HandlePresign returns a presigned download URL.
// @Summary Presign Download
// @Description Returns a time-limited URL granting read access without credentials.
// @Tags objects
// @Security ApiKeyAuth
// @Produce json
// @Param key path string true "Object key"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 502 {object} map[string]string "Storage Error"
// @Router /objects/presign/{key} [get]
func (h *Handler) HandlePresign(c *fiber.Ctx) error {
	u, err := h.service.GetPresignedDownloadURL(c.Context(), ObjectRef{Key: c.Params("*")})
	if err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{
		"url":        u,
		"expires_in": int(h.service.PresignTTL().Seconds()),
	})
}

// HandleDelete removes an object. The response is always 200; the body reports the outcome.
// @Summary Delete Object
// @Description Best-effort delete.
// @Tags objects
// @Security ApiKeyAuth
// @Produce json
// @Param key path string true "Object key"
// @Success 200 {object} map[string]interface{}
// @Router /objects/{key} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	res := h.service.Delete(c.Context(), ObjectRef{Key: c.Params("*")})

	body := fiber.Map{"key": res.Key, "deleted": res.OK()}
	if res.Err != nil {
		body["error"] = res.Err.Error()
	}
	return c.JSON(body)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrMissingKey):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusBadGateway
	}
}
