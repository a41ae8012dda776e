package integrity

import (
	"errors"

	"asset-uploader/core/logger"
	"asset-uploader/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/bucket", h.HandleBucketCheck)
	group.Get("/ledger", h.HandleLedgerCheck)
	group.Get("/reconcile", h.HandleReconcile)
}

// HandleIntegrityCheck runs every check.
// @Summary Run All Integrity Checks
// @Description Checks bucket reachability and the upload ledger.
// @Tags integrity
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} map[string]interface{} "Combined Report"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	ctx := c.Context()
	report := make(map[string]interface{})

	if bucket, err := h.service.CheckBucket(ctx); err != nil {
		report["bucket"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["bucket"] = bucket
	}
	report["ledger"] = h.service.CheckLedger(ctx)

	return c.JSON(report)
}

// HandleBucketCheck checks the upload bucket.
// @Summary Check Bucket
// @Description Verifies the bucket exists and counts objects under the key prefix (first page).
// @Tags integrity
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} checks.BucketReport
// @Failure 503 {object} map[string]string "Bucket Unreachable"
// @Router /integrity/bucket [get]
func (h *Handler) HandleBucketCheck(c *fiber.Ctx) error {
	report, err := h.service.CheckBucket(c.Context())
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Bucket check failed", zap.Error(err))
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "error", "error": err.Error()})
	}
	return c.JSON(report)
}

// HandleLedgerCheck checks the upload ledger.
// @Summary Check Ledger
// @Description Reports whether the upload ledger is enabled, reachable and how many records it holds.
// @Tags integrity
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} checks.LedgerReport
// @Router /integrity/ledger [get]
func (h *Handler) HandleLedgerCheck(c *fiber.Ctx) error {
	return c.JSON(h.service.CheckLedger(c.Context()))
}

// HandleReconcile compares the ledger with the bucket.
// @Summary Reconcile Ledger
// @Description Lists uploads recorded in the ledger but missing from the bucket, and objects the ledger never recorded.
// @Tags integrity
// @Security ApiKeyAuth
// @Produce json
// @Param fresh query boolean false "Ignore cached indices"
// @Success 200 {object} reconcile.Report
// @Failure 409 {object} map[string]string "Ledger Disabled"
// @Failure 502 {object} map[string]string "Reconcile Failed"
// @Router /integrity/reconcile [get]
func (h *Handler) HandleReconcile(c *fiber.Ctx) error {
	report, err := h.service.Reconcile(c.Context(), utils.ToBool(c.Query("fresh")))
	if errors.Is(err, ErrLedgerDisabled) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Reconcile failed", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(report)
}
