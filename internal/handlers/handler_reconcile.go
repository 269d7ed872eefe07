package handlers

import (
	"net/http"

	"github.com/SscSPs/meow_bank/internal/core/domain"
	portssvc "github.com/SscSPs/meow_bank/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// ReconcileResponse wraps a reconciliation report with its verdict.
type ReconcileResponse struct {
	Healthy bool `json:"healthy"`
	domain.ReconcileReport
}

type reconcileHandler struct {
	reconcileService portssvc.ReconcileSvc
}

// registerReconcileRoutes registers the on-demand reconciliation route.
func registerReconcileRoutes(rg *gin.RouterGroup, rs portssvc.ReconcileSvc) {
	h := &reconcileHandler{reconcileService: rs}
	rg.GET("/reconciliation", h.reconcile)
}

// reconcile godoc
// @Summary Reconcile balances
// @Description Recomputes every account balance from its opening balance and the ledger and reports any disagreement.
// @Tags reconciliation
// @Produce json
// @Success 200 {object} ReconcileResponse
// @Failure 503 {object} ErrorResponse
// @Router /reconciliation [get]
func (h *reconcileHandler) reconcile(c *gin.Context) {
	report, err := h.reconcileService.Reconcile(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ReconcileResponse{Healthy: report.Healthy(), ReconcileReport: *report})
}
