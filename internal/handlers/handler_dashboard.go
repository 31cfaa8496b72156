package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/securyflex/securyflex-backend/internal/core/domain"
	portssvc "github.com/securyflex/securyflex-backend/internal/core/ports/services"
	"github.com/securyflex/securyflex-backend/internal/dto"
	"github.com/securyflex/securyflex-backend/internal/middleware"
)

type dashboardHandler struct {
	dashboardService portssvc.DashboardSvcFacade
	paymentService   portssvc.PaymentSvcFacade
}

func newDashboardHandler(ds portssvc.DashboardSvcFacade, ps portssvc.PaymentSvcFacade) *dashboardHandler {
	return &dashboardHandler{dashboardService: ds, paymentService: ps}
}

// registerDashboardRoutes registers the dashboard and payment listing routes.
func registerDashboardRoutes(rg *gin.RouterGroup, dashboardService portssvc.DashboardSvcFacade, paymentService portssvc.PaymentSvcFacade) {
	h := newDashboardHandler(dashboardService, paymentService)

	rg.GET("/bedrijf/dashboard/stats", middleware.RequireRole(domain.RoleBedrijf), h.bedrijfStats)
	rg.GET("/betalingen", h.listBetalingen)
}

// bedrijfStats godoc
// @Summary Bedrijf dashboard aggregates
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.BedrijfDashboardStats}
// @Failure 403 {object} dto.APIResponse
// @Security BearerAuth
// @Router /bedrijf/dashboard/stats [get]
func (h *dashboardHandler) bedrijfStats(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	stats, err := h.dashboardService.BedrijfStats(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(stats))
}

// listBetalingen godoc
// @Summary List own payments
// @Tags payments
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} dto.APIResponse
// @Security BearerAuth
// @Router /betalingen [get]
func (h *dashboardHandler) listBetalingen(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	var params dto.PageParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}

	betalingen, err := h.paymentService.ListBetalingen(c.Request.Context(), userID, params.Limit, params.Offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(betalingen))
}
