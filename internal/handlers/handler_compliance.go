package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/securyflex/securyflex-backend/internal/core/domain"
	portssvc "github.com/securyflex/securyflex-backend/internal/core/ports/services"
	"github.com/securyflex/securyflex-backend/internal/dto"
	"github.com/securyflex/securyflex-backend/internal/middleware"
)

type complianceHandler struct {
	complianceService portssvc.ComplianceSvcFacade
}

func newComplianceHandler(cs portssvc.ComplianceSvcFacade) *complianceHandler {
	return &complianceHandler{complianceService: cs}
}

// registerComplianceRoutes registers the ND-nummer routes.
func registerComplianceRoutes(rg *gin.RouterGroup, complianceService portssvc.ComplianceSvcFacade) {
	h := newComplianceHandler(complianceService)

	compliance := rg.Group("/compliance/nd-nummer")
	{
		compliance.GET("/monitor", h.monitor)
		compliance.POST("/monitor", middleware.RequireRole(domain.RoleAdmin), h.runSweep)
		compliance.POST("", h.register)
		compliance.GET("/audit", h.auditTrail)
	}
}

// monitor godoc
// @Summary Current license classification
// @Tags compliance
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.ComplianceMonitorResponse}
// @Failure 403 {object} dto.APIResponse
// @Security BearerAuth
// @Router /compliance/nd-nummer/monitor [get]
func (h *complianceHandler) monitor(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	resp, err := h.complianceService.Monitor(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(resp))
}

// runSweep godoc
// @Summary Trigger the license expiry sweep
// @Description Runs the same sweep the background worker runs on its
// @Description interval. Skips silently when another instance holds the lock.
// @Tags compliance
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.SweepResult}
// @Failure 403 {object} dto.APIResponse
// @Security BearerAuth
// @Router /compliance/nd-nummer/monitor [post]
func (h *complianceHandler) runSweep(c *gin.Context) {
	result, err := h.complianceService.CheckExpiringNDNummers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(result))
}

// register godoc
// @Summary Register or refresh an ND-nummer
// @Tags compliance
// @Accept json
// @Produce json
// @Param request body dto.RegisterNDNummerRequest true "License details"
// @Success 200 {object} dto.APIResponse{data=dto.ComplianceMonitorResponse}
// @Failure 400 {object} dto.APIResponse
// @Security BearerAuth
// @Router /compliance/nd-nummer [post]
func (h *complianceHandler) register(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	var req dto.RegisterNDNummerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	resp, err := h.complianceService.RegisterNDNummer(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(resp))
}

// auditTrail godoc
// @Summary Own license audit trail
// @Tags compliance
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} dto.APIResponse{data=[]dto.NDNummerAuditResponse}
// @Security BearerAuth
// @Router /compliance/nd-nummer/audit [get]
func (h *complianceHandler) auditTrail(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	var params dto.PageParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}

	entries, err := h.complianceService.AuditTrail(c.Request.Context(), userID, params.Limit, params.Offset)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]dto.NDNummerAuditResponse, 0, len(entries))
	for i := range entries {
		resp = append(resp, dto.ToNDNummerAuditResponse(&entries[i]))
	}
	c.JSON(http.StatusOK, dto.OK(resp))
}
