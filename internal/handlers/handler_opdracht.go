package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/securyflex/securyflex-backend/internal/core/ports/services"
	"github.com/securyflex/securyflex-backend/internal/dto"
)

type opdrachtHandler struct {
	opdrachtService portssvc.OpdrachtSvcFacade
}

func newOpdrachtHandler(os portssvc.OpdrachtSvcFacade) *opdrachtHandler {
	return &opdrachtHandler{opdrachtService: os}
}

// registerOpdrachtRoutes registers all opdracht-related routes.
func registerOpdrachtRoutes(rg *gin.RouterGroup, opdrachtService portssvc.OpdrachtSvcFacade) {
	h := newOpdrachtHandler(opdrachtService)

	opdrachten := rg.Group("/opdrachten")
	{
		opdrachten.GET("", h.list)
		opdrachten.POST("", h.create)
		opdrachten.GET("/:id", h.get)
		opdrachten.PATCH("/:id/status", h.updateStatus)
		opdrachten.POST("/:id/solliciteer", h.apply)
		opdrachten.GET("/:id/sollicitaties", h.listSollicitaties)
	}
	rg.POST("/sollicitaties/:id/decide", h.decide)
}

// list godoc
// @Summary List opdrachten
// @Description view=available returns the postings the caller may apply to,
// @Description subject to the ND-nummer compliance gate; view=mine returns own postings
// @Tags opdrachten
// @Produce json
// @Param view query string false "available or mine"
// @Param status query string false "Status filter"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} dto.APIResponse{data=dto.ListOpdrachtenResponse}
// @Security BearerAuth
// @Router /opdrachten [get]
func (h *opdrachtHandler) list(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	var params dto.ListOpdrachtenParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}

	if params.View == "mine" {
		opdrachten, err := h.opdrachtService.ListMine(c.Request.Context(), userID, params.Limit, params.Offset)
		if err != nil {
			respondError(c, err)
			return
		}
		resp := dto.ListOpdrachtenResponse{Opdrachten: make([]dto.OpdrachtResponse, 0, len(opdrachten))}
		for i := range opdrachten {
			resp.Opdrachten = append(resp.Opdrachten, dto.ToOpdrachtResponse(&opdrachten[i]))
		}
		c.JSON(http.StatusOK, dto.OK(resp))
		return
	}

	resp, err := h.opdrachtService.ListAvailable(c.Request.Context(), userID, params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(resp))
}

// get godoc
// @Summary Get an opdracht
// @Tags opdrachten
// @Produce json
// @Param id path string true "Opdracht ID"
// @Success 200 {object} dto.APIResponse{data=dto.OpdrachtResponse}
// @Failure 404 {object} dto.APIResponse
// @Security BearerAuth
// @Router /opdrachten/{id} [get]
func (h *opdrachtHandler) get(c *gin.Context) {
	opdracht, err := h.opdrachtService.GetOpdracht(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToOpdrachtResponse(opdracht)))
}

// create godoc
// @Summary Create an opdracht
// @Tags opdrachten
// @Accept json
// @Produce json
// @Param request body dto.CreateOpdrachtRequest true "Opdracht details"
// @Success 201 {object} dto.APIResponse{data=dto.OpdrachtResponse}
// @Failure 400 {object} dto.APIResponse
// @Failure 403 {object} dto.APIResponse
// @Security BearerAuth
// @Router /opdrachten [post]
func (h *opdrachtHandler) create(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	var req dto.CreateOpdrachtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	opdracht, err := h.opdrachtService.Create(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.OK(dto.ToOpdrachtResponse(opdracht)))
}

// updateStatus godoc
// @Summary Update opdracht status
// @Tags opdrachten
// @Accept json
// @Produce json
// @Param id path string true "Opdracht ID"
// @Param request body dto.UpdateOpdrachtStatusRequest true "Next status"
// @Success 200 {object} dto.APIResponse{data=dto.OpdrachtResponse}
// @Failure 403 {object} dto.APIResponse
// @Failure 409 {object} dto.APIResponse
// @Security BearerAuth
// @Router /opdrachten/{id}/status [patch]
func (h *opdrachtHandler) updateStatus(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	var req dto.UpdateOpdrachtStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	opdracht, err := h.opdrachtService.UpdateStatus(c.Request.Context(), userID, c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToOpdrachtResponse(opdracht)))
}

// apply godoc
// @Summary Apply to an opdracht
// @Description Submits a sollicitatie; on urgent auto-accept opdrachten the
// @Description application may be accepted and scheduled immediately
// @Tags opdrachten
// @Accept json
// @Produce json
// @Param id path string true "Opdracht ID"
// @Param request body dto.ApplyRequest true "Application details"
// @Success 201 {object} dto.APIResponse{data=dto.ApplyResponse}
// @Failure 403 {object} dto.APIResponse
// @Failure 409 {object} dto.APIResponse
// @Security BearerAuth
// @Router /opdrachten/{id}/solliciteer [post]
func (h *opdrachtHandler) apply(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	var req dto.ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	resp, err := h.opdrachtService.Apply(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.OK(resp))
}

// listSollicitaties godoc
// @Summary List applications on an opdracht
// @Tags opdrachten
// @Produce json
// @Param id path string true "Opdracht ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.SollicitatieResponse}
// @Failure 403 {object} dto.APIResponse
// @Security BearerAuth
// @Router /opdrachten/{id}/sollicitaties [get]
func (h *opdrachtHandler) listSollicitaties(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	sollicitaties, err := h.opdrachtService.ListSollicitaties(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]dto.SollicitatieResponse, 0, len(sollicitaties))
	for i := range sollicitaties {
		resp = append(resp, dto.ToSollicitatieResponse(&sollicitaties[i]))
	}
	c.JSON(http.StatusOK, dto.OK(resp))
}

// decide godoc
// @Summary Accept or reject a sollicitatie
// @Tags opdrachten
// @Accept json
// @Produce json
// @Param id path string true "Sollicitatie ID"
// @Param request body dto.DecideRequest true "Verdict"
// @Success 200 {object} dto.APIResponse{data=dto.SollicitatieResponse}
// @Failure 403 {object} dto.APIResponse
// @Failure 409 {object} dto.APIResponse
// @Security BearerAuth
// @Router /sollicitaties/{id}/decide [post]
func (h *opdrachtHandler) decide(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	var req dto.DecideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	sollicitatie, err := h.opdrachtService.Decide(c.Request.Context(), userID, c.Param("id"), req.Action)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToSollicitatieResponse(sollicitatie)))
}
