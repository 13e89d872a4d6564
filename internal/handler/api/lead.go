package api

import (
	"errors"
	"net/http"

	reqdto "leadpipe/internal/handler/dto/request"
	resdto "leadpipe/internal/handler/dto/response"
	"leadpipe/internal/handler/httperr"
	"leadpipe/internal/pkg/metrics"
	"leadpipe/internal/usecase/commands"
	"leadpipe/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type LeadHandler struct {
	cmds commands.LeadCommands
	q    queries.LeadQueries
}

func NewLeadHandler(cmds commands.LeadCommands, q queries.LeadQueries) *LeadHandler {
	return &LeadHandler{cmds: cmds, q: q}
}

// @Summary Capture lead
// @Description Capture a new lead from the public contact form
// @Tags leads
// @Accept json
// @Produce json
// @Param request body reqdto.CreateLeadRequest true "Create lead request"
// @Success 201 {object} resdto.LeadResponse
// @Failure 400 {object} map[string]string
// @Router /leads [post]
func (h *LeadHandler) Create(c *gin.Context) {
	var req reqdto.CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.cmds.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, commands.ErrDomainValidation) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid lead data", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to create lead", nil)
		return
	}

	metrics.RecordLeadCreated()
	c.JSON(http.StatusCreated, resdto.FromLeadView(view))
}

// @Summary List leads
// @Description List leads newest-first with an optional creation date range
// @Tags leads
// @Produce json
// @Security BearerAuth
// @Param startDate query string false "Range start (2006-01-02)"
// @Param endDate query string false "Range end, inclusive (2006-01-02)"
// @Success 200 {array} resdto.LeadResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /leads [get]
func (h *LeadHandler) List(c *gin.Context) {
	rng, err := queries.ParseDateRange(c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date range", nil)
		return
	}

	views, err := h.q.List(c.Request.Context(), rng)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list leads", nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{"leads": resdto.FromLeadList(views)})
}

// @Summary Get lead
// @Description Get a lead by ID
// @Tags leads
// @Produce json
// @Security BearerAuth
// @Param id path string true "Lead ID"
// @Success 200 {object} resdto.LeadResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /leads/{id} [get]
func (h *LeadHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	view, err := h.q.Get(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Lead not found", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromLeadView(view))
}

// @Summary Update lead
// @Description Update a lead's pipeline status and/or notes
// @Tags leads
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Lead ID"
// @Param request body reqdto.UpdateLeadRequest true "Update lead request"
// @Success 200 {object} resdto.LeadResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /leads/{id} [patch]
func (h *LeadHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	var req reqdto.UpdateLeadRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	view, statusChanged, err := h.cmds.Update(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrLeadNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Lead not found", nil)
		case errors.Is(err, commands.ErrInvalidStatus):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid status", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to update lead", nil)
		}
		return
	}

	if statusChanged {
		metrics.RecordLeadTransition(view.Status)
	}
	c.JSON(http.StatusOK, resdto.FromLeadView(view))
}

// @Summary Delete lead
// @Description Delete a lead
// @Tags leads
// @Security BearerAuth
// @Param id path string true "Lead ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /leads/{id} [delete]
func (h *LeadHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, commands.ErrLeadNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Lead not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to delete lead", nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Lead deleted"})
}
