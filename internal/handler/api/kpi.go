package api

import (
	"errors"
	"net/http"

	"leadpipe/internal/handler/httperr"
	"leadpipe/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type KPIHandler struct {
	q queries.KPIQueries
}

func NewKPIHandler(q queries.KPIQueries) *KPIHandler {
	return &KPIHandler{q: q}
}

// @Summary KPI report
// @Description Compute a KPI report for leads or newsletter subscribers
// @Tags kpis
// @Produce json
// @Security BearerAuth
// @Param type query string true "Report type (leads | newsletter)"
// @Param startDate query string false "Range start (2006-01-02)"
// @Param endDate query string false "Range end, inclusive (2006-01-02)"
// @Success 200 {object} queries.KPIReport
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /kpis [get]
func (h *KPIHandler) Report(c *gin.Context) {
	rng, err := queries.ParseDateRange(c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date range", nil)
		return
	}

	report, err := h.q.Report(c.Request.Context(), c.Query("type"), rng)
	if err != nil {
		if errors.Is(err, queries.ErrUnknownKPIType) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown report type", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to compute report", nil)
		return
	}

	c.JSON(http.StatusOK, report)
}
