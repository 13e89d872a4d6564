package api

import (
	"bytes"
	"net/http"

	"leadpipe/internal/handler/httperr"
	"leadpipe/internal/infra/export"
	"leadpipe/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ExportHandler struct {
	leadQueries queries.LeadQueries
	nlQueries   queries.NewsletterQueries
}

func NewExportHandler(leadQueries queries.LeadQueries, nlQueries queries.NewsletterQueries) *ExportHandler {
	return &ExportHandler{leadQueries: leadQueries, nlQueries: nlQueries}
}

// @Summary Export data
// @Description Download leads or newsletter subscribers as CSV or XLSX
// @Tags export
// @Produce octet-stream
// @Security BearerAuth
// @Param type query string true "Entity (leads | newsletter)"
// @Param format query string true "Format (csv | xlsx)"
// @Param startDate query string false "Range start (2006-01-02)"
// @Param endDate query string false "Range end, inclusive (2006-01-02)"
// @Success 200 {file} file
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /export [get]
func (h *ExportHandler) Export(c *gin.Context) {
	entity, err := export.ParseEntity(c.Query("type"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown export type", nil)
		return
	}
	format, err := export.ParseFormat(c.Query("format"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown export format", nil)
		return
	}
	rng, err := queries.ParseDateRange(c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date range", nil)
		return
	}

	var buf bytes.Buffer
	var count int

	switch entity {
	case export.EntityLeads:
		views, listErr := h.leadQueries.List(c.Request.Context(), rng)
		if listErr != nil {
			httperr.AbortWithError(c, http.StatusInternalServerError, listErr, "Failed to load leads", nil)
			return
		}
		count = len(views)
		if format == export.FormatXLSX {
			err = export.WriteLeadsXLSX(&buf, views)
		} else {
			err = export.WriteLeadsCSV(&buf, views)
		}

	case export.EntityNewsletter:
		views, listErr := h.nlQueries.List(c.Request.Context(), rng)
		if listErr != nil {
			httperr.AbortWithError(c, http.StatusInternalServerError, listErr, "Failed to load subscribers", nil)
			return
		}
		count = len(views)
		if format == export.FormatXLSX {
			err = export.WriteSubscribersXLSX(&buf, views)
		} else {
			err = export.WriteSubscribersCSV(&buf, views)
		}
	}

	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render export", nil)
		return
	}
	if count == 0 {
		httperr.AbortWithError(c, http.StatusNotFound, export.ErrNothingToExport, "Nothing to export", nil)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+export.Filename(entity, format)+`"`)
	c.Data(http.StatusOK, format.ContentType(), buf.Bytes())
}
