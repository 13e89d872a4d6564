//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"

	"leadpipe/internal/handler/api"
	"leadpipe/internal/usecase/queries"
	"leadpipe/tests/common/builder"
	"leadpipe/tests/common/httptest"
	queriesmock "leadpipe/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ExportHandlerTestSuite struct {
	suite.Suite
	router    *gin.Engine
	mockCtrl  *gomock.Controller
	mockLeads *queriesmock.MockLeadQueries
	mockNl    *queriesmock.MockNewsletterQueries
	handler   *api.ExportHandler
}

func (s *ExportHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockLeads = queriesmock.NewMockLeadQueries(s.mockCtrl)
	s.mockNl = queriesmock.NewMockNewsletterQueries(s.mockCtrl)
	s.handler = api.NewExportHandler(s.mockLeads, s.mockNl)

	s.router.GET("/api/export", s.handler.Export)
}

func (s *ExportHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestExportHandlerSuite(t *testing.T) {
	suite.Run(t, new(ExportHandlerTestSuite))
}

func (s *ExportHandlerTestSuite) TestExport() {
	s.Run("success: leads CSV download", func() {
		view := builder.NewLeadBuilder().BuildViewQuery()
		s.mockLeads.EXPECT().List(gomock.Any(), gomock.Any()).
			Return([]*queries.LeadView{view}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/export?type=leads&format=csv", nil, "bearer-token")

		s.Equal(http.StatusOK, rec.Code)
		httptest.AssertHeaders(s.T(), rec, map[string]string{
			"Content-Disposition": `attachment; filename="leads_export.csv"`,
			"Content-Type":        "text/csv",
		})
		body := rec.Body.String()
		s.True(strings.HasPrefix(body, "ID,Name,Role,Company"))
		s.Contains(body, view.Email)
	})

	s.Run("success: newsletter XLSX download", func() {
		view := builder.NewSubscriberBuilder().BuildViewQuery()
		s.mockNl.EXPECT().List(gomock.Any(), gomock.Any()).
			Return([]*queries.SubscriberView{view}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/export?type=newsletter&format=xlsx", nil, "bearer-token")

		s.Equal(http.StatusOK, rec.Code)
		httptest.AssertHeaders(s.T(), rec, map[string]string{
			"Content-Disposition": `attachment; filename="newsletter_export.xlsx"`,
			"Content-Type":        "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		})
		// XLSX files are zip archives.
		s.True(strings.HasPrefix(rec.Body.String(), "PK"))
	})

	s.Run("error: empty result set returns 404", func() {
		s.mockLeads.EXPECT().List(gomock.Any(), gomock.Any()).
			Return([]*queries.LeadView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/export?type=leads&format=csv", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Nothing to export")
	})

	s.Run("error: unknown entity returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/export?type=invoices&format=csv", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Unknown export type")
	})

	s.Run("error: unknown format returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/export?type=leads&format=pdf", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Unknown export format")
	})
}
