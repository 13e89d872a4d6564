//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"leadpipe/internal/handler/api"
	resdto "leadpipe/internal/handler/dto/response"
	"leadpipe/internal/usecase/commands"
	"leadpipe/tests/common/builder"
	"leadpipe/tests/common/httptest"
	"leadpipe/tests/common/testutil"
	commandsmock "leadpipe/tests/mock/commands"
	queriesmock "leadpipe/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type NewsletterHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockNewsletterCommands
	mockQueries  *queriesmock.MockNewsletterQueries
	handler      *api.NewsletterHandler
}

func (s *NewsletterHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockNewsletterCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockNewsletterQueries(s.mockCtrl)
	s.handler = api.NewNewsletterHandler(s.mockCommands, s.mockQueries)

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", uuid.New())
		c.Next()
	}

	s.router.POST("/api/newsletter", s.handler.Subscribe)
	s.router.GET("/api/newsletter", authMiddleware, s.handler.List)
	s.router.POST("/api/newsletter/:id/send-welcome", authMiddleware, s.handler.SendWelcome)
	s.router.DELETE("/api/newsletter/:id", authMiddleware, s.handler.Delete)
}

func (s *NewsletterHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestNewsletterHandlerSuite(t *testing.T) {
	suite.Run(t, new(NewsletterHandlerTestSuite))
}

// ================================================================================
// TestSubscribe
// ================================================================================

func (s *NewsletterHandlerTestSuite) TestSubscribe() {
	url := "/api/newsletter"
	reqBody := builder.NewSubscriberBuilder().BuildSubscribeRequestDTO()

	s.Run("success: returns 201 Created", func() {
		returnView := builder.NewSubscriberBuilder().BuildViewQuery()
		s.mockCommands.EXPECT().Subscribe(gomock.Any(), gomock.Any()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var resp resdto.SubscriberResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &resp)
		s.Equal(returnView.Email, resp.Email)
		s.Nil(resp.WelcomeEmailSentAt)
	})

	s.Run("error: duplicate email returns 409", func() {
		s.mockCommands.EXPECT().Subscribe(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrDuplicateSubscriber).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already subscribed")
	})

	s.Run("error: rejected email returns 400", func() {
		s.mockCommands.EXPECT().Subscribe(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrDomainValidation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid email")
	})

	s.Run("validation: missing email returns 400 without hitting the usecase", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("email", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

// ================================================================================
// TestSendWelcome
// ================================================================================

func (s *NewsletterHandlerTestSuite) TestSendWelcome() {
	subscriberID := uuid.New()
	url := "/api/newsletter/" + subscriberID.String() + "/send-welcome"

	s.Run("success: returns 200 with the sent timestamp", func() {
		sentAt := time.Now()
		returnView := builder.NewSubscriberBuilder().
			With(func(b *builder.SubscriberBuilder) { b.WelcomeSentAt = &sentAt }).
			BuildViewQuery()

		s.mockCommands.EXPECT().SendWelcome(gomock.Any(), subscriberID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var resp resdto.SubscriberResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.NotNil(resp.WelcomeEmailSentAt)
	})

	s.Run("error: already sent returns 400", func() {
		s.mockCommands.EXPECT().SendWelcome(gomock.Any(), subscriberID).
			Return(nil, commands.ErrWelcomeAlreadySent).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "already sent")
	})

	s.Run("error: unknown subscriber returns 404", func() {
		s.mockCommands.EXPECT().SendWelcome(gomock.Any(), subscriberID).
			Return(nil, commands.ErrSubscriberNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "not found")
	})

	s.Run("error: SMTP failure returns 502", func() {
		s.mockCommands.EXPECT().SendWelcome(gomock.Any(), subscriberID).
			Return(nil, commands.ErrMailDeliveryFailed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "deliver")
	})

	s.Run("auth: missing token returns 401", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

// ================================================================================
// TestDelete
// ================================================================================

func (s *NewsletterHandlerTestSuite) TestDelete() {
	subscriberID := uuid.New()
	url := "/api/newsletter/" + subscriberID.String()

	s.Run("success: returns 200", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), subscriberID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: unknown subscriber returns 404", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), subscriberID).
			Return(commands.ErrSubscriberNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "not found")
	})
}
