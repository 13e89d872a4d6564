//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"leadpipe/internal/handler/api"
	resdto "leadpipe/internal/handler/dto/response"
	"leadpipe/internal/usecase/commands"
	"leadpipe/tests/common/httptest"
	"leadpipe/tests/common/testutil"
	commandsmock "leadpipe/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	mockCmds *commandsmock.MockAuthCommands
	handler  *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCmds = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockCmds)

	s.router.POST("/api/auth/login", s.handler.Login)
	s.router.POST("/api/auth/logout", s.handler.Logout)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func loginBody() map[string]any {
	return map[string]any{
		"email":    "admin@example.com",
		"password": "password123",
	}
}

func (s *AuthHandlerTestSuite) TestLogin() {
	s.Run("success: returns token and user info", func() {
		userID := uuid.New()
		s.mockCmds.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(&commands.LoginResult{
				AccessToken: "signed.jwt.token",
				UserID:      userID,
				Email:       "admin@example.com",
				Role:        "admin",
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/auth/login", loginBody(), "")

		s.Equal(http.StatusOK, rec.Code)
		var resp resdto.LoginResponse
		s.Require().NoError(httptest.DecodeResponseBody(s.T(), rec.Body, &resp))
		s.Equal("signed.jwt.token", resp.AccessToken)
		s.Equal(userID, resp.User.ID)
		s.Equal("admin@example.com", resp.User.Email)
		s.Equal("admin", resp.User.Role)
	})

	s.Run("error: wrong credentials return 401", func() {
		s.mockCmds.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrInvalidCredentials).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/auth/login", loginBody(), "")

		s.Equal(http.StatusUnauthorized, rec.Code)
		s.Contains(rec.Body.String(), "Invalid email or password")
	})

	s.Run("error: inactive account returns 403", func() {
		s.mockCmds.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrUserInactive).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/auth/login", loginBody(), "")

		s.Equal(http.StatusForbidden, rec.Code)
		s.Contains(rec.Body.String(), "Account is inactive")
	})

	s.Run("error: unexpected failure returns 500", func() {
		s.mockCmds.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrDatabaseOperationFailed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/auth/login", loginBody(), "")

		s.Equal(http.StatusInternalServerError, rec.Code)
		s.Contains(rec.Body.String(), "Internal server error")
	})

	s.Run("validation: bad payloads never reach the command side", func() {
		cases := []struct {
			name string
			body map[string]any
		}{
			{"missing email", testutil.DtoMap(s.T(), loginBody(), testutil.Field("email", nil))},
			{"malformed email", testutil.DtoMap(s.T(), loginBody(), testutil.Field("email", "not-an-email"))},
			{"short password", testutil.DtoMap(s.T(), loginBody(), testutil.Field("password", "short"))},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/auth/login", tc.body, "")
				s.Equal(http.StatusBadRequest, rec.Code)
				s.Contains(rec.Body.String(), "Invalid request format")
			})
		}
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/auth/logout", nil, "bearer-token")
	s.Equal(http.StatusNoContent, rec.Code)
	s.Empty(rec.Body.String())
}
