package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"leadpipe/internal/domain/user"
	"leadpipe/internal/handler/api"
	"leadpipe/internal/handler/middleware"
	"leadpipe/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	leadHandler *api.LeadHandler,
	newsletterHandler *api.NewsletterHandler,
	kpiHandler *api.KPIHandler,
	exportHandler *api.ExportHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, leadHandler, newsletterHandler, kpiHandler, exportHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.Metrics())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	leadHandler *api.LeadHandler,
	newsletterHandler *api.NewsletterHandler,
	kpiHandler *api.KPIHandler,
	exportHandler *api.ExportHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
			})
		}

		leads := apiGroup.Group("/leads")
		{
			// The public contact form posts without a token; everything
			// else on leads is operator-only.
			addRoutes(leads, []route{
				{Method: http.MethodPost, Path: "", Handler: leadHandler.Create},
			})

			leadsAuth := leads.Group("")
			leadsAuth.Use(authMiddleware.RequireAuth())
			addRoutes(leadsAuth, []route{
				{Method: http.MethodGet, Path: "", Handler: leadHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: leadHandler.Get},
				{Method: http.MethodPatch, Path: "/:id", Handler: leadHandler.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: leadHandler.Delete,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(user.RoleAdmin)}},
			})
		}

		newsletter := apiGroup.Group("/newsletter")
		{
			addRoutes(newsletter, []route{
				{Method: http.MethodPost, Path: "", Handler: newsletterHandler.Subscribe},
			})

			newsletterAuth := newsletter.Group("")
			newsletterAuth.Use(authMiddleware.RequireAuth())
			addRoutes(newsletterAuth, []route{
				{Method: http.MethodGet, Path: "", Handler: newsletterHandler.List},
				{Method: http.MethodPost, Path: "/:id/send-welcome", Handler: newsletterHandler.SendWelcome},
				{Method: http.MethodDelete, Path: "/:id", Handler: newsletterHandler.Delete,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(user.RoleAdmin)}},
			})
		}

		kpis := apiGroup.Group("/kpis")
		kpis.Use(authMiddleware.RequireAuth())
		{
			addRoutes(kpis, []route{
				{Method: http.MethodGet, Path: "", Handler: kpiHandler.Report},
			})
		}

		exportGroup := apiGroup.Group("/export")
		exportGroup.Use(authMiddleware.RequireAuth())
		{
			addRoutes(exportGroup, []route{
				{Method: http.MethodGet, Path: "", Handler: exportHandler.Export},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
