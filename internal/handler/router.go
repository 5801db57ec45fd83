package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"budget-api/internal/handler/api"
	"budget-api/internal/handler/middleware"
	"budget-api/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth     *api.AuthHandler
	Monthly  *api.MonthlyExpenseHandler
	Template *api.TemplateHandler
	Income   *api.IncomeHandler
	Expense  *api.ExpenseHandler
	Settings *api.SettingsHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.MetricsMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/users")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		monthly := apiGroup.Group("/monthly-expenses")
		monthly.Use(authMiddleware.RequireAuth())
		{
			addRoutes(monthly, []route{
				{Method: http.MethodPost, Path: "/copy", Handler: h.Monthly.CopyMonth},
				{Method: http.MethodGet, Path: "/:month", Handler: h.Monthly.GetMonth},
				{Method: http.MethodGet, Path: "/:month/existing", Handler: h.Monthly.GetExistingMonth},
				{Method: http.MethodPatch, Path: "/:snapshotId", Handler: h.Monthly.PatchItem},
			})
		}

		settings := apiGroup.Group("/settings")
		settings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(settings, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Settings.Get},
				{Method: http.MethodPut, Path: "/theme", Handler: h.Settings.UpdateTheme},
				{Method: http.MethodPut, Path: "/tolerance", Handler: h.Settings.UpdateTolerance},
			})

			templates := settings.Group("/debt-templates")
			addRoutes(templates, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Template.List},
				{Method: http.MethodPost, Path: "", Handler: h.Template.Create},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Template.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Template.Delete},
			})
		}

		incomes := apiGroup.Group("/incomes")
		incomes.Use(authMiddleware.RequireAuth())
		{
			addRoutes(incomes, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Income.List},
				{Method: http.MethodPost, Path: "", Handler: h.Income.Create},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Income.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Income.Delete},
			})
		}

		expenses := apiGroup.Group("/expenses")
		expenses.Use(authMiddleware.RequireAuth())
		{
			addRoutes(expenses, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Expense.List},
				{Method: http.MethodPost, Path: "", Handler: h.Expense.Create},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Expense.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Expense.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Expense.Delete},
			})
		}
	}
}

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
