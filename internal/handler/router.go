package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hotel-reservation/internal/domain/user"
	"hotel-reservation/internal/handler/api"
	"hotel-reservation/internal/handler/middleware"
	"hotel-reservation/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth        *api.AuthHandler
	Room        *api.RoomHandler
	Reservation *api.ReservationHandler
	History     *api.HistoryHandler
}

func NewHandlers(
	auth *api.AuthHandler,
	room *api.RoomHandler,
	reservation *api.ReservationHandler,
	history *api.HistoryHandler,
) Handlers {
	return Handlers{Auth: auth, Room: room, Reservation: reservation, History: history}
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware, limiter *middleware.RateLimiter) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware, limiter)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware, limiter *middleware.RateLimiter) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			throttled := []gin.HandlerFunc{limiter.Middleware()}
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register, Mw: throttled},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login, Mw: throttled},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		rooms := apiGroup.Group("/rooms")
		{
			addRoutes(rooms, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Room.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Room.Get},
				{Method: http.MethodGet, Path: "/:id/reserved-dates", Handler: h.Reservation.ReservedDates},
			})
		}

		reservations := apiGroup.Group("/reservations")
		reservations.Use(authMiddleware.RequireAuth())
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Reservation.Create},
				{Method: http.MethodGet, Path: "/mine", Handler: h.Reservation.ListMine},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Reservation.Delete},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleAdmin))
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/rooms", Handler: h.Room.Create},
				{Method: http.MethodPut, Path: "/rooms/:id", Handler: h.Room.Update},
				{Method: http.MethodDelete, Path: "/rooms/:id", Handler: h.Room.Delete},
				{Method: http.MethodGet, Path: "/rooms/:id/reservations", Handler: h.Reservation.ListUpcomingByRoom},

				{Method: http.MethodGet, Path: "/reservations", Handler: h.Reservation.List},
				{Method: http.MethodGet, Path: "/reservations/:id", Handler: h.Reservation.Get},
				{Method: http.MethodPut, Path: "/reservations/:id/dates", Handler: h.Reservation.UpdateDates},
				{Method: http.MethodPut, Path: "/reservations/:id/status", Handler: h.Reservation.UpdateStatus},
				{Method: http.MethodDelete, Path: "/reservations/:id", Handler: h.Reservation.Delete},

				{Method: http.MethodGet, Path: "/users/:id/reservations", Handler: h.Reservation.ListByUser},

				{Method: http.MethodGet, Path: "/history", Handler: h.History.List},
				{Method: http.MethodGet, Path: "/history/statistics", Handler: h.History.Statistics},
				{Method: http.MethodPost, Path: "/archival/run", Handler: h.History.RunArchival},
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
