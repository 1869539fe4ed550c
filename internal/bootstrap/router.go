package bootstrap

import (
	fbauth "firebase.google.com/go/v4/auth"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	"github.com/canvashq/canvas-backend/config"
	httpapi "github.com/canvashq/canvas-backend/internal/api/http"
	"github.com/canvashq/canvas-backend/internal/api/http/middleware"
	"github.com/canvashq/canvas-backend/internal/auth"
	authmw "github.com/canvashq/canvas-backend/internal/auth/middleware"
	"github.com/canvashq/canvas-backend/internal/canvases"
	"github.com/canvashq/canvas-backend/internal/drafts"
	"github.com/canvashq/canvas-backend/internal/messages"
	"github.com/canvashq/canvas-backend/internal/projects"
	"github.com/canvashq/canvas-backend/internal/users"
)

type RouterDeps struct {
	ServiceName string
	Cfg         *config.Config
	DB          *pgxpool.Pool
	Redis       *redis.Client
	// FirebaseAuth is required when Cfg.Auth.Mode == "firebase".
	FirebaseAuth *fbauth.Client
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     dep.Cfg.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-Id"},
		AllowCredentials: true,
	}))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Cfg.App.Version, dep.DB, dep.Redis)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api/v1")

	userRepo := users.NewRepo(dep.DB)
	projectRepo := projects.NewRepo(dep.DB)
	canvasRepo := canvases.NewRepo(dep.DB)
	draftRepo := drafts.NewRepo(dep.Redis)

	if dep.Cfg.Auth.Mode == "firebase" {
		api.Use(authmw.FirebaseAuthMiddleware(dep.FirebaseAuth))
	} else {
		api.Use(auth.DevIdentity())
	}
	api.Use(auth.WithUser(userRepo))

	nameCheckLimiter := middleware.RateLimit(
		rate.Limit(dep.Cfg.RateLimit.NameCheckPerSecond),
		dep.Cfg.RateLimit.NameCheckBurst,
		messages.TooManyRequests,
	)

	projectsGroup := api.Group("/projects")
	projects.Register(projectsGroup, projectRepo, nameCheckLimiter)
	canvases.RegisterProjectSubroutes(projectsGroup, canvasRepo)
	drafts.RegisterProjectSubroutes(projectsGroup, draftRepo)

	return r
}
