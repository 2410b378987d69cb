package server

import (
	"net/http"
	"time"

	"pitchcraft-server/confs"
	"pitchcraft-server/db"
	httpHandler "pitchcraft-server/handlers/http"
	"pitchcraft-server/repositories"
	"pitchcraft-server/services"
	"pitchcraft-server/usecases"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Server struct {
	app *gin.Engine
	cfg *confs.Config
}

func NewServer(database db.Database, cfg *confs.Config) *Server {
	// Initialize repositories
	userRepo := repositories.NewUserPgRepository(database)
	pitchRepo := repositories.NewPitchPgRepository(database)

	// Generation client is constructed here and injected; no package globals
	generator := services.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiAPIURL, http.DefaultClient)

	// Initialize use cases
	authUseCase := usecases.NewAuthUseCase(userRepo, []byte(cfg.JWTSecret), cfg.TokenExpiry)
	pitchUseCase := usecases.NewPitchUseCase(pitchRepo, generator)

	return &Server{
		app: NewRouter(authUseCase, pitchUseCase, cfg.ClientURL),
		cfg: cfg,
	}
}

// NewRouter wires handlers, middleware, and routes onto a gin engine.
func NewRouter(authUseCase *usecases.AuthUseCase, pitchUseCase *usecases.PitchUseCase, clientURL string) *gin.Engine {
	app := gin.New()
	app.Use(gin.Logger())

	// Any unhandled fault becomes the 500 envelope
	app.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, httpHandler.Envelope{
			Success: false,
			Message: "Internal server error",
		})
	}))

	// Setup CORS middleware
	config := cors.DefaultConfig()
	config.AllowOrigins = []string{clientURL}
	config.AllowCredentials = true
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	app.Use(cors.New(config))

	// Initialize handlers
	authHandler := httpHandler.NewAuthHandler(authUseCase)
	pitchHandler := httpHandler.NewPitchHandler(pitchUseCase)
	requireAuth := httpHandler.RequireAuth(authUseCase)

	// Root welcome route
	app.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, httpHandler.Envelope{
			Success: true,
			Message: "Welcome to PitchCraft API",
			Data: gin.H{
				"version": "1.0.0",
				"endpoints": gin.H{
					"health":  "/health",
					"auth":    "/auth",
					"pitches": "/pitches",
				},
			},
		})
	})

	// Liveness probe
	app.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, httpHandler.Envelope{
			Success: true,
			Message: "Server is running perfectly",
			Data: gin.H{
				"timestamp": time.Now().UTC().Format(time.RFC3339),
			},
		})
	})

	// Auth routes
	auth := app.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.GET("/me", requireAuth, authHandler.Me)
		auth.PUT("/profile", requireAuth, authHandler.UpdateProfile)
		auth.PUT("/change-password", requireAuth, authHandler.ChangePassword)
	}

	// Pitch routes
	pitches := app.Group("/pitches")
	pitches.Use(requireAuth)
	{
		pitches.POST("/generate", pitchHandler.Generate)
		pitches.GET("", pitchHandler.List)
		pitches.GET("/:id", pitchHandler.GetByID)
		pitches.PUT("/:id", pitchHandler.Update)
		pitches.DELETE("/:id", pitchHandler.Delete)
		pitches.POST("/:id/improve", pitchHandler.Improve)
		pitches.POST("/:id/export", pitchHandler.Export)
	}

	// Unmatched routes get the envelope shape too
	app.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, httpHandler.Envelope{
			Success: false,
			Message: "Route not found",
		})
	})

	return app
}

func (s *Server) Start() {
	if err := s.app.Run("0.0.0.0:" + s.cfg.Port); err != nil {
		panic(err)
	}
}
