package routes

import (
	"time"

	"blogfolio/config"
	"blogfolio/handlers"
	"blogfolio/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(h *handlers.Handler, cfg *config.Config) *gin.Engine {
	router := gin.Default()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
			"time":   time.Now().Unix(),
		})
	})

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.Server.AllowOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Credential endpoints share a rate-limit budget
	authLimiter := middleware.NewIPRateLimiter(60, time.Minute)
	auth := router.Group("/")
	auth.Use(middleware.RateLimitMiddleware(authLimiter))
	auth.POST("/signup", h.Signup)
	auth.POST("/signin", h.Signin)
	auth.POST("/google-auth", h.GoogleAuth)

	// Public routes
	router.GET("/latest-blogs", h.LatestBlogs)
	router.GET("/search", h.SearchUsers)
	router.GET("/get-upload-url", h.GetUploadURL)

	// Protected routes
	protected := router.Group("/")
	protected.Use(middleware.JWTAuthMiddleware(cfg.JWT.Secret))
	protected.POST("/create-blog", h.CreateBlog)
	protected.GET("/user-data", h.GetUserData)
	protected.PUT("/user-data", h.UpdateUserData)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error": "Endpoint not found",
			"path":  c.Request.URL.Path,
		})
	})

	return router
}
