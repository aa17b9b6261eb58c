package router

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/safe/backend/internal/interfaces/http/handler"
	"github.com/safe/backend/internal/interfaces/http/middleware"
)

// Handlers groups the HTTP handlers mounted on the API.
type Handlers struct {
	Auth   *handler.AuthHandler
	Class  *handler.ClassHandler
	Post   *handler.PostHandler
	Shop   *handler.ShopHandler
	Point  *handler.PointHandler
	System *handler.SystemHandler
}

// Config holds the route wiring for the API.
type Config struct {
	Handlers Handlers

	// AuthMiddleware validates bearer tokens. Public endpoints are
	// excluded through the middleware's own skip list, so it is applied
	// to the whole API group.
	AuthMiddleware gin.HandlerFunc

	// MaxBodyBytes caps the request body size. Zero disables the cap.
	MaxBodyBytes int64

	// AuthRatePerMinute throttles credential endpoints per client IP.
	// Zero disables throttling.
	AuthRatePerMinute int
}

// Setup mounts all routes on the engine.
//
// Route protection has three tiers: public endpoints (signup, login,
// refresh, class code lookup, class join, health), authenticated
// endpoints, and teacher-only endpoints gated by RequireTeacher.
func Setup(engine *gin.Engine, cfg Config) {
	h := cfg.Handlers

	engine.GET("/health", h.System.Health)

	api := engine.Group("/api/v1")
	if cfg.MaxBodyBytes > 0 {
		api.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	}
	if cfg.AuthMiddleware != nil {
		api.Use(cfg.AuthMiddleware)
	}

	api.GET("/health", h.System.Health)
	api.GET("/system/info", h.System.GetSystemInfo)

	authGroup := api.Group("/auth")
	if cfg.AuthRatePerMinute > 0 {
		limiter := middleware.NewRateLimiter(cfg.AuthRatePerMinute, time.Minute)
		authGroup.Use(middleware.AuthRateLimit(limiter))
	}
	authGroup.POST("/signup", h.Auth.Signup)
	authGroup.POST("/login", h.Auth.Login)
	authGroup.POST("/refresh", h.Auth.RefreshToken)
	authGroup.POST("/logout", h.Auth.Logout)
	authGroup.GET("/me", h.Auth.Me)
	authGroup.PUT("/password", h.Auth.ChangePassword)

	classes := api.Group("/classes")
	classes.GET("/code/:code", h.Class.ResolveCode)
	classes.POST("/join", h.Class.Join)
	teacherClasses := classes.Group("", middleware.RequireTeacher())
	teacherClasses.POST("", h.Class.Create)
	teacherClasses.GET("", h.Class.List)
	teacherClasses.GET("/:id", h.Class.Get)
	teacherClasses.PUT("/:id", h.Class.Update)
	teacherClasses.DELETE("/:id", h.Class.Delete)
	teacherClasses.GET("/:id/students", h.Class.ListStudents)

	posts := api.Group("/posts")
	posts.POST("", h.Post.Create)
	posts.GET("", h.Post.List)
	posts.POST("/presign-upload", h.Post.PresignUpload)
	posts.GET("/:id", h.Post.Get)
	posts.POST("/:id/read", h.Post.MarkRead)
	teacherPosts := posts.Group("", middleware.RequireTeacher())
	teacherPosts.POST("/:id/approve", h.Post.Approve)
	teacherPosts.POST("/:id/reject", h.Post.Reject)

	items := api.Group("/items")
	items.GET("", h.Shop.ListItems)
	items.GET("/:id", h.Shop.GetItem)
	teacherItems := items.Group("", middleware.RequireTeacher())
	teacherItems.POST("", h.Shop.CreateItem)
	teacherItems.PUT("/:id", h.Shop.UpdateItem)
	teacherItems.DELETE("/:id", h.Shop.DeleteItem)

	shop := api.Group("/shop")
	shop.POST("/purchase", h.Shop.Purchase)

	inventory := api.Group("/inventory")
	inventory.GET("", h.Shop.ListInventory)
	inventory.POST("/equip", h.Shop.Equip)
	inventory.POST("/unequip", h.Shop.Unequip)

	points := api.Group("/points")
	points.POST("/award", middleware.RequireTeacher(), h.Point.Award)

	api.GET("/transactions", h.Point.ListTransactions)
}
