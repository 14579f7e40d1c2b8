package routes

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/chickens/chatterbox/config"
	"github.com/chickens/chatterbox/controllers"
	"github.com/chickens/chatterbox/middleware"
	"github.com/chickens/chatterbox/store"
	"github.com/chickens/chatterbox/templates"
	"github.com/chickens/chatterbox/utils"
)

// SetupRouter wires routes, middlewares, and controllers.
func SetupRouter(db *gorm.DB) *gin.Engine {
	cfg := config.Get()
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestID())

	// Replace default console logger with file-based zap logger
	gl, err := utils.NewRollingFileLogger(cfg.GinPath, cfg.LogLevel, cfg.LogMaxSizeMB, cfg.LogMaxBackups, cfg.LogMaxAgeDays, cfg.LogCompress)
	if err == nil {
		r.Use(utils.Ginzap(gl, time.RFC3339, true))
		r.Use(utils.RecoveryWithZap(gl, false))
	} else {
		// fallback to default recovery if logger failed to init
		r.Use(gin.Recovery())
	}

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	r.SetHTMLTemplate(templates.Must())

	// Stored avatar images, served by filename
	r.Static("/avatars", cfg.AvatarDir)

	secret := []byte(cfg.SessionSecret)
	r.Use(middleware.CurrentUser(db, secret))

	st := store.New(db)
	authController := controllers.NewAuthController(st, secret, cfg.AvatarDir)
	postController := controllers.NewPostController(st)
	chatController := controllers.NewChatController(st, secret, utils.NewAllowList(cfg.ChatAllowedNames))

	r.GET("/", postController.Home)

	r.GET("/register", authController.ShowRegister)
	r.POST("/register", authController.Register)
	r.GET("/login", authController.ShowLogin)
	r.POST("/login", authController.Login)
	r.GET("/logout", authController.Logout)

	profile := r.Group("/profile", middleware.LoginRequired())
	profile.GET("", authController.ShowProfile)
	profile.POST("", authController.UpdateProfile)

	createPost := r.Group("/create_post", middleware.LoginRequired())
	createPost.GET("", postController.ShowCreatePost)
	createPost.POST("", postController.CreatePost)

	// The post itself is resolved before any identity check, so these two
	// stay outside LoginRequired.
	r.GET("/post/:id", postController.ShowPost)
	r.POST("/post/:id", postController.AddComment)

	chatAuth := r.Group("/chat_auth", middleware.LoginRequired())
	chatAuth.GET("", chatController.ShowChatAuth)
	chatAuth.POST("", chatController.RequestChatAccess)

	chat := r.Group("/chat", middleware.LoginRequired(), middleware.ChatAccessRequired())
	chat.GET("", chatController.ChatRoom)
	chat.POST("", chatController.ChatRoom)

	r.NoRoute(func(ctx *gin.Context) {
		ctx.HTML(404, "not_found", gin.H{})
	})

	return r
}
