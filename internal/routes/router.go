// Package routesはroutingを行います。
package routes

import (
	"database/sql"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Taichi412/checklist-backend/internal/config"
	"github.com/Taichi412/checklist-backend/internal/handlers"
	"github.com/Taichi412/checklist-backend/internal/repositories"
	"github.com/Taichi412/checklist-backend/internal/services"
)

// Setup はGinルーターをセットアップし、すべてのエンドポイントを登録します。
func Setup(cfg config.Config, db *sql.DB) *gin.Engine {
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	// CORS対策: 開発モードではオリジン制限なし、それ以外は設定されたリストのみ
	corsConfig := cors.DefaultConfig()
	if cfg.IsDevelopment() {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
		corsConfig.AllowCredentials = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	r.Use(cors.New(corsConfig))

	// リポジトリ
	userRepo := repositories.NewUserRepository(db)
	checklistRepo := repositories.NewChecklistRepository(db)

	// サービス
	userService := services.NewUserService(userRepo)
	checklistService := services.NewChecklistService(checklistRepo)
	jwtService := services.NewJWTService(cfg.JWTSecret)

	// ハンドラー
	userHandler := handlers.NewUserHandler(userService, jwtService)
	checklistHandler := handlers.NewChecklistHandler(checklistService)

	// ルーティング
	r.GET("/api/health", HealthHandler)
	r.POST("/api/signup", userHandler.SignupHandler)
	r.POST("/api/login", userHandler.LoginHandler)
	r.POST("/api/logout", userHandler.LogoutHandler)

	authorized := r.Group("/")
	authorized.Use(AuthMiddleware(jwtService))
	{
		authorized.GET("/api/user", userHandler.MeHandler)
		authorized.GET("/api/checklist", checklistHandler.GetChecklistHandler)
		authorized.POST("/api/checklist", checklistHandler.CreateChecklistHandler)
		authorized.PUT("/api/checklist/update-field/:id", checklistHandler.UpdateFieldHandler)
	}

	return r
}

// HealthHandler はヘルスチェック用のハンドラーです。
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}
