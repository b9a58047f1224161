package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/Taichi412/checklist-backend/internal/config"
	"github.com/Taichi412/checklist-backend/internal/database"
	"github.com/Taichi412/checklist-backend/internal/routes"
)

func main() {
	// .env が無い環境 (コンテナなど) では環境変数をそのまま使う
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Fatal: Failed to load config: %v", err)
	}

	db, err := database.Init(cfg)
	if err != nil {
		log.Fatalf("Fatal: Failed to initialize database: %v", err)
	}
	defer db.Close()

	r := routes.Setup(cfg, db)

	// サーバー起動
	log.Printf("Server listening on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
