// Package database はデータベース接続を管理します。
package database

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"github.com/Taichi412/checklist-backend/internal/config"
	"github.com/Taichi412/checklist-backend/migrations"
)

// Init はデータベース接続を初期化し、マイグレーションを適用します。
func Init(cfg config.Config) (*sql.DB, error) {
	db, err := sql.Open("mysql", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("could not open database connection: %w", err)
	}

	// 同時接続は10本まで。空きを待つリクエストはキューに積まれる (上限なし)。
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("could not ping database: %w", err)
	}

	if err := migrations.Migrate(db); err != nil {
		db.Close()
		return nil, err
	}

	log.Println("Successfully connected to MySQL database!")
	return db, nil
}
