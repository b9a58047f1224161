// Package config はアプリケーション設定を扱います。
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config はプロセス起動時に一度だけ環境変数から構築される設定です。
// 構築後は変更されず、各コンポーネントへ値渡しされます。
type Config struct {
	DBHost string `env:"DB_HOST" envDefault:"127.0.0.1"`
	DBPort string `env:"DB_PORT" envDefault:"3306"`
	DBUser string `env:"DB_USER" envDefault:"root"`
	DBPass string `env:"DB_PASS"`
	DBName string `env:"DB_NAME" envDefault:"checklist"`

	// JWT署名用シークレット。未設定の場合は起動させない。
	JWTSecret string `env:"JWT_SECRET,required"`

	// CORSで許可するオリジン (カンマ区切り)。開発モードでは無視されます。
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`

	Port   string `env:"PORT" envDefault:"8080"`
	AppEnv string `env:"APP_ENV" envDefault:"development"`
}

// Load は環境変数からConfigを構築します。
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("could not parse environment: %w", err)
	}
	return cfg, nil
}

// IsDevelopment は開発モードかどうかを返します。
func (c Config) IsDevelopment() bool {
	return strings.EqualFold(c.AppEnv, "development")
}

// DSN は環境変数由来の値からMySQL接続文字列 (DSN) を構築します。
// 例: user:pass@tcp(db:3306)/dbname
func (c Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true", c.DBUser, c.DBPass, c.DBHost, c.DBPort, c.DBName)
}
