// Package testutil はテスト用の共通セットアップを提供します。
package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/Taichi412/checklist-backend/internal/config"
	"github.com/Taichi412/checklist-backend/internal/routes"
	"github.com/Taichi412/checklist-backend/internal/services"
)

// TestJWTSecret はテスト用の署名シークレットです。
const TestJWTSecret = "test-secret-key"

// SetupTestRouter は sqlmock を使ってデータベース無しでルーターを構築します。
// 実DBの代わりに、各テストが期待するクエリを mock に登録します。
func SetupTestRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	cfg := config.Config{JWTSecret: TestJWTSecret, AppEnv: "development"}
	r := routes.Setup(cfg, db)
	return r, mock, db
}

// IssueTestToken はテスト用の有効なトークンを発行します。
func IssueTestToken(t *testing.T, userID int, email string) string {
	t.Helper()
	token, err := services.NewJWTService(TestJWTSecret).GenerateToken(userID, email)
	require.NoError(t, err)
	return token
}

// DoRequest はJSONボディ付きのリクエストを実行し、レコーダーを返します。
// token が空文字列なら Authorization ヘッダーを付けません。
func DoRequest(t *testing.T, r *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	buf := bytes.NewBuffer(nil)
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewBuffer(b)
	}

	req, err := http.NewRequest(method, path, buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
