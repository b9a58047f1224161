package handlers_test

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Taichi412/checklist-backend/internal/services"
	"github.com/Taichi412/checklist-backend/testutil"
)

func TestSignup_Success(t *testing.T) {
	r, mock, db := testutil.SetupTestRouter(t)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users (email, password) VALUES (?, ?)")).
		WithArgs("newuser@example.com", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	w := testutil.DoRequest(t, r, http.MethodPost, "/api/signup", map[string]string{
		"email":    "newuser@example.com",
		"password": "newpassword",
	}, "")

	assert.Equal(t, http.StatusCreated, w.Code, "Expected HTTP Status Code 201 Created")
	var response map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Contains(t, response["message"], "User created")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSignup_MissingPassword(t *testing.T) {
	r, mock, db := testutil.SetupTestRouter(t)
	defer db.Close()

	w := testutil.DoRequest(t, r, http.MethodPost, "/api/signup", map[string]string{
		"email": "newuser@example.com",
	}, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var response map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Contains(t, response["error"], "email and password are required")
	assert.NoError(t, mock.ExpectationsWereMet(), "validation failure should not reach the store")
}

func TestSignup_DuplicateEmail(t *testing.T) {
	r, mock, db := testutil.SetupTestRouter(t)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users (email, password) VALUES (?, ?)")).
		WithArgs("duplicate@example.com", sqlmock.AnyArg()).
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})

	w := testutil.DoRequest(t, r, http.MethodPost, "/api/signup", map[string]string{
		"email":    "duplicate@example.com",
		"password": "somepassword",
	}, "")

	assert.Equal(t, http.StatusConflict, w.Code, "Expected HTTP Status Code 409 Conflict for duplicate email")
}

func TestSignup_StoreError(t *testing.T) {
	r, mock, db := testutil.SetupTestRouter(t)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users (email, password) VALUES (?, ?)")).
		WithArgs("newuser@example.com", sqlmock.AnyArg()).
		WillReturnError(sql.ErrConnDone)

	w := testutil.DoRequest(t, r, http.MethodPost, "/api/signup", map[string]string{
		"email":    "newuser@example.com",
		"password": "newpassword",
	}, "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	// 内部の詳細はクライアントに返さない
	assert.NotContains(t, w.Body.String(), "sql")
}

func TestLogin_Success(t *testing.T) {
	r, mock, db := testutil.SetupTestRouter(t)
	defer db.Close()

	hash, err := services.HashPassword("password123")
	require.NoError(t, err)

	rows := sqlmock.NewRows([]string{"id", "email", "password"}).
		AddRow(1, "normal_user@example.com", hash)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, email, password FROM users WHERE email = ?")).
		WithArgs("normal_user@example.com").
		WillReturnRows(rows)

	w := testutil.DoRequest(t, r, http.MethodPost, "/api/login", map[string]string{
		"email":    "normal_user@example.com",
		"password": "password123",
	}, "")

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Login successful", response["message"])

	token, ok := response["token"].(string)
	require.True(t, ok, "login response should contain a token")
	require.NotEmpty(t, token)

	// 発行されたトークンは保護エンドポイントで使える
	claims, err := services.NewJWTService(testutil.TestJWTSecret).ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 1, claims.UserID)
	assert.Equal(t, "normal_user@example.com", claims.Email)
}

func TestLogin_WrongPassword(t *testing.T) {
	r, mock, db := testutil.SetupTestRouter(t)
	defer db.Close()

	hash, err := services.HashPassword("password123")
	require.NoError(t, err)

	rows := sqlmock.NewRows([]string{"id", "email", "password"}).
		AddRow(1, "normal_user@example.com", hash)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, email, password FROM users WHERE email = ?")).
		WithArgs("normal_user@example.com").
		WillReturnRows(rows)

	w := testutil.DoRequest(t, r, http.MethodPost, "/api/login", map[string]string{
		"email":    "normal_user@example.com",
		"password": "wrong-password",
	}, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	var response map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Contains(t, response["error"], "Invalid credentials")
}

func TestLogin_UnknownEmail(t *testing.T) {
	r, mock, db := testutil.SetupTestRouter(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, email, password FROM users WHERE email = ?")).
		WithArgs("nobody@example.com").
		WillReturnError(sql.ErrNoRows)

	w := testutil.DoRequest(t, r, http.MethodPost, "/api/login", map[string]string{
		"email":    "nobody@example.com",
		"password": "password123",
	}, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogin_MissingFields(t *testing.T) {
	r, mock, db := testutil.SetupTestRouter(t)
	defer db.Close()

	w := testutil.DoRequest(t, r, http.MethodPost, "/api/login", map[string]string{
		"email": "normal_user@example.com",
	}, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLogout(t *testing.T) {
	r, _, db := testutil.SetupTestRouter(t)
	defer db.Close()

	w := testutil.DoRequest(t, r, http.MethodPost, "/api/logout", nil, "")

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Contains(t, response["message"], "Logout")
}

func TestMe_Success(t *testing.T) {
	r, mock, db := testutil.SetupTestRouter(t)
	defer db.Close()

	token := testutil.IssueTestToken(t, 5, "taro@example.com")

	rows := sqlmock.NewRows([]string{"id", "email"}).AddRow(5, "taro@example.com")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, email FROM users WHERE id = ?")).
		WithArgs(5).
		WillReturnRows(rows)

	w := testutil.DoRequest(t, r, http.MethodGet, "/api/user", nil, token)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, float64(5), response["id"]) // 数値はfloat64でデコードされる
	assert.Equal(t, "taro@example.com", response["email"])
}

func TestMe_StoreError(t *testing.T) {
	r, mock, db := testutil.SetupTestRouter(t)
	defer db.Close()

	token := testutil.IssueTestToken(t, 5, "taro@example.com")

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, email FROM users WHERE id = ?")).
		WithArgs(5).
		WillReturnError(sql.ErrConnDone)

	w := testutil.DoRequest(t, r, http.MethodGet, "/api/user", nil, token)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
