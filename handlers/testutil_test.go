package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"restaurant-manager-api/config"
	"restaurant-manager-api/middleware"
	"restaurant-manager-api/models"
	"restaurant-manager-api/routes"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupRouter wires the full engine against a fresh in-memory database.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("database handle: %v", err)
	}
	// A second connection would see an empty :memory: database
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.User{},
		&models.FoodCategory{},
		&models.FoodItem{},
		&models.Table{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	config.DB = db

	r := gin.New()
	routes.SetupRoutes(r)
	return r
}

func createUser(t *testing.T, username, email, password string, role models.UserRole) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := config.DB.Create(user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func tokenFor(t *testing.T, user *models.User) string {
	t.Helper()
	token, err := middleware.GenerateToken(user)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return token
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type envelope struct {
	StatusCode int             `json:"statusCode"`
	Data       json.RawMessage `json:"data"`
	Message    string          `json:"message"`
	Success    bool            `json:"success"`
	Errors     []string        `json:"errors"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v (body: %s)", err, w.Body.String())
	}
	if env.StatusCode != w.Code {
		t.Errorf("envelope statusCode = %d, response status = %d", env.StatusCode, w.Code)
	}
	if env.Success != (env.StatusCode < 400) {
		t.Errorf("envelope success = %v for statusCode %d", env.Success, env.StatusCode)
	}
	return env
}
