package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/skillconnect/skillconnect-backend/internal/auth"
	"github.com/skillconnect/skillconnect-backend/internal/database"
	"github.com/skillconnect/skillconnect-backend/internal/dtos"
	"github.com/skillconnect/skillconnect-backend/internal/models"
	"github.com/skillconnect/skillconnect-backend/internal/services"
)

func setupAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	auth.Init("test-secret")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Discard,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))

	h := NewAuthHandler(services.NewUserService(db))
	r := gin.New()
	r.POST("/auth/register/", h.Register)
	r.POST("/auth/login/", h.Login)
	r.GET("/auth/me/", auth.Middleware(), h.Me)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterLoginMeFlow(t *testing.T) {
	r := setupAuthRouter(t)

	w := postJSON(t, r, "/auth/register/", dtos.RegisterRequest{
		Email:    "f@x.com",
		Username: "free",
		Password: "hunter22!",
		Role:     models.RoleFreelancer,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var registered dtos.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &registered))
	assert.NotEmpty(t, registered.Token)
	assert.Equal(t, models.RoleFreelancer, registered.User.Role)

	w = postJSON(t, r, "/auth/login/", dtos.LoginRequest{
		Email:    "f@x.com",
		Password: "hunter22!",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var loggedIn dtos.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &loggedIn))

	req := httptest.NewRequest(http.MethodGet, "/auth/me/", nil)
	req.Header.Set("Authorization", "Bearer "+loggedIn.Token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var me dtos.UserSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &me))
	assert.Equal(t, "free", me.Username)
}

func TestLoginWrongPasswordIs401(t *testing.T) {
	r := setupAuthRouter(t)

	postJSON(t, r, "/auth/register/", dtos.RegisterRequest{
		Email:    "f@x.com",
		Username: "free",
		Password: "hunter22!",
		Role:     models.RoleFreelancer,
	})

	w := postJSON(t, r, "/auth/login/", dtos.LoginRequest{
		Email:    "f@x.com",
		Password: "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMeWithoutTokenIs401(t *testing.T) {
	r := setupAuthRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/auth/me/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRegisterMalformedBodyIs400(t *testing.T) {
	r := setupAuthRouter(t)

	w := postJSON(t, r, "/auth/register/", gin.H{"email": "not-an-email"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
