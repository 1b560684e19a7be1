package admin

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mentorloop/internal/database"
	"mentorloop/internal/domain"
	"mentorloop/internal/middleware"
	"mentorloop/internal/pkg/jwt"
	"mentorloop/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type fixture struct {
	router    *gin.Engine
	jwt       *jwt.Service
	learners  *repository.SignupRepository
	inquiries *repository.ContactRepository
}

func setupRouter(t *testing.T) fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, repository.Migrate(db))

	learners := repository.NewSignupRepository(db, domain.VariantLearner)
	mentors := repository.NewSignupRepository(db, domain.VariantMentor)
	inquiries := repository.NewContactRepository(db)

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	jwtSvc := jwt.New("test-secret", time.Hour)
	service := NewService("ops@mentorloop.dev", string(hash), jwtSvc, learners, mentors, inquiries)
	handler := NewHandler(service)

	router := gin.New()
	adminGroup := router.Group("/api/v1/admin")
	handler.RegisterPublicRoutes(adminGroup)

	protected := adminGroup.Group("")
	protected.Use(middleware.AdminAuth(jwtSvc))
	handler.RegisterProtectedRoutes(protected)

	return fixture{router: router, jwt: jwtSvc, learners: learners, inquiries: inquiries}
}

func performRequest(router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func decode(t *testing.T, resp *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &env))
	return env
}

func TestLoginEndpoint(t *testing.T) {
	fx := setupRouter(t)

	resp := performRequest(fx.router, http.MethodPost, "/api/v1/admin/login", "",
		gin.H{"email": "ops@mentorloop.dev", "password": "hunter2hunter2"})

	require.Equal(t, http.StatusOK, resp.Code)
	env := decode(t, resp)
	require.True(t, env.Success)

	var data struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.NotEmpty(t, data.Token)
}

func TestLoginEndpoint_BadCredentials(t *testing.T) {
	fx := setupRouter(t)

	resp := performRequest(fx.router, http.MethodPost, "/api/v1/admin/login", "",
		gin.H{"email": "ops@mentorloop.dev", "password": "nope"})

	require.Equal(t, http.StatusUnauthorized, resp.Code)
	env := decode(t, resp)
	assert.Equal(t, "INVALID_CREDENTIALS", env.Error.Code)
}

func TestListSignups_RequiresToken(t *testing.T) {
	fx := setupRouter(t)

	resp := performRequest(fx.router, http.MethodGet, "/api/v1/admin/signups", "", nil)

	require.Equal(t, http.StatusUnauthorized, resp.Code)
	env := decode(t, resp)
	assert.Equal(t, "UNAUTHORIZED", env.Error.Code)
}

func TestListSignups_RejectsNonAdminToken(t *testing.T) {
	fx := setupRouter(t)

	token, err := fx.jwt.GenerateToken("visitor@example.com", "visitor")
	require.NoError(t, err)

	resp := performRequest(fx.router, http.MethodGet, "/api/v1/admin/signups", token, nil)
	require.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestListSignups(t *testing.T) {
	fx := setupRouter(t)

	require.NoError(t, fx.learners.Create(t.Context(), &domain.Signup{
		Email:     "lead@example.com",
		FirstName: "Dana",
		LastName:  "Reyes",
		Interest:  "woodworking",
		HowHeard:  domain.SourceFriend,
	}))

	token, err := fx.jwt.GenerateToken("ops@mentorloop.dev", "admin")
	require.NoError(t, err)

	resp := performRequest(fx.router, http.MethodGet, "/api/v1/admin/signups?variant=learner", token, nil)
	require.Equal(t, http.StatusOK, resp.Code)

	env := decode(t, resp)
	require.True(t, env.Success)

	var data struct {
		Variant string       `json:"variant"`
		Signups []SignupItem `json:"signups"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "learner", data.Variant)
	require.Len(t, data.Signups, 1)
	assert.Equal(t, "lead@example.com", data.Signups[0].Email)
	assert.Equal(t, "Dana", data.Signups[0].FirstName)
}

func TestListSignups_InvalidVariant(t *testing.T) {
	fx := setupRouter(t)

	token, err := fx.jwt.GenerateToken("ops@mentorloop.dev", "admin")
	require.NoError(t, err)

	resp := performRequest(fx.router, http.MethodGet, "/api/v1/admin/signups?variant=ghost", token, nil)
	require.Equal(t, http.StatusBadRequest, resp.Code)
	env := decode(t, resp)
	assert.Equal(t, "INVALID_VARIANT", env.Error.Code)
}

func TestListInquiries(t *testing.T) {
	fx := setupRouter(t)

	require.NoError(t, fx.inquiries.Create(t.Context(), &domain.ContactInquiry{
		FirstName: "Pat",
		LastName:  "Lim",
		Email:     "pat@example.com",
		Message:   "Do you cover pottery?",
		Status:    domain.InquiryStatusNew,
	}))

	token, err := fx.jwt.GenerateToken("ops@mentorloop.dev", "admin")
	require.NoError(t, err)

	resp := performRequest(fx.router, http.MethodGet, "/api/v1/admin/inquiries", token, nil)
	require.Equal(t, http.StatusOK, resp.Code)

	env := decode(t, resp)
	var data struct {
		Inquiries []InquiryItem `json:"inquiries"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Len(t, data.Inquiries, 1)
	assert.Equal(t, "Pat Lim", data.Inquiries[0].Name)
	assert.Equal(t, domain.InquiryStatusNew, data.Inquiries[0].Status)
}
