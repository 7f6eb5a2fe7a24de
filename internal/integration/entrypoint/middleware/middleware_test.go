package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expense-tracker/backend/internal/application/adapter"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubTokenService struct {
	claims *adapter.TokenClaims
	err    error
	seen   string
}

func (s *stubTokenService) IssueToken(context.Context, uuid.UUID, string) (*adapter.IssuedToken, error) {
	return nil, errors.New("not used")
}

func (s *stubTokenService) ValidateToken(_ context.Context, token string) (*adapter.TokenClaims, error) {
	s.seen = token
	return s.claims, s.err
}

func (s *stubTokenService) RevokeToken(context.Context, *adapter.TokenClaims) error {
	return nil
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestAuthenticate(t *testing.T) {
	userID := uuid.New()
	valid := &adapter.TokenClaims{TokenID: "jti", UserID: userID, Email: "ana@x.com", ExpiresAt: time.Now().Add(time.Hour)}

	tests := []struct {
		name     string
		header   string
		svcErr   error
		wantCode int
		wantErr  domainerror.AuthErrorCode
	}{
		{name: "valid", header: "Bearer good", wantCode: http.StatusOK},
		{name: "lowercase scheme", header: "bearer good", wantCode: http.StatusOK},
		{name: "missing header", header: "", wantCode: http.StatusUnauthorized, wantErr: domainerror.ErrCodeMissingToken},
		{name: "basic auth", header: "Basic abc", wantCode: http.StatusUnauthorized, wantErr: domainerror.ErrCodeInvalidToken},
		{name: "empty token", header: "Bearer  ", wantCode: http.StatusUnauthorized, wantErr: domainerror.ErrCodeMissingToken},
		{name: "invalid", header: "Bearer bad", svcErr: domainerror.ErrInvalidToken, wantCode: http.StatusUnauthorized, wantErr: domainerror.ErrCodeInvalidToken},
		{name: "expired", header: "Bearer old", svcErr: domainerror.ErrExpiredToken, wantCode: http.StatusUnauthorized, wantErr: domainerror.ErrCodeExpiredToken},
		{name: "revoked", header: "Bearer gone", svcErr: domainerror.ErrRevokedToken, wantCode: http.StatusUnauthorized, wantErr: domainerror.ErrCodeRevokedToken},
		{name: "store down", header: "Bearer x", svcErr: errors.New("redis: connection refused"), wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubTokenService{claims: valid, err: tt.svcErr}
			if tt.svcErr != nil {
				svc.claims = nil
			}

			r := gin.New()
			r.GET("/me", NewAuthMiddleware(svc).Authenticate(), func(c *gin.Context) {
				id, ok := GetUserIDFromContext(c)
				require.True(t, ok)
				claims, ok := GetTokenClaimsFromContext(c)
				require.True(t, ok)
				c.JSON(http.StatusOK, gin.H{"id": id.String(), "email": claims.Email, "jti": claims.TokenID})
			})

			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			switch tt.wantCode {
			case http.StatusOK:
				assert.Equal(t, "good", svc.seen)
				assert.JSONEq(t, `{"id":"`+userID.String()+`","email":"ana@x.com","jti":"jti"}`, w.Body.String())
			case http.StatusUnauthorized:
				body := decodeError(t, w)
				assert.Equal(t, UnauthenticatedMessage, body.Message)
				assert.Equal(t, string(tt.wantErr), body.Code)
			}
		})
	}
}

func TestContextHelpers_Missing(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, ok := GetUserIDFromContext(c)
	assert.False(t, ok)
	_, ok = GetTokenClaimsFromContext(c)
	assert.False(t, ok)

	c.Set(string(UserIDKey), "not-a-uuid")
	_, ok = GetUserIDFromContext(c)
	assert.False(t, ok)
}

func newLimitedRouter(rl *RateLimiter) *gin.Engine {
	r := gin.New()
	r.POST("/login", rl.Middleware(), func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func login(r http.Handler, ip string) int {
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.RemoteAddr = ip + ":1234"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimiter(t *testing.T) {
	now := time.Date(2025, 10, 29, 10, 0, 0, 0, time.UTC)
	rl := NewRateLimiterWithConfig(2, time.Minute)
	rl.now = func() time.Time { return now }
	r := newLimitedRouter(rl)

	assert.Equal(t, http.StatusOK, login(r, "10.0.0.1"))
	assert.Equal(t, http.StatusOK, login(r, "10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, login(r, "10.0.0.1"))
	assert.Equal(t, http.StatusOK, login(r, "10.0.0.2"), "limits are per client")

	now = now.Add(61 * time.Second)
	assert.Equal(t, http.StatusOK, login(r, "10.0.0.1"), "window resets")
	assert.Len(t, rl.entries, 1, "expired windows are evicted")
}

func TestRateLimiter_Body(t *testing.T) {
	rl := NewRateLimiterWithConfig(1, time.Minute)
	r := newLimitedRouter(rl)
	login(r, "10.0.0.9")

	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.RemoteAddr = "10.0.0.9:1"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, string(domainerror.ErrCodeRateLimited), decodeError(t, w).Code)
}

func TestRateLimiter_Disabled(t *testing.T) {
	r := newLimitedRouter(NewRateLimiterWithConfig(0, time.Minute))
	for i := 0; i < 20; i++ {
		require.Equal(t, http.StatusOK, login(r, "10.0.0.1"))
	}
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	r := gin.New()
	r.Use(RequestLogger(logger))
	r.GET("/things/:id", func(c *gin.Context) { c.Status(http.StatusTeapot) })

	req := httptest.NewRequest(http.MethodGet, "/things/1", nil)
	req.Header.Set(RequestIDHeader, "req-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-123", w.Header().Get(RequestIDHeader))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "req-123", line["request_id"])
	assert.Equal(t, "/things/:id", line["path"])
	assert.Equal(t, float64(http.StatusTeapot), line["status"])
	assert.Equal(t, "WARN", line["level"])
}

func TestRequestLogger_GeneratesID(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	_, err := uuid.Parse(w.Header().Get(RequestIDHeader))
	assert.NoError(t, err)
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"http://localhost:3000/"}))
	r.GET("/api/me", func(c *gin.Context) { c.Status(http.StatusOK) })

	preflight := httptest.NewRequest(http.MethodOptions, "/api/me", nil)
	preflight.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, preflight)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "Authorization")

	get := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	get.Header.Set("Origin", "http://evil.example")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, get)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))

	foreignPreflight := httptest.NewRequest(http.MethodOptions, "/api/me", nil)
	foreignPreflight.Header.Set("Origin", "http://evil.example")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, foreignPreflight)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
