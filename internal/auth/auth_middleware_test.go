package auth_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-ems/internal/auth"
	authMock "go-ems/internal/auth/mock"
	"go-ems/internal/token"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func setupGate(t *testing.T, repo auth.Repository, tokens token.Service) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", auth.Middleware(tokens, repo), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true, "user_id": c.GetString(auth.CtxUserIDKey)})
	})
	return r
}

func TestMiddleware_AllowsValidToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := authMock.NewMockRepository(ctrl)
	tokens := token.NewService(token.Config{Secret: "test-secret", TTL: time.Hour})

	userID := uuid.New()
	mockRepo.EXPECT().
		GetByID(gomock.Any(), userID).
		Return(&auth.User{ID: userID, Email: "me@example.com"}, nil)

	tok, err := tokens.Issue(userID.String())
	assert.NoError(t, err)

	r := setupGate(t, mockRepo, tokens)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, userID.String(), body["user_id"])
}

// Every failure mode must yield the exact same status and body: no header,
// a malformed header, a token signed with another key, an expired token, and
// a valid token whose identity has since been deleted.
func TestMiddleware_UniformUnauthorized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := authMock.NewMockRepository(ctrl)
	tokens := token.NewService(token.Config{Secret: "test-secret", TTL: time.Hour})

	deletedID := uuid.New()
	mockRepo.EXPECT().
		GetByID(gomock.Any(), deletedID).
		Return(nil, gorm.ErrRecordNotFound)

	foreign := token.NewService(token.Config{Secret: "other-secret", TTL: time.Hour})
	foreignTok, _ := foreign.Issue(uuid.New().String())

	expired := token.NewService(token.Config{Secret: "test-secret", TTL: -time.Minute})
	expiredTok, _ := expired.Issue(uuid.New().String())

	deletedTok, _ := tokens.Issue(deletedID.String())

	cases := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"malformed header", "Token abc"},
		{"unsigned token", "Bearer " + foreignTok},
		{"expired token", "Bearer " + expiredTok},
		{"deleted identity", "Bearer " + deletedTok},
	}

	r := setupGate(t, mockRepo, tokens)
	const wantBody = `{"message":"Not authorized to access this route","success":false}`

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.JSONEq(t, wantBody, w.Body.String())
		})
	}
}
