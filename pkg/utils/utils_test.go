package utils

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("unit-test-secret-value", time.Minute)
	token, err := issuer.CreateToken(12, "ada@example.com", "ADMIN")
	require.NoError(t, err)

	claims, err := issuer.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(12), claims.UserID)
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.Equal(t, "ADMIN", claims.Role)
}

func TestTokenIssuer_Rejects(t *testing.T) {
	issuer := NewTokenIssuer("unit-test-secret-value", time.Minute)

	other, err := NewTokenIssuer("a-different-secret", time.Minute).CreateToken(1, "a@b.c", "USER")
	require.NoError(t, err)
	_, err = issuer.ValidateToken(other)
	assert.Error(t, err)

	expired := &TokenIssuer{secret: issuer.secret, ttl: -time.Minute}
	stale, err := expired.CreateToken(1, "a@b.c", "USER")
	require.NoError(t, err)
	_, err = issuer.ValidateToken(stale)
	assert.Error(t, err)

	_, err = issuer.ValidateToken("not.a.jwt")
	assert.Error(t, err)
}

func TestHashPassword(t *testing.T) {
	hashed, err := HashPassword("s3cret!", 4)
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret!", hashed)
	assert.NoError(t, ComparePasswords(hashed, "s3cret!"))
	assert.Error(t, ComparePasswords(hashed, "wrong"))

	// out-of-range cost falls back to the default
	_, err = HashPassword("s3cret!", 99)
	assert.NoError(t, err)
}

func TestAppError_IsMatchesKind(t *testing.T) {
	err := NotFound("City with ID %d not found", 3)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrConflict))
	assert.Equal(t, "City with ID 3 not found", err.Error())
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))

	cause := errors.New("disk full")
	internal := Internal(cause)
	assert.ErrorIs(t, internal, cause)
	assert.Equal(t, "internal server error: disk full", internal.Error())
}

func TestHandleServiceError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name    string
		err     error
		code    int
		kind    ErrorKind
		message string
	}{
		{"not found", NotFound("missing"), http.StatusNotFound, KindNotFound, "missing"},
		{"validation", Validation("bad"), http.StatusBadRequest, KindValidation, "bad"},
		{"conflict", Conflict("taken"), http.StatusConflict, KindConflict, "taken"},
		{"forbidden", ErrForbidden, http.StatusForbidden, KindForbidden, ErrForbidden.Message},
		{"credentials", ErrInvalidCredentials, http.StatusUnauthorized, KindUnauthorized, ErrInvalidCredentials.Message},
		{"internal", Internal(errors.New("secret detail")), http.StatusInternalServerError, KindInternal, "Internal server error"},
		{"plain error", errors.New("secret detail"), http.StatusInternalServerError, KindInternal, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			c.Set("trace_id", "trace-1")

			HandleServiceError(c, tt.err)

			var body APIResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.code, w.Code)
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, "error", body.Status)
			assert.Equal(t, tt.kind, body.Kind)
			assert.Equal(t, tt.message, body.Message)
			assert.Equal(t, "trace-1", body.TraceID)
			assert.NotContains(t, w.Body.String(), "secret detail")
		})
	}
}

func TestHandleServiceError_LogsUnknownErrorOnce(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	restore := zap.ReplaceGlobals(zap.New(core))
	defer restore()

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	HandleServiceError(c, errors.New("disk on fire"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "internal error", logs.All()[0].Message)
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "musée du louvre", NormalizeName("  Musée du LOUVRE "))
	assert.Equal(t, "a@b.c", NormalizeEmail(" a@b.c "))
}

func TestTraceIDContext(t *testing.T) {
	ctx := WithTraceID(httptest.NewRequest(http.MethodGet, "/", nil).Context(), "abc")
	assert.Equal(t, "abc", TraceIDFrom(ctx))
	assert.Equal(t, "", TraceIDFrom(httptest.NewRequest(http.MethodGet, "/", nil).Context()))
}
