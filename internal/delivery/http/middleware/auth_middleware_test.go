package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stargaze/internal/domain/service"
)

type fakeTokenService struct {
	claims *service.Claims
	err    error
	seen   string
}

func (f *fakeTokenService) Issue(uuid.UUID, string) (string, error) { return "", nil }

func (f *fakeTokenService) Validate(tokenString string) (*service.Claims, error) {
	f.seen = tokenString
	if f.err != nil {
		return nil, f.err
	}

	return f.claims, nil
}

func runAuthenticated(t *testing.T, tokenSvc service.TokenService, authHeader string) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	m := NewAuthMiddleware(tokenSvc)
	handler := m.Authenticate(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))

	return rec, c
}

func TestAuthenticate_ValidToken(t *testing.T) {
	subjectID := uuid.New()
	tokenSvc := &fakeTokenService{claims: &service.Claims{ID: subjectID, Email: "a@x.com"}}

	rec, c := runAuthenticated(t, tokenSvc, "Bearer the-token")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "the-token", tokenSvc.seen)
	assert.Equal(t, subjectID, c.Get(ContextKeyUserID))
	assert.Equal(t, "a@x.com", c.Get(ContextKeyEmail))
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	rec, _ := runAuthenticated(t, &fakeTokenService{}, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_NotBearer(t *testing.T) {
	rec, _ := runAuthenticated(t, &fakeTokenService{}, "Basic abc")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	tokenSvc := &fakeTokenService{err: errors.New("signature is invalid")}

	rec, _ := runAuthenticated(t, tokenSvc, "Bearer bad-token")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
