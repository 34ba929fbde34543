package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stargaze/internal/delivery/http/middleware"
	"stargaze/internal/delivery/http/validator"
	domainerrors "stargaze/internal/domain/errors"
	"stargaze/internal/usecase"
)

// fakeAuthUsecase records inputs and plays back canned results.
type fakeAuthUsecase struct {
	registeredAstrologer *usecase.RegisterAstrologerInput
	registeredClient     *usecase.RegisterClientInput

	registerErr error
	loginErr    error
	token       string
}

func (f *fakeAuthUsecase) RegisterAstrologer(_ context.Context, input *usecase.RegisterAstrologerInput) (*usecase.RegisterOutput, error) {
	f.registeredAstrologer = input
	if f.registerErr != nil {
		return nil, f.registerErr
	}

	return &usecase.RegisterOutput{ID: uuid.New(), Email: input.Email}, nil
}

func (f *fakeAuthUsecase) RegisterClient(_ context.Context, input *usecase.RegisterClientInput) (*usecase.RegisterOutput, error) {
	f.registeredClient = input
	if f.registerErr != nil {
		return nil, f.registerErr
	}

	return &usecase.RegisterOutput{ID: uuid.New(), Email: input.Email}, nil
}

func (f *fakeAuthUsecase) LoginAstrologer(_ context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}

	return &usecase.LoginOutput{Token: f.token}, nil
}

func (f *fakeAuthUsecase) LoginClient(_ context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}

	return &usecase.LoginOutput{Token: f.token}, nil
}

func newTestEcho(t *testing.T, uc usecase.AuthUsecase) *echo.Echo {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	h := NewAuthHandler(uc, logger)
	e.POST("/register/astrologer", h.RegisterAstrologer)
	e.POST("/register/user", h.RegisterClient)
	e.POST("/login/astrologer", h.LoginAstrologer)
	e.POST("/login/user", h.LoginClient)
	e.GET("/health", HealthCheck)

	return e
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestAuthHandler_RegisterClient_Created(t *testing.T) {
	uc := &fakeAuthUsecase{}
	e := newTestEcho(t, uc)

	payload := `{"first_name":"Asha","last_name":"K","email":"a@x.com","password":"secret123","city":"Pune"}`
	req := httptest.NewRequest(http.MethodPost, "/register/user", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])

	require.NotNil(t, uc.registeredClient)
	assert.Equal(t, "a@x.com", uc.registeredClient.Email)
	assert.Equal(t, "Pune", uc.registeredClient.City)
}

func TestAuthHandler_RegisterClient_MissingFields(t *testing.T) {
	uc := &fakeAuthUsecase{}
	e := newTestEcho(t, uc)

	// No password.
	payload := `{"first_name":"Asha","email":"a@x.com"}`
	req := httptest.NewRequest(http.MethodPost, "/register/user", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.registeredClient, "validation failures must not reach the usecase")

	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
}

func TestAuthHandler_RegisterAstrologer_MultipartWithPhoto(t *testing.T) {
	uc := &fakeAuthUsecase{}
	e := newTestEcho(t, uc)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	require.NoError(t, writer.WriteField("first_name", "Ravi"))
	require.NoError(t, writer.WriteField("email", "ravi@x.com"))
	require.NoError(t, writer.WriteField("password", "secret123"))
	require.NoError(t, writer.WriteField("rate_per_min", "20"))
	part, err := writer.CreateFormFile("profile_photo", "photo.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte{0xff, 0xd8, 0xff})
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/register/astrologer", &buf)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	require.NotNil(t, uc.registeredAstrologer)
	assert.Equal(t, "ravi@x.com", uc.registeredAstrologer.Email)
	assert.Equal(t, "20", uc.registeredAstrologer.RatePerMin)
	assert.Equal(t, []byte{0xff, 0xd8, 0xff}, uc.registeredAstrologer.ProfilePhoto)
}

func TestAuthHandler_RegisterAstrologer_PhotoOptional(t *testing.T) {
	uc := &fakeAuthUsecase{}
	e := newTestEcho(t, uc)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	require.NoError(t, writer.WriteField("first_name", "Ravi"))
	require.NoError(t, writer.WriteField("email", "ravi@x.com"))
	require.NoError(t, writer.WriteField("password", "secret123"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/register/astrologer", &buf)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, uc.registeredAstrologer)
	assert.Nil(t, uc.registeredAstrologer.ProfilePhoto)
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	uc := &fakeAuthUsecase{registerErr: domainerrors.ErrEmailAlreadyRegistered}
	e := newTestEcho(t, uc)

	payload := `{"first_name":"Asha","email":"a@x.com","password":"secret123"}`
	req := httptest.NewRequest(http.MethodPost, "/register/user", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "This email is already registered.", body["message"])
}

func TestAuthHandler_Login_Success(t *testing.T) {
	uc := &fakeAuthUsecase{token: "signed-token"}
	e := newTestEcho(t, uc)

	payload := `{"email":"a@x.com","password":"secret123"}`
	req := httptest.NewRequest(http.MethodPost, "/login/user", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "signed-token", data["token"])
}

func TestAuthHandler_Login_Rejections(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		loginErr    error
		wantMessage string
	}{
		{
			name:        "unknown astrologer email",
			path:        "/login/astrologer",
			loginErr:    domainerrors.ErrNoAstrologerAccount,
			wantMessage: "No astrologer found with this email.",
		},
		{
			name:        "unknown user email",
			path:        "/login/user",
			loginErr:    domainerrors.ErrNoClientAccount,
			wantMessage: "No user found with this email.",
		},
		{
			name:        "wrong password",
			path:        "/login/user",
			loginErr:    domainerrors.ErrInvalidPassword,
			wantMessage: "Invalid password.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeAuthUsecase{loginErr: tt.loginErr}
			e := newTestEcho(t, uc)

			payload := `{"email":"a@x.com","password":"secret123"}`
			req := httptest.NewRequest(http.MethodPost, tt.path, strings.NewReader(payload))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)

			body := decodeBody(t, rec)
			assert.Equal(t, tt.wantMessage, body["message"])
		})
	}
}

func TestAuthHandler_InternalErrorIsSanitized(t *testing.T) {
	driverErr := domainerrors.NewDatabaseExecuteError(assert.AnError, "insert failed")
	uc := &fakeAuthUsecase{registerErr: driverErr}
	e := newTestEcho(t, uc)

	payload := `{"first_name":"Asha","email":"a@x.com","password":"secret123"}`
	req := httptest.NewRequest(http.MethodPost, "/register/user", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
}

func TestHealthCheck(t *testing.T) {
	e := newTestEcho(t, &fakeAuthUsecase{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
