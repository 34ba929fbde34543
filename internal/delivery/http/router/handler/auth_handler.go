// Package handler contains the HTTP handlers for the application.
package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"stargaze/internal/delivery/http/middleware"
	"stargaze/internal/delivery/http/response"
	"stargaze/internal/usecase"
)

// registerAstrologerRequest is bound from the multipart form fields of the
// astrologer registration endpoint. The profile photo travels as a file
// part and is read separately.
type registerAstrologerRequest struct {
	FirstName       string `form:"first_name" validate:"required"`
	LastName        string `form:"last_name"`
	MobileNumber    string `form:"mobile_number"`
	AadharNumber    string `form:"aadhar_number"`
	DOB             string `form:"dob"`
	Gender          string `form:"gender"`
	ExperienceYears string `form:"experience_years"`
	LanguagesKnown  string `form:"languages_known"`
	Skills          string `form:"skills"`
	Email           string `form:"email" validate:"required,email"`
	District        string `form:"district"`
	PinCode         string `form:"pin_code"`
	RatePerMin      string `form:"rate_per_min"`
	Password        string `form:"password" validate:"required"`
}

// registerClientRequest is bound from the JSON body of the client
// registration endpoint.
type registerClientRequest struct {
	FirstName    string `json:"first_name" validate:"required"`
	LastName     string `json:"last_name"`
	DOB          string `json:"dob"`
	City         string `json:"city"`
	Birthplace   string `json:"birthplace"`
	MobileNumber string `json:"mobile_number"`
	BirthTime    string `json:"birth_time"`
	Gender       string `json:"gender"`
	Email        string `json:"email" validate:"required,email"`
	District     string `json:"district"`
	PinCode      string `json:"pin_code"`
	Password     string `json:"password" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

type registerResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// AuthHandler holds dependencies for registration and login handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// RegisterAstrologer handles the astrologer registration request.
func (h *AuthHandler) RegisterAstrologer(c echo.Context) error {
	var req registerAstrologerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	photo, err := readProfilePhoto(c)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Could not read the profile photo")
	}

	output, err := h.uc.RegisterAstrologer(c.Request().Context(), &usecase.RegisterAstrologerInput{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		MobileNumber:    req.MobileNumber,
		AadharNumber:    req.AadharNumber,
		DOB:             req.DOB,
		Gender:          req.Gender,
		ExperienceYears: req.ExperienceYears,
		LanguagesKnown:  req.LanguagesKnown,
		Skills:          req.Skills,
		Email:           req.Email,
		District:        req.District,
		PinCode:         req.PinCode,
		RatePerMin:      req.RatePerMin,
		Password:        req.Password,
		ProfilePhoto:    photo,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, registerResponse{
		ID:    output.ID,
		Email: output.Email,
	}, "Astrologer registered successfully!")
}

// RegisterClient handles the client registration request.
func (h *AuthHandler) RegisterClient(c echo.Context) error {
	var req registerClientRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.RegisterClient(c.Request().Context(), &usecase.RegisterClientInput{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		DOB:          req.DOB,
		City:         req.City,
		Birthplace:   req.Birthplace,
		MobileNumber: req.MobileNumber,
		BirthTime:    req.BirthTime,
		Gender:       req.Gender,
		Email:        req.Email,
		District:     req.District,
		PinCode:      req.PinCode,
		Password:     req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, registerResponse{
		ID:    output.ID,
		Email: output.Email,
	}, "User registered successfully!")
}

// LoginAstrologer handles the astrologer login request.
func (h *AuthHandler) LoginAstrologer(c echo.Context) error {
	return h.login(c, h.uc.LoginAstrologer)
}

// LoginClient handles the client login request.
func (h *AuthHandler) LoginClient(c echo.Context) error {
	return h.login(c, h.uc.LoginClient)
}

func (h *AuthHandler) login(c echo.Context, loginFn func(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error)) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := loginFn(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, loginResponse{Token: output.Token}, "Login successful")
}

// Profile returns the identity carried by the bearer token. It exists
// mainly so clients can verify a stored token is still accepted.
func (h *AuthHandler) Profile(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid subject in token")
	}
	email, _ := c.Get(middleware.ContextKeyEmail).(string)

	return response.Success(c, http.StatusOK, map[string]string{
		"id":    userID.String(),
		"email": email,
	}, "Profile retrieved successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

// readProfilePhoto extracts the optional photo file part. A missing part
// is not an error; the column stays null.
func readProfilePhoto(c echo.Context) ([]byte, error) {
	fileHeader, err := c.FormFile("profile_photo")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to open profile photo part")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, errors.Wrap(err, "failed to open profile photo part")
	}
	defer file.Close()

	photo, err := io.ReadAll(file)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read profile photo part")
	}

	return photo, nil
}
