package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"harvest/internal/delivery/http/middleware"
	"harvest/internal/delivery/http/response"
	"harvest/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	Logger    *slog.Logger
}

// AccountHandler serves the profile and vendor-registration endpoints.
type AccountHandler struct {
	accountUC usecase.AccountUsecase
	logger    *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		accountUC: params.AccountUC,
		logger:    params.Logger,
	}
}

// RegisterProfile handles the first post-auth registration step
func (h *AccountHandler) RegisterProfile(c echo.Context) error {
	uid, ok := middleware.GetUID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req usecase.RegisterProfileInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	profile, err := h.accountUC.RegisterProfile(c.Request().Context(), uid, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, profile, "Profile registered successfully")
}

// GetProfile handles the profile read
func (h *AccountHandler) GetProfile(c echo.Context) error {
	uid, ok := middleware.GetUID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	profile, err := h.accountUC.GetProfile(c.Request().Context(), uid)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile, "Profile retrieved successfully")
}

// RegisterVendor handles the multipart vendor application: form fields
// plus optional certificate and ISO files.
func (h *AccountHandler) RegisterVendor(c echo.Context) error {
	req := usecase.RegisterVendorInput{
		Email:            c.FormValue("email"),
		Password:         c.FormValue("password"),
		RegistrationType: c.FormValue("registration_type"),
		CompanyName:      c.FormValue("company_name"),
		RegisterNo:       c.FormValue("register_no"),
		CompanyType:      c.FormValue("company_type"),
		GSTNo:            c.FormValue("gst_no"),
		PhoneNumber:      c.FormValue("phone_number"),
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	certificate, closeCert, err := openFormFile(c, "certificate")
	if err != nil {
		return response.BadRequest(c, "INVALID_FILE", "Failed to read certificate file")
	}
	if closeCert != nil {
		defer closeCert()
	}
	req.Certificate = certificate

	iso, closeISO, err := openFormFile(c, "iso")
	if err != nil {
		return response.BadRequest(c, "INVALID_FILE", "Failed to read ISO certificate file")
	}
	if closeISO != nil {
		defer closeISO()
	}
	req.ISO = iso

	out, err := h.accountUC.RegisterVendor(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, out, "Vendor registration submitted")
}

// openFormFile opens an optional multipart file field. A missing field is
// not an error; the caller gets a nil upload.
func openFormFile(c echo.Context, field string) (*usecase.FileUpload, func(), error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil, nil
		}

		return nil, nil, err
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, nil, err
	}

	upload := &usecase.FileUpload{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Body:        file,
	}

	return upload, func() { file.Close() }, nil
}
