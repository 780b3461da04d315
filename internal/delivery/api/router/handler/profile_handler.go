package handler

import (
	"log/slog"
	"net/http"

	"pluma/internal/delivery/api/middleware"
	"pluma/internal/delivery/api/response"
	domainerrors "pluma/internal/domain/errors"
	"pluma/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const avatarFormField = "avatar"

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// ProfileHandler serves the profile page.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler.
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// UpdateUsernameRequest is the body of PUT /api/v1/profile.
type UpdateUsernameRequest struct {
	Username string `json:"username" validate:"required,max=30"`
}

// ProfileResponse is the profile page.
type ProfileResponse struct {
	Profile    ProfileView   `json:"profile"`
	OwnedBooks []ProductView `json:"meus_livros"`
}

// GetProfile returns the account and the reader's books.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.AuthRequired(c)
	}

	output, err := h.profileUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ProfileResponse{
		Profile:    toProfileView(output.Profile),
		OwnedBooks: toProductViews(output.OwnedBooks),
	})
}

// UpdateUsername changes the public username.
func (h *ProfileHandler) UpdateUsername(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.AuthRequired(c)
	}

	var req UpdateUsernameRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	profile, err := h.profileUC.UpdateUsername(c.Request().Context(), userID, req.Username)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProfileView(profile))
}

// UploadAvatar stores the multipart "avatar" file and returns the updated profile.
func (h *ProfileHandler) UploadAvatar(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.AuthRequired(c)
	}

	fileHeader, err := c.FormFile(avatarFormField)
	if err != nil {
		return response.AppError(c, domainerrors.ErrAvatarInvalid.WithDetails("campo avatar ausente"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.AppError(c, domainerrors.ErrAvatarInvalid.WithDetails("arquivo ilegível"))
	}
	defer file.Close()

	profile, err := h.profileUC.UploadAvatar(c.Request().Context(), userID, usecase.AvatarUpload{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(echo.HeaderContentType),
		Size:        fileHeader.Size,
		Content:     file,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProfileView(profile))
}
