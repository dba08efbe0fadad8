package handlers

import (
	"errors"
	"net/http"

	"github.com/anapiyani/Checkdaily-backend/internal/auth"
	dom "github.com/anapiyani/Checkdaily-backend/internal/domain"
	"github.com/anapiyani/Checkdaily-backend/internal/dto"
	"github.com/anapiyani/Checkdaily-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SettingsHandler handles the user profile and account deletion.
type SettingsHandler struct {
	userSvc *service.UserService
}

// NewSettingsHandler returns a new SettingsHandler.
func NewSettingsHandler(userSvc *service.UserService) *SettingsHandler {
	return &SettingsHandler{userSvc: userSvc}
}

// Get godoc
// @Summary      Get the current user's profile
// @Tags         user
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.UserProfileResponse
// @Failure      401  {object}  map[string]string
// @Router       /user/settings [get]
func (h *SettingsHandler) Get(c *gin.Context) {
	user, err := h.userSvc.GetByID(c.Request.Context(), auth.UserIDFromContext(c))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
		return
	}
	c.JSON(http.StatusOK, profileToResponse(user))
}

// Update godoc
// @Summary      Update the current user's profile
// @Tags         user
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      dto.UpdateProfileRequest  true  "Partial profile update"
// @Success      200   {object}  dto.UserProfileResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /user/settings [put]
func (h *SettingsHandler) Update(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := h.userSvc.UpdateProfile(c.Request.Context(), auth.UserIDFromContext(c),
		req.Username, req.Email, req.DisplayName, req.Bio, req.ProfilePictureURL)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUsernameTaken):
			c.JSON(http.StatusConflict, gin.H{"error": "username already taken"})
		case errors.Is(err, service.ErrEmailTaken):
			c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update profile"})
		}
		return
	}
	c.JSON(http.StatusOK, profileToResponse(user))
}

// DeleteAccount godoc
// @Summary      Delete the current user's account
// @Tags         user
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      dto.DeleteAccountRequest  true  "Password confirmation"
// @Success      200   {object}  map[string]bool
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /user/account [delete]
func (h *SettingsHandler) DeleteAccount(c *gin.Context) {
	var req dto.DeleteAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	err := h.userSvc.DeleteAccount(c.Request.Context(), auth.UserIDFromContext(c), req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete account"})
		return
	}
	c.SetCookie(sessionCookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func profileToResponse(u dom.User) dto.UserProfileResponse {
	return dto.UserProfileResponse{
		ID:                u.ID,
		Username:          u.Username,
		Email:             u.Email,
		DisplayName:       u.DisplayName,
		Bio:               u.Bio,
		ProfilePictureURL: u.ProfilePictureURL,
		CreatedAt:         u.CreatedAt,
	}
}
