package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/AyushiSrivastava11/VRV-Backend/internal/logger"
	"github.com/AyushiSrivastava11/VRV-Backend/internal/middleware"
	"github.com/AyushiSrivastava11/VRV-Backend/internal/usecase/staff"
	appErrors "github.com/AyushiSrivastava11/VRV-Backend/pkg/errors"
	"github.com/AyushiSrivastava11/VRV-Backend/pkg/token"
	"github.com/AyushiSrivastava11/VRV-Backend/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type StaffHandler struct {
	service       *staff.Service
	codec         *token.Codec
	secureCookies bool
}

func NewStaffHandler(service *staff.Service, codec *token.Codec, secureCookies bool) *StaffHandler {
	return &StaffHandler{
		service:       service,
		codec:         codec,
		secureCookies: secureCookies,
	}
}

// RegisterRoutes mounts the unauthenticated staff endpoints.
func (h *StaffHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/register", h.Register)
	router.POST("/activate", h.Activate)
	router.POST("/login", h.Login)
	router.GET("/refresh", h.Refresh)
}

// RegisterProtectedRoutes mounts endpoints behind the auth middleware.
func (h *StaffHandler) RegisterProtectedRoutes(router *gin.RouterGroup) {
	router.GET("/logout", h.Logout)
	router.GET("/me", h.Me)
	router.PUT("/update-info", h.UpdateInfo)
	router.PUT("/change-password", h.ChangePassword)
}

// RegisterAdminRoutes mounts admin-only endpoints. The caller attaches the
// role gate.
func (h *StaffHandler) RegisterAdminRoutes(router *gin.RouterGroup) {
	router.PUT("/update-user-role", h.UpdateRole)
	router.DELETE("/delete-user/:id", h.DeleteUser)
	router.GET("/get-all-users", h.GetAllUsers)
	router.GET("/get-all-active-members", h.GetAllActiveMembers)
}

func (h *StaffHandler) Register(c *gin.Context) {
	var req staff.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Name = utils.SanitizeString(req.Name)
	req.Email = utils.SanitizeEmail(req.Email)

	resp, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK,
		fmt.Sprintf("Activation code sent to %s", resp.Email), resp)
}

func (h *StaffHandler) Activate(c *gin.Context) {
	var req staff.ActivateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	account, err := h.service.Activate(c.Request.Context(), &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Account activated successfully", account)
}

func (h *StaffHandler) Login(c *gin.Context) {
	var req staff.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Email = utils.SanitizeEmail(req.Email)

	auth, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.setSessionCookies(c, auth.Pair())
	utils.SuccessResponse(c, http.StatusOK, "Login successful", auth)
}

func (h *StaffHandler) Refresh(c *gin.Context) {
	refreshToken, err := c.Cookie(middleware.RefreshTokenCookie)
	if err != nil || refreshToken == "" {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Login first to access this resource")
		return
	}

	pair, err := h.service.Refresh(c.Request.Context(), refreshToken)
	if err != nil {
		h.clearSessionCookies(c)
		respondWithError(c, err)
		return
	}

	h.setSessionCookies(c, pair)
	utils.SuccessResponse(c, http.StatusOK, "Token refreshed", gin.H{
		"access_token": pair.AccessToken,
		"expires_at":   pair.ExpiresAt,
	})
}

func (h *StaffHandler) Logout(c *gin.Context) {
	account := middleware.Principal(c)
	refreshToken, _ := c.Cookie(middleware.RefreshTokenCookie)

	if err := h.service.Logout(c.Request.Context(), account.ID, refreshToken); err != nil {
		logger.Error("Failed to revoke session on logout",
			zap.String("account_id", account.ID.String()),
			zap.Error(err),
		)
	}

	h.clearSessionCookies(c)
	utils.SuccessResponse(c, http.StatusOK, "Logged out successfully", nil)
}

func (h *StaffHandler) Me(c *gin.Context) {
	account := middleware.Principal(c)
	utils.SuccessResponse(c, http.StatusOK, "User retrieved successfully",
		staff.ToAccountResponse(account))
}

func (h *StaffHandler) UpdateInfo(c *gin.Context) {
	account := middleware.Principal(c)

	var req staff.UpdateInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Name != nil {
		sanitized := utils.SanitizeString(*req.Name)
		req.Name = &sanitized
	}

	updated, err := h.service.UpdateInfo(c.Request.Context(), account.ID, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "User updated successfully", updated)
}

func (h *StaffHandler) ChangePassword(c *gin.Context) {
	account := middleware.Principal(c)

	var req staff.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.service.ChangePassword(c.Request.Context(), account.ID, &req); err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Password changed successfully", nil)
}

func (h *StaffHandler) UpdateRole(c *gin.Context) {
	var req staff.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.service.UpdateRole(c.Request.Context(), &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "User role updated successfully", updated)
}

func (h *StaffHandler) DeleteUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "User deleted successfully", nil)
}

func (h *StaffHandler) GetAllUsers(c *gin.Context) {
	users, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Users retrieved successfully", users)
}

func (h *StaffHandler) GetAllActiveMembers(c *gin.Context) {
	users, err := h.service.GetAllActive(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Active members retrieved successfully", users)
}

func (h *StaffHandler) setSessionCookies(c *gin.Context, pair *token.TokenPair) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AccessTokenCookie, pair.AccessToken,
		int(h.codec.AccessTTL().Seconds()), "/", "", h.secureCookies, true)
	c.SetCookie(middleware.RefreshTokenCookie, pair.RefreshToken,
		int(h.codec.RefreshTTL().Seconds()), "/", "", h.secureCookies, true)
}

func (h *StaffHandler) clearSessionCookies(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AccessTokenCookie, "", -1, "/", "", h.secureCookies, true)
	c.SetCookie(middleware.RefreshTokenCookie, "", -1, "/", "", h.secureCookies, true)
}

// respondWithError maps service errors onto HTTP statuses. Anything outside
// the sentinel set is a 500 and gets logged with its request id.
func respondWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	switch {
	case errors.Is(err, appErrors.ErrEmailTaken),
		errors.Is(err, appErrors.ErrActivationTokenInvalid),
		errors.Is(err, appErrors.ErrActivationCodeMismatch),
		errors.Is(err, appErrors.ErrOTPInvalid),
		errors.Is(err, appErrors.ErrCategoryExists),
		errors.Is(err, appErrors.ErrCategoryInvalid),
		errors.Is(err, appErrors.ErrInvalidRole),
		errors.Is(err, appErrors.ErrInvalidInput),
		errors.Is(err, appErrors.ErrInvalidEmail),
		errors.Is(err, appErrors.ErrWeakPassword):
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, appErrors.ErrInvalidCredentials),
		errors.Is(err, appErrors.ErrInvalidToken),
		errors.Is(err, appErrors.ErrAccountInactive),
		errors.Is(err, appErrors.ErrUnauthorized):
		utils.ErrorResponse(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, appErrors.ErrInsufficientPermissions):
		utils.ErrorResponse(c, http.StatusForbidden, err.Error())
	case errors.Is(err, appErrors.ErrAccountNotFound),
		errors.Is(err, appErrors.ErrCustomerNotFound),
		errors.Is(err, appErrors.ErrCategoryNotFound),
		errors.Is(err, appErrors.ErrMenuItemNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())
	case errors.Is(err, appErrors.ErrMailDelivery),
		errors.Is(err, appErrors.ErrSMSDelivery):
		utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
	default:
		var appErr *appErrors.AppError
		if errors.As(err, &appErr) {
			utils.ErrorResponse(c, http.StatusBadRequest, appErr.Message)
			return
		}

		requestID := middleware.GetRequestID(c)
		logger.Error("Internal server error",
			zap.String("request_id", requestID),
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
			zap.Error(err),
		)
		utils.ErrorResponse(c, http.StatusInternalServerError, "Internal server error")
	}
}
