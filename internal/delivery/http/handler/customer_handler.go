package handler

import (
	"net/http"

	"github.com/AyushiSrivastava11/VRV-Backend/internal/middleware"
	"github.com/AyushiSrivastava11/VRV-Backend/internal/usecase/customer"
	"github.com/AyushiSrivastava11/VRV-Backend/pkg/token"
	"github.com/AyushiSrivastava11/VRV-Backend/pkg/utils"
	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	service       *customer.Service
	codec         *token.Codec
	secureCookies bool
}

func NewCustomerHandler(service *customer.Service, codec *token.Codec, secureCookies bool) *CustomerHandler {
	return &CustomerHandler{
		service:       service,
		codec:         codec,
		secureCookies: secureCookies,
	}
}

func (h *CustomerHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/send-otp", h.SendOTP)
	router.POST("/verify-otp", h.VerifyOTP)
}

func (h *CustomerHandler) RegisterProtectedRoutes(router *gin.RouterGroup) {
	router.GET("/orders", h.ListOrders)
}

func (h *CustomerHandler) SendOTP(c *gin.Context) {
	var req customer.RequestOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.service.RequestOTP(c.Request.Context(), &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "OTP sent successfully", resp)
}

func (h *CustomerHandler) VerifyOTP(c *gin.Context) {
	var req customer.VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	auth, err := h.service.VerifyOTP(c.Request.Context(), &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.CustomerTokenCookie, auth.Token,
		int(h.codec.CustomerTTL().Seconds()), "/", "", h.secureCookies, true)

	utils.SuccessResponse(c, http.StatusOK, "OTP verified successfully", auth)
}

func (h *CustomerHandler) ListOrders(c *gin.Context) {
	principal := middleware.CustomerPrincipal(c)

	orders, err := h.service.ListOrders(c.Request.Context(), principal.ID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Orders retrieved successfully", orders)
}
