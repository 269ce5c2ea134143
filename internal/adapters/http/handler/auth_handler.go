package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rwagatenga/FarmerOrderingSystemBackend/internal/adapters/http/dto"
	"github.com/rwagatenga/FarmerOrderingSystemBackend/internal/adapters/http/middleware"
	"github.com/rwagatenga/FarmerOrderingSystemBackend/internal/adapters/http/utils"
	"github.com/rwagatenga/FarmerOrderingSystemBackend/internal/domain"
	"github.com/rwagatenga/FarmerOrderingSystemBackend/internal/usecase"
)

type AuthHandler struct {
	AuthSvc  *usecase.AuthService
	Logger   domain.LoggingRepository
	Recorder domain.ErrorRecorder
}

func NewAuthHandler(authsvc *usecase.AuthService, logger domain.LoggingRepository, recorder domain.ErrorRecorder) *AuthHandler {
	return &AuthHandler{AuthSvc: authsvc, Logger: logger, Recorder: recorder}
}

func (h *AuthHandler) LoginHandler(c *gin.Context) {
	req := c.MustGet("payload").(dto.LoginRequest)

	resp, err := h.AuthSvc.Login(c.Request.Context(), domain.LoginUser{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.AbortWithError(c, h.Recorder, err)
		return
	}

	c.Header("Authorization", "Bearer "+resp.Token)
	h.Logger.Info("http_request_end", "request_id", c.GetString("RequestID"), "status", http.StatusOK)
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	token := middleware.BearerToken(c)
	if token == "" {
		httpErr := utils.HttpError{Message: "No token provided", Code: domain.ErrCodeUnauthorized, StatusCode: http.StatusUnauthorized}
		c.AbortWithStatusJSON(httpErr.StatusCode, httpErr)
		return
	}

	resp, err := h.AuthSvc.Logout(c.Request.Context(), token)
	if err != nil {
		utils.AbortWithError(c, h.Recorder, err)
		return
	}

	h.Logger.Info("http_request_end", "request_id", c.GetString("RequestID"), "status", http.StatusOK)
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) RefreshHandler(c *gin.Context) {
	req := c.MustGet("payload").(dto.RefreshRequest)

	accessToken := middleware.BearerToken(c)
	if accessToken == "" {
		httpErr := utils.HttpError{Message: "No token provided", Code: domain.ErrCodeUnauthorized, StatusCode: http.StatusUnauthorized}
		c.AbortWithStatusJSON(httpErr.StatusCode, httpErr)
		return
	}

	resp, err := h.AuthSvc.Refresh(c.Request.Context(), req.RefreshToken, accessToken)
	if err != nil {
		utils.AbortWithError(c, h.Recorder, err)
		return
	}

	c.Header("Authorization", "Bearer "+resp.Token)
	h.Logger.Info("http_request_end", "request_id", c.GetString("RequestID"), "status", http.StatusOK)
	c.JSON(http.StatusOK, resp)
}
