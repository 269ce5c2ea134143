package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rwagatenga/FarmerOrderingSystemBackend/internal/adapters/http/dto"
	"github.com/rwagatenga/FarmerOrderingSystemBackend/internal/adapters/http/middleware"
	"github.com/rwagatenga/FarmerOrderingSystemBackend/internal/adapters/http/utils"
	"github.com/rwagatenga/FarmerOrderingSystemBackend/internal/domain"
	"github.com/rwagatenga/FarmerOrderingSystemBackend/internal/usecase"
)

type UserHandler struct {
	UserSvc  *usecase.UserService
	Logger   domain.LoggingRepository
	Recorder domain.ErrorRecorder
}

func NewUserHandler(usersvc *usecase.UserService, logger domain.LoggingRepository, recorder domain.ErrorRecorder) *UserHandler {
	return &UserHandler{UserSvc: usersvc, Logger: logger, Recorder: recorder}
}

func pageParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.Query("page"))
	perPage, _ := strconv.Atoi(c.Query("perPage"))
	return page, perPage
}

func (h *UserHandler) CreateUserHandler(c *gin.Context) {
	req := c.MustGet("payload").(dto.RegisterUserRequest)

	user, err := h.UserSvc.Register(c.Request.Context(), domain.RegisteredUser{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
		Category: domain.Category(req.Category),
		Password: req.Password,
	})
	if err != nil {
		utils.AbortWithError(c, h.Recorder, err)
		return
	}

	h.Logger.Info("http_request_end", "request_id", c.GetString("RequestID"), "status", http.StatusCreated)
	c.JSON(http.StatusCreated, gin.H{"success": true, "user": user})
}

func (h *UserHandler) GetUserHandler(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		httpErr := utils.HttpError{Message: "Required fields are missing or invalid", Code: domain.ErrCodeValidation, StatusCode: http.StatusBadRequest}
		c.AbortWithStatusJSON(httpErr.StatusCode, httpErr)
		return
	}

	user, err := h.UserSvc.GetUser(c.Request.Context(), id)
	if err != nil {
		utils.AbortWithError(c, h.Recorder, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

func (h *UserHandler) UpdateUserHandler(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		httpErr := utils.HttpError{Message: "Required fields are missing or invalid", Code: domain.ErrCodeValidation, StatusCode: http.StatusBadRequest}
		c.AbortWithStatusJSON(httpErr.StatusCode, httpErr)
		return
	}
	req := c.MustGet("payload").(dto.UpdateUserRequest)

	user, err := h.UserSvc.UpdateUser(c.Request.Context(), id, domain.UserUpdate{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		utils.AbortWithError(c, h.Recorder, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

func (h *UserHandler) ListFarmersHandler(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		utils.AbortWithError(c, h.Recorder, domain.ErrAccessDenied)
		return
	}

	page, perPage := pageParams(c)
	resp, err := h.UserSvc.ListFarmers(c.Request.Context(), identity, page, perPage)
	if err != nil {
		utils.AbortWithError(c, h.Recorder, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
