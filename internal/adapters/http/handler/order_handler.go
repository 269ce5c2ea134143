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

type OrderHandler struct {
	OrderSvc *usecase.OrderService
	Logger   domain.LoggingRepository
	Recorder domain.ErrorRecorder
}

func NewOrderHandler(ordersvc *usecase.OrderService, logger domain.LoggingRepository, recorder domain.ErrorRecorder) *OrderHandler {
	return &OrderHandler{OrderSvc: ordersvc, Logger: logger, Recorder: recorder}
}

func (h *OrderHandler) CreateOrderHandler(c *gin.Context) {
	req := c.MustGet("payload").(dto.CreateOrderRequest)

	order, err := h.OrderSvc.CreateOrder(c.Request.Context(), &domain.Order{
		FarmerID:                  req.FarmerID,
		LandID:                    req.LandID,
		FertilizerID:              req.FertilizerID,
		SeedID:                    req.SeedID,
		FertilizerQuantityOrdered: req.FertilizerQuantityOrdered,
		SeedQuantityOrdered:       req.SeedQuantityOrdered,
	})
	if err != nil {
		utils.AbortWithError(c, h.Recorder, err)
		return
	}

	h.Logger.Info("http_request_end", "request_id", c.GetString("RequestID"), "status", http.StatusCreated)
	c.JSON(http.StatusCreated, gin.H{"success": true, "order": order})
}

func (h *OrderHandler) GetOrderHandler(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		httpErr := utils.HttpError{Message: "Required fields are missing or invalid", Code: domain.ErrCodeValidation, StatusCode: http.StatusBadRequest}
		c.AbortWithStatusJSON(httpErr.StatusCode, httpErr)
		return
	}

	order, err := h.OrderSvc.GetOrder(c.Request.Context(), id)
	if err != nil {
		utils.AbortWithError(c, h.Recorder, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "order": order})
}

func (h *OrderHandler) ListOrdersHandler(c *gin.Context) {
	page, perPage := pageParams(c)
	farmerID := c.Query("farmerID")

	resp, err := h.OrderSvc.ListOrders(c.Request.Context(), farmerID, page, perPage)
	if err != nil {
		utils.AbortWithError(c, h.Recorder, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OrderHandler) UpdateOrderHandler(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		utils.AbortWithError(c, h.Recorder, domain.ErrAccessDenied)
		return
	}
	id := c.Query("id")
	if id == "" {
		httpErr := utils.HttpError{Message: "Required fields are missing or invalid", Code: domain.ErrCodeValidation, StatusCode: http.StatusBadRequest}
		c.AbortWithStatusJSON(httpErr.StatusCode, httpErr)
		return
	}
	req := c.MustGet("payload").(dto.UpdateOrderRequest)

	order, err := h.OrderSvc.UpdateOrder(c.Request.Context(), identity, id, domain.OrderStatusUpdate{
		Status:        domain.OrderStatus(req.Status),
		PaymentStatus: domain.PaymentStatus(req.PaymentStatus),
	})
	if err != nil {
		utils.AbortWithError(c, h.Recorder, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "order": order})
}
