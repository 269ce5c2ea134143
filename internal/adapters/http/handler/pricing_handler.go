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

type PricingHandler struct {
	PricingSvc *usecase.PricingService
	Logger     domain.LoggingRepository
	Recorder   domain.ErrorRecorder
}

func NewPricingHandler(pricingsvc *usecase.PricingService, logger domain.LoggingRepository, recorder domain.ErrorRecorder) *PricingHandler {
	return &PricingHandler{PricingSvc: pricingsvc, Logger: logger, Recorder: recorder}
}

func (h *PricingHandler) CreatePricingHandler(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		utils.AbortWithError(c, h.Recorder, domain.ErrAccessDenied)
		return
	}
	req := c.MustGet("payload").(dto.CreatePricingRequest)

	pricing, err := h.PricingSvc.CreatePricing(c.Request.Context(), identity, &domain.Pricing{
		ProductType: domain.ProductType(req.ProductType),
		ProductID:   req.ProductID,
		PricePerKg:  req.PricePerKg,
	})
	if err != nil {
		utils.AbortWithError(c, h.Recorder, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "pricing": pricing})
}

func (h *PricingHandler) GetPricingHandler(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		httpErr := utils.HttpError{Message: "Required fields are missing or invalid", Code: domain.ErrCodeValidation, StatusCode: http.StatusBadRequest}
		c.AbortWithStatusJSON(httpErr.StatusCode, httpErr)
		return
	}

	pricing, err := h.PricingSvc.GetPricing(c.Request.Context(), id)
	if err != nil {
		utils.AbortWithError(c, h.Recorder, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "pricing": pricing})
}

func (h *PricingHandler) UpdatePricingHandler(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		utils.AbortWithError(c, h.Recorder, domain.ErrAccessDenied)
		return
	}
	id := c.Query("id")
	req := c.MustGet("payload").(dto.UpdatePricingRequest)

	pricing, err := h.PricingSvc.UpdatePrice(c.Request.Context(), identity, id, req.ProductID, req.PricePerKg)
	if err != nil {
		utils.AbortWithError(c, h.Recorder, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "pricing": pricing})
}

func (h *PricingHandler) ListPricingsHandler(c *gin.Context) {
	page, perPage := pageParams(c)
	resp, err := h.PricingSvc.ListPricings(c.Request.Context(), page, perPage)
	if err != nil {
		utils.AbortWithError(c, h.Recorder, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PricingHandler) GetAllPricingsHandler(c *gin.Context) {
	pricings, err := h.PricingSvc.ListAllPricings(c.Request.Context())
	if err != nil {
		utils.AbortWithError(c, h.Recorder, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "pricings": pricings})
}

func (h *PricingHandler) ProductPriceHandler(c *gin.Context) {
	productID := c.Query("productID")
	if productID == "" {
		httpErr := utils.HttpError{Message: "Required fields are missing or invalid", Code: domain.ErrCodeValidation, StatusCode: http.StatusBadRequest}
		c.AbortWithStatusJSON(httpErr.StatusCode, httpErr)
		return
	}

	pricing, err := h.PricingSvc.GetProductPrice(c.Request.Context(), productID)
	if err != nil {
		utils.AbortWithError(c, h.Recorder, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "pricing": pricing})
}
