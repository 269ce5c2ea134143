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

type FertilizerHandler struct {
	FertilizerSvc *usecase.FertilizerService
	Logger        domain.LoggingRepository
	Recorder      domain.ErrorRecorder
}

func NewFertilizerHandler(fertilizersvc *usecase.FertilizerService, logger domain.LoggingRepository, recorder domain.ErrorRecorder) *FertilizerHandler {
	return &FertilizerHandler{FertilizerSvc: fertilizersvc, Logger: logger, Recorder: recorder}
}

func (h *FertilizerHandler) CreateFertilizerHandler(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		utils.AbortWithError(c, h.Recorder, domain.ErrAccessDenied)
		return
	}
	req := c.MustGet("payload").(dto.CreateFertilizerRequest)

	fertilizer, err := h.FertilizerSvc.CreateFertilizer(c.Request.Context(), identity, &domain.Fertilizer{
		Name:               req.Name,
		QuantityAvailable:  req.QuantityAvailable,
		MaxQuantityPerAcre: req.MaxQuantityPerAcre,
		PricePerKg:         req.PricePerKg,
		PricingID:          req.PricingID,
	})
	if err != nil {
		utils.AbortWithError(c, h.Recorder, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "fertilizer": fertilizer})
}

func (h *FertilizerHandler) GetFertilizerHandler(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		httpErr := utils.HttpError{Message: "Required fields are missing or invalid", Code: domain.ErrCodeValidation, StatusCode: http.StatusBadRequest}
		c.AbortWithStatusJSON(httpErr.StatusCode, httpErr)
		return
	}

	fertilizer, err := h.FertilizerSvc.GetFertilizer(c.Request.Context(), id)
	if err != nil {
		utils.AbortWithError(c, h.Recorder, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "fertilizer": fertilizer})
}

func (h *FertilizerHandler) UpdateFertilizerHandler(c *gin.Context) {
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
	req := c.MustGet("payload").(dto.UpdateFertilizerRequest)

	fertilizer, err := h.FertilizerSvc.UpdateFertilizer(c.Request.Context(), identity, id, domain.FertilizerUpdate{
		Name:               req.Name,
		QuantityAvailable:  req.QuantityAvailable,
		MaxQuantityPerAcre: req.MaxQuantityPerAcre,
		PricePerKg:         req.PricePerKg,
		PricingID:          req.PricingID,
	})
	if err != nil {
		utils.AbortWithError(c, h.Recorder, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "fertilizer": fertilizer})
}

func (h *FertilizerHandler) ListFertilizersHandler(c *gin.Context) {
	page, perPage := pageParams(c)
	resp, err := h.FertilizerSvc.ListFertilizers(c.Request.Context(), page, perPage)
	if err != nil {
		utils.AbortWithError(c, h.Recorder, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *FertilizerHandler) GetAllFertilizersHandler(c *gin.Context) {
	fertilizers, err := h.FertilizerSvc.ListAllFertilizers(c.Request.Context())
	if err != nil {
		utils.AbortWithError(c, h.Recorder, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "fertilizers": fertilizers})
}

func (h *FertilizerHandler) DeleteFertilizerHandler(c *gin.Context) {
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

	if err := h.FertilizerSvc.DeleteFertilizer(c.Request.Context(), identity, id); err != nil {
		utils.AbortWithError(c, h.Recorder, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Fertilizer deleted successfully"})
}
