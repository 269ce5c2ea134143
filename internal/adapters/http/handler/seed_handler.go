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

type SeedHandler struct {
	SeedSvc  *usecase.SeedService
	Logger   domain.LoggingRepository
	Recorder domain.ErrorRecorder
}

func NewSeedHandler(seedsvc *usecase.SeedService, logger domain.LoggingRepository, recorder domain.ErrorRecorder) *SeedHandler {
	return &SeedHandler{SeedSvc: seedsvc, Logger: logger, Recorder: recorder}
}

func (h *SeedHandler) CreateSeedHandler(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		utils.AbortWithError(c, h.Recorder, domain.ErrAccessDenied)
		return
	}
	req := c.MustGet("payload").(dto.CreateSeedRequest)

	seed, err := h.SeedSvc.CreateSeed(c.Request.Context(), identity, &domain.Seed{
		Name:                  req.Name,
		QuantityAvailable:     req.QuantityAvailable,
		CompatibleFertilizers: req.CompatibleFertilizers,
		MaxQuantityPerAcre:    req.MaxQuantityPerAcre,
		PricePerKg:            req.PricePerKg,
		PricingID:             req.PricingID,
	})
	if err != nil {
		utils.AbortWithError(c, h.Recorder, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "seed": seed})
}

func (h *SeedHandler) GetSeedHandler(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		httpErr := utils.HttpError{Message: "Required fields are missing or invalid", Code: domain.ErrCodeValidation, StatusCode: http.StatusBadRequest}
		c.AbortWithStatusJSON(httpErr.StatusCode, httpErr)
		return
	}

	seed, err := h.SeedSvc.GetSeed(c.Request.Context(), id)
	if err != nil {
		utils.AbortWithError(c, h.Recorder, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "seed": seed})
}

func (h *SeedHandler) UpdateSeedHandler(c *gin.Context) {
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
	req := c.MustGet("payload").(dto.UpdateSeedRequest)

	seed, err := h.SeedSvc.UpdateSeed(c.Request.Context(), identity, id, domain.SeedUpdate{
		Name:                  req.Name,
		QuantityAvailable:     req.QuantityAvailable,
		CompatibleFertilizers: req.CompatibleFertilizers,
		MaxQuantityPerAcre:    req.MaxQuantityPerAcre,
		PricePerKg:            req.PricePerKg,
		PricingID:             req.PricingID,
	})
	if err != nil {
		utils.AbortWithError(c, h.Recorder, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "seed": seed})
}

func (h *SeedHandler) ListSeedsHandler(c *gin.Context) {
	page, perPage := pageParams(c)
	resp, err := h.SeedSvc.ListSeeds(c.Request.Context(), page, perPage)
	if err != nil {
		utils.AbortWithError(c, h.Recorder, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SeedHandler) GetAllSeedsHandler(c *gin.Context) {
	seeds, err := h.SeedSvc.ListAllSeeds(c.Request.Context())
	if err != nil {
		utils.AbortWithError(c, h.Recorder, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "seeds": seeds})
}

func (h *SeedHandler) DeleteSeedHandler(c *gin.Context) {
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

	if err := h.SeedSvc.DeleteSeed(c.Request.Context(), identity, id); err != nil {
		utils.AbortWithError(c, h.Recorder, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Seed deleted successfully"})
}
