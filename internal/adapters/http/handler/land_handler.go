package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rwagatenga/FarmerOrderingSystemBackend/internal/adapters/http/dto"
	"github.com/rwagatenga/FarmerOrderingSystemBackend/internal/adapters/http/utils"
	"github.com/rwagatenga/FarmerOrderingSystemBackend/internal/domain"
	"github.com/rwagatenga/FarmerOrderingSystemBackend/internal/usecase"
)

type LandHandler struct {
	LandSvc  *usecase.LandService
	Logger   domain.LoggingRepository
	Recorder domain.ErrorRecorder
}

func NewLandHandler(landsvc *usecase.LandService, logger domain.LoggingRepository, recorder domain.ErrorRecorder) *LandHandler {
	return &LandHandler{LandSvc: landsvc, Logger: logger, Recorder: recorder}
}

func (h *LandHandler) CreateLandHandler(c *gin.Context) {
	req := c.MustGet("payload").(dto.CreateLandRequest)

	land, err := h.LandSvc.CreateLand(c.Request.Context(), &domain.Land{
		FarmerID:    req.FarmerID,
		LandAddress: req.LandAddress,
		LandUPI:     req.LandUPI,
		SizeInAcres: req.SizeInAcres,
	})
	if err != nil {
		utils.AbortWithError(c, h.Recorder, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "land": land})
}

func (h *LandHandler) GetLandHandler(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		httpErr := utils.HttpError{Message: "Required fields are missing or invalid", Code: domain.ErrCodeValidation, StatusCode: http.StatusBadRequest}
		c.AbortWithStatusJSON(httpErr.StatusCode, httpErr)
		return
	}

	land, err := h.LandSvc.GetLand(c.Request.Context(), id)
	if err != nil {
		utils.AbortWithError(c, h.Recorder, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "land": land})
}

func (h *LandHandler) UpdateLandHandler(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		httpErr := utils.HttpError{Message: "Required fields are missing or invalid", Code: domain.ErrCodeValidation, StatusCode: http.StatusBadRequest}
		c.AbortWithStatusJSON(httpErr.StatusCode, httpErr)
		return
	}
	req := c.MustGet("payload").(dto.UpdateLandRequest)

	land, err := h.LandSvc.UpdateLand(c.Request.Context(), id, domain.LandUpdate{
		LandAddress: req.LandAddress,
		LandUPI:     req.LandUPI,
		SizeInAcres: req.SizeInAcres,
	})
	if err != nil {
		utils.AbortWithError(c, h.Recorder, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "land": land})
}

func (h *LandHandler) ListLandsHandler(c *gin.Context) {
	page, perPage := pageParams(c)
	resp, err := h.LandSvc.ListLands(c.Request.Context(), page, perPage)
	if err != nil {
		utils.AbortWithError(c, h.Recorder, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *LandHandler) GetAllLandsHandler(c *gin.Context) {
	lands, err := h.LandSvc.ListAllLands(c.Request.Context())
	if err != nil {
		utils.AbortWithError(c, h.Recorder, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "lands": lands})
}

func (h *LandHandler) ListFarmerLandsHandler(c *gin.Context) {
	farmerID := c.Query("farmerID")
	if farmerID == "" {
		httpErr := utils.HttpError{Message: "Required fields are missing or invalid", Code: domain.ErrCodeValidation, StatusCode: http.StatusBadRequest}
		c.AbortWithStatusJSON(httpErr.StatusCode, httpErr)
		return
	}

	lands, err := h.LandSvc.ListFarmerLands(c.Request.Context(), farmerID)
	if err != nil {
		utils.AbortWithError(c, h.Recorder, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "lands": lands})
}
