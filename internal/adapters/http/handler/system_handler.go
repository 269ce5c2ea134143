package handler

import (
	"net/http"
	"runtime"

	"github.com/gin-gonic/gin"
)

type SystemHandler struct{}

func NewSystemHandler() *SystemHandler {
	return &SystemHandler{}
}

func (h *SystemHandler) HomePageHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"Message": "Welcome"})
}

func (h *SystemHandler) HealthHandler(c *gin.Context) {
	var memStat runtime.MemStats
	runtime.ReadMemStats(&memStat)

	c.JSON(http.StatusOK, gin.H{
		"status": gin.H{"status_code": http.StatusOK},
		"memory": gin.H{
			"allocated_heap_objects_MB": memStat.Alloc / 1024 / 1024,
			"cumulative_allocated_MB":   memStat.TotalAlloc / 1024 / 1024,
			"total_memory_from_OS_MB":   memStat.Sys / 1024 / 1024,
			"gc_cycles":                 memStat.NumGC,
			"num_goroutines":            runtime.NumGoroutine(),
		},
	})
}
