package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Anky1388/SFIRN/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func TrainForecast(c *gin.Context) {
	score, err := services.NewPredictionService().Train()
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "trained", "r2_score": score})
}

type refreshForecastReq struct {
	TargetDate string `json:"target_date" binding:"required"` // YYYY-MM-DD
	Attendance int    `json:"attendance"`
}

func RefreshForecast(c *gin.Context) {
	var req refreshForecastReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, err := time.Parse("2006-01-02", req.TargetDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "target_date must be YYYY-MM-DD"})
		return
	}

	pred, err := services.NewPredictionService().PredictForDate(date, req.Attendance)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, pred)
}

func GetForecast(c *gin.Context) {
	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	pred, err := services.NewPredictionService().GetForDate(date)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no forecast for that date"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, pred)
}
