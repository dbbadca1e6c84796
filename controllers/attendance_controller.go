package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Anky1388/SFIRN/models"
	"github.com/Anky1388/SFIRN/services"

	"github.com/gin-gonic/gin"
)

type checkInReq struct {
	Date     string `json:"date" binding:"required"` // YYYY-MM-DD
	MealType string `json:"meal_type" binding:"required"`
	Status   string `json:"status"`
}

func CheckIn(c *gin.Context) {
	var req checkInReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}
	if req.Status == "" {
		req.Status = models.AttendancePresent
	}

	rec, err := services.NewAttendanceService().CheckIn(c.GetUint("userID"), date, req.MealType, req.Status)
	if err != nil {
		if errors.Is(err, services.ErrAlreadyCheckedIn) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, rec)
}

func MyAttendance(c *gin.Context) {
	to := time.Now()
	from := to.AddDate(0, -1, 0)

	recs, err := services.NewAttendanceService().ListForSubject(c.GetUint("userID"), from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, recs)
}

func Headcounts(c *gin.Context) {
	from, err := time.Parse("2006-01-02", c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from must be YYYY-MM-DD"})
		return
	}
	to, err := time.Parse("2006-01-02", c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "to must be YYYY-MM-DD"})
		return
	}

	logs, err := services.NewAttendanceService().ListHeadcounts(from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, logs)
}
