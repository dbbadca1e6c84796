package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Anky1388/SFIRN/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func LogMeal(c *gin.Context) {
	var body services.MealLogRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	operatorID := c.GetUint("userID")

	svc := services.NewMealLogService(services.NewNGOService())
	mealLog, pickups, err := svc.CreateMealLog(operatorID, body)
	if err != nil {
		if mealLog != nil {
			// Log saved, downstream matching failed. Report both.
			c.JSON(http.StatusCreated, gin.H{"meal_log": mealLog, "warning": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"meal_log": mealLog, "pickups": pickups})
}

// ListMealLogs returns recent logs, or a date window when from/to are
// supplied.
func ListMealLogs(c *gin.Context) {
	svc := services.NewMealLogService(services.NewNGOService())

	if c.Query("from") != "" || c.Query("to") != "" {
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
		logs, err := svc.ListMealLogsByDateRange(from, to)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, logs)
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	logs, err := svc.ListMealLogs(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, logs)
}

func GetMealLog(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	svc := services.NewMealLogService(services.NewNGOService())
	mealLog, err := svc.GetMealLog(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "meal log not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, mealLog)
}

