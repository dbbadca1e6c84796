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

type confirmPickupReq struct {
	Reference  string `json:"reference" binding:"required"`
	PickupTime string `json:"pickup_time"` // RFC3339; defaults to now
}

func ConfirmPickup(c *gin.Context) {
	var req confirmPickupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	when := time.Now()
	if req.PickupTime != "" {
		parsed, err := time.Parse(time.RFC3339, req.PickupTime)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "pickup_time must be RFC3339"})
			return
		}
		when = parsed
	}

	pickup, err := services.NewRedistributionService().ConfirmPickup(req.Reference, when)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "pickup not found"})
		case errors.Is(err, services.ErrPickupNotPending):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, pickup)
}

func CancelPickup(c *gin.Context) {
	var req struct {
		Reference string `json:"reference" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pickup, err := services.NewRedistributionService().CancelPickup(req.Reference)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "pickup not found"})
		case errors.Is(err, services.ErrPickupNotPending):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, pickup)
}

// MyPickups lists pickups for the NGO tied to the calling account.
func MyPickups(c *gin.Context) {
	ngoID, exists := c.Get("ngoID")
	if !exists {
		c.JSON(http.StatusForbidden, gin.H{"error": "account is not linked to an NGO"})
		return
	}

	pickups, err := services.NewRedistributionService().ListForNGO(ngoID.(uint), c.Query("status"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, pickups)
}

func PickupsForMealLog(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	pickups, err := services.NewRedistributionService().ListForMealLog(uint(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, pickups)
}
