package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Anky1388/SFIRN/config"
	"github.com/Anky1388/SFIRN/engine"
	"github.com/Anky1388/SFIRN/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func CreateNGO(c *gin.Context) {
	var req services.NGORequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ngo, err := services.NewNGOService().CreateNGO(req)
	if err != nil {
		if errors.Is(err, engine.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, ngo)
}

func UpdateNGO(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req services.NGORequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ngo, err := services.NewNGOService().UpdateNGO(uint(id), req)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "NGO not found"})
		case errors.Is(err, engine.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, ngo)
}

func ListNGOs(c *gin.Context) {
	activeOnly := c.DefaultQuery("active", "false") == "true"
	ngos, err := services.NewNGOService().ListNGOs(activeOnly)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, ngos)
}

// NearbyNGOs ranks active NGOs around the mess (or an explicit origin)
// for a given surplus quantity. Malformed parameters are rejected, never
// silently replaced with defaults.
func NearbyNGOs(c *gin.Context) {
	lat, lng := config.MessLocation()
	var err error
	if v := c.Query("lat"); v != "" {
		if lat, err = strconv.ParseFloat(v, 64); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "lat must be a number"})
			return
		}
	}
	if v := c.Query("lng"); v != "" {
		if lng, err = strconv.ParseFloat(v, 64); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "lng must be a number"})
			return
		}
	}
	radius, err := strconv.ParseFloat(c.DefaultQuery("radius_km", "10"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "radius_km must be a number"})
		return
	}
	topN, err := strconv.Atoi(c.DefaultQuery("top", "3"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "top must be an integer"})
		return
	}
	requestedKg, err := strconv.ParseFloat(c.DefaultQuery("quantity_kg", "0"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity_kg must be a number"})
		return
	}

	matches, err := services.NewNGOService().FindNearby(lat, lng, engine.MatchOptions{
		MaxRadiusKm: radius,
		TopN:        topN,
		RequestedKg: requestedKg,
	})
	if err != nil {
		if errors.Is(err, engine.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid origin coordinates"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, matches)
}
