package controllers

import (
	"net/http"
	"time"

	"github.com/Anky1388/SFIRN/config"
	"github.com/Anky1388/SFIRN/services"

	"github.com/gin-gonic/gin"
)

func Dashboard(c *gin.Context) {
	svc := services.NewAnalyticsService(config.DB, services.NewRedistributionService())
	stats, err := svc.DashboardStats(c.Request.Context(), time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func SustainabilitySummary(c *gin.Context) {
	from, to, ok := parseWindow(c)
	if !ok {
		return
	}

	svc := services.NewAnalyticsService(config.DB, services.NewRedistributionService())
	summary, err := svc.Summary(c.Request.Context(), from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}

func SurplusTrend(c *gin.Context) {
	from, to, ok := parseWindow(c)
	if !ok {
		return
	}

	svc := services.NewAnalyticsService(config.DB, services.NewRedistributionService())
	trend, err := svc.SurplusTrend(c.Request.Context(), from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, trend)
}

// parseWindow reads from/to query params, defaulting to the trailing 30
// days. Writes the error response itself on bad input.
func parseWindow(c *gin.Context) (from, to time.Time, ok bool) {
	to = time.Now()
	from = to.AddDate(0, 0, -30)

	var err error
	if v := c.Query("from"); v != "" {
		if from, err = time.Parse("2006-01-02", v); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "from must be YYYY-MM-DD"})
			return from, to, false
		}
	}
	if v := c.Query("to"); v != "" {
		if to, err = time.Parse("2006-01-02", v); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "to must be YYYY-MM-DD"})
			return from, to, false
		}
	}
	return from, to, true
}
