package controllers

import (
	"net/http"

	"github.com/Anky1388/SFIRN/config"
	"github.com/Anky1388/SFIRN/models"

	"github.com/gin-gonic/gin"
)

func GetProfile(c *gin.Context) {
	var user models.User
	if err := config.DB.First(&user, c.GetUint("userID")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"email":       user.Email,
		"full_name":   user.FullName,
		"role":        user.Role,
		"mfa_enabled": user.MFAEnabled,
	})
}

func UpdateProfile(c *gin.Context) {
	var req struct {
		FullName   string `json:"full_name"`
		MFAEnabled *bool  `json:"mfa_enabled"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.First(&user, c.GetUint("userID")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	if req.FullName != "" {
		user.FullName = req.FullName
	}
	if req.MFAEnabled != nil {
		user.MFAEnabled = *req.MFAEnabled
	}
	if err := config.DB.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "profile updated"})
}

// DashboardConfig returns the declarative panel/stat layout for the
// caller's role.
func DashboardConfig(c *gin.Context) {
	c.JSON(http.StatusOK, config.DashboardFor(c.GetString("role")))
}

func ListAlerts(c *gin.Context) {
	var alerts []models.Alert
	if err := config.DB.
		Where("user_id = ?", c.GetUint("userID")).
		Order("created_at DESC").
		Limit(50).
		Find(&alerts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, alerts)
}
