package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Anky1388/SFIRN/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func UpsertMenu(c *gin.Context) {
	var req services.MenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	menu, err := services.NewMenuService().UpsertMenu(c.GetUint("userID"), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, menu)
}

func GetMenu(c *gin.Context) {
	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}
	mealType := c.Query("meal_type")

	menu, err := services.NewMenuService().GetMenu(date, mealType)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no menu for that slot"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, menu)
}

func ListMenus(c *gin.Context) {
	to := time.Now().AddDate(0, 0, 7)
	from := time.Now().AddDate(0, 0, -7)

	menus, err := services.NewMenuService().ListMenus(from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, menus)
}
