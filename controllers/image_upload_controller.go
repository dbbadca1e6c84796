package controllers

import (
	"net/http"

	"github.com/Anky1388/SFIRN/services"
	"github.com/Anky1388/SFIRN/utils"

	"github.com/gin-gonic/gin"
)

type surplusPhotoReq struct {
	ImageBase64 string `json:"image_base64" binding:"required"`
}

// UploadSurplusPhoto checks that the image actually shows food, then
// stores it and returns the URL to attach to a meal log.
func UploadSurplusPhoto(c *gin.Context) {
	var req surplusPhotoReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	photoSvc, err := services.NewPhotoService()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	isFood, labels, err := photoSvc.LooksLikeFood(req.ImageBase64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image check failed", "detail": err.Error()})
		return
	}
	if !isFood {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Photo does not appear to show food", "labels": labels})
		return
	}

	url, err := utils.UploadBase64ImageToS3(req.ImageBase64, "meal-log")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url, "labels": labels})
}
