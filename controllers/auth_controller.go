package controllers

import (
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/Anky1388/SFIRN/config"
	"github.com/Anky1388/SFIRN/services"
	"github.com/Anky1388/SFIRN/utils"

	"github.com/gin-gonic/gin"
)

type RegisterInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	FullName string `json:"full_name" binding:"required"`
	Role     string `json:"role"`
	NGOID    *uint  `json:"ngo_id"` // required for role=ngo, rejected otherwise
}

type VerifyInput struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

func Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.RegisterUser(input.Email, input.Password, input.FullName, input.Role, input.NGOID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "registration successful"})
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := services.FindUserByEmail(input.Email)
	if err != nil || !utils.CheckPasswordHash(input.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	if user.MFAEnabled {
		rand.Seed(time.Now().UnixNano())
		code := fmt.Sprintf("%06d", rand.Intn(1000000))

		user.MFACode = code
		config.DB.Save(user)

		if err := utils.SendMFAEmail(user.Email, code); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send MFA code"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "MFA code sent to email"})
		return
	}

	token, err := utils.GenerateJWT(user.Email, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "role": user.Role})
}

func VerifyMFA(c *gin.Context) {
	var input VerifyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := services.FindUserByEmail(input.Email)
	if err != nil || user.MFACode == "" || user.MFACode != input.Code {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid MFA code"})
		return
	}

	token, err := utils.GenerateJWT(user.Email, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate token"})
		return
	}

	user.MFACode = ""
	config.DB.Save(user)

	c.JSON(http.StatusOK, gin.H{"token": token, "role": user.Role})
}

func ForgotPassword(c *gin.Context) {
	var input struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	user, err := services.FindUserByEmail(input.Email)
	if err != nil {
		// Do not reveal whether the address exists.
		c.JSON(http.StatusOK, gin.H{"message": "If the account exists, a reset code was sent"})
		return
	}

	code := utils.GenerateRandomToken(8)
	user.ResetCode = code
	config.DB.Save(user)

	if err := utils.SendResetEmail(user.Email, code); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send reset code"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "If the account exists, a reset code was sent"})
}

func ResetPassword(c *gin.Context) {
	var input struct {
		Email       string `json:"email" binding:"required,email"`
		Code        string `json:"code" binding:"required"`
		NewPassword string `json:"new_password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	user, err := services.FindUserByEmail(input.Email)
	if err != nil || user.ResetCode == "" || user.ResetCode != input.Code {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid reset code"})
		return
	}

	hashed, err := utils.HashPassword(input.NewPassword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update password"})
		return
	}
	user.Password = hashed
	user.ResetCode = ""
	config.DB.Save(user)

	c.JSON(http.StatusOK, gin.H{"message": "password updated"})
}
