package services

import (
	"errors"
	"fmt"

	"github.com/Anky1388/SFIRN/config"
	"github.com/Anky1388/SFIRN/models"
	"github.com/Anky1388/SFIRN/utils"
)

// RegisterUser creates an account. NGO contact accounts must name the NGO
// they belong to so pickup alerts can reach them; every other role must
// not carry an NGO link.
func RegisterUser(email, password, fullName, role string, ngoID *uint) error {
	role, err := resolveRole(role, ngoID)
	if err != nil {
		return err
	}
	if role == models.RoleNGO {
		var ngo models.NGO
		if err := config.DB.First(&ngo, *ngoID).Error; err != nil {
			return fmt.Errorf("unknown NGO %d", *ngoID)
		}
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	user := models.User{
		Email:    email,
		Password: hashedPassword,
		FullName: fullName,
		Role:     role,
		NGOID:    ngoID,
	}

	return config.DB.Create(&user).Error
}

// resolveRole validates the requested role and its NGO link. Admin
// accounts are provisioned manually, never self-registered.
func resolveRole(role string, ngoID *uint) (string, error) {
	switch role {
	case "":
		role = models.RoleStudent
	case models.RoleOperator, models.RoleStudent, models.RoleNGO:
	default:
		return "", errors.New("invalid role")
	}
	if role == models.RoleNGO && ngoID == nil {
		return "", errors.New("ngo accounts must include ngo_id")
	}
	if role != models.RoleNGO && ngoID != nil {
		return "", errors.New("ngo_id is only valid for ngo accounts")
	}
	return role, nil
}

func FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}

func AuthenticateUser(email, password string) (string, error) {
	user, err := FindUserByEmail(email)
	if err != nil {
		return "", err
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", errors.New("incorrect password")
	}

	return utils.GenerateJWT(user.Email, user.Role)
}
