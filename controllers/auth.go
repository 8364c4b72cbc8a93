package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"fieldpro-backend/config"
	"fieldpro-backend/models"
	"fieldpro-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RegisterInput struct {
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"omitempty,oneof=executor manager"`
}

type LoginInput struct {
	Identifier string `json:"identifier" binding:"required"` // Can be email or phone
	Password   string `json:"password" binding:"required"`
}

// controllers/auth.go
func Register(c *gin.Context) {
	var input RegisterInput

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	// Check if email or phone already exists
	var existingUser models.User
	result := config.DB.Where("email = ? OR phone = ?", input.Email, input.Phone).First(&existingUser)

	if result.Error == nil {
		utils.RespondWithError(c, http.StatusConflict, "Email or phone already registered")
		return
	} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	role := input.Role
	if role == "" {
		role = models.RoleExecutor
	}

	newUser := models.User{
		Email:    input.Email,
		Phone:    utils.NormalizePhone(input.Phone),
		Name:     input.Name,
		Password: input.Password, // Will be hashed in BeforeCreate hook
		Role:     role,
		IsActive: true,
	}

	if err := config.DB.Create(&newUser).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create user")
		return
	}

	token, err := utils.GenerateToken(newUser.ID.String(), newUser.Role)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	setSessionCookie(c, token)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration successful",
		"token":   token,
		"user": gin.H{
			"id":    newUser.ID,
			"email": newUser.Email,
			"phone": newUser.Phone,
			"name":  newUser.Name,
			"role":  newUser.Role,
		},
	})
}

func Login(c *gin.Context) {
	var input LoginInput

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	// Identifier may be an email or a phone number
	identifier := strings.TrimSpace(input.Identifier)

	var user models.User
	result := config.DB.Where("email = ? OR phone = ?", identifier, utils.NormalizePhone(identifier)).First(&user)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if !user.IsActive {
		utils.RespondWithError(c, http.StatusUnauthorized, "Account is deactivated")
		return
	}

	if !utils.CheckPasswordHash(input.Password, user.Password) {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := utils.GenerateToken(user.ID.String(), user.Role)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	// Update last login
	now := time.Now()
	config.DB.Model(&user).Update("last_login", &now)

	setSessionCookie(c, token)

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
			"phone": user.Phone,
			"name":  user.Name,
			"role":  user.Role,
		},
	})
}

func Logout(c *gin.Context) {
	c.SetCookie("token", "", -1, "/", "", true, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

func Me(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	var user models.User
	if err := config.DB.First(&user, "id = ?", userID).Error; err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
			"phone": user.Phone,
			"name":  user.Name,
			"role":  user.Role,
		},
	})
}

func setSessionCookie(c *gin.Context, token string) {
	expiryHours := 24
	maxAge := expiryHours * 3600

	c.SetCookie(
		"token",
		token,
		maxAge,
		"/",
		"",
		true,
		true,
	)
}
