package controllers

import (
	"errors"
	"net/http"

	"fieldpro-backend/config"
	"fieldpro-backend/models"
	"fieldpro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AddExecutorInput struct {
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

type UpdateExecutorInput struct {
	Name     *string `json:"name"`
	Phone    *string `json:"phone"`
	IsActive *bool   `json:"isActive"`
}

// GetExecutors lists executor accounts with their client counts
func GetExecutors(c *gin.Context) {
	var executors []models.User
	if err := config.DB.Where("role = ?", models.RoleExecutor).
		Order("name").Find(&executors).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve executors")
		return
	}

	response := make([]gin.H, 0, len(executors))
	for _, e := range executors {
		var clientCount int64
		config.DB.Model(&models.Client{}).Where("executor_id = ?", e.ID).Count(&clientCount)
		response = append(response, gin.H{
			"id":          e.ID,
			"email":       e.Email,
			"phone":       e.Phone,
			"name":        e.Name,
			"isActive":    e.IsActive,
			"lastLogin":   e.LastLogin,
			"clientCount": clientCount,
		})
	}

	c.JSON(http.StatusOK, response)
}

// AddExecutor creates an executor account (manager only)
func AddExecutor(c *gin.Context) {
	var input AddExecutorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	var existingUser models.User
	result := config.DB.Where("email = ? OR phone = ?", input.Email, input.Phone).First(&existingUser)
	if result.Error == nil {
		utils.RespondWithError(c, http.StatusConflict, "Email or phone already registered")
		return
	} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	executor := models.User{
		Email:    input.Email,
		Phone:    utils.NormalizePhone(input.Phone),
		Name:     input.Name,
		Password: input.Password, // Hashed in BeforeCreate hook
		Role:     models.RoleExecutor,
		IsActive: true,
	}

	if err := config.DB.Create(&executor).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create executor")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":    executor.ID,
		"email": executor.Email,
		"phone": executor.Phone,
		"name":  executor.Name,
		"role":  executor.Role,
	})
}

// UpdateExecutor updates an executor account; deactivation locks the
// account out without touching its clients
func UpdateExecutor(c *gin.Context) {
	executorUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid executor ID format")
		return
	}

	var input UpdateExecutorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var executor models.User
	if err := config.DB.Where("role = ?", models.RoleExecutor).
		First(&executor, "id = ?", executorUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Executor not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		executor.Name = *input.Name
	}
	if input.Phone != nil {
		if !utils.ValidatePhone(*input.Phone) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
			return
		}
		executor.Phone = utils.NormalizePhone(*input.Phone)
	}
	if input.IsActive != nil {
		executor.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&executor).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update executor")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":       executor.ID,
		"email":    executor.Email,
		"phone":    executor.Phone,
		"name":     executor.Name,
		"isActive": executor.IsActive,
	})
}

// DeleteExecutor soft deletes an executor account (manager only)
func DeleteExecutor(c *gin.Context) {
	executorUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid executor ID format")
		return
	}

	result := config.DB.Where("role = ? AND id = ?", models.RoleExecutor, executorUUID).
		Delete(&models.User{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete executor")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Executor not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Executor deleted successfully"})
}
