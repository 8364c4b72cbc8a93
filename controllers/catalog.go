// controllers/catalog.go
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

// CreateCatalogEntryInput covers both services and materials: they share a shape
type CreateCatalogEntryInput struct {
	Name  string `json:"name" binding:"required"`
	Price int64  `json:"price" binding:"min=0"`
}

type UpdateCatalogEntryInput struct {
	Name     *string `json:"name"`
	Price    *int64  `json:"price" binding:"omitempty,min=0"`
	IsActive *bool   `json:"isActive"`
}

// CreateCatalogService adds a service to the catalog (manager only)
func CreateCatalogService(c *gin.Context) {
	var input CreateCatalogEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	service := models.CatalogService{
		Name:     input.Name,
		Price:    input.Price,
		IsActive: true,
	}

	if err := config.DB.Create(&service).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create service")
		return
	}

	c.JSON(http.StatusCreated, service)
}

// GetCatalogServices lists catalog services; executors use this to seed
// invoice creation forms
func GetCatalogServices(c *gin.Context) {
	query := config.DB.Order("name")
	if c.Query("includeInactive") != "true" {
		query = query.Where("is_active = ?", true)
	}

	var services []models.CatalogService
	if err := query.Find(&services).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve services")
		return
	}

	c.JSON(http.StatusOK, services)
}

// UpdateCatalogService updates a catalog service (manager only)
func UpdateCatalogService(c *gin.Context) {
	serviceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	var input UpdateCatalogEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var service models.CatalogService
	if err := config.DB.First(&service, "id = ?", serviceUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		service.Name = *input.Name
	}
	if input.Price != nil {
		service.Price = *input.Price
	}
	if input.IsActive != nil {
		service.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&service).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update service")
		return
	}

	c.JSON(http.StatusOK, service)
}

// DeleteCatalogService soft deletes a catalog service (manager only).
// Existing invoices keep their copied name and price.
func DeleteCatalogService(c *gin.Context) {
	serviceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	result := config.DB.Where("id = ?", serviceUUID).Delete(&models.CatalogService{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete service")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service deleted successfully"})
}

// CreateCatalogMaterial adds a material to the catalog (manager only)
func CreateCatalogMaterial(c *gin.Context) {
	var input CreateCatalogEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	material := models.CatalogMaterial{
		Name:     input.Name,
		Price:    input.Price,
		IsActive: true,
	}

	if err := config.DB.Create(&material).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create material")
		return
	}

	c.JSON(http.StatusCreated, material)
}

// GetCatalogMaterials lists catalog materials
func GetCatalogMaterials(c *gin.Context) {
	query := config.DB.Order("name")
	if c.Query("includeInactive") != "true" {
		query = query.Where("is_active = ?", true)
	}

	var materials []models.CatalogMaterial
	if err := query.Find(&materials).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve materials")
		return
	}

	c.JSON(http.StatusOK, materials)
}

// UpdateCatalogMaterial updates a catalog material (manager only)
func UpdateCatalogMaterial(c *gin.Context) {
	materialUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid material ID format")
		return
	}

	var input UpdateCatalogEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var material models.CatalogMaterial
	if err := config.DB.First(&material, "id = ?", materialUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Material not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		material.Name = *input.Name
	}
	if input.Price != nil {
		material.Price = *input.Price
	}
	if input.IsActive != nil {
		material.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&material).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update material")
		return
	}

	c.JSON(http.StatusOK, material)
}

// DeleteCatalogMaterial soft deletes a catalog material (manager only)
func DeleteCatalogMaterial(c *gin.Context) {
	materialUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid material ID format")
		return
	}

	result := config.DB.Where("id = ?", materialUUID).Delete(&models.CatalogMaterial{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete material")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Material not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Material deleted successfully"})
}
