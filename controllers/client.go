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

// CreateClientInput defines the expected JSON structure for creating a client
type CreateClientInput struct {
	Name        string `json:"name" binding:"required"`
	Phone       string `json:"phone" binding:"required"`
	Address     string `json:"address" binding:"required"`
	Description string `json:"description"`
}

// UpdateClientInput defines the expected JSON structure for updating a client
type UpdateClientInput struct {
	Name        *string `json:"name"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
	Description *string `json:"description"`
	Status      *string `json:"status" binding:"omitempty,oneof=active completed"`
}

// CreateClient creates a new client owned by the requesting executor
func CreateClient(c *gin.Context) {
	executorID, ok := currentUserID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	var input CreateClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	// Check if phone already exists for this executor
	var existingClient models.Client
	if err := config.DB.Where("executor_id = ? AND phone = ?", executorID, input.Phone).
		First(&existingClient).Error; err == nil {
		utils.RespondWithError(c, http.StatusConflict, "Client with this phone number already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	client := models.Client{
		ID:          uuid.New(),
		ExecutorID:  executorID,
		Name:        input.Name,
		Phone:       input.Phone,
		Address:     input.Address,
		Description: input.Description,
		Status:      models.ClientStatusActive,
	}

	if err := config.DB.Create(&client).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create client")
		return
	}

	c.JSON(http.StatusCreated, client)
}

// GetClients lists clients newest first, optionally filtered by status
func GetClients(c *gin.Context) {
	executorID, ok := currentUserID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	query := clientScope(c, config.DB, executorID).Order("created_at DESC")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var clients []models.Client
	if err := query.Find(&clients).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve clients")
		return
	}

	c.JSON(http.StatusOK, clients)
}

// GetClient returns one client with its invoices grouped by status and
// split into the active/closed sections of the detail view
func GetClient(c *gin.Context) {
	executorID, ok := currentUserID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	clientUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid client ID format")
		return
	}

	var client models.Client
	if err := clientScope(c, config.DB, executorID).
		Preload("Invoices", func(db *gorm.DB) *gorm.DB { return db.Order("invoices.created_at DESC") }).
		Preload("Invoices.Services").
		Preload("Invoices.Materials").
		First(&client, "id = ?", clientUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Client not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	totals := make(map[string]int64, len(client.Invoices))
	for i := range client.Invoices {
		totals[client.Invoices[i].ID.String()] = client.Invoices[i].Total()
	}

	c.JSON(http.StatusOK, gin.H{
		"client":        client,
		"invoiceTotals": totals,
		"grouped":       models.GroupByStatus(client.Invoices),
		"buckets":       models.GroupByBucket(client.Invoices),
	})
}

// UpdateClient updates an existing client
func UpdateClient(c *gin.Context) {
	executorID, ok := currentUserID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	clientUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid client ID format")
		return
	}

	var input UpdateClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var client models.Client
	if err := clientScope(c, config.DB, executorID).
		First(&client, "id = ?", clientUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Client not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		client.Name = *input.Name
	}
	if input.Phone != nil {
		if !utils.ValidatePhone(*input.Phone) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
			return
		}
		if client.Phone != *input.Phone {
			var existingClient models.Client
			if err := config.DB.Where("executor_id = ? AND phone = ? AND id <> ?", client.ExecutorID, *input.Phone, client.ID).
				First(&existingClient).Error; err == nil {
				utils.RespondWithError(c, http.StatusConflict, "Another client with this phone number already exists")
				return
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
				return
			}
		}
		client.Phone = *input.Phone
	}
	if input.Address != nil {
		client.Address = *input.Address
	}
	if input.Description != nil {
		client.Description = *input.Description
	}
	if input.Status != nil {
		client.Status = *input.Status
	}

	if err := config.DB.Save(&client).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update client")
		return
	}

	c.JSON(http.StatusOK, client)
}

// DeleteClient removes a client and its invoices. Requires the
// confirmation step (?confirm=true); without it nothing is deleted.
func DeleteClient(c *gin.Context) {
	executorID, ok := currentUserID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	clientUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid client ID format")
		return
	}

	var client models.Client
	if err := clientScope(c, config.DB, executorID).
		First(&client, "id = ?", clientUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Client not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if c.Query("confirm") != "true" {
		c.JSON(http.StatusConflict, gin.H{
			"error":   "Deletion requires confirmation",
			"confirm": "repeat the request with ?confirm=true",
		})
		return
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		var invoiceIDs []uuid.UUID
		if err := tx.Model(&models.Invoice{}).Where("client_id = ?", client.ID).
			Pluck("id", &invoiceIDs).Error; err != nil {
			return err
		}
		if len(invoiceIDs) > 0 {
			if err := tx.Where("invoice_id IN ?", invoiceIDs).Delete(&models.InvoiceService{}).Error; err != nil {
				return err
			}
			if err := tx.Where("invoice_id IN ?", invoiceIDs).Delete(&models.InvoiceMaterial{}).Error; err != nil {
				return err
			}
			if err := tx.Where("client_id = ?", client.ID).Delete(&models.Invoice{}).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&client).Error
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete client")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Client deleted successfully"})
}
