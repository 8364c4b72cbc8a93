// controllers/invoice.go
package controllers

import (
	"errors"
	"net/http"

	"fieldpro-backend/config"
	"fieldpro-backend/lifecycle"
	"fieldpro-backend/models"
	"fieldpro-backend/services"
	"fieldpro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Invoices is wired up in main before the router starts serving
var Invoices *services.InvoiceService

// InvoiceServiceInput selects a catalog service for an invoice
type InvoiceServiceInput struct {
	ServiceID uuid.UUID `json:"serviceId" binding:"required"`
}

// InvoiceMaterialInput selects a catalog material with a quantity
type InvoiceMaterialInput struct {
	MaterialID uuid.UUID `json:"materialId" binding:"required"`
	Quantity   int       `json:"quantity" binding:"omitempty,min=1"`
}

// InvoiceItemsInput is the line item payload for create and edit
type InvoiceItemsInput struct {
	Services  []InvoiceServiceInput  `json:"services"`
	Materials []InvoiceMaterialInput `json:"materials"`
}

// invoiceResponse decorates an invoice with its recomputed total
type invoiceResponse struct {
	models.Invoice
	Total int64 `json:"total"`
}

func toResponse(inv models.Invoice) invoiceResponse {
	return invoiceResponse{Invoice: inv, Total: inv.Total()}
}

// buildSelection resolves the payload against the catalog. Unknown or
// inactive entries reject the whole request; duplicates collapse via the
// selection's toggle semantics.
func buildSelection(input InvoiceItemsInput) (models.LineItemSet, error) {
	var set models.LineItemSet

	for _, item := range input.Services {
		var svc models.CatalogService
		if err := config.DB.Where("id = ? AND is_active = ?", item.ServiceID, true).
			First(&svc).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return set, errors.New("service not found: " + item.ServiceID.String())
			}
			return set, err
		}
		set.ToggleService(svc, true)
	}

	for _, item := range input.Materials {
		var mat models.CatalogMaterial
		if err := config.DB.Where("id = ? AND is_active = ?", item.MaterialID, true).
			First(&mat).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return set, errors.New("material not found: " + item.MaterialID.String())
			}
			return set, err
		}
		set.ToggleMaterial(mat, true)
		if item.Quantity > 1 {
			set.ChangeQuantity(mat.ID, item.Quantity-1)
		}
	}

	return set, nil
}

// respondMutationError maps domain errors onto HTTP codes
func respondMutationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, lifecycle.ErrInvalidTransition):
		utils.RespondWithError(c, http.StatusConflict, err.Error())
	case errors.Is(err, models.ErrEmptySelection):
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrDeleteNotConfirmed):
		c.JSON(http.StatusConflict, gin.H{
			"error":   err.Error(),
			"confirm": "repeat the request with ?confirm=true",
		})
	default:
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
	}
}

// loadInvoice fetches an invoice with line items within the caller's scope
func loadInvoice(c *gin.Context) (*models.Invoice, bool) {
	executorID, ok := currentUserID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return nil, false
	}

	invoiceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid invoice ID format")
		return nil, false
	}

	var invoice models.Invoice
	if err := invoiceScope(c, config.DB, executorID).
		Preload("Services").Preload("Materials").
		First(&invoice, "id = ?", invoiceUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Invoice not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return nil, false
	}

	return &invoice, true
}

// CreateInvoice opens a new invoice under a client from selected catalog items
func CreateInvoice(c *gin.Context) {
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

	var input InvoiceItemsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	set, err := buildSelection(input)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	invoice, err := Invoices.Create(client.ID, client.ExecutorID, set)
	if err != nil {
		respondMutationError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toResponse(*invoice))
}

// GetInvoices lists invoices newest first, optionally filtered by status
// and client
func GetInvoices(c *gin.Context) {
	executorID, ok := currentUserID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	query := invoiceScope(c, config.DB, executorID).
		Preload("Services").Preload("Materials").
		Order("created_at DESC")
	if status := c.Query("status"); status != "" {
		if !lifecycle.Status(status).IsValid() {
			utils.RespondWithError(c, http.StatusBadRequest, "Unknown status filter")
			return
		}
		query = query.Where("status = ?", status)
	}
	if clientID := c.Query("clientId"); clientID != "" {
		query = query.Where("client_id = ?", clientID)
	}

	var invoices []models.Invoice
	if err := query.Find(&invoices).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve invoices")
		return
	}

	response := make([]invoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		response = append(response, toResponse(inv))
	}

	c.JSON(http.StatusOK, response)
}

// GetInvoice returns a single invoice with its recomputed total
func GetInvoice(c *gin.Context) {
	invoice, ok := loadInvoice(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, toResponse(*invoice))
}

// UpdateInvoice replaces the invoice's line items. Only 'created' invoices
// may be edited; the previously generated document is invalidated.
func UpdateInvoice(c *gin.Context) {
	invoice, ok := loadInvoice(c)
	if !ok {
		return
	}

	var input InvoiceItemsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	set, err := buildSelection(input)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := Invoices.Edit(invoice, set); err != nil {
		respondMutationError(c, err)
		return
	}

	c.JSON(http.StatusOK, toResponse(*invoice))
}

// DeleteInvoice removes a 'created' invoice after explicit confirmation
func DeleteInvoice(c *gin.Context) {
	invoice, ok := loadInvoice(c)
	if !ok {
		return
	}

	if err := Invoices.Delete(invoice, c.Query("confirm") == "true"); err != nil {
		respondMutationError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Invoice deleted successfully"})
}

// GenerateInvoicePDF produces a document for the invoice and moves it to
// 'invoiced'
func GenerateInvoicePDF(c *gin.Context) {
	invoice, ok := loadInvoice(c)
	if !ok {
		return
	}

	if err := Invoices.GeneratePDF(invoice); err != nil {
		respondMutationError(c, err)
		return
	}

	c.JSON(http.StatusOK, toResponse(*invoice))
}

// PayInvoice marks the invoice paid
func PayInvoice(c *gin.Context) {
	invoice, ok := loadInvoice(c)
	if !ok {
		return
	}

	if err := Invoices.Pay(invoice); err != nil {
		respondMutationError(c, err)
		return
	}

	c.JSON(http.StatusOK, toResponse(*invoice))
}

// CancelInvoice voids the invoice
func CancelInvoice(c *gin.Context) {
	invoice, ok := loadInvoice(c)
	if !ok {
		return
	}

	if err := Invoices.Cancel(invoice); err != nil {
		respondMutationError(c, err)
		return
	}

	c.JSON(http.StatusOK, toResponse(*invoice))
}

// CompleteInvoice closes out the invoice's work
func CompleteInvoice(c *gin.Context) {
	invoice, ok := loadInvoice(c)
	if !ok {
		return
	}

	if err := Invoices.Complete(invoice); err != nil {
		respondMutationError(c, err)
		return
	}

	c.JSON(http.StatusOK, toResponse(*invoice))
}
