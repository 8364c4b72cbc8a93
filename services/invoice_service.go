// services/invoice_service.go
package services

import (
	"errors"
	"time"

	"fieldpro-backend/lifecycle"
	"fieldpro-backend/models"
	"fieldpro-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrDeleteNotConfirmed is returned when a delete request arrives without
// the explicit confirmation step.
var ErrDeleteNotConfirmed = errors.New("deletion requires confirmation")

// InvoiceService owns all invoice mutations. Controllers load the invoice
// within their visibility scope and hand it here; nothing below the HTTP
// layer mutates an invoice any other way.
type InvoiceService struct {
	db   *gorm.DB
	docs DocumentGenerator
}

func NewInvoiceService(db *gorm.DB, docs DocumentGenerator) *InvoiceService {
	return &InvoiceService{db: db, docs: docs}
}

func newInvoiceNumber() string {
	return "INV-" + time.Now().Format("20060102") + "-" + utils.GenerateRandomString(6)
}

// Create opens a new invoice under the client from a validated selection.
// Empty selections are rejected before anything is written.
func (s *InvoiceService) Create(clientID, executorID uuid.UUID, set models.LineItemSet) (*models.Invoice, error) {
	if set.Empty() {
		return nil, models.ErrEmptySelection
	}

	invoice := models.Invoice{
		ID:         uuid.New(),
		ClientID:   clientID,
		ExecutorID: executorID,
		Status:     lifecycle.StatusCreated,
		Number:     newInvoiceNumber(),
	}
	invoice.Services = set.InvoiceServices(invoice.ID)
	invoice.Materials = set.InvoiceMaterials(invoice.ID)

	if err := s.db.Create(&invoice).Error; err != nil {
		return nil, err
	}
	return &invoice, nil
}

// Edit replaces the invoice's line items. Only a 'created' invoice may be
// edited, and any generated document is invalidated by the change.
func (s *InvoiceService) Edit(invoice *models.Invoice, set models.LineItemSet) error {
	if err := invoice.ReplaceItems(set); err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("invoice_id = ?", invoice.ID).Delete(&models.InvoiceService{}).Error; err != nil {
			return err
		}
		if err := tx.Where("invoice_id = ?", invoice.ID).Delete(&models.InvoiceMaterial{}).Error; err != nil {
			return err
		}
		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(invoice).Error
	})
}

// GeneratePDF asks the document collaborator for a rendering and moves the
// invoice to 'invoiced'. Rejected once the invoice has left 'created'.
func (s *InvoiceService) GeneratePDF(invoice *models.Invoice) error {
	if !lifecycle.CanFire(invoice.Status, lifecycle.TriggerGeneratePDF) {
		return lifecycle.ErrInvalidTransition
	}

	doc, err := s.docs.Generate(invoice)
	if err != nil {
		return err
	}
	if err := invoice.MarkInvoiced(time.Now(), doc.ID, doc.URL); err != nil {
		return err
	}
	return s.db.Save(invoice).Error
}

// Complete closes out the invoice's work
func (s *InvoiceService) Complete(invoice *models.Invoice) error {
	if err := invoice.Complete(time.Now()); err != nil {
		return err
	}
	return s.db.Save(invoice).Error
}

// Pay marks the invoice paid; paid is terminal
func (s *InvoiceService) Pay(invoice *models.Invoice) error {
	if err := invoice.Pay(time.Now()); err != nil {
		return err
	}
	return s.db.Save(invoice).Error
}

// Cancel voids the invoice; cancelled is terminal
func (s *InvoiceService) Cancel(invoice *models.Invoice) error {
	if err := invoice.Cancel(time.Now()); err != nil {
		return err
	}
	return s.db.Save(invoice).Error
}

// Delete removes the invoice and its line items. The confirmed flag is the
// second step of the two-step protocol: without it nothing happens.
func (s *InvoiceService) Delete(invoice *models.Invoice, confirmed bool) error {
	if !lifecycle.CanDelete(invoice.Status) {
		return lifecycle.ErrInvalidTransition
	}
	if !confirmed {
		return ErrDeleteNotConfirmed
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("invoice_id = ?", invoice.ID).Delete(&models.InvoiceService{}).Error; err != nil {
			return err
		}
		if err := tx.Where("invoice_id = ?", invoice.ID).Delete(&models.InvoiceMaterial{}).Error; err != nil {
			return err
		}
		return tx.Delete(invoice).Error
	})
}
