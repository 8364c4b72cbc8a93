package models

import (
	"time"

	"fieldpro-backend/lifecycle"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Invoice struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ClientID   uuid.UUID `gorm:"type:uuid;index;not null" json:"clientId"`
	ExecutorID uuid.UUID `gorm:"type:uuid;index;not null" json:"executorId"`

	Number string           `gorm:"uniqueIndex;not null" json:"number"`
	Status lifecycle.Status `gorm:"type:varchar(20);not null;default:'created'" json:"status"`

	CreatedAt   time.Time  `json:"createdAt"`
	InvoicedAt  *time.Time `json:"invoicedAt,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	PaidAt      *time.Time `json:"paidAt,omitempty"`
	CancelledAt *time.Time `json:"cancelledAt,omitempty"`

	PDFID  string `json:"pdfId,omitempty"`
	PDFURL string `json:"pdfUrl,omitempty"`

	Services  []InvoiceService  `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE" json:"services"`
	Materials []InvoiceMaterial `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE" json:"materials"`

	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// InvoiceService is a flat-priced line item copied from the catalog
type InvoiceService struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"-"`
	InvoiceID uuid.UUID `gorm:"type:uuid;index;not null" json:"-"`
	ServiceID uuid.UUID `gorm:"type:uuid;index;not null" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Price     int64     `gorm:"not null" json:"price"`
}

func (s *InvoiceService) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}

// InvoiceMaterial is a unit-priced line item; quantity is always >= 1
type InvoiceMaterial struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"-"`
	InvoiceID  uuid.UUID `gorm:"type:uuid;index;not null" json:"-"`
	MaterialID uuid.UUID `gorm:"type:uuid;index;not null" json:"id"`
	Name       string    `gorm:"not null" json:"name"`
	Price      int64     `gorm:"not null" json:"price"`
	Quantity   int       `gorm:"not null;default:1;check:quantity >= 1" json:"quantity"`
}

func (m *InvoiceMaterial) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return
}

// Total is always recomputed from line items, never stored on the row.
func (i *Invoice) Total() int64 {
	var total int64
	for _, s := range i.Services {
		total += s.Price
	}
	for _, m := range i.Materials {
		total += m.Price * int64(m.Quantity)
	}
	return total
}

// MarkInvoiced records a generated document and moves the invoice to
// 'invoiced'. Only a 'created' invoice may generate a document.
func (i *Invoice) MarkInvoiced(now time.Time, pdfID, pdfURL string) error {
	next, err := lifecycle.Fire(i.Status, lifecycle.TriggerGeneratePDF)
	if err != nil {
		return err
	}
	i.Status = next
	i.InvoicedAt = &now
	i.PDFID = pdfID
	i.PDFURL = pdfURL
	return nil
}

// Complete closes out the work. Reachable from both 'created' and 'invoiced'.
func (i *Invoice) Complete(now time.Time) error {
	next, err := lifecycle.Fire(i.Status, lifecycle.TriggerComplete)
	if err != nil {
		return err
	}
	i.Status = next
	i.CompletedAt = &now
	return nil
}

func (i *Invoice) Pay(now time.Time) error {
	next, err := lifecycle.Fire(i.Status, lifecycle.TriggerPay)
	if err != nil {
		return err
	}
	i.Status = next
	i.PaidAt = &now
	return nil
}

func (i *Invoice) Cancel(now time.Time) error {
	next, err := lifecycle.Fire(i.Status, lifecycle.TriggerCancel)
	if err != nil {
		return err
	}
	i.Status = next
	i.CancelledAt = &now
	return nil
}

// ReplaceItems swaps the invoice's line items for the given selection.
// Permitted only while 'created'; any previously generated document is
// invalidated because it no longer matches the line items.
func (i *Invoice) ReplaceItems(set LineItemSet) error {
	if !lifecycle.CanEdit(i.Status) {
		return lifecycle.ErrInvalidTransition
	}
	if set.Empty() {
		return ErrEmptySelection
	}
	i.Services = set.InvoiceServices(i.ID)
	i.Materials = set.InvoiceMaterials(i.ID)
	i.PDFID = ""
	i.PDFURL = ""
	return nil
}

// GroupByStatus partitions invoices into status buckets for tabbed views
func GroupByStatus(invoices []Invoice) map[lifecycle.Status][]Invoice {
	grouped := make(map[lifecycle.Status][]Invoice)
	for _, inv := range invoices {
		grouped[inv.Status] = append(grouped[inv.Status], inv)
	}
	return grouped
}

// Bucket labels for the client detail view
const (
	BucketActive = "active"
	BucketClosed = "closed"
)

// GroupByBucket splits invoices into the two client detail sections: an
// invoice is active until it reaches a terminal status. Both buckets are
// always present.
func GroupByBucket(invoices []Invoice) map[string][]Invoice {
	grouped := map[string][]Invoice{
		BucketActive: {},
		BucketClosed: {},
	}
	for _, inv := range invoices {
		bucket := BucketActive
		if inv.Status.IsTerminal() {
			bucket = BucketClosed
		}
		grouped[bucket] = append(grouped[bucket], inv)
	}
	return grouped
}
