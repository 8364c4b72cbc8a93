package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ClientStatusActive    = "active"
	ClientStatusCompleted = "completed"
)

// Client is the aggregate root: invoices belong to exactly one client and
// have no lifecycle of their own outside it.
type Client struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ExecutorID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_executor_phone,priority:1,where:deleted_at IS NULL" json:"executorId"`

	Name        string `gorm:"not null" json:"name"`
	Phone       string `gorm:"not null;uniqueIndex:idx_executor_phone,priority:2" json:"phone"`
	Address     string `gorm:"not null" json:"address"`
	Description string `json:"description"`
	Status      string `gorm:"type:varchar(20);default:'active'" json:"status"` // 'active' or 'completed'

	Invoices []Invoice `gorm:"foreignKey:ClientID" json:"invoices,omitempty"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (cl *Client) BeforeCreate(tx *gorm.DB) (err error) {
	if cl.ID == uuid.Nil {
		cl.ID = uuid.New()
	}
	return
}
