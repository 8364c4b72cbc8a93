// models/reminder_log.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaymentReminderLog records every payment reminder attempt for an unpaid
// invoice, successful or not.
type PaymentReminderLog struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	ClientID  uuid.UUID `gorm:"type:uuid;index;not null"`
	InvoiceID uuid.UUID `gorm:"type:uuid;index;not null"`

	Message      string `gorm:"type:text"`
	Status       string `gorm:"type:varchar(20)"` // sent, failed
	ErrorMessage string `gorm:"type:text"`
	Channel      string `gorm:"type:varchar(20)"` // whatsapp, sms
	SentAt       time.Time

	gorm.Model
}

func (r *PaymentReminderLog) BeforeCreate(tx *gorm.DB) (err error) {
	r.ID = uuid.New()
	return
}
