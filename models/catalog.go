package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Catalog entries are reference data: invoices copy name and price at
// attach time, so later catalog edits never rewrite existing invoices.
// Prices are whole currency units.

type CatalogService struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name     string    `gorm:"not null" json:"name"`
	Price    int64     `gorm:"not null;check:price >= 0" json:"price"`
	IsActive bool      `gorm:"default:true" json:"isActive"`

	gorm.Model `json:"-"`
}

func (s *CatalogService) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}

type CatalogMaterial struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name     string    `gorm:"not null" json:"name"`
	Price    int64     `gorm:"not null;check:price >= 0" json:"price"`
	IsActive bool      `gorm:"default:true" json:"isActive"`

	gorm.Model `json:"-"`
}

func (m *CatalogMaterial) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return
}
