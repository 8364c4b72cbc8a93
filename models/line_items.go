package models

import (
	"errors"

	"github.com/google/uuid"
)

// ErrEmptySelection is returned when an invoice is submitted with no
// services and no materials selected.
var ErrEmptySelection = errors.New("at least one service or material is required")

type SelectedService struct {
	ServiceID uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Price     int64     `json:"price"`
}

type SelectedMaterial struct {
	MaterialID uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Price      int64     `json:"price"`
	Quantity   int       `json:"quantity"`
}

// LineItemSet is the working selection for an invoice being composed or
// edited. Services are uniqued by id; materials carry a quantity with a
// floor of 1.
type LineItemSet struct {
	Services  []SelectedService
	Materials []SelectedMaterial
}

// ToggleService adds the service when included (deduplicated by id) and
// removes it otherwise. Toggling on twice is a no-op.
func (s *LineItemSet) ToggleService(svc CatalogService, included bool) {
	idx := -1
	for i, sel := range s.Services {
		if sel.ServiceID == svc.ID {
			idx = i
			break
		}
	}
	if included {
		if idx < 0 {
			s.Services = append(s.Services, SelectedService{ServiceID: svc.ID, Name: svc.Name, Price: svc.Price})
		}
		return
	}
	if idx >= 0 {
		s.Services = append(s.Services[:idx], s.Services[idx+1:]...)
	}
}

// ToggleMaterial adds the material with quantity 1 when included and
// removes it entirely otherwise. Re-adding does not restore a previous
// quantity.
func (s *LineItemSet) ToggleMaterial(mat CatalogMaterial, included bool) {
	idx := -1
	for i, sel := range s.Materials {
		if sel.MaterialID == mat.ID {
			idx = i
			break
		}
	}
	if included {
		if idx < 0 {
			s.Materials = append(s.Materials, SelectedMaterial{MaterialID: mat.ID, Name: mat.Name, Price: mat.Price, Quantity: 1})
		}
		return
	}
	if idx >= 0 {
		s.Materials = append(s.Materials[:idx], s.Materials[idx+1:]...)
	}
}

// ChangeQuantity adjusts a selected material's quantity by delta, never
// below 1. Unknown material ids are ignored.
func (s *LineItemSet) ChangeQuantity(materialID uuid.UUID, delta int) {
	for i := range s.Materials {
		if s.Materials[i].MaterialID == materialID {
			q := s.Materials[i].Quantity + delta
			if q < 1 {
				q = 1
			}
			s.Materials[i].Quantity = q
			return
		}
	}
}

// Empty reports whether nothing is selected; submission is rejected then
func (s *LineItemSet) Empty() bool {
	return len(s.Services) == 0 && len(s.Materials) == 0
}

// Total is the sum of service prices plus material price times quantity
func (s *LineItemSet) Total() int64 {
	var total int64
	for _, svc := range s.Services {
		total += svc.Price
	}
	for _, mat := range s.Materials {
		total += mat.Price * int64(mat.Quantity)
	}
	return total
}

// InvoiceServices materializes the selection as invoice line item rows
func (s *LineItemSet) InvoiceServices(invoiceID uuid.UUID) []InvoiceService {
	out := make([]InvoiceService, 0, len(s.Services))
	for _, sel := range s.Services {
		out = append(out, InvoiceService{
			InvoiceID: invoiceID,
			ServiceID: sel.ServiceID,
			Name:      sel.Name,
			Price:     sel.Price,
		})
	}
	return out
}

// InvoiceMaterials materializes the selection as invoice line item rows
func (s *LineItemSet) InvoiceMaterials(invoiceID uuid.UUID) []InvoiceMaterial {
	out := make([]InvoiceMaterial, 0, len(s.Materials))
	for _, sel := range s.Materials {
		out = append(out, InvoiceMaterial{
			InvoiceID:  invoiceID,
			MaterialID: sel.MaterialID,
			Name:       sel.Name,
			Price:      sel.Price,
			Quantity:   sel.Quantity,
		})
	}
	return out
}
