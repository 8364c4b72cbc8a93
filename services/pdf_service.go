// services/pdf_service.go
package services

import (
	"fmt"
	"os"
	"time"

	"fieldpro-backend/models"
)

// Document is the opaque result of generating an invoice PDF
type Document struct {
	ID  string
	URL string
}

// DocumentGenerator turns an invoice's line items into a downloadable
// document. Swapping in a real renderer must not touch lifecycle logic.
type DocumentGenerator interface {
	Generate(invoice *models.Invoice) (Document, error)
}

// SimulatedGenerator fabricates stable ids and URLs without rendering
// anything. Stands in until a real PDF backend is wired up.
type SimulatedGenerator struct {
	BaseURL string
}

func NewSimulatedGenerator() *SimulatedGenerator {
	base := os.Getenv("PDF_BASE_URL")
	if base == "" {
		base = "https://example.com/invoices"
	}
	return &SimulatedGenerator{BaseURL: base}
}

func (g *SimulatedGenerator) Generate(invoice *models.Invoice) (Document, error) {
	id := fmt.Sprintf("invoice-%d", time.Now().UnixMilli())
	return Document{
		ID:  id,
		URL: fmt.Sprintf("%s/%s.pdf", g.BaseURL, id),
	}, nil
}
