package models_test

import (
	"testing"

	"fieldpro-backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func catalogService(name string, price int64) models.CatalogService {
	return models.CatalogService{ID: uuid.New(), Name: name, Price: price, IsActive: true}
}

func catalogMaterial(name string, price int64) models.CatalogMaterial {
	return models.CatalogMaterial{ID: uuid.New(), Name: name, Price: price, IsActive: true}
}

func TestLineItemSet_Total(t *testing.T) {
	diagnostics := catalogService("System diagnostics", 1500)
	installation := catalogService("Equipment installation", 3000)
	cable := catalogMaterial("Ethernet cable (1m)", 150)
	box := catalogMaterial("Junction box", 300)

	var set models.LineItemSet
	set.ToggleService(diagnostics, true)
	set.ToggleService(installation, true)
	set.ToggleMaterial(cable, true)
	set.ChangeQuantity(cable.ID, 2) // quantity 3
	set.ToggleMaterial(box, true)

	// 1500 + 3000 + 150*3 + 300*1
	assert.Equal(t, int64(5250), set.Total())

	// Reordering the selection never changes the total
	var reordered models.LineItemSet
	reordered.ToggleMaterial(box, true)
	reordered.ToggleMaterial(cable, true)
	reordered.ChangeQuantity(cable.ID, 2)
	reordered.ToggleService(installation, true)
	reordered.ToggleService(diagnostics, true)
	assert.Equal(t, set.Total(), reordered.Total())
}

func TestLineItemSet_ToggleService(t *testing.T) {
	svc := catalogService("Specialist consultation", 1000)

	var set models.LineItemSet
	set.ToggleService(svc, true)
	set.ToggleService(svc, true) // deduplicated by id
	assert.Len(t, set.Services, 1)

	set.ToggleService(svc, false)
	assert.Empty(t, set.Services)
	assert.True(t, set.Empty())

	// Toggling off an absent service is a no-op
	set.ToggleService(svc, false)
	assert.Empty(t, set.Services)
}

func TestLineItemSet_ToggleMaterial(t *testing.T) {
	mat := catalogMaterial("RJ-45 connector", 50)

	var set models.LineItemSet
	set.ToggleMaterial(mat, true)
	assert.Len(t, set.Materials, 1)
	assert.Equal(t, 1, set.Materials[0].Quantity)

	set.ChangeQuantity(mat.ID, 4)
	assert.Equal(t, 5, set.Materials[0].Quantity)

	// Removing and re-adding resets the quantity to 1
	set.ToggleMaterial(mat, false)
	assert.Empty(t, set.Materials)
	set.ToggleMaterial(mat, true)
	assert.Equal(t, 1, set.Materials[0].Quantity)
}

func TestLineItemSet_ChangeQuantity(t *testing.T) {
	mat := catalogMaterial("Insulating tape", 80)

	tests := []struct {
		name  string
		start int
		delta int
		want  int
	}{
		{name: "increment", start: 1, delta: 1, want: 2},
		{name: "decrement_floors_at_one", start: 1, delta: -1, want: 1},
		{name: "large_negative_floors_at_one", start: 3, delta: -10, want: 1},
		{name: "decrement_above_floor", start: 3, delta: -1, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var set models.LineItemSet
			set.ToggleMaterial(mat, true)
			if tt.start > 1 {
				set.ChangeQuantity(mat.ID, tt.start-1)
			}

			set.ChangeQuantity(mat.ID, tt.delta)
			assert.Equal(t, tt.want, set.Materials[0].Quantity)
		})
	}

	// Unknown material ids are ignored
	var set models.LineItemSet
	set.ToggleMaterial(mat, true)
	set.ChangeQuantity(uuid.New(), 5)
	assert.Equal(t, 1, set.Materials[0].Quantity)
}

func TestLineItemSet_Empty(t *testing.T) {
	var set models.LineItemSet
	assert.True(t, set.Empty())
	assert.Equal(t, int64(0), set.Total())

	set.ToggleMaterial(catalogMaterial("Heat-shrink tubing", 120), true)
	assert.False(t, set.Empty())
}

func TestLineItemSet_Materialize(t *testing.T) {
	svc := catalogService("Scheduled maintenance", 2000)
	mat := catalogMaterial("Mounting hardware", 200)

	var set models.LineItemSet
	set.ToggleService(svc, true)
	set.ToggleMaterial(mat, true)
	set.ChangeQuantity(mat.ID, 1)

	invoiceID := uuid.New()
	rows := set.InvoiceServices(invoiceID)
	assert.Len(t, rows, 1)
	assert.Equal(t, invoiceID, rows[0].InvoiceID)
	assert.Equal(t, svc.ID, rows[0].ServiceID)
	assert.Equal(t, int64(2000), rows[0].Price)

	matRows := set.InvoiceMaterials(invoiceID)
	assert.Len(t, matRows, 1)
	assert.Equal(t, mat.ID, matRows[0].MaterialID)
	assert.Equal(t, 2, matRows[0].Quantity)
}
