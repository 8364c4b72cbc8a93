package services_test

import (
	"fmt"
	"testing"

	"fieldpro-backend/lifecycle"
	"fieldpro-backend/models"
	"fieldpro-backend/services"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupInvoiceTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Client{},
		&models.Invoice{},
		&models.InvoiceService{},
		&models.InvoiceMaterial{},
	))
	return db
}

func testSelection() models.LineItemSet {
	var set models.LineItemSet
	set.ToggleService(models.CatalogService{ID: uuid.New(), Name: "System diagnostics", Price: 1500, IsActive: true}, true)
	cable := models.CatalogMaterial{ID: uuid.New(), Name: "Ethernet cable (1m)", Price: 150, IsActive: true}
	set.ToggleMaterial(cable, true)
	set.ChangeQuantity(cable.ID, 2) // quantity 3
	return set
}

// The guards run before any query, so no database is needed here.
func TestInvoiceService_DeleteRequiresConfirmation(t *testing.T) {
	svc := services.NewInvoiceService(nil, nil)
	inv := &models.Invoice{ID: uuid.New(), Status: lifecycle.StatusCreated}

	assert.ErrorIs(t, svc.Delete(inv, false), services.ErrDeleteNotConfirmed)
	assert.Equal(t, lifecycle.StatusCreated, inv.Status)
}

func TestInvoiceService_DeleteOnlyWhileCreated(t *testing.T) {
	svc := services.NewInvoiceService(nil, nil)

	for _, status := range []lifecycle.Status{
		lifecycle.StatusInvoiced,
		lifecycle.StatusCompleted,
		lifecycle.StatusPaid,
		lifecycle.StatusCancelled,
	} {
		t.Run(string(status), func(t *testing.T) {
			inv := &models.Invoice{ID: uuid.New(), Status: status}
			assert.ErrorIs(t, svc.Delete(inv, true), lifecycle.ErrInvalidTransition)
		})
	}
}

func TestInvoiceService_DeleteLeavesSiblingsUntouched(t *testing.T) {
	db := setupInvoiceTestDB(t)
	svc := services.NewInvoiceService(db, services.NewSimulatedGenerator())

	client := models.Client{
		ExecutorID: uuid.New(),
		Name:       "A",
		Phone:      "123",
		Address:    "X",
		Status:     models.ClientStatusActive,
	}
	require.NoError(t, db.Create(&client).Error)

	doomed, err := svc.Create(client.ID, client.ExecutorID, testSelection())
	require.NoError(t, err)
	sibling, err := svc.Create(client.ID, client.ExecutorID, testSelection())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(doomed, true))

	// The deleted invoice and its line items are gone
	assert.ErrorIs(t, db.First(&models.Invoice{}, "id = ?", doomed.ID).Error, gorm.ErrRecordNotFound)
	var orphans int64
	db.Model(&models.InvoiceService{}).Where("invoice_id = ?", doomed.ID).Count(&orphans)
	assert.Zero(t, orphans)
	db.Model(&models.InvoiceMaterial{}).Where("invoice_id = ?", doomed.ID).Count(&orphans)
	assert.Zero(t, orphans)

	// The sibling keeps its line items and total
	var kept models.Invoice
	require.NoError(t, db.Preload("Services").Preload("Materials").
		First(&kept, "id = ?", sibling.ID).Error)
	assert.Len(t, kept.Services, 1)
	assert.Len(t, kept.Materials, 1)
	assert.Equal(t, int64(1950), kept.Total())
}

func TestInvoiceService_UnconfirmedDeleteIsANoop(t *testing.T) {
	db := setupInvoiceTestDB(t)
	svc := services.NewInvoiceService(db, services.NewSimulatedGenerator())

	client := models.Client{ExecutorID: uuid.New(), Name: "A", Phone: "123", Address: "X"}
	require.NoError(t, db.Create(&client).Error)

	inv, err := svc.Create(client.ID, client.ExecutorID, testSelection())
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(inv, false), services.ErrDeleteNotConfirmed)

	var kept models.Invoice
	require.NoError(t, db.Preload("Services").Preload("Materials").
		First(&kept, "id = ?", inv.ID).Error)
	assert.Equal(t, lifecycle.StatusCreated, kept.Status)
	assert.Equal(t, int64(1950), kept.Total())
}
