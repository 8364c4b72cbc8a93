package models

import "gorm.io/gorm"

// SeedCatalog installs the default service and material catalog on an
// empty database so fresh installs have something to invoice against.
func SeedCatalog(db *gorm.DB) error {
	var count int64
	if err := db.Model(&CatalogService{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		services := []CatalogService{
			{Name: "System diagnostics", Price: 1500, IsActive: true},
			{Name: "Equipment installation", Price: 3000, IsActive: true},
			{Name: "Software configuration", Price: 2500, IsActive: true},
			{Name: "Scheduled maintenance", Price: 2000, IsActive: true},
			{Name: "Component replacement", Price: 1800, IsActive: true},
			{Name: "Specialist consultation", Price: 1000, IsActive: true},
		}
		if err := db.Create(&services).Error; err != nil {
			return err
		}
	}

	if err := db.Model(&CatalogMaterial{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		materials := []CatalogMaterial{
			{Name: "Ethernet cable (1m)", Price: 150, IsActive: true},
			{Name: "RJ-45 connector", Price: 50, IsActive: true},
			{Name: "Mounting hardware", Price: 200, IsActive: true},
			{Name: "Insulating tape", Price: 80, IsActive: true},
			{Name: "Heat-shrink tubing", Price: 120, IsActive: true},
			{Name: "Junction box", Price: 300, IsActive: true},
		}
		if err := db.Create(&materials).Error; err != nil {
			return err
		}
	}

	return nil
}
