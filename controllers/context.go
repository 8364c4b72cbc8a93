package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"fieldpro-backend/models"
)

// currentUserID pulls the authenticated user's id out of the request context
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	raw, exists := c.Get("userId")
	if !exists {
		return uuid.Nil, false
	}
	str, ok := raw.(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(str)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func isManager(c *gin.Context) bool {
	role, exists := c.Get("role")
	return exists && role == models.RoleManager
}

// clientScope restricts queries to the executor's own clients; managers
// see everything.
func clientScope(c *gin.Context, db *gorm.DB, executorID uuid.UUID) *gorm.DB {
	if isManager(c) {
		return db
	}
	return db.Where("executor_id = ?", executorID)
}

// invoiceScope mirrors clientScope for invoice queries
func invoiceScope(c *gin.Context, db *gorm.DB, executorID uuid.UUID) *gorm.DB {
	if isManager(c) {
		return db
	}
	return db.Where("executor_id = ?", executorID)
}
