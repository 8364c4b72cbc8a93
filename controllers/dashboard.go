package controllers

import (
	"net/http"
	"time"

	"fieldpro-backend/config"
	"fieldpro-backend/lifecycle"
	"fieldpro-backend/models"
	"fieldpro-backend/utils"

	"github.com/gin-gonic/gin"
)

type RecentActivity struct {
	ClientName string `json:"clientName"`
	Number     string `json:"number"`
	Total      int64  `json:"total"`
	PaidDate   string `json:"paidDate"` // e.g. "Today", "Yesterday"
}

// GetDashboardOverview returns the manager landing page numbers: client
// counts, invoice counts per status, this month's revenue and the latest
// paid invoices.
func GetDashboardOverview(c *gin.Context) {
	// Client counts
	var totalClients, activeClients int64
	config.DB.Model(&models.Client{}).Count(&totalClients)
	config.DB.Model(&models.Client{}).Where("status = ?", models.ClientStatusActive).Count(&activeClients)

	// Invoice counts per status bucket
	statusCounts := make(map[string]int64)
	for _, status := range []lifecycle.Status{
		lifecycle.StatusCreated,
		lifecycle.StatusInvoiced,
		lifecycle.StatusCompleted,
		lifecycle.StatusPaid,
		lifecycle.StatusCancelled,
	} {
		var count int64
		config.DB.Model(&models.Invoice{}).Where("status = ?", status).Count(&count)
		statusCounts[status.String()] = count
	}

	var totalInvoices int64
	config.DB.Model(&models.Invoice{}).Count(&totalInvoices)

	// This month's revenue, recomputed from line items of paid invoices
	now := time.Now()
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthlyRevenue, err := paidRevenue(firstOfMonth, now)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to compute revenue")
		return
	}

	// Latest paid invoices with relative-day labels
	type paidRow struct {
		ClientName string
		Number     string
		Total      int64
		PaidAt     time.Time
	}
	var rows []paidRow
	config.DB.Raw(`
        SELECT c.name AS client_name, i.number, i.paid_at, COALESCE(t.total, 0) AS total
        FROM invoices i
        JOIN clients c ON c.id = i.client_id
        LEFT JOIN (
            SELECT invoice_id, SUM(amount) AS total FROM (
                SELECT invoice_id, price AS amount FROM invoice_services
                UNION ALL
                SELECT invoice_id, price * quantity AS amount FROM invoice_materials
            ) items GROUP BY invoice_id
        ) t ON t.invoice_id = i.id
        WHERE i.status = ? AND i.deleted_at IS NULL
        ORDER BY i.paid_at DESC
        LIMIT 5
    `, lifecycle.StatusPaid).Scan(&rows)

	recentActivity := make([]RecentActivity, 0, len(rows))
	for _, row := range rows {
		recentActivity = append(recentActivity, RecentActivity{
			ClientName: row.ClientName,
			Number:     row.Number,
			Total:      row.Total,
			PaidDate:   utils.RelativeDayLabel(row.PaidAt, now),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"totalClients":     totalClients,
		"activeClients":    activeClients,
		"totalInvoices":    totalInvoices,
		"invoicesByStatus": statusCounts,
		"monthlyRevenue":   monthlyRevenue,
		"recentActivity":   recentActivity,
	})
}

// paidRevenue sums line items of invoices paid within the range. Totals
// are never stored on the invoice row, so this is always a live aggregate.
func paidRevenue(start, end time.Time) (int64, error) {
	var total int64
	err := config.DB.Raw(`
        SELECT COALESCE(SUM(x.amount), 0)
        FROM (
            SELECT invoice_id, price AS amount FROM invoice_services
            UNION ALL
            SELECT invoice_id, price * quantity AS amount FROM invoice_materials
        ) x
        JOIN invoices i ON i.id = x.invoice_id
        WHERE i.status = ? AND i.paid_at BETWEEN ? AND ? AND i.deleted_at IS NULL
    `, lifecycle.StatusPaid, start, end).Scan(&total).Error
	return total, err
}
