// controllers/report.go
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

// ReportController handles all reporting functions
type ReportController struct{}

// AnalyticsSummary represents the Analytics data
type AnalyticsSummary struct {
	CurrentMonthRevenue   int64            `json:"currentMonthRevenue"`
	MonthGrowth           float64          `json:"monthGrowth"`
	CurrentQuarterRevenue int64            `json:"currentQuarterRevenue"`
	QuarterGrowth         float64          `json:"quarterGrowth"`
	CurrentYearRevenue    int64            `json:"currentYearRevenue"`
	YearGrowth            float64          `json:"yearGrowth"`
	TopServices           []ServiceSummary `json:"topServices"`
	TopClients            []ClientSummary  `json:"topClients"`
	QuickStats            QuickStatistics  `json:"quickStats"`
}

type ServiceSummary struct {
	Name    string `json:"name"`
	Count   int    `json:"count"`
	Revenue int64  `json:"revenue"`
}

type ClientSummary struct {
	Name     string `json:"name"`
	Invoices int    `json:"invoices"`
	Spent    int64  `json:"spent"`
}

type QuickStatistics struct {
	TotalClients    int     `json:"totalClients"`
	TotalInvoices   int     `json:"totalInvoices"`
	PaidInvoices    int     `json:"paidInvoices"`
	AvgInvoiceValue float64 `json:"avgInvoiceValue"`
}

// GetReportAnalytics returns the manager analytics summary
func (rc *ReportController) GetReportAnalytics(c *gin.Context) {
	now := time.Now()
	currentYear, currentMonth, _ := now.Date()
	currentLocation := now.Location()

	firstOfMonth := time.Date(currentYear, currentMonth, 1, 0, 0, 0, 0, currentLocation)
	lastOfMonth := firstOfMonth.AddDate(0, 1, -1)

	currentMonthRevenue, err := paidRevenue(firstOfMonth, lastOfMonth)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get monthly revenue")
		return
	}

	lastMonthRevenue, err := paidRevenue(
		firstOfMonth.AddDate(0, -1, 0),
		lastOfMonth.AddDate(0, -1, 0))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get last month revenue")
		return
	}

	currentQuarterRevenue, err := paidRevenue(
		rc.getQuarterStart(now),
		rc.getQuarterEnd(now))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get quarterly revenue")
		return
	}

	lastQuarterRevenue, err := paidRevenue(
		rc.getQuarterStart(now).AddDate(0, -3, 0),
		rc.getQuarterEnd(now).AddDate(0, -3, 0))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get last quarter revenue")
		return
	}

	currentYearRevenue, err := paidRevenue(
		time.Date(currentYear, 1, 1, 0, 0, 0, 0, currentLocation),
		time.Date(currentYear, 12, 31, 23, 59, 59, 0, currentLocation))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get yearly revenue")
		return
	}

	lastYearRevenue, err := paidRevenue(
		time.Date(currentYear-1, 1, 1, 0, 0, 0, 0, currentLocation),
		time.Date(currentYear-1, 12, 31, 23, 59, 59, 0, currentLocation))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get last year revenue")
		return
	}

	monthGrowth := rc.calculateGrowthPercentage(currentMonthRevenue, lastMonthRevenue)
	quarterGrowth := rc.calculateGrowthPercentage(currentQuarterRevenue, lastQuarterRevenue)
	yearGrowth := rc.calculateGrowthPercentage(currentYearRevenue, lastYearRevenue)

	topServices, err := rc.getTopServices(firstOfMonth, lastOfMonth, 4)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get top services")
		return
	}

	topClients, err := rc.getTopClients(firstOfMonth, lastOfMonth, 4)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get top clients")
		return
	}

	quickStats, err := rc.getQuickStatistics()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get quick statistics")
		return
	}

	summary := AnalyticsSummary{
		CurrentMonthRevenue:   currentMonthRevenue,
		MonthGrowth:           monthGrowth,
		CurrentQuarterRevenue: currentQuarterRevenue,
		QuarterGrowth:         quarterGrowth,
		CurrentYearRevenue:    currentYearRevenue,
		YearGrowth:            yearGrowth,
		TopServices:           topServices,
		TopClients:            topClients,
		QuickStats:            quickStats,
	}

	c.JSON(http.StatusOK, summary)
}

// Helper functions for reports

func (rc *ReportController) getQuarterStart(date time.Time) time.Time {
	quarter := (int(date.Month())-1)/3 + 1
	startMonth := time.Month((quarter-1)*3 + 1)
	return time.Date(date.Year(), startMonth, 1, 0, 0, 0, 0, date.Location())
}

func (rc *ReportController) getQuarterEnd(date time.Time) time.Time {
	return rc.getQuarterStart(date).AddDate(0, 3, -1)
}

func (rc *ReportController) calculateGrowthPercentage(current, previous int64) float64 {
	if previous == 0 {
		if current == 0 {
			return 0
		}
		return 100
	}
	return (float64(current-previous) / float64(previous)) * 100
}

func (rc *ReportController) getTopServices(start, end time.Time, limit int) ([]ServiceSummary, error) {
	var services []ServiceSummary

	err := config.DB.Table("invoice_services").
		Select("invoice_services.name, COUNT(*) as count, SUM(invoice_services.price) as revenue").
		Joins("JOIN invoices ON invoices.id = invoice_services.invoice_id").
		Where("invoices.status = ? AND invoices.paid_at BETWEEN ? AND ? AND invoices.deleted_at IS NULL",
			lifecycle.StatusPaid, start, end).
		Group("invoice_services.name").
		Order("revenue DESC").
		Limit(limit).
		Scan(&services).Error

	return services, err
}

func (rc *ReportController) getTopClients(start, end time.Time, limit int) ([]ClientSummary, error) {
	var clients []ClientSummary

	err := config.DB.Raw(`
        SELECT c.name, COUNT(DISTINCT i.id) AS invoices, COALESCE(SUM(x.amount), 0) AS spent
        FROM (
            SELECT invoice_id, price AS amount FROM invoice_services
            UNION ALL
            SELECT invoice_id, price * quantity AS amount FROM invoice_materials
        ) x
        JOIN invoices i ON i.id = x.invoice_id
        JOIN clients c ON c.id = i.client_id
        WHERE i.status = ? AND i.paid_at BETWEEN ? AND ? AND i.deleted_at IS NULL
        GROUP BY c.name
        ORDER BY spent DESC
        LIMIT ?
    `, lifecycle.StatusPaid, start, end, limit).Scan(&clients).Error

	return clients, err
}

func (rc *ReportController) getQuickStatistics() (QuickStatistics, error) {
	var stats QuickStatistics

	var totalClients int64
	if err := config.DB.Model(&models.Client{}).Count(&totalClients).Error; err != nil {
		return stats, err
	}
	stats.TotalClients = int(totalClients)

	var totalInvoices int64
	if err := config.DB.Model(&models.Invoice{}).Count(&totalInvoices).Error; err != nil {
		return stats, err
	}
	stats.TotalInvoices = int(totalInvoices)

	var paidInvoices int64
	if err := config.DB.Model(&models.Invoice{}).
		Where("status = ?", lifecycle.StatusPaid).
		Count(&paidInvoices).Error; err != nil {
		return stats, err
	}
	stats.PaidInvoices = int(paidInvoices)

	if stats.PaidInvoices > 0 {
		totalRevenue, err := paidRevenue(time.Time{}, time.Now())
		if err != nil {
			return stats, err
		}
		stats.AvgInvoiceValue = float64(totalRevenue) / float64(stats.PaidInvoices)
	}

	return stats, nil
}
