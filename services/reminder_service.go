// services/reminder_service.go
package services

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"fieldpro-backend/lifecycle"
	"fieldpro-backend/models"
	"fieldpro-backend/utils"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

// ReminderService nudges clients about invoices that have sat in 'created'
// for too long without being paid or cancelled.
type ReminderService struct {
	db        *gorm.DB
	client    *twilio.RestClient
	afterDays int
}

func NewReminderService(db *gorm.DB) *ReminderService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	afterDays := 7
	if env := os.Getenv("REMINDER_AFTER_DAYS"); env != "" {
		if d, err := strconv.Atoi(env); err == nil && d > 0 {
			afterDays = d
		}
	}

	return &ReminderService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
		afterDays: afterDays,
	}
}

func (s *ReminderService) StartScheduler() {
	c := cron.New()

	// Run every day at 9 AM
	if _, err := c.AddFunc("0 9 * * *", s.SendDailyReminders); err != nil {
		log.Printf("Failed to schedule payment reminders: %v", err)
		return
	}

	c.Start()
	log.Println("Payment reminder scheduler started")
}

func (s *ReminderService) SendDailyReminders() {
	log.Println("Starting daily payment reminder processing...")

	invoices, err := s.overdueInvoices()
	if err != nil {
		log.Printf("Failed to fetch overdue invoices: %v", err)
		return
	}

	for _, invoice := range invoices {
		s.remind(invoice)
	}

	log.Println("Daily payment reminder processing completed")
}

// overdueInvoices returns invoices still 'created' after the grace period
// that have not been reminded in the last 24 hours.
func (s *ReminderService) overdueInvoices() ([]models.Invoice, error) {
	cutoff := time.Now().AddDate(0, 0, -s.afterDays)

	var invoices []models.Invoice
	err := s.db.Preload("Services").Preload("Materials").
		Where("status = ? AND created_at < ?", lifecycle.StatusCreated, cutoff).
		Where("id NOT IN (?)", s.db.Model(&models.PaymentReminderLog{}).
			Select("invoice_id").
			Where("sent_at > ?", time.Now().Add(-24*time.Hour))).
		Find(&invoices).Error
	return invoices, err
}

func (s *ReminderService) remind(invoice models.Invoice) {
	var client models.Client
	if err := s.db.First(&client, "id = ?", invoice.ClientID).Error; err != nil {
		log.Printf("Invoice %s: failed to load client: %v", invoice.ID, err)
		return
	}

	message := fmt.Sprintf(
		"Hi %s, invoice %s for %d is still awaiting payment. Please get in touch if anything is unclear.",
		client.Name, invoice.Number, invoice.Total())

	phone := utils.NormalizePhone(client.Phone)

	// WhatsApp if the phone is in E.164 format, SMS otherwise
	channel := "sms"
	to := phone
	if strings.HasPrefix(phone, "+") {
		to = "whatsapp:" + phone
		channel = "whatsapp"
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetBody(message)

	if channel == "whatsapp" {
		params.SetFrom("whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER"))
	} else {
		params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
	}

	resp, err := s.client.Api.CreateMessage(params)
	status := "sent"
	errorMsg := ""

	if err != nil {
		log.Printf("Failed to send reminder to %s: %v", client.Phone, err)
		status = "failed"
		errorMsg = err.Error()
	} else if resp.Sid != nil {
		log.Printf("Reminder sent to %s, SID: %s", client.Phone, *resp.Sid)
	} else {
		log.Printf("Reminder sent to %s, but no SID returned", client.Phone)
	}

	reminderLog := models.PaymentReminderLog{
		ClientID:     client.ID,
		InvoiceID:    invoice.ID,
		Message:      message,
		Status:       status,
		ErrorMessage: errorMsg,
		Channel:      channel,
		SentAt:       time.Now(),
	}

	if err := s.db.Create(&reminderLog).Error; err != nil {
		log.Printf("Failed to log reminder for invoice %s: %v", invoice.ID, err)
	}
}
