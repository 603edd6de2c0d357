// services/reminder_service.go
package services

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"spacare-backend/models"
	"spacare-backend/repository"
	"spacare-backend/storage"
)

// ReminderService sends customers an SMS the day before their scheduled
// session and logs every attempt.
type ReminderService struct {
	store  *storage.Store
	client *twilio.RestClient
	cron   *cron.Cron
}

func NewReminderService(store *storage.Store) *ReminderService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &ReminderService{
		store: store,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

// StartScheduler runs SendDailyReminders every day at the hour configured
// in settings.
func (s *ReminderService) StartScheduler() {
	hour := repository.NewSettings(s.store).Get().ReminderHour
	if hour < 0 || hour > 23 {
		hour = 9
	}

	c := cron.New()
	if _, err := c.AddFunc(fmt.Sprintf("0 %d * * *", hour), s.SendDailyReminders); err != nil {
		log.Printf("Failed to schedule reminders: %v", err)
		return
	}
	c.Start()
	s.cron = c
	log.Println("Reminder scheduler started")
}

// Stop halts the scheduler.
func (s *ReminderService) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// SendDailyReminders processes tomorrow's scheduled sessions. Send failures
// are logged per session and never abort the run.
func (s *ReminderService) SendDailyReminders() {
	log.Println("Starting daily reminder processing...")

	settings := repository.NewSettings(s.store).Get()
	if !settings.SessionReminders {
		log.Println("Session reminders disabled, skipping")
		return
	}

	tomorrow := time.Now().AddDate(0, 0, 1)
	sessions := repository.NewSessions(s.store).GetByDate(tomorrow)
	customers := repository.NewCustomers(s.store)
	logs := repository.NewReminderLogs(s.store)

	for _, session := range sessions {
		if session.Status != models.SessionScheduled {
			continue
		}

		customer, err := customers.GetByID(session.CustomerID)
		if err != nil {
			log.Printf("Session %s: customer %s not found, skipping reminder", session.ID, session.CustomerID)
			continue
		}

		message := fmt.Sprintf(
			"Xin chào %s, nhắc bạn lịch hẹn massage ngày %s lúc %s tại %s.",
			customer.Name,
			session.ScheduledDate.Format("02/01/2006"),
			session.StartTime,
			settings.SpaName,
		)

		status := "sent"
		errorMsg := ""
		if err := s.sendSMS(customer.Phone, message); err != nil {
			log.Printf("Failed to send reminder to %s: %v", customer.Phone, err)
			status = "failed"
			errorMsg = err.Error()
		}

		if _, err := logs.Create(models.ReminderLog{
			SessionID:    session.ID,
			CustomerID:   customer.ID,
			Message:      message,
			Status:       status,
			ErrorMessage: errorMsg,
			Channel:      "sms",
			SentAt:       time.Now(),
		}); err != nil {
			log.Printf("Failed to log reminder for customer %s: %v", customer.ID, err)
		}
	}

	log.Println("Daily reminder processing completed")
}

func (s *ReminderService) sendSMS(to, body string) error {
	from := os.Getenv("TWILIO_FROM_PHONE")
	if from == "" {
		return errors.New("TWILIO_FROM_PHONE not set")
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(from)
	params.SetBody(body)

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		return err
	}
	if resp.Sid != nil {
		log.Printf("Reminder sent to %s, SID: %s", to, *resp.Sid)
	}
	return nil
}
