package repository

import (
	"testing"
	"time"

	"spacare-backend/models"
)

func TestSettingsDefaultsAndUpdate(t *testing.T) {
	settings := NewSettings(newTestStore(t))

	got := settings.Get()
	if got != models.DefaultSettings() {
		t.Errorf("Get on empty bucket = %+v, want defaults", got)
	}

	got.SpaName = "Spa Hoa Sen"
	got.SessionReminders = false
	if _, err := settings.Update(got); err != nil {
		t.Fatalf("Update: %v", err)
	}

	stored := settings.Get()
	if stored.SpaName != "Spa Hoa Sen" || stored.SessionReminders {
		t.Errorf("Get after Update = %+v", stored)
	}
}

func TestReminderLogsAppend(t *testing.T) {
	logs := NewReminderLogs(newTestStore(t))

	for _, status := range []string{"sent", "failed"} {
		if _, err := logs.Create(models.ReminderLog{
			SessionID:  "session_1",
			CustomerID: "customer_1",
			Message:    "Nhắc lịch hẹn",
			Status:     status,
			Channel:    "sms",
			SentAt:     time.Now(),
		}); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	got := logs.GetAll()
	if len(got) != 2 {
		t.Fatalf("GetAll returned %d logs, want 2", len(got))
	}
	if got[0].Status != "sent" || got[1].Status != "failed" {
		t.Errorf("log order = %s,%s want sent,failed", got[0].Status, got[1].Status)
	}
}
