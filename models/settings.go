package models

// Settings holds the back-office configuration stored as a single-element
// array in the settings bucket.
type Settings struct {
	SpaName          string `json:"spaName"`
	Address          string `json:"address,omitempty"`
	SessionReminders bool   `json:"sessionReminders"`
	SMSNotifications bool   `json:"smsNotifications"`
	ReminderHour     int    `json:"reminderHour"` // local hour of day for the daily reminder run
}

func DefaultSettings() Settings {
	return Settings{
		SpaName:          "SpaCare",
		SessionReminders: true,
		SMSNotifications: false,
		ReminderHour:     9,
	}
}
