package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"spacare-backend/models"
	"spacare-backend/repository"
	"spacare-backend/storage"
	"spacare-backend/utils"
)

// UpdateSettingsInput defines the expected JSON structure for updating settings
type UpdateSettingsInput struct {
	SpaName          *string `json:"spaName"`
	Address          *string `json:"address"`
	SessionReminders *bool   `json:"sessionReminders"`
	SMSNotifications *bool   `json:"smsNotifications"`
	ReminderHour     *int    `json:"reminderHour" binding:"omitempty,min=0,max=23"`
}

type SettingsController struct {
	store *storage.Store
}

func NewSettingsController(store *storage.Store) *SettingsController {
	return &SettingsController{store: store}
}

// GetSettings returns the stored settings (defaults when never saved)
func (sc *SettingsController) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, repository.NewSettings(sc.store).Get())
}

// UpdateSettings merges the provided fields into the stored settings
func (sc *SettingsController) UpdateSettings(c *gin.Context) {
	var input UpdateSettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	settings := repository.NewSettings(sc.store)
	current := settings.Get()

	if input.SpaName != nil {
		current.SpaName = *input.SpaName
	}
	if input.Address != nil {
		current.Address = *input.Address
	}
	if input.SessionReminders != nil {
		current.SessionReminders = *input.SessionReminders
	}
	if input.SMSNotifications != nil {
		current.SMSNotifications = *input.SMSNotifications
	}
	if input.ReminderHour != nil {
		current.ReminderHour = *input.ReminderHour
	}

	updated, err := settings.Update(current)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update settings")
		return
	}

	c.JSON(http.StatusOK, updated)
}

// GetReminderLogs returns the reminder attempt history
func (sc *SettingsController) GetReminderLogs(c *gin.Context) {
	logs := repository.NewReminderLogs(sc.store).GetAll()
	if logs == nil {
		logs = []models.ReminderLog{}
	}
	c.JSON(http.StatusOK, logs)
}
