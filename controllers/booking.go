package controllers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"spacare-backend/models"
	"spacare-backend/repository"
	"spacare-backend/storage"
	"spacare-backend/utils"
)

// BookingInput is what the public booking form on the marketing site sends.
type BookingInput struct {
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Email    string `json:"email"`
	Service  string `json:"service"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Symptoms string `json:"symptoms"`
}

type BookingController struct {
	store *storage.Store
}

func NewBookingController(store *storage.Store) *BookingController {
	return &BookingController{store: store}
}

// CreateBooking records a booking request from the public site. An unknown
// phone number creates a new customer; the requested service, slot and
// symptoms are folded into the notes for staff to follow up within 24h.
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var input BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	phone := strings.TrimSpace(input.Phone)
	if !utils.ValidatePhone(phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	note := bookingNote(input)
	customers := repository.NewCustomers(bc.store)

	existing, err := customers.GetByPhone(phone)
	if err == nil {
		notes := existing.Notes
		if notes != "" {
			notes += "\n"
		}
		if _, err := customers.Update(existing.ID, repository.CustomerUpdate{Notes: ptr(notes + note)}); err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to record booking")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Booking received"})
		return
	}

	if _, err := customers.Create(models.Customer{
		Name:  strings.TrimSpace(input.Name),
		Phone: phone,
		Notes: note,
	}); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to record booking")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Booking received"})
}

func bookingNote(input BookingInput) string {
	parts := []string{"Đặt lịch từ website"}
	if input.Service != "" {
		parts = append(parts, "dịch vụ: "+input.Service)
	}
	if input.Date != "" || input.Time != "" {
		parts = append(parts, fmt.Sprintf("mong muốn: %s %s", input.Date, input.Time))
	}
	if input.Symptoms != "" {
		parts = append(parts, "triệu chứng: "+input.Symptoms)
	}
	if input.Email != "" {
		parts = append(parts, "email: "+input.Email)
	}
	return strings.Join(parts, ", ")
}

func ptr[T any](v T) *T { return &v }
