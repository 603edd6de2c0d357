package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"spacare-backend/models"
	"spacare-backend/repository"
	"spacare-backend/storage"
	"spacare-backend/utils"
)

// CreateSessionInput defines the expected JSON structure for booking a session
type CreateSessionInput struct {
	CustomerID    string    `json:"customerId" binding:"required"`
	PackageID     string    `json:"packageId" binding:"required"` // CustomerPackage id
	ScheduledDate time.Time `json:"scheduledDate" binding:"required"`
	StartTime     string    `json:"startTime" binding:"required"`
	EndTime       string    `json:"endTime" binding:"required"`
	Therapist     string    `json:"therapist"`
	RoomNumber    string    `json:"roomNumber"`
	Notes         string    `json:"notes"`
}

// UpdateSessionStatusInput defines the expected JSON structure for a status change
type UpdateSessionStatusInput struct {
	Status models.SessionStatus `json:"status" binding:"required,oneof=scheduled in-progress completed cancelled no-show"`
}

type SessionController struct {
	store *storage.Store
}

func NewSessionController(store *storage.Store) *SessionController {
	return &SessionController{store: store}
}

// CreateSession books a session against one of the customer's packages.
// The session number is the next ordinal within that package.
func (sc *SessionController) CreateSession(c *gin.Context) {
	var input CreateSessionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	customer, err := repository.NewCustomers(sc.store).GetByID(input.CustomerID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Customer not found")
		return
	}

	owned, err := repository.NewCustomerPackages(sc.store).GetByID(input.PackageID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Customer package not found")
		return
	}
	if owned.CustomerID != customer.ID {
		utils.RespondWithError(c, http.StatusBadRequest, "Package belongs to another customer")
		return
	}
	if owned.Status != models.PackageStatusActive || owned.SessionsRemaining <= 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "Package has no sessions remaining")
		return
	}

	existing := repository.NewSessions(sc.store).GetByPackageID(owned.ID)

	session, err := repository.NewSessions(sc.store).Create(models.Session{
		CustomerID:    customer.ID,
		CustomerName:  customer.Name,
		PackageID:     owned.ID,
		ScheduledDate: input.ScheduledDate,
		StartTime:     input.StartTime,
		EndTime:       input.EndTime,
		Status:        models.SessionScheduled,
		Therapist:     input.Therapist,
		RoomNumber:    input.RoomNumber,
		Notes:         input.Notes,
		SessionNumber: len(existing) + 1,
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create session")
		return
	}

	c.JSON(http.StatusCreated, session)
}

// GetSessions lists sessions, filtered by ?date= (YYYY-MM-DD) and/or
// ?customerId=
func (sc *SessionController) GetSessions(c *gin.Context) {
	sessions := repository.NewSessions(sc.store)

	if customerID := c.Query("customerId"); customerID != "" {
		c.JSON(http.StatusOK, sessions.GetByCustomerID(customerID))
		return
	}
	if dateParam := c.Query("date"); dateParam != "" {
		date, err := parseDateParam(dateParam)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid date")
			return
		}
		c.JSON(http.StatusOK, sessions.GetByDate(date))
		return
	}
	c.JSON(http.StatusOK, sessions.GetAll())
}

// UpdateSessionStatus sets the session status. Marking a session completed
// stamps the completion date and advances the owning package's counters in
// the same store transaction, so the two records cannot drift apart.
func (sc *SessionController) UpdateSessionStatus(c *gin.Context) {
	var input UpdateSessionStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	id := c.Param("id")
	var updated models.Session

	err := sc.store.Transaction(func(tx *storage.Store) error {
		sessions := repository.NewSessions(tx)

		session, err := sessions.GetByID(id)
		if err != nil {
			return err
		}

		var completedDate *time.Time
		if input.Status == models.SessionCompleted {
			now := time.Now()
			completedDate = &now
		}

		updated, err = sessions.UpdateStatus(id, input.Status, completedDate)
		if err != nil {
			return err
		}

		if input.Status != models.SessionCompleted {
			return nil
		}

		packages := repository.NewCustomerPackages(tx)
		for _, pkg := range packages.GetByCustomerID(session.CustomerID) {
			if pkg.ID == session.PackageID && pkg.Status == models.PackageStatusActive {
				_, err = packages.UpdateSessionCount(pkg.ID, pkg.SessionsUsed+1)
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Session not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update session status")
		}
		return
	}

	c.JSON(http.StatusOK, updated)
}
