package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"spacare-backend/analytics"
	"spacare-backend/repository"
	"spacare-backend/storage"
)

type DashboardController struct {
	store *storage.Store
}

func NewDashboardController(store *storage.Store) *DashboardController {
	return &DashboardController{store: store}
}

// GetDashboardOverview returns the landing-page stats and the recent
// activity feed.
func (dc *DashboardController) GetDashboardOverview(c *gin.Context) {
	customers := repository.NewCustomers(dc.store).GetAll()
	sales := repository.NewSales(dc.store).GetAll()
	sessions := repository.NewSessions(dc.store).GetAll()
	packages := repository.NewCustomerPackages(dc.store).GetAll()

	now := time.Now()
	c.JSON(http.StatusOK, gin.H{
		"stats":            analytics.Dashboard(customers, sales, sessions, packages, now),
		"recentActivities": analytics.RecentActivities(sales, sessions, 4),
	})
}
