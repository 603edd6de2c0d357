// controllers/report.go
package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"spacare-backend/analytics"
	"spacare-backend/repository"
	"spacare-backend/storage"
)

// ReportController handles all reporting functions
type ReportController struct {
	store *storage.Store
}

func NewReportController(store *storage.Store) *ReportController {
	return &ReportController{store: store}
}

// AnalyticsSummary represents the report page data for one period
type AnalyticsSummary struct {
	Period       analytics.Period            `json:"period"`
	Metrics      analytics.Metrics           `json:"metrics"`
	PackageTypes []analytics.PackageTypeStat `json:"packageTypes"`
	TopCustomers []analytics.CustomerStat    `json:"topCustomers"`
	DailyRevenue []analytics.DailyRevenuePoint `json:"dailyRevenue"`
}

// GetReportAnalytics computes the analytics summary for ?period=
// (today, this-week, this-month, last-month; default this-month).
func (rc *ReportController) GetReportAnalytics(c *gin.Context) {
	period := analytics.Period(c.DefaultQuery("period", string(analytics.PeriodThisMonth)))

	sales := repository.NewSales(rc.store).GetAll()
	sessions := repository.NewSessions(rc.store).GetAll()
	packages := repository.NewCustomerPackages(rc.store).GetAll()

	now := time.Now()
	data := analytics.FilterByPeriod(sales, sessions, packages, period, now)

	summary := AnalyticsSummary{
		Period:       period,
		Metrics:      analytics.Summarize(data, packages),
		PackageTypes: analytics.PackageTypeStats(data.Sales),
		TopCustomers: analytics.TopCustomers(data.Sales, 5),
		DailyRevenue: analytics.DailyRevenue(sales, now),
	}

	c.JSON(http.StatusOK, summary)
}
