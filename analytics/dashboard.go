package analytics

import (
	"sort"
	"strconv"
	"time"

	"spacare-backend/models"
	"spacare-backend/utils"
)

// DashboardStats are the figures of the admin landing page.
type DashboardStats struct {
	TodaySales      float64 `json:"todaySales"`
	TodayCustomers  int     `json:"todayCustomers"`
	TodaySessions   int     `json:"todaySessions"` // completed today
	PendingSessions int     `json:"pendingSessions"`
	TotalCustomers  int     `json:"totalCustomers"`
	ActivePackages  int     `json:"activePackages"`
	MonthlyRevenue  float64 `json:"monthlyRevenue"`
	PopularPackage  string  `json:"popularPackage"`
}

// Dashboard folds all four collections into the landing-page stats.
func Dashboard(customers []models.Customer, sales []models.Sale, sessions []models.Session, packages []models.CustomerPackage, now time.Time) DashboardStats {
	today := utils.BeginningOfDay(now)
	tomorrow := today.AddDate(0, 0, 1)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	stats := DashboardStats{TotalCustomers: len(customers)}

	todayBuyers := make(map[string]struct{})
	for _, sale := range sales {
		if !sale.SaleDate.Before(monthStart) {
			stats.MonthlyRevenue += sale.Amount
		}
		if !sale.SaleDate.Before(today) && sale.SaleDate.Before(tomorrow) {
			stats.TodaySales += sale.Amount
			todayBuyers[sale.CustomerID] = struct{}{}
		}
	}
	stats.TodayCustomers = len(todayBuyers)

	for _, session := range sessions {
		if session.ScheduledDate.Before(today) || !session.ScheduledDate.Before(tomorrow) {
			continue
		}
		switch session.Status {
		case models.SessionCompleted:
			stats.TodaySessions++
		case models.SessionScheduled:
			stats.PendingSessions++
		}
	}

	for _, pkg := range packages {
		if pkg.Status == models.PackageStatusActive {
			stats.ActivePackages++
		}
	}

	stats.PopularPackage = mostPopularPackage(sales)
	return stats
}

func mostPopularPackage(sales []models.Sale) string {
	counts := make(map[string]int)
	for _, sale := range sales {
		counts[sale.PackageName]++
	}
	if len(counts) == 0 {
		return "Chưa có dữ liệu"
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names) // deterministic tie-break
	popular := names[0]
	for _, name := range names[1:] {
		if counts[name] > counts[popular] {
			popular = name
		}
	}
	return popular
}

// Activity is one recent-activity entry on the dashboard.
type Activity struct {
	Type         string    `json:"type"` // sale or session
	CustomerName string    `json:"customerName"`
	Detail       string    `json:"detail"`
	Amount       float64   `json:"amount,omitempty"`
	Time         time.Time `json:"time"`
}

// RecentActivities merges the three most recent sales with the two most
// recently completed sessions, capped at limit.
func RecentActivities(sales []models.Sale, sessions []models.Session, limit int) []Activity {
	sorted := append([]models.Sale(nil), sales...)
	sort.SliceStable(sorted, func(a, b int) bool {
		return sorted[a].SaleDate.After(sorted[b].SaleDate)
	})
	if len(sorted) > 3 {
		sorted = sorted[:3]
	}

	var activities []Activity
	for _, sale := range sorted {
		activities = append(activities, Activity{
			Type:         "sale",
			CustomerName: sale.CustomerName,
			Detail:       sale.PackageName,
			Amount:       sale.Amount,
			Time:         sale.SaleDate,
		})
	}

	var completed []models.Session
	for _, session := range sessions {
		if session.Status == models.SessionCompleted && session.CompletedDate != nil {
			completed = append(completed, session)
		}
	}
	sort.SliceStable(completed, func(a, b int) bool {
		return completed[a].CompletedDate.After(*completed[b].CompletedDate)
	})
	if len(completed) > 2 {
		completed = completed[:2]
	}

	for _, session := range completed {
		activities = append(activities, Activity{
			Type:         "session",
			CustomerName: session.CustomerName,
			Detail:       "Buổi " + strconv.Itoa(session.SessionNumber),
			Time:         *session.CompletedDate,
		})
	}

	if len(activities) > limit {
		activities = activities[:limit]
	}
	return activities
}
