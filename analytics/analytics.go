// Package analytics computes report and dashboard figures from
// already-loaded collections. Nothing here touches the store or mutates
// its inputs.
package analytics

import (
	"math"
	"sort"
	"time"

	"spacare-backend/models"
	"spacare-backend/utils"
)

type Period string

const (
	PeriodToday     Period = "today"
	PeriodThisWeek  Period = "this-week"
	PeriodThisMonth Period = "this-month"
	PeriodLastMonth Period = "last-month"
)

// PeriodRange resolves a period keyword to a start boundary relative to
// now. Only last-month is bounded on both ends; every other period is open
// toward now, signalled by bounded=false. An unknown keyword falls back to
// this-month.
func PeriodRange(period Period, now time.Time) (start, end time.Time, bounded bool) {
	switch period {
	case PeriodToday:
		return utils.BeginningOfDay(now), time.Time{}, false
	case PeriodThisWeek:
		return utils.StartOfWeek(now), time.Time{}, false
	case PeriodLastMonth:
		start = time.Date(now.Year(), now.Month()-1, 1, 0, 0, 0, 0, now.Location())
		end = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).Add(-time.Nanosecond)
		return start, end, true
	default:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), time.Time{}, false
	}
}

func inRange(t, start, end time.Time, bounded bool) bool {
	if t.Before(start) {
		return false
	}
	return !bounded || !t.After(end)
}

// PeriodData holds the collections restricted to one reporting period.
type PeriodData struct {
	Sales    []models.Sale
	Sessions []models.Session
	Packages []models.CustomerPackage
}

// FilterByPeriod restricts each collection by its relevant date: sale date,
// scheduled date, purchase date.
func FilterByPeriod(sales []models.Sale, sessions []models.Session, packages []models.CustomerPackage, period Period, now time.Time) PeriodData {
	start, end, bounded := PeriodRange(period, now)

	var data PeriodData
	for _, sale := range sales {
		if inRange(sale.SaleDate, start, end, bounded) {
			data.Sales = append(data.Sales, sale)
		}
	}
	for _, session := range sessions {
		if inRange(session.ScheduledDate, start, end, bounded) {
			data.Sessions = append(data.Sessions, session)
		}
	}
	for _, pkg := range packages {
		if inRange(pkg.PurchaseDate, start, end, bounded) {
			data.Packages = append(data.Packages, pkg)
		}
	}
	return data
}

// Metrics are the key figures of the report page.
type Metrics struct {
	TotalRevenue      float64 `json:"totalRevenue"`
	TotalSales        int     `json:"totalSales"`
	TotalCustomers    int     `json:"totalCustomers"`
	TotalSessions     int     `json:"totalSessions"`
	CompletedSessions int     `json:"completedSessions"`
	ActivePackages    int     `json:"activePackages"`
	CompletionRate    int     `json:"completionRate"`
}

// Summarize rolls the period data up. TotalCustomers counts distinct buyers
// in the period; ActivePackages counts over all packages, not the filtered
// ones. The completion rate over zero sessions is 0.
func Summarize(data PeriodData, allPackages []models.CustomerPackage) Metrics {
	metrics := Metrics{TotalSales: len(data.Sales), TotalSessions: len(data.Sessions)}

	buyers := make(map[string]struct{})
	for _, sale := range data.Sales {
		metrics.TotalRevenue += sale.Amount
		buyers[sale.CustomerID] = struct{}{}
	}
	metrics.TotalCustomers = len(buyers)

	for _, session := range data.Sessions {
		if session.Status == models.SessionCompleted {
			metrics.CompletedSessions++
		}
	}
	metrics.CompletionRate = CompletionRate(metrics.CompletedSessions, metrics.TotalSessions)

	for _, pkg := range allPackages {
		if pkg.Status == models.PackageStatusActive {
			metrics.ActivePackages++
		}
	}
	return metrics
}

// CompletionRate is the whole-percent ratio of completed to total, 0 when
// total is 0.
func CompletionRate(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

// PackageTypeStat accumulates count and revenue for one package type.
type PackageTypeStat struct {
	Type    models.PackageType `json:"type"`
	Name    string             `json:"name"`
	Count   int                `json:"count"`
	Revenue float64            `json:"revenue"`
}

// PackageTypeStats groups sales by package type, ordered by first
// occurrence in the input.
func PackageTypeStats(sales []models.Sale) []PackageTypeStat {
	index := make(map[models.PackageType]int)
	var stats []PackageTypeStat

	for _, sale := range sales {
		i, ok := index[sale.PackageType]
		if !ok {
			i = len(stats)
			index[sale.PackageType] = i
			stats = append(stats, PackageTypeStat{Type: sale.PackageType, Name: sale.PackageName})
		}
		stats[i].Count++
		stats[i].Revenue += sale.Amount
	}
	return stats
}

// CustomerStat is one row of the top-customers ranking.
type CustomerStat struct {
	CustomerID   string  `json:"customerId"`
	Name         string  `json:"name"`
	TotalSpent   float64 `json:"totalSpent"`
	PackageCount int     `json:"packageCount"`
}

// TopCustomers ranks buyers by total spent, descending, truncated to limit.
// Ties keep their first-occurrence order.
func TopCustomers(sales []models.Sale, limit int) []CustomerStat {
	index := make(map[string]int)
	var stats []CustomerStat

	for _, sale := range sales {
		i, ok := index[sale.CustomerID]
		if !ok {
			i = len(stats)
			index[sale.CustomerID] = i
			stats = append(stats, CustomerStat{CustomerID: sale.CustomerID, Name: sale.CustomerName})
		}
		stats[i].TotalSpent += sale.Amount
		stats[i].PackageCount++
	}

	sort.SliceStable(stats, func(a, b int) bool {
		return stats[a].TotalSpent > stats[b].TotalSpent
	})
	if len(stats) > limit {
		stats = stats[:limit]
	}
	return stats
}

// DailyRevenuePoint is one day of the revenue series.
type DailyRevenuePoint struct {
	Date    time.Time `json:"date"`
	Revenue float64   `json:"revenue"`
}

// DailyRevenue sums sale amounts per calendar day for the last 7 days
// ending at now, oldest first. It matches by exact calendar date over all
// sales, not a period-filtered subset.
func DailyRevenue(sales []models.Sale, now time.Time) []DailyRevenuePoint {
	points := make([]DailyRevenuePoint, 0, 7)
	for offset := 6; offset >= 0; offset-- {
		day := now.AddDate(0, 0, -offset)
		point := DailyRevenuePoint{Date: utils.BeginningOfDay(day)}
		for _, sale := range sales {
			if utils.SameDay(sale.SaleDate, day) {
				point.Revenue += sale.Amount
			}
		}
		points = append(points, point)
	}
	return points
}
