package analytics

import (
	"testing"
	"time"

	"spacare-backend/models"
)

// Wednesday afternoon; the week began Sunday Aug 16.
var now = time.Date(2026, 8, 19, 15, 30, 0, 0, time.Local)

func sale(customerID, customerName string, pkgType models.PackageType, pkgName string, amount float64, date time.Time) models.Sale {
	return models.Sale{
		ID:            "sale_" + customerID + date.Format("020106150405"),
		CustomerID:    customerID,
		CustomerName:  customerName,
		PackageID:     string(pkgType),
		PackageType:   pkgType,
		PackageName:   pkgName,
		Amount:        amount,
		PaymentMethod: models.PaymentCash,
		SaleDate:      date,
	}
}

func TestPeriodRange(t *testing.T) {
	tests := []struct {
		period    Period
		wantStart time.Time
		bounded   bool
	}{
		{PeriodToday, time.Date(2026, 8, 19, 0, 0, 0, 0, time.Local), false},
		{PeriodThisWeek, time.Date(2026, 8, 16, 0, 0, 0, 0, time.Local), false},
		{PeriodThisMonth, time.Date(2026, 8, 1, 0, 0, 0, 0, time.Local), false},
		{PeriodLastMonth, time.Date(2026, 7, 1, 0, 0, 0, 0, time.Local), true},
		{Period("bogus"), time.Date(2026, 8, 1, 0, 0, 0, 0, time.Local), false},
	}
	for _, tt := range tests {
		start, end, bounded := PeriodRange(tt.period, now)
		if !start.Equal(tt.wantStart) {
			t.Errorf("%s: start = %v, want %v", tt.period, start, tt.wantStart)
		}
		if bounded != tt.bounded {
			t.Errorf("%s: bounded = %v, want %v", tt.period, bounded, tt.bounded)
		}
		if tt.bounded && !end.Before(time.Date(2026, 8, 1, 0, 0, 0, 0, time.Local)) {
			t.Errorf("%s: end = %v, want inside July", tt.period, end)
		}
	}
}

func TestFilterByPeriodLastMonthIsBounded(t *testing.T) {
	sales := []models.Sale{
		sale("c1", "Lan", models.PackageTrial, "Gói Trải Nghiệm", 86000, time.Date(2026, 6, 30, 23, 0, 0, 0, time.Local)),
		sale("c2", "Minh", models.PackageTrial, "Gói Trải Nghiệm", 86000, time.Date(2026, 7, 1, 0, 0, 0, 0, time.Local)),
		sale("c3", "Hương", models.PackageTrial, "Gói Trải Nghiệm", 86000, time.Date(2026, 7, 31, 23, 59, 59, 0, time.Local)),
		sale("c4", "Đức", models.PackageTrial, "Gói Trải Nghiệm", 86000, time.Date(2026, 8, 1, 0, 0, 0, 0, time.Local)),
	}

	data := FilterByPeriod(sales, nil, nil, PeriodLastMonth, now)
	if len(data.Sales) != 2 {
		t.Fatalf("last-month kept %d sales, want 2", len(data.Sales))
	}
	if data.Sales[0].CustomerID != "c2" || data.Sales[1].CustomerID != "c3" {
		t.Errorf("last-month kept %s,%s want c2,c3", data.Sales[0].CustomerID, data.Sales[1].CustomerID)
	}
}

func TestCompletionRate(t *testing.T) {
	tests := []struct {
		completed, total, want int
	}{
		{0, 0, 0}, // no sessions is 0, not a division error
		{0, 4, 0},
		{1, 3, 33},
		{2, 3, 67},
		{5, 5, 100},
	}
	for _, tt := range tests {
		if got := CompletionRate(tt.completed, tt.total); got != tt.want {
			t.Errorf("CompletionRate(%d, %d) = %d, want %d", tt.completed, tt.total, got, tt.want)
		}
	}
}

func TestSummarize(t *testing.T) {
	date := time.Date(2026, 8, 18, 10, 0, 0, 0, time.Local)
	data := PeriodData{
		Sales: []models.Sale{
			sale("c1", "Lan", models.Package10Sessions, "Gói 10 Buổi", 1868000, date),
			sale("c1", "Lan", models.PackageTrial, "Gói Trải Nghiệm", 86000, date),
			sale("c2", "Minh", models.PackageTrial, "Gói Trải Nghiệm", 86000, date),
		},
		Sessions: []models.Session{
			{ID: "s1", Status: models.SessionCompleted, ScheduledDate: date},
			{ID: "s2", Status: models.SessionCompleted, ScheduledDate: date},
			{ID: "s3", Status: models.SessionScheduled, ScheduledDate: date},
		},
	}
	allPackages := []models.CustomerPackage{
		{ID: "p1", Status: models.PackageStatusActive},
		{ID: "p2", Status: models.PackageStatusCompleted},
		{ID: "p3", Status: models.PackageStatusActive},
	}

	metrics := Summarize(data, allPackages)
	if metrics.TotalRevenue != 2040000 {
		t.Errorf("TotalRevenue = %v, want 2040000", metrics.TotalRevenue)
	}
	if metrics.TotalSales != 3 || metrics.TotalCustomers != 2 {
		t.Errorf("TotalSales/TotalCustomers = %d/%d, want 3/2", metrics.TotalSales, metrics.TotalCustomers)
	}
	if metrics.CompletedSessions != 2 || metrics.TotalSessions != 3 {
		t.Errorf("sessions = %d/%d, want 2/3", metrics.CompletedSessions, metrics.TotalSessions)
	}
	if metrics.CompletionRate != 67 {
		t.Errorf("CompletionRate = %d, want 67", metrics.CompletionRate)
	}
	if metrics.ActivePackages != 2 {
		t.Errorf("ActivePackages = %d, want 2", metrics.ActivePackages)
	}
}

func TestPackageTypeStatsFirstOccurrenceOrder(t *testing.T) {
	date := now
	sales := []models.Sale{
		sale("c1", "Lan", models.Package30Sessions, "Gói 30 Buổi", 4868000, date),
		sale("c2", "Minh", models.PackageTrial, "Gói Trải Nghiệm", 86000, date),
		sale("c3", "Hương", models.Package30Sessions, "Gói 30 Buổi", 4868000, date),
	}

	stats := PackageTypeStats(sales)
	if len(stats) != 2 {
		t.Fatalf("got %d groups, want 2", len(stats))
	}
	if stats[0].Type != models.Package30Sessions || stats[1].Type != models.PackageTrial {
		t.Errorf("group order = %s,%s want 30-sessions,trial", stats[0].Type, stats[1].Type)
	}
	if stats[0].Count != 2 || stats[0].Revenue != 9736000 {
		t.Errorf("30-sessions group = %d/%v, want 2/9736000", stats[0].Count, stats[0].Revenue)
	}
}

func TestTopCustomersRankingAndTies(t *testing.T) {
	date := now
	var sales []models.Sale
	// c1 spends most; c2 and c3 tie; c4..c7 trail.
	sales = append(sales, sale("c1", "Lan", models.Package100Sessions, "Gói 100 Buổi", 11868000, date))
	sales = append(sales, sale("c2", "Minh", models.Package10Sessions, "Gói 10 Buổi", 1868000, date))
	sales = append(sales, sale("c3", "Hương", models.Package10Sessions, "Gói 10 Buổi", 1868000, date))
	for i, id := range []string{"c4", "c5", "c6", "c7"} {
		sales = append(sales, sale(id, "Khách "+id, models.PackageTrial, "Gói Trải Nghiệm", 86000-float64(i), date))
	}

	top := TopCustomers(sales, 5)
	if len(top) != 5 {
		t.Fatalf("got %d customers, want 5", len(top))
	}
	wantOrder := []string{"c1", "c2", "c3", "c4", "c5"}
	for i, want := range wantOrder {
		if top[i].CustomerID != want {
			t.Errorf("rank %d = %s, want %s", i, top[i].CustomerID, want)
		}
	}
	if top[0].TotalSpent != 11868000 || top[0].PackageCount != 1 {
		t.Errorf("top spender = %v/%d", top[0].TotalSpent, top[0].PackageCount)
	}
}

func TestDailyRevenueLastSevenDays(t *testing.T) {
	sales := []models.Sale{
		sale("c1", "Lan", models.PackageTrial, "Gói Trải Nghiệm", 86000, now),
		sale("c2", "Minh", models.PackageTrial, "Gói Trải Nghiệm", 86000, now.AddDate(0, 0, -6).Add(2*time.Hour)),
		sale("c3", "Hương", models.PackageTrial, "Gói Trải Nghiệm", 86000, now.AddDate(0, 0, -7)), // too old
	}

	points := DailyRevenue(sales, now)
	if len(points) != 7 {
		t.Fatalf("got %d points, want 7", len(points))
	}
	if !points[0].Date.Before(points[6].Date) {
		t.Error("series not oldest-first")
	}
	if points[0].Revenue != 86000 {
		t.Errorf("oldest day revenue = %v, want 86000", points[0].Revenue)
	}
	if points[6].Revenue != 86000 {
		t.Errorf("today revenue = %v, want 86000", points[6].Revenue)
	}
	var total float64
	for _, p := range points {
		total += p.Revenue
	}
	if total != 172000 {
		t.Errorf("series total = %v, want 172000 (8-day-old sale must be excluded)", total)
	}
}
