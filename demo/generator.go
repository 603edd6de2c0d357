// Package demo seeds the store with internally consistent randomized
// fixtures for demonstration. Randomness comes from an explicit seed so a
// pinned seed reproduces the same data set.
package demo

import (
	"log"
	"math/rand"
	"strconv"
	"time"

	"spacare-backend/models"
	"spacare-backend/repository"
	"spacare-backend/storage"
)

var demoCustomers = []models.Customer{
	{
		Name:    "Nguyễn Thị Lan",
		Phone:   "0901234567",
		Address: "123 Nguyễn Du, Quận 1, TP.HCM",
		Notes:   "Thích massage nhẹ nhàng, có vấn đề về vai gáy",
	},
	{
		Name:    "Trần Văn Minh",
		Phone:   "0987654321",
		Address: "456 Lê Lợi, Quận 3, TP.HCM",
		Notes:   "Khách hàng VIP, thường đặt lịch vào cuối tuần",
	},
	{
		Name:    "Lê Thị Hương",
		Phone:   "0912345678",
		Address: "789 Hai Bà Trưng, Quận 1, TP.HCM",
	},
	{
		Name:    "Phạm Văn Đức",
		Phone:   "0965432109",
		Address: "321 Điện Biên Phủ, Quận Bình Thạnh, TP.HCM",
		Notes:   "Vận động viên, cần massage phục hồi chức năng",
	},
	{
		Name:    "Hoàng Thị Mai",
		Phone:   "0934567890",
		Address: "654 Cộng Hòa, Quận Tân Bình, TP.HCM",
	},
	{
		Name:    "Võ Minh Tuấn",
		Phone:   "0923456789",
		Address: "987 Nguyễn Văn Cừ, Quận 5, TP.HCM",
		Notes:   "Làm việc văn phòng, đau lưng mãn tính",
	},
	{
		Name:    "Đặng Thị Thu",
		Phone:   "0956789012",
		Address: "147 Trần Hưng Đạo, Quận 1, TP.HCM",
	},
	{
		Name:    "Bùi Văn Hùng",
		Phone:   "0945678901",
		Address: "258 Pasteur, Quận 3, TP.HCM",
		Notes:   "Khách hàng thân thiết, đã sử dụng dịch vụ 2 năm",
	},
}

type timeSlot struct {
	start, end string
}

var timeSlots = []timeSlot{
	{"08:00", "09:30"},
	{"09:00", "10:30"},
	{"10:00", "11:30"},
	{"11:00", "12:30"},
	{"13:00", "14:30"},
	{"14:00", "15:30"},
	{"15:00", "16:30"},
	{"16:00", "17:30"},
	{"17:00", "18:30"},
}

var therapists = []string{"Chị Hoa", "Anh Minh", "Chị Lan", "Anh Đức", "Chị Mai"}

var paymentMethods = []models.PaymentMethod{
	models.PaymentCash,
	models.PaymentCard,
	models.PaymentTransfer,
}

type Generator struct {
	store *storage.Store
	rng   *rand.Rand
}

func NewGenerator(store *storage.Store, seed int64) *Generator {
	return &Generator{store: store, rng: rand.New(rand.NewSource(seed))}
}

// Generate wipes every bucket and rebuilds the sample data set: the fixed
// customer roster, 1-3 purchased packages per customer with a matching sale
// each, one completed session per used session, and a handful of upcoming
// sessions for packages still active. Failures are logged and skipped;
// callers see the outcome only by re-reading the store.
func (g *Generator) Generate() {
	log.Println("Generating demo data...")

	g.store.ClearAll()

	customers := repository.NewCustomers(g.store)
	catalog := repository.NewPackages(g.store).GetAll()
	customerPackages := repository.NewCustomerPackages(g.store)
	sessions := repository.NewSessions(g.store)
	sales := repository.NewSales(g.store)

	created := 0
	for _, data := range demoCustomers {
		customer, err := customers.Create(data)
		if err != nil {
			log.Printf("demo: error creating customer %s: %v", data.Name, err)
			continue
		}
		created++

		// 1-3 distinct packages per customer, so each purchase pairs with
		// exactly one sale per (customer, catalog package).
		count := g.rng.Intn(3) + 1
		for _, pick := range g.rng.Perm(len(catalog))[:count] {
			pkg := catalog[pick]
			purchaseDate := g.randomDate(60, 0)
			sessionsUsed := g.rng.Intn(pkg.Sessions + 1)
			payment := paymentMethods[g.rng.Intn(len(paymentMethods))]

			status := models.PackageStatusActive
			if sessionsUsed >= pkg.Sessions {
				status = models.PackageStatusCompleted
			}

			owned, err := customerPackages.Create(models.CustomerPackage{
				CustomerID:        customer.ID,
				PackageID:         pkg.ID,
				PackageType:       pkg.Type,
				PackageName:       pkg.Name,
				PurchaseDate:      purchaseDate,
				TotalSessions:     pkg.Sessions,
				SessionsUsed:      sessionsUsed,
				SessionsRemaining: pkg.Sessions - sessionsUsed,
				PaymentMethod:     payment,
				Amount:            pkg.Price,
				Status:            status,
			})
			if err != nil {
				log.Printf("demo: error creating package for %s: %v", customer.Name, err)
				continue
			}

			if _, err := sales.Create(models.Sale{
				CustomerID:    customer.ID,
				CustomerName:  customer.Name,
				PackageID:     pkg.ID,
				PackageType:   pkg.Type,
				PackageName:   pkg.Name,
				Amount:        pkg.Price,
				PaymentMethod: payment,
				SaleDate:      purchaseDate,
				StaffMember:   "Demo Staff",
			}); err != nil {
				log.Printf("demo: error recording sale for %s: %v", customer.Name, err)
			}

			g.backfillSessions(sessions, customer, owned, purchaseDate)
		}
	}

	log.Printf("Demo data generation completed, %d customers created", created)
}

// backfillSessions writes one completed weekly session per used session and
// up to 3 extra sessions around now for packages that still have sessions
// left.
func (g *Generator) backfillSessions(sessions *repository.Sessions, customer models.Customer, owned models.CustomerPackage, purchaseDate time.Time) {
	for num := 1; num <= owned.SessionsUsed; num++ {
		date := purchaseDate.AddDate(0, 0, num*7)
		slot := timeSlots[g.rng.Intn(len(timeSlots))]

		notes := ""
		if num == 1 {
			notes = "Buổi đầu tiên, tìm hiểu nhu cầu khách hàng"
		}

		completed := date
		if _, err := sessions.Create(models.Session{
			CustomerID:    customer.ID,
			CustomerName:  customer.Name,
			PackageID:     owned.ID,
			ScheduledDate: date,
			StartTime:     slot.start,
			EndTime:       slot.end,
			CompletedDate: &completed,
			Status:        models.SessionCompleted,
			Therapist:     therapists[g.rng.Intn(len(therapists))],
			Notes:         notes,
			RoomNumber:    strconv.Itoa(g.rng.Intn(5) + 1),
			SessionNumber: num,
		}); err != nil {
			log.Printf("demo: error creating session for %s: %v", customer.Name, err)
		}
	}

	if owned.Status != models.PackageStatusActive || owned.SessionsRemaining <= 0 {
		return
	}

	extra := owned.SessionsRemaining
	if extra > 3 {
		extra = 3
	}
	for num := 1; num <= extra; num++ {
		date := g.randomDate(7, 14)
		slot := timeSlots[g.rng.Intn(len(timeSlots))]

		session := models.Session{
			CustomerID:    customer.ID,
			CustomerName:  customer.Name,
			PackageID:     owned.ID,
			ScheduledDate: date,
			StartTime:     slot.start,
			EndTime:       slot.end,
			Status:        models.SessionScheduled,
			Therapist:     therapists[g.rng.Intn(len(therapists))],
			RoomNumber:    strconv.Itoa(g.rng.Intn(5) + 1),
			SessionNumber: owned.SessionsUsed + num,
		}
		if date.Before(time.Now()) {
			completed := date
			session.Status = models.SessionCompleted
			session.CompletedDate = &completed
		}

		if _, err := sessions.Create(session); err != nil {
			log.Printf("demo: error creating session for %s: %v", customer.Name, err)
		}
	}
}

// randomDate picks a day offset in [-daysBack, +daysForward] from now,
// keeping the current time of day.
func (g *Generator) randomDate(daysBack, daysForward int) time.Time {
	offset := g.rng.Intn(daysBack+daysForward+1) - daysBack
	return time.Now().AddDate(0, 0, offset)
}

// Clear unconditionally empties every bucket.
func (g *Generator) Clear() {
	if !g.store.ClearAll() {
		log.Println("demo: error clearing data")
		return
	}
	log.Println("Demo data cleared")
}
