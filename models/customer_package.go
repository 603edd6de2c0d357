package models

import "time"

type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"
	PaymentCard     PaymentMethod = "card"
	PaymentTransfer PaymentMethod = "transfer"
)

type PackageStatus string

const (
	PackageStatusActive    PackageStatus = "active"
	PackageStatusExpired   PackageStatus = "expired"
	PackageStatusCompleted PackageStatus = "completed"
)

// CustomerPackage is a customer's purchased instance of a catalog Package.
// SessionsUsed + SessionsRemaining == TotalSessions is maintained by
// repository.CustomerPackages.UpdateSessionCount, not by any constraint.
type CustomerPackage struct {
	ID          string        `json:"id"`
	CustomerID  string        `json:"customerId"`
	PackageID   string        `json:"packageId"`
	PackageType PackageType   `json:"packageType"`
	PackageName string        `json:"packageName"`

	PurchaseDate      time.Time `json:"purchaseDate"`
	TotalSessions     int       `json:"totalSessions"`
	SessionsUsed      int       `json:"sessionsUsed"`
	SessionsRemaining int       `json:"sessionsRemaining"`

	PaymentMethod PaymentMethod `json:"paymentMethod"`
	Amount        float64       `json:"amount"`
	Status        PackageStatus `json:"status"`

	ExpiryDate *time.Time `json:"expiryDate,omitempty"`
	Notes      string     `json:"notes,omitempty"`
}
