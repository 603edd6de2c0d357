package models

import "time"

// Sale is an immutable revenue-ledger entry created at purchase time. One
// sale is written per package purchase; it references the catalog package,
// not the CustomerPackage instance.
type Sale struct {
	ID           string      `json:"id"`
	CustomerID   string      `json:"customerId"`
	CustomerName string      `json:"customerName"`
	PackageID    string      `json:"packageId"`
	PackageType  PackageType `json:"packageType"`
	PackageName  string      `json:"packageName"`

	Amount        float64       `json:"amount"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	SaleDate      time.Time     `json:"saleDate"`

	StaffMember string `json:"staffMember,omitempty"`
	Notes       string `json:"notes,omitempty"`
}
