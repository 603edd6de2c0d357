package models

type PackageType string

const (
	PackageTrial       PackageType = "trial"
	Package10Sessions  PackageType = "10-sessions"
	Package30Sessions  PackageType = "30-sessions"
	Package100Sessions PackageType = "100-sessions"
)

// Package is a catalog offering: a bundle of sessions at a price. A
// customer's purchased instance of one is a CustomerPackage.
type Package struct {
	ID              string      `json:"id"`
	Type            PackageType `json:"type"`
	Name            string      `json:"name"`
	Sessions        int         `json:"sessions"`
	Price           float64     `json:"price"`
	PricePerSession float64     `json:"pricePerSession"`
	Description     string      `json:"description,omitempty"`
	IsActive        bool        `json:"isActive"`
}

// DefaultPackages is written into the catalog bucket the first time it is
// read empty.
var DefaultPackages = []Package{
	{
		ID:              "trial",
		Type:            PackageTrial,
		Name:            "Gói Trải Nghiệm",
		Sessions:        1,
		Price:           86000,
		PricePerSession: 86000,
		Description:     "Trải nghiệm massage thư giãn",
		IsActive:        true,
	},
	{
		ID:              "10-sessions",
		Type:            Package10Sessions,
		Name:            "Gói 10 Buổi",
		Sessions:        10,
		Price:           1868000,
		PricePerSession: 186800,
		Description:     "Gói massage cơ bản tiết kiệm",
		IsActive:        true,
	},
	{
		ID:              "30-sessions",
		Type:            Package30Sessions,
		Name:            "Gói 30 Buổi",
		Sessions:        30,
		Price:           4868000,
		PricePerSession: 162267,
		Description:     "Gói massage phổ biến cho chăm sóc đều đặn",
		IsActive:        true,
	},
	{
		ID:              "100-sessions",
		Type:            Package100Sessions,
		Name:            "Gói 100 Buổi",
		Sessions:        100,
		Price:           11868000,
		PricePerSession: 118680,
		Description:     "Gói massage VIP với giá tốt nhất",
		IsActive:        true,
	},
}
