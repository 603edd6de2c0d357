package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"spacare-backend/models"
	"spacare-backend/repository"
	"spacare-backend/storage"
	"spacare-backend/utils"
)

// CreateSaleInput defines the expected JSON structure for selling a package
type CreateSaleInput struct {
	CustomerID    string               `json:"customerId" binding:"required"`
	PackageID     string               `json:"packageId" binding:"required"`
	PaymentMethod models.PaymentMethod `json:"paymentMethod" binding:"required,oneof=cash card transfer"`
	StaffMember   string               `json:"staffMember"`
	Notes         string               `json:"notes"`
}

type SaleController struct {
	store *storage.Store
}

func NewSaleController(store *storage.Store) *SaleController {
	return &SaleController{store: store}
}

// CreateSale processes a package purchase: it validates both references,
// then writes the customer package and the sale ledger entry in one store
// transaction so the pair always lands together.
func (sc *SaleController) CreateSale(c *gin.Context) {
	var input CreateSaleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	customer, err := repository.NewCustomers(sc.store).GetByID(input.CustomerID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Customer not found")
		return
	}

	pkg, err := repository.NewPackages(sc.store).GetByID(input.PackageID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Package not found")
		return
	}
	if !pkg.IsActive {
		utils.RespondWithError(c, http.StatusBadRequest, "Package is no longer offered")
		return
	}

	now := time.Now()
	var purchased models.CustomerPackage
	var sale models.Sale

	err = sc.store.Transaction(func(tx *storage.Store) error {
		purchased, err = repository.NewCustomerPackages(tx).Create(models.CustomerPackage{
			CustomerID:        customer.ID,
			PackageID:         pkg.ID,
			PackageType:       pkg.Type,
			PackageName:       pkg.Name,
			PurchaseDate:      now,
			TotalSessions:     pkg.Sessions,
			SessionsUsed:      0,
			SessionsRemaining: pkg.Sessions,
			PaymentMethod:     input.PaymentMethod,
			Amount:            pkg.Price,
			Status:            models.PackageStatusActive,
			Notes:             input.Notes,
		})
		if err != nil {
			return err
		}

		sale, err = repository.NewSales(tx).Create(models.Sale{
			CustomerID:    customer.ID,
			CustomerName:  customer.Name,
			PackageID:     pkg.ID,
			PackageType:   pkg.Type,
			PackageName:   pkg.Name,
			Amount:        pkg.Price,
			PaymentMethod: input.PaymentMethod,
			SaleDate:      now,
			StaffMember:   input.StaffMember,
			Notes:         input.Notes,
		})
		return err
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to process sale")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"customerPackage": purchased,
		"sale":            sale,
	})
}

// GetSales returns the ledger, optionally restricted to an inclusive
// ?start=&end= date range (RFC 3339 or YYYY-MM-DD)
func (sc *SaleController) GetSales(c *gin.Context) {
	sales := repository.NewSales(sc.store)

	startParam, endParam := c.Query("start"), c.Query("end")
	if startParam == "" && endParam == "" {
		c.JSON(http.StatusOK, sales.GetAll())
		return
	}

	start, err := parseDateParam(startParam)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid start date")
		return
	}
	end, err := parseDateParam(endParam)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid end date")
		return
	}
	if endParam != "" && !endContainsTime(endParam) {
		// Date-only upper bounds cover the whole day.
		end = end.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	if end.IsZero() {
		end = time.Now()
	}

	c.JSON(http.StatusOK, sales.GetByDateRange(start, end))
}

func parseDateParam(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02", value, time.Local)
}

func endContainsTime(value string) bool {
	_, err := time.Parse(time.RFC3339, value)
	return err == nil
}
