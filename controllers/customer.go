package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"spacare-backend/models"
	"spacare-backend/repository"
	"spacare-backend/storage"
	"spacare-backend/utils"
)

// CreateCustomerInput defines the expected JSON structure for creating a customer
type CreateCustomerInput struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
}

// UpdateCustomerInput defines the expected JSON structure for updating a customer
type UpdateCustomerInput struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	Notes   *string `json:"notes"`
}

type CustomerController struct {
	store *storage.Store
}

func NewCustomerController(store *storage.Store) *CustomerController {
	return &CustomerController{store: store}
}

// CreateCustomer creates a new customer
func (cc *CustomerController) CreateCustomer(c *gin.Context) {
	var input CreateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	customer, err := repository.NewCustomers(cc.store).Create(models.Customer{
		Name:    input.Name,
		Phone:   input.Phone,
		Address: input.Address,
		Notes:   input.Notes,
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create customer")
		return
	}

	c.JSON(http.StatusCreated, customer)
}

// GetCustomers retrieves all customers, or a filtered set when ?q= is given
func (cc *CustomerController) GetCustomers(c *gin.Context) {
	customers := repository.NewCustomers(cc.store)
	if term := c.Query("q"); term != "" {
		c.JSON(http.StatusOK, customers.Search(term))
		return
	}
	c.JSON(http.StatusOK, customers.GetAll())
}

// GetCustomer retrieves a specific customer by ID, with their packages and
// sessions for the detail page
func (cc *CustomerController) GetCustomer(c *gin.Context) {
	id := c.Param("id")

	customer, err := repository.NewCustomers(cc.store).GetByID(id)
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"customer": customer,
		"packages": repository.NewCustomerPackages(cc.store).GetByCustomerID(id),
		"sessions": repository.NewSessions(cc.store).GetByCustomerID(id),
	})
}

// UpdateCustomer updates an existing customer
func (cc *CustomerController) UpdateCustomer(c *gin.Context) {
	var input UpdateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Phone != nil && !utils.ValidatePhone(*input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	customer, err := repository.NewCustomers(cc.store).Update(c.Param("id"), repository.CustomerUpdate{
		Name:    input.Name,
		Phone:   input.Phone,
		Address: input.Address,
		Notes:   input.Notes,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update customer")
		}
		return
	}

	c.JSON(http.StatusOK, customer)
}

// DeleteCustomer removes a customer
func (cc *CustomerController) DeleteCustomer(c *gin.Context) {
	err := repository.NewCustomers(cc.store).Delete(c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete customer")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
}
