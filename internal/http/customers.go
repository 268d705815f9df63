package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/library/internal/entities"
)

// CustomerStore defines database operations for the cliente resource.
type CustomerStore interface {
	List(ctx context.Context) ([]entities.Customer, error)
	Create(ctx context.Context, customer entities.Customer) (*entities.Customer, error)
	Update(ctx context.Context, id uint, customer entities.Customer) (*entities.Customer, error)
	Delete(ctx context.Context, id uint) error
}

type CustomerRequest struct {
	Email      *string `json:"email" example:"joao@email.com"`
	Phone      *string `json:"telefone" example:"11999999999"`
	NationalID *string `json:"cpf" example:"12345678901"`
}

func (r CustomerRequest) toEntity() entities.Customer {
	return entities.Customer{
		Email:      r.Email,
		Phone:      r.Phone,
		NationalID: r.NationalID,
	}
}

type CustomersController struct {
	store CustomerStore
}

func NewCustomersController(store CustomerStore) *CustomersController {
	return &CustomersController{store: store}
}

// List godoc
// @Summary List customers
// @Tags clientes
// @Produce json
// @Success 200 {array} entities.Customer
// @Failure 503 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /clientes [get]
func (cc *CustomersController) List(c *gin.Context) {
	customers, err := cc.store.List(c.Request.Context())
	if err != nil {
		respondStoreError(c, err, "customer", "list customers", http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, customers)
}

// Create godoc
// @Summary Create a customer
// @Tags clientes
// @Accept json
// @Produce json
// @Param request body CustomerRequest true "Customer"
// @Success 201 {object} entities.Customer
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "cpf already registered"
// @Failure 500 {object} ErrorResponse
// @Router /clientes [post]
func (cc *CustomersController) Create(c *gin.Context) {
	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(c, err)
		return
	}

	customer, err := cc.store.Create(c.Request.Context(), req.toEntity())
	if err != nil {
		respondStoreError(c, err, "customer", "create customer", http.StatusUnprocessableEntity)
		return
	}
	respondCreated(c, customer)
}

// Update godoc
// @Summary Replace a customer
// @Description Every attribute is replaced; omitted fields become null.
// @Tags clientes
// @Accept json
// @Produce json
// @Param id path int true "Customer ID"
// @Param request body CustomerRequest true "Customer"
// @Success 200 {object} entities.Customer
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "cpf already registered"
// @Failure 500 {object} ErrorResponse
// @Router /clientes/{id} [put]
func (cc *CustomersController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(c, err)
		return
	}

	customer, err := cc.store.Update(c.Request.Context(), id, req.toEntity())
	if err != nil {
		respondStoreError(c, err, "customer", "update customer", http.StatusUnprocessableEntity)
		return
	}
	c.JSON(http.StatusOK, customer)
}

// Delete godoc
// @Summary Delete a customer
// @Tags clientes
// @Param id path int true "Customer ID"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "customer has loans"
// @Failure 500 {object} ErrorResponse
// @Router /clientes/{id} [delete]
func (cc *CustomersController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := cc.store.Delete(c.Request.Context(), id); err != nil {
		respondStoreError(c, err, "customer", "delete customer", http.StatusConflict)
		return
	}
	c.Status(http.StatusNoContent)
}
