package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/library/internal/entities"
)

// LoanStore defines database operations for the emprestimo resource.
// Loans cannot be updated.
type LoanStore interface {
	List(ctx context.Context) ([]entities.Loan, error)
	Create(ctx context.Context, loan entities.Loan) (*entities.Loan, error)
	Delete(ctx context.Context, id uint) error
}

type LoanRequest struct {
	BookID     uint `json:"idlivro" binding:"required" example:"1"`
	CustomerID uint `json:"idcliente" binding:"required" example:"1"`
}

type LoansController struct {
	store LoanStore
}

func NewLoansController(store LoanStore) *LoansController {
	return &LoansController{store: store}
}

// List godoc
// @Summary List loans
// @Tags emprestimos
// @Produce json
// @Success 200 {array} entities.Loan
// @Failure 503 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /emprestimos [get]
func (lc *LoansController) List(c *gin.Context) {
	loans, err := lc.store.List(c.Request.Context())
	if err != nil {
		respondStoreError(c, err, "loan", "list loans", http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, loans)
}

// Create godoc
// @Summary Record a loan
// @Tags emprestimos
// @Accept json
// @Produce json
// @Param request body LoanRequest true "Loan"
// @Success 201 {object} entities.Loan
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "book or customer does not exist"
// @Failure 500 {object} ErrorResponse
// @Router /emprestimos [post]
func (lc *LoansController) Create(c *gin.Context) {
	var req LoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(c, err)
		return
	}

	loan, err := lc.store.Create(c.Request.Context(), entities.Loan{
		BookID:     req.BookID,
		CustomerID: req.CustomerID,
	})
	if err != nil {
		respondStoreError(c, err, "loan", "create loan", http.StatusUnprocessableEntity)
		return
	}
	respondCreated(c, loan)
}

// Delete godoc
// @Summary Delete a loan
// @Tags emprestimos
// @Param id path int true "Loan ID"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /emprestimos/{id} [delete]
func (lc *LoansController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := lc.store.Delete(c.Request.Context(), id); err != nil {
		respondStoreError(c, err, "loan", "delete loan", http.StatusConflict)
		return
	}
	c.Status(http.StatusNoContent)
}
