package http

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/library/internal/database"
	"github.com/mrlokans/library/internal/entities"
)

type mockLoanStore struct {
	loans     []entities.Loan
	created   *entities.Loan
	deletedID uint
	err       error
}

func (m *mockLoanStore) List(ctx context.Context) ([]entities.Loan, error) {
	return m.loans, m.err
}

func (m *mockLoanStore) Create(ctx context.Context, loan entities.Loan) (*entities.Loan, error) {
	if m.err != nil {
		return nil, m.err
	}
	loan.ID = 1
	m.created = &loan
	return &loan, nil
}

func (m *mockLoanStore) Delete(ctx context.Context, id uint) error {
	m.deletedID = id
	return m.err
}

func newLoansRouter(store LoanStore) *gin.Engine {
	controller := NewLoansController(store)
	router := gin.New()
	router.GET("/emprestimos", controller.List)
	router.POST("/emprestimos", controller.Create)
	router.DELETE("/emprestimos/:id", controller.Delete)
	return router
}

func TestLoansController_Create(t *testing.T) {
	t.Run("records the loan", func(t *testing.T) {
		store := &mockLoanStore{}
		router := newLoansRouter(store)

		w := serve(router, "POST", "/emprestimos", `{"idlivro":2,"idcliente":3}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		require.NotNil(t, store.created)
		assert.Equal(t, uint(2), store.created.BookID)
		assert.Equal(t, uint(3), store.created.CustomerID)
		assert.JSONEq(t, `{"id_emprestimo":1,"idlivro":2,"idcliente":3}`, w.Body.String())
	})

	t.Run("missing reference returns 422", func(t *testing.T) {
		router := newLoansRouter(&mockLoanStore{err: fmt.Errorf("create loan: %w", database.ErrReference)})

		w := serve(router, "POST", "/emprestimos", `{"idlivro":999,"idcliente":1}`)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), CodeReference)
	})

	invalid := map[string]string{
		"missing idlivro":   `{"idcliente":1}`,
		"missing idcliente": `{"idlivro":1}`,
		"negative id":       `{"idlivro":-1,"idcliente":1}`,
		"string id":         `{"idlivro":"one","idcliente":1}`,
	}
	for name, body := range invalid {
		t.Run(name+" returns 400", func(t *testing.T) {
			store := &mockLoanStore{}
			router := newLoansRouter(store)

			w := serve(router, "POST", "/emprestimos", body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Nil(t, store.created)
		})
	}
}

func TestLoansController_ListAndDelete(t *testing.T) {
	store := &mockLoanStore{loans: []entities.Loan{{ID: 1, BookID: 2, CustomerID: 3}}}
	router := newLoansRouter(store)

	w := serve(router, "GET", "/emprestimos", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id_emprestimo":1,"idlivro":2,"idcliente":3}]`, w.Body.String())

	w = serve(router, "DELETE", "/emprestimos/1", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, uint(1), store.deletedID)
}
