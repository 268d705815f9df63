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

type mockCustomerStore struct {
	customers []entities.Customer
	created   *entities.Customer
	updatedID uint
	deletedID uint
	err       error
}

func (m *mockCustomerStore) List(ctx context.Context) ([]entities.Customer, error) {
	return m.customers, m.err
}

func (m *mockCustomerStore) Create(ctx context.Context, customer entities.Customer) (*entities.Customer, error) {
	if m.err != nil {
		return nil, m.err
	}
	customer.ID = 1
	m.created = &customer
	return &customer, nil
}

func (m *mockCustomerStore) Update(ctx context.Context, id uint, customer entities.Customer) (*entities.Customer, error) {
	if m.err != nil {
		return nil, m.err
	}
	customer.ID = id
	m.updatedID = id
	return &customer, nil
}

func (m *mockCustomerStore) Delete(ctx context.Context, id uint) error {
	m.deletedID = id
	return m.err
}

func newCustomersRouter(store CustomerStore) *gin.Engine {
	controller := NewCustomersController(store)
	router := gin.New()
	router.GET("/clientes", controller.List)
	router.POST("/clientes", controller.Create)
	router.PUT("/clientes/:id", controller.Update)
	router.DELETE("/clientes/:id", controller.Delete)
	return router
}

func TestCustomersController_Create(t *testing.T) {
	t.Run("maps wire names", func(t *testing.T) {
		store := &mockCustomerStore{}
		router := newCustomersRouter(store)

		w := serve(router, "POST", "/clientes", `{"email":"a@a.com","telefone":"1","cpf":"111"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		require.NotNil(t, store.created)
		assert.Equal(t, "1", *store.created.Phone)
		assert.Equal(t, "111", *store.created.NationalID)
		assert.JSONEq(t, `{"id_cliente":1,"email":"a@a.com","telefone":"1","cpf":"111"}`, w.Body.String())
	})

	t.Run("duplicate cpf returns 409", func(t *testing.T) {
		router := newCustomersRouter(&mockCustomerStore{err: fmt.Errorf("create customer: %w", database.ErrDuplicate)})

		w := serve(router, "POST", "/clientes", `{"cpf":"111"}`)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), CodeDuplicate)
	})

	t.Run("malformed body returns 400", func(t *testing.T) {
		store := &mockCustomerStore{}
		router := newCustomersRouter(store)

		w := serve(router, "POST", "/clientes", `[1,2]`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Nil(t, store.created)
	})
}

func TestCustomersController_Update(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		err        error
		wantStatus int
	}{
		{"success", "/clientes/2", nil, http.StatusOK},
		{"missing customer", "/clientes/2", fmt.Errorf("update: %w", database.ErrNotFound), http.StatusNotFound},
		{"duplicate cpf", "/clientes/2", fmt.Errorf("update: %w", database.ErrDuplicate), http.StatusConflict},
		{"storage down", "/clientes/2", fmt.Errorf("update: %w", database.ErrUnavailable), http.StatusServiceUnavailable},
		{"invalid id", "/clientes/x", nil, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newCustomersRouter(&mockCustomerStore{err: tt.err})

			w := serve(router, "PUT", tt.path, `{"email":"b@b.com"}`)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestCustomersController_Delete(t *testing.T) {
	t.Run("returns no content", func(t *testing.T) {
		store := &mockCustomerStore{}
		router := newCustomersRouter(store)

		w := serve(router, "DELETE", "/clientes/4", "")

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, uint(4), store.deletedID)
	})

	t.Run("customer with loans returns 409", func(t *testing.T) {
		router := newCustomersRouter(&mockCustomerStore{err: fmt.Errorf("delete: %w", database.ErrReference)})

		w := serve(router, "DELETE", "/clientes/4", "")

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestCustomersController_List(t *testing.T) {
	email := "a@a.com"
	router := newCustomersRouter(&mockCustomerStore{customers: []entities.Customer{{ID: 1, Email: &email}}})

	w := serve(router, "GET", "/clientes", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id_cliente":1,"email":"a@a.com","telefone":null,"cpf":null}]`, w.Body.String())
}
