// Package customers provides database operations for the cliente table.
//
// # Interface Implementation
//
//	var _ http.CustomerStore = (*Repository)(nil)
package customers

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/mrlokans/library/internal/database"
	"github.com/mrlokans/library/internal/entities"
)

// Repository handles all customer database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new customers repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns every customer ordered by id.
func (r *Repository) List(ctx context.Context) ([]entities.Customer, error) {
	customers := []entities.Customer{}
	if err := r.db.WithContext(ctx).Order("id_cliente ASC").Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("list customers: %w", database.TranslateError(err))
	}
	return customers, nil
}

// Create inserts a customer. Returns database.ErrDuplicate if the CPF is
// already taken.
func (r *Repository) Create(ctx context.Context, customer entities.Customer) (*entities.Customer, error) {
	customer.ID = 0
	if err := r.db.WithContext(ctx).Create(&customer).Error; err != nil {
		return nil, fmt.Errorf("create customer: %w", database.TranslateError(err))
	}
	return &customer, nil
}

// Update replaces email, phone and CPF of the customer with the given id.
func (r *Repository) Update(ctx context.Context, id uint, customer entities.Customer) (*entities.Customer, error) {
	result := r.db.WithContext(ctx).
		Model(&entities.Customer{}).
		Where("id_cliente = ?", id).
		Updates(map[string]any{
			"email":    customer.Email,
			"telefone": customer.Phone,
			"cpf":      customer.NationalID,
		})
	if result.Error != nil {
		return nil, fmt.Errorf("update customer %d: %w", id, database.TranslateError(result.Error))
	}
	if result.RowsAffected == 0 {
		return nil, fmt.Errorf("update customer %d: %w", id, database.ErrNotFound)
	}
	customer.ID = id
	return &customer, nil
}

// Delete removes the customer with the given id; missing ids are ignored.
func (r *Repository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&entities.Customer{}, id).Error; err != nil {
		return fmt.Errorf("delete customer %d: %w", id, database.TranslateError(err))
	}
	return nil
}
