// Package loans provides database operations for the emprestimo table.
// Loans have no update: once recorded they can only be deleted.
package loans

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/mrlokans/library/internal/database"
	"github.com/mrlokans/library/internal/entities"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) List(ctx context.Context) ([]entities.Loan, error) {
	loans := []entities.Loan{}
	if err := r.db.WithContext(ctx).Order("id_emprestimo ASC").Find(&loans).Error; err != nil {
		return nil, fmt.Errorf("list loans: %w", database.TranslateError(err))
	}
	return loans, nil
}

// Create records a loan. Returns database.ErrReference if the book or the
// customer does not exist.
func (r *Repository) Create(ctx context.Context, loan entities.Loan) (*entities.Loan, error) {
	loan.ID = 0
	loan.Book = nil
	loan.Customer = nil
	if err := r.db.WithContext(ctx).Create(&loan).Error; err != nil {
		return nil, fmt.Errorf("create loan: %w", database.TranslateError(err))
	}
	return &loan, nil
}

func (r *Repository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&entities.Loan{}, id).Error; err != nil {
		return fmt.Errorf("delete loan %d: %w", id, database.TranslateError(err))
	}
	return nil
}
