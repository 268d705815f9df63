// Package books provides database operations for the livro table.
//
// This package implements the BookStore interface defined in
// internal/http/books.go.
//
// # Interface Implementation
//
//	var _ http.BookStore = (*Repository)(nil)
//
// # Usage
//
//	repo := books.NewRepository(db)
//	book, err := repo.Create(ctx, entities.Book{Title: &title})
package books

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/mrlokans/library/internal/database"
	"github.com/mrlokans/library/internal/entities"
)

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns every book ordered by id.
func (r *Repository) List(ctx context.Context) ([]entities.Book, error) {
	books := []entities.Book{}
	if err := r.db.WithContext(ctx).Order("id_livro ASC").Find(&books).Error; err != nil {
		return nil, fmt.Errorf("list books: %w", database.TranslateError(err))
	}
	return books, nil
}

// Create inserts a book and returns it with its generated id.
// Any id set on the input is ignored.
func (r *Repository) Create(ctx context.Context, book entities.Book) (*entities.Book, error) {
	book.ID = 0
	if err := r.db.WithContext(ctx).Create(&book).Error; err != nil {
		return nil, fmt.Errorf("create book: %w", database.TranslateError(err))
	}
	return &book, nil
}

// Update replaces every mutable attribute of the book with the given id.
// Returns database.ErrNotFound if no such book exists.
func (r *Repository) Update(ctx context.Context, id uint, book entities.Book) (*entities.Book, error) {
	result := r.db.WithContext(ctx).
		Model(&entities.Book{}).
		Where("id_livro = ?", id).
		Updates(map[string]any{
			"autor":           book.Author,
			"data_publicacao": book.PublicationDate,
			"titulo":          book.Title,
		})
	if result.Error != nil {
		return nil, fmt.Errorf("update book %d: %w", id, database.TranslateError(result.Error))
	}
	if result.RowsAffected == 0 {
		return nil, fmt.Errorf("update book %d: %w", id, database.ErrNotFound)
	}
	book.ID = id
	return &book, nil
}

// Delete removes the book with the given id. Deleting a missing book is not
// an error. Returns database.ErrReference if a loan still references it.
func (r *Repository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&entities.Book{}, id).Error; err != nil {
		return fmt.Errorf("delete book %d: %w", id, database.TranslateError(err))
	}
	return nil
}
