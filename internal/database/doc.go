// Package database provides the data access layer for the library API.
//
// # Architecture
//
// The database layer is organized into entity-specific sub-packages:
//
//	database/
//	├── database.go      # Connection pool, schema manager (EnsureSchema)
//	├── errors.go        # Storage error taxonomy and driver error translation
//	├── seed.go          # Sample data used by the seed command
//	├── books/           # livro CRUD
//	├── customers/       # cliente CRUD
//	└── loans/           # emprestimo create/list/delete
//
// # Using Sub-packages
//
// Each sub-package provides a Repository type over the shared *gorm.DB:
//
//	db, err := database.NewDatabase(cfg.Database)
//	if err := db.EnsureSchema(ctx); err != nil { ... }
//
//	booksRepo := books.NewRepository(db.DB)
//	created, err := booksRepo.Create(ctx, entities.Book{Title: &title})
//
// # Errors
//
// Repositories pass every storage error through TranslateError, so callers
// classify failures with errors.Is against ErrNotFound, ErrDuplicate,
// ErrReference and ErrUnavailable. Both the SQLite and the PostgreSQL
// drivers map onto the same sentinels.
//
// # Interface Implementations
//
//   - books.Repository: implements http.BookStore
//   - customers.Repository: implements http.CustomerStore
//   - loans.Repository: implements http.LoanStore
package database
