// Package interfaces lists the abstractions the HTTP layer depends on and
// checks at compile time that the storage layer implements them.
//
// # Store Interfaces
//
// Each controller in internal/http declares the narrow interface it needs:
//
//   - BookStore: list, create, full update and delete of livro rows (books.go)
//   - CustomerStore: the same operations over cliente rows (customers.go)
//   - LoanStore: list, create and delete of emprestimo rows (loans.go)
//   - Pinger: storage reachability for /health (health.go)
//
// The implementations live in internal/database/books, customers and loans,
// plus database.Database for Pinger.
//
// # Error Contract
//
// Implementations report failures by wrapping the sentinels in
// internal/database (ErrNotFound, ErrDuplicate, ErrReference,
// ErrUnavailable). Controllers classify them with errors.Is and never look at
// driver-specific errors.
package interfaces
