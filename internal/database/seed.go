package database

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mrlokans/library/internal/entities"
)

// SeedResult reports how many rows Seed inserted per table.
type SeedResult struct {
	Books     int
	Customers int
	Loans     int
}

type seedLoan struct {
	bookIndex     int
	customerIndex int
}

var (
	defaultBooks = []entities.Book{
		{Author: strPtr("Machado de Assis"), PublicationDate: datePtr(1899, time.January, 1), Title: strPtr("Dom Casmurro")},
		{Author: strPtr("J.K. Rowling"), PublicationDate: datePtr(1997, time.June, 26), Title: strPtr("Harry Potter e a Pedra Filosofal")},
		{Author: strPtr("George Orwell"), PublicationDate: datePtr(1949, time.June, 8), Title: strPtr("1984")},
	}
	defaultCustomers = []entities.Customer{
		{Email: strPtr("joao@email.com"), Phone: strPtr("11999999999"), NationalID: strPtr("12345678901")},
		{Email: strPtr("maria@email.com"), Phone: strPtr("21988888888"), NationalID: strPtr("98765432100")},
	}
	defaultLoans = []seedLoan{
		{bookIndex: 0, customerIndex: 0},
		{bookIndex: 1, customerIndex: 1},
	}
)

// Seed inserts a small sample catalogue. Running it again inserts nothing:
// books are matched by title and author, customers by CPF, loans by their
// book/customer pair.
func (d *Database) Seed(ctx context.Context) (SeedResult, error) {
	var result SeedResult
	db := d.DB.WithContext(ctx)

	bookIDs := make([]uint, len(defaultBooks))
	for i, book := range defaultBooks {
		var existing entities.Book
		err := db.Where("titulo = ? AND autor = ?", *book.Title, *book.Author).First(&existing).Error
		switch {
		case err == nil:
			bookIDs[i] = existing.ID
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := db.Create(&book).Error; err != nil {
				return result, fmt.Errorf("failed to seed book %q: %w", *book.Title, TranslateError(err))
			}
			bookIDs[i] = book.ID
			result.Books++
			log.Printf("Seeded book: %s", *book.Title)
		default:
			return result, fmt.Errorf("failed to look up book %q: %w", *book.Title, TranslateError(err))
		}
	}

	customerIDs := make([]uint, len(defaultCustomers))
	for i, customer := range defaultCustomers {
		res := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "cpf"}},
			DoNothing: true,
		}).Create(&customer)
		if res.Error != nil {
			return result, fmt.Errorf("failed to seed customer %q: %w", *customer.Email, TranslateError(res.Error))
		}
		if res.RowsAffected > 0 {
			result.Customers++
			log.Printf("Seeded customer: %s", *customer.Email)
		}

		var stored entities.Customer
		if err := db.Where("cpf = ?", *customer.NationalID).First(&stored).Error; err != nil {
			return result, fmt.Errorf("failed to look up customer %q: %w", *customer.Email, TranslateError(err))
		}
		customerIDs[i] = stored.ID
	}

	for _, l := range defaultLoans {
		loan := entities.Loan{BookID: bookIDs[l.bookIndex], CustomerID: customerIDs[l.customerIndex]}
		var existing entities.Loan
		err := db.Where("idlivro = ? AND idcliente = ?", loan.BookID, loan.CustomerID).First(&existing).Error
		switch {
		case err == nil:
			continue
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := db.Create(&loan).Error; err != nil {
				return result, fmt.Errorf("failed to seed loan: %w", TranslateError(err))
			}
			result.Loans++
		default:
			return result, fmt.Errorf("failed to look up loan: %w", TranslateError(err))
		}
	}

	return result, nil
}

func strPtr(s string) *string { return &s }

func datePtr(year int, month time.Month, day int) *entities.Date {
	d := entities.NewDate(year, month, day)
	return &d
}
