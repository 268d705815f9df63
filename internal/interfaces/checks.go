package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.

import (
	"github.com/mrlokans/library/internal/database"
	"github.com/mrlokans/library/internal/database/books"
	"github.com/mrlokans/library/internal/database/customers"
	"github.com/mrlokans/library/internal/database/loans"
	"github.com/mrlokans/library/internal/http"
)

// =============================================================================
// Data Access Layer
// =============================================================================

var _ http.BookStore = (*books.Repository)(nil)
var _ http.CustomerStore = (*customers.Repository)(nil)
var _ http.LoanStore = (*loans.Repository)(nil)

// =============================================================================
// Health
// =============================================================================

var _ http.Pinger = (*database.Database)(nil)
