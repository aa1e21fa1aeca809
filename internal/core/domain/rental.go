package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RentalPeriod is the fixed duration a movie is rented for. The due date of
// every rental is its rental date plus this period.
const RentalPeriod = 24 * time.Hour

// Rental is one entry in the rental ledger: a client renting a movie.
// The RentalID is assigned by the repository when the record is inserted.
type Rental struct {
	RentalID     string          `json:"rentalID"`
	ClientID     string          `json:"clientID"`
	MovieID      string          `json:"movieID"`
	RentalCharge decimal.Decimal `json:"rentalCharge"`
	RentalDate   time.Time       `json:"rentalDate"`
	DueDate      time.Time       `json:"dueDate"`
}
