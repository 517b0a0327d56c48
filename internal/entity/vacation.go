package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

var (
	MinVacationPrice = decimal.Zero
	MaxVacationPrice = decimal.NewFromInt(10_000)
)

// Vacation is a vacations row. CountryName and LikesCount are filled by
// queries that join countries and likes; they are not stored.
type Vacation struct {
	ID          int64           `json:"id"`
	CountryID   int64           `json:"country_id"`
	Description string          `json:"description"`
	StartDate   time.Time       `json:"start_date"`
	EndDate     time.Time       `json:"end_date"`
	Price       decimal.Decimal `json:"price"`
	PhotoPath   string          `json:"photo_path"`
	CountryName string          `json:"country_name,omitempty"`
	LikesCount  int             `json:"likes_count"`
}

// VacationInput holds the caller supplied fields of an add or update.
type VacationInput struct {
	CountryID   int64
	Description string
	StartDate   time.Time
	EndDate     time.Time
	Price       decimal.Decimal
	PhotoPath   string
}

type VacationUpdate struct {
	CountryID   *int64
	Description *string
	StartDate   *time.Time
	EndDate     *time.Time
	Price       *decimal.Decimal
	PhotoPath   *string
}

func (u VacationUpdate) IsEmpty() bool {
	return u.CountryID == nil && u.Description == nil && u.StartDate == nil &&
		u.EndDate == nil && u.Price == nil && u.PhotoPath == nil
}

// DateOnly drops the clock part of t, keeping its calendar day in UTC.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
