package service

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/samandr77/microservices/vacations/internal/entity"
)

const (
	PasswordMinLen = 4
	// bcrypt rejects longer input.
	PasswordMaxBytes = 72
)

const priceScale = 2

const dateLayout = "2006-01-02"

var emailRegexp = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func ValidateEmail(email string) error {
	if !emailRegexp.MatchString(email) {
		return fmt.Errorf("%w: invalid email format", entity.ErrInvalidInput)
	}

	return nil
}

func ValidatePassword(password string) error {
	if utf8.RuneCountInString(password) < PasswordMinLen {
		return fmt.Errorf("%w: password must be at least %d characters long", entity.ErrInvalidInput, PasswordMinLen)
	}

	if len(password) > PasswordMaxBytes {
		return fmt.Errorf("%w: password must be at most %d bytes", entity.ErrInvalidInput, PasswordMaxBytes)
	}

	return nil
}

func requireFields(values ...string) error {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("%w: all fields are required", entity.ErrMissingInput)
		}
	}

	return nil
}

func ValidateIDs(userID, vacationID int64) error {
	if userID <= 0 || vacationID <= 0 {
		return fmt.Errorf("%w: user id and vacation id must be positive integers", entity.ErrInvalidType)
	}

	return nil
}

func validateVacationID(id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: vacation id must be a positive integer", entity.ErrInvalidType)
	}

	return nil
}

// ValidateVacation checks the fields shared by add and update. The photo is
// required only when requirePhoto is set.
func ValidateVacation(in entity.VacationInput, requirePhoto bool) error {
	if in.CountryID == 0 || strings.TrimSpace(in.Description) == "" ||
		in.StartDate.IsZero() || in.EndDate.IsZero() || in.Price.IsZero() ||
		(requirePhoto && in.PhotoPath == "") {
		return fmt.Errorf("%w: all fields are required", entity.ErrMissingInput)
	}

	if in.CountryID < 0 {
		return fmt.Errorf("%w: country id must be a positive integer", entity.ErrInvalidType)
	}

	if in.Price.LessThanOrEqual(entity.MinVacationPrice) || in.Price.GreaterThan(entity.MaxVacationPrice) {
		return fmt.Errorf("%w: price must be greater than 0 and less than 10,000", entity.ErrInvalidInput)
	}

	if !in.Price.Equal(in.Price.Round(priceScale)) {
		return fmt.Errorf("%w: price must have at most %d decimal places", entity.ErrInvalidInput, priceScale)
	}

	if entity.DateOnly(in.EndDate).Before(entity.DateOnly(in.StartDate)) {
		return fmt.Errorf("%w: end date occurs before start date", entity.ErrInvalidInput)
	}

	return nil
}

// ValidateNotPast rejects dates before today's calendar day.
func ValidateNotPast(start, end, now time.Time) error {
	today := entity.DateOnly(now)

	if entity.DateOnly(start).Before(today) || entity.DateOnly(end).Before(today) {
		return fmt.Errorf("%w: start date or end date occurred in the past, select dates starting from %s",
			entity.ErrInvalidInput, today.Format(dateLayout))
	}

	return nil
}
