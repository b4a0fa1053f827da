package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mikz/CSOB-Info24-webhook/internal/models"
)

// ErrBadFormat is returned when a money or date/time token does not conform
// to the expected literal format.
var ErrBadFormat = errors.New("bad field format")

// Day and month arrive both unpadded ("5.3.2024") and padded ("05.03.2024");
// the unpadded verbs accept either.
const (
	dateLayout     = "2.1.2006"
	dateTimeLayout = "2.1.2006 15:04"
)

// ParseMoney converts a locale-formatted money string such as "1234,56 CZK"
// into an exact decimal amount plus currency code. The comma is the decimal
// separator, never a thousands separator. The sign comes from a leading minus
// on the integer part, so a zero integer part ("0,00", and even "-0,00")
// yields non-negative zero.
func ParseMoney(s string) (models.Money, error) {
	tokens := strings.Fields(s)
	if len(tokens) < 2 {
		return models.Money{}, fmt.Errorf("money %q: missing currency: %w", s, ErrBadFormat)
	}
	amount, currency := tokens[0], tokens[1]

	intPart, fracPart, found := strings.Cut(amount, ",")
	if !found {
		return models.Money{}, fmt.Errorf("money %q: missing decimal separator: %w", s, ErrBadFormat)
	}
	whole, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return models.Money{}, fmt.Errorf("money %q: integer part: %w", s, ErrBadFormat)
	}
	frac, err := strconv.ParseUint(fracPart, 10, 63)
	if err != nil {
		return models.Money{}, fmt.Errorf("money %q: fractional part: %w", s, ErrBadFormat)
	}

	value := decimal.New(whole, 0).Abs().Add(decimal.New(int64(frac), -2))
	if strings.HasPrefix(intPart, "-") {
		value = value.Neg()
	}
	return models.Money{Amount: value, Currency: currency}, nil
}

// ParseDate parses a strict day-first "DD.MM.YYYY" date token.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q: %w", s, ErrBadFormat)
	}
	return t, nil
}

// ParseDateTime combines a "DD.MM.YYYY" date token with an "HH:MM" clock
// token into a single timestamp.
func ParseDateTime(date, clock string) (time.Time, error) {
	t, err := time.Parse(dateTimeLayout, date+" "+clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("time %q %q: %w", date, clock, ErrBadFormat)
	}
	return t, nil
}
