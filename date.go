package converter

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Date is either a concrete Gregorian calendar day or the Latest
// sentinel, which stands for "whatever the provider publishes now".
type Date struct {
	Year   int
	Month  int
	Day    int
	latest bool
}

// Latest returns the sentinel date that always triggers a live fetch.
func Latest() Date {
	return Date{latest: true}
}

func (d Date) IsLatest() bool {
	return d.latest
}

// ISO renders the date in the YYYY-MM-DD form the provider expects.
// Must not be called on the Latest sentinel.
func (d Date) ISO() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

func (d Date) String() string {
	if d.latest {
		return "latest"
	}

	return d.ISO()
}

var longMonths = map[int]bool{1: true, 3: true, 5: true, 7: true, 8: true, 10: true, 12: true}

// NormalizeDate validates a user-supplied DD/MM/YYYY string and turns
// it into a Date. An empty string means Latest and is not an error.
//
// Any validation failure is recoverable: the Latest sentinel is
// returned together with the error, so the caller can log a warning
// and continue with the latest rates.
func NormalizeDate(raw string) (Date, error) {
	if raw == "" {
		return Latest(), nil
	}

	if len(raw) != 10 {
		return Latest(), fmt.Errorf("%w: date must be in DD/MM/YYYY format", ErrInvalidDate)
	}

	parts := strings.Split(raw, "/")

	if len(parts) != 3 {
		return Latest(), fmt.Errorf("%w: date must be in DD/MM/YYYY format", ErrInvalidDate)
	}

	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return Latest(), fmt.Errorf("%w: day is not a number", ErrInvalidDate)
	}

	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return Latest(), fmt.Errorf("%w: month is not a number", ErrInvalidDate)
	}

	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return Latest(), fmt.Errorf("%w: year is not a number", ErrInvalidDate)
	}

	currentYear := time.Now().Year()

	if year < 2000 || year > currentYear {
		return Latest(), fmt.Errorf("%w: year must be between 2000 and %d", ErrInvalidDate, currentYear)
	}

	if month < 1 || month > 12 {
		return Latest(), fmt.Errorf("%w: month must be between 01 and 12", ErrInvalidDate)
	}

	// 29 February is accepted only for leap years before the current
	// one. The current-year exclusion reproduces the program's
	// observed behavior and is kept on purpose.
	if month == 2 && day > 28 {
		if !(day == 29 && year%4 == 0 && year < currentYear) {
			return Latest(), fmt.Errorf("%w: day out of range", ErrInvalidDate)
		}
	}

	if day < 1 || day > 31 {
		return Latest(), fmt.Errorf("%w: day out of range", ErrInvalidDate)
	}

	if day == 31 && !longMonths[month] {
		return Latest(), fmt.Errorf("%w: day out of range", ErrInvalidDate)
	}

	return Date{Year: year, Month: month, Day: day}, nil
}
