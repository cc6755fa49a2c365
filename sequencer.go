package einvoice

import (
	"fmt"
	"time"
)

// InvoiceNumberSequence is a gapless, monotonic invoice-number counter
// with year rollover (§4.I). It holds no identity beyond its own
// fields and is not safe for concurrent use by multiple goroutines
// without external synchronization — invoice numbering is a serial,
// single-writer concern by nature.
type InvoiceNumberSequence struct {
	prefix     string
	year       int
	nextNumber int
	zeroPad    int
}

// New starts a sequence at year with the first number 1 and the
// default zero-padding of 3 digits.
func New(prefix string, year int) *InvoiceNumberSequence {
	return &InvoiceNumberSequence{prefix: prefix, year: year, nextNumber: 1, zeroPad: 3}
}

// StartingAt starts a sequence whose first NextNumber call yields n
// instead of 1; useful when continuing an existing series.
func StartingAt(prefix string, year, n int) *InvoiceNumberSequence {
	s := New(prefix, year)
	s.nextNumber = n
	return s
}

// WithPadding overrides the zero-padding width (default 3) and
// returns the receiver for chaining.
func (s *InvoiceNumberSequence) WithPadding(digits int) *InvoiceNumberSequence {
	s.zeroPad = digits
	return s
}

// Peek returns the number NextNumber would produce, without
// incrementing the counter.
func (s *InvoiceNumberSequence) Peek() string {
	return s.format(s.nextNumber)
}

// NextNumber formats and returns the current number, then increments
// the counter.
func (s *InvoiceNumberSequence) NextNumber() string {
	n := s.format(s.nextNumber)
	s.nextNumber++
	return n
}

func (s *InvoiceNumberSequence) format(n int) string {
	return fmt.Sprintf("%s%d-%0*d", s.prefix, s.year, s.zeroPad, n)
}

// AdvanceYear rolls the sequence over to year, resetting the counter
// to 1. year must be strictly greater than the current year.
func (s *InvoiceNumberSequence) AdvanceYear(year int) error {
	if year <= s.year {
		return &NumberingError{Message: fmt.Sprintf("cannot advance year from %d to %d: new year must be greater", s.year, year)}
	}
	s.year = year
	s.nextNumber = 1
	return nil
}

// AutoAdvance rolls the sequence over to date's year iff it is
// strictly greater than the current year, and reports whether it did.
func (s *InvoiceNumberSequence) AutoAdvance(date time.Time) (bool, error) {
	year := date.Year()
	if year <= s.year {
		return false, nil
	}
	if err := s.AdvanceYear(year); err != nil {
		return false, err
	}
	return true, nil
}
