package einvoice

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/speedata/cxpath"
)

// parseDecimal evaluates path and parses it as a decimal, treating an
// empty result as zero rather than an error.
func parseDecimal(ctx *cxpath.Context, path string) (decimal.Decimal, error) {
	s := ctx.Eval(path).String()
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, NewXMLError("invalid decimal value '"+s+"' at "+path, err)
	}
	return d, nil
}

// parseDateUBL parses a plain YYYY-MM-DD date, returning the zero time
// for an empty result.
func parseDateUBL(ctx *cxpath.Context, path string) (time.Time, error) {
	s := ctx.Eval(path).String()
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, NewXMLError("invalid date '"+s+"' at "+path, err)
	}
	return t, nil
}

// parseDateUDT parses a udt:/qdt:DateTimeString in format="102" (YYYYMMDD).
func parseDateUDT(ctx *cxpath.Context, path string) (time.Time, error) {
	s := ctx.Eval(path).String()
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse("20060102", s)
	if err != nil {
		return time.Time{}, NewXMLError("invalid date '"+s+"' at "+path, err)
	}
	return t, nil
}

func ptrTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func ptrDecimal(d decimal.Decimal) *decimal.Decimal {
	return &d
}
