package report

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// canonicalTimestamp is how order timestamps are stored: ISO date and time
// separated by a space, seconds precision.
const canonicalTimestamp = "2006-01-02 15:04:05"

// timestampLayouts are the textual forms accepted for "data e hora do
// pedido", tried in order. Covers ISO variants and the DD/MM forms the
// marketplace exports use.
var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"02/01/2006 15:04:05",
	"02/01/2006 15:04",
	"2006-01-02",
	"02/01/2006",
}

// ParseTimestamp parses a raw order timestamp into canonical form.
// An empty value is an error: a missing order timestamp aborts the row's
// ingestion rather than defaulting. Numeric values are interpreted as
// Excel serial dates, since unstyled datetime cells surface that way.
func ParseTimestamp(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", fmt.Errorf("%w: campo vazio", ErrInvalidTimestamp)
	}
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts.Format(canonicalTimestamp), nil
		}
	}
	if serial, err := strconv.ParseFloat(s, 64); err == nil && serial > 0 {
		if ts, err := excelize.ExcelDateToTime(serial, false); err == nil {
			return ts.Format(canonicalTimestamp), nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidTimestamp, raw)
}

// ParseNumber parses a numeric cell, tolerating the decimal comma.
// Absent values default to 0; a non-empty unparseable value is an error
// carrying the offending text.
func ParseNumber(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, nil
	}
	s = strings.ReplaceAll(s, ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, raw)
	}
	return v, nil
}
