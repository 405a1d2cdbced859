package usecases

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"staff-roster.backend/internal/domain/entities"
	domainerrors "staff-roster.backend/internal/domain/errors"
)

// Storage precision of hourly_rate: decimal(6,2).
const (
	rateMaxDigits        = 6
	rateMaxDecimalPlaces = 2
)

// requiredText trims a text field. ok is false when the field is missing on a
// full write or blank after trimming; the reason is recorded in errs.
func requiredText(errs domainerrors.FieldErrors, field string, v *string, partial bool) (string, bool) {
	if v == nil {
		if !partial {
			errs.Add(field, domainerrors.MsgRequired)
		}
		return "", false
	}
	s := strings.TrimSpace(*v)
	if s == "" {
		errs.Add(field, domainerrors.MsgBlank)
		return "", false
	}
	return s, true
}

// parseHourlyRate accepts a JSON number or numeric string.
func parseHourlyRate(raw json.RawMessage) (decimal.Decimal, string) {
	text := strings.TrimSpace(string(raw))
	if text == "null" {
		return decimal.Zero, domainerrors.MsgNull
	}
	if strings.HasPrefix(text, `"`) {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return decimal.Zero, domainerrors.MsgInvalidNumber
		}
		text = strings.TrimSpace(s)
	}
	d, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Zero, domainerrors.MsgInvalidNumber
	}
	if msg := checkRatePrecision(d); msg != "" {
		return decimal.Zero, msg
	}
	if !d.IsPositive() {
		return decimal.Zero, domainerrors.MsgHourlyRatePositive
	}
	return d, ""
}

func checkRatePrecision(d decimal.Decimal) string {
	digits := len(d.Coefficient().String())
	if d.Coefficient().Sign() < 0 {
		digits--
	}
	exp := int(d.Exponent())

	var total, places int
	switch {
	case exp >= 0:
		total, places = digits+exp, 0
	case -exp > digits:
		total, places = -exp, -exp
	default:
		total, places = digits, -exp
	}
	whole := total - places

	if total > rateMaxDigits {
		return fmt.Sprintf(domainerrors.MsgMaxDigits, rateMaxDigits)
	}
	if places > rateMaxDecimalPlaces {
		return fmt.Sprintf(domainerrors.MsgMaxDecimalPlaces, rateMaxDecimalPlaces)
	}
	if whole > rateMaxDigits-rateMaxDecimalPlaces {
		return fmt.Sprintf(domainerrors.MsgMaxWholeDigits, rateMaxDigits-rateMaxDecimalPlaces)
	}
	return ""
}

func parseDate(s string) (time.Time, bool) {
	d, err := time.Parse(entities.DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// requiredDate parses a YYYY-MM-DD field, honoring partial writes.
func requiredDate(errs domainerrors.FieldErrors, field string, v *string, partial bool) (time.Time, bool) {
	if v == nil {
		if !partial {
			errs.Add(field, domainerrors.MsgRequired)
		}
		return time.Time{}, false
	}
	d, ok := parseDate(*v)
	if !ok {
		errs.Add(field, domainerrors.MsgInvalidDate)
	}
	return d, ok
}

// requiredTime parses an HH:MM[:SS] field, honoring partial writes.
func requiredTime(errs domainerrors.FieldErrors, field string, v *string, partial bool) (entities.TimeOfDay, bool) {
	if v == nil {
		if !partial {
			errs.Add(field, domainerrors.MsgRequired)
		}
		return 0, false
	}
	t, err := entities.ParseTimeOfDay(strings.TrimSpace(*v))
	if err != nil {
		errs.Add(field, domainerrors.MsgInvalidTime)
		return 0, false
	}
	return t, true
}

// parseUUIDs parses ids in order, stopping at the first malformed one.
func parseUUIDs(raw []string) ([]uuid.UUID, string, bool) {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(strings.TrimSpace(s))
		if err != nil {
			return nil, s, false
		}
		ids = append(ids, id)
	}
	return ids, "", true
}

func invalidPK(id string) string {
	return fmt.Sprintf(domainerrors.MsgInvalidPK, id)
}
