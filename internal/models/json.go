package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// CurrencySet is an ordered, de-duplicated list of upper-case ISO 4217
// codes stored as a jsonb array.
type CurrencySet []string

// NewCurrencySet upper-cases, trims and de-duplicates codes, keeping the
// first occurrence order.
func NewCurrencySet(codes []string) CurrencySet {
	seen := make(map[string]struct{}, len(codes))
	out := make(CurrencySet, 0, len(codes))
	for _, c := range codes {
		code := strings.ToUpper(strings.TrimSpace(c))
		if code == "" {
			continue
		}
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		out = append(out, code)
	}
	return out
}

func (s CurrencySet) Contains(code string) bool {
	code = strings.ToUpper(strings.TrimSpace(code))
	for _, c := range s {
		if c == code {
			return true
		}
	}
	return false
}

// Value implements the driver.Valuer interface
func (s CurrencySet) Value() (driver.Value, error) {
	if s == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(s))
}

// Scan implements the sql.Scanner interface
func (s *CurrencySet) Scan(value interface{}) error {
	var data []byte
	switch v := value.(type) {
	case nil:
		*s = nil
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported currency set type %T", value)
	}
	var codes []string
	if err := json.Unmarshal(data, &codes); err != nil {
		return err
	}
	*s = CurrencySet(codes)
	return nil
}
