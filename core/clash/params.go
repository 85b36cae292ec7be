package clash

import (
	"fmt"
	"strings"

	"barclash-core/barcode"
)

// Threshold bounds (inclusive).
const (
	MinThreshold     = 0
	MaxThreshold     = 10
	DefaultThreshold = 1
)

// Default source labels.
const (
	DefaultLabel1 = "Set 1"
	DefaultLabel2 = "Set 2"
)

// Mode selects within-set or between-set comparison.
type Mode int

const (
	ModeSingle Mode = iota
	ModeCross
)

func (m Mode) String() string {
	switch m {
	case ModeSingle:
		return "single"
	case ModeCross:
		return "cross"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode accepts "single" or "cross" (case-insensitive).
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single":
		return ModeSingle, nil
	case "cross":
		return ModeCross, nil
	}
	return 0, &ConfigurationError{Field: "mode", Reason: fmt.Sprintf("unknown mode %q (want single | cross)", s)}
}

// Params is the explicit configuration of one detection run.
type Params struct {
	Mode      Mode
	Threshold int
}

// Input is one normalized set plus the bookkeeping of how it was built.
// Label defaults to "Set 1" / "Set 2" by position.
type Input struct {
	Label   string
	Set     barcode.Set
	Summary barcode.Summary
}

// CheckThreshold rejects thresholds outside [MinThreshold, MaxThreshold].
func CheckThreshold(t int) error {
	if t < MinThreshold || t > MaxThreshold {
		return &ConfigurationError{
			Field:  "threshold",
			Reason: fmt.Sprintf("%d outside [%d,%d]", t, MinThreshold, MaxThreshold),
		}
	}
	return nil
}

// ValidateParams checks p against the presence of a second input.
func ValidateParams(p Params, second *Input) error {
	if err := CheckThreshold(p.Threshold); err != nil {
		return err
	}
	switch p.Mode {
	case ModeSingle:
		if second != nil {
			return &ConfigurationError{Field: "mode", Reason: "second set supplied in single-set mode"}
		}
	case ModeCross:
		if second == nil {
			return &ConfigurationError{Field: "mode", Reason: "cross-set mode requires a second set"}
		}
	default:
		return &ConfigurationError{Field: "mode", Reason: fmt.Sprintf("unknown mode %d", int(p.Mode))}
	}
	return nil
}

func labelOr(label, def string) string {
	if l := strings.TrimSpace(label); l != "" {
		return l
	}
	return def
}
