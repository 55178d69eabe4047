package alignment

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// ErrInvalidMode reports an unrecognized alignment mode name.
var ErrInvalidMode = errors.New("invalid alignment mode")

// Mode selects the alignment strategy.
type Mode uint8

const (
	// Local alignments (Smith-Waterman) align a substring of x with a
	// substring of y.
	Local Mode = iota
	// Semiglobal alignments align all of x with a substring of y.
	Semiglobal
	// Global alignments (Needleman-Wunsch) align all of x with all
	// of y.
	Global
	// Custom marks alignments produced under caller-defined boundary
	// conditions.
	Custom
)

// Modes lists the mode names accepted by ParseMode, for use in flag
// usage strings.
func Modes() []string {
	return []string{"local", "semiglobal", "global", "custom"}
}

// ParseMode converts a mode name into a Mode, case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "local":
		return Local, nil
	case "semiglobal":
		return Semiglobal, nil
	case "global":
		return Global, nil
	case "custom":
		return Custom, nil
	default:
		return Local, fmt.Errorf("%q: %w (expected one of %s)", s, ErrInvalidMode, strings.Join(Modes(), ", "))
	}
}

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Local:
		return "local"
	case Semiglobal:
		return "semiglobal"
	case Global:
		return "global"
	case Custom:
		return "custom"
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

// Set implements pflag.Value, so a Mode can be bound directly as a
// command-line flag.
func (m *Mode) Set(s string) error {
	parsed, err := ParseMode(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Type implements pflag.Value.
func (m *Mode) Type() string { return "mode" }

// MarshalText encodes the mode as its name.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText decodes a mode from its name.
func (m *Mode) UnmarshalText(text []byte) error {
	return m.Set(string(text))
}

var _ pflag.Value = (*Mode)(nil)
