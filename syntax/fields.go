package syntax

import (
	"fmt"
	"strconv"
	"strings"
)

// MissingFieldError reports a record line that ran out of tokens
// before the named field could be read.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing field %s", e.Field)
}

// ConversionError reports a token that could not be converted to the
// named numeric field.
type ConversionError struct {
	Field string
	Token string
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("cannot convert %q to a number for field %s", e.Token, e.Field)
}

// Fields scans whitespace-separated numeric fields from a single
// record line, in order. Each accessor consumes one token and tags
// failures with the field name it was asked for.
type Fields struct {
	rest string
}

// NewFields returns a scanner over the fields of line.
func NewFields(line string) *Fields {
	return &Fields{rest: line}
}

func (f *Fields) next(name string) (string, error) {
	s := strings.TrimLeft(f.rest, spaceCutset)
	if s == "" {
		f.rest = s
		return "", &MissingFieldError{Field: name}
	}
	i := strings.IndexFunc(s, isSpace)
	if i < 0 {
		f.rest = ""
		return s, nil
	}
	f.rest = s[i:]
	return s[:i], nil
}

// Int reads the next field as a 32-bit integer.
func (f *Fields) Int(name string) (int32, error) {
	tok, err := f.next(name)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(tok, 10, 32)
	if err != nil {
		return 0, &ConversionError{Field: name, Token: tok}
	}
	return int32(v), nil
}

// Float reads the next field as a float64.
func (f *Fields) Float(name string) (float64, error) {
	tok, err := f.next(name)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, &ConversionError{Field: name, Token: tok}
	}
	return v, nil
}

// FormatFloat formats v with the fewest digits that parse back to the
// same bit pattern, so written streams reproduce their floats exactly
// on re-read.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// FormatInt formats v as plain decimal.
func FormatInt(v int32) string {
	return strconv.FormatInt(int64(v), 10)
}
