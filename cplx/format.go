// Copyright 2026 Andrei Vekin. All rights reserved.

package cplx

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// JSONMode defines the way all values are marshaled into json, see JSONMode* constants.
// This variable is not thread-safe, so this should be changed on program start.
var JSONMode = JSONModeString

const (
	// JSONModeString produces values as strings, like "(1.5,-2)".
	// This mode is lossless: NaN and infinite components survive a round trip.
	JSONModeString = iota
	// JSONModeObject produces values as objects, like {"re":1.5,"im":-2}.
	// NaN and infinite components cannot be represented as json numbers
	// and make Marshal fail in this mode.
	JSONModeObject
)

// String returns the value in the form "(re,im)", using the shortest
// decimal representation that round-trips through FromString.
// Non-finite components render as "NaN", "+Inf" and "-Inf".
func (z Complex) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	sb.WriteString(formatPart(z.re))
	sb.WriteByte(',')
	sb.WriteString(formatPart(z.im))
	sb.WriteByte(')')
	return sb.String()
}

func formatPart(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// FromString parses a value in the form produced by String: "(re,im)".
// Surrounding whitespace and whitespace around the components is ignored.
// The components accept everything strconv.ParseFloat does, including
// "NaN", "+Inf" and "-Inf".
func FromString(s string) (Complex, error) {
	t := strings.TrimSpace(s)
	if len(t) < 2 || t[0] != '(' || t[len(t)-1] != ')' {
		return Zero, fmt.Errorf("cplx: %q is not of the form (re,im)", s)
	}
	body := t[1 : len(t)-1]
	comma := strings.IndexByte(body, ',')
	if comma < 0 {
		return Zero, fmt.Errorf("cplx: missing component separator in %q", s)
	}
	re, err := strconv.ParseFloat(strings.TrimSpace(body[:comma]), 64)
	if err != nil {
		return Zero, fmt.Errorf("cplx: bad real part in %q: %w", s, err)
	}
	im, err := strconv.ParseFloat(strings.TrimSpace(body[comma+1:]), 64)
	if err != nil {
		return Zero, fmt.Errorf("cplx: bad imaginary part in %q: %w", s, err)
	}
	return Complex{re: re, im: im}, nil
}

// MustFromString is like FromString, but panics on a parse error.
func MustFromString(s string) Complex {
	z, err := FromString(s)
	if err != nil {
		panic(err)
	}
	return z
}

// MarshalJSON marshals the value according to the current JSONMode.
func (z Complex) MarshalJSON() ([]byte, error) {
	switch JSONMode {
	case JSONModeObject:
		if !z.IsFinite() {
			return nil, fmt.Errorf("cplx: cannot marshal %v as a json object", z)
		}
		var sb strings.Builder
		sb.WriteString(`{"re":`)
		sb.WriteString(formatPart(z.re))
		sb.WriteString(`,"im":`)
		sb.WriteString(formatPart(z.im))
		sb.WriteByte('}')
		return []byte(sb.String()), nil
	default:
		return []byte(`"` + z.String() + `"`), nil
	}
}

// UnmarshalJSON unmarshals a value from either of the forms produced by
// MarshalJSON, regardless of the current JSONMode.
func (z *Complex) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("cplx: cannot unmarshal an empty value")
	}
	if data[0] == '{' {
		var obj struct {
			Re float64 `json:"re"`
			Im float64 `json:"im"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		*z = Complex{re: obj.Re, im: obj.Im}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := FromString(s)
	if err != nil {
		return err
	}
	*z = v
	return nil
}
