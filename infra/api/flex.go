package api

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// The API is inconsistent about scalar encodings: amounts and counters arrive
// as numbers or numeric strings, flags as booleans, strings or 0/1. These
// types accept every shape and fall back to the zero value instead of failing
// the surrounding record.

type flexNumber float64

func (n *flexNumber) UnmarshalJSON(b []byte) error {
	*n = 0
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return nil
		}
		if v, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			*n = flexNumber(v)
		}
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err == nil {
		*n = flexNumber(v)
	}
	return nil
}

func (n flexNumber) Float() float64 { return float64(n) }

func (n flexNumber) Int() int {
	if n < 0 {
		return 0
	}
	return int(n)
}

type flexBool bool

func (f *flexBool) UnmarshalJSON(b []byte) error {
	*f = false
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return nil
	}
	switch b[0] {
	case 't':
		*f = true
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err == nil {
			*f = flexBool(parseTruthy(s))
		}
	case 'f', 'n':
	default:
		var v float64
		if err := json.Unmarshal(b, &v); err == nil {
			*f = v != 0
		}
	}
	return nil
}

func parseTruthy(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "1", "y":
		return true
	}
	return false
}

// flexString accepts strings and numbers; numeric IDs are common.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	*f = ""
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err == nil {
			*f = flexString(s)
		}
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(b, &num); err == nil {
		*f = flexString(num.String())
	}
	return nil
}

func (f flexString) String() string { return string(f) }

// flexOutcome is a resolution outcome: a boolean or "yes"/"no". Unknown
// values leave it unset.
type flexOutcome struct {
	set   bool
	value bool
}

func (o *flexOutcome) UnmarshalJSON(b []byte) error {
	*o = flexOutcome{}
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return nil
	}
	switch {
	case string(b) == "true":
		*o = flexOutcome{set: true, value: true}
	case string(b) == "false":
		*o = flexOutcome{set: true, value: false}
	case b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return nil
		}
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "yes", "true":
			*o = flexOutcome{set: true, value: true}
		case "no", "false":
			*o = flexOutcome{set: true, value: false}
		}
	}
	return nil
}

func (o flexOutcome) ptr() *bool {
	if !o.set {
		return nil
	}
	v := o.value
	return &v
}
