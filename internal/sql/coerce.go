package sql

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// CoercionError reports literal text that does not satisfy a column type.
type CoercionError struct {
	Type DataType
	Raw  string
	Msg  string
}

func (e *CoercionError) Error() string { return e.Msg }

func coercionErr(dt DataType, raw, format string, args ...any) error {
	return &CoercionError{Type: dt, Raw: raw, Msg: fmt.Sprintf(format, args...)}
}

// Coerce converts the raw text of a literal into a Value of type dt.
// Lengths for CHAR and VARCHAR are counted in characters, not bytes.
func Coerce(dt DataType, raw string) (Value, error) {
	switch dt.Kind {
	case KindInt:
		i, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			return Value{}, coercionErr(dt, raw, "Expected integer, got '%s'.", raw)
		}
		return IntValue(int32(i)), nil

	case KindChar:
		if utf8.RuneCountInString(raw) != 1 {
			return Value{}, coercionErr(dt, raw, "Expected char, got '%s'.", raw)
		}
		r, _ := utf8.DecodeRuneInString(raw)
		return CharValue(r), nil

	case KindBoolean:
		switch strings.ToLower(raw) {
		case "true", "1":
			return BoolValue(true), nil
		case "false", "0":
			return BoolValue(false), nil
		}
		return Value{}, coercionErr(dt, raw, "Expected boolean, got '%s'.", raw)

	case KindFloat:
		if strings.ContainsAny(raw, "xX_") {
			return Value{}, coercionErr(dt, raw, "Expected float, got '%s'.", raw)
		}
		// Out-of-range values round to ±Inf.
		f, err := strconv.ParseFloat(raw, 32)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return Value{}, coercionErr(dt, raw, "Expected float, got '%s'.", raw)
		}
		return FloatValue(float32(f)), nil

	case KindDate:
		d, err := time.Parse(dateInputLayout, raw)
		if err != nil {
			return Value{}, coercionErr(dt, raw, "Expected date (YYYY-MM-DD), got '%s'.", raw)
		}
		return DateValue(d), nil

	case KindVarchar:
		if utf8.RuneCountInString(raw) > dt.Size {
			return Value{}, coercionErr(dt, raw, "Value exceeds maximum length of %d.", dt.Size)
		}
		return VarcharValue(raw), nil

	default:
		return Value{}, coercionErr(dt, raw, "Unsupported data type %s.", dt)
	}
}
