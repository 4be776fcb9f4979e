package sql

import (
	"fmt"
	"strconv"
	"time"
)

// TypeKind identifies the family of a column type.
type TypeKind int

const (
	KindInt TypeKind = iota
	KindChar
	KindBoolean
	KindFloat
	KindVarchar
	KindDate
)

// DateLayout is the calendar form accepted and printed for DATE values.
const DateLayout = "2006-01-02"

// dateInputLayout also accepts months and days written without a leading zero.
const dateInputLayout = "2006-1-2"

// DataType represents the declared type of a column.
// Size is only meaningful for VARCHAR, where it holds the maximum length.
type DataType struct {
	Kind TypeKind
	Size int
}

var (
	TypeInt     = DataType{Kind: KindInt}
	TypeChar    = DataType{Kind: KindChar}
	TypeBoolean = DataType{Kind: KindBoolean}
	TypeFloat   = DataType{Kind: KindFloat}
	TypeDate    = DataType{Kind: KindDate}
)

// TypeVarchar returns a VARCHAR type holding at most n characters.
func TypeVarchar(n int) DataType {
	return DataType{Kind: KindVarchar, Size: n}
}

func (k TypeKind) String() string {
	switch k {
	case KindInt:
		return "INT"
	case KindChar:
		return "CHAR"
	case KindBoolean:
		return "BOOLEAN"
	case KindFloat:
		return "FLOAT"
	case KindVarchar:
		return "VARCHAR"
	case KindDate:
		return "DATE"
	default:
		return fmt.Sprintf("TypeKind(%d)", int(k))
	}
}

// String renders the type the way it is written in CREATE TABLE.
func (t DataType) String() string {
	if t.Kind == KindVarchar {
		return fmt.Sprintf("VARCHAR(%d)", t.Size)
	}
	return t.Kind.String()
}

// Value represents a single cell in a table (one column in one row).
// Only the field matching Type should be read; other fields remain at their
// zero values.
type Value struct {
	Type TypeKind

	I32 int32     // for KindInt
	C   rune      // for KindChar
	B   bool      // for KindBoolean
	F32 float32   // for KindFloat
	S   string    // for KindVarchar
	D   time.Time // for KindDate
}

// IntValue, CharValue, ... build a Value of the matching kind.
func IntValue(i int32) Value { return Value{Type: KindInt, I32: i} }
func CharValue(c rune) Value { return Value{Type: KindChar, C: c} }
func BoolValue(b bool) Value { return Value{Type: KindBoolean, B: b} }
func FloatValue(f float32) Value { return Value{Type: KindFloat, F32: f} }
func VarcharValue(s string) Value { return Value{Type: KindVarchar, S: s} }
func DateValue(d time.Time) Value { return Value{Type: KindDate, D: d} }

// String formats the value for display.
func (v Value) String() string {
	switch v.Type {
	case KindInt:
		return strconv.FormatInt(int64(v.I32), 10)
	case KindChar:
		return string(v.C)
	case KindBoolean:
		return strconv.FormatBool(v.B)
	case KindFloat:
		return strconv.FormatFloat(float64(v.F32), 'g', -1, 32)
	case KindVarchar:
		return v.S
	case KindDate:
		return v.D.Format(DateLayout)
	default:
		return "NULL"
	}
}

// Equal reports whether two values have the same kind and payload.
func (v Value) Equal(o Value) bool {
	if v.Type != o.Type {
		return false
	}
	switch v.Type {
	case KindInt:
		return v.I32 == o.I32
	case KindChar:
		return v.C == o.C
	case KindBoolean:
		return v.B == o.B
	case KindFloat:
		return v.F32 == o.F32
	case KindVarchar:
		return v.S == o.S
	case KindDate:
		return v.D.Equal(o.D)
	default:
		return false
	}
}

// Row represents one record in a table: a slice of Values, one per column.
type Row []Value

// Clone returns a copy of the row that shares no backing array with r.
func (r Row) Clone() Row {
	out := make(Row, len(r))
	copy(out, r)
	return out
}

// Column describes metadata for a single column in a table.
type Column struct {
	Name string
	Type DataType
}

// ColumnNames extracts the names of cols in order.
func ColumnNames(cols []Column) []string {
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.Name
	}
	return names
}
