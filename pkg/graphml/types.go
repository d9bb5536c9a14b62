package graphml

import (
	"fmt"
	"strconv"
)

// Type is a GraphML attribute type as it appears in the attr.type attribute
// of a <key> element.
type Type string

// The GraphML 1.0 attribute types. TypeLong and TypeDouble complete the
// schema enum but are never produced by [TypeOf]: integers always map to
// TypeInt and floating-point values always map to TypeFloat.
const (
	TypeBoolean Type = "boolean"
	TypeInt     Type = "int"
	TypeLong    Type = "long"
	TypeFloat   Type = "float"
	TypeDouble  Type = "double"
	TypeString  Type = "string"
)

// Scope is a GraphML key scope as it appears in the for attribute of a
// <key> element. ScopeGraph and ScopeAll complete the schema enum; the
// exporter only ever declares node and edge keys.
type Scope string

const (
	ScopeNode  Scope = "node"
	ScopeEdge  Scope = "edge"
	ScopeGraph Scope = "graph"
	ScopeAll   Scope = "all"
)

// UnsupportedTypeError is returned when an attribute value's Go type has no
// GraphML attribute type. The export fails on the first such value and
// produces no output; the condition is deterministic, so retrying without
// fixing the input data recurs.
type UnsupportedTypeError struct {
	Value any // the offending attribute value
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported attribute type %T (value %v)", e.Value, e.Value)
}

// TypeOf maps an attribute value to its GraphML attribute type:
//
//	bool                           boolean
//	int, int8..int64               int
//	uint, uint8..uint64, uintptr   int
//	float32, float64               float
//	string                         string
//
// Floats deliberately map to float rather than double, matching the numeric
// model of the tools this exporter feeds. Every other Go type yields an
// [UnsupportedTypeError].
//
// TypeOf sees only raw Go kinds. During export, values implementing
// [fmt.Stringer] are replaced by their String() form before type resolution
// and so reach TypeOf as strings; TypeOf itself performs no such conversion.
func TypeOf(v any) (Type, error) {
	typ, _, err := resolveValue(v)
	return typ, err
}

// resolveValue maps an attribute value to its GraphML type and its textual
// form in one exhaustive switch, so the two can never disagree. Text forms
// come from strconv and are locale-independent.
func resolveValue(v any) (Type, string, error) {
	switch x := v.(type) {
	case bool:
		return TypeBoolean, strconv.FormatBool(x), nil
	case int:
		return TypeInt, strconv.FormatInt(int64(x), 10), nil
	case int8:
		return TypeInt, strconv.FormatInt(int64(x), 10), nil
	case int16:
		return TypeInt, strconv.FormatInt(int64(x), 10), nil
	case int32:
		return TypeInt, strconv.FormatInt(int64(x), 10), nil
	case int64:
		return TypeInt, strconv.FormatInt(x, 10), nil
	case uint:
		return TypeInt, strconv.FormatUint(uint64(x), 10), nil
	case uint8:
		return TypeInt, strconv.FormatUint(uint64(x), 10), nil
	case uint16:
		return TypeInt, strconv.FormatUint(uint64(x), 10), nil
	case uint32:
		return TypeInt, strconv.FormatUint(uint64(x), 10), nil
	case uint64:
		return TypeInt, strconv.FormatUint(x, 10), nil
	case uintptr:
		return TypeInt, strconv.FormatUint(uint64(x), 10), nil
	case float32:
		return TypeFloat, strconv.FormatFloat(float64(x), 'g', -1, 32), nil
	case float64:
		return TypeFloat, strconv.FormatFloat(x, 'g', -1, 64), nil
	case string:
		return TypeString, x, nil
	default:
		return "", "", &UnsupportedTypeError{Value: v}
	}
}
