package typeof

import (
	"math"
	"math/big"
	"reflect"
)

// Category is the runtime category of a dynamic value.
type Category string

const (
	Undefined Category = "undefined"
	String    Category = "string"
	Number    Category = "number"
	Boolean   Category = "boolean"
	BigInt    Category = "bigint"
	Symbol    Category = "symbol"
	Function  Category = "function"
	Object    Category = "object"
)

type null struct{}

// Null is the explicit null value. It is present (not missing) but holds nothing.
var Null any = null{}

var (
	bigIntType    = reflect.TypeFor[big.Int]()
	bigIntPtrType = reflect.TypeFor[*big.Int]()
	symbolType    = reflect.TypeFor[SymbolValue]()
)

// Of returns the category of v.
func Of(v any) Category {
	if v == nil {
		return Undefined
	}
	if _, ok := v.(null); ok {
		return Object
	}

	rv := reflect.ValueOf(v)
	switch rv.Type() {
	case bigIntPtrType:
		if rv.IsNil() {
			return Object
		}
		return BigInt
	case bigIntType:
		return BigInt
	case symbolType:
		return Symbol
	}

	switch rv.Kind() {
	case reflect.String:
		return String
	case reflect.Bool:
		return Boolean
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return Number
	case reflect.Func:
		if rv.IsNil() {
			return Object
		}
		return Function
	default:
		return Object
	}
}

// IsMissing reports whether v is the missing value (untyped nil).
func IsMissing(v any) bool {
	return v == nil
}

// IsNull reports whether v is Null or a typed nil pointer, func or chan.
// Nil slices and nil maps are empty collections, not null.
func IsNull(v any) bool {
	if v == nil {
		return false
	}
	if _, ok := v.(null); ok {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// IsNaN reports whether v is a floating point NaN.
func IsNaN(v any) bool {
	switch f := v.(type) {
	case float64:
		return math.IsNaN(f)
	case float32:
		return math.IsNaN(float64(f))
	}
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Float32 || rv.Kind() == reflect.Float64 {
		return math.IsNaN(rv.Float())
	}
	return false
}

// IsArray reports whether v is a slice or an array.
func IsArray(v any) bool {
	if v == nil {
		return false
	}
	k := reflect.TypeOf(v).Kind()
	return k == reflect.Slice || k == reflect.Array
}

// Unbox returns the primitive a boxed wrapper points to.
// A boxed wrapper is a non-nil pointer to a string, number or boolean kind.
func Unbox(v any) (any, bool) {
	if v == nil {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return nil, false
	}
	elem := rv.Elem()
	switch Of(elem.Interface()) {
	case String, Number, Boolean:
		return elem.Interface(), true
	}
	return nil, false
}

// BoxedCategory returns the category of the primitive a boxed wrapper holds.
func BoxedCategory(v any) (Category, bool) {
	inner, ok := Unbox(v)
	if !ok {
		return "", false
	}
	return Of(inner), true
}

// Len returns the length of a string (in runes) or of a slice, array or map.
func Len(v any) int {
	if v == nil {
		return 0
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return len([]rune(rv.String()))
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len()
	}
	return 0
}

// TypeName returns the name of the concrete type of v with pointers stripped.
// Unnamed types yield an empty string.
func TypeName(v any) string {
	if v == nil {
		return ""
	}
	return NameOf(reflect.TypeOf(v))
}

// NameOf returns the name of t with pointers stripped.
func NameOf(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}
