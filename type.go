package propology

import (
	"math/big"
	"reflect"
)

// Type categories
const (
	TypeString   = "string"
	TypeNumber   = "number"
	TypeBoolean  = "boolean"
	TypeBigInt   = "bigint"
	TypeFunction = "function"
	TypeObject   = "object"
	//TypeUnknown groups members without type
	TypeUnknown = "unknown"
)

var bigIntType = reflect.TypeOf(&big.Int{})

// TypeOf returns value runtime category, nil and complex numbers are objects
func TypeOf(value interface{}) string {
	if value == nil {
		return TypeObject
	}
	rType := reflect.TypeOf(value)
	if rType == bigIntType {
		return TypeBigInt
	}
	switch rType.Kind() {
	case reflect.String:
		return TypeString
	case reflect.Bool:
		return TypeBoolean
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return TypeNumber
	case reflect.Func:
		return TypeFunction
	}
	return TypeObject
}

func ensureStruct(t reflect.Type) reflect.Type {
	switch t.Kind() {
	case reflect.Struct:
		return t
	case reflect.Ptr:
		return ensureStruct(t.Elem())
	}
	return nil
}
