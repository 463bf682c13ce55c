package propology

import (
	"encoding"
	"fmt"
	"math"
	"math/big"
	"reflect"
	"strconv"
	"strings"

	"github.com/francoispqt/gojay"
	json "github.com/goccy/go-json"
)

const maxEncodingDepth = 32

type (
	valueEncoder struct {
		options *Options
		err     error
	}

	jsonObject struct {
		encoder *valueEncoder
		members []Member
		depth   int
	}

	jsonArray struct {
		encoder *valueEncoder
		value   reflect.Value
		depth   int
	}
)

// Stringify returns value JSON text, ok is false for values without JSON representation, i.e. functions
func Stringify(value interface{}, opts ...Option) (string, bool, error) {
	encoder := &valueEncoder{options: NewOptions(opts...)}
	return encoder.stringify(value)
}

func (e *valueEncoder) stringify(value interface{}) (string, bool, error) {
	value = e.indirect(value)
	if isFunction(value) {
		return "", false, nil
	}
	var data []byte
	var err error
	switch actual := e.composite(value, 0).(type) {
	case *jsonObject:
		data, err = gojay.MarshalJSONObject(actual)
	case *jsonArray:
		data, err = gojay.MarshalJSONArray(actual)
	default:
		data, err = e.scalar(value)
	}
	if err == nil {
		err = e.err
	}
	if err != nil {
		return "", false, err
	}
	return string(data), true, nil
}

func (e *valueEncoder) scalar(value interface{}) ([]byte, error) {
	switch actual := value.(type) {
	case nil:
		return []byte("null"), nil
	case *big.Int:
		return []byte(actual.String()), nil
	case json.Marshaler, encoding.TextMarshaler:
		return json.Marshal(actual)
	}
	rValue := reflect.ValueOf(value)
	switch rValue.Kind() {
	case reflect.String:
		return gojay.Marshal(rValue.String())
	case reflect.Bool:
		return gojay.Marshal(rValue.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return gojay.Marshal(rValue.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return gojay.Marshal(rValue.Uint())
	case reflect.Float32, reflect.Float64:
		f := rValue.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return []byte("null"), nil
		}
		if abs := math.Abs(f); abs >= 1e21 || (abs != 0 && abs < 1e-6) {
			return exponentNumber(f), nil
		}
		return gojay.Marshal(f)
	case reflect.Complex64, reflect.Complex128:
		return gojay.Marshal(strconv.FormatComplex(rValue.Complex(), 'g', -1, 128))
	}
	return json.Marshal(value)
}

// exponentNumber formats f with shortest mantissa and unpadded exponent, i.e. 1e+21, 1.5e-7
func exponentNumber(f float64) []byte {
	mantissa, exponent, _ := strings.Cut(strconv.FormatFloat(f, 'e', -1, 64), "e")
	digits := strings.TrimLeft(exponent[1:], "0")
	return []byte(mantissa + "e" + exponent[:1] + digits)
}

// composite returns jsonObject or jsonArray for structured values, nil otherwise
func (e *valueEncoder) composite(value interface{}, depth int) interface{} {
	switch value.(type) {
	case nil, *big.Int, json.Marshaler, encoding.TextMarshaler:
		return nil
	}
	if depth > maxEncodingDepth {
		e.fail(fmt.Errorf("failed to encode value: exceeded max depth %v", maxEncodingDepth))
		return nil
	}
	rValue := reflect.ValueOf(value)
	switch rValue.Kind() {
	case reflect.Slice, reflect.Array:
		if rValue.Kind() == reflect.Slice && rValue.IsNil() {
			return nil
		}
		return &jsonArray{encoder: e, value: rValue, depth: depth}
	case reflect.Struct, reflect.Map:
	default:
		if _, ok := value.(Describer); !ok {
			return nil
		}
	}
	if rValue.Kind() == reflect.Map && rValue.IsNil() {
		return nil
	}
	levels, err := e.options.levels(value)
	if err != nil {
		e.fail(err)
		return nil
	}
	return &jsonObject{encoder: e, members: levels[0].DescribeOwn(), depth: depth}
}

func (e *valueEncoder) fail(err error) {
	if e.err == nil {
		e.err = err
	}
}

// indirect dereferences pointers to non describable values
func (e *valueEncoder) indirect(value interface{}) interface{} {
	for value != nil {
		if _, ok := value.(Describer); ok {
			return value
		}
		switch value.(type) {
		case *big.Int, json.Marshaler, encoding.TextMarshaler:
			return value
		}
		rValue := reflect.ValueOf(value)
		if rValue.Kind() != reflect.Ptr {
			return value
		}
		if rValue.IsNil() {
			return nil
		}
		value = rValue.Elem().Interface()
	}
	return value
}

func (e *valueEncoder) encodeKey(enc *gojay.Encoder, key string, value interface{}, depth int) {
	value = e.indirect(value)
	switch actual := e.composite(value, depth+1).(type) {
	case *jsonObject:
		enc.ObjectKey(key, actual)
		return
	case *jsonArray:
		enc.ArrayKey(key, actual)
		return
	}
	data, err := e.scalar(value)
	if err != nil {
		e.fail(err)
		return
	}
	embedded := gojay.EmbeddedJSON(data)
	enc.AddEmbeddedJSONKey(key, &embedded)
}

func (e *valueEncoder) encodeElement(enc *gojay.Encoder, value interface{}, depth int) {
	value = e.indirect(value)
	if isFunction(value) {
		enc.AddNull()
		return
	}
	switch actual := e.composite(value, depth+1).(type) {
	case *jsonObject:
		enc.Object(actual)
		return
	case *jsonArray:
		enc.Array(actual)
		return
	}
	data, err := e.scalar(value)
	if err != nil {
		e.fail(err)
		return
	}
	embedded := gojay.EmbeddedJSON(data)
	enc.AddEmbeddedJSON(&embedded)
}

// MarshalJSONObject encodes own enumerable members, undefined and function members are omitted
func (o *jsonObject) MarshalJSONObject(enc *gojay.Encoder) {
	for _, member := range o.members {
		if !member.Descriptor.IsEnumerable() {
			continue
		}
		var value interface{}
		switch actual := member.Descriptor.(type) {
		case *DataDescriptor:
			if !actual.IsDefined() {
				continue
			}
			value = actual.Value
		case *AccessorDescriptor:
			if !actual.HasGetter() {
				continue
			}
			value = actual.Get()
		}
		if isFunction(value) {
			continue
		}
		o.encoder.encodeKey(enc, member.Name, value, o.depth)
	}
}

func (o *jsonObject) IsNil() bool {
	return false
}

// MarshalJSONArray encodes elements, functions are encoded as null
func (a *jsonArray) MarshalJSONArray(enc *gojay.Encoder) {
	for i := 0; i < a.value.Len(); i++ {
		a.encoder.encodeElement(enc, a.value.Index(i).Interface(), a.depth)
	}
}

func (a *jsonArray) IsNil() bool {
	return false
}

func isFunction(value interface{}) bool {
	return value != nil && reflect.TypeOf(value).Kind() == reflect.Func
}
