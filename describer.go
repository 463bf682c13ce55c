package propology

import (
	"github.com/viant/xunsafe"
	"go.uber.org/zap"
	"reflect"
)

type (
	//Describer exposes own member descriptors in declaration order
	Describer interface {
		DescribeOwn() []Member
	}

	//Inheritor exposes ancestor levels, nearest first
	Inheritor interface {
		Ancestors() []Describer
	}

	//Inheritance attaches explicit ancestor levels to a subject
	Inheritance struct {
		Subject   interface{}
		Ancestors []interface{}
	}
)

// Inherit returns subject with supplied ancestor levels, nearest first
func Inherit(subject interface{}, ancestors ...interface{}) *Inheritance {
	return &Inheritance{Subject: subject, Ancestors: ancestors}
}

// Levels resolves subject to own level followed by ancestor levels
func Levels(subject interface{}, opts ...Option) ([]Describer, error) {
	return NewOptions(opts...).levels(subject)
}

func (o *Options) levels(subject interface{}) ([]Describer, error) {
	switch actual := subject.(type) {
	case nil:
		return nil, newInvalidInputError("nil", "")
	case *Inheritance:
		if actual == nil {
			return nil, newInvalidInputError("nil", "inheritance")
		}
		ret, err := o.levels(actual.Subject)
		if err != nil {
			return nil, err
		}
		for _, ancestor := range actual.Ancestors {
			levels, err := o.levels(ancestor)
			if err != nil {
				return nil, err
			}
			ret = append(ret, levels...)
		}
		return ret, nil
	case Describer:
		if value := reflect.ValueOf(actual); value.Kind() == reflect.Ptr && value.IsNil() {
			return nil, newInvalidInputError(value.Type().String(), "was nil")
		}
		ret := []Describer{actual}
		if inheritor, ok := actual.(Inheritor); ok {
			ret = append(ret, inheritor.Ancestors()...)
		}
		return ret, nil
	}
	return o.reflectLevels(subject)
}

func (o *Options) reflectLevels(subject interface{}) ([]Describer, error) {
	value := reflect.ValueOf(subject)
	addressable := false
	for value.Kind() == reflect.Ptr || value.Kind() == reflect.Interface {
		if value.IsNil() {
			return nil, newInvalidInputError(value.Type().String(), "was nil")
		}
		if value.Kind() == reflect.Ptr {
			addressable = true
		}
		value = value.Elem()
	}
	o.Logger.Debug("resolving subject", zap.String("type", value.Type().String()), zap.Bool("addressable", addressable))
	switch value.Kind() {
	case reflect.Struct:
		sType, err := LookupStructType(value.Type())
		if err != nil {
			return nil, err
		}
		if !value.CanAddr() {
			copied := reflect.New(value.Type())
			copied.Elem().Set(value)
			value = copied.Elem()
		}
		ptr := xunsafe.AsPointer(value.Addr().Interface())
		return structLevels(sType, ptr, addressable, o.CaseFormat)
	case reflect.Map:
		return []Describer{&mapLevel{value: value}}, nil
	case reflect.Slice, reflect.Array:
		return []Describer{newSliceLevel(value, addressable)}, nil
	}
	return nil, newInvalidInputError(value.Kind().String(), "")
}
