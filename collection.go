package propology

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
)

// LengthMember defines hidden slice length member name
const LengthMember = "length"

type (
	mapLevel struct {
		value reflect.Value
	}

	sliceLevel struct {
		value       reflect.Value
		addressable bool
	}
)

// DescribeOwn returns map entries sorted by key name, keys sharing a name are ordered by key type
func (m *mapLevel) DescribeOwn() []Member {
	type entry struct {
		name    string
		keyType string
		value   interface{}
	}
	entries := make([]entry, 0, m.value.Len())
	iter := m.value.MapRange()
	for iter.Next() {
		key := iter.Key()
		entries = append(entries, entry{name: mapKeyName(key), keyType: keyTypeName(key), value: iter.Value().Interface()})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].name != entries[j].name {
			return entries[i].name < entries[j].name
		}
		return entries[i].keyType < entries[j].keyType
	})
	ret := make([]Member, 0, len(entries))
	for _, item := range entries {
		ret = append(ret, Member{Name: item.name, Descriptor: Value(item.value)})
	}
	return ret
}

func keyTypeName(key reflect.Value) string {
	if key.Kind() == reflect.Interface && !key.IsNil() {
		key = key.Elem()
	}
	return key.Type().String()
}

func mapKeyName(key reflect.Value) string {
	if key.Kind() == reflect.String {
		return key.String()
	}
	return fmt.Sprint(key.Interface())
}

// DescribeOwn returns indexed elements followed by hidden length member
func (s *sliceLevel) DescribeOwn() []Member {
	size := s.value.Len()
	ret := make([]Member, 0, size+1)
	for i := 0; i < size; i++ {
		ret = append(ret, Member{Name: strconv.Itoa(i), Descriptor: &DataDescriptor{
			Value:      s.value.Index(i).Interface(),
			Writable:   s.addressable,
			Enumerable: true,
		}})
	}
	ret = append(ret, Member{Name: LengthMember, Descriptor: &DataDescriptor{Value: size}})
	return ret
}

func newSliceLevel(value reflect.Value, addressable bool) *sliceLevel {
	if value.Kind() == reflect.Slice {
		addressable = true
	}
	return &sliceLevel{value: value, addressable: addressable}
}
