package propology

import (
	"fmt"
	"github.com/viant/xunsafe"
	"reflect"
	"unsafe"
)

// Marker tracks struct field presence with a holder struct of bool flags
type Marker struct {
	t      reflect.Type
	holder *xunsafe.Field
	fields []*xunsafe.Field //indexed by owner field index
}

// HolderIndex returns holder field index in owner struct or -1
func (p *Marker) HolderIndex() int {
	if p.holder == nil {
		return -1
	}
	return int(p.holder.Index)
}

// IsSet returns true if owner field at index was flagged as set
func (p *Marker) IsSet(ptr unsafe.Pointer, index int) bool {
	if p.holder == nil || p.holder.IsNil(ptr) {
		return true //no presence provider, all fields are set
	}
	if index >= len(p.fields) || p.fields[index] == nil {
		return true
	}
	markerPtr := p.holder.ValuePointer(ptr)
	return p.fields[index].Bool(markerPtr)
}

func (p *Marker) init() error {
	holderType := ensureStruct(p.holder.Type)
	if holderType == nil {
		return fmt.Errorf("marker holder %v was not a struct on %s", p.holder.Name, p.t.String())
	}
	for i := 0; i < holderType.NumField(); i++ {
		markerField := holderType.Field(i)
		if markerField.Type.Kind() != reflect.Bool {
			continue
		}
		owner, ok := p.t.FieldByName(markerField.Name)
		if !ok || len(owner.Index) != 1 {
			continue
		}
		p.fields[owner.Index[0]] = xunsafe.NewField(markerField)
	}
	return nil
}

// NewMarker returns struct presence marker, nil if struct has no marker holder
func NewMarker(t reflect.Type) (*Marker, error) {
	if t = ensureStruct(t); t == nil {
		return nil, fmt.Errorf("supplied type is not struct")
	}
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !IsSetMarker(field.Tag) {
			continue
		}
		if field.Type.Kind() != reflect.Ptr {
			return nil, fmt.Errorf("marker holder %v has to be a pointer on %s", field.Name, t.String())
		}
		ret := &Marker{t: t, holder: xunsafe.NewField(field), fields: make([]*xunsafe.Field, t.NumField())}
		return ret, ret.init()
	}
	return nil, nil
}
