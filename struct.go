package propology

import (
	"fmt"
	"github.com/viant/propology/tags"
	"github.com/viant/tagly/format/text"
	"github.com/viant/xunsafe"
	"reflect"
	"unsafe"
)

var structTypes = newStructTypeCache()

type (
	//StructType represents cached struct member layout
	StructType struct {
		rType    reflect.Type
		fields   []*structField
		embedded []*xunsafe.Field
		marker   *Marker
	}

	structField struct {
		xField   *xunsafe.Field
		name     string
		exported bool
		tag      *tags.Tag
	}

	//structLevel describes single struct instance, either inspected one or embedded one
	structLevel struct {
		sType       *StructType
		ptr         unsafe.Pointer
		addressable bool
		caseFormat  text.CaseFormat
	}
)

// Type returns struct type
func (s *StructType) Type() reflect.Type {
	return s.rType
}

// LookupStructType returns cached struct layout
func LookupStructType(rType reflect.Type) (*StructType, error) {
	if rType = ensureStruct(rType); rType == nil {
		return nil, fmt.Errorf("supplied type is not struct")
	}
	return structTypes.lookup(rType, newStructType)
}

func newStructType(rType reflect.Type) (*StructType, error) {
	marker, err := NewMarker(rType)
	if err != nil {
		return nil, err
	}
	ret := &StructType{rType: rType, marker: marker}
	holderIndex := -1
	if marker != nil {
		holderIndex = marker.HolderIndex()
	}
	for i := 0; i < rType.NumField(); i++ {
		field := rType.Field(i)
		if i == holderIndex {
			continue
		}
		if field.Anonymous && isStructOrStructPtr(field.Type) {
			ret.embedded = append(ret.embedded, xunsafe.NewField(field))
			continue
		}
		aTag, err := tags.Parse(field.Tag)
		if err != nil {
			return nil, fmt.Errorf("invalid %v.%v tag: %w", rType.String(), field.Name, err)
		}
		if aTag.Ignore {
			continue
		}
		ret.fields = append(ret.fields, &structField{
			xField:   xunsafe.NewField(field),
			name:     field.Name,
			exported: field.IsExported(),
			tag:      aTag,
		})
	}
	return ret, nil
}

// DescribeOwn returns struct field members
func (l *structLevel) DescribeOwn() []Member {
	ret := make([]Member, 0, len(l.sType.fields))
	for _, field := range l.sType.fields {
		descriptor := &DataDescriptor{
			Writable:   field.exported && l.addressable && !field.tag.ReadOnly,
			Enumerable: field.exported && !field.tag.Hidden,
		}
		if marker := l.sType.marker; marker != nil && !marker.IsSet(l.ptr, int(field.xField.Index)) {
			descriptor.Undefined = true
		} else {
			descriptor.Value = field.xField.Value(l.ptr)
		}
		ret = append(ret, Member{Name: l.memberName(field), Descriptor: descriptor})
	}
	return ret
}

func (l *structLevel) memberName(field *structField) string {
	if field.tag.Name != "" {
		return field.tag.Name
	}
	if l.caseFormat == "" || !field.exported {
		return field.name
	}
	if field.name == "ID" {
		switch l.caseFormat {
		case text.CaseFormatLower, text.CaseFormatLowerCamel, text.CaseFormatLowerUnderscore:
			return "id"
		}
	}
	src := text.DetectCaseFormat(field.name)
	if !src.IsDefined() {
		src = text.CaseFormatUpperCamel
	}
	return src.Format(field.name, l.caseFormat)
}

// structLevels returns inspected struct level followed by embedded struct levels, breadth first
func structLevels(sType *StructType, ptr unsafe.Pointer, addressable bool, caseFormat text.CaseFormat) ([]Describer, error) {
	type visit struct {
		rType reflect.Type
		ptr   unsafe.Pointer
	}
	visited := map[visit]bool{}
	queue := []*structLevel{{sType: sType, ptr: ptr, addressable: addressable, caseFormat: caseFormat}}
	var ret []Describer
	for len(queue) > 0 {
		level := queue[0]
		queue = queue[1:]
		key := visit{rType: level.sType.rType, ptr: level.ptr}
		if visited[key] {
			continue
		}
		visited[key] = true
		ret = append(ret, level)
		for _, field := range level.sType.embedded {
			embeddedType, err := LookupStructType(field.Type)
			if err != nil {
				return nil, err
			}
			next := &structLevel{sType: embeddedType, addressable: level.addressable, caseFormat: caseFormat}
			if field.Type.Kind() == reflect.Ptr {
				if field.IsNil(level.ptr) {
					continue
				}
				next.ptr = field.ValuePointer(level.ptr)
				next.addressable = true
			} else {
				next.ptr = field.Pointer(level.ptr)
			}
			queue = append(queue, next)
		}
	}
	return ret, nil
}

func isStructOrStructPtr(t reflect.Type) bool {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Kind() == reflect.Struct
}
