package propology

import (
	"fmt"
	"github.com/elliotchance/orderedmap/v2"
)

// Object represents explicit member table with optional prototype
type Object struct {
	members   *orderedmap.OrderedMap[string, Descriptor]
	prototype *Object
}

// NewObject creates an object with plain data members in supplied key/value pair order
func NewObject(pairs ...interface{}) *Object {
	ret := &Object{members: orderedmap.NewOrderedMap[string, Descriptor]()}
	for i := 0; i+1 < len(pairs); i += 2 {
		ret.members.Set(fmt.Sprint(pairs[i]), Value(pairs[i+1]))
	}
	return ret
}

// Define defines or redefines a member, redefinition keeps member position
func (o *Object) Define(name string, descriptor Descriptor) *Object {
	if descriptor == nil {
		return o
	}
	o.members.Set(name, descriptor)
	return o
}

// Lookup returns own member descriptor
func (o *Object) Lookup(name string) (Descriptor, bool) {
	return o.members.Get(name)
}

// Len returns own member count
func (o *Object) Len() int {
	return o.members.Len()
}

// Set assigns member value, assignment honours inherited setters and read-only members
func (o *Object) Set(name string, value interface{}) error {
	if descriptor, ok := o.members.Get(name); ok {
		return assign(o, name, descriptor, value)
	}
	for proto := o.prototype; proto != nil; proto = proto.prototype {
		if descriptor, ok := proto.members.Get(name); ok {
			if accessor, ok := descriptor.(*AccessorDescriptor); ok {
				return assign(o, name, accessor, value)
			}
			if data := descriptor.(*DataDescriptor); !data.Writable {
				return fmt.Errorf("failed to set %v: inherited member is read-only", name)
			}
			break
		}
	}
	o.members.Set(name, Value(value))
	return nil
}

func assign(o *Object, name string, descriptor Descriptor, value interface{}) error {
	switch actual := descriptor.(type) {
	case *AccessorDescriptor:
		if !actual.HasSetter() {
			return fmt.Errorf("failed to set %v: accessor has no setter", name)
		}
		actual.Set(value)
		return nil
	case *DataDescriptor:
		if !actual.Writable {
			return fmt.Errorf("failed to set %v: member is read-only", name)
		}
		updated := *actual
		updated.Value = value
		updated.Undefined = false
		o.members.Set(name, &updated)
	}
	return nil
}

// Get returns member value walking prototype chain, getters are invoked
func (o *Object) Get(name string) (interface{}, bool) {
	for level := o; level != nil; level = level.prototype {
		descriptor, ok := level.members.Get(name)
		if !ok {
			continue
		}
		switch actual := descriptor.(type) {
		case *AccessorDescriptor:
			if !actual.HasGetter() {
				return nil, false
			}
			return actual.Get(), true
		case *DataDescriptor:
			return actual.Value, actual.IsDefined()
		}
	}
	return nil, false
}

// Delete removes configurable own member
func (o *Object) Delete(name string) bool {
	descriptor, ok := o.members.Get(name)
	if !ok {
		return true
	}
	if !descriptor.IsConfigurable() {
		return false
	}
	return o.members.Delete(name)
}

// Prototype returns object prototype
func (o *Object) Prototype() *Object {
	return o.prototype
}

// SetPrototype sets object prototype, nil clears it
func (o *Object) SetPrototype(prototype *Object) error {
	for candidate := prototype; candidate != nil; candidate = candidate.prototype {
		if candidate == o {
			return fmt.Errorf("cyclic prototype chain")
		}
	}
	o.prototype = prototype
	return nil
}

// DescribeOwn returns own members in definition order
func (o *Object) DescribeOwn() []Member {
	ret := make([]Member, 0, o.members.Len())
	for el := o.members.Front(); el != nil; el = el.Next() {
		ret = append(ret, Member{Name: el.Key, Descriptor: el.Value})
	}
	return ret
}

// Ancestors returns prototype chain, nearest first
func (o *Object) Ancestors() []Describer {
	var ret []Describer
	for proto := o.prototype; proto != nil; proto = proto.prototype {
		ret = append(ret, proto)
	}
	return ret
}
