// Package propology reports member metadata of structured values: visibility, mutability, accessors,
// declaring level, runtime type and value.
package propology

type (
	//Descriptor represents member descriptor, either DataDescriptor or AccessorDescriptor
	Descriptor interface {
		IsEnumerable() bool
		IsConfigurable() bool
		isDescriptor()
	}

	//DataDescriptor represents a member holding a direct value
	DataDescriptor struct {
		Value interface{}
		//Undefined flags a member that is present but holds no value, nil Value is a defined null
		Undefined    bool
		Writable     bool
		Enumerable   bool
		Configurable bool
	}

	//AccessorDescriptor represents a member backed by getter and/or setter functions
	AccessorDescriptor struct {
		Get          func() interface{}
		Set          func(value interface{})
		Enumerable   bool
		Configurable bool
	}

	//Member represents named descriptor
	Member struct {
		Name       string
		Descriptor Descriptor
	}
)

func (d *DataDescriptor) IsEnumerable() bool   { return d.Enumerable }
func (d *DataDescriptor) IsConfigurable() bool { return d.Configurable }
func (d *DataDescriptor) isDescriptor()        {}

// IsDefined returns true if descriptor holds a value
func (d *DataDescriptor) IsDefined() bool {
	return !d.Undefined
}

func (d *AccessorDescriptor) IsEnumerable() bool   { return d.Enumerable }
func (d *AccessorDescriptor) IsConfigurable() bool { return d.Configurable }
func (d *AccessorDescriptor) isDescriptor()        {}

// HasGetter returns true if getter was defined
func (d *AccessorDescriptor) HasGetter() bool {
	return d.Get != nil
}

// HasSetter returns true if setter was defined
func (d *AccessorDescriptor) HasSetter() bool {
	return d.Set != nil
}

// Value returns a plain, assignment style data descriptor
func Value(value interface{}) *DataDescriptor {
	return &DataDescriptor{Value: value, Writable: true, Enumerable: true, Configurable: true}
}

// Undefined returns a plain data descriptor without value
func Undefined() *DataDescriptor {
	return &DataDescriptor{Undefined: true, Writable: true, Enumerable: true, Configurable: true}
}

// Accessor returns enumerable, configurable accessor descriptor
func Accessor(get func() interface{}, set func(value interface{})) *AccessorDescriptor {
	return &AccessorDescriptor{Get: get, Set: set, Enumerable: true, Configurable: true}
}
