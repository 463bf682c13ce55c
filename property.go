package propology

import "github.com/francoispqt/gojay"

type (
	//Property represents member metadata
	Property struct {
		Name         string
		Enumerable   bool
		Configurable bool
		//Writable is nil for accessor members
		Writable  *bool
		IsOwn     bool
		Type      string
		Value     interface{}
		HasValue  bool
		HasGetter bool
		HasSetter bool
	}

	//Properties represents ordered member metadata
	Properties []*Property
)

// IsWritable returns true if member value is writable
func (p *Property) IsWritable() bool {
	return p.Writable != nil && *p.Writable
}

// IsReadOnly returns true if data member is not writable, accessor members are never read-only
func (p *Property) IsReadOnly() bool {
	return p.Writable != nil && !*p.Writable
}

// MarshalJSONObject encodes property, absent fields are omitted
func (p *Property) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("name", p.Name)
	enc.BoolKey("enumerable", p.Enumerable)
	enc.BoolKey("configurable", p.Configurable)
	if p.Writable != nil {
		enc.BoolKey("writable", *p.Writable)
	}
	enc.BoolKey("isOwn", p.IsOwn)
	if p.Type != "" {
		enc.StringKey("type", p.Type)
	}
	if p.HasValue && !isFunction(p.Value) {
		encoder := &valueEncoder{options: NewOptions()}
		encoder.encodeKey(enc, "value", p.Value, 0)
	}
	if p.HasGetter {
		enc.BoolKey("hasGetter", true)
	}
	if p.HasSetter {
		enc.BoolKey("hasSetter", true)
	}
}

func (p *Property) IsNil() bool {
	return p == nil
}

// Names returns property names
func (p Properties) Names() []string {
	ret := make([]string, len(p))
	for i, prop := range p {
		ret[i] = prop.Name
	}
	return ret
}

// Lookup returns property by name
func (p Properties) Lookup(name string) *Property {
	for _, candidate := range p {
		if candidate.Name == name {
			return candidate
		}
	}
	return nil
}

// MarshalJSONArray encodes properties
func (p Properties) MarshalJSONArray(enc *gojay.Encoder) {
	for _, prop := range p {
		enc.Object(prop)
	}
}

func (p Properties) IsNil() bool {
	return p == nil
}

// MarshalJSON returns properties JSON
func (p Properties) MarshalJSON() ([]byte, error) {
	if p == nil {
		p = Properties{}
	}
	return gojay.MarshalJSONArray(p)
}
