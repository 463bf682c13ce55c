package propology

import "github.com/francoispqt/gojay"

// Counts represents own member statistics
type Counts struct {
	Total         int
	Enumerable    int
	NonEnumerable int
	Writable      int
	ReadOnly      int
	WithGetters   int
	WithSetters   int
}

// Count returns own member statistics including non enumerable members
func Count(subject interface{}, opts ...Option) (*Counts, error) {
	options := NewOptions(opts...)
	options.Apply(WithNonEnumerable(true), WithInherited(false))
	properties, err := options.list(subject)
	if err != nil {
		return nil, err
	}
	ret := &Counts{Total: len(properties)}
	for _, prop := range properties {
		if prop.Enumerable {
			ret.Enumerable++
		} else {
			ret.NonEnumerable++
		}
		if prop.IsWritable() {
			ret.Writable++
		}
		if prop.IsReadOnly() {
			ret.ReadOnly++
		}
		if prop.HasGetter {
			ret.WithGetters++
		}
		if prop.HasSetter {
			ret.WithSetters++
		}
	}
	return ret, nil
}

func (c *Counts) MarshalJSONObject(enc *gojay.Encoder) {
	enc.IntKey("total", c.Total)
	enc.IntKey("enumerable", c.Enumerable)
	enc.IntKey("nonEnumerable", c.NonEnumerable)
	enc.IntKey("writable", c.Writable)
	enc.IntKey("readonly", c.ReadOnly)
	enc.IntKey("withGetters", c.WithGetters)
	enc.IntKey("withSetters", c.WithSetters)
}

func (c *Counts) IsNil() bool {
	return c == nil
}
