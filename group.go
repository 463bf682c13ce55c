package propology

import "github.com/elliotchance/orderedmap/v2"

// GroupByType returns member names grouped by type in first occurrence order, members without type are grouped as unknown.
// Listing uses default inheritance and visibility settings, opts can only carry naming and logging settings.
func GroupByType(subject interface{}, opts ...Option) (*orderedmap.OrderedMap[string, []string], error) {
	options := NewOptions(opts...)
	options.Apply(WithTypes(true), WithValues(false), WithInherited(false), WithNonEnumerable(false))
	properties, err := options.list(subject)
	if err != nil {
		return nil, err
	}
	ret := orderedmap.NewOrderedMap[string, []string]()
	for _, prop := range properties {
		key := prop.Type
		if key == "" {
			key = TypeUnknown
		}
		names, _ := ret.Get(key)
		ret.Set(key, append(names, prop.Name))
	}
	return ret, nil
}
