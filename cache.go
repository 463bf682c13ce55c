package propology

import (
	"reflect"
	"sync"
)

// structTypeCache keeps struct layouts keyed by struct type
type structTypeCache struct {
	types map[reflect.Type]*StructType
	mux   sync.RWMutex
}

// lookup returns cached layout or the one created by build, the first stored layout wins
func (c *structTypeCache) lookup(rType reflect.Type, build func(rType reflect.Type) (*StructType, error)) (*StructType, error) {
	c.mux.RLock()
	ret, ok := c.types[rType]
	c.mux.RUnlock()
	if ok {
		return ret, nil
	}
	created, err := build(rType)
	if err != nil {
		return nil, err
	}
	c.mux.Lock()
	defer c.mux.Unlock()
	if ret, ok = c.types[rType]; ok {
		return ret, nil
	}
	c.types[rType] = created
	return created, nil
}

func newStructTypeCache() *structTypeCache {
	return &structTypeCache{types: make(map[reflect.Type]*StructType)}
}
