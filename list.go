package propology

import "go.uber.org/zap"

// List returns subject member metadata, own members first followed by inherited ones when requested
func List(subject interface{}, opts ...Option) (Properties, error) {
	return NewOptions(opts...).list(subject)
}

func (o *Options) list(subject interface{}) (Properties, error) {
	levels, err := o.levels(subject)
	if err != nil {
		o.Logger.Debug("failed to resolve subject", zap.Error(err))
		return nil, err
	}
	if !o.IncludeInherited {
		levels = levels[:1]
	}
	var ret Properties
	seen := map[string]bool{}
	for depth, level := range levels {
		members := level.DescribeOwn()
		o.Logger.Debug("describing level", zap.Int("depth", depth), zap.Int("members", len(members)))
		for _, member := range members {
			if member.Descriptor == nil || seen[member.Name] {
				continue
			}
			seen[member.Name] = true
			if !o.IncludeNonEnumerable && !member.Descriptor.IsEnumerable() {
				continue
			}
			ret = append(ret, o.property(member, depth == 0))
		}
	}
	return ret, nil
}

func (o *Options) property(member Member, isOwn bool) *Property {
	ret := &Property{
		Name:         member.Name,
		Enumerable:   member.Descriptor.IsEnumerable(),
		Configurable: member.Descriptor.IsConfigurable(),
		IsOwn:        isOwn,
	}
	switch actual := member.Descriptor.(type) {
	case *DataDescriptor:
		writable := actual.Writable
		ret.Writable = &writable
		if !actual.IsDefined() {
			break
		}
		if o.ShowTypes {
			ret.Type = TypeOf(actual.Value)
		}
		if o.ShowValues {
			ret.Value = actual.Value
			ret.HasValue = true
		}
	case *AccessorDescriptor:
		ret.HasGetter = actual.HasGetter()
		ret.HasSetter = actual.HasSetter()
	}
	return ret
}
