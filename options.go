package propology

import (
	"github.com/viant/tagly/format/text"
	"go.uber.org/zap"
)

type (
	//Options represents listing options
	Options struct {
		IncludeInherited     bool
		IncludeNonEnumerable bool
		ShowTypes            bool
		ShowValues           bool
		CaseFormat           text.CaseFormat
		Color                bool
		Align                bool
		Logger               *zap.Logger

		setShowValues bool
	}

	//Option represents listing option
	Option func(o *Options)
)

// NewOptions creates options with defaults
func NewOptions(opts ...Option) *Options {
	ret := &Options{ShowTypes: true, ShowValues: true}
	ret.Apply(opts...)
	if ret.Logger == nil {
		ret.Logger = zap.NewNop()
	}
	return ret
}

// Apply applies options
func (o *Options) Apply(opts ...Option) {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(o)
	}
}

// ValuesRequested returns true if values were explicitly requested
func (o *Options) ValuesRequested() bool {
	return o.setShowValues && o.ShowValues
}

// WithInherited walks ancestor levels
func WithInherited(flag bool) Option {
	return func(o *Options) {
		o.IncludeInherited = flag
	}
}

// WithNonEnumerable includes hidden members
func WithNonEnumerable(flag bool) Option {
	return func(o *Options) {
		o.IncludeNonEnumerable = flag
	}
}

// WithTypes populates member type
func WithTypes(flag bool) Option {
	return func(o *Options) {
		o.ShowTypes = flag
	}
}

// WithValues populates member value
func WithValues(flag bool) Option {
	return func(o *Options) {
		o.ShowValues = flag
		o.setShowValues = true
	}
}

// WithCaseFormat formats reflected struct field names, i.e. text.CaseFormatLowerCamel
func WithCaseFormat(caseFormat text.CaseFormat) Option {
	return func(o *Options) {
		o.CaseFormat = caseFormat
	}
}

// WithColor colorizes text output
func WithColor(flag bool) Option {
	return func(o *Options) {
		o.Color = flag
	}
}

// WithAlign aligns text output columns
func WithAlign(flag bool) Option {
	return func(o *Options) {
		o.Align = flag
	}
}

// WithLogger sets debug logger
func WithLogger(logger *zap.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}
