package propology

import (
	"fmt"

	"github.com/spf13/viper"
	"github.com/viant/tagly/format/text"
)

// Config represents listing configuration
type Config struct {
	IncludeInherited     bool   `mapstructure:"includeInherited" yaml:"includeInherited"`
	IncludeNonEnumerable bool   `mapstructure:"includeNonEnumerable" yaml:"includeNonEnumerable"`
	ShowTypes            bool   `mapstructure:"showTypes" yaml:"showTypes"`
	ShowValues           *bool  `mapstructure:"showValues" yaml:"showValues"`
	CaseFormat           string `mapstructure:"caseFormat" yaml:"caseFormat"`
	Color                bool   `mapstructure:"color" yaml:"color"`
	Align                bool   `mapstructure:"align" yaml:"align"`
}

// LoadConfig loads configuration from viper, key selects nested section, empty key uses root
func LoadConfig(v *viper.Viper, key string) (*Config, error) {
	if key != "" {
		if v = v.Sub(key); v == nil {
			v = viper.New()
		}
	}
	v.SetDefault("showTypes", true)
	ret := &Config{}
	if err := v.Unmarshal(ret); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if ret.CaseFormat != "" && !text.NewCaseFormat(ret.CaseFormat).IsDefined() {
		return nil, fmt.Errorf("unsupported caseFormat: %v", ret.CaseFormat)
	}
	return ret, nil
}

// Options returns config options
func (c *Config) Options() []Option {
	ret := []Option{
		WithInherited(c.IncludeInherited),
		WithNonEnumerable(c.IncludeNonEnumerable),
		WithTypes(c.ShowTypes),
		WithColor(c.Color),
		WithAlign(c.Align),
	}
	if c.ShowValues != nil {
		ret = append(ret, WithValues(*c.ShowValues))
	}
	if c.CaseFormat != "" {
		ret = append(ret, WithCaseFormat(text.NewCaseFormat(c.CaseFormat)))
	}
	return ret
}
