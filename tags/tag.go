// Package tags parses prop struct tags controlling how a field is reported as a member.
package tags

import (
	"fmt"
	"reflect"
	"strings"
)

// TagName defines member tag name
const TagName = "prop"

// Tag represents prop tag
type Tag struct {
	//Name overrides member name
	Name     string
	ReadOnly bool
	Hidden   bool
	Ignore   bool
}

func (t *Tag) update(key, value string) error {
	switch strings.ToLower(key) {
	case "name":
		t.Name = value
	case "readonly":
		t.ReadOnly = isEnabled(value)
	case "hidden", "nonenumerable":
		t.Hidden = isEnabled(value)
	case "-", "ignore":
		t.Ignore = true
	default:
		return fmt.Errorf("unsupported %v tag key: %v", TagName, key)
	}
	return nil
}

func isEnabled(value string) bool {
	return value == "" || strings.EqualFold(value, "true")
}

// Parse parses prop tag
func Parse(tag reflect.StructTag) (*Tag, error) {
	ret := &Tag{}
	literal, ok := tag.Lookup(TagName)
	if !ok {
		return ret, nil
	}
	if literal == "-" {
		ret.Ignore = true
		return ret, nil
	}
	err := Values(literal).MatchPairs(ret.update)
	return ret, err
}
