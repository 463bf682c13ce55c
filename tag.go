package propology

import (
	"reflect"
	"strings"
)

const (
	//SetMarkerTag defines set marker tag
	SetMarkerTag = "setMarker"

	presenceMarkerTag = "presenceMarker"

	legacyMarkerTag = "presenceIndex"

	legacyTagFragment = "presence=true"
)

// IsSetMarker returns true if field holds presence marker
func IsSetMarker(tag reflect.StructTag) bool {
	for _, name := range []string{SetMarkerTag, presenceMarkerTag, legacyMarkerTag} {
		if _, ok := tag.Lookup(name); ok {
			return true
		}
	}
	return strings.Contains(string(tag), legacyTagFragment)
}
