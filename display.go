package propology

import (
	"strings"

	"github.com/gookit/color"
	"github.com/mattn/go-runewidth"
	"go.uber.org/zap"
)

const (
	//NoProperties is returned by Display for subject without listed members
	NoProperties = "No properties found."

	displayHeader    = "Properties:"
	displayRuleWidth = 60
	maxValueLength   = 50
	ellipsis         = "..."
	undefinedText    = "undefined"
)

// Display returns human readable member listing, values are rendered only when explicitly requested with WithValues(true)
func Display(subject interface{}, opts ...Option) (string, error) {
	options := NewOptions(opts...)
	properties, err := options.list(subject)
	if err != nil {
		return "", err
	}
	if len(properties) == 0 {
		return NoProperties, nil
	}
	heads := make([]string, len(properties))
	width := 0
	for i, prop := range properties {
		heads[i] = prop.Name
		if prop.Type != "" {
			heads[i] += " (" + prop.Type + ")"
		}
		if w := runewidth.StringWidth(heads[i]); w > width {
			width = w
		}
	}
	lines := []string{displayHeader, strings.Repeat("─", displayRuleWidth)}
	for i, prop := range properties {
		head := heads[i]
		attrs := Attributes(prop)
		if options.Align && len(attrs) > 0 {
			head = runewidth.FillRight(head, width)
		}
		if options.Color {
			head = colorizeHead(prop, head)
		}
		line := "  " + head
		if len(attrs) > 0 {
			list := "[" + strings.Join(attrs, ", ") + "]"
			if options.Color {
				list = color.Yellow.Sprint(list)
			}
			line += " " + list
		}
		if options.ValuesRequested() && prop.HasValue {
			line += "\n    Value: " + options.valueText(prop.Value)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n"), nil
}

// Attributes returns property attribute labels
func Attributes(prop *Property) []string {
	var ret []string
	if !prop.Enumerable {
		ret = append(ret, "non-enum")
	}
	if !prop.Configurable {
		ret = append(ret, "non-config")
	}
	if prop.IsReadOnly() {
		ret = append(ret, "readonly")
	}
	if prop.HasGetter {
		ret = append(ret, "getter")
	}
	if prop.HasSetter {
		ret = append(ret, "setter")
	}
	if !prop.IsOwn {
		ret = append(ret, "inherited")
	}
	return ret
}

func (o *Options) valueText(value interface{}) string {
	encoder := &valueEncoder{options: o}
	text, ok, err := encoder.stringify(value)
	if err != nil {
		o.Logger.Debug("failed to encode value", zap.Error(err))
	}
	if err != nil || !ok {
		return undefinedText
	}
	return Truncate(text, maxValueLength)
}

// Truncate truncates text to limit characters followed by ellipsis
func Truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + ellipsis
}

func colorizeHead(prop *Property, head string) string {
	name := head[:len(prop.Name)]
	rest := head[len(prop.Name):]
	return color.Cyan.Sprint(name) + color.Gray.Sprint(rest)
}
