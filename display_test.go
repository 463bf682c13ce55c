package propology

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplay(t *testing.T) {
	rule := strings.Repeat("─", 60)
	proto := NewObject("legs", 4)
	dog := NewObject("name", "Rex")
	require.Nil(t, dog.SetPrototype(proto))
	dog.Define("id", &DataDescriptor{Value: 7})
	dog.Define("bark", &AccessorDescriptor{Get: func() interface{} { return "woof" }, Enumerable: true})

	var testCases = []struct {
		description string
		subject     interface{}
		options     []Option
		expect      string
	}{
		{
			description: "empty object",
			subject:     NewObject(),
			expect:      NoProperties,
		},
		{
			description: "hidden only object",
			subject:     NewObject().Define("id", &DataDescriptor{Value: 1}),
			expect:      NoProperties,
		},
		{
			description: "default listing",
			subject:     NewObject("name", "Rex", "age", 3),
			expect:      "Properties:\n" + rule + "\n  name (string)\n  age (number)",
		},
		{
			description: "attributes",
			subject:     dog,
			options:     []Option{WithInherited(true), WithNonEnumerable(true)},
			expect: "Properties:\n" + rule +
				"\n  name (string)" +
				"\n  id (number) [non-enum, non-config, readonly]" +
				"\n  bark [non-config, getter]" +
				"\n  legs (number) [inherited]",
		},
		{
			description: "values",
			subject:     NewObject("name", "Rex", "tags", []interface{}{"a", 1, nil}, "fn", func() {}),
			options:     []Option{WithValues(true)},
			expect: "Properties:\n" + rule +
				"\n  name (string)\n    Value: \"Rex\"" +
				"\n  tags (object)\n    Value: [\"a\",1,null]" +
				"\n  fn (function)\n    Value: undefined",
		},
		{
			description: "no types",
			subject:     NewObject("name", "Rex"),
			options:     []Option{WithTypes(false), WithValues(true)},
			expect:      "Properties:\n" + rule + "\n  name\n    Value: \"Rex\"",
		},
		{
			description: "aligned",
			subject:     dog,
			options:     []Option{WithNonEnumerable(true), WithAlign(true)},
			expect: "Properties:\n" + rule +
				"\n  name (string)" +
				"\n  id (number)   [non-enum, non-config, readonly]" +
				"\n  bark          [non-config, getter]",
		},
	}

	for _, testCase := range testCases {
		actual, err := Display(testCase.subject, testCase.options...)
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
	}
}

func TestDisplay_Truncate(t *testing.T) {
	long := strings.Repeat("x", 78)
	actual, err := Display(NewObject("long", long), WithValues(true))
	require.Nil(t, err)
	lines := strings.Split(actual, "\n")
	require.Len(t, lines, 4)
	assert.EqualValues(t, "    Value: \""+strings.Repeat("x", 49)+"...", lines[3])

	exact := strings.Repeat("y", 48)
	actual, err = Display(NewObject("exact", exact), WithValues(true))
	require.Nil(t, err)
	assert.True(t, strings.HasSuffix(actual, "    Value: \""+exact+"\""))

	assert.EqualValues(t, "ab...", Truncate("abc", 2))
	assert.EqualValues(t, "żółw", Truncate("żółw", 4))
}

func TestDisplay_Color(t *testing.T) {
	actual, err := Display(NewObject("name", "Rex"), WithColor(true))
	require.Nil(t, err)
	assert.Contains(t, actual, "name")
	assert.Contains(t, actual, "string")
}

func TestDisplay_InvalidInput(t *testing.T) {
	_, err := Display("text")
	assert.True(t, IsInvalidInput(err))
}
