package propology

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupByType(t *testing.T) {
	subject := newTestObject()
	subject.Define("missing", Undefined())
	subject.Define("nickname", Value("tester"))

	actual, err := GroupByType(subject)
	require.Nil(t, err)
	assert.EqualValues(t, []string{TypeString, TypeNumber, TypeBoolean, TypeObject, TypeUnknown}, actual.Keys())

	expect := map[string][]string{
		TypeString:  {"name", "nickname"},
		TypeNumber:  {"age"},
		TypeBoolean: {"active"},
		TypeObject:  {"tags"},
		TypeUnknown: {"computed", "missing"},
	}
	for key, names := range expect {
		group, ok := actual.Get(key)
		assert.True(t, ok, key)
		assert.EqualValues(t, names, group, key)
	}
}

func TestGroupByType_IgnoresListingOptions(t *testing.T) {
	proto := NewObject("inherited", 1)
	subject := NewObject("own", "x")
	subject.Define("hidden", &DataDescriptor{Value: true})
	require.Nil(t, subject.SetPrototype(proto))

	actual, err := GroupByType(subject, WithInherited(true), WithNonEnumerable(true), WithTypes(false))
	require.Nil(t, err)
	assert.EqualValues(t, []string{TypeString}, actual.Keys())
}

func TestGroupByType_Struct(t *testing.T) {
	type Person struct {
		FirstName string
		LastName  string
		Age       int
	}
	actual, err := GroupByType(&Person{FirstName: "John", LastName: "Doe", Age: 30})
	require.Nil(t, err)
	names, _ := actual.Get(TypeString)
	assert.EqualValues(t, []string{"FirstName", "LastName"}, names)
	names, _ = actual.Get(TypeNumber)
	assert.EqualValues(t, []string{"Age"}, names)

	_, err = GroupByType(nil)
	assert.True(t, IsInvalidInput(err))
}

func TestTypeOf(t *testing.T) {
	var testCases = []struct {
		description string
		value       interface{}
		expect      string
	}{
		{description: "nil", value: nil, expect: TypeObject},
		{description: "string", value: "a", expect: TypeString},
		{description: "int", value: 1, expect: TypeNumber},
		{description: "uint", value: uint16(1), expect: TypeNumber},
		{description: "float", value: 1.5, expect: TypeNumber},
		{description: "complex", value: complex(1, 2), expect: TypeObject},
		{description: "bool", value: false, expect: TypeBoolean},
		{description: "big int", value: big.NewInt(1), expect: TypeBigInt},
		{description: "func", value: func() {}, expect: TypeFunction},
		{description: "slice", value: []int{1}, expect: TypeObject},
	}
	for _, testCase := range testCases {
		assert.EqualValues(t, testCase.expect, TypeOf(testCase.value), testCase.description)
	}
}
