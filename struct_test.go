package propology

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/tagly/format/text"
	"reflect"
	"testing"
)

type (
	testAudit struct {
		Created string
		Updated string
	}

	testBase struct {
		*testAudit
		ID   int
		Kind string
	}

	testEntity struct {
		testBase
		ID       int
		Name     string
		Secret   string `prop:"hidden"`
		Version  int    `prop:"readonly"`
		Internal string `prop:"-"`
		Alias    string `prop:"name=nick"`
		note     string
	}

	testVisible struct {
		Code string
		Name string
	}

	testShadow struct {
		testVisible
		Code string `prop:"hidden"`
	}

	testPersonHas struct {
		FirstName bool
		LastName  bool
		Age       bool
	}

	testPerson struct {
		FirstName string
		LastName  string
		Age       int
		Has       *testPersonHas `setMarker:"true"`
	}
)

func TestList_Struct(t *testing.T) {
	entity := &testEntity{
		testBase: testBase{testAudit: &testAudit{Created: "now"}, ID: 1, Kind: "base"},
		ID:       2,
		Name:     "entity",
		Secret:   "s",
		Version:  3,
		Alias:    "al",
		note:     "n",
	}

	var testCases = []struct {
		description string
		subject     interface{}
		options     []Option
		expectNames []string
		expectOwn   []bool
	}{
		{
			description: "own exported members",
			subject:     entity,
			expectNames: []string{"ID", "Name", "Version", "nick"},
		},
		{
			description: "own members with hidden ones",
			subject:     entity,
			options:     []Option{WithNonEnumerable(true)},
			expectNames: []string{"ID", "Name", "Secret", "Version", "nick", "note"},
		},
		{
			description: "embedded structs as ancestors",
			subject:     entity,
			options:     []Option{WithInherited(true)},
			expectNames: []string{"ID", "Name", "Version", "nick", "Kind", "Created", "Updated"},
			expectOwn:   []bool{true, true, true, true, false, false, false},
		},
		{
			description: "nil embedded pointer is skipped",
			subject:     &testEntity{ID: 1},
			options:     []Option{WithInherited(true)},
			expectNames: []string{"ID", "Name", "Version", "nick", "Kind"},
		},
		{
			description: "own hidden field shadows embedded enumerable one",
			subject:     &testShadow{testVisible: testVisible{Code: "visible", Name: "n"}, Code: "hidden"},
			options:     []Option{WithInherited(true)},
			expectNames: []string{"Name"},
			expectOwn:   []bool{false},
		},
		{
			description: "own hidden field listed instead of embedded one",
			subject:     &testShadow{testVisible: testVisible{Code: "visible", Name: "n"}, Code: "hidden"},
			options:     []Option{WithInherited(true), WithNonEnumerable(true)},
			expectNames: []string{"Code", "Name"},
			expectOwn:   []bool{true, false},
		},
		{
			description: "case format",
			subject:     testPerson{FirstName: "John", LastName: "Doe", Age: 30},
			options:     []Option{WithCaseFormat(text.CaseFormatLowerCamel)},
			expectNames: []string{"firstName", "lastName", "age"},
		},
	}

	for _, testCase := range testCases {
		actual, err := List(testCase.subject, testCase.options...)
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.EqualValues(t, testCase.expectNames, actual.Names(), testCase.description)
		for i, isOwn := range testCase.expectOwn {
			assert.EqualValues(t, isOwn, actual[i].IsOwn, testCase.description+" "+actual[i].Name)
		}
	}
}

func TestList_StructAttributes(t *testing.T) {
	entity := &testEntity{ID: 2, Name: "entity", Version: 3}

	byPointer, err := List(entity, WithNonEnumerable(true))
	require.Nil(t, err)
	assert.True(t, byPointer.Lookup("Name").IsWritable())
	assert.True(t, byPointer.Lookup("Version").IsReadOnly())
	assert.True(t, byPointer.Lookup("note").IsReadOnly())
	assert.False(t, byPointer.Lookup("Name").Configurable)
	assert.EqualValues(t, 2, byPointer.Lookup("ID").Value)
	assert.EqualValues(t, TypeNumber, byPointer.Lookup("ID").Type)

	byValue, err := List(*entity)
	require.Nil(t, err)
	assert.True(t, byValue.Lookup("Name").IsReadOnly())
	assert.EqualValues(t, "entity", byValue.Lookup("Name").Value)
}

func TestList_StructMarker(t *testing.T) {
	person := &testPerson{FirstName: "John", Age: 0, Has: &testPersonHas{FirstName: true, Age: true}}
	actual, err := List(person)
	require.Nil(t, err)
	assert.EqualValues(t, []string{"FirstName", "LastName", "Age"}, actual.Names())

	firstName := actual.Lookup("FirstName")
	assert.True(t, firstName.HasValue)
	assert.EqualValues(t, TypeString, firstName.Type)

	lastName := actual.Lookup("LastName")
	assert.False(t, lastName.HasValue)
	assert.Empty(t, lastName.Type)

	age := actual.Lookup("Age")
	assert.True(t, age.HasValue)
	assert.EqualValues(t, 0, age.Value)

	withoutMarker, err := List(&testPerson{LastName: "Doe"})
	require.Nil(t, err)
	assert.True(t, withoutMarker.Lookup("LastName").HasValue)
}

func TestLookupStructType(t *testing.T) {
	first, err := LookupStructType(reflect.TypeOf(&testEntity{}))
	require.Nil(t, err)
	second, err := LookupStructType(reflect.TypeOf(testEntity{}))
	require.Nil(t, err)
	assert.Same(t, first, second)
	assert.EqualValues(t, reflect.TypeOf(testEntity{}), first.Type())

	_, err = LookupStructType(reflect.TypeOf(1))
	assert.NotNil(t, err)

	type badTag struct {
		Name string `prop:"unknown"`
	}
	_, err = LookupStructType(reflect.TypeOf(badTag{}))
	assert.NotNil(t, err)
	_, err = LookupStructType(reflect.TypeOf(badTag{}))
	assert.NotNil(t, err)
}
