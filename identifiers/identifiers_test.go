package identifiers

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testURI = "https://example.org/Id/test-number"

var errOdd = errors.New("odd number of characters")

func init() {
	Register("Test number", testURI)
	RegisterValidator(testURI, func(value string) error {
		if len(value)%2 != 0 {
			return errOdd
		}
		return nil
	})
	RegisterFormatter(testURI, strings.ToUpper)
}

func TestBuiltInSystems(t *testing.T) {
	s, ok := Lookup(NHSNumber)
	require.True(t, ok)
	assert.Equal(t, "NHS number", s.Name)
	assert.Equal(t, NHSNumber, s.URI)
	_, ok = Lookup("https://example.org/unknown")
	assert.False(t, ok)
	systems := Systems()
	assert.Contains(t, systems, SNOMEDCT)
	assert.Contains(t, systems, testURI)
	assert.IsIncreasing(t, systems)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(Identifier{System: testURI, Value: "ab"}))
	assert.ErrorIs(t, Validate(Identifier{System: testURI, Value: "abc"}), errOdd)
	err := Validate(Identifier{System: ODSCode, Value: "7A4"})
	assert.ErrorIs(t, err, ErrNoValidator)
	assert.Contains(t, Validators(), testURI)
	assert.NotContains(t, Validators(), ODSCode)
}

func TestFormat(t *testing.T) {
	s, err := Format(Identifier{System: testURI, Value: "abc"})
	require.NoError(t, err)
	assert.Equal(t, "ABC", s)
	_, err = Format(Identifier{System: GMCNumber, Value: "1234567"})
	assert.ErrorIs(t, err, ErrNoFormatter)
}

func TestDuplicateRegistration(t *testing.T) {
	assert.Panics(t, func() {
		RegisterValidator(testURI, func(string) error { return nil })
	})
	assert.Panics(t, func() {
		RegisterFormatter(testURI, strings.ToLower)
	})
}
