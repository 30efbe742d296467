package isxn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	assert.Equal(t, []string{"0-12345-678-9"}, Clean([]string{"0-12345-678-9 (paper)"}))
	assert.Equal(t, []string{"9780142437247"}, Clean([]string{"9780142437247"}))
	assert.Equal(t, []string{"978-0-14-243724-7"}, Clean([]string{"978-0-14-243724-7 (pbk.)"}))
	assert.Equal(t, []string{"0040-781X"}, Clean([]string{"0040-781X ;"}))
	assert.Equal(t, []string{"1234-5678", "0040-781X"}, Clean([]string{"1234-5678 (print)", "0040-781X (online)"}))

	// Punctuation-free tokens pass through unchanged.
	assert.Equal(t, []string{"0306406152"}, Clean([]string{"0306406152"}))

	// Garbage in, empty token out, never an error.
	assert.Equal(t, []string{""}, Clean([]string{"(invalid)"}))

	// Absent input is nil, not an empty slice.
	assert.Nil(t, Clean(nil))
	assert.Nil(t, Clean([]string{}))
}

func TestTo13(t *testing.T) {
	assert.Equal(t, "9780306406157", To13("0306406152"))
	assert.Equal(t, "9780140449112", To13("0140449116"))
	assert.Equal(t, "9780201616224", To13("020161622X"))
	assert.Equal(t, "", To13(""))
	assert.Equal(t, "", To13("123"))
	assert.Equal(t, "", To13("abcdefghij"))
}

func TestTo10(t *testing.T) {
	assert.Equal(t, "0306406152", To10("9780306406157"))
	assert.Equal(t, "0140449116", To10("9780140449112"))
	assert.Equal(t, "020161622X", To10("9780201616224"))
	assert.Equal(t, "", To10(""))
	assert.Equal(t, "", To10("123"))
	assert.Equal(t, "", To10("9790000000000"))
	assert.Equal(t, "", To10("978abcdefghi"))
}

func TestRoundTrip(t *testing.T) {
	assert.Equal(t, "0306406152", To10(To13("0306406152")))
	assert.Equal(t, "020161622X", To10(To13("020161622X")))
}
