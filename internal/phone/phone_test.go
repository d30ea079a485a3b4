package phone

import (
	"testing"

	"github.com/nyaruka/phonenumbers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWithRegionHint(t *testing.T) {
	d, err := Parse("4155552671", "US")
	require.NoError(t, err)

	assert.Equal(t, "+14155552671", d.E164)
	assert.Equal(t, "(415) 555-2671", d.National)
	assert.Equal(t, "US", d.Region)
	assert.True(t, d.Valid)
	assert.True(t, d.Possible)
}

func TestParseLowercaseRegionHint(t *testing.T) {
	d, err := Parse("4155552671", "us")
	require.NoError(t, err)
	assert.Equal(t, "US", d.Region)
}

func TestParseStrictRequiresPlusPrefix(t *testing.T) {
	_, err := ParseStrict("4155552671")
	assert.Error(t, err)
}

func TestParseStrictInternational(t *testing.T) {
	d, err := ParseStrict("+442071838750")
	require.NoError(t, err)

	assert.Equal(t, "GB", d.Region)
	assert.Equal(t, "+442071838750", d.E164)
	assert.True(t, d.Valid)
}

func TestParseGarbage(t *testing.T) {
	_, err := ParseStrict("+")
	assert.Error(t, err)

	_, err = Parse("notaphonenumber", "US")
	assert.Error(t, err)
}

// E.164 round-trip: parsing a well-formed E.164 string and re-formatting
// it to E.164 reproduces the input exactly.
func TestE164RoundTrip(t *testing.T) {
	for _, raw := range []string{
		"+14155552671",
		"+442071838750",
		"+4930123456",
		"+81312345678",
	} {
		d, err := ParseStrict(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, raw, d.E164, raw)
	}
}

func TestPossibleNumber(t *testing.T) {
	// Correct length/shape for the US plan.
	d, err := Parse("6502530000", "US")
	require.NoError(t, err)
	assert.True(t, d.Possible)
}

func TestTypeName(t *testing.T) {
	assert.Equal(t, "MOBILE", TypeName(phonenumbers.MOBILE))
	assert.Equal(t, "TOLL_FREE", TypeName(phonenumbers.TOLL_FREE))
	assert.Equal(t, "VOICEMAIL", TypeName(phonenumbers.VOICEMAIL))
	assert.Equal(t, "UNKNOWN", TypeName(phonenumbers.UNKNOWN))
	// Anything outside the known set maps to UNKNOWN instead of
	// leaking a zero value.
	assert.Equal(t, "UNKNOWN", TypeName(phonenumbers.PhoneNumberType(999)))
}
