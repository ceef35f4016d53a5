package nid

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryDecode(t *testing.T) {
	t.Run("dispatches by country selector", func(t *testing.T) {
		info, err := Decode(CountryAlbania, validAlbanianNID)
		require.NoError(t, err)
		assert.Equal(t, CountryAlbania, info.Country())
	})

	t.Run("unknown country", func(t *testing.T) {
		_, err := Decode(Country("narnia"), validAlbanianNID)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnknownCountry))

		// A selector error is not a code-validity error.
		var nidErr *Error
		assert.False(t, errors.As(err, &nidErr))
	})

	t.Run("validate-only country", func(t *testing.T) {
		_, err := Decode(CountryKosovo, validKosovoNID)
		assert.True(t, errors.Is(err, ErrDecodeNotSupported))
	})
}

func TestRegistryIsValid(t *testing.T) {
	assert.True(t, IsValid(CountryAlbania, validAlbanianNID))
	assert.True(t, IsValid(CountryKosovo, validKosovoNID))
	assert.False(t, IsValid(CountryAlbania, validKosovoNID))
	assert.False(t, IsValid(Country("narnia"), validAlbanianNID))
}

func TestLookup(t *testing.T) {
	t.Run("resolves selectors case-insensitively", func(t *testing.T) {
		m, ok := Lookup("Albania")
		require.True(t, ok)
		assert.Equal(t, CountryAlbania, m.Country())
		assert.True(t, m.CanDecode())

		m, ok = Lookup("kosovo")
		require.True(t, ok)
		assert.False(t, m.CanDecode())
	})

	t.Run("rejects unknown selectors", func(t *testing.T) {
		_, ok := Lookup("atlantis")
		assert.False(t, ok)
	})
}

func TestCountries(t *testing.T) {
	mods := Countries()
	require.Len(t, mods, 2)
	assert.Equal(t, CountryAlbania, mods[0].Country())
	assert.Equal(t, CountryKosovo, mods[1].Country())
}

func TestInfoString(t *testing.T) {
	info, err := Decode(CountryAlbania, validAlbanianNID)
	require.NoError(t, err)
	s := info.String()
	assert.Contains(t, s, "NidInfo")
	assert.Contains(t, s, "1990-01-01")
}

func TestErrorTaxonomy(t *testing.T) {
	t.Run("kinds are distinguishable", func(t *testing.T) {
		_, errFormat := Decode(CountryAlbania, "invalid")
		_, errChecksum := Decode(CountryAlbania, "J00101999A")
		_, errDate := Decode(CountryAlbania, makeAlbanianNID("J00230123"))

		assert.True(t, errors.Is(errFormat, ErrFormat))
		assert.False(t, errors.Is(errFormat, ErrChecksum))

		assert.True(t, errors.Is(errChecksum, ErrChecksum))
		assert.False(t, errors.Is(errChecksum, ErrInvalidDate))

		assert.True(t, errors.Is(errDate, ErrInvalidDate))
		assert.False(t, errors.Is(errDate, ErrFormat))
	})

	t.Run("all kinds share the invalid-input category", func(t *testing.T) {
		for _, code := range []string{"invalid", "J00101999A", makeAlbanianNID("J00230123")} {
			_, err := Decode(CountryAlbania, code)
			var nidErr *Error
			require.True(t, errors.As(err, &nidErr), "code %q", code)
			assert.NotEmpty(t, KindOf(err))
		}
	})

	t.Run("targets with a detail code match exactly", func(t *testing.T) {
		_, err := Decode(CountryAlbania, "")
		assert.True(t, errors.Is(err, &Error{Kind: KindFormat, Code: CodeInvalidLength}))
		assert.False(t, errors.Is(err, &Error{Kind: KindFormat, Code: CodeInvalidDecadeChar}))
	})

	t.Run("messages carry the kind", func(t *testing.T) {
		_, err := Decode(CountryAlbania, "")
		assert.Contains(t, err.Error(), "format")

		_, err = Decode(CountryAlbania, "J00101999A")
		assert.Contains(t, err.Error(), "checksum")
	})

	t.Run("KindOf on foreign errors is empty", func(t *testing.T) {
		assert.Equal(t, Kind(""), KindOf(errors.New("boom")))
		assert.Equal(t, Kind(""), KindOf(nil))
	})
}

func TestDateHelpers(t *testing.T) {
	assert.True(t, isLeapYear(2000))
	assert.True(t, isLeapYear(1996))
	assert.False(t, isLeapYear(1900))
	assert.False(t, isLeapYear(1990))

	assert.Equal(t, 31, daysInMonth(1990, 1))
	assert.Equal(t, 30, daysInMonth(1990, 4))
	assert.Equal(t, 28, daysInMonth(1990, 2))
	assert.Equal(t, 29, daysInMonth(2000, 2))
	assert.Equal(t, 0, daysInMonth(1990, 13))
}
