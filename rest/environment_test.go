package rest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnvironment_KnownTags(t *testing.T) {
	cases := map[string]Environment{
		"test":       Test,
		"acceptance": Acceptance,
		"staging":    Staging,
		"production": Production,
	}

	for tag, want := range cases {
		got, err := ParseEnvironment(tag)
		require.NoError(t, err, tag)
		assert.Equal(t, want, got, tag)
		assert.Equal(t, tag, got.String())
	}
}

func TestParseEnvironment_RejectsUnknownTags(t *testing.T) {
	for _, tag := range []string{"", "Test", "PRODUCTION", "prod", "local", " test"} {
		_, err := ParseEnvironment(tag)
		require.Error(t, err, tag)
		assert.ErrorIs(t, err, ErrInvalidEnvironment, tag)
		assert.Contains(t, err.Error(), tag)
	}
}

func TestEnvironment_BaseURL(t *testing.T) {
	cases := map[Environment]string{
		Test:       "https://test-rest.basispoort.nl/",
		Acceptance: "https://acceptatie-rest.basispoort.nl/",
		Staging:    "https://staging-rest.basispoort.nl/",
		Production: "https://rest.basispoort.nl/",
	}

	for env, want := range cases {
		assert.Equal(t, want, env.BaseURL().String(), env.String())
	}
}

func TestEnvironment_UnmarshalText(t *testing.T) {
	var env Environment
	require.NoError(t, env.UnmarshalText([]byte("acceptance")))
	assert.Equal(t, Acceptance, env)

	err := env.UnmarshalText([]byte("Acceptance"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidEnvironment)
	// A failed parse must not clobber the previous value.
	assert.Equal(t, Acceptance, env)
}

func TestEnvironment_MarshalText(t *testing.T) {
	text, err := Staging.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "staging", string(text))

	_, err = Environment(42).MarshalText()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidEnvironment)
}
