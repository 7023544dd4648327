package rest

import (
	"fmt"
	"net/url"
)

// Environment identifies one of the fixed Basispoort deployment targets.
// Each environment maps to exactly one HTTPS base URL; every [Client] built
// for an environment issues all of its requests against that URL.
type Environment int

const (
	// Test is the environment used for partner development and testing.
	Test Environment = iota
	// Acceptance is the pre-production acceptance environment.
	Acceptance
	// Staging is the staging environment.
	Staging
	// Production is the live environment.
	Production
)

var environmentNames = map[Environment]string{
	Test:       "test",
	Acceptance: "acceptance",
	Staging:    "staging",
	Production: "production",
}

var baseURLs = map[Environment]string{
	Test:       "https://test-rest.basispoort.nl/",
	Acceptance: "https://acceptatie-rest.basispoort.nl/",
	Staging:    "https://staging-rest.basispoort.nl/",
	Production: "https://rest.basispoort.nl/",
}

// ParseEnvironment parses one of the exact lowercase tags "test",
// "acceptance", "staging" or "production". Any other input (including case
// variants) fails with an error wrapping [ErrInvalidEnvironment] that carries
// the offending string.
func ParseEnvironment(s string) (Environment, error) {
	switch s {
	case "test":
		return Test, nil
	case "acceptance":
		return Acceptance, nil
	case "staging":
		return Staging, nil
	case "production":
		return Production, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidEnvironment, s)
	}
}

// String returns the lowercase tag accepted by [ParseEnvironment].
func (e Environment) String() string {
	if name, ok := environmentNames[e]; ok {
		return name
	}
	return fmt.Sprintf("environment(%d)", int(e))
}

// UnmarshalText implements [encoding.TextUnmarshaler], so an Environment can
// be read directly from environment variables and config files.
func (e *Environment) UnmarshalText(text []byte) error {
	parsed, err := ParseEnvironment(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

// MarshalText implements [encoding.TextMarshaler].
func (e Environment) MarshalText() ([]byte, error) {
	name, ok := environmentNames[e]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrInvalidEnvironment, int(e))
	}
	return []byte(name), nil
}

// BaseURL returns the fixed base URL of the environment. The URL always ends
// in a slash so that relative service paths join beneath it predictably.
func (e Environment) BaseURL() *url.URL {
	raw, ok := baseURLs[e]
	if !ok {
		raw = baseURLs[Test]
	}
	// The table above is a compile-time constant set; parsing cannot fail.
	u, err := url.Parse(raw)
	if err != nil {
		panic(err)
	}
	return u
}
