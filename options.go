package srs

import (
	"time"

	"github.com/relaykit/srs/address"
)

// Defaults applied by New when no Option overrides them.
const (
	// DefaultLifetime is how long a rewritten address stays valid.
	DefaultLifetime = 30 * 24 * time.Hour

	// DefaultSeparator is the character placed after the "SRS0"/"SRS1"
	// keyword in addresses this engine creates.
	DefaultSeparator = address.DefaultSeparator

	// DefaultHashLength is how many characters of the keyed hash are kept
	// in created addresses.
	DefaultHashLength = 4

	// DefaultMinHashLength is the shortest claimed hash Reverse accepts.
	DefaultMinHashLength = 4
)

type config struct {
	lifetime              time.Duration
	separator             byte
	hashLength            int
	minHashLength         int
	alwaysRewrite         bool
	tryVerifySRS1Time     bool
	disableTimestampCheck bool
	now                   func() time.Time
}

func (c *config) clone() *config {
	cc := *c
	return &cc
}

var defaultConfig = &config{
	lifetime:      DefaultLifetime,
	separator:     DefaultSeparator,
	hashLength:    DefaultHashLength,
	minHashLength: DefaultMinHashLength,
	now:           time.Now,
}

// Option refers to settings that may be passed to New to modify how the
// engine rewrites addresses.
type Option func(*config)

// WithLifetime is an Option that sets how long a created timestamp stays
// valid. The minimum is one day; shorter durations are ignored and the
// previous value kept. The default is DefaultLifetime.
func WithLifetime(d time.Duration) Option {
	return func(c *config) {
		if d >= 24*time.Hour {
			c.lifetime = d
		}
	}
}

// WithSeparator is an Option that sets the character placed after the
// keyword in created addresses. Only '=', '+' and '-' are allowed; anything
// else falls back to DefaultSeparator. Decoding accepts all three
// separators regardless of this setting.
func WithSeparator(c byte) Option {
	return func(cfg *config) {
		if address.ValidSeparator(c) {
			cfg.separator = c
		} else {
			cfg.separator = DefaultSeparator
		}
	}
}

// WithHashLength is an Option that sets how many characters of the keyed
// hash are kept in created addresses. Values under 1 are ignored. A length
// beyond the full encoded digest surfaces as ErrInvalidState at rewrite
// time.
func WithHashLength(n int) Option {
	return func(c *config) {
		if n >= 1 {
			c.hashLength = n
		}
	}
}

// WithMinHashLength is an Option that sets the shortest claimed hash the
// engine will verify. Hashes below this length fail with ErrInvalidHash
// even when their content matches. Values under 1 are ignored.
func WithMinHashLength(n int) Option {
	return func(c *config) {
		if n >= 1 {
			c.minHashLength = n
		}
	}
}

// AlwaysRewrite is an Option that makes Forward rewrite even when the
// forwarder equals the address's current domain. By default such mail is
// returned unchanged because it never leaves the domain.
func AlwaysRewrite() Option {
	return func(c *config) {
		c.alwaysRewrite = true
	}
}

// TryVerifySRS1Timestamp is an Option that makes Reverse also validate the
// inner timestamp of an SRS1 address when the payload decomposed far enough
// to surface one. The scheme does not require this and the default is off;
// an undecodable payload is still tolerated.
func TryVerifySRS1Timestamp() Option {
	return func(c *config) {
		c.tryVerifySRS1Time = true
	}
}

// DisableTimestampCheck is an Option that turns off timestamp validation
// entirely. Meant for testing; leaving this on in production removes the
// replay bound on rewritten addresses.
func DisableTimestampCheck() Option {
	return func(c *config) {
		c.disableTimestampCheck = true
	}
}

// WithNow is an Option that replaces the clock used to create and validate
// timestamps. Use this to pin "now" in tests. A nil func is ignored.
func WithNow(now func() time.Time) Option {
	return func(c *config) {
		if now != nil {
			c.now = now
		}
	}
}
