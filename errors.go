package srs

import (
	"errors"

	"github.com/relaykit/srs/address"
)

// Errors returned by the engine. Test for them with errors.Is; every failure
// is wrapped with context but never downgraded to a default.
var (
	// ErrInvalidAddress is returned for malformed input: wrong "@" count,
	// blank parts, a blank or invalid forwarder, or a non-SRS address where
	// an SRS address was required. This is the address package sentinel, so
	// failures from either package compare equal.
	ErrInvalidAddress = address.ErrInvalidAddress

	// ErrInvalidHash is returned when the recomputed hash does not match
	// the hash claimed by an address, or the claimed hash is shorter than
	// the configured minimum. It is security relevant and never silently
	// accepted.
	ErrInvalidHash = errors.New("invalid hash in SRS address")

	// ErrInvalidTimestamp is returned when a decoded timestamp falls
	// outside the validity window, or cannot be decoded at all.
	ErrInvalidTimestamp = errors.New("invalid timestamp in SRS address")

	// ErrInvalidState is returned when an internal invariant is violated:
	// a blank secret key, a hash length beyond the digest, or a rewrite
	// result that fails its post-condition. It indicates a programming or
	// configuration defect, not user input.
	ErrInvalidState = address.ErrInvalidState
)
