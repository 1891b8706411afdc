package address

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

var (
	// ErrInvalidAddress is returned when an address or one of its parts is
	// blank, contains whitespace, or does not have exactly one "@".
	ErrInvalidAddress = errors.New("invalid address")

	// ErrInvalidState is returned when an internal invariant is violated,
	// such as serializing an SRS1 address that has no opaque part. It
	// indicates a programming or configuration defect, not bad user input.
	ErrInvalidState = errors.New("invalid internal state")
)

// Addr is an immutable email address. The zero value is not a valid address;
// use New or Parse to construct one.
type Addr struct {
	local  string
	domain string
}

// New builds an Addr from an already split local part and domain part. Both
// parts must be non-blank and contain no "@" and no whitespace.
func New(local, domain string) (Addr, error) {
	if !validPart(local) || !validPart(domain) {
		return Addr{}, fmt.Errorf("%w: parts must be non-blank with no \"@\" or whitespace", ErrInvalidAddress)
	}
	return Addr{local: local, domain: domain}, nil
}

// Parse splits a raw address string into an Addr. Leading and trailing
// whitespace is trimmed first; the remainder must contain exactly one "@" at
// a position that yields two non-blank parts.
func Parse(raw string) (Addr, error) {
	raw = strings.TrimSpace(raw)
	at := strings.IndexByte(raw, '@')
	if at < 0 {
		return Addr{}, fmt.Errorf("%w: address must contain \"@\"", ErrInvalidAddress)
	}
	return New(raw[:at], raw[at+1:])
}

func validPart(s string) bool {
	if s == "" {
		return false
	}
	if strings.IndexByte(s, '@') >= 0 {
		return false
	}
	return strings.IndexFunc(s, unicode.IsSpace) < 0
}

// LocalPart returns the part of the address before the "@".
func (a Addr) LocalPart() string {
	return a.local
}

// DomainPart returns the part of the address after the "@".
func (a Addr) DomainPart() string {
	return a.domain
}

// String returns the full address.
func (a Addr) String() string {
	return a.local + "@" + a.domain
}
