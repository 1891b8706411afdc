package address

import (
	"fmt"
	"regexp"
	"strings"
)

// Format tags the two SRS address shapes.
type Format int

const (
	// SRS0 is the single-hop wrap of a plain sender address.
	SRS0 Format = iota

	// SRS1 is the guard layer wrapping an existing SRS0 or SRS1 address.
	SRS1
)

// DefaultSeparator is the character placed after the "SRS0"/"SRS1" keyword
// when no other separator is configured.
const DefaultSeparator byte = '='

// ValidSeparator reports whether c is one of the three separator characters
// the scheme allows after the keyword.
func ValidSeparator(c byte) bool {
	return c == '=' || c == '+' || c == '-'
}

// The keyword and its separator match case-insensitively on decode. The
// opaque payload is any non-"@" run; the single-"@" invariant of Addr makes
// the trailing "@" split unambiguous.
var (
	srs0Pattern = regexp.MustCompile(`(?i)^srs0([=+-][^@]+)@(.*)$`)
	srs1Pattern = regexp.MustCompile(`(?i)^srs1[=+-]([^=]+)=([^=]+)=([^@]+)@(.*)$`)

	// A well-formed opaque payload decomposes into hash, timestamp,
	// hostname and local part behind the leading separator. The local part
	// may itself contain "=".
	opaquePattern = regexp.MustCompile(`^[=+-]([^=]+)=([^=]+)=([^=]+)=([^@]+)$`)
)

// SRS is the structured form of an SRS0 or SRS1 address.
//
// The opaque part always carries its leading separator character, so that a
// payload produced by a foreign host under a different separator passes
// through byte for byte. When the payload does not decompose into the
// expected anatomy the sub-fields stay blank and IsOpaque reports true; for
// SRS0 that blocks verification, for SRS1 it is tolerated because the outer
// layer never needs the inner fields to operate.
type SRS struct {
	format    Format
	sep       byte
	forwarder string
	opaque    string

	hash      string
	timestamp string
	hostname  string
	localPart string

	// SRS1 only.
	origForwarder string
	origHash      string
}

// NewSRS0 builds a well-formed SRS0 address from its decomposed fields. The
// opaque payload is composed from the fields under the given separator.
func NewSRS0(hash, timestamp, hostname, localPart, forwarder string, sep byte) *SRS {
	return &SRS{
		format:    SRS0,
		sep:       sep,
		forwarder: forwarder,
		opaque:    string(sep) + hash + "=" + timestamp + "=" + hostname + "=" + localPart,
		hash:      hash,
		timestamp: timestamp,
		hostname:  hostname,
		localPart: localPart,
	}
}

// NewSRS0Opaque builds an SRS0 address around an indivisible payload. The
// payload must include its leading separator character.
func NewSRS0Opaque(opaque, forwarder string, sep byte) *SRS {
	return &SRS{
		format:    SRS0,
		sep:       sep,
		forwarder: forwarder,
		opaque:    opaque,
	}
}

// NewSRS1 builds an SRS1 guard layer. The opaque payload must be present; an
// SRS1 without one cannot be serialized and is a programmer error.
func NewSRS1(hash, originalForwarder, opaque, forwarder string, sep byte) (*SRS, error) {
	if opaque == "" {
		return nil, fmt.Errorf("%w: SRS1 address needs an opaque part", ErrInvalidState)
	}
	return &SRS{
		format:        SRS1,
		sep:           sep,
		forwarder:     forwarder,
		opaque:        opaque,
		hash:          hash,
		origForwarder: originalForwarder,
	}, nil
}

// ParseSRS parses an address into its structured SRS form. The SRS0 shape is
// tried first, then SRS1; an address matching neither fails with
// ErrInvalidAddress. The given separator is used when the result is later
// serialized; it does not restrict what separators are accepted on input.
func ParseSRS(a Addr, sep byte) (*SRS, error) {
	if !ValidSeparator(sep) {
		sep = DefaultSeparator
	}

	if m := srs0Pattern.FindStringSubmatch(a.String()); m != nil {
		opaque, forwarder := m[1], m[2]
		if strings.TrimSpace(opaque) == "" || strings.TrimSpace(forwarder) == "" {
			return nil, fmt.Errorf("%w: blank SRS0 payload or forwarder", ErrInvalidAddress)
		}
		if im := opaquePattern.FindStringSubmatch(opaque); im != nil {
			return NewSRS0(im[1], im[2], im[3], im[4], forwarder, sep), nil
		}
		return NewSRS0Opaque(opaque, forwarder, sep), nil
	}

	if m := srs1Pattern.FindStringSubmatch(a.String()); m != nil {
		hash, origForwarder, opaque, forwarder := m[1], m[2], m[3], m[4]
		if strings.TrimSpace(hash) == "" || strings.TrimSpace(origForwarder) == "" ||
			strings.TrimSpace(opaque) == "" || strings.TrimSpace(forwarder) == "" {
			return nil, fmt.Errorf("%w: blank SRS1 field", ErrInvalidAddress)
		}
		s := &SRS{
			format:        SRS1,
			sep:           sep,
			forwarder:     forwarder,
			opaque:        opaque,
			hash:          hash,
			origForwarder: origForwarder,
		}
		// Best effort only. A payload from a foreign or database-backed
		// SRS0 host will not decompose, and that is fine.
		if im := opaquePattern.FindStringSubmatch(opaque); im != nil {
			s.origHash, s.timestamp, s.hostname, s.localPart = im[1], im[2], im[3], im[4]
		}
		return s, nil
	}

	return nil, fmt.Errorf("%w: not an SRS address", ErrInvalidAddress)
}

// Format returns the tag identifying the address shape.
func (s *SRS) Format() Format {
	return s.format
}

// Separator returns the separator character the address serializes with.
func (s *SRS) Separator() byte {
	return s.sep
}

// Forwarder returns the domain the address is currently wrapped under.
func (s *SRS) Forwarder() string {
	return s.forwarder
}

// OpaquePart returns the inner payload, including its leading separator.
func (s *SRS) OpaquePart() string {
	return s.opaque
}

// Hash returns the outer hash. Blank for an opaque SRS0.
func (s *SRS) Hash() string {
	return s.hash
}

// Timestamp returns the decomposed timestamp, if any.
func (s *SRS) Timestamp() string {
	return s.timestamp
}

// Hostname returns the decomposed original domain, if any.
func (s *SRS) Hostname() string {
	return s.hostname
}

// LocalPart returns the decomposed original local part, if any.
func (s *SRS) LocalPart() string {
	return s.localPart
}

// OriginalForwarder returns the first forwarder recorded in an SRS1 chain.
// Blank for SRS0.
func (s *SRS) OriginalForwarder() string {
	return s.origForwarder
}

// OriginalHash returns the inner hash decomposed from an SRS1 payload, if
// any. Blank for SRS0.
func (s *SRS) OriginalHash() string {
	return s.origHash
}

// IsOpaque reports whether the inner payload failed to decompose. An opaque
// payload did not originate from this grammar and must be passed through as
// an indivisible blob.
func (s *SRS) IsOpaque() bool {
	switch s.format {
	case SRS0:
		return s.hash == "" && s.timestamp == "" && s.hostname == "" && s.localPart == ""
	case SRS1:
		return s.origHash == "" && s.timestamp == "" && s.hostname == "" && s.localPart == ""
	}
	return true
}

// SourceAddr returns the innermost plain sender address. It fails with
// ErrInvalidAddress when the payload is opaque, since there is nothing to
// recover from.
func (s *SRS) SourceAddr() (Addr, error) {
	if s.IsOpaque() {
		return Addr{}, fmt.Errorf("%w: opaque payload has no recoverable sender", ErrInvalidAddress)
	}
	return New(s.localPart, s.hostname)
}

// Addr serializes the structured address back into an Addr.
func (s *SRS) Addr() (Addr, error) {
	switch s.format {
	case SRS0:
		return New("SRS0"+s.opaque, s.forwarder)
	case SRS1:
		if s.opaque == "" {
			return Addr{}, fmt.Errorf("%w: SRS1 address needs an opaque part", ErrInvalidState)
		}
		return New("SRS1"+string(s.sep)+s.hash+"="+s.origForwarder+"="+s.opaque, s.forwarder)
	}
	return Addr{}, fmt.Errorf("%w: unknown SRS format", ErrInvalidState)
}

// String renders the serialized address, or an empty string if the address
// cannot be serialized. Meant for diagnostics; use Addr for real output.
func (s *SRS) String() string {
	a, err := s.Addr()
	if err != nil {
		return ""
	}
	return a.String()
}
