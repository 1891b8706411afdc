package srs

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/relaykit/srs/address"
)

// Classification of incoming addresses. The keyword and separator match
// case-insensitively; the full grammar check happens in address.ParseSRS.
var (
	srs0Prefix = regexp.MustCompile(`(?i)^srs0[=+-]`)
	srs1Prefix = regexp.MustCompile(`(?i)^srs1[=+-]`)
	srsPrefix  = regexp.MustCompile(`(?i)^srs[01][=+-]`)
)

// Engine rewrites and recovers envelope sender addresses. It holds the
// secret key and configuration, is immutable after New, and may be shared
// across concurrent callers.
type Engine struct {
	secret []byte
	cfg    *config
}

// New builds an Engine from a secret key and options. The secret must not be
// blank; it keys the hash that makes rewritten addresses verifiable.
func New(secret string, opts ...Option) (*Engine, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, fmt.Errorf("%w: secret key must not be blank", ErrInvalidState)
	}

	cfg := defaultConfig.clone()
	for _, opt := range opts {
		opt(cfg)
	}

	return &Engine{
		secret: []byte(secret),
		cfg:    cfg,
	}, nil
}

// Forward rewrites an address on behalf of the given forwarder domain. A
// plain address is wrapped in an SRS0; an address that is already rewritten
// grows an SRS1 guard layer. When the forwarder equals the address's current
// domain the address is returned unchanged, unless the engine was built with
// AlwaysRewrite.
func (e *Engine) Forward(addr, forwarder string) (address.Addr, error) {
	fwd, err := cleanForwarder(forwarder)
	if err != nil {
		return address.Addr{}, err
	}
	a, err := address.Parse(addr)
	if err != nil {
		return address.Addr{}, err
	}
	return e.rewriteForward(a, fwd, false)
}

// ForwardShortcut rewrites like Forward but forces the shortcut scheme: an
// already rewritten source is decomposed back to its inner sender and
// wrapped in a fresh SRS0 instead of growing an SRS1 chain. The source must
// decompose; an opaque payload fails with ErrInvalidAddress because there is
// nothing to re-derive from. Prefer Forward unless you know the whole relay
// chain trusts this host's key.
func (e *Engine) ForwardShortcut(addr, forwarder string) (address.Addr, error) {
	fwd, err := cleanForwarder(forwarder)
	if err != nil {
		return address.Addr{}, err
	}
	a, err := address.Parse(addr)
	if err != nil {
		return address.Addr{}, err
	}
	return e.rewriteForward(a, fwd, true)
}

// Reverse undoes exactly one forward hop. An SRS0 address yields the
// original plain sender after hash and timestamp verification; an SRS1
// address yields the SRS0 address it wrapped after hash verification. A
// non-SRS address fails with ErrInvalidAddress.
func (e *Engine) Reverse(addr string) (address.Addr, error) {
	a, err := address.Parse(addr)
	if err != nil {
		return address.Addr{}, err
	}

	switch {
	case srs0Prefix.MatchString(a.LocalPart()):
		result, err := e.reverseSRS0(a)
		if err != nil {
			return address.Addr{}, err
		}
		if srsPrefix.MatchString(result.String()) {
			return address.Addr{}, fmt.Errorf("%w: reversed address %q is still an SRS address",
				ErrInvalidState, result)
		}
		return result, nil

	case srs1Prefix.MatchString(a.LocalPart()):
		return e.reverseSRS1(a)

	default:
		return address.Addr{}, fmt.Errorf("%w: not an SRS address", ErrInvalidAddress)
	}
}

// AsSourceAddress extracts the innermost sender from an SRS address without
// verifying anything. It needs no key or configuration; only addresses that
// match the grammar and decompose fully succeed, everything else fails with
// ErrInvalidAddress.
func AsSourceAddress(addr string) (address.Addr, error) {
	a, err := address.Parse(addr)
	if err != nil {
		return address.Addr{}, err
	}
	s, err := address.ParseSRS(a, address.DefaultSeparator)
	if err != nil {
		return address.Addr{}, err
	}
	return s.SourceAddr()
}

// rewriteForward is the single forward path; the shortcut flag only changes
// the output format for an already rewritten source.
func (e *Engine) rewriteForward(a address.Addr, forwarder string, shortcut bool) (address.Addr, error) {
	// Mail that does not leave the domain needs no rewrite.
	if strings.EqualFold(forwarder, a.DomainPart()) && !e.cfg.alwaysRewrite {
		return a, nil
	}

	var (
		result address.Addr
		err    error
	)
	if srsPrefix.MatchString(a.String()) {
		s, perr := address.ParseSRS(a, e.cfg.separator)
		if perr != nil {
			return address.Addr{}, perr
		}
		if shortcut {
			src, serr := s.SourceAddr()
			if serr != nil {
				return address.Addr{}, fmt.Errorf("%w: shortcut scheme needs a decomposable SRS source",
					ErrInvalidAddress)
			}
			result, err = e.forwardSRS0(src, forwarder)
		} else {
			result, err = e.forwardSRS1(s, forwarder)
		}
	} else {
		result, err = e.forwardSRS0(a, forwarder)
	}
	if err != nil {
		return address.Addr{}, err
	}

	if !srsPrefix.MatchString(result.String()) {
		return address.Addr{}, fmt.Errorf("%w: rewrite produced non-SRS address %q", ErrInvalidState, result)
	}
	return result, nil
}

func cleanForwarder(forwarder string) (string, error) {
	forwarder = strings.TrimSpace(forwarder)
	if forwarder == "" || strings.IndexByte(forwarder, '@') >= 0 {
		return "", fmt.Errorf("%w: invalid forwarder domain", ErrInvalidAddress)
	}
	return forwarder, nil
}
