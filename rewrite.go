package srs

import (
	"fmt"

	"github.com/relaykit/srs/address"
)

// forwardSRS0 wraps a plain sender address in a fresh SRS0 layer under the
// given forwarder.
func (e *Engine) forwardSRS0(a address.Addr, forwarder string) (address.Addr, error) {
	ts := encodeTimestamp(e.today())
	h, err := e.computeHash(e.cfg.hashLength, ts, a.DomainPart(), a.LocalPart())
	if err != nil {
		return address.Addr{}, err
	}
	return address.NewSRS0(h, ts, a.DomainPart(), a.LocalPart(), forwarder, e.cfg.separator).Addr()
}

// reverseSRS0 unwraps an SRS0 address back to the plain sender. The hash is
// verified before the timestamp so that a forged hash learns nothing about
// timestamp validity.
func (e *Engine) reverseSRS0(a address.Addr) (address.Addr, error) {
	s, err := address.ParseSRS(a, e.cfg.separator)
	if err != nil {
		return address.Addr{}, err
	}
	if err := e.verifyHash(s); err != nil {
		return address.Addr{}, err
	}
	if err := e.checkTimestamp(s.Timestamp()); err != nil {
		return address.Addr{}, err
	}
	return s.SourceAddr()
}

// forwardSRS1 wraps an already rewritten address in a guard layer under the
// given forwarder. Re-wrapping an SRS1 keeps the recorded original forwarder
// and opaque payload and only swaps the outer forwarder, so the chain never
// grows past one recorded hop. The inner hash is not re-verified here;
// validation is deferred entirely to reverse.
func (e *Engine) forwardSRS1(s *address.SRS, forwarder string) (address.Addr, error) {
	var origForwarder string
	switch s.Format() {
	case address.SRS0:
		origForwarder = s.Forwarder()
	case address.SRS1:
		origForwarder = s.OriginalForwarder()
	default:
		return address.Addr{}, fmt.Errorf("%w: source must be an SRS0 or SRS1 address", ErrInvalidAddress)
	}

	h, err := e.computeHash(e.cfg.hashLength, origForwarder, s.OpaquePart())
	if err != nil {
		return address.Addr{}, err
	}
	ns, err := address.NewSRS1(h, origForwarder, s.OpaquePart(), forwarder, e.cfg.separator)
	if err != nil {
		return address.Addr{}, err
	}
	return ns.Addr()
}

// reverseSRS1 strips exactly one guard layer, re-emitting the SRS0 address
// the chain started from. The inner timestamp is only checked when the
// configuration asks for it and the payload decomposed far enough to
// surface one.
func (e *Engine) reverseSRS1(a address.Addr) (address.Addr, error) {
	s, err := address.ParseSRS(a, e.cfg.separator)
	if err != nil {
		return address.Addr{}, err
	}
	if err := e.verifyHash(s); err != nil {
		return address.Addr{}, err
	}
	if e.cfg.tryVerifySRS1Time && s.Timestamp() != "" {
		if err := e.checkTimestamp(s.Timestamp()); err != nil {
			return address.Addr{}, err
		}
	}
	return address.NewSRS0Opaque(s.OpaquePart(), s.OriginalForwarder(), e.cfg.separator).Addr()
}
