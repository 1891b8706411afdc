// Package srs implements the Sender Rewriting Scheme, the reversible
// envelope-address transformation used by forwarding mail relays. A relay
// rewrites the return path of a forwarded message so bounces travel back
// through it, and can later recover the original sender from the rewritten
// address and verify that the address was produced by this system and not
// forged.
//
// Construct an Engine with a secret key, then call Forward when relaying a
// message out and Reverse when a bounce comes back:
//
//	engine, err := srs.New("aSecretKey")
//	if err != nil { ... }
//
//	wrapped, err := engine.Forward("user@example.com", "srs.forward.com")
//	// wrapped is SRS0=<hash>=<timestamp>=example.com=user@srs.forward.com
//
//	original, err := engine.Reverse(wrapped.String())
//	// original is user@example.com again
//
// Forwarding an address that is already rewritten grows a guard (SRS1)
// layer that records only the first forwarder, so chains stay bounded no
// matter how many relays a message crosses. Each Reverse undoes exactly one
// forward hop.
//
// All operations are pure functions of their inputs, the configuration and
// the clock. An Engine is immutable after New and safe for concurrent use.
package srs
