// Package address provides the value types the SRS engine operates on: a
// plain email address split into its local part and domain part, and the
// structured form of an SRS0 or SRS1 rewritten address.
//
// The grammar implemented here is deliberately shallow. An address is a
// single "@" splitting two non-blank, whitespace-free parts; nothing more of
// RFC 5321/5322 is enforced, because an SRS local part legally contains
// characters (runs of "=", "+" and "-") that a strict mailbox parser would
// mangle and the rewriting scheme must round-trip verbatim.
package address
