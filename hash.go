package srs

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/relaykit/srs/address"
)

// computeHash keys an HMAC-SHA1 over the lower-cased concatenation of the
// given fields and returns the first length characters of the base64 encoded
// digest. The create path passes the configured hash length; the verify path
// passes the length of the claimed hash, which keeps verification tolerant
// of peers configured with a different output length.
func (e *Engine) computeHash(length int, fields ...string) (string, error) {
	if len(e.secret) == 0 {
		return "", fmt.Errorf("%w: secret key is not set", ErrInvalidState)
	}

	mac := hmac.New(sha1.New, e.secret)
	mac.Write([]byte(strings.ToLower(strings.Join(fields, ""))))
	digest := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	if length > len(digest) {
		return "", fmt.Errorf("%w: hash length %d exceeds the %d characters available",
			ErrInvalidState, length, len(digest))
	}
	return digest[:length], nil
}

// verifyHash recomputes the hash over the same fields the creator used and
// compares it with the claimed hash. A claimed hash shorter than the
// configured minimum fails regardless of content. An opaque SRS0 cannot be
// verified at all and fails with ErrInvalidAddress.
func (e *Engine) verifyHash(s *address.SRS) error {
	var (
		computed string
		err      error
	)
	switch {
	case s.Format() == address.SRS1:
		computed, err = e.computeHash(len(s.Hash()), s.OriginalForwarder(), s.OpaquePart())
	case s.Format() == address.SRS0 && !s.IsOpaque():
		computed, err = e.computeHash(len(s.Hash()), s.Timestamp(), s.Hostname(), s.LocalPart())
	default:
		return fmt.Errorf("%w: opaque payload cannot be verified", ErrInvalidAddress)
	}
	if err != nil {
		return err
	}

	if len(computed) < e.cfg.minHashLength || computed != s.Hash() {
		return fmt.Errorf("%w: claimed hash %q", ErrInvalidHash, s.Hash())
	}
	return nil
}
