package srs

import (
	"fmt"
	"strings"
	"time"
)

// timestampAlphabet is the 32-symbol encoding of a 5-bit group, per the SRS
// draft. Two characters carry the epoch-day count mod 1024, high bits first.
const timestampAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"

const secondsPerDay = 24 * 60 * 60

// encodeTimestamp emits the two-character code for the day containing t.
func encodeTimestamp(t time.Time) string {
	d := t.Unix() / secondsPerDay
	return string([]byte{
		timestampAlphabet[(d>>5)&0x1f],
		timestampAlphabet[d&0x1f],
	})
}

// today returns the current UTC midnight according to the engine's clock.
func (e *Engine) today() time.Time {
	now := e.cfg.now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// decodeTimestamp reconstructs the UTC midnight a two-character code was
// encoded on. Only 10 bits travel in the address, so the decoded day offset
// is anchored to the start of the current 1024-day period: the most recent
// midnight whose epoch-day count is a multiple of 1024, relative to the
// engine's clock. That recovers dates up to ~1023 days back as long as the
// configured lifetime stays well inside the period; an offset beyond today
// decodes to a future date and is left to the validity window to reject.
func (e *Engine) decodeTimestamp(ts string) (time.Time, error) {
	if len(ts) != 2 {
		return time.Time{}, fmt.Errorf("%w: timestamp must have 2 characters", ErrInvalidTimestamp)
	}
	hi := strings.IndexByte(timestampAlphabet, ts[0])
	lo := strings.IndexByte(timestampAlphabet, ts[1])
	if hi < 0 || lo < 0 {
		return time.Time{}, fmt.Errorf("%w: timestamp %q is not base32", ErrInvalidTimestamp, ts)
	}
	offset := hi<<5 | lo

	today := e.today()
	periodStart := today.AddDate(0, 0, -int(today.Unix()/secondsPerDay%1024))
	return periodStart.AddDate(0, 0, offset), nil
}

// checkTimestamp decodes ts and verifies it falls inside the validity
// window: from lifetime days ago through tomorrow, inclusive. The extra day
// on each side absorbs clock skew and timezone rounding between the
// encoding and decoding hosts.
func (e *Engine) checkTimestamp(ts string) error {
	if e.cfg.disableTimestampCheck {
		return nil
	}

	t, err := e.decodeTimestamp(ts)
	if err != nil {
		return err
	}

	today := e.today()
	windowStart := today.Add(-(e.cfg.lifetime + 24*time.Hour))
	if t.After(windowStart) && t.Before(today.AddDate(0, 0, 2)) {
		return nil
	}
	return fmt.Errorf("%w: timestamp %q is outside the validity window", ErrInvalidTimestamp, ts)
}
