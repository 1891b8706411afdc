package address_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relaykit/srs/address"
)

func mustParse(t *testing.T, raw string) address.Addr {
	t.Helper()
	a, err := address.Parse(raw)
	require.NoError(t, err)
	return a
}

func TestParseSRS_SRS0(t *testing.T) {
	t.Parallel()

	s, err := address.ParseSRS(mustParse(t, "SRS0=jA9R=Y6=example.com=user@srs.forward.com"), '=')
	require.NoError(t, err)

	assert.Equal(t, address.SRS0, s.Format())
	assert.False(t, s.IsOpaque())
	assert.Equal(t, "jA9R", s.Hash())
	assert.Equal(t, "Y6", s.Timestamp())
	assert.Equal(t, "example.com", s.Hostname())
	assert.Equal(t, "user", s.LocalPart())
	assert.Equal(t, "srs.forward.com", s.Forwarder())
	assert.Equal(t, "=jA9R=Y6=example.com=user", s.OpaquePart())

	src, err := s.SourceAddr()
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", src.String())

	a, err := s.Addr()
	require.NoError(t, err)
	assert.Equal(t, "SRS0=jA9R=Y6=example.com=user@srs.forward.com", a.String())
}

func TestParseSRS_SRS0CaseAndSeparators(t *testing.T) {
	t.Parallel()

	// The keyword matches case-insensitively and any of the three
	// separators is accepted on input.
	for _, raw := range []string{
		"srs0=jA9R=Y6=example.com=user@srs.forward.com",
		"SRS0+jA9R=Y6=example.com=user@srs.forward.com",
		"SRS0-jA9R=Y6=example.com=user@srs.forward.com",
	} {
		s, err := address.ParseSRS(mustParse(t, raw), '=')
		require.NoError(t, err, raw)
		assert.Equal(t, address.SRS0, s.Format(), raw)
		assert.False(t, s.IsOpaque(), raw)
		assert.Equal(t, "user", s.LocalPart(), raw)
	}
}

func TestParseSRS_SRS0DecomposedNormalizesSeparator(t *testing.T) {
	t.Parallel()

	// A decomposed payload is recomposed under the configured separator;
	// only an opaque payload passes through verbatim.
	s, err := address.ParseSRS(mustParse(t, "SRS0+jA9R=Y6=example.com=user@srs.forward.com"), '=')
	require.NoError(t, err)
	assert.Equal(t, "=jA9R=Y6=example.com=user", s.OpaquePart())
}

func TestParseSRS_SRS0Opaque(t *testing.T) {
	t.Parallel()

	s, err := address.ParseSRS(mustParse(t, "SRS0+xx1@srs.example.com"), '=')
	require.NoError(t, err)

	assert.Equal(t, address.SRS0, s.Format())
	assert.True(t, s.IsOpaque())
	assert.Equal(t, "+xx1", s.OpaquePart())
	assert.Empty(t, s.Hash())

	_, err = s.SourceAddr()
	assert.ErrorIs(t, err, address.ErrInvalidAddress)

	// The opaque payload round-trips byte for byte, original separator
	// included.
	a, err := s.Addr()
	require.NoError(t, err)
	assert.Equal(t, "SRS0+xx1@srs.example.com", a.String())
}

func TestParseSRS_SRS1(t *testing.T) {
	t.Parallel()

	s, err := address.ParseSRS(mustParse(t, "SRS1=A1b5=srs.example.org==Pjzr=Y6=example.net=user@srs.forward.com"), '=')
	require.NoError(t, err)

	assert.Equal(t, address.SRS1, s.Format())
	assert.False(t, s.IsOpaque())
	assert.Equal(t, "A1b5", s.Hash())
	assert.Equal(t, "srs.example.org", s.OriginalForwarder())
	assert.Equal(t, "=Pjzr=Y6=example.net=user", s.OpaquePart())
	assert.Equal(t, "srs.forward.com", s.Forwarder())

	// Best-effort inner decomposition.
	assert.Equal(t, "Pjzr", s.OriginalHash())
	assert.Equal(t, "Y6", s.Timestamp())
	assert.Equal(t, "example.net", s.Hostname())
	assert.Equal(t, "user", s.LocalPart())

	src, err := s.SourceAddr()
	require.NoError(t, err)
	assert.Equal(t, "user@example.net", src.String())

	a, err := s.Addr()
	require.NoError(t, err)
	assert.Equal(t, "SRS1=A1b5=srs.example.org==Pjzr=Y6=example.net=user@srs.forward.com", a.String())
}

func TestParseSRS_SRS1OpaqueInner(t *testing.T) {
	t.Parallel()

	// An inner payload that does not decompose is tolerated for SRS1; the
	// sub-fields stay absent and the outer layer still works.
	s, err := address.ParseSRS(mustParse(t, "SRS1=A1No=srs.example.com=+xx1@srs.example.org"), '=')
	require.NoError(t, err)

	assert.Equal(t, address.SRS1, s.Format())
	assert.True(t, s.IsOpaque())
	assert.Equal(t, "A1No", s.Hash())
	assert.Equal(t, "srs.example.com", s.OriginalForwarder())
	assert.Equal(t, "+xx1", s.OpaquePart())
	assert.Empty(t, s.Timestamp())

	_, err = s.SourceAddr()
	assert.ErrorIs(t, err, address.ErrInvalidAddress)

	a, err := s.Addr()
	require.NoError(t, err)
	assert.Equal(t, "SRS1=A1No=srs.example.com=+xx1@srs.example.org", a.String())
}

func TestParseSRS_Invalid(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{
		"user@example.com",
		"bounces+SRS=44ldt=IX@example.com",
		"SRS0@example.com",
		"SRS1=X=thirddomain.com@otherdomain.com",
		"SRS1-@example.com",
		"srs2=jA9R=Y6=example.com=user@srs.forward.com",
	} {
		_, err := address.ParseSRS(mustParse(t, raw), '=')
		assert.ErrorIs(t, err, address.ErrInvalidAddress, raw)
	}
}

func TestNewSRS1_NeedsOpaquePart(t *testing.T) {
	t.Parallel()

	_, err := address.NewSRS1("A1b5", "srs.example.org", "", "srs.forward.com", '=')
	assert.ErrorIs(t, err, address.ErrInvalidState)
}

func TestSRS_String(t *testing.T) {
	t.Parallel()

	s := address.NewSRS0("jA9R", "Y6", "example.com", "user", "srs.forward.com", '+')
	assert.Equal(t, "SRS0+jA9R=Y6=example.com=user@srs.forward.com", s.String())
}
