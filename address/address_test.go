package address_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relaykit/srs/address"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		raw        string
		wantLocal  string
		wantDomain string
		wantErr    bool
	}{
		{"plain", "user@example.com", "user", "example.com", false},
		{"trimmed", "   user@example.com \n", "user", "example.com", false},
		{"srs local part", "SRS0=jA9R=Y6=example.com=user@srs.forward.com", "SRS0=jA9R=Y6=example.com=user", "srs.forward.com", false},
		{"plus and equals", "bounces+SRS=44ldt=IX@example.com", "bounces+SRS=44ldt=IX", "example.com", false},
		{"no at", "user", "", "", true},
		{"empty", "", "", "", true},
		{"spaces only", "   ", "", "", true},
		{"bare at", "@", "", "", true},
		{"blank local", "@example.com", "", "", true},
		{"blank domain", "user@", "", "", true},
		{"two ats", "us@er@example.com", "", "", true},
		{"space in local", "us er@example.com", "", "", true},
		{"space in domain", "user@exam ple.com", "", "", true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a, err := address.Parse(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, address.ErrInvalidAddress)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLocal, a.LocalPart())
			assert.Equal(t, tt.wantDomain, a.DomainPart())
			assert.Equal(t, tt.wantLocal+"@"+tt.wantDomain, a.String())
		})
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	a, err := address.New("user", "example.com")
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", a.String())

	b, err := address.Parse("user@example.com")
	require.NoError(t, err)
	assert.Equal(t, a, b)

	for _, bad := range [][2]string{
		{"", "example.com"},
		{"user", ""},
		{"us@er", "example.com"},
		{"user", "exa@mple.com"},
		{"us er", "example.com"},
		{" user", "example.com"},
	} {
		_, err := address.New(bad[0], bad[1])
		assert.ErrorIs(t, err, address.ErrInvalidAddress, "New(%q, %q)", bad[0], bad[1])
	}
}
