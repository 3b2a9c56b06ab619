package wstrust

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDialect_Trust13(t *testing.T) {
	d, err := ResolveDialect(Trust13)
	require.NoError(t, err)

	// All four constants belong to the 200512 family.
	for _, uri := range []string{d.SOAPAction, d.TrustNamespace, d.KeyType, d.RequestType} {
		assert.True(t, strings.HasPrefix(uri, "http://docs.oasis-open.org/ws-sx/ws-trust/200512"),
			"constant outside 200512 family: %s", uri)
	}

	// The issuing service is intolerant of the canonical trailing-slash
	// form of the trust namespace.
	assert.False(t, strings.HasSuffix(d.TrustNamespace, "/"))
	assert.True(t, strings.HasSuffix(d.KeyType, "Bearer"))
	assert.True(t, strings.HasSuffix(d.RequestType, "Issue"))
}

func TestResolveDialect_Trust2005(t *testing.T) {
	d, err := ResolveDialect(Trust2005)
	require.NoError(t, err)

	for _, uri := range []string{d.SOAPAction, d.TrustNamespace, d.KeyType, d.RequestType} {
		assert.True(t, strings.HasPrefix(uri, "http://schemas.xmlsoap.org/ws/2005/"),
			"constant outside 2005 family: %s", uri)
		assert.NotContains(t, uri, "200512")
	}

	assert.True(t, strings.HasSuffix(d.KeyType, "NoProofKey"))
}

func TestResolveDialect_Unknown(t *testing.T) {
	_, err := ResolveDialect(TrustVersion(99))
	assert.ErrorIs(t, err, ErrUnsupportedTrustVersion)
}

func TestParseVersion(t *testing.T) {
	tests := []struct {
		input   string
		want    TrustVersion
		wantErr bool
	}{
		{"1.3", Trust13, false},
		{"2005", Trust2005, false},
		{"", 0, true},
		{"1.4", 0, true},
		{"13", 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseVersion(tc.input)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedTrustVersion)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTrustVersionString(t *testing.T) {
	assert.Equal(t, "1.3", Trust13.String())
	assert.Equal(t, "2005", Trust2005.String())
}
