package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DisplayNote/azure-activedirectory-library-for-dotnet/pkg/wstrust"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fedcred.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Full(t *testing.T) {
	path := writeConfig(t, `
authority:
  endpoint: https://sts.contoso.com/adfs/services/trust/13/usernamemixed
  trustVersion: "1.3"
  audience: urn:federation:Contoso
  username: alice@contoso.com
transport:
  timeout: 10s
  minTLSVersion: "1.3"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "alice@contoso.com", cfg.Authority.Username)
	assert.Equal(t, "urn:federation:Contoso", cfg.Authority.Audience)
	assert.Equal(t, 10*time.Second, cfg.Transport.Timeout)

	endpoint := cfg.Endpoint()
	assert.Equal(t, wstrust.Trust13, endpoint.Version)
	assert.Equal(t, "https://sts.contoso.com/adfs/services/trust/13/usernamemixed", endpoint.URI)
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
authority:
  endpoint: https://sts.contoso.com/adfs/services/trust/13/usernamemixed
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "1.3", cfg.Authority.TrustVersion)
	assert.Equal(t, 30*time.Second, cfg.Transport.Timeout)
	assert.Equal(t, "1.2", cfg.Transport.MinTLSVersion)
}

func TestLoad_EnvExpansion(t *testing.T) {
	t.Setenv("FEDCRED_TEST_USERNAME", "bob@contoso.com")
	path := writeConfig(t, `
authority:
  endpoint: https://sts.contoso.com/adfs/services/trust/2005/usernamemixed
  trustVersion: "2005"
  username: ${FEDCRED_TEST_USERNAME}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "bob@contoso.com", cfg.Authority.Username)
	assert.Equal(t, wstrust.Trust2005, cfg.Endpoint().Version)
}

func TestLoad_MissingEndpoint(t *testing.T) {
	path := writeConfig(t, `
authority:
  username: alice@contoso.com
`)

	_, err := Load(path)
	assert.ErrorContains(t, err, "authority.endpoint is required")
}

func TestLoad_MalformedEndpoint(t *testing.T) {
	tests := []struct {
		name     string
		endpoint string
	}{
		{"no scheme", "sts.contoso.com/adfs"},
		{"http scheme", "http://sts.contoso.com/adfs"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeConfig(t, "authority:\n  endpoint: "+tc.endpoint+"\n")
			_, err := Load(path)
			assert.ErrorIs(t, err, wstrust.ErrMalformedEndpoint)
		})
	}
}

func TestLoad_UnsupportedTrustVersion(t *testing.T) {
	path := writeConfig(t, `
authority:
  endpoint: https://sts.contoso.com/adfs/services/trust/13/usernamemixed
  trustVersion: "1.4"
`)

	_, err := Load(path)
	assert.ErrorIs(t, err, wstrust.ErrUnsupportedTrustVersion)
}

func TestLoad_BadTLSVersion(t *testing.T) {
	path := writeConfig(t, `
authority:
  endpoint: https://sts.contoso.com/adfs/services/trust/13/usernamemixed
transport:
  minTLSVersion: "1.1"
`)

	_, err := Load(path)
	assert.ErrorContains(t, err, "minTLSVersion")
}
