package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "profile.yaml")

	content := `
service: Wi-Fi
web_proxy:
  host: 127.0.0.1
  port: "8080"
dns_servers: [1.1.1.1, 8.8.8.8]
bypass_domains: []
`
	err := os.WriteFile(configFile, []byte(content), 0644)
	require.NoError(t, err)

	var p Profile
	err = Load(configFile, &p)
	require.NoError(t, err)

	assert.Equal(t, "Wi-Fi", p.Service)
	require.NotNil(t, p.WebProxy)
	assert.Equal(t, "127.0.0.1", p.WebProxy.Host)
	assert.Equal(t, "8080", p.WebProxy.Port)
	require.NotNil(t, p.DNSServers)
	assert.Equal(t, []string{"1.1.1.1", "8.8.8.8"}, *p.DNSServers)
	require.NotNil(t, p.BypassDomains)
	assert.Empty(t, *p.BypassDomains)
	assert.Nil(t, p.SOCKSProxy)
}

func TestLoad_ExpandsEnv(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "profile.yaml")
	t.Setenv("NETSETUP_TEST_SERVICE", "Thunderbolt Bridge")

	content := "service: ${NETSETUP_TEST_SERVICE}\n"
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0644))

	var p Profile
	require.NoError(t, Load(configFile, &p))
	assert.Equal(t, "Thunderbolt Bridge", p.Service)
}

func TestLoad_MissingFile(t *testing.T) {
	var p Profile
	err := Load(filepath.Join(t.TempDir(), "nope.yaml"), &p)
	assert.Error(t, err)
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "sub", "profile.yaml")

	p := DefaultProfile()
	require.NoError(t, Save(configFile, &p))

	// Profiles may carry credentials, so files are private.
	info, err := os.Stat(configFile)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	var loaded Profile
	require.NoError(t, Load(configFile, &loaded))
	assert.Equal(t, p.Service, loaded.Service)
	require.NotNil(t, loaded.WebProxy)
	assert.Equal(t, p.WebProxy.Host, loaded.WebProxy.Host)
}

func TestLoadAndValidate(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "profile.yaml")

	content := `
web_proxy:
  host: 127.0.0.1
  port: "8080"
`
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0644))

	var p Profile
	err := LoadAndValidate(configFile, &p)
	assert.ErrorIs(t, err, ErrNoService)
}
