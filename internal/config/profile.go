package config

import (
	"errors"
	"fmt"

	"github.com/rennerdo30/netsetup/internal/logging"
	"github.com/rennerdo30/netsetup/networksetup"
)

// Profile validation errors.
var (
	ErrNoService = errors.New("profile has no network service")
)

// Endpoint is a proxy endpoint in a profile. Host and port must be
// supplied together; the credential pair is optional.
type Endpoint struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	Username string `yaml:"username,omitempty"`
	Password string `yaml:"password,omitempty"`
}

// Address converts the endpoint to a library address.
func (e *Endpoint) Address() networksetup.Address {
	addr := networksetup.NewAddress(e.Host, e.Port)
	if e.Username != "" || e.Password != "" {
		addr = addr.WithAuth(e.Username, e.Password)
	}
	return addr
}

// Validate checks the host/port and credential pairing invariants.
func (e *Endpoint) Validate() error {
	if e.Host == "" || e.Port == "" {
		return fmt.Errorf("host and port must be supplied together, got host=%q port=%q", e.Host, e.Port)
	}
	if (e.Username == "") != (e.Password == "") {
		return fmt.Errorf("username and password must be supplied together")
	}
	return nil
}

// Profile describes the desired proxy, DNS and bypass configuration of one
// network service. Omitted settings are left untouched when the profile is
// applied; an explicitly empty list clears the setting.
type Profile struct {
	// Service is the network service display name, e.g. "Wi-Fi".
	Service string `yaml:"service"`

	AutoProxyDiscovery *bool     `yaml:"auto_proxy_discovery,omitempty"`
	AutoProxyURL       string    `yaml:"auto_proxy_url,omitempty"`
	WebProxy           *Endpoint `yaml:"web_proxy,omitempty"`
	SecureWebProxy     *Endpoint `yaml:"secure_web_proxy,omitempty"`
	FTPProxy           *Endpoint `yaml:"ftp_proxy,omitempty"`
	SOCKSProxy         *Endpoint `yaml:"socks_proxy,omitempty"`
	DNSServers         *[]string `yaml:"dns_servers,omitempty"`
	BypassDomains      *[]string `yaml:"bypass_domains,omitempty"`

	Logging logging.Config `yaml:"logging,omitempty"`
}

// DefaultProfile returns a starter profile for `netsetup profile init`.
func DefaultProfile() Profile {
	dns := []string{"1.1.1.1", "8.8.8.8"}
	bypass := []string{"*.local", "169.254/16"}
	return Profile{
		Service:       "Wi-Fi",
		WebProxy:      &Endpoint{Host: "127.0.0.1", Port: "8080"},
		DNSServers:    &dns,
		BypassDomains: &bypass,
		Logging:       logging.DefaultConfig(),
	}
}

// Network returns the profile's service as a library selector. The name is
// passed through unmodified.
func (p *Profile) Network() networksetup.Network {
	return networksetup.Name(p.Service)
}

// Validate checks the profile. Hostnames, URLs and service names are not
// validated here; networksetup rejects those itself.
func (p *Profile) Validate() error {
	if p.Service == "" {
		return ErrNoService
	}
	endpoints := map[string]*Endpoint{
		"web_proxy":        p.WebProxy,
		"secure_web_proxy": p.SecureWebProxy,
		"ftp_proxy":        p.FTPProxy,
		"socks_proxy":      p.SOCKSProxy,
	}
	for name, ep := range endpoints {
		if ep == nil {
			continue
		}
		if err := ep.Validate(); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}
