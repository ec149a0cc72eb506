package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileValidate(t *testing.T) {
	tests := []struct {
		name    string
		profile Profile
		wantErr bool
	}{
		{
			name:    "minimal valid profile",
			profile: Profile{Service: "Wi-Fi"},
			wantErr: false,
		},
		{
			name:    "default profile",
			profile: DefaultProfile(),
			wantErr: false,
		},
		{
			name:    "missing service",
			profile: Profile{},
			wantErr: true,
		},
		{
			name: "endpoint without port",
			profile: Profile{
				Service:  "Wi-Fi",
				WebProxy: &Endpoint{Host: "127.0.0.1"},
			},
			wantErr: true,
		},
		{
			name: "endpoint without host",
			profile: Profile{
				Service:    "Ethernet",
				SOCKSProxy: &Endpoint{Port: "1080"},
			},
			wantErr: true,
		},
		{
			name: "username without password",
			profile: Profile{
				Service:  "Wi-Fi",
				FTPProxy: &Endpoint{Host: "127.0.0.1", Port: "2121", Username: "user"},
			},
			wantErr: true,
		},
		{
			name: "full credentials",
			profile: Profile{
				Service:        "Wi-Fi",
				SecureWebProxy: &Endpoint{Host: "127.0.0.1", Port: "8443", Username: "user", Password: "secret"},
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.profile.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestProfileNetwork(t *testing.T) {
	p := Profile{Service: "Custom Service"}
	assert.Equal(t, "Custom Service", p.Network().String())
}

func TestEndpointAddress(t *testing.T) {
	ep := Endpoint{Host: "0.0.0.0", Port: "80"}
	addr := ep.Address()
	assert.Equal(t, "0.0.0.0", addr.Host)
	assert.Equal(t, "80", addr.Port)
}

func TestValidateConfig_NonValidator(t *testing.T) {
	type plain struct{ A string }
	require.NoError(t, ValidateConfig(&plain{}))
}
