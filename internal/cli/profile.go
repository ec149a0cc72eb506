package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rennerdo30/netsetup/internal/config"
	"github.com/rennerdo30/netsetup/internal/logging"
	"github.com/rennerdo30/netsetup/networksetup"
)

func newProfileCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage profile files",
	}

	var output string
	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				if _, err := os.Stat(output); err == nil {
					return fmt.Errorf("%s already exists, use --force to overwrite", output)
				}
			}
			p := config.DefaultProfile()
			if err := config.Save(output, &p); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", output)
			return nil
		},
	}
	initCmd.Flags().StringVarP(&output, "output", "o", "profile.yaml", "output file path")
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	cmd.AddCommand(initCmd)
	return cmd
}

func newApplyCommand(a *app) *cobra.Command {
	var configFile string
	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply a profile to its network service",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProfile(configFile)
			if err != nil {
				return err
			}
			return applyProfile(cmd.Context(), a.client(), p)
		},
	}
	cmd.Flags().StringVarP(&configFile, "config", "c", "profile.yaml", "profile file path")
	return cmd
}

func newClearCommand(a *app) *cobra.Command {
	var configFile string
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Turn off every setting a profile configures",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProfile(configFile)
			if err != nil {
				return err
			}
			return clearProfile(cmd.Context(), a.client(), p)
		},
	}
	cmd.Flags().StringVarP(&configFile, "config", "c", "profile.yaml", "profile file path")
	return cmd
}

func newValidateCommand(a *app) *cobra.Command {
	var configFile string
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a profile file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := loadProfile(configFile); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is valid\n", configFile)
			return nil
		},
	}
	cmd.Flags().StringVarP(&configFile, "config", "c", "profile.yaml", "profile file path")
	return cmd
}

func loadProfile(path string) (*config.Profile, error) {
	var p config.Profile
	if err := config.LoadAndValidate(path, &p); err != nil {
		return nil, err
	}
	if p.Logging != (logging.Config{}) {
		if err := logging.Setup(p.Logging); err != nil {
			return nil, err
		}
	}
	return &p, nil
}

// applyProfile walks the profile's categories in a fixed order. Settings
// the profile omits are not touched; explicit empty lists clear.
func applyProfile(ctx context.Context, c *networksetup.Client, p *config.Profile) error {
	network := p.Network()

	if p.AutoProxyDiscovery != nil {
		if err := toErr(c.AutoProxyDiscovery(ctx, network, *p.AutoProxyDiscovery)); err != nil {
			return fmt.Errorf("auto proxy discovery: %w", err)
		}
	}
	if p.AutoProxyURL != "" {
		if err := toErr(c.AutoProxy(ctx, network, networksetup.Value(p.AutoProxyURL))); err != nil {
			return fmt.Errorf("auto proxy url: %w", err)
		}
	}
	proxies := []struct {
		name     string
		endpoint *config.Endpoint
		call     proxyFunc
	}{
		{"web proxy", p.WebProxy, (*networksetup.Client).WebProxy},
		{"secure web proxy", p.SecureWebProxy, (*networksetup.Client).SecureWebProxy},
		{"ftp proxy", p.FTPProxy, (*networksetup.Client).FTPProxy},
		{"socks proxy", p.SOCKSProxy, (*networksetup.Client).SOCKSProxy},
	}
	for _, proxy := range proxies {
		if proxy.endpoint == nil {
			continue
		}
		if err := toErr(proxy.call(c, ctx, network, networksetup.Value(proxy.endpoint.Address()))); err != nil {
			return fmt.Errorf("%s: %w", proxy.name, err)
		}
	}
	if p.DNSServers != nil {
		if err := toErr(c.DNSServers(ctx, network, *p.DNSServers)); err != nil {
			return fmt.Errorf("dns servers: %w", err)
		}
	}
	if p.BypassDomains != nil {
		if err := toErr(c.ProxyBypassDomains(ctx, network, *p.BypassDomains)); err != nil {
			return fmt.Errorf("bypass domains: %w", err)
		}
	}
	return nil
}

// clearProfile turns off every category the profile configures, and clears
// the DNS and bypass lists it set.
func clearProfile(ctx context.Context, c *networksetup.Client, p *config.Profile) error {
	network := p.Network()

	if p.AutoProxyDiscovery != nil {
		if err := toErr(c.AutoProxyDiscovery(ctx, network, false)); err != nil {
			return fmt.Errorf("auto proxy discovery: %w", err)
		}
	}
	if p.AutoProxyURL != "" {
		if err := toErr(c.AutoProxy(ctx, network, networksetup.Off[string]())); err != nil {
			return fmt.Errorf("auto proxy url: %w", err)
		}
	}
	proxies := []struct {
		name     string
		endpoint *config.Endpoint
		call     proxyFunc
	}{
		{"web proxy", p.WebProxy, (*networksetup.Client).WebProxy},
		{"secure web proxy", p.SecureWebProxy, (*networksetup.Client).SecureWebProxy},
		{"ftp proxy", p.FTPProxy, (*networksetup.Client).FTPProxy},
		{"socks proxy", p.SOCKSProxy, (*networksetup.Client).SOCKSProxy},
	}
	for _, proxy := range proxies {
		if proxy.endpoint == nil {
			continue
		}
		if err := toErr(proxy.call(c, ctx, network, networksetup.Off[networksetup.Address]())); err != nil {
			return fmt.Errorf("%s: %w", proxy.name, err)
		}
	}
	if p.DNSServers != nil {
		if err := toErr(c.DNSServers(ctx, network, nil)); err != nil {
			return fmt.Errorf("dns servers: %w", err)
		}
	}
	if p.BypassDomains != nil {
		if err := toErr(c.ProxyBypassDomains(ctx, network, nil)); err != nil {
			return fmt.Errorf("bypass domains: %w", err)
		}
	}
	return nil
}
