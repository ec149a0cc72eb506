package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rennerdo30/netsetup/networksetup"
)

// proxyFunc is one of the four Client proxy category methods.
type proxyFunc func(*networksetup.Client, context.Context, networksetup.Network, networksetup.State[networksetup.Address]) (networksetup.Status, error)

// newProxyCommand builds the set/on/off subtree shared by the four proxy
// categories.
func newProxyCommand(a *app, use, short string, call proxyFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: "Configure the " + short,
	}

	var username, password string
	setCmd := &cobra.Command{
		Use:   "set <service> <host> <port>",
		Short: "Set the " + short + " endpoint",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr := networksetup.NewAddress(args[1], args[2])
			if username != "" || password != "" {
				addr = addr.WithAuth(username, password)
			}
			return toErr(call(a.client(), cmd.Context(), networksetup.Name(args[0]), networksetup.Value(addr)))
		},
	}
	setCmd.Flags().StringVarP(&username, "username", "u", "", "proxy username")
	setCmd.Flags().StringVarP(&password, "password", "p", "", "proxy password")

	onCmd := &cobra.Command{
		Use:   "on <service>",
		Short: "Enable the " + short + " with its stored endpoint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return toErr(call(a.client(), cmd.Context(), networksetup.Name(args[0]), networksetup.On[networksetup.Address]()))
		},
	}

	offCmd := &cobra.Command{
		Use:   "off <service>",
		Short: "Disable the " + short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return toErr(call(a.client(), cmd.Context(), networksetup.Name(args[0]), networksetup.Off[networksetup.Address]()))
		},
	}

	cmd.AddCommand(setCmd, onCmd, offCmd)
	return cmd
}

func newPACCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pac",
		Short: "Configure Automatic Proxy Configuration (PAC)",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "set <service> <url>",
			Short: "Set the PAC URL",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return toErr(a.client().AutoProxy(cmd.Context(), networksetup.Name(args[0]), networksetup.Value(args[1])))
			},
		},
		&cobra.Command{
			Use:   "on <service>",
			Short: "Enable PAC with its stored URL",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return toErr(a.client().AutoProxy(cmd.Context(), networksetup.Name(args[0]), networksetup.On[string]()))
			},
		},
		&cobra.Command{
			Use:   "off <service>",
			Short: "Disable PAC",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return toErr(a.client().AutoProxy(cmd.Context(), networksetup.Name(args[0]), networksetup.Off[string]()))
			},
		},
	)

	return cmd
}

func newDiscoveryCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "discovery",
		Short: "Configure Auto Proxy Discovery",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "on <service>",
			Short: "Enable Auto Proxy Discovery",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return toErr(a.client().AutoProxyDiscovery(cmd.Context(), networksetup.Name(args[0]), true))
			},
		},
		&cobra.Command{
			Use:   "off <service>",
			Short: "Disable Auto Proxy Discovery",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return toErr(a.client().AutoProxyDiscovery(cmd.Context(), networksetup.Name(args[0]), false))
			},
		},
	)

	return cmd
}

func newDNSCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dns",
		Short: "Configure DNS servers",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set <service> [server ...]",
		Short: "Set DNS servers; no servers clears the list",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return toErr(a.client().DNSServers(cmd.Context(), networksetup.Name(args[0]), args[1:]))
		},
	})

	return cmd
}

func newBypassCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bypass",
		Short: "Configure proxy bypass domains",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set <service> [domain ...]",
		Short: "Set bypass domains; no domains clears the list",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return toErr(a.client().ProxyBypassDomains(cmd.Context(), networksetup.Name(args[0]), args[1:]))
		},
	})

	return cmd
}
