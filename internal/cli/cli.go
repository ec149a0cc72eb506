// Package cli implements the netsetup command tree.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rennerdo30/netsetup/internal/logging"
	"github.com/rennerdo30/netsetup/internal/version"
	"github.com/rennerdo30/netsetup/networksetup"
)

// ExitError reports that networksetup ran but exited with a non-zero
// status. The code is the tool's own exit code, passed through untouched so
// the process can mirror it.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("networksetup exited with status %d", e.Code)
}

// app carries the state shared by all commands.
type app struct {
	toolPath  string
	logLevel  string
	logFormat string

	// runner overrides the subprocess runner, for tests.
	runner networksetup.Runner
}

// Option configures the command tree.
type Option func(*app)

// WithRunner substitutes the subprocess runner. Primarily for tests.
func WithRunner(r networksetup.Runner) Option {
	return func(a *app) { a.runner = r }
}

// NewCommands creates the netsetup CLI commands.
func NewCommands(opts ...Option) *cobra.Command {
	a := &app{}
	for _, opt := range opts {
		opt(a)
	}

	root := &cobra.Command{
		Use:           "netsetup",
		Short:         "Configure macOS network services via networksetup",
		Long:          `netsetup configures proxy settings, DNS servers and proxy bypass domains per network service by driving the macOS networksetup tool.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := logging.DefaultConfig()
			cfg.Level = a.logLevel
			cfg.Format = a.logFormat
			return logging.Setup(cfg)
		},
	}

	root.PersistentFlags().StringVar(&a.toolPath, "tool", networksetup.DefaultTool, "path of the networksetup binary")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "console", "log format: console, text, json")

	root.AddCommand(
		newProxyCommand(a, "web", "web (HTTP) proxy", (*networksetup.Client).WebProxy),
		newProxyCommand(a, "secureweb", "secure web (HTTPS) proxy", (*networksetup.Client).SecureWebProxy),
		newProxyCommand(a, "ftp", "FTP proxy", (*networksetup.Client).FTPProxy),
		newProxyCommand(a, "socks", "SOCKS firewall proxy", (*networksetup.Client).SOCKSProxy),
		newPACCommand(a),
		newDiscoveryCommand(a),
		newDNSCommand(a),
		newBypassCommand(a),
		newProfileCommand(a),
		newApplyCommand(a),
		newClearCommand(a),
		newValidateCommand(a),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintln(cmd.OutOrStdout(), version.Full())
			},
		},
	)

	return root
}

// client builds the library client for one command invocation.
func (a *app) client() *networksetup.Client {
	opts := []networksetup.Option{
		networksetup.WithTool(a.toolPath),
		networksetup.WithLogger(logging.Default()),
	}
	if a.runner != nil {
		opts = append(opts, networksetup.WithRunner(a.runner))
	}
	return networksetup.New(opts...)
}

// toErr folds a tool invocation outcome into the CLI error model: launch
// failures pass through, a non-success exit becomes an ExitError.
func toErr(status networksetup.Status, err error) error {
	if err != nil {
		return err
	}
	if !status.Success() {
		return &ExitError{Code: status.Code}
	}
	return nil
}
