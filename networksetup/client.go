package networksetup

import (
	"context"
	"log/slog"
)

// Client dispatches configuration changes to the networksetup tool. The
// zero-option client runs the real binary; see the Options for injecting a
// custom tool path, runner or logger. Clients are stateless and safe for
// concurrent use, but networksetup itself mutates a shared OS store, so
// concurrent calls against the same service may race inside the tool.
type Client struct {
	tool   string
	runner Runner
	logger *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithTool overrides the path of the networksetup binary.
func WithTool(path string) Option {
	return func(c *Client) { c.tool = path }
}

// WithRunner substitutes the subprocess runner, typically to record
// invocations in tests instead of executing them.
func WithRunner(r Runner) Option {
	return func(c *Client) { c.runner = r }
}

// WithLogger attaches a logger that records each argument list at debug
// level before the tool runs.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// New returns a Client with the given options applied.
func New(opts ...Option) *Client {
	c := &Client{tool: DefaultTool}
	for _, opt := range opts {
		opt(c)
	}
	if c.runner == nil {
		c.runner = &execRunner{tool: c.tool}
	}
	return c
}

func (c *Client) run(ctx context.Context, args ...string) (Status, error) {
	if c.logger != nil {
		c.logger.Debug("running networksetup", "args", args)
	}
	return c.runner.Run(ctx, args...)
}

// AutoProxyDiscovery toggles Auto Proxy Discovery for the service.
func (c *Client) AutoProxyDiscovery(ctx context.Context, network Network, enable bool) (Status, error) {
	state := flagOff
	if enable {
		state = flagOn
	}
	return c.run(ctx, "-setproxyautodiscovery", network.String(), state)
}

// AutoProxy configures Automatic Proxy Configuration (PAC). A Value state
// carries the PAC URL; Off and On switch the stored configuration.
func (c *Client) AutoProxy(ctx context.Context, network Network, url State[string]) (Status, error) {
	switch url.kind {
	case stateOff:
		return c.run(ctx, "-setautoproxystate", network.String(), flagOff)
	case stateOn:
		return c.run(ctx, "-setautoproxystate", network.String(), flagOn)
	default:
		return c.run(ctx, "-setautoproxyurl", network.String(), url.value)
	}
}

// FTPProxy configures the FTP proxy for the service.
func (c *Client) FTPProxy(ctx context.Context, network Network, setup State[Address]) (Status, error) {
	return c.proxy(ctx, "-setftpproxy", "-setftpproxystate", network, setup)
}

// WebProxy configures the web (HTTP) proxy for the service.
func (c *Client) WebProxy(ctx context.Context, network Network, setup State[Address]) (Status, error) {
	return c.proxy(ctx, "-setwebproxy", "-setwebproxystate", network, setup)
}

// SecureWebProxy configures the secure web (HTTPS) proxy for the service.
func (c *Client) SecureWebProxy(ctx context.Context, network Network, setup State[Address]) (Status, error) {
	return c.proxy(ctx, "-setsecurewebproxy", "-setsecurewebproxystate", network, setup)
}

// SOCKSProxy configures the SOCKS firewall proxy for the service.
//
// Turning the proxy off takes two invocations, not one: networksetup does
// not accept a bare "off" while stale host/port fields remain, so those are
// cleared to empty strings first. This is a quirk of the tool and is kept
// as an explicit two-step sequence.
func (c *Client) SOCKSProxy(ctx context.Context, network Network, setup State[Address]) (Status, error) {
	if setup.kind == stateOff {
		if _, err := c.run(ctx, "-setsocksfirewallproxystate", network.String(), "", ""); err != nil {
			return Status{}, err
		}
		return c.run(ctx, "-setsocksfirewallproxystate", network.String(), flagOff)
	}
	return c.proxy(ctx, "-setsocksfirewallproxy", "-setsocksfirewallproxystate", network, setup)
}

// proxy implements the shared three-branch contract of the four proxy
// categories.
func (c *Client) proxy(ctx context.Context, setFlag, stateFlag string, network Network, setup State[Address]) (Status, error) {
	switch setup.kind {
	case stateOff:
		return c.run(ctx, stateFlag, network.String(), flagOff)
	case stateOn:
		return c.run(ctx, stateFlag, network.String(), flagOn)
	default:
		addr := setup.value
		args := []string{setFlag, network.String(), addr.Host, addr.Port}
		if addr.hasAuth {
			args = append(args, flagOn, addr.username, addr.password)
		}
		return c.run(ctx, args...)
	}
}

// DNSServers replaces the DNS server list for the service. An empty list
// clears all servers; networksetup expects the literal "Empty" for that
// rather than a missing argument.
func (c *Client) DNSServers(ctx context.Context, network Network, servers []string) (Status, error) {
	return c.hostList(ctx, "-setdnsservers", network, servers)
}

// ProxyBypassDomains replaces the list of hosts and domains excluded from
// proxying. An empty list clears it, via the same "Empty" sentinel as
// DNSServers.
func (c *Client) ProxyBypassDomains(ctx context.Context, network Network, domains []string) (Status, error) {
	return c.hostList(ctx, "-setproxybypassdomains", network, domains)
}

func (c *Client) hostList(ctx context.Context, flag string, network Network, hosts []string) (Status, error) {
	args := []string{flag, network.String()}
	if len(hosts) == 0 {
		args = append(args, emptyList)
	} else {
		args = append(args, hosts...)
	}
	return c.run(ctx, args...)
}
