// Package networksetup is a typed binding around the macOS `networksetup`
// command-line tool. It builds argument lists for the proxy, DNS and bypass
// domain setters and runs the tool as a subprocess; all actual configuration
// state lives inside the tool and the OS, not here.
//
// Every operation is stateless and synchronous: one call, one (or for the
// SOCKS off case, two) subprocess executions, then the tool's exit status is
// handed back untouched. The package does not validate hostnames, ports or
// service names and does not read the tool's output; invalid input is
// rejected by networksetup itself.
package networksetup

// Shared literal arguments of the networksetup CLI.
const (
	flagOn  = "on"
	flagOff = "off"

	// emptyList is the sentinel networksetup expects in place of an empty
	// DNS server or bypass domain list.
	emptyList = "Empty"
)

// Network identifies the network service a setting applies to. The zero
// value is not usable; pick one of the well-known services or use Name.
type Network struct {
	service string
}

// Well-known macOS network services.
var (
	Ethernet          = Network{"Ethernet"}
	WiFi              = Network{"Wi-Fi"}
	BluetoothPAN      = Network{"Bluetooth PAN"}
	ThunderboltBridge = Network{"Thunderbolt Bridge"}
)

// Name selects a network service by its exact display name, for custom or
// renamed services. The string is passed through to networksetup unmodified.
func Name(service string) Network {
	return Network{service}
}

// String returns the service name as networksetup expects it.
func (n Network) String() string {
	return n.service
}

type stateKind int

const (
	stateOff stateKind = iota
	stateOn
	stateValue
)

// State is the tri-state configuration applied uniformly across settings:
// disable the setting, enable it using the previously stored value, or set
// it to an explicit new value.
type State[T any] struct {
	kind  stateKind
	value T
}

// Off disables the setting.
func Off[T any]() State[T] {
	return State[T]{kind: stateOff}
}

// On enables the setting with whatever value networksetup has stored for it.
func On[T any]() State[T] {
	return State[T]{kind: stateOn}
}

// Value enables the setting with an explicit new value.
func Value[T any](v T) State[T] {
	return State[T]{kind: stateValue, value: v}
}

// Address is a proxy endpoint: host and port, with an optional credential
// pair. Host and port are plain strings supplied together; neither is
// validated here.
type Address struct {
	Host string
	Port string

	username string
	password string
	hasAuth  bool
}

// NewAddress returns an endpoint without authentication.
func NewAddress(host, port string) Address {
	return Address{Host: host, Port: port}
}

// WithAuth returns a copy of the address carrying a credential pair. When
// set, the proxy setters append networksetup's enable-auth suffix.
func (a Address) WithAuth(username, password string) Address {
	a.username = username
	a.password = password
	a.hasAuth = true
	return a
}
