package discovery

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/enbility/zeroconf/v3"
)

// mDNS service types instruments announce.
const (
	ServiceSCPIRaw = "_scpi-raw._tcp"
	ServiceLXI     = "_lxi._tcp"

	// Domain is the mDNS domain.
	Domain = "local."

	// DefaultBrowseTimeout bounds Find when the caller's context has no
	// deadline.
	DefaultBrowseTimeout = 10 * time.Second
)

// ErrNotFound indicates no matching instrument announced itself before
// the browse ended.
var ErrNotFound = errors.New("no matching instrument found")

// Instrument is one discovered LAN instrument.
type Instrument struct {
	// InstanceName is the mDNS instance name.
	InstanceName string

	// Host is the announced hostname.
	Host string

	// Port is the SCPI socket port.
	Port uint16

	// Addresses holds the announced IP addresses.
	Addresses []string

	// Manufacturer and Model come from the LXI TXT records, when
	// present.
	Manufacturer string
	Model        string

	// Service is the service type the announcement arrived on.
	Service string
}

// Addr returns a host:port string suitable for transport.OpenTCP,
// preferring the first announced address over the hostname.
func (in *Instrument) Addr() string {
	host := in.Host
	if len(in.Addresses) > 0 {
		host = in.Addresses[0]
	}
	return net.JoinHostPort(strings.TrimSuffix(host, "."), fmt.Sprintf("%d", in.Port))
}

// Config configures browsing.
type Config struct {
	// Interface restricts browsing to one network interface.
	// Empty means all interfaces.
	Interface string

	// Services overrides the service types to browse.
	// Defaults to ServiceSCPIRaw and ServiceLXI.
	Services []string
}

// Browse watches for instrument announcements until ctx is cancelled.
// Announcements are aggregated by instance name: each instrument is
// emitted once, with addresses merged across interfaces.
func Browse(ctx context.Context, cfg Config) (<-chan *Instrument, error) {
	services := cfg.Services
	if len(services) == 0 {
		services = []string{ServiceSCPIRaw, ServiceLXI}
	}

	opts := clientOptions(cfg)
	out := make(chan *Instrument)
	entries := make(chan *zeroconf.ServiceEntry)

	go func() {
		defer close(out)

		seen := make(map[string]*Instrument)
		for {
			select {
			case entry, ok := <-entries:
				if !ok {
					return
				}
				in := entryToInstrument(entry)
				if in == nil {
					continue
				}

				if existing, found := seen[in.InstanceName]; found {
					existing.Addresses = mergeAddresses(existing.Addresses, in.Addresses)
					continue
				}
				seen[in.InstanceName] = in

				select {
				case out <- in:
				case <-ctx.Done():
					return
				}

			case <-ctx.Done():
				return
			}
		}
	}()

	for _, svc := range services {
		go func(svc string) {
			_ = zeroconf.Browse(ctx, svc, Domain, entries, nil, opts...)
		}(svc)
	}

	return out, nil
}

// Find returns the first instrument whose model or instance name
// contains the given substring (case-insensitive). An empty substring
// matches the first instrument seen.
func Find(ctx context.Context, cfg Config, model string) (*Instrument, error) {
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultBrowseTimeout)
		defer cancel()
	}

	found, err := Browse(ctx, cfg)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(model)
	for in := range found {
		if needle == "" ||
			strings.Contains(strings.ToLower(in.Model), needle) ||
			strings.Contains(strings.ToLower(in.InstanceName), needle) {
			return in, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrNotFound, model)
}

// clientOptions returns zeroconf client options based on config.
func clientOptions(cfg Config) []zeroconf.ClientOption {
	var opts []zeroconf.ClientOption
	if cfg.Interface != "" {
		if iface, err := net.InterfaceByName(cfg.Interface); err == nil {
			opts = append(opts, zeroconf.SelectIfaces([]net.Interface{*iface}))
		}
	}
	return opts
}

// entryToInstrument converts a service entry, parsing LXI-style
// "key=value" TXT records.
func entryToInstrument(entry *zeroconf.ServiceEntry) *Instrument {
	if entry == nil {
		return nil
	}

	in := &Instrument{
		InstanceName: entry.Instance,
		Host:         entry.HostName,
		Port:         uint16(entry.Port),
		Service:      entry.Service,
	}

	for _, ip := range entry.AddrIPv4 {
		in.Addresses = append(in.Addresses, ip.String())
	}
	for _, ip := range entry.AddrIPv6 {
		in.Addresses = append(in.Addresses, ip.String())
	}

	for _, txt := range entry.Text {
		key, value, ok := strings.Cut(txt, "=")
		if !ok {
			continue
		}
		switch strings.ToLower(key) {
		case "manufacturer":
			in.Manufacturer = value
		case "model":
			in.Model = value
		}
	}

	return in
}

// mergeAddresses appends addresses not already present.
func mergeAddresses(existing, more []string) []string {
	for _, addr := range more {
		dup := false
		for _, have := range existing {
			if have == addr {
				dup = true
				break
			}
		}
		if !dup {
			existing = append(existing, addr)
		}
	}
	return existing
}
