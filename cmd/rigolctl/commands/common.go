// Package commands implements the rigolctl CLI commands.
package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/rigol-scpi/rigol-go/pkg/log"
	"github.com/rigol-scpi/rigol-go/pkg/scope"
	"github.com/rigol-scpi/rigol-go/pkg/transport"
	"github.com/rigol-scpi/rigol-go/pkg/vocab"
)

const (
	exitSuccess      = 0
	exitCommandError = 1
	exitInstrument   = 2
)

// defaultConfigFile is picked up from the working directory when no
// --config flag is given.
const defaultConfigFile = "rigolctl.yaml"

// Config holds the connection settings shared by all instrument
// commands. Flags override file values.
type Config struct {
	// Resource is a USBTMC VISA resource string.
	Resource string `yaml:"resource"`

	// Address is a LAN address (host or host:port).
	Address string `yaml:"address"`

	// Family selects the command vocabulary (ds1000z, ds2000a).
	Family string `yaml:"family"`

	// TimeoutSeconds bounds LAN socket operations.
	TimeoutSeconds int `yaml:"timeout_seconds"`

	// Capture is a CBOR capture file path. Empty disables capture.
	Capture string `yaml:"capture"`
}

// errNoInstrument is reported when neither a resource nor an address is
// configured.
var errNoInstrument = errors.New("no instrument specified: set --resource or --addr")

// connFlags carries the shared connection flag values.
type connFlags struct {
	configFile string
	resource   string
	address    string
	family     string
	capture    string
	timeout    int
}

// addConnFlags registers the shared connection flags on fs.
func addConnFlags(fs *flag.FlagSet) *connFlags {
	cf := &connFlags{}
	fs.StringVar(&cf.configFile, "config", "", "YAML config file")
	fs.StringVar(&cf.resource, "resource", "", "USBTMC VISA resource string")
	fs.StringVar(&cf.address, "addr", "", "LAN address (host or host:port)")
	fs.StringVar(&cf.family, "family", "", "Instrument family (ds1000z, ds2000a)")
	fs.StringVar(&cf.capture, "capture", "", "Session capture file (CBOR)")
	fs.IntVar(&cf.timeout, "timeout", 0, "LAN socket timeout in seconds")
	return cf
}

// resolve loads the config file, if any, and applies flag overrides.
func (cf *connFlags) resolve() (Config, error) {
	cfg, err := loadConfig(cf.configFile)
	if err != nil {
		return cfg, err
	}

	if cf.resource != "" {
		cfg.Resource = cf.resource
	}
	if cf.address != "" {
		cfg.Address = cf.address
	}
	if cf.family != "" {
		cfg.Family = cf.family
	}
	if cf.capture != "" {
		cfg.Capture = cf.capture
	}
	if cf.timeout != 0 {
		cfg.TimeoutSeconds = cf.timeout
	}
	if cfg.Family == "" {
		cfg.Family = string(vocab.FamilyDS1000Z)
	}
	return cfg, nil
}

// loadConfig reads a YAML config file. With an empty path the default
// file is used if present, otherwise an empty config is returned.
func loadConfig(path string) (Config, error) {
	var cfg Config

	if path == "" {
		if _, err := os.Stat(defaultConfigFile); err != nil {
			return cfg, nil
		}
		path = defaultConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// openTransport connects to the configured instrument, USB first.
func openTransport(cfg Config) (transport.Transport, error) {
	switch {
	case cfg.Resource != "":
		return transport.OpenUSB(cfg.Resource)
	case cfg.Address != "":
		timeout := transport.DefaultTCPTimeout
		if cfg.TimeoutSeconds > 0 {
			timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
		}
		return transport.OpenTCP(cfg.Address, timeout)
	default:
		return nil, errNoInstrument
	}
}

// openCapture creates the capture logger, or a noop one when capture is
// disabled.
func openCapture(cfg Config) (log.Logger, func(), error) {
	if cfg.Capture == "" {
		return log.NoopLogger{}, func() {}, nil
	}
	fl, err := log.NewFileLogger(cfg.Capture)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open capture file: %w", err)
	}
	return fl, func() { _ = fl.Close() }, nil
}

// openScope connects and wraps the instrument in a driver facade. The
// returned cleanup closes the connection and the capture file.
func openScope(cfg Config) (*scope.Scope, func(), error) {
	family, err := vocab.ParseFamily(cfg.Family)
	if err != nil {
		return nil, nil, err
	}

	logger, closeCapture, err := openCapture(cfg)
	if err != nil {
		return nil, nil, err
	}

	t, err := openTransport(cfg)
	if err != nil {
		closeCapture()
		return nil, nil, err
	}

	s, err := scope.New(t, family, scope.WithLogger(logger))
	if err != nil {
		_ = t.Close()
		closeCapture()
		return nil, nil, err
	}

	cleanup := func() {
		_ = s.Close()
		closeCapture()
	}
	return s, cleanup, nil
}
