package vocab

import (
	"embed"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed manifests/*.yaml
var manifestFS embed.FS

// Family identifies an instrument command-set family.
type Family string

// Supported families.
const (
	FamilyDS1000Z Family = "ds1000z"
	FamilyDS2000A Family = "ds2000a"
)

// Vocabulary errors.
var (
	// ErrUnknownFamily indicates no manifest exists for the family.
	ErrUnknownFamily = errors.New("unknown instrument family")

	// ErrUnknownCommand indicates an operation name the manifest does not
	// define.
	ErrUnknownCommand = errors.New("unknown command")
)

// ParseFamily parses a family name as found in config files and flags.
func ParseFamily(s string) (Family, error) {
	switch Family(strings.ToLower(strings.TrimSpace(s))) {
	case FamilyDS1000Z:
		return FamilyDS1000Z, nil
	case FamilyDS2000A:
		return FamilyDS2000A, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFamily, s)
	}
}

// Set is one family's command vocabulary.
type Set struct {
	// Family is the family this set describes.
	Family Family `yaml:"family"`

	// Description is a human-readable family description.
	Description string `yaml:"description"`

	// Channels is the number of analog channels on this family.
	Channels int `yaml:"channels"`

	// MaxReadPoints is the largest waveform slice the instrument serves
	// per data query; longer records are read in chunks of this size.
	MaxReadPoints int `yaml:"max_read_points"`

	// ScreenshotFormats lists the image formats the screenshot query
	// accepts. A single entry means the format is fixed and the query
	// template takes no format argument.
	ScreenshotFormats []string `yaml:"screenshot_formats"`

	// Commands maps operation names to printf-style command templates.
	Commands map[string]string `yaml:"commands"`
}

// requiredOps is every operation the driver renders. Load refuses a
// manifest missing any of them.
var requiredOps = []string{
	"idn", "run", "stop", "autoscale", "clear", "reset",
	"screenshot",
	"chan_scale_set", "chan_scale_query",
	"chan_offset_set", "chan_offset_query",
	"chan_coupling_set", "chan_coupling_query",
	"chan_probe_set", "chan_probe_query",
	"chan_display_set", "chan_display_query",
	"chan_units_set", "chan_units_query",
	"meas_vrms_query",
	"wav_source_set", "wav_mode_set", "wav_format_set",
	"wav_preamble_query", "wav_start_set", "wav_stop_set", "wav_data_query",
	"trig_force", "trig_single",
	"trig_edge_level_set", "trig_edge_level_query",
	"trig_holdoff_set", "trig_holdoff_query",
	"tim_scale_set", "tim_scale_query",
	"tim_mode_set", "tim_mode_query",
	"tim_offset_set", "tim_offset_query",
	"acq_srate_query",
	"acq_mdepth_set", "acq_mdepth_query",
	"acq_average_set", "acq_average_query",
	"acq_type_set", "acq_type_query",
}

// Load reads and validates the embedded manifest for a family.
func Load(family Family) (*Set, error) {
	data, err := manifestFS.ReadFile(fmt.Sprintf("manifests/%s.yaml", family))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFamily, family)
	}

	var set Set
	if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("parsing manifest for %s: %w", family, err)
	}

	if set.Family != family {
		return nil, fmt.Errorf("manifest %s declares family %q", family, set.Family)
	}
	if set.Channels < 1 {
		return nil, fmt.Errorf("manifest %s: invalid channel count %d", family, set.Channels)
	}
	if set.MaxReadPoints < 1 {
		return nil, fmt.Errorf("manifest %s: invalid max_read_points %d", family, set.MaxReadPoints)
	}
	if len(set.ScreenshotFormats) == 0 {
		return nil, fmt.Errorf("manifest %s: no screenshot formats", family)
	}

	var missing []string
	for _, op := range requiredOps {
		if _, ok := set.Commands[op]; !ok {
			missing = append(missing, op)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("manifest %s: missing commands: %s", family, strings.Join(missing, ", "))
	}

	return &set, nil
}

// Render formats the command template for op with args.
func (s *Set) Render(op string, args ...any) (string, error) {
	tmpl, ok := s.Commands[op]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCommand, op)
	}
	if len(args) == 0 {
		return tmpl, nil
	}
	return fmt.Sprintf(tmpl, args...), nil
}

// SupportsScreenshotFormat reports whether the family's screenshot query
// accepts the given format name.
func (s *Set) SupportsScreenshotFormat(format string) bool {
	for _, f := range s.ScreenshotFormats {
		if strings.EqualFold(f, format) {
			return true
		}
	}
	return false
}

// ScreenshotTakesFormat reports whether the screenshot template has a
// format placeholder (the DS2000A's does not; it always returns BMP).
func (s *Set) ScreenshotTakesFormat() bool {
	return strings.Contains(s.Commands["screenshot"], "%")
}
