package config

import (
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Config is the engine configuration surface.
type Config struct {
	// ServerTimezone is the IANA zone availability is computed in.
	ServerTimezone string `yaml:"server_timezone"`

	// ReturnUTC selects UTC output from the normalizer; otherwise
	// instants stay server-local.
	ReturnUTC bool `yaml:"return_utc"`

	// BusinessStart and BusinessEnd bound the plausible working hours
	// [BusinessStart, BusinessEnd) used when disambiguating written
	// timestamps. Whole hours, end exclusive.
	BusinessStart int `yaml:"business_start"`
	BusinessEnd   int `yaml:"business_end"`
}

// Default returns the stock tracker configuration.
func Default() Config {
	return Config{
		ServerTimezone: "America/Mexico_City",
		ReturnUTC:      true,
		BusinessStart:  8,
		BusinessEnd:    20,
	}
}

// Parse reads a YAML document over the defaults and validates the
// result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "parse config YAML")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads a YAML config file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "read config %s", path)
	}
	return Parse(data)
}

// Validate checks the zone and the business-hour window.
func (c Config) Validate() error {
	if _, err := time.LoadLocation(c.ServerTimezone); err != nil {
		return errors.Wrapf(err, "unknown server timezone %q", c.ServerTimezone)
	}
	if c.BusinessStart < 0 || c.BusinessStart > 23 {
		return errors.Newf("business_start %d outside 0..23", c.BusinessStart)
	}
	if c.BusinessEnd < 0 || c.BusinessEnd > 23 {
		return errors.Newf("business_end %d outside 0..23", c.BusinessEnd)
	}
	if c.BusinessStart >= c.BusinessEnd {
		return errors.Newf("business hours %d..%d are empty", c.BusinessStart, c.BusinessEnd)
	}
	return nil
}

// Location resolves the configured server zone.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.ServerTimezone)
	if err != nil {
		return nil, errors.Wrapf(err, "unknown server timezone %q", c.ServerTimezone)
	}
	return loc, nil
}
