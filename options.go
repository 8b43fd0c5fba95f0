package flagkit

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
	"os"
	"strings"
	"time"
)

var ErrInvalidOptions = errors.New("invalid options")

// OperationOptions controls RunOperations.
type OperationOptions struct {
	// Delays for the three operations, short to long.
	Delays []time.Duration `yaml:"delays"`

	// Timeout for the whole group. When set to zero it will wait indefinitely.
	Timeout time.Duration `yaml:"timeout"`
}

// Options represents everything the demo can be configured with.
type Options struct {
	URL       string `yaml:"url"`
	CacheSize int    `yaml:"cache_size"`
	LogLevel  string `yaml:"log_level"`

	Operations OperationOptions `yaml:"operations"`
	Client     ClientOptions    `yaml:"client"`
	Cache      CacheOptions     `yaml:"cache"`
}

var DefaultOptions = Options{
	URL:       "https://api.example.com/data",
	CacheSize: 500,
	LogLevel:  "info",
	Operations: OperationOptions{
		Delays: DefaultOperationDelays[:],
	},
	Client: *DefaultClientOptions,
	Cache:  *DefaultCacheOptions,
}

// LoadOptions reads a YAML file on top of DefaultOptions.
// An empty path returns the defaults.
func LoadOptions(path string) (*Options, error) {
	opts := DefaultOptions
	opts.Operations.Delays = append([]time.Duration(nil), DefaultOptions.Operations.Delays...)
	if path == "" {
		return &opts, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read options")
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return nil, errors.Wrapf(err, "parse options %s", path)
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &opts, nil
}

func (o *Options) Validate() error {
	if o.URL == "" {
		return errors.Wrap(ErrInvalidOptions, "url is empty")
	}
	if o.CacheSize <= 0 || int64(o.CacheSize) > MaxRoundInput {
		return errors.Wrapf(ErrInvalidOptions, "cache_size %d out of range", o.CacheSize)
	}
	if len(o.Operations.Delays) != 3 {
		return errors.Wrapf(ErrInvalidOptions, "want 3 operation delays, got %d", len(o.Operations.Delays))
	}
	for i, d := range o.Operations.Delays {
		if d < 0 {
			return errors.Wrapf(ErrInvalidOptions, "operation %d delay %s is negative", i+1, d)
		}
	}
	return nil
}

// OperationDelays returns the configured delays in the shape RunOperations takes.
func (o *Options) OperationDelays() [3]time.Duration {
	var delays [3]time.Duration
	copy(delays[:], o.Operations.Delays)
	return delays
}

func (c *CompressAlgorithm) UnmarshalYAML(value *yaml.Node) error {
	switch strings.ToLower(value.Value) {
	case "snappy", "":
		*c = CompSnappy
	case "none":
		*c = CompNone
	case "lz4":
		*c = CompLz4
	default:
		return errors.Wrapf(ErrInvalidOptions, "unknown compression %q", value.Value)
	}
	return nil
}
