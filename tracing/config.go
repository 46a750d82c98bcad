package tracing

import (
	"errors"
	"fmt"
	"strings"

	"github.com/reddit/tracecontext.go/configbp"
	"github.com/reddit/tracecontext.go/errorsbp"
	"github.com/reddit/tracecontext.go/log"
)

var (
	errEmptyKey      = errors.New("must not be empty")
	errInvalidKey    = errors.New("must be lowercase and must not contain whitespace, ',' or '='")
	errNegativeLimit = errors.New("must not be negative")
	errReservedKey   = errors.New("must not be " + TraceParentKey + " or " + TraceStateKey)
	errUnknownLevel  = errors.New("unknown log level")
)

// Config is the configuration struct for W3CCodec.
//
// Can be deserialized from YAML. All zero values are replaced by their
// defaults.
type Config struct {
	// VendorKey is the tracestate key of our own entry.
	// Any incoming entry starting with it is replaced on inject.
	//
	// Default: DefaultVendorKey.
	VendorKey string `yaml:"vendorKey"`

	// DebugIDHeader is the carrier key read when there's no traceparent.
	//
	// Default: DefaultDebugIDHeader.
	DebugIDHeader string `yaml:"debugIDHeader"`

	// Default: DefaultMaxTraceStateEntries.
	MaxTraceStateEntries int `yaml:"maxTraceStateEntries"`

	// MaxTraceStateEntrySize caps len(VendorKey) + len("=") + len(value) of
	// our own entry.
	//
	// Default: DefaultMaxTraceStateEntrySize.
	MaxTraceStateEntrySize int `yaml:"maxTraceStateEntrySize"`

	// LogLevel is the level malformed headers are logged at when Logger is
	// nil. Leave it empty to not log them at all.
	LogLevel log.Level `yaml:"logLevel"`

	// Logger, if non-nil, overrides LogLevel.
	Logger log.Wrapper `yaml:"-"`
}

// ParseConfigFile reads a Config from a YAML file.
func ParseConfigFile(path string) (Config, error) {
	var cfg Config
	if err := configbp.ParseStrictFile(path, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (cfg Config) withDefaults() Config {
	if cfg.VendorKey == "" {
		cfg.VendorKey = DefaultVendorKey
	}
	if cfg.DebugIDHeader == "" {
		cfg.DebugIDHeader = DefaultDebugIDHeader
	}
	if cfg.MaxTraceStateEntries == 0 {
		cfg.MaxTraceStateEntries = DefaultMaxTraceStateEntries
	}
	if cfg.MaxTraceStateEntrySize == 0 {
		cfg.MaxTraceStateEntrySize = DefaultMaxTraceStateEntrySize
	}
	if cfg.Logger == nil {
		if cfg.LogLevel == "" {
			cfg.Logger = log.NopWrapper
		} else {
			cfg.Logger = log.ZapWrapper(cfg.LogLevel)
		}
	}
	return cfg
}

// Validate checks cfg after defaults are applied,
// and returns all the problems found as an errorsbp.Batch.
func (cfg Config) Validate() error {
	cfg = cfg.withDefaults()

	var batch errorsbp.Batch
	batch.AddPrefix("vendorKey", validateKey(cfg.VendorKey))
	batch.AddPrefix("debugIDHeader", validateDebugIDHeader(cfg.DebugIDHeader))
	if cfg.LogLevel != "" && !cfg.LogLevel.Valid() {
		batch.AddPrefix("logLevel", fmt.Errorf("%w %q", errUnknownLevel, cfg.LogLevel))
	}
	if cfg.MaxTraceStateEntries < 0 {
		batch.AddPrefix("maxTraceStateEntries", errNegativeLimit)
	}
	switch {
	case cfg.MaxTraceStateEntrySize < 0:
		batch.AddPrefix("maxTraceStateEntrySize", errNegativeLimit)
	case cfg.MaxTraceStateEntrySize <= len(cfg.VendorKey)+len(traceStateKVDelimiter):
		batch.AddPrefix("maxTraceStateEntrySize", fmt.Errorf(
			"%d leaves no room for a value after %q",
			cfg.MaxTraceStateEntrySize,
			cfg.VendorKey+traceStateKVDelimiter,
		))
	}
	return batch.Compile()
}

func validateKey(key string) error {
	if key == "" {
		return errEmptyKey
	}
	if key != strings.ToLower(key) || strings.ContainsAny(key, " \t,=") {
		return fmt.Errorf("%q %w", key, errInvalidKey)
	}
	return nil
}

// validateDebugIDHeader also rejects the traceparent and tracestate keys,
// as Extract would read the same entry for both and never fall back.
func validateDebugIDHeader(key string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	if key == TraceParentKey || key == TraceStateKey {
		return fmt.Errorf("%q %w", key, errReservedKey)
	}
	return nil
}
