// Package configbp loads YAML configuration files, such as tracing.Config,
// with environment variable substitution.
package configbp

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/reddit/tracecontext.go/log"
)

// MaxConfigSize is the max number of bytes read from a config file.
//
// Anything after that is ignored, which usually makes the YAML invalid.
const MaxConfigSize = 1 << 20

// ParseStrictFile parses the YAML file at path into ptr.
//
// See ParseStrictYAML for the parsing rules.
// Only files with .yaml or .yml extensions are supported.
func ParseStrictFile(path string, ptr interface{}) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
	default:
		return fmt.Errorf("configbp: unsupported config extension %q of %q", ext, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return err // contains filename
	}
	defer f.Close()
	return ParseStrictYAML(f, ptr)
}

// ParseStrictYAML parses YAML read from reader into ptr.
//
// Environment variables ($FOO and ${FOO}) are substituted before parsing,
// and fields unknown to ptr are errors.
func ParseStrictYAML(reader io.Reader, ptr interface{}) error {
	raw, err := io.ReadAll(io.LimitReader(reader, MaxConfigSize))
	if err != nil {
		return fmt.Errorf("configbp: reading config: %w", err)
	}
	content := os.ExpandEnv(string(raw))

	if err := yaml.UnmarshalStrict([]byte(content), ptr); err != nil {
		log.Debugf("Failed to parse configuration into %T: %v\n%s", ptr, err, content)
		return fmt.Errorf("configbp: parsing YAML into %T: %w", ptr, err)
	}
	log.Debugf("Parsed configuration as %T:\n%s", ptr, content)
	return nil
}
