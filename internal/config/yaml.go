package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-yaml"
)

// MaxInputSize limits YAML input to prevent memory exhaustion (default 1MB).
var MaxInputSize = 1 << 20

var (
	errEmptyData     = errors.New("empty config data")
	errInputTooLarge = errors.New("config exceeds maximum size")
)

// time0 is a fixed instant used to dry-run timestamp formats.
var time0 = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// unmarshalStrict decodes YAML and rejects unknown fields.
func unmarshalStrict(data []byte, v any) error {
	if len(data) == 0 {
		return errEmptyData
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", errInputTooLarge, len(data), MaxInputSize)
	}
	return yaml.UnmarshalWithOptions(data, v, yaml.Strict())
}
