package courier

import (
	"fmt"
	"io"
	"sync"

	eng "github.com/reoring/courier/internal/engine"
	"github.com/reoring/courier/internal/source/gojson"
	"github.com/reoring/courier/internal/source/stdjson"
)

// JSONDriver selects the JSON implementation used at the byte boundary.
type JSONDriver int

const (
	DriverGoJSON JSONDriver = iota // github.com/goccy/go-json (default)
	DriverStdlib                   // encoding/json
)

func (d JSONDriver) String() string {
	if d == DriverStdlib {
		return "encoding/json"
	}
	return "go-json"
}

// ParseJSONDriver resolves a driver by name ("go-json" or "encoding/json").
func ParseJSONDriver(name string) (JSONDriver, error) {
	switch name {
	case "", "go-json", "gojson":
		return DriverGoJSON, nil
	case "encoding/json", "std", "stdlib":
		return DriverStdlib, nil
	}
	return DriverGoJSON, fmt.Errorf("unknown JSON driver %q", name)
}

var (
	jsonDriverMu      sync.RWMutex
	currentJSONDriver = DriverGoJSON
)

// SetJSONDriver replaces the global JSON driver.
func SetJSONDriver(d JSONDriver) {
	jsonDriverMu.Lock()
	currentJSONDriver = d
	jsonDriverMu.Unlock()
}

// CurrentJSONDriver returns the active JSON driver.
func CurrentJSONDriver() JSONDriver {
	jsonDriverMu.RLock()
	defer jsonDriverMu.RUnlock()
	return currentJSONDriver
}

func newTokenSource(r io.Reader) eng.TokenSource {
	if CurrentJSONDriver() == DriverStdlib {
		return stdjson.NewReader(r)
	}
	return gojson.NewReader(r)
}

// Marshal encodes a generic value (typically the output of Dump) with the
// active driver.
func Marshal(v any) ([]byte, error) {
	if CurrentJSONDriver() == DriverStdlib {
		return stdjson.Marshal(v)
	}
	return gojson.Marshal(v)
}

// MarshalIndent is Marshal with indentation, for human-facing output.
func MarshalIndent(v any, prefix, indent string) ([]byte, error) {
	if CurrentJSONDriver() == DriverStdlib {
		return stdjson.MarshalIndent(v, prefix, indent)
	}
	return gojson.MarshalIndent(v, prefix, indent)
}

func toEngineDup(s Severity) eng.DuplicateStrictness {
	switch s {
	case Error:
		return eng.DupError
	case Warn:
		return eng.DupWarn
	default:
		return eng.DupIgnore
	}
}
