package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	courier "github.com/reoring/courier"
)

// Input formats accepted by check and convert.
const (
	InputJSON  = "json"
	InputJSONC = "jsonc"
	InputYAML  = "yaml"
	InputCBOR  = "cbor"
)

// inputFormat picks the payload format from an explicit flag value or the
// file extension. Standard input defaults to JSON.
func inputFormat(path, explicit string) (string, error) {
	if explicit != "" {
		switch explicit {
		case InputJSON, InputJSONC, InputYAML, InputCBOR:
			return explicit, nil
		case "yml":
			return InputYAML, nil
		}
		return "", fmt.Errorf("unknown input format %q", explicit)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jsonc":
		return InputJSONC, nil
	case ".yaml", ".yml":
		return InputYAML, nil
	case ".cbor":
		return InputCBOR, nil
	}
	return InputJSON, nil
}

// readInput reads path, or stdin when path is "-".
func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}

// LoadPayload decodes data into the generic tree schemas consume. JSON and
// JSONC go through the courier decoder with opt; YAML and CBOR are
// normalized to the same shapes (string keys, json.Number).
func LoadPayload(data []byte, format string, opt courier.DecodeOpt) (any, error) {
	switch format {
	case InputJSONC:
		return courier.DecodeAny(jsonc.ToJSON(data), opt)
	case InputYAML:
		var v any
		dec := yaml.NewDecoder(bytes.NewReader(data))
		if err := dec.Decode(&v); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, nil
			}
			return nil, courier.ToIssues("/", fmt.Errorf("yaml: %w", err))
		}
		return normalize(v)
	case InputCBOR:
		dm, err := cbor.DecOptions{DefaultMapType: reflect.TypeOf(map[string]any(nil))}.DecMode()
		if err != nil {
			return nil, err
		}
		var v any
		if err := dm.Unmarshal(data, &v); err != nil {
			return nil, courier.ToIssues("/", fmt.Errorf("cbor: %w", err))
		}
		return normalize(v)
	default:
		return courier.DecodeAny(data, opt)
	}
}

// normalize maps YAML and CBOR scalars onto the shapes the JSON decoder
// produces.
func normalize(v any) (any, error) {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, ev := range t {
			nv, err := normalize(ev)
			if err != nil {
				return nil, err
			}
			out[k] = nv
		}
		return out, nil
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, ev := range t {
			nv, err := normalize(ev)
			if err != nil {
				return nil, err
			}
			out[fmt.Sprint(k)] = nv
		}
		return out, nil
	case []any:
		out := make([]any, len(t))
		for i, ev := range t {
			nv, err := normalize(ev)
			if err != nil {
				return nil, err
			}
			out[i] = nv
		}
		return out, nil
	case int:
		return json.Number(strconv.Itoa(t)), nil
	case int64:
		return json.Number(strconv.FormatInt(t, 10)), nil
	case uint64:
		return json.Number(strconv.FormatUint(t, 10)), nil
	case []byte:
		return string(t), nil
	case float64:
		if math.IsInf(t, 0) || math.IsNaN(t) {
			return nil, courier.Single("/", courier.CodeParseError, "non-finite number")
		}
		return json.Number(strconv.FormatFloat(t, 'g', -1, 64)), nil
	case time.Time:
		return t.Format(time.RFC3339Nano), nil
	default:
		return v, nil
	}
}

// plain replaces json.Number with int64 or float64 so non-JSON encoders
// emit numbers rather than strings.
func plain(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, ev := range t {
			out[k] = plain(ev)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, ev := range t {
			out[i] = plain(ev)
		}
		return out
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	default:
		return v
	}
}
