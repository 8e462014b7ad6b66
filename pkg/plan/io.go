package plan

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/ledwire/pkg/errors"
)

// Encoding names accepted by [Marshal] and [Unmarshal].
const (
	EncodingJSON = "json"
	EncodingYAML = "yaml"
)

// =============================================================================
// Plan Serialization API
// =============================================================================

// Marshal encodes a plan as indented JSON or as YAML.
func Marshal(p *Plan, encoding string) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(p, &buf, encoding); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes a plan and validates it.
func Unmarshal(data []byte, encoding string) (*Plan, error) {
	return Read(bytes.NewReader(data), encoding)
}

// Write encodes a plan to w.
func Write(p *Plan, w io.Writer, encoding string) error {
	switch encoding {
	case EncodingJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(p); err != nil {
			return fmt.Errorf("encode: %w", err)
		}
	case EncodingYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(p); err != nil {
			return fmt.Errorf("encode: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encode: %w", err)
		}
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unknown plan encoding %q (must be json or yaml)", encoding)
	}
	return nil
}

// Read decodes a plan from r and validates it.
func Read(r io.Reader, encoding string) (*Plan, error) {
	var p Plan
	switch encoding {
	case EncodingJSON:
		if err := json.NewDecoder(r).Decode(&p); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidPlan, err, "decode")
		}
	case EncodingYAML:
		if err := yaml.NewDecoder(r).Decode(&p); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidPlan, err, "decode")
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown plan encoding %q (must be json or yaml)", encoding)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// WriteFile writes a plan to path, choosing the encoding from its extension.
func WriteFile(p *Plan, path string) error {
	encoding, err := EncodingFor(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Write(p, f, encoding); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadFile reads and validates the plan at path.
func ReadFile(path string) (*Plan, error) {
	encoding, err := EncodingFor(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "plan file %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f, encoding)
}

// EncodingFor maps a file extension to an encoding: .json, .yaml and .yml.
func EncodingFor(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return EncodingJSON, nil
	case ".yaml", ".yml":
		return EncodingYAML, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "cannot infer plan encoding from %q (use .json, .yaml or .yml)", path)
}
