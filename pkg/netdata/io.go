package netdata

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	merrors "github.com/matzehuels/metroroute/pkg/errors"
)

// Format identifies a document encoding.
type Format string

// Supported formats.
const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

//go:embed data/delhi.toml
var delhiTOML []byte

// Default returns the built-in Delhi Metro document.
func Default() *Document {
	doc, err := Read(bytes.NewReader(delhiTOML), FormatTOML)
	if err != nil {
		panic(fmt.Sprintf("netdata: embedded network: %v", err))
	}
	return doc
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", merrors.New(merrors.ErrCodeInvalidFormat, "unsupported network file %q", path)
}

// ParseFormat validates a format name given on the command line.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatTOML, FormatYAML, FormatJSON:
		return f, nil
	case "yml":
		return FormatYAML, nil
	}
	return "", merrors.New(merrors.ErrCodeInvalidFormat, "unsupported format %q (want toml, yaml or json)", s)
}

// =============================================================================
// Reading
// =============================================================================

// ReadFile reads a document, choosing the format from the extension.
func ReadFile(path string) (*Document, error) {
	if err := merrors.ValidateDataPath(path); err != nil {
		return nil, err
	}
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, merrors.Wrap(merrors.ErrCodeFileNotFound, err, "network file %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f, format)
}

// Read decodes a document. Unknown keys are an error.
func Read(r io.Reader, format Format) (*Document, error) {
	var doc Document
	var err error
	switch format {
	case FormatTOML:
		err = decodeTOML(r, &doc)
	case FormatYAML:
		err = decodeYAML(r, &doc)
	case FormatJSON:
		err = decodeJSON(r, &doc)
	default:
		return nil, merrors.New(merrors.ErrCodeInvalidFormat, "unsupported format %q", format)
	}
	if err != nil {
		return nil, merrors.Wrap(merrors.ErrCodeInvalidNetwork, err, "decode %s", format)
	}
	return &doc, nil
}

func decodeTOML(r io.Reader, doc *Document) error {
	md, err := toml.NewDecoder(r).Decode(doc)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown keys: %v", undecoded)
	}
	return nil
}

func decodeYAML(r io.Reader, doc *Document) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(doc); err != nil {
		if err == io.EOF {
			return fmt.Errorf("empty document")
		}
		return err
	}
	return nil
}

func decodeJSON(r io.Reader, doc *Document) error {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	return dec.Decode(doc)
}

// =============================================================================
// Writing
// =============================================================================

// WriteFile writes a document, choosing the format from the extension.
// The file is created with 0644 permissions.
func WriteFile(doc *Document, path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Write(f, doc, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Write encodes a document.
func Write(w io.Writer, doc *Document, format Format) error {
	switch format {
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(doc); err != nil {
			return fmt.Errorf("encode toml: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
	default:
		return merrors.New(merrors.ErrCodeInvalidFormat, "unsupported format %q", format)
	}
	return nil
}

// Marshal encodes a document to bytes.
func Marshal(doc *Document, format Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, doc, format); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Load reads path and builds the network. An empty path loads [Default].
func Load(path string) (*Network, error) {
	if path == "" {
		return Default().Build()
	}
	doc, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return doc.Build()
}
