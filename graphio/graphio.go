package graphio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const zstdSuffix = ".zst"

// DetectFormat infers the encoding and compression of path from its
// extension, case-insensitively. "graph.yaml.zst" is zstd-compressed YAML.
func DetectFormat(path string) (Format, Compression, error) {
	name := strings.ToLower(filepath.Base(path))

	comp := CompressionNone
	if strings.HasSuffix(name, zstdSuffix) {
		comp = CompressionZstd
		name = strings.TrimSuffix(name, zstdSuffix)
	}

	switch filepath.Ext(name) {
	case ".json":
		return FormatJSON, comp, nil
	case ".yaml", ".yml":
		return FormatYAML, comp, nil
	case ".msgpack", ".mpk":
		return FormatMsgPack, comp, nil
	default:
		return "", "", fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

// Decode decompresses and decodes data, then validates the result.
func Decode(data []byte, f Format, c Compression) (*Document, error) {
	codec, err := CodecFor(f)
	if err != nil {
		return nil, err
	}

	raw, err := decompress(data, c)
	if err != nil {
		return nil, fmt.Errorf("graphio: decompress %s: %w", c, err)
	}

	var doc Document
	if err = codec.Decode(raw, &doc); err != nil {
		return nil, fmt.Errorf("graphio: decode %s: %w", f, err)
	}
	if err = doc.Validate(); err != nil {
		return nil, err
	}

	return &doc, nil
}

// Encode validates doc, encodes it in f and applies c.
func Encode(doc *Document, f Format, c Compression) ([]byte, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	codec, err := CodecFor(f)
	if err != nil {
		return nil, err
	}

	data, err := codec.Encode(doc)
	if err != nil {
		return nil, fmt.Errorf("graphio: encode %s: %w", f, err)
	}

	out, err := compress(data, c)
	if err != nil {
		return nil, fmt.Errorf("graphio: compress %s: %w", c, err)
	}

	return out, nil
}

// Load reads the document at path, choosing the codec with DetectFormat.
func Load(path string) (*Document, error) {
	f, c, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: %w", err)
	}

	doc, err := Decode(data, f, c)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

// Save writes doc to path, choosing the codec with DetectFormat.
func Save(path string, doc *Document) error {
	f, c, err := DetectFormat(path)
	if err != nil {
		return err
	}

	data, err := Encode(doc, f, c)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("graphio: %w", err)
	}

	return nil
}
