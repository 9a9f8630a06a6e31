package graphio

import (
	"encoding/json"
	"fmt"

	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// Codec encodes and decodes values in one Format.
type Codec interface {
	Encode(v interface{}) ([]byte, error)
	Decode(data []byte, v interface{}) error
	Format() Format
}

type jsonCodec struct{}

func (jsonCodec) Encode(v interface{}) ([]byte, error) { return json.MarshalIndent(v, "", "  ") }

func (jsonCodec) Decode(data []byte, v interface{}) error { return json.Unmarshal(data, v) }

func (jsonCodec) Format() Format { return FormatJSON }

type yamlCodec struct{}

func (yamlCodec) Encode(v interface{}) ([]byte, error) { return yaml.Marshal(v) }

func (yamlCodec) Decode(data []byte, v interface{}) error { return yaml.Unmarshal(data, v) }

func (yamlCodec) Format() Format { return FormatYAML }

type msgpackCodec struct{}

func (msgpackCodec) Encode(v interface{}) ([]byte, error) { return msgpack.Marshal(v) }

func (msgpackCodec) Decode(data []byte, v interface{}) error { return msgpack.Unmarshal(data, v) }

func (msgpackCodec) Format() Format { return FormatMsgPack }

// CodecFor returns the Codec for f.
func CodecFor(f Format) (Codec, error) {
	switch f {
	case FormatJSON:
		return jsonCodec{}, nil
	case FormatYAML:
		return yamlCodec{}, nil
	case FormatMsgPack:
		return msgpackCodec{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// compress applies c to data.
func compress(data []byte, c Compression) ([]byte, error) {
	switch c {
	case CompressionNone, "":
		return data, nil
	case CompressionZstd:
		enc, err := zstd.NewWriter(nil)
		if err != nil {
			return nil, err
		}
		defer enc.Close()

		return enc.EncodeAll(data, nil), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCompression, c)
	}
}

// decompress reverses compress.
func decompress(data []byte, c Compression) ([]byte, error) {
	switch c {
	case CompressionNone, "":
		return data, nil
	case CompressionZstd:
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, err
		}
		defer dec.Close()

		return dec.DecodeAll(data, nil)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCompression, c)
	}
}
