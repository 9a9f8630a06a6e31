package graphio

import (
	"errors"

	"github.com/katalvlaran/lvpath/core"
)

// Sentinel errors.
var (
	// ErrUnknownFormat indicates a file extension or Format value that no
	// codec handles.
	ErrUnknownFormat = errors.New("graphio: unknown document format")

	// ErrUnknownCompression indicates an unsupported Compression value.
	ErrUnknownCompression = errors.New("graphio: unknown compression")

	// ErrInvalidDocument indicates a document that failed validation.
	ErrInvalidDocument = errors.New("graphio: invalid document")
)

// Format names a document encoding.
type Format string

const (
	FormatJSON    Format = "json"
	FormatYAML    Format = "yaml"
	FormatMsgPack Format = "msgpack"
)

// Compression names the compression applied on top of the encoding.
type Compression string

const (
	CompressionNone Compression = "none"
	CompressionZstd Compression = "zstd"
)

// EdgeSpec is a single directed edge in a document's edge list.
type EdgeSpec struct {
	From   string `json:"from" yaml:"from" msgpack:"from" validate:"required"`
	To     string `json:"to" yaml:"to" msgpack:"to" validate:"required"`
	Weight int64  `json:"weight" yaml:"weight" msgpack:"weight" validate:"gte=0"`
}

// Document is the serialized form of a graph and an optional query.
type Document struct {
	// Name is a free-form label.
	Name string `json:"name,omitempty" yaml:"name,omitempty" msgpack:"name,omitempty" validate:"max=256"`

	// Start and Target preset the query endpoints; both are optional.
	Start  string `json:"start,omitempty" yaml:"start,omitempty" msgpack:"start,omitempty"`
	Target string `json:"target,omitempty" yaml:"target,omitempty" msgpack:"target,omitempty"`

	// Graph is the adjacency mapping Graph[from][to] = weight.
	Graph core.Graph `json:"graph,omitempty" yaml:"graph,omitempty" msgpack:"graph,omitempty" validate:"omitempty,dive,keys,required,endkeys"`

	// Edges is applied after Graph; a repeated pair keeps the last weight.
	Edges []EdgeSpec `json:"edges,omitempty" yaml:"edges,omitempty" msgpack:"edges,omitempty" validate:"dive"`
}
