package graphio

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/lvpath/core"
)

// validate checks Document struct tags. Field names in errors follow the
// json tags ("edges[0].from").
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}

		return name
	})

	return v
}

// Validate reports whether d is a well-formed document. Struct rule
// failures and core.Graph.Validate failures are both wrapped in
// ErrInvalidDocument; the latter keeps the core sentinel in the chain.
func (d *Document) Validate() error {
	if d == nil {
		return fmt.Errorf("%w: nil document", ErrInvalidDocument)
	}
	if err := validate.Struct(d); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if err := d.Graph.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	return nil
}

// ToGraph builds a fresh core.Graph from the adjacency mapping followed by
// the edge list. The document is not modified.
func (d *Document) ToGraph() (core.Graph, error) {
	g := d.Graph.Clone()
	if g == nil {
		g = core.NewGraph()
	}

	for i, e := range d.Edges {
		if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("%w: edges[%d]: %w", ErrInvalidDocument, i, err)
		}
	}

	return g, nil
}

// FromGraph wraps a copy of g in a Document named name.
func FromGraph(name string, g core.Graph) *Document {
	return &Document{Name: name, Graph: g.Clone()}
}
