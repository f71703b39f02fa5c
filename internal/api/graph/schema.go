// Package graph exposes the garage over GraphQL. The schema is written in SDL
// and bound to reflective resolvers by graph-gophers/graphql-go.
package graph

import (
	"carlot/internal/garage"
	_ "embed"
	"fmt"

	graphql "github.com/graph-gophers/graphql-go"
)

//go:embed schema.graphql
var sdl string

// DefaultMaxDepth is used when Options.MaxDepth is not positive.
const DefaultMaxDepth = 10

type Options struct {
	MaxDepth int
}

// SDL returns the GraphQL schema definition served by NewSchema.
func SDL() string {
	return sdl
}

// NewSchema parses the schema and binds it to a resolver backed by g.
func NewSchema(g garage.Garage, options Options) (*graphql.Schema, error) {
	depth := options.MaxDepth
	if depth <= 0 {
		depth = DefaultMaxDepth
	}

	schema, err := graphql.ParseSchema(sdl, NewResolver(g),
		graphql.MaxDepth(depth),
		graphql.Logger(panicLogger{}),
	)
	if err != nil {
		return nil, fmt.Errorf("could not parse graphql schema: %w", err)
	}

	return schema, nil
}
