// Package graph serves the catalog over GraphQL. Every query and mutation
// delegates to the service layer; gated mutations check the caller's role
// first.
package graph

import (
	"context"
	_ "embed"
	"fmt"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
	"go.uber.org/zap"
)

//go:embed schema.graphql
var schemaString string

const maxQueryDepth = 12

// NewSchema parses the embedded schema and binds it to resolver. Binding
// fails when a resolver method does not match the schema.
func NewSchema(resolver *Resolver, log *zap.Logger) (*graphql.Schema, error) {
	schema, err := graphql.ParseSchema(schemaString, resolver,
		graphql.MaxDepth(maxQueryDepth),
		graphql.Logger(panicLogger{log: log.Named("graphql")}),
	)
	if err != nil {
		return nil, fmt.Errorf("parse graphql schema: %w", err)
	}
	return schema, nil
}

func NewHandler(schema *graphql.Schema) *relay.Handler {
	return &relay.Handler{Schema: schema}
}

type panicLogger struct {
	log *zap.Logger
}

func (l panicLogger) LogPanic(_ context.Context, value interface{}) {
	l.log.Error("resolver panic", zap.Any("panic", value), zap.Stack("stack"))
}
