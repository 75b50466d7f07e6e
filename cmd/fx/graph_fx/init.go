package graph_fx

import (
	"go.uber.org/fx"

	"cityguide/internal/graph"
)

var Module = fx.Provide(
	graph.NewResolver,
	graph.NewSchema,
	graph.NewHandler,
)
