//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"

	"memomaker/internal/app/pipeline"
)

// InitializePipeline wires the full processing pipeline: env-configured API
// keys, the selected inference provider, the submission router and the
// sqlite run-history store.
func InitializePipeline() *pipeline.Pipeline {
	wire.Build(
		pipeline.NewPipeline,
		provideRouter,
		provideInferenceClient,
		provideAPIKeys,
		provideRunDAO,
		provideLogger,
	)
	return &pipeline.Pipeline{}
}
