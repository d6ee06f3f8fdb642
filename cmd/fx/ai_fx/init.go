package ai_fx

import (
	"log"

	"go.uber.org/fx"

	"kissan/internal/config"
	"kissan/pkg/ai"
)

var Module = fx.Provide(provideAIClient)

func provideAIClient(cfg config.Config) ai.Client {
	client, err := ai.NewClient(cfg.AIProvider, cfg.AIAPIKey, cfg.AIModel)
	if err != nil {
		log.Fatalf("Failed to create AI client: %v", err)
	}
	return client
}
