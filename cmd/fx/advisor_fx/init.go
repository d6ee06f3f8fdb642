package advisor_fx

import (
	"time"

	"go.uber.org/fx"

	"kissan/internal/services"
	"kissan/pkg/ai"
	"kissan/pkg/memcache"
)

var Module = fx.Provide(
	provideAdvisorService, provideChatHistory)

func provideChatHistory() memcache.ChatHistoryStore {
	return memcache.NewChatHistory(30 * time.Minute)
}

func provideAdvisorService(aiClient ai.Client, history memcache.ChatHistoryStore) services.AdvisorServiceInterface {
	return services.NewAdvisorService(aiClient, history)
}
