package crophealth_fx

import (
	"go.uber.org/fx"

	"kissan/internal/services"
	"kissan/pkg/ai"
)

var Module = fx.Provide(provideCropHealthService)

func provideCropHealthService(aiClient ai.Client) services.CropHealthServiceInterface {
	return services.NewCropHealthService(aiClient)
}
