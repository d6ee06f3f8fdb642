package controllers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"kissan/internal/services"
	"kissan/pkg/utils"
)

// Image uploads are capped at 10 MB, matching the upload widget.
const maxImageBytes = 10 << 20

type CropHealthController struct {
	cropHealthService services.CropHealthServiceInterface
}

func NewCropHealthController(cropHealthService services.CropHealthServiceInterface) *CropHealthController {
	return &CropHealthController{
		cropHealthService: cropHealthService,
	}
}

// Analyze accepts raw image bytes with their Content-Type and returns a
// diagnosis.
func (h *CropHealthController) Analyze(c *gin.Context) {
	image, err := io.ReadAll(io.LimitReader(c.Request.Body, maxImageBytes+1))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Could not read image")
		return
	}
	if len(image) == 0 {
		utils.RespondError(c, http.StatusBadRequest, "Image body is required")
		return
	}
	if len(image) > maxImageBytes {
		utils.RespondError(c, http.StatusRequestEntityTooLarge, "Image exceeds 10MB limit")
		return
	}

	diagnosis, err := h.cropHealthService.Analyze(c.Request.Context(), c.ContentType(), image)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, diagnosis, "Analysis complete")
}
