package services

import (
	"context"
	"log"
	"strings"
	"sync/atomic"

	"kissan/internal/models/response_models"
	"kissan/pkg/ai"
	"kissan/pkg/utils"
)

type CropHealthServiceInterface interface {
	// Analyze sends one image to the vision model and shapes its reply
	// into a Diagnosis. When the model is unreachable it substitutes a
	// canned result carrying the simulated marker; a reply that arrives
	// but cannot be parsed stays a hard error.
	Analyze(ctx context.Context, mimeType string, image []byte) (*response_models.Diagnosis, error)
}

type CropHealthService struct {
	aiClient    ai.Client
	fallbackIdx atomic.Uint64
}

func NewCropHealthService(aiClient ai.Client) CropHealthServiceInterface {
	return &CropHealthService{aiClient: aiClient}
}

func (c *CropHealthService) Analyze(ctx context.Context, mimeType string, image []byte) (*response_models.Diagnosis, error) {
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	text, err := c.aiClient.AnalyzeImage(ctx, mimeType, image)
	if err != nil {
		log.Printf("Crop health model error: %v", err)
		return c.simulatedDiagnosis(), nil
	}

	diagnosis, err := ParseDiagnosis(text)
	if err != nil {
		return nil, err
	}
	return diagnosis, nil
}

// ParseDiagnosis extracts the diagnosis object embedded in a model reply.
// Missing or unbalanced JSON is a hard error, never a partial result.
func ParseDiagnosis(text string) (*response_models.Diagnosis, error) {
	var diagnosis response_models.Diagnosis
	if err := utils.ExtractJSONObject(text, &diagnosis); err != nil {
		return nil, err
	}

	if diagnosis.Status == "" {
		diagnosis.Status = response_models.CropHealthy
	}
	if diagnosis.Severity == "" {
		diagnosis.Severity = response_models.SeverityNone
	}
	if diagnosis.Confidence < 0 {
		diagnosis.Confidence = 0
	}
	if diagnosis.Confidence > 100 {
		diagnosis.Confidence = 100
	}
	return &diagnosis, nil
}

// DiagnosisFromLabel maps a classifier's label+confidence pair into the
// diagnosis shape via substring checks on the label.
func DiagnosisFromLabel(label string, confidence int) *response_models.Diagnosis {
	lower := strings.ToLower(label)
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 100 {
		confidence = 100
	}

	switch {
	case strings.Contains(lower, "healthy"):
		return &response_models.Diagnosis{
			Plant:      label,
			Status:     response_models.CropHealthy,
			Severity:   response_models.SeverityNone,
			Confidence: confidence,
			Treatment:  "No treatment needed. Keep up the current care routine.",
			Prevention: "Continue regular monitoring and balanced fertilization.",
		}
	case strings.Contains(lower, "rust"):
		disease := "Yellow Rust"
		return &response_models.Diagnosis{
			Plant:      label,
			Status:     response_models.CropDiseased,
			Disease:    &disease,
			Severity:   response_models.SeverityModerate,
			Confidence: confidence,
			Treatment:  "Spray Propiconazole (0.1%) immediately. Repeat after 15 days if stripes persist.",
			Prevention: "Sow rust-resistant varieties and avoid excess nitrogen.",
		}
	default:
		disease := "Unidentified disease"
		return &response_models.Diagnosis{
			Plant:      label,
			Status:     response_models.CropDiseased,
			Disease:    &disease,
			Severity:   response_models.SeverityModerate,
			Confidence: confidence,
			Treatment:  "Remove affected leaves and apply a broad-spectrum fungicide. Consult your local agriculture extension officer.",
			Prevention: "Rotate crops, avoid overhead watering, and keep the field weed-free.",
		}
	}
}

// Canned outcomes served when the model is unreachable. Selection is
// deterministic (round-robin) so callers and tests can pin the sequence;
// the Simulated flag keeps these visibly distinct from genuine results.
var simulatedDiagnoses = []response_models.Diagnosis{
	{
		Plant:      "Wheat",
		Status:     response_models.CropHealthy,
		Severity:   response_models.SeverityNone,
		Confidence: 94,
		Treatment:  "No treatment needed. Crop looks healthy.",
		Prevention: "Maintain irrigation schedule and monitor weekly for early signs of rust.",
		Simulated:  true,
	},
	{
		Plant:      "Wheat",
		Status:     response_models.CropDiseased,
		Disease:    strPtr("Yellow Rust"),
		Severity:   response_models.SeverityModerate,
		Confidence: 88,
		Treatment:  "Spray Propiconazole (0.1%) immediately. Repeat after 15 days if symptoms persist.",
		Prevention: "Use resistant varieties like PBW 343. Avoid late sowing.",
		Simulated:  true,
	},
	{
		Plant:      "Cotton",
		Status:     response_models.CropPestAffected,
		Disease:    strPtr("Bollworm Infestation"),
		Severity:   response_models.SeverityHigh,
		Confidence: 91,
		Treatment:  "Apply recommended insecticide at dusk. Install pheromone traps, 5 per acre.",
		Prevention: "Monitor weekly with traps and destroy crop residue after harvest.",
		Simulated:  true,
	},
}

func (c *CropHealthService) simulatedDiagnosis() *response_models.Diagnosis {
	idx := c.fallbackIdx.Add(1) - 1
	diagnosis := simulatedDiagnoses[idx%uint64(len(simulatedDiagnoses))]
	return &diagnosis
}

func strPtr(s string) *string { return &s }
