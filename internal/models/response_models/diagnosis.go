package response_models

type CropStatus string

const (
	CropHealthy      CropStatus = "Healthy"
	CropDiseased     CropStatus = "Diseased"
	CropPestAffected CropStatus = "Pest Affected"
)

type Severity string

const (
	SeverityNone     Severity = "None"
	SeverityLow      Severity = "Low"
	SeverityModerate Severity = "Moderate"
	SeverityHigh     Severity = "High"
)

// Diagnosis is the shaped result of one crop-image analysis. Simulated is
// set only on the canned fallback path so a demo answer is never mistaken
// for a genuine model result.
type Diagnosis struct {
	Plant      string     `json:"plant"`
	Status     CropStatus `json:"status"`
	Disease    *string    `json:"disease"`
	Severity   Severity   `json:"severity"`
	Confidence int        `json:"confidence"`
	Treatment  string     `json:"treatment"`
	Prevention string     `json:"prevention"`
	Simulated  bool       `json:"simulated,omitempty"`
}
