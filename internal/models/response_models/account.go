package response_models

type SessionResponse struct {
	UserID string `json:"user_id,omitempty"`
	Email  string `json:"email,omitempty"`
	Name   string `json:"name,omitempty"`
}

type ProfileResponse struct {
	DisplayName string `json:"display_name"`
	FarmName    string `json:"farm_name"`
	Location    string `json:"location"`
	FarmingType string `json:"farming_type"`
	LandSize    string `json:"land_size"`
	PrimaryCrop string `json:"primary_crop"`
	Language    string `json:"language"`
	Theme       string `json:"theme"`
	Complete    bool   `json:"complete"`
	UpdatedAt   int64  `json:"updated_at"`
}

type PlotResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Crop      string  `json:"crop"`
	Area      float64 `json:"area"`
	Location  string  `json:"location"`
	Status    string  `json:"status"`
	CreatedAt int64   `json:"created_at"`
}

type SchemeResponse struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Deadline    string   `json:"deadline"`
	Status      string   `json:"status"`
	Link        string   `json:"link"`
	Tags        []string `json:"tags"`
}
