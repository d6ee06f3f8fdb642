package request_models

type SaveProfileRequest struct {
	DisplayName string `json:"display_name"`
	FarmName    string `json:"farm_name"`
	Location    string `json:"location"`
	FarmingType string `json:"farming_type"`
	LandSize    string `json:"land_size"`
	PrimaryCrop string `json:"primary_crop"`
	Language    string `json:"language"`
	Theme       string `json:"theme"`
}
