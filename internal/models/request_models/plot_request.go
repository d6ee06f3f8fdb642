package request_models

// Area arrives as a string because the form field is free text; the
// service parses and validates it.
type SavePlotRequest struct {
	Name     string `json:"name" binding:"required"`
	Crop     string `json:"crop" binding:"required"`
	Area     string `json:"area" binding:"required"`
	Location string `json:"location"`
	Status   string `json:"status"`
}
