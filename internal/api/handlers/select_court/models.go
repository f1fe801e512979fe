package select_court

// SelectCourtRequest HTTP request model
type SelectCourtRequest struct {
	Sport   string `json:"sport"`
	CourtID string `json:"courtId"`
}
