package model

type PatternsResponse struct {
	Total    int             `json:"total"`
	Patterns []RankedPattern `json:"patterns"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
