package model

import "github.com/vaultpass/pwtool/internal/strength"

// CheckRequest carries the password to score.
type CheckRequest struct {
	Password string `json:"password" validate:"max=256"`
}

// CheckResponse is the checklist report plus the zxcvbn estimate.
type CheckResponse struct {
	Checks   []strength.Result `json:"checks"`
	Passed   int               `json:"passed"`
	Total    int               `json:"total"`
	Percent  int               `json:"percent"`
	Level    strength.Level    `json:"level"`
	Estimate strength.Estimate `json:"estimate"`
}
