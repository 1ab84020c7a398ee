package service

import (
	"github.com/vaultpass/pwtool/internal/model"
	"github.com/vaultpass/pwtool/internal/strength"
)

// StrengthService scores candidate passwords.
type StrengthService struct{}

// NewStrengthService creates a new StrengthService.
func NewStrengthService() *StrengthService {
	return &StrengthService{}
}

// Check runs the checklist and the zxcvbn estimate over req.Password.
func (s *StrengthService) Check(req model.CheckRequest) model.CheckResponse {
	report := strength.Check(req.Password)
	return model.CheckResponse{
		Checks:   report.Checks,
		Passed:   report.Passed,
		Total:    report.Total,
		Percent:  report.Percent,
		Level:    report.Level,
		Estimate: strength.EstimateOf(req.Password),
	}
}
