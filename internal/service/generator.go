package service

import (
	"unicode/utf8"

	"github.com/vaultpass/pwtool/internal/crypto"
	"github.com/vaultpass/pwtool/internal/model"
)

// GeneratorService applies request defaults before handing off to crypto.Generate.
type GeneratorService struct {
	defaultLength int
}

// NewGeneratorService creates a new GeneratorService. A non-positive
// defaultLength falls back to crypto.DefaultLength.
func NewGeneratorService(defaultLength int) *GeneratorService {
	if defaultLength <= 0 {
		defaultLength = crypto.DefaultLength
	}
	return &GeneratorService{defaultLength: defaultLength}
}

// Generate fills in defaults for omitted fields and returns one password.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	opts := crypto.GeneratorOptions{
		Length:  req.Length,
		Digits:  enabled(req.Digits),
		Special: enabled(req.Special),
	}

	if opts.Length == 0 {
		opts.Length = s.defaultLength
	}

	password, err := crypto.Generate(opts)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	return model.GenerateResponse{
		Password: password,
		Length:   utf8.RuneCountInString(password),
	}, nil
}

// enabled treats an omitted class toggle as switched on.
func enabled(toggle *bool) bool {
	return toggle == nil || *toggle
}
