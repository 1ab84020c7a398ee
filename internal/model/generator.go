package model

// GenerateRequest is the body of POST /api/v1/generate and the input of
// `pwtool generate`. Omitted Digits or Special mean enabled; Length 0 means
// the configured default.
type GenerateRequest struct {
	Length  int   `json:"length" validate:"gte=0,lte=128"`
	Digits  *bool `json:"digits"`
	Special *bool `json:"special"`
}

// GenerateResponse carries one password and its length in characters.
type GenerateResponse struct {
	Password string `json:"password"`
	Length   int    `json:"length"`
}
