package strength

import "github.com/nbutton23/zxcvbn-go"

// maxEstimatedLen bounds the input handed to zxcvbn, whose matching cost grows
// quickly with length.
const maxEstimatedLen = 50

// Estimate is a pattern-based guessability estimate, reported alongside the
// checklist rather than folded into it.
type Estimate struct {
	Score     int     `json:"score"`
	Entropy   float64 `json:"entropy_bits"`
	CrackTime string  `json:"crack_time"`
}

// EstimateOf runs zxcvbn over the first 50 characters of password.
// Score ranges from 0 (too guessable) to 4 (very unguessable).
func EstimateOf(password string) Estimate {
	if password == "" {
		return Estimate{CrackTime: "instant"}
	}
	runes := []rune(password)
	if len(runes) > maxEstimatedLen {
		password = string(runes[:maxEstimatedLen])
	}
	match := zxcvbn.PasswordStrength(password, nil)
	return Estimate{
		Score:     match.Score,
		Entropy:   match.Entropy,
		CrackTime: match.CrackTimeDisplay,
	}
}
