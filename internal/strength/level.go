package strength

import "fmt"

// Level is the qualitative label derived from a report's percent.
type Level int

const (
	Weak Level = iota
	Medium
	Good
	Excellent
)

var levelNames = map[Level]string{
	Weak:      "Weak",
	Medium:    "Medium",
	Good:      "Good",
	Excellent: "Excellent",
}

// LevelFor maps a percent score onto a Level.
func LevelFor(percent int) Level {
	switch {
	case percent >= 90:
		return Excellent
	case percent >= 70:
		return Good
	case percent >= 50:
		return Medium
	default:
		return Weak
	}
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

func (l Level) MarshalText() ([]byte, error) {
	if _, ok := levelNames[l]; !ok {
		return nil, fmt.Errorf("unknown strength level %d", int(l))
	}
	return []byte(l.String()), nil
}

func (l *Level) UnmarshalText(text []byte) error {
	for level, name := range levelNames {
		if name == string(text) {
			*l = level
			return nil
		}
	}
	return fmt.Errorf("unknown strength level %q", text)
}
