// Package strength scores a password against a fixed checklist of heuristics.
package strength

import (
	"math"
	"strings"
	"unicode/utf8"
)

// MinLength is the character count the length check requires.
const MinLength = 12

const specialChars = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Name identifies one check.
type Name string

const (
	Length    Name = "length"
	Lowercase Name = "lowercase"
	Uppercase Name = "uppercase"
	Digits    Name = "digits"
	Special   Name = "special"
	Common    Name = "common"
	Repeats   Name = "repeats"
	Sequences Name = "sequences"
)

var commonPasswords = map[string]struct{}{
	"password":  {},
	"123456":    {},
	"qwerty":    {},
	"admin":     {},
	"welcome":   {},
	"12345678":  {},
	"abc123":    {},
	"password1": {},
	"12345":     {},
	"123456789": {},
}

var sequences = [...]string{
	"123", "234", "345", "456", "567", "678", "789",
	"qwe", "wer", "ert", "rty", "tyu", "yui", "uio", "iop",
	"asd", "sdf", "dfg", "fgh", "ghj", "hjk", "jkl",
	"zxc", "xcv", "cvb", "vbn", "bnm",
}

type rule struct {
	name Name
	pass func(string) bool
}

var rules = [...]rule{
	{Length, hasMinLength},
	{Lowercase, func(s string) bool { return containsRange(s, 'a', 'z') }},
	{Uppercase, func(s string) bool { return containsRange(s, 'A', 'Z') }},
	{Digits, func(s string) bool { return containsRange(s, '0', '9') }},
	{Special, func(s string) bool { return strings.ContainsAny(s, specialChars) }},
	{Common, notCommon},
	{Repeats, noTripleRepeat},
	{Sequences, noKnownSequence},
}

// Names returns every check name in report order.
func Names() []Name {
	names := make([]Name, len(rules))
	for i, r := range rules {
		names[i] = r.name
	}
	return names
}

// Result is the outcome of a single check.
type Result struct {
	Name   Name `json:"name"`
	Passed bool `json:"passed"`
}

// Report is the outcome of every check for one password.
type Report struct {
	Checks  []Result `json:"checks"`
	Passed  int      `json:"passed"`
	Total   int      `json:"total"`
	Percent int      `json:"percent"`
	Level   Level    `json:"level"`
}

// Check reports whether the named check passed. Unknown names report false.
func (r Report) Check(name Name) bool {
	for _, c := range r.Checks {
		if c.Name == name {
			return c.Passed
		}
	}
	return false
}

// Check evaluates password against every rule. It never fails; weak or empty
// input simply produces a low score.
func Check(password string) Report {
	report := Report{
		Checks: make([]Result, 0, len(rules)),
		Total:  len(rules),
	}
	for _, r := range rules {
		ok := r.pass(password)
		if ok {
			report.Passed++
		}
		report.Checks = append(report.Checks, Result{Name: r.name, Passed: ok})
	}
	report.Percent = Percent(report.Passed, report.Total)
	report.Level = LevelFor(report.Percent)
	return report
}

// Percent returns 100*passed/total rounded half away from zero.
func Percent(passed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(passed) / float64(total)))
}

func hasMinLength(s string) bool {
	return utf8.RuneCountInString(s) >= MinLength
}

func containsRange(s string, lo, hi rune) bool {
	for _, r := range s {
		if r >= lo && r <= hi {
			return true
		}
	}
	return false
}

// notCommon fails on the denylist and on the empty password.
func notCommon(s string) bool {
	if s == "" {
		return false
	}
	_, found := commonPasswords[strings.ToLower(s)]
	return !found
}

func noTripleRepeat(s string) bool {
	runes := []rune(s)
	for i := 2; i < len(runes); i++ {
		if runes[i] == runes[i-1] && runes[i] == runes[i-2] {
			return false
		}
	}
	return true
}

func noKnownSequence(s string) bool {
	lower := strings.ToLower(s)
	for _, seq := range sequences {
		if strings.Contains(lower, seq) {
			return false
		}
	}
	return true
}
