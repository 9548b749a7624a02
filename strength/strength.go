// Package strength estimates how hard a password is to crack.
// Scoring is delegated to zxcvbn-go, this package only shapes its result
// into a score, a crack time and human readable feedback.
package strength

import (
	"fmt"
	"strings"

	zxcvbn "github.com/ccojocar/zxcvbn-go"
)

// MaxScore is the best score a password can get
const MaxScore = 4

// Feedback explains a weak score
type Feedback struct {
	// Warning is empty when there is nothing specific to warn about
	Warning     string
	Suggestions []string
}

// Result of a password analysis
type Result struct {
	Password string
	// Score from 0 (too guessable) to MaxScore (very unguessable)
	Score int
	// Entropy in bits of the cheapest match sequence
	Entropy float64
	// CrackTime is a human readable crack time estimate ex: `3.0 hours`
	CrackTime        string
	CrackTimeSeconds float64
	Feedback         Feedback
}

// String renders result the way the cli prints it
func (r *Result) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Score: %d / %d\n", r.Score, MaxScore)
	fmt.Fprintf(&sb, "Crack Time: %s\n", r.CrackTime)
	sb.WriteString("Feedback:")
	if r.Feedback.Warning != "" {
		sb.WriteString(" " + r.Feedback.Warning)
	}
	for _, v := range r.Feedback.Suggestions {
		sb.WriteString(" " + v)
	}
	return sb.String()
}

// Scorer estimates password strength.
// userInputs are personal strings (name, pet name ..) the password should not be built from
type Scorer interface {
	Analyze(password string, userInputs ...string) *Result
}

// ZxcvbnScorer is a Scorer backed by zxcvbn-go
type ZxcvbnScorer struct{}

// New returns a zxcvbn backed Scorer
func New() *ZxcvbnScorer {
	return &ZxcvbnScorer{}
}

// Analyze scores password
func (z *ZxcvbnScorer) Analyze(password string, userInputs ...string) *Result {
	if password == "" {
		return &Result{CrackTime: "instant", Feedback: defaultFeedback()}
	}
	var inputs []string
	for _, v := range userInputs {
		if v = strings.TrimSpace(v); v != "" {
			inputs = append(inputs, strings.ToLower(v))
		}
	}
	m := zxcvbn.PasswordStrength(password, inputs)
	return &Result{
		Password:         password,
		Score:            m.Score,
		Entropy:          m.Entropy,
		CrackTime:        m.CrackTimeDisplay,
		CrackTimeSeconds: m.CrackTime,
		Feedback:         feedbackFor(password, m.Score, m.MatchSequence),
	}
}

// Analyze scores password using zxcvbn-go
func Analyze(password string, userInputs ...string) *Result {
	return New().Analyze(password, userInputs...)
}
