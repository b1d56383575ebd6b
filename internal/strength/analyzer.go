package strength

import (
	"fmt"
	"math"

	"github.com/nao1215/pwstrength/internal/wordlist"
)

// Scoring constants. They are tuned together; changing one shifts every score.
const (
	maxBaseScore      = 80.0 // points awarded at fullEntropyBits
	fullEntropyBits   = 60.0
	maxLengthBonus    = 15.0
	bonusPerChar      = 1.5
	bonusFromLength   = 8
	prePenaltyCeiling = 95.0

	sequencePenalty        = 15.0
	repeatPenalty          = 15.0
	commonSubstringPenalty = 20.0
	singleClassPenalty     = 25.0
	shortPenaltyPerChar    = 6

	minLength         = 8
	recommendedLength = 12

	commonPasswordScore = 5
	minScore            = 0.0
	maxScore            = 100.0

	// minWindow is the smallest usable detector window. Windows of 0 or 1
	// match every non-empty string.
	minWindow = 2
)

// Feedback text, keyed by reason code.
const (
	msgEmpty           = "empty password"
	msgCommonPassword  = "password is in a common-password list"
	msgSequence        = "contains increasing/decreasing sequence (e.g. 'abcd' or '1234')"
	msgRepeatedChars   = "contains long repeated characters (e.g. 'aaaa')"
	msgCommonSubstring = "contains a common substring: '%s'"
	msgShort           = "short password (less than 8 characters)"
	msgLengthAdvisory  = "consider a longer passphrase (12+ characters recommended)"
	msgSingleClass     = "uses only one character class (add uppercase, digits, or symbols)"
	msgNoWeakness      = "no obvious weaknesses detected"
)

// Analyzer scores passwords against a fixed common-password set.
// It is immutable after construction and safe for concurrent use.
type Analyzer struct {
	common         *wordlist.Set
	sequenceWindow int
	repeatRun      int
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithSequenceWindow sets the run length HasSequence looks for.
// Values below 2 keep the default.
func WithSequenceWindow(n int) Option {
	return func(a *Analyzer) {
		if n >= minWindow {
			a.sequenceWindow = n
		}
	}
}

// WithRepeatRun sets the run length HasRepeatedRun looks for.
// Values below 2 keep the default.
func WithRepeatRun(n int) Option {
	return func(a *Analyzer) {
		if n >= minWindow {
			a.repeatRun = n
		}
	}
}

// NewAnalyzer creates an Analyzer. A nil or empty set disables the
// common-password check.
func NewAnalyzer(common *wordlist.Set, opts ...Option) *Analyzer {
	a := &Analyzer{
		common:         common,
		sequenceWindow: DefaultSequenceWindow,
		repeatRun:      DefaultRepeatRun,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// SequenceWindow returns the configured sequence window.
func (a *Analyzer) SequenceWindow() int { return a.sequenceWindow }

// RepeatRun returns the configured repeat run length.
func (a *Analyzer) RepeatRun() int { return a.repeatRun }

// Analyze scores password. It never fails: every input, including the empty
// string and arbitrary bytes, produces a Result with a score in [0, 100] and
// at least one reason.
func (a *Analyzer) Analyze(password string) *Result {
	if password == "" {
		return &Result{
			Reasons: []Reason{{Code: ReasonEmpty, Message: msgEmpty}},
		}
	}

	classes := Classify(password)
	length := len(password)
	result := &Result{
		PoolEntropyBits:    poolEntropy(classes, length),
		ShannonEntropyBits: ShannonEntropy(password),
		Length:             length,
		Classes:            classes,
	}

	// A known common password ends the analysis regardless of entropy.
	if a.common.Contains(password) {
		result.Score = commonPasswordScore
		result.Reasons = []Reason{{Code: ReasonCommonPassword, Message: msgCommonPassword}}
		return result
	}

	score := potentialScore(result.PoolEntropyBits, length)

	var reasons []Reason
	penalize := func(code ReasonCode, penalty float64, message string) {
		score -= penalty
		reasons = append(reasons, Reason{Code: code, Message: message, Penalty: penalty})
	}

	if HasSequence(password, a.sequenceWindow) {
		penalize(ReasonSequence, sequencePenalty, msgSequence)
	}

	if HasRepeatedRun(password, a.repeatRun) {
		penalize(ReasonRepeatedChars, repeatPenalty, msgRepeatedChars)
	}

	if sub, ok := CommonSubstring(password); ok {
		penalize(ReasonCommonSubstring, commonSubstringPenalty, fmt.Sprintf(msgCommonSubstring, sub))
		reasons[len(reasons)-1].Match = sub
	}

	switch {
	case length < minLength:
		penalize(ReasonShort, float64((minLength-length)*shortPenaltyPerChar), msgShort)
	case length < recommendedLength:
		reasons = append(reasons, Reason{Code: ReasonLengthAdvisory, Message: msgLengthAdvisory})
	}

	if classes.Count() <= 1 {
		penalize(ReasonSingleClass, singleClassPenalty, msgSingleClass)
	}

	result.Score = clampScore(score)

	if len(reasons) == 0 {
		reasons = append(reasons, Reason{Code: ReasonNoWeakness, Message: msgNoWeakness})
	}
	result.Reasons = reasons

	return result
}

// potentialScore is the score before penalties: entropy scaled linearly up to
// 80 points, plus up to 15 points for length beyond 8, capped at 95.
func potentialScore(poolBits float64, length int) float64 {
	base := math.Min(maxBaseScore, poolBits/fullEntropyBits*maxBaseScore)

	bonus := 0.0
	if length > bonusFromLength {
		bonus = math.Min(maxLengthBonus, float64(length-bonusFromLength)*bonusPerChar)
	}

	return math.Min(prePenaltyCeiling, base+bonus)
}

// clampScore bounds score to [0, 100] and rounds half away from zero.
func clampScore(score float64) int {
	score = math.Max(minScore, math.Min(maxScore, score))
	return int(math.Round(score))
}
