package strength

import "fmt"

// ReasonCode identifies a kind of feedback independently of its wording.
type ReasonCode string

// Reason codes in the order the analyzer evaluates them.
const (
	ReasonEmpty           ReasonCode = "empty"
	ReasonCommonPassword  ReasonCode = "common_password"
	ReasonSequence        ReasonCode = "sequence"
	ReasonRepeatedChars   ReasonCode = "repeated_chars"
	ReasonCommonSubstring ReasonCode = "common_substring"
	ReasonShort           ReasonCode = "short"
	ReasonLengthAdvisory  ReasonCode = "length_advisory"
	ReasonSingleClass     ReasonCode = "single_class"
	ReasonNoWeakness      ReasonCode = "no_weakness"
)

// Reason is one line of feedback.
type Reason struct {
	Code    ReasonCode `json:"code"`
	Message string     `json:"message"`

	// Penalty is the number of points the reason subtracted from the score.
	// Advisories and informational reasons carry zero.
	Penalty float64 `json:"penalty"`

	// Match is the matched text for ReasonCommonSubstring and empty otherwise.
	Match string `json:"match,omitempty"`
}

// Recommendation is the advice shown alongside results that need it.
const Recommendation = "Use a longer passphrase (at least 12 characters), mix character types, and avoid common words."

// recommendationThreshold is the score below which Recommendation applies.
const recommendationThreshold = 40

// Result is the outcome of analyzing one password. It never contains the
// password itself.
type Result struct {
	// Score is the strength score, always within [0, 100].
	Score int `json:"score"`

	// PoolEntropyBits is the class-pool entropy estimate.
	PoolEntropyBits float64 `json:"poolEntropyBits"`

	// ShannonEntropyBits is the empirical entropy estimate scaled by length.
	ShannonEntropyBits float64 `json:"shannonEntropyBits"`

	// Length is the password length in bytes.
	Length int `json:"length"`

	Classes Classes `json:"classes"`

	// Reasons lists feedback in evaluation order. It is never empty.
	Reasons []Reason `json:"reasons"`
}

// Messages returns the human-readable text of each reason, in order.
func (r *Result) Messages() []string {
	out := make([]string, len(r.Reasons))
	for i, reason := range r.Reasons {
		out[i] = reason.Message
	}
	return out
}

// HasReason reports whether a reason with the given code was recorded.
func (r *Result) HasReason(code ReasonCode) bool {
	for _, reason := range r.Reasons {
		if reason.Code == code {
			return true
		}
	}
	return false
}

// Rating returns the rating band of the score.
func (r *Result) Rating() Rating {
	return RatingFor(r.Score)
}

// NeedsRecommendation reports whether Recommendation should be shown.
func (r *Result) NeedsRecommendation() bool {
	return r.Score < recommendationThreshold
}

// Rating is a coarse band over the score.
type Rating int

const (
	// RatingWeak covers scores below 40.
	RatingWeak Rating = iota
	// RatingFair covers scores from 40 to 59.
	RatingFair
	// RatingGood covers scores from 60 to 79.
	RatingGood
	// RatingStrong covers scores of 80 and above.
	RatingStrong
)

// RatingFor maps a score to its band.
func RatingFor(score int) Rating {
	switch {
	case score < 40:
		return RatingWeak
	case score < 60:
		return RatingFair
	case score < 80:
		return RatingGood
	default:
		return RatingStrong
	}
}

// String returns the lowercase name of the rating.
func (r Rating) String() string {
	switch r {
	case RatingWeak:
		return "weak"
	case RatingFair:
		return "fair"
	case RatingGood:
		return "good"
	case RatingStrong:
		return "strong"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (r Rating) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Rating) UnmarshalText(text []byte) error {
	for _, candidate := range []Rating{RatingWeak, RatingFair, RatingGood, RatingStrong} {
		if candidate.String() == string(text) {
			*r = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown rating %q", text)
}
