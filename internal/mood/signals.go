package mood

// Signals is the per-request input bundle. Every group and every field is
// optional; leaves are pointers so an absent JSON key is distinguishable
// from an explicit zero and can be defaulted independently.
type Signals struct {
	Facial FacialSignals `json:"facial"`
	Typing TypingSignals `json:"typing"`
	Voice  VoiceSignals  `json:"voice"`
}

type FacialSignals struct {
	AvgSmile           *float64 `json:"avgSmile,omitempty"`
	AvgStressIndicator *float64 `json:"avgStressIndicator,omitempty"`
	FacialConfidence   *float64 `json:"facialConfidence,omitempty"`
}

type TypingSignals struct {
	WPM      *float64 `json:"wpm,omitempty"`
	Accuracy *float64 `json:"accuracy,omitempty"`
}

type VoiceSignals struct {
	AvgVoiceLevel *float64 `json:"avgVoiceLevel,omitempty"`
}

// Mood is one of the three discrete output classes.
type Mood string

const (
	MoodHappy    Mood = "happy"
	MoodStressed Mood = "stressed"
	MoodNeutral  Mood = "neutral"
)

// Probabilities is the 3-way distribution over mood classes. Values are
// rounded to two decimals for output; they sum to 1 before rounding.
type Probabilities struct {
	Happy    float64 `json:"happy"`
	Stressed float64 `json:"stressed"`
	Neutral  float64 `json:"neutral"`
}

// Result is the outcome of one analysis. Confidence carries the full
// (unrounded) probability mass behind the selected mood.
type Result struct {
	Mood          Mood          `json:"mood"`
	StressLevel   int           `json:"stressLevel"`
	Confidence    float64       `json:"confidence"`
	Probabilities Probabilities `json:"probabilities"`
}
