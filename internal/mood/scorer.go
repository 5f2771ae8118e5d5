// Package mood turns behavioral signals (facial expression stats, typing
// cadence, ambient voice level) into a mood classification, a 0-100 stress
// score, and a probability distribution over the three mood classes.
//
// Analyze is a pure function: identical input always yields identical
// output, with no I/O and no state beyond the fixed weight table.
package mood

import "math"

// Feature weights for the class combination.
const (
	facialSmileWeight    = 0.45
	facialStressWeight   = 0.30
	typingSpeedWeight    = 0.15
	typingAccuracyWeight = 0.10
)

// neutralBase is the fixed unnormalized mass of the neutral class. It also
// guarantees the distribution total is strictly positive.
const neutralBase = 0.2

// Defaults applied to absent input fields.
const (
	defaultAvgSmile      = 0.5
	defaultAvgStress     = 0.5
	defaultAvgVoiceLevel = 50
)

// Analyze scores one signal bundle. Missing fields are defaulted, out of
// range values are clamped during normalization; the function never fails.
func Analyze(s Signals) Result {
	avgSmile := orDefault(s.Facial.AvgSmile, defaultAvgSmile)
	avgStress := orDefault(s.Facial.AvgStressIndicator, defaultAvgStress)
	facialConfidence := orDefault(s.Facial.FacialConfidence, 0)
	wpm := orDefault(s.Typing.WPM, 0)
	accuracy := orDefault(s.Typing.Accuracy, 0)
	voiceLevel := orDefault(s.Voice.AvgVoiceLevel, defaultAvgVoiceLevel)

	smileScore := clamp01(avgSmile)
	stressScore := clamp01(avgStress)
	typingScore := clamp01(wpm / 80)
	accuracyScore := clamp01(accuracy / 100)

	happyProb, stressedProb, neutralProb := classDistribution(smileScore, stressScore, typingScore, accuracyScore)

	// Ordered decision list: first match wins. The ordering is part of the
	// contract, not an optimization.
	var label Mood
	var confidence float64
	switch {
	case happyProb > 0.5 && smileScore > 0.6:
		label, confidence = MoodHappy, happyProb
	case stressedProb > 0.5 && stressScore > 0.6:
		label, confidence = MoodStressed, stressedProb
	case happyProb > stressedProb && smileScore > 0.5:
		label, confidence = MoodHappy, happyProb
	default:
		label, confidence = MoodNeutral, neutralProb
	}

	// Truncate toward zero, then clamp. Not round-to-nearest.
	stressLevel := int(stressScore*40 +
		(1-typingScore)*20 +
		(1-accuracyScore)*15 +
		voiceLevel/5 -
		smileScore*25)
	stressLevel = clampInt(stressLevel, 0, 100)

	// Strong facial confidence overrides the decision list.
	if facialConfidence > 0.6 {
		if smileScore > 0.7 {
			label = MoodHappy
			stressLevel = clampInt(stressLevel-20, 0, 100)
		} else if stressScore > 0.7 {
			label = MoodStressed
			stressLevel = clampInt(stressLevel+15, 0, 100)
		}
	}

	return Result{
		Mood:        label,
		StressLevel: stressLevel,
		Confidence:  confidence,
		Probabilities: Probabilities{
			Happy:    round2(happyProb),
			Stressed: round2(stressedProb),
			Neutral:  round2(neutralProb),
		},
	}
}

// classDistribution combines the normalized feature scores into a 3-way
// probability distribution. The neutral base keeps the total strictly
// positive, so the division is always defined and the three probabilities
// sum to exactly 1 up to floating rounding.
func classDistribution(smileScore, stressScore, typingScore, accuracyScore float64) (happy, stressed, neutral float64) {
	happyRaw := facialSmileWeight*smileScore*2 +
		typingSpeedWeight*typingScore*0.5 +
		typingAccuracyWeight*accuracyScore*0.3

	stressedRaw := facialStressWeight*stressScore*2 +
		typingSpeedWeight*(1-typingScore)*0.5 +
		typingAccuracyWeight*(1-accuracyScore)*0.3

	total := happyRaw + stressedRaw + neutralBase
	return happyRaw / total, stressedRaw / total, neutralBase / total
}

func orDefault(v *float64, fallback float64) float64 {
	if v == nil {
		return fallback
	}
	return *v
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
