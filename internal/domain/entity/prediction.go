package entity

import "fmt"

// Level grades disease severity and test urgency.
type Level string

const (
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"
)

func (l Level) IsValid() bool {
	return l == LevelLow || l == LevelMedium || l == LevelHigh
}

func (l *Level) UnmarshalText(text []byte) error {
	v := Level(text)
	if !v.IsValid() {
		return fmt.Errorf("invalid level %q, use low, medium or high", string(text))
	}
	*l = v
	return nil
}

type Disease struct {
	Name        string  `json:"name"`
	Probability float64 `json:"probability"` // 0..1
	Severity    Level   `json:"severity"`
	Description string  `json:"description"`
}

type RecommendedTest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Urgency     Level  `json:"urgency"`
}

// PredictionResult is immutable once produced.
type PredictionResult struct {
	ID               string            `json:"id"`
	Diseases         []Disease         `json:"diseases"`
	RecommendedTests []RecommendedTest `json:"recommendedTests"`
	ReportURL        string            `json:"reportUrl,omitempty"`
	CreatedAt        string            `json:"createdAt"` // RFC 3339
}

func (p PredictionResult) Clone() PredictionResult {
	c := p
	if p.Diseases != nil {
		c.Diseases = make([]Disease, len(p.Diseases))
		copy(c.Diseases, p.Diseases)
	}
	if p.RecommendedTests != nil {
		c.RecommendedTests = make([]RecommendedTest, len(p.RecommendedTests))
		copy(c.RecommendedTests, p.RecommendedTests)
	}
	return c
}

// Percent renders the probability the way results are shown ("75% match").
func (d Disease) Percent() int {
	return int(d.Probability*100 + 0.5)
}

func ClonePredictions(in []PredictionResult) []PredictionResult {
	if in == nil {
		return nil
	}
	out := make([]PredictionResult, len(in))
	for i := range in {
		out[i] = in[i].Clone()
	}
	return out
}
