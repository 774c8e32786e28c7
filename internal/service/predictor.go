package service

import (
	"sort"
	"strings"

	"health-assessment-service/internal/domain/entity"
)

// Predictor turns an intake into candidate diseases and follow-up tests.
type Predictor interface {
	Predict(hd entity.HealthData) ([]entity.Disease, []entity.RecommendedTest)
}

// StubPredictor returns the same canned assessment for every intake.
type StubPredictor struct{}

func (StubPredictor) Predict(entity.HealthData) ([]entity.Disease, []entity.RecommendedTest) {
	return []entity.Disease{
			{
				Name:        "Common Cold",
				Probability: 0.75,
				Severity:    entity.LevelLow,
				Description: "A viral infection of the upper respiratory tract",
			},
			{
				Name:        "Seasonal Allergies",
				Probability: 0.45,
				Severity:    entity.LevelLow,
				Description: "Allergic reaction to seasonal allergens",
			},
		}, []entity.RecommendedTest{
			{
				Name:        "Complete Blood Count",
				Description: "General health assessment",
				Urgency:     entity.LevelLow,
			},
			{
				Name:        "Allergy Panel",
				Description: "Identify specific allergens",
				Urgency:     entity.LevelMedium,
			},
		}
}

type condition struct {
	disease entity.Disease // Probability holds the base score
	tests   []entity.RecommendedTest
}

var (
	testCBC        = entity.RecommendedTest{Name: "Complete Blood Count", Description: "General health assessment", Urgency: entity.LevelLow}
	testAllergy    = entity.RecommendedTest{Name: "Allergy Panel", Description: "Identify specific allergens", Urgency: entity.LevelMedium}
	testECG        = entity.RecommendedTest{Name: "Electrocardiogram", Description: "Check heart rhythm and electrical activity", Urgency: entity.LevelHigh}
	testChestXRay  = entity.RecommendedTest{Name: "Chest X-Ray", Description: "Look for infection or fluid in the lungs", Urgency: entity.LevelMedium}
	testSpirometry = entity.RecommendedTest{Name: "Spirometry", Description: "Measure lung function", Urgency: entity.LevelMedium}
	testLipid      = entity.RecommendedTest{Name: "Lipid Panel", Description: "Cholesterol and triglyceride levels", Urgency: entity.LevelLow}
	testThyroid    = entity.RecommendedTest{Name: "Thyroid Function Test", Description: "TSH and free T4 levels", Urgency: entity.LevelLow}
	testMetabolic  = entity.RecommendedTest{Name: "Basic Metabolic Panel", Description: "Electrolytes, glucose and kidney function", Urgency: entity.LevelMedium}
	testUltrasound = entity.RecommendedTest{Name: "Abdominal Ultrasound", Description: "Image the abdominal organs", Urgency: entity.LevelMedium}
	testBPMonitor  = entity.RecommendedTest{Name: "Ambulatory Blood Pressure Monitoring", Description: "Track blood pressure over 24 hours", Urgency: entity.LevelMedium}
)

var conditions = map[string]condition{
	"cold": {
		disease: entity.Disease{Name: "Common Cold", Severity: entity.LevelLow, Description: "A viral infection of the upper respiratory tract"},
		tests:   []entity.RecommendedTest{testCBC},
	},
	"flu": {
		disease: entity.Disease{Name: "Influenza", Severity: entity.LevelMedium, Description: "A contagious respiratory illness caused by influenza viruses"},
		tests:   []entity.RecommendedTest{testCBC},
	},
	"allergies": {
		disease: entity.Disease{Name: "Seasonal Allergies", Severity: entity.LevelLow, Description: "Allergic reaction to seasonal allergens"},
		tests:   []entity.RecommendedTest{testAllergy},
	},
	"migraine": {
		disease: entity.Disease{Name: "Migraine", Severity: entity.LevelMedium, Description: "Recurring headaches often with nausea and light sensitivity"},
		tests:   []entity.RecommendedTest{testMetabolic},
	},
	"gastro": {
		disease: entity.Disease{Name: "Gastroenteritis", Severity: entity.LevelMedium, Description: "Inflammation of the stomach and intestines"},
		tests:   []entity.RecommendedTest{testMetabolic, testUltrasound},
	},
	"angina": {
		disease: entity.Disease{Name: "Angina", Severity: entity.LevelHigh, Description: "Chest pain caused by reduced blood flow to the heart"},
		tests:   []entity.RecommendedTest{testECG, testLipid},
	},
	"asthma": {
		disease: entity.Disease{Name: "Asthma Exacerbation", Severity: entity.LevelMedium, Description: "Narrowed and inflamed airways making breathing difficult"},
		tests:   []entity.RecommendedTest{testSpirometry, testChestXRay},
	},
	"bronchitis": {
		disease: entity.Disease{Name: "Acute Bronchitis", Severity: entity.LevelMedium, Description: "Inflammation of the lining of the bronchial tubes"},
		tests:   []entity.RecommendedTest{testChestXRay},
	},
	"musculoskeletal": {
		disease: entity.Disease{Name: "Musculoskeletal Strain", Severity: entity.LevelLow, Description: "Overuse or injury of muscles, tendons or joints"},
		tests:   []entity.RecommendedTest{testCBC},
	},
	"arthritis": {
		disease: entity.Disease{Name: "Osteoarthritis", Severity: entity.LevelMedium, Description: "Wear of the cartilage that cushions the joints"},
		tests:   []entity.RecommendedTest{testCBC},
	},
	"anxiety": {
		disease: entity.Disease{Name: "Generalized Anxiety", Severity: entity.LevelLow, Description: "Persistent worry affecting sleep and daily life"},
		tests:   []entity.RecommendedTest{testThyroid},
	},
	"anemia": {
		disease: entity.Disease{Name: "Iron Deficiency Anemia", Severity: entity.LevelMedium, Description: "Too few healthy red blood cells to carry oxygen"},
		tests:   []entity.RecommendedTest{testCBC},
	},
	"hypertension": {
		disease: entity.Disease{Name: "Hypertension", Severity: entity.LevelMedium, Description: "Blood pressure persistently above the normal range"},
		tests:   []entity.RecommendedTest{testBPMonitor, testECG},
	},
}

// symptomWeights maps a lower-cased symptom to the conditions it points at.
var symptomWeights = map[string]map[string]float64{
	"headache":            {"migraine": 0.35, "flu": 0.15, "cold": 0.10, "hypertension": 0.10},
	"fever":               {"flu": 0.40, "cold": 0.20, "bronchitis": 0.15, "gastro": 0.10},
	"cough":               {"cold": 0.35, "bronchitis": 0.35, "flu": 0.15, "asthma": 0.15},
	"fatigue":             {"anemia": 0.30, "flu": 0.15, "anxiety": 0.10},
	"nausea":              {"gastro": 0.35, "migraine": 0.20},
	"dizziness":           {"anemia": 0.25, "hypertension": 0.20, "migraine": 0.10},
	"chest pain":          {"angina": 0.45, "anxiety": 0.10},
	"shortness of breath": {"asthma": 0.40, "angina": 0.20, "anemia": 0.15},
	"abdominal pain":      {"gastro": 0.45},
	"joint pain":          {"arthritis": 0.40, "flu": 0.10},
	"sore throat":         {"cold": 0.35, "allergies": 0.15, "flu": 0.10},
	"muscle aches":        {"flu": 0.30, "musculoskeletal": 0.30},
	"back pain":           {"musculoskeletal": 0.45},
	"insomnia":            {"anxiety": 0.35},
	"anxiety":             {"anxiety": 0.45},
}

// historyWeights raises conditions a known diagnosis makes more likely.
var historyWeights = map[string]map[string]float64{
	"asthma":           {"asthma": 0.25},
	"heart disease":    {"angina": 0.25},
	"hypertension":     {"hypertension": 0.30, "angina": 0.10},
	"high cholesterol": {"angina": 0.15},
	"anxiety disorder": {"anxiety": 0.25},
	"arthritis":        {"arthritis": 0.25},
}

const (
	maxProbability = 0.95
	minProbability = 0.15
	maxDiseases    = 3
)

// RulesPredictor scores a fixed condition table against the reported
// symptoms, history and vitals. When nothing matches it falls back to Fallback.
type RulesPredictor struct {
	Fallback Predictor
}

func (p RulesPredictor) Predict(hd entity.HealthData) ([]entity.Disease, []entity.RecommendedTest) {
	scores := make(map[string]float64)
	add := func(weights map[string]float64) {
		for key, w := range weights {
			scores[key] += w
		}
	}

	for _, s := range hd.Symptoms {
		add(symptomWeights[strings.ToLower(strings.TrimSpace(s))])
	}
	if len(scores) > 0 {
		for _, c := range hd.MedicalHistory.Conditions {
			add(historyWeights[strings.ToLower(c)])
		}
	}
	if hd.BloodPressure.Systolic >= 140 || hd.BloodPressure.Diastolic >= 90 {
		scores["hypertension"] += 0.45
	}
	for _, a := range hd.MedicalHistory.Allergies {
		if a != "" {
			scores["allergies"] += 0.10
			break
		}
	}

	keys := make([]string, 0, len(scores))
	for key, score := range scores {
		if score >= minProbability {
			keys = append(keys, key)
		}
	}
	if len(keys) == 0 {
		return p.fallback(hd)
	}

	sort.Slice(keys, func(i, j int) bool {
		if scores[keys[i]] != scores[keys[j]] {
			return scores[keys[i]] > scores[keys[j]]
		}
		return keys[i] < keys[j]
	})
	if len(keys) > maxDiseases {
		keys = keys[:maxDiseases]
	}

	diseases := make([]entity.Disease, 0, len(keys))
	var tests []entity.RecommendedTest
	for _, key := range keys {
		c := conditions[key]
		d := c.disease
		d.Probability = roundProbability(scores[key])
		if hd.Age >= 65 && d.Severity == entity.LevelMedium {
			d.Severity = entity.LevelHigh
		}
		diseases = append(diseases, d)
		tests = mergeTests(tests, c.tests)
	}

	return diseases, tests
}

func (p RulesPredictor) fallback(hd entity.HealthData) ([]entity.Disease, []entity.RecommendedTest) {
	if p.Fallback == nil {
		return StubPredictor{}.Predict(hd)
	}
	return p.Fallback.Predict(hd)
}

// mergeTests appends add to list, keeping one entry per test name with the
// highest urgency seen.
func mergeTests(list, add []entity.RecommendedTest) []entity.RecommendedTest {
	for _, t := range add {
		found := false
		for i := range list {
			if list[i].Name == t.Name {
				found = true
				if urgencyRank(t.Urgency) > urgencyRank(list[i].Urgency) {
					list[i].Urgency = t.Urgency
				}
				break
			}
		}
		if !found {
			list = append(list, t)
		}
	}
	return list
}

func urgencyRank(l entity.Level) int {
	switch l {
	case entity.LevelHigh:
		return 2
	case entity.LevelMedium:
		return 1
	}
	return 0
}

func roundProbability(score float64) float64 {
	if score > maxProbability {
		score = maxProbability
	}
	return float64(int(score*100+0.5)) / 100
}
