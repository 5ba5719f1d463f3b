package entities

import (
	"math"
	"sort"
	"strconv"
	"time"
)

type Criterion struct {
	CriterionID string
	Code        string
	Description string
	Weight      float64
	MaxScore    int
	Order       int
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Evaluation is one scored criterion for one applicant. The pair
// (ApplicantID, CriterionID) is unique; re-scoring replaces the entry.
type Evaluation struct {
	EvaluationID string
	EvaluatorID  string
	ApplicantID  string
	CriterionID  string
	Score        int
	Notes        string
	EvaluatedAt  time.Time
}

type RankedApplicant struct {
	ApplicantID        string
	FirstName          string
	LastName           string
	Email              string
	Municipality       string
	VentureName        string
	TotalScore         float64
	EvaluationComplete bool
	RegisteredAt       time.Time
	Position           int
}

type TieGroup struct {
	Score   float64
	Members []RankedApplicant
}

// WeightedTotal aggregates entries against their criteria:
// (score / max_score) * weight per entry, summed and rounded to 2 decimals.
// Entries whose criterion is missing from the map are skipped.
func WeightedTotal(evaluations []Evaluation, criteria map[string]Criterion) float64 {
	total := 0.0
	for _, evaluation := range evaluations {
		criterion, ok := criteria[evaluation.CriterionID]
		if !ok || criterion.MaxScore <= 0 {
			continue
		}
		total += (float64(evaluation.Score) / float64(criterion.MaxScore)) * criterion.Weight
	}
	return Round2(total)
}

func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}

// SortRanking orders by total score descending, then registration time
// ascending, then applicant id, so the output carries no map-iteration
// nondeterminism. Positions are assigned 1-based after the sort.
func SortRanking(applicants []RankedApplicant) []RankedApplicant {
	ranked := append([]RankedApplicant(nil), applicants...)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].TotalScore != ranked[j].TotalScore {
			return ranked[i].TotalScore > ranked[j].TotalScore
		}
		if !ranked[i].RegisteredAt.Equal(ranked[j].RegisteredAt) {
			return ranked[i].RegisteredAt.Before(ranked[j].RegisteredAt)
		}
		return ranked[i].ApplicantID < ranked[j].ApplicantID
	})
	for i := range ranked {
		ranked[i].Position = i + 1
	}
	return ranked
}

// FindTies groups a ranked list by identical total score and keeps groups
// with more than one member and a score above zero; zero-score ties are not
// lottery-eligible. Groups come back highest score first.
func FindTies(ranked []RankedApplicant) []TieGroup {
	byScore := make(map[string][]RankedApplicant)
	for _, applicant := range ranked {
		key := strconv.FormatFloat(applicant.TotalScore, 'f', 2, 64)
		byScore[key] = append(byScore[key], applicant)
	}

	groups := make([]TieGroup, 0)
	for _, members := range byScore {
		if len(members) < 2 || members[0].TotalScore <= 0 {
			continue
		}
		groups = append(groups, TieGroup{
			Score:   members[0].TotalScore,
			Members: members,
		})
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Score > groups[j].Score
	})
	return groups
}
