package entities

import (
	"testing"
	"time"
)

func TestWeightedTotalSkipsUnknownCriteria(t *testing.T) {
	criteria := map[string]Criterion{
		"crit-1": {CriterionID: "crit-1", Weight: 60, MaxScore: 10},
	}
	evaluations := []Evaluation{
		{CriterionID: "crit-1", Score: 8},
		{CriterionID: "crit-gone", Score: 5},
	}

	if total := WeightedTotal(evaluations, criteria); total != 48.0 {
		t.Fatalf("expected 48.0 with the orphan entry skipped, got %v", total)
	}
}

func TestWeightedTotalRoundsToTwoDecimals(t *testing.T) {
	criteria := map[string]Criterion{
		"crit-1": {CriterionID: "crit-1", Weight: 100, MaxScore: 3},
	}
	evaluations := []Evaluation{{CriterionID: "crit-1", Score: 1}}

	if total := WeightedTotal(evaluations, criteria); total != 33.33 {
		t.Fatalf("expected 33.33, got %v", total)
	}
}

func TestSortRankingIsDeterministicForEqualTimestamps(t *testing.T) {
	at := time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC)
	input := []RankedApplicant{
		{ApplicantID: "app-b", TotalScore: 50, RegisteredAt: at},
		{ApplicantID: "app-a", TotalScore: 50, RegisteredAt: at},
	}

	ranked := SortRanking(input)
	if ranked[0].ApplicantID != "app-a" || ranked[1].ApplicantID != "app-b" {
		t.Fatalf("expected applicant id as final tie-break, got %s then %s",
			ranked[0].ApplicantID, ranked[1].ApplicantID)
	}
	if input[0].Position != 0 {
		t.Fatalf("sort must not mutate its input")
	}
}

func TestFindTiesGroupsByRoundedScore(t *testing.T) {
	at := time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC)
	ranked := []RankedApplicant{
		{ApplicantID: "app-1", TotalScore: 88.0, RegisteredAt: at},
		{ApplicantID: "app-2", TotalScore: 88.0, RegisteredAt: at},
		{ApplicantID: "app-3", TotalScore: 70.0, RegisteredAt: at},
		{ApplicantID: "app-4", TotalScore: 0, RegisteredAt: at},
		{ApplicantID: "app-5", TotalScore: 0, RegisteredAt: at},
	}

	groups := FindTies(ranked)
	if len(groups) != 1 {
		t.Fatalf("expected one eligible tie group, got %d", len(groups))
	}
	if groups[0].Score != 88.0 || len(groups[0].Members) != 2 {
		t.Fatalf("expected two members at 88.0, got %+v", groups[0])
	}
}
