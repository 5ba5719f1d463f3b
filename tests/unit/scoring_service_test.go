package unit

import (
	"context"
	"testing"
	"time"

	scoringservice "emprende/contexts/evaluation/scoring-service"
	"emprende/contexts/evaluation/scoring-service/ports"
	httptransport "emprende/contexts/evaluation/scoring-service/transport/http"
)

func seedScoringApplicants(module scoringservice.Module, ids ...string) {
	base := time.Date(2025, time.April, 1, 8, 0, 0, 0, time.UTC)
	for i, id := range ids {
		module.Store.SetApplicant(ports.ApplicantSummary{
			ApplicantID:   id,
			FirstName:     "Applicant",
			LastName:      id,
			Email:         id + "@example.com",
			Municipality:  "pasto",
			ConvocationID: "2025",
			RegisteredAt:  base.Add(time.Duration(i) * time.Minute),
		})
	}
}

func upsertScoringCriterion(t *testing.T, module scoringservice.Module, code string, weight float64, maxScore int, order int) httptransport.CriterionDTO {
	t.Helper()
	resp, err := module.Handler.UpsertCriterionHandler(context.Background(), httptransport.UpsertCriterionRequest{
		Code:     code,
		Weight:   weight,
		MaxScore: maxScore,
		Order:    order,
		Active:   true,
	})
	if err != nil {
		t.Fatalf("upsert criterion %s failed: %v", code, err)
	}
	return resp.Data
}

func TestScoringEvaluationReturnsWeightedTotal(t *testing.T) {
	module := scoringservice.NewInMemoryModule(nil)
	ctx := context.Background()
	seedScoringApplicants(module, "app-1")
	viability := upsertScoringCriterion(t, module, "viability", 60, 10, 1)
	impact := upsertScoringCriterion(t, module, "impact", 40, 5, 2)

	if _, err := module.Handler.RecordEvaluationHandler(ctx, httptransport.RecordEvaluationRequest{
		EvaluatorID: "eval-1",
		ApplicantID: "app-1",
		CriterionID: viability.CriterionID,
		Score:       8,
	}); err != nil {
		t.Fatalf("record viability failed: %v", err)
	}
	resp, err := module.Handler.RecordEvaluationHandler(ctx, httptransport.RecordEvaluationRequest{
		EvaluatorID: "eval-1",
		ApplicantID: "app-1",
		CriterionID: impact.CriterionID,
		Score:       5,
	})
	if err != nil {
		t.Fatalf("record impact failed: %v", err)
	}
	if resp.TotalScore != 88.0 {
		t.Fatalf("expected running total 88.0, got %v", resp.TotalScore)
	}
}

func TestScoringRankingsAndTies(t *testing.T) {
	module := scoringservice.NewInMemoryModule(nil)
	ctx := context.Background()
	seedScoringApplicants(module, "app-1", "app-2", "app-3")
	criterion := upsertScoringCriterion(t, module, "viability", 100, 10, 1)

	for _, entry := range []struct {
		applicantID string
		score       int
	}{
		{"app-1", 9},
		{"app-2", 9},
		{"app-3", 4},
	} {
		if _, err := module.Handler.RecordEvaluationHandler(ctx, httptransport.RecordEvaluationRequest{
			EvaluatorID: "eval-1",
			ApplicantID: entry.applicantID,
			CriterionID: criterion.CriterionID,
			Score:       entry.score,
		}); err != nil {
			t.Fatalf("record evaluation for %s failed: %v", entry.applicantID, err)
		}
	}

	rankings, err := module.Handler.RankingsHandler(ctx, "2025")
	if err != nil {
		t.Fatalf("rankings failed: %v", err)
	}
	if len(rankings.Data) != 3 {
		t.Fatalf("expected 3 ranked applicants, got %d", len(rankings.Data))
	}
	// app-1 and app-2 tie at 90.0; app-1 registered first.
	if rankings.Data[0].ApplicantID != "app-1" || rankings.Data[1].ApplicantID != "app-2" {
		t.Fatalf("expected registration order within the tie, got %s then %s",
			rankings.Data[0].ApplicantID, rankings.Data[1].ApplicantID)
	}

	ties, err := module.Handler.TiesHandler(ctx, "2025")
	if err != nil {
		t.Fatalf("ties failed: %v", err)
	}
	if ties.Count != 1 {
		t.Fatalf("expected one tie group, got %d", ties.Count)
	}
	if ties.Data[0].Score != 90.0 || len(ties.Data[0].Members) != 2 {
		t.Fatalf("expected two members tied at 90.0, got %+v", ties.Data[0])
	}
}

func TestScoringDeleteEvaluationUpdatesRanking(t *testing.T) {
	module := scoringservice.NewInMemoryModule(nil)
	ctx := context.Background()
	seedScoringApplicants(module, "app-1")
	criterion := upsertScoringCriterion(t, module, "viability", 100, 10, 1)

	if _, err := module.Handler.RecordEvaluationHandler(ctx, httptransport.RecordEvaluationRequest{
		EvaluatorID: "eval-1",
		ApplicantID: "app-1",
		CriterionID: criterion.CriterionID,
		Score:       6,
	}); err != nil {
		t.Fatalf("record evaluation failed: %v", err)
	}
	if err := module.Handler.DeleteEvaluationHandler(ctx, "app-1", criterion.CriterionID); err != nil {
		t.Fatalf("delete evaluation failed: %v", err)
	}

	rankings, err := module.Handler.RankingsHandler(ctx, "2025")
	if err != nil {
		t.Fatalf("rankings failed: %v", err)
	}
	if rankings.Data[0].TotalScore != 0 {
		t.Fatalf("expected zero total after deletion, got %v", rankings.Data[0].TotalScore)
	}
	if rankings.Data[0].EvaluationComplete {
		t.Fatalf("expected incomplete evaluation after deletion")
	}
}

func TestScoringWeightsReport(t *testing.T) {
	module := scoringservice.NewInMemoryModule(nil)
	upsertScoringCriterion(t, module, "viability", 55, 10, 1)
	upsertScoringCriterion(t, module, "impact", 45, 5, 2)

	resp, err := module.Handler.ValidateWeightsHandler(context.Background())
	if err != nil {
		t.Fatalf("validate weights failed: %v", err)
	}
	if !resp.Valid || resp.Total != 100.0 {
		t.Fatalf("expected valid weights at 100.0, got %+v", resp)
	}
}
