package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"emprende/contexts/evaluation/scoring-service/adapters/memory"
	"emprende/contexts/evaluation/scoring-service/domain/entities"
	domainerrors "emprende/contexts/evaluation/scoring-service/domain/errors"
	"emprende/contexts/evaluation/scoring-service/ports"
)

func newTestService(store *memory.Store) Service {
	return Service{
		Criteria:    store,
		Evaluations: store,
		Applicants:  store,
		Clock:       store,
		IDGen:       store,
	}
}

func seedCriterion(t *testing.T, service Service, code string, weight float64, maxScore int, order int) entities.Criterion {
	t.Helper()
	criterion, err := service.UpsertCriterion(context.Background(), ports.UpsertCriterionInput{
		Code:     code,
		Weight:   weight,
		MaxScore: maxScore,
		Order:    order,
		Active:   true,
	})
	if err != nil {
		t.Fatalf("upsert criterion %s failed: %v", code, err)
	}
	return criterion
}

func seedApplicant(store *memory.Store, applicantID string, registeredAt time.Time) {
	store.SetApplicant(ports.ApplicantSummary{
		ApplicantID:   applicantID,
		FirstName:     "Ana",
		LastName:      "Lopez",
		Email:         applicantID + "@example.com",
		Municipality:  "pasto",
		ConvocationID: "2025",
		RegisteredAt:  registeredAt,
	})
}

func score(t *testing.T, service Service, applicantID string, criterionID string, value int) {
	t.Helper()
	_, err := service.RecordEvaluation(context.Background(), ports.RecordEvaluationInput{
		EvaluatorID: "eval-1",
		ApplicantID: applicantID,
		CriterionID: criterionID,
		Score:       value,
	})
	if err != nil {
		t.Fatalf("record evaluation for %s failed: %v", applicantID, err)
	}
}

func TestTotalScoreWeightedByCriterion(t *testing.T) {
	store := memory.NewStore()
	service := newTestService(store)
	viability := seedCriterion(t, service, "viability", 60, 10, 1)
	impact := seedCriterion(t, service, "impact", 40, 5, 2)
	seedApplicant(store, "app-1", time.Date(2025, time.March, 1, 10, 0, 0, 0, time.UTC))

	score(t, service, "app-1", viability.CriterionID, 8)
	score(t, service, "app-1", impact.CriterionID, 5)

	total, err := service.TotalScore(context.Background(), "app-1")
	if err != nil {
		t.Fatalf("total score failed: %v", err)
	}
	if total != 88.0 {
		t.Fatalf("expected total 88.0, got %v", total)
	}
}

func TestRecordEvaluationRejectsScoreAboveMax(t *testing.T) {
	service := newTestService(memory.NewStore())
	criterion := seedCriterion(t, service, "viability", 60, 10, 1)

	_, err := service.RecordEvaluation(context.Background(), ports.RecordEvaluationInput{
		EvaluatorID: "eval-1",
		ApplicantID: "app-1",
		CriterionID: criterion.CriterionID,
		Score:       11,
	})
	if !errors.Is(err, domainerrors.ErrScoreOutOfRange) {
		t.Fatalf("expected score out of range error, got %v", err)
	}
}

func TestRecordEvaluationReplacesPreviousScore(t *testing.T) {
	store := memory.NewStore()
	service := newTestService(store)
	criterion := seedCriterion(t, service, "viability", 100, 10, 1)
	seedApplicant(store, "app-1", time.Date(2025, time.March, 1, 10, 0, 0, 0, time.UTC))

	score(t, service, "app-1", criterion.CriterionID, 4)
	score(t, service, "app-1", criterion.CriterionID, 9)

	total, err := service.TotalScore(context.Background(), "app-1")
	if err != nil {
		t.Fatalf("total score failed: %v", err)
	}
	if total != 90.0 {
		t.Fatalf("expected replacement score 90.0, got %v", total)
	}
}

func TestRankOrdersByScoreThenRegistrationTime(t *testing.T) {
	store := memory.NewStore()
	service := newTestService(store)
	criterion := seedCriterion(t, service, "viability", 100, 10, 1)

	early := time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC)
	late := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
	seedApplicant(store, "app-late", late)
	seedApplicant(store, "app-early", early)
	seedApplicant(store, "app-low", early)

	score(t, service, "app-early", criterion.CriterionID, 8)
	score(t, service, "app-late", criterion.CriterionID, 8)
	score(t, service, "app-low", criterion.CriterionID, 3)

	ranked, err := service.Rank(context.Background(), "2025")
	if err != nil {
		t.Fatalf("rank failed: %v", err)
	}
	if len(ranked) != 3 {
		t.Fatalf("expected 3 ranked applicants, got %d", len(ranked))
	}
	if ranked[0].ApplicantID != "app-early" || ranked[1].ApplicantID != "app-late" {
		t.Fatalf("expected earlier registration first among ties, got %s then %s",
			ranked[0].ApplicantID, ranked[1].ApplicantID)
	}
	if ranked[2].ApplicantID != "app-low" {
		t.Fatalf("expected lowest score last, got %s", ranked[2].ApplicantID)
	}
	for i, applicant := range ranked {
		if applicant.Position != i+1 {
			t.Fatalf("expected position %d, got %d", i+1, applicant.Position)
		}
	}
}

func TestFindTiesExcludesZeroScores(t *testing.T) {
	store := memory.NewStore()
	service := newTestService(store)
	criterion := seedCriterion(t, service, "viability", 100, 10, 1)

	at := time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC)
	seedApplicant(store, "app-1", at)
	seedApplicant(store, "app-2", at.Add(time.Hour))
	seedApplicant(store, "app-3", at)
	seedApplicant(store, "app-4", at)

	score(t, service, "app-1", criterion.CriterionID, 7)
	score(t, service, "app-2", criterion.CriterionID, 7)
	// app-3 and app-4 stay unscored: a shared zero is not a lottery tie.

	groups, err := service.FindTies(context.Background(), "2025")
	if err != nil {
		t.Fatalf("find ties failed: %v", err)
	}
	if len(groups) != 1 {
		t.Fatalf("expected exactly one tie group, got %d", len(groups))
	}
	if groups[0].Score != 70.0 {
		t.Fatalf("expected tie at 70.0, got %v", groups[0].Score)
	}
	if len(groups[0].Members) != 2 {
		t.Fatalf("expected 2 tied members, got %d", len(groups[0].Members))
	}
}

func TestIsEvaluationCompleteTracksActiveCriteria(t *testing.T) {
	store := memory.NewStore()
	service := newTestService(store)
	viability := seedCriterion(t, service, "viability", 60, 10, 1)
	seedCriterion(t, service, "impact", 40, 5, 2)
	seedApplicant(store, "app-1", time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC))

	score(t, service, "app-1", viability.CriterionID, 8)

	complete, err := service.IsEvaluationComplete(context.Background(), "app-1")
	if err != nil {
		t.Fatalf("completeness check failed: %v", err)
	}
	if complete {
		t.Fatalf("expected incomplete while impact is unscored")
	}

	// Deactivating impact shrinks the active set down to what is scored.
	_, err = service.UpsertCriterion(context.Background(), ports.UpsertCriterionInput{
		Code:     "impact",
		Weight:   40,
		MaxScore: 5,
		Order:    2,
		Active:   false,
	})
	if err != nil {
		t.Fatalf("deactivate criterion failed: %v", err)
	}

	complete, err = service.IsEvaluationComplete(context.Background(), "app-1")
	if err != nil {
		t.Fatalf("completeness recheck failed: %v", err)
	}
	if !complete {
		t.Fatalf("expected complete once only scored criteria remain active")
	}
}

func TestUpsertCriterionKeepsIdentityOnReupsert(t *testing.T) {
	store := memory.NewStore()
	service := newTestService(store)
	first := seedCriterion(t, service, "viability", 60, 10, 1)

	updated, err := service.UpsertCriterion(context.Background(), ports.UpsertCriterionInput{
		Code:     "viability",
		Weight:   70,
		MaxScore: 10,
		Order:    1,
		Active:   true,
	})
	if err != nil {
		t.Fatalf("re-upsert criterion failed: %v", err)
	}
	if updated.CriterionID != first.CriterionID {
		t.Fatalf("expected re-upsert to keep criterion id %s, got %s",
			first.CriterionID, updated.CriterionID)
	}
	if updated.Weight != 70 {
		t.Fatalf("expected updated weight 70, got %v", updated.Weight)
	}

	// The returned id must address the stored row.
	seedApplicant(store, "app-1", time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC))
	_, err = service.RecordEvaluation(context.Background(), ports.RecordEvaluationInput{
		EvaluatorID: "eval-1",
		ApplicantID: "app-1",
		CriterionID: updated.CriterionID,
		Score:       8,
	})
	if err != nil {
		t.Fatalf("record evaluation against re-upserted criterion failed: %v", err)
	}
}

func TestUpsertCriterionRejectsOrderHeldByInactiveCriterion(t *testing.T) {
	service := newTestService(memory.NewStore())
	seedCriterion(t, service, "viability", 60, 10, 1)

	_, err := service.UpsertCriterion(context.Background(), ports.UpsertCriterionInput{
		Code:     "viability",
		Weight:   60,
		MaxScore: 10,
		Order:    1,
		Active:   false,
	})
	if err != nil {
		t.Fatalf("deactivate criterion failed: %v", err)
	}

	// display_order stays unique even when its holder is inactive.
	_, err = service.UpsertCriterion(context.Background(), ports.UpsertCriterionInput{
		Code:     "impact",
		Weight:   40,
		MaxScore: 5,
		Order:    1,
		Active:   true,
	})
	if !errors.Is(err, domainerrors.ErrDuplicateOrder) {
		t.Fatalf("expected duplicate order error, got %v", err)
	}
}

func TestValidateWeightsReportsDrift(t *testing.T) {
	service := newTestService(memory.NewStore())
	seedCriterion(t, service, "viability", 60, 10, 1)
	seedCriterion(t, service, "impact", 30, 5, 2)

	report, err := service.ValidateWeights(context.Background())
	if err != nil {
		t.Fatalf("validate weights failed: %v", err)
	}
	if report.Valid {
		t.Fatalf("expected invalid report at total %v", report.Total)
	}
	if report.Total != 90.0 {
		t.Fatalf("expected total 90.0, got %v", report.Total)
	}

	seedCriterion(t, service, "team", 10, 5, 3)
	report, err = service.ValidateWeights(context.Background())
	if err != nil {
		t.Fatalf("validate weights failed: %v", err)
	}
	if !report.Valid || report.Total != 100.0 {
		t.Fatalf("expected valid 100.0, got %v valid=%v", report.Total, report.Valid)
	}
}
