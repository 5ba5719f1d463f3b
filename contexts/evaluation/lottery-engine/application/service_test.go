package application

import (
	"context"
	"errors"
	"testing"

	"emprende/contexts/evaluation/lottery-engine/adapters/acta"
	"emprende/contexts/evaluation/lottery-engine/adapters/memory"
	"emprende/contexts/evaluation/lottery-engine/domain/entities"
	domainerrors "emprende/contexts/evaluation/lottery-engine/domain/errors"
	"emprende/contexts/evaluation/lottery-engine/ports"
)

type fixedSeed struct {
	value uint64
}

func (f fixedSeed) NewSeed(_ context.Context) (uint64, error) { return f.value, nil }

type failingRenderer struct{}

func (failingRenderer) RenderActa(_ context.Context, _ ports.ActaInput) ([]byte, string, error) {
	return nil, "", errors.New("renderer unavailable")
}

func newTestService(store *memory.Store, renderer ports.ActaRenderer) Service {
	return Service{
		Records:  store,
		Renderer: renderer,
		Seeds:    fixedSeed{value: 424242},
		Clock:    store,
		IDGen:    store,
	}
}

func tiedParticipants() []entities.Participant {
	return []entities.Participant{
		{ApplicantID: "app-1", FirstName: "Ana", LastName: "Lopez", Email: "ana@example.com", Municipality: "pasto"},
		{ApplicantID: "app-2", FirstName: "Luis", LastName: "Mora", Email: "luis@example.com", Municipality: "ipiales"},
		{ApplicantID: "app-3", FirstName: "Sara", LastName: "Diaz", Email: "sara@example.com", Municipality: "tumaco"},
	}
}

func executeInput() ports.ExecuteLotteryInput {
	return ports.ExecuteLotteryInput{
		AdministratorID: "admin-1",
		Description:     "tie break at 88.0",
		Participants:    tiedParticipants(),
	}
}

func TestExecuteLotteryRequiresTwoParticipants(t *testing.T) {
	service := newTestService(memory.NewStore(), acta.TextRenderer{})

	input := executeInput()
	input.Participants = input.Participants[:1]
	_, err := service.ExecuteLottery(context.Background(), input)
	if !errors.Is(err, domainerrors.ErrNotEnoughParticipants) {
		t.Fatalf("expected not enough participants error, got %v", err)
	}
}

func TestExecuteLotteryRejectsDuplicateParticipants(t *testing.T) {
	service := newTestService(memory.NewStore(), acta.TextRenderer{})

	input := executeInput()
	input.Participants = append(input.Participants, input.Participants[0])
	_, err := service.ExecuteLottery(context.Background(), input)
	if !errors.Is(err, domainerrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input error, got %v", err)
	}
}

func TestExecuteLotteryStoresReproducibleDraw(t *testing.T) {
	store := memory.NewStore()
	service := newTestService(store, acta.TextRenderer{})

	record, err := service.ExecuteLottery(context.Background(), executeInput())
	if err != nil {
		t.Fatalf("execute lottery failed: %v", err)
	}
	if record.WinnerID != record.Result.Order[0].ApplicantID {
		t.Fatalf("winner %s is not position 1 (%s)", record.WinnerID, record.Result.Order[0].ApplicantID)
	}
	if record.Result.ParticipantCount != 3 {
		t.Fatalf("expected 3 participants recorded, got %d", record.Result.ParticipantCount)
	}
	if len(record.ActaContent) == 0 || record.ActaName == "" {
		t.Fatalf("expected a stored acta document")
	}

	// An auditor replaying the stored seed over the stored participants must
	// reconstruct the exact same order.
	stored, err := service.GetRecord(context.Background(), record.RecordID)
	if err != nil {
		t.Fatalf("get record failed: %v", err)
	}
	replayed := entities.ShuffleWithSeed(stored.Participants, stored.Result.Seed)
	if len(replayed) != len(stored.Result.Order) {
		t.Fatalf("replay length mismatch: %d vs %d", len(replayed), len(stored.Result.Order))
	}
	for i := range replayed {
		if replayed[i] != stored.Result.Order[i] {
			t.Fatalf("replay diverges at position %d: %+v vs %+v", i+1, replayed[i], stored.Result.Order[i])
		}
	}
}

func TestExecuteLotteryStoresPlaceholderWhenActaFails(t *testing.T) {
	store := memory.NewStore()
	service := newTestService(store, failingRenderer{})

	record, err := service.ExecuteLottery(context.Background(), executeInput())
	if err != nil {
		t.Fatalf("expected lottery to survive renderer failure, got %v", err)
	}
	if record.ActaName != "acta_error.txt" {
		t.Fatalf("expected placeholder acta name, got %s", record.ActaName)
	}
	if string(record.ActaContent) != "acta not available" {
		t.Fatalf("expected placeholder acta content, got %q", record.ActaContent)
	}
	if record.WinnerID == "" {
		t.Fatalf("expected a winner despite renderer failure")
	}
}

func TestAmendNotesKeepsDrawEvidence(t *testing.T) {
	store := memory.NewStore()
	service := newTestService(store, acta.TextRenderer{})

	record, err := service.ExecuteLottery(context.Background(), executeInput())
	if err != nil {
		t.Fatalf("execute lottery failed: %v", err)
	}

	amended, err := service.AmendNotes(context.Background(), record.RecordID, "admin-2", "published on the municipal board")
	if err != nil {
		t.Fatalf("first amendment failed: %v", err)
	}
	amended, err = service.AmendNotes(context.Background(), record.RecordID, "admin-2", "correction: board 2")
	if err != nil {
		t.Fatalf("second amendment failed: %v", err)
	}

	if amended.Notes != "correction: board 2" {
		t.Fatalf("expected latest notes, got %q", amended.Notes)
	}
	if len(amended.Amendments) != 2 {
		t.Fatalf("expected 2 amendments in the log, got %d", len(amended.Amendments))
	}
	if amended.WinnerID != record.WinnerID {
		t.Fatalf("amendment changed the winner")
	}
	if amended.Result.Seed != record.Result.Seed {
		t.Fatalf("amendment changed the seed")
	}
}

func TestGetRecordReturnsIsolatedCopy(t *testing.T) {
	store := memory.NewStore()
	service := newTestService(store, acta.TextRenderer{})

	record, err := service.ExecuteLottery(context.Background(), executeInput())
	if err != nil {
		t.Fatalf("execute lottery failed: %v", err)
	}

	first, err := service.GetRecord(context.Background(), record.RecordID)
	if err != nil {
		t.Fatalf("get record failed: %v", err)
	}
	first.Participants[0].ApplicantID = "tampered"
	first.Result.Order[0].ApplicantID = "tampered"

	second, err := service.GetRecord(context.Background(), record.RecordID)
	if err != nil {
		t.Fatalf("re-fetch failed: %v", err)
	}
	if second.Participants[0].ApplicantID == "tampered" || second.Result.Order[0].ApplicantID == "tampered" {
		t.Fatalf("stored record shares memory with returned copies")
	}
}
