package entities

import "testing"

func drawPool() []Participant {
	return []Participant{
		{ApplicantID: "app-1", FirstName: "Ana", LastName: "Lopez"},
		{ApplicantID: "app-2", FirstName: "Luis", LastName: "Mora"},
		{ApplicantID: "app-3", FirstName: "Sara", LastName: "Diaz"},
		{ApplicantID: "app-4", FirstName: "Juan", LastName: "Rios"},
	}
}

func TestShuffleWithSeedIsReproducible(t *testing.T) {
	first := ShuffleWithSeed(drawPool(), 424242)
	second := ShuffleWithSeed(drawPool(), 424242)

	if len(first) != len(second) {
		t.Fatalf("expected equal lengths, got %d and %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("position %d differs across replays: %+v vs %+v", i+1, first[i], second[i])
		}
	}
}

func TestShuffleWithSeedIsAPermutation(t *testing.T) {
	pool := drawPool()
	order := ShuffleWithSeed(pool, 7)

	if len(order) != len(pool) {
		t.Fatalf("expected %d entries, got %d", len(pool), len(order))
	}
	seen := make(map[string]bool, len(order))
	for i, entry := range order {
		if entry.Position != i+1 {
			t.Fatalf("expected position %d, got %d", i+1, entry.Position)
		}
		if seen[entry.ApplicantID] {
			t.Fatalf("applicant %s drawn twice", entry.ApplicantID)
		}
		seen[entry.ApplicantID] = true
		if entry.AuxNumber < 1 || entry.AuxNumber > AuxNumberMax {
			t.Fatalf("aux number %d out of range", entry.AuxNumber)
		}
	}
}

func TestShuffleWithSeedLeavesInputUntouched(t *testing.T) {
	pool := drawPool()
	ShuffleWithSeed(pool, 99)

	for i, participant := range drawPool() {
		if pool[i] != participant {
			t.Fatalf("input slice mutated at index %d", i)
		}
	}
}

func TestCloneRecordIsolatesSlices(t *testing.T) {
	record := LotteryRecord{
		RecordID:     "rec-1",
		Participants: drawPool(),
		Result:       DrawResult{Order: ShuffleWithSeed(drawPool(), 5)},
		ActaContent:  []byte("acta"),
	}

	clone := CloneRecord(record)
	clone.Participants[0].ApplicantID = "changed"
	clone.Result.Order[0].Position = 99
	clone.ActaContent[0] = 'x'

	if record.Participants[0].ApplicantID == "changed" {
		t.Fatalf("clone shares participants with the original")
	}
	if record.Result.Order[0].Position == 99 {
		t.Fatalf("clone shares draw order with the original")
	}
	if record.ActaContent[0] == 'x' {
		t.Fatalf("clone shares acta bytes with the original")
	}
}
