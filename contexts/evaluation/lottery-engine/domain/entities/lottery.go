package entities

import (
	"math/rand/v2"
	"time"
)

// Participant is a snapshot of the applicant at draw time; live applicant
// data may change later, the record keeps what was drawn.
type Participant struct {
	ApplicantID  string
	FirstName    string
	LastName     string
	Email        string
	Municipality string
}

// DrawEntry is one position in the shuffled order. AuxNumber is an
// auxiliary per-participant random number kept for audit completeness; it
// does not influence who wins.
type DrawEntry struct {
	Position    int
	ApplicantID string
	FullName    string
	AuxNumber   int
}

type DrawResult struct {
	Seed             uint64
	ExecutedAt       time.Time
	ParticipantCount int
	Order            []DrawEntry
}

type Amendment struct {
	AdministratorID string
	Notes           string
	AmendedAt       time.Time
}

// LotteryRecord is write-once: Result, WinnerID, and Participants never
// change after creation. Only Notes may be amended, and each amendment is
// appended to Amendments.
type LotteryRecord struct {
	RecordID        string
	ExecutedAt      time.Time
	AdministratorID string
	Description     string
	Notes           string
	Participants    []Participant
	Result          DrawResult
	WinnerID        string
	ActaName        string
	ActaContent     []byte
	Amendments      []Amendment
}

func (r LotteryRecord) Winner() (Participant, bool) {
	for _, participant := range r.Participants {
		if participant.ApplicantID == r.WinnerID {
			return participant, true
		}
	}
	return Participant{}, false
}

// AuxNumberMax bounds the auxiliary random numbers recorded per position.
const AuxNumberMax = 1000

// ShuffleWithSeed produces the full draw order for a seed: a Fisher-Yates
// shuffle over a PCG generator seeded with the value, winner at position 1.
// Deterministic for a given (participants, seed) pair, which is what lets an
// auditor reproduce a stored draw.
func ShuffleWithSeed(participants []Participant, seed uint64) []DrawEntry {
	rng := rand.New(rand.NewPCG(seed, seed))

	shuffled := append([]Participant(nil), participants...)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	order := make([]DrawEntry, 0, len(shuffled))
	for i, participant := range shuffled {
		order = append(order, DrawEntry{
			Position:    i + 1,
			ApplicantID: participant.ApplicantID,
			FullName:    participant.FirstName + " " + participant.LastName,
			AuxNumber:   rng.IntN(AuxNumberMax) + 1,
		})
	}
	return order
}

// CloneRecord deep-copies a record so callers can hand out results without
// exposing internal slices to mutation.
func CloneRecord(record LotteryRecord) LotteryRecord {
	clone := record
	clone.Participants = append([]Participant(nil), record.Participants...)
	clone.Amendments = append([]Amendment(nil), record.Amendments...)
	clone.Result.Order = append([]DrawEntry(nil), record.Result.Order...)
	clone.ActaContent = append([]byte(nil), record.ActaContent...)
	return clone
}
