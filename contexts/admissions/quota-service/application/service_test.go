package application

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"emprende/contexts/admissions/quota-service/adapters/memory"
	"emprende/contexts/admissions/quota-service/domain/entities"
	domainerrors "emprende/contexts/admissions/quota-service/domain/errors"
	"emprende/contexts/admissions/quota-service/ports"
)

func newTestService(store *memory.Store) Service {
	return Service{
		Configs:            store,
		Capacities:         store,
		Admissions:         store,
		Clock:              store,
		IDGen:              store,
		DefaultConvocation: "2025",
	}
}

func registration(email string, municipality string) ports.RegisterApplicantInput {
	return ports.RegisterApplicantInput{
		FirstName:    "Ana",
		LastName:     "Lopez",
		Email:        email,
		Municipality: municipality,
	}
}

func setBlockedConfig(t *testing.T, service Service, globalMax *int) {
	t.Helper()
	_, err := service.SetActiveConfig(context.Background(), ports.SetQuotaConfigInput{
		Mode:      entities.QuotaModeBlocked,
		GlobalMax: globalMax,
	})
	if err != nil {
		t.Fatalf("set blocked config failed: %v", err)
	}
}

func setCapacity(t *testing.T, service Service, slug string, max int) {
	t.Helper()
	err := service.SetCapacities(context.Background(), []ports.CapacityInput{
		{Slug: slug, Subregion: "centro", MaxCapacity: max},
	})
	if err != nil {
		t.Fatalf("set capacity for %s failed: %v", slug, err)
	}
}

func TestRegisterApplicantOpenModeAlwaysConfirms(t *testing.T) {
	service := newTestService(memory.NewStore())

	applicant, outcome, err := service.RegisterApplicant(context.Background(), registration("ana@example.com", "pasto"))
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if outcome.Status != entities.AdmissionConfirmed {
		t.Fatalf("expected confirmed in open mode, got %s", outcome.Status)
	}
	if applicant.AccountStatus != entities.AccountStatusInactive {
		t.Fatalf("expected inactive account status for confirmed admission, got %s", applicant.AccountStatus)
	}
}

func TestBlockedModeWaitlistsWhenMunicipalityFull(t *testing.T) {
	service := newTestService(memory.NewStore())
	setBlockedConfig(t, service, nil)
	setCapacity(t, service, "pasto", 2)

	for i := 0; i < 2; i++ {
		_, outcome, err := service.RegisterApplicant(context.Background(),
			registration(fmt.Sprintf("seat%d@example.com", i), "pasto"))
		if err != nil {
			t.Fatalf("register %d failed: %v", i, err)
		}
		if outcome.Status != entities.AdmissionConfirmed {
			t.Fatalf("register %d: expected confirmed, got %s", i, outcome.Status)
		}
	}

	applicant, outcome, err := service.RegisterApplicant(context.Background(), registration("third@example.com", "pasto"))
	if err != nil {
		t.Fatalf("third register failed: %v", err)
	}
	if outcome.Status != entities.AdmissionWaitlisted {
		t.Fatalf("expected waitlisted when municipality full, got %s", outcome.Status)
	}
	if !outcome.MunicipalityFull {
		t.Fatalf("expected municipality_full flag")
	}
	if applicant.AccountStatus != entities.AccountStatusWaitlisted {
		t.Fatalf("expected waitlisted account status, got %s", applicant.AccountStatus)
	}
}

func TestBlockedModeUnconfiguredMunicipalityWaitlists(t *testing.T) {
	service := newTestService(memory.NewStore())
	setBlockedConfig(t, service, nil)

	_, outcome, err := service.RegisterApplicant(context.Background(), registration("ana@example.com", "tumaco"))
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if outcome.Status != entities.AdmissionWaitlisted {
		t.Fatalf("expected waitlist for unconfigured municipality, got %s", outcome.Status)
	}
}

func TestGlobalCapWaitlistsAcrossMunicipalities(t *testing.T) {
	service := newTestService(memory.NewStore())
	globalMax := 1
	setBlockedConfig(t, service, &globalMax)
	err := service.SetCapacities(context.Background(), []ports.CapacityInput{
		{Slug: "pasto", MaxCapacity: 5},
		{Slug: "ipiales", MaxCapacity: 5},
	})
	if err != nil {
		t.Fatalf("set capacities failed: %v", err)
	}

	_, first, err := service.RegisterApplicant(context.Background(), registration("first@example.com", "pasto"))
	if err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if first.Status != entities.AdmissionConfirmed {
		t.Fatalf("expected first confirmed, got %s", first.Status)
	}

	_, second, err := service.RegisterApplicant(context.Background(), registration("second@example.com", "ipiales"))
	if err != nil {
		t.Fatalf("second register failed: %v", err)
	}
	if second.Status != entities.AdmissionWaitlisted {
		t.Fatalf("expected second waitlisted by global cap, got %s", second.Status)
	}
	if !second.GlobalFull {
		t.Fatalf("expected global_full flag")
	}
}

func TestRegisterApplicantRejectsDuplicateEmail(t *testing.T) {
	service := newTestService(memory.NewStore())

	if _, _, err := service.RegisterApplicant(context.Background(), registration("ana@example.com", "pasto")); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	_, _, err := service.RegisterApplicant(context.Background(), registration("Ana@Example.com", "ipiales"))
	if !errors.Is(err, domainerrors.ErrDuplicateApplicant) {
		t.Fatalf("expected duplicate applicant error, got %v", err)
	}
}

func TestConcurrentRegistrationsRespectCapacity(t *testing.T) {
	service := newTestService(memory.NewStore())
	setBlockedConfig(t, service, nil)
	setCapacity(t, service, "pasto", 2)

	const attempts = 6
	var wg sync.WaitGroup
	var mu sync.Mutex
	statuses := make(map[string]int)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, outcome, err := service.RegisterApplicant(context.Background(),
				registration(fmt.Sprintf("race%d@example.com", i), "pasto"))
			if err != nil {
				t.Errorf("register %d failed: %v", i, err)
				return
			}
			mu.Lock()
			statuses[outcome.Status]++
			mu.Unlock()
		}(i)
	}
	wg.Wait()

	if statuses[entities.AdmissionConfirmed] != 2 {
		t.Fatalf("expected exactly 2 confirmed, got %d", statuses[entities.AdmissionConfirmed])
	}
	if statuses[entities.AdmissionWaitlisted] != attempts-2 {
		t.Fatalf("expected %d waitlisted, got %d", attempts-2, statuses[entities.AdmissionWaitlisted])
	}

	counts, err := service.Occupancy(context.Background(), "")
	if err != nil {
		t.Fatalf("occupancy failed: %v", err)
	}
	if counts.ByMunicipality["pasto"] != 2 {
		t.Fatalf("expected 2 confirmed seats in pasto, got %d", counts.ByMunicipality["pasto"])
	}
}

func TestSetCapacitiesRejectsInvalidBatchAtomically(t *testing.T) {
	service := newTestService(memory.NewStore())

	err := service.SetCapacities(context.Background(), []ports.CapacityInput{
		{Slug: "pasto", MaxCapacity: 3},
		{Slug: "", MaxCapacity: 1},
	})
	if !errors.Is(err, domainerrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input error, got %v", err)
	}

	items, err := service.ListCapacities(context.Background())
	if err != nil {
		t.Fatalf("list capacities failed: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected no capacities after rejected batch, got %d", len(items))
	}
}

func TestPreviewAdmissionDoesNotRegister(t *testing.T) {
	service := newTestService(memory.NewStore())
	setBlockedConfig(t, service, nil)
	setCapacity(t, service, "pasto", 1)

	outcome, err := service.DecideAdmission(context.Background(), "pasto", "")
	if err != nil {
		t.Fatalf("preview failed: %v", err)
	}
	if outcome.Status != entities.AdmissionConfirmed {
		t.Fatalf("expected preview to confirm with free capacity, got %s", outcome.Status)
	}

	counts, err := service.Occupancy(context.Background(), "")
	if err != nil {
		t.Fatalf("occupancy failed: %v", err)
	}
	if counts.Total != 0 {
		t.Fatalf("expected preview to leave no registrations, got %d", counts.Total)
	}
}
