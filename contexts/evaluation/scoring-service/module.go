package scoringservice

import (
	"log/slog"

	httpadapter "emprende/contexts/evaluation/scoring-service/adapters/http"
	"emprende/contexts/evaluation/scoring-service/adapters/memory"
	"emprende/contexts/evaluation/scoring-service/application"
	"emprende/contexts/evaluation/scoring-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Criteria    ports.CriterionRepository
	Evaluations ports.EvaluationRepository
	Applicants  ports.ApplicantDirectory
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Criteria:    deps.Criteria,
		Evaluations: deps.Evaluations,
		Applicants:  deps.Applicants,
		Clock:       deps.Clock,
		IDGen:       deps.IDGenerator,
		Logger:      deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
	}
}

func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Criteria:    store,
		Evaluations: store,
		Applicants:  store,
		Clock:       store,
		IDGenerator: store,
		Logger:      logger,
	})
	module.Store = store
	return module
}
