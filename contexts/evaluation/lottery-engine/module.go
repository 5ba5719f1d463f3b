package lotteryengine

import (
	"log/slog"

	"emprende/contexts/evaluation/lottery-engine/adapters/acta"
	"emprende/contexts/evaluation/lottery-engine/adapters/entropy"
	httpadapter "emprende/contexts/evaluation/lottery-engine/adapters/http"
	"emprende/contexts/evaluation/lottery-engine/adapters/memory"
	"emprende/contexts/evaluation/lottery-engine/application"
	"emprende/contexts/evaluation/lottery-engine/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Records     ports.RecordRepository
	Renderer    ports.ActaRenderer
	Seeds       ports.SeedSource
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Records:  deps.Records,
		Renderer: deps.Renderer,
		Seeds:    deps.Seeds,
		Clock:    deps.Clock,
		IDGen:    deps.IDGenerator,
		Logger:   deps.Logger,
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
		Records:     store,
		Renderer:    acta.TextRenderer{},
		Seeds:       entropy.CryptoSeedSource{},
		Clock:       store,
		IDGenerator: store,
		Logger:      logger,
	})
	module.Store = store
	return module
}
