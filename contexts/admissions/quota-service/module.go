package quotaservice

import (
	"log/slog"

	httpadapter "emprende/contexts/admissions/quota-service/adapters/http"
	"emprende/contexts/admissions/quota-service/adapters/memory"
	"emprende/contexts/admissions/quota-service/application"
	"emprende/contexts/admissions/quota-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Configs            ports.ConfigRepository
	Capacities         ports.CapacityRepository
	Admissions         ports.AdmissionRepository
	Clock              ports.Clock
	IDGenerator        ports.IDGenerator
	DefaultConvocation string
	Logger             *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Configs:            deps.Configs,
		Capacities:         deps.Capacities,
		Admissions:         deps.Admissions,
		Clock:              deps.Clock,
		IDGen:              deps.IDGenerator,
		DefaultConvocation: deps.DefaultConvocation,
		Logger:             deps.Logger,
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
		Configs:            store,
		Capacities:         store,
		Admissions:         store,
		Clock:              store,
		IDGenerator:        store,
		DefaultConvocation: "2025",
		Logger:             logger,
	})
	module.Store = store
	return module
}
