package orchestrator

import (
	"github.com/elC0mpa/storage-doctor/model"
	"github.com/elC0mpa/storage-doctor/service"
)

type orchestratorService struct {
	identityService service.IdentityService
	lister          service.StorageLister
	exportService   service.ExportService
}

type OrchestratorService interface {
	Orchestrate(model.Flags) error
}
