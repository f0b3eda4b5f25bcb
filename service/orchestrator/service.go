package orchestrator

import (
	"context"
	"strings"

	"github.com/elC0mpa/storage-doctor/model"
	"github.com/elC0mpa/storage-doctor/service"
	"github.com/elC0mpa/storage-doctor/service/scanner"
	"github.com/elC0mpa/storage-doctor/utils"
)

func NewService(identityService service.IdentityService, lister service.StorageLister, exportService service.ExportService) *orchestratorService {
	return &orchestratorService{
		identityService: identityService,
		lister:          lister,
		exportService:   exportService,
	}
}

func (s *orchestratorService) Orchestrate(flags model.Flags) error {
	return s.scanWorkflow(flags)
}

func (s *orchestratorService) scanWorkflow(flags model.Flags) error {
	ctx := context.Background()

	accountInfo, err := s.identityService.GetAccountInfo(ctx)
	if err != nil {
		return err
	}

	scannerService := scanner.NewService(s.lister, utils.UpdateScanProgress, utils.Warnf)
	result, err := scannerService.Scan(ctx, flags.DaysAgo)
	if err != nil {
		return err
	}

	utils.StopSpinner()

	utils.DrawUnusedStoresTable(*accountInfo, flags, result)

	if flags.Chart && len(result.UnusedAccounts) > 0 {
		utils.DrawLocationChart(result.UnusedAccounts)
	}

	if ExportEnabled(flags.ExportCSV) {
		path, err := s.exportService.ExportUnusedAccounts(result)
		if err != nil {
			// The console report above is the primary deliverable; a
			// failed CSV write is reported but never fails the run
			utils.Warnf("failed to export CSV: %v", err)
		} else {
			utils.Successf("Unused stores exported to %s", path)
		}
	}

	return nil
}

// ExportEnabled is a strict opt-in: only a case-insensitive "y" turns the
// CSV export on.
func ExportEnabled(flag string) bool {
	return strings.EqualFold(flag, "y")
}
