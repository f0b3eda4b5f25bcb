package main

import (
	"context"
	"fmt"
	"os"

	"github.com/elC0mpa/storage-doctor/model"
	"github.com/elC0mpa/storage-doctor/service"
	awsconfig "github.com/elC0mpa/storage-doctor/service/aws/config"
	awss3 "github.com/elC0mpa/storage-doctor/service/aws/s3"
	awssts "github.com/elC0mpa/storage-doctor/service/aws/sts"
	azureconfig "github.com/elC0mpa/storage-doctor/service/azure/config"
	azureidentity "github.com/elC0mpa/storage-doctor/service/azure/identity"
	azurestorage "github.com/elC0mpa/storage-doctor/service/azure/storage"
	"github.com/elC0mpa/storage-doctor/service/export"
	"github.com/elC0mpa/storage-doctor/service/flag"
	gcpconfig "github.com/elC0mpa/storage-doctor/service/gcp/config"
	gcpidentity "github.com/elC0mpa/storage-doctor/service/gcp/identity"
	gcpstorage "github.com/elC0mpa/storage-doctor/service/gcp/storage"
	"github.com/elC0mpa/storage-doctor/service/orchestrator"
	"github.com/elC0mpa/storage-doctor/utils"
)

func main() {
	utils.DrawBanner()

	flagService := flag.NewService()
	flags, err := flagService.GetParsedFlags()
	if err != nil {
		fail(err)
	}

	utils.StartSpinner()

	identityService, lister, err := buildProviderServices(context.Background(), flags)
	if err != nil {
		utils.StopSpinner()
		fail(err)
	}

	orchestratorService := orchestrator.NewService(identityService, lister, export.NewService(""))

	if err := orchestratorService.Orchestrate(flags); err != nil {
		utils.StopSpinner()
		fail(err)
	}
}

func buildProviderServices(ctx context.Context, flags model.Flags) (service.IdentityService, service.StorageLister, error) {
	switch flags.Provider {
	case "azure":
		cfgService, err := azureconfig.NewService(flags.Subscription)
		if err != nil {
			return nil, nil, err
		}

		identityService, err := azureidentity.NewService(flags.Subscription, cfgService.GetCredential())
		if err != nil {
			return nil, nil, err
		}

		storageService, err := azurestorage.NewService(flags.Subscription, flags.ResourceGroup, cfgService.GetCredential())
		if err != nil {
			return nil, nil, err
		}

		return identityService, storageService, nil

	case "aws":
		cfgService := awsconfig.NewService()
		awsCfg, err := cfgService.GetAWSCfg(ctx, flags.Region, flags.Profile)
		if err != nil {
			return nil, nil, err
		}

		return awssts.NewService(awsCfg), awss3.NewService(awsCfg), nil

	case "gcp":
		cfgService := gcpconfig.NewService(flags.Project)
		if _, err := cfgService.GetCredentials(ctx); err != nil {
			return nil, nil, fmt.Errorf("failed to resolve GCP credentials: %w", err)
		}

		identityService, err := gcpidentity.NewService(ctx, flags.Project)
		if err != nil {
			return nil, nil, err
		}

		storageService, err := gcpstorage.NewService(ctx, flags.Project)
		if err != nil {
			return nil, nil, err
		}

		return identityService, storageService, nil
	}

	return nil, nil, fmt.Errorf("unknown provider %q", flags.Provider)
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
