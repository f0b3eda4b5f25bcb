package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/elC0mpa/storage-doctor/cmd/mcp/response"
	awsconfig "github.com/elC0mpa/storage-doctor/service/aws/config"
	awss3 "github.com/elC0mpa/storage-doctor/service/aws/s3"
	awssts "github.com/elC0mpa/storage-doctor/service/aws/sts"
	azureconfig "github.com/elC0mpa/storage-doctor/service/azure/config"
	azureidentity "github.com/elC0mpa/storage-doctor/service/azure/identity"
	azurestorage "github.com/elC0mpa/storage-doctor/service/azure/storage"
	gcpstorage "github.com/elC0mpa/storage-doctor/service/gcp/storage"
	"github.com/elC0mpa/storage-doctor/service/scanner"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterMultiCloudTools registers multi-cloud aggregate tools with the MCP server
func RegisterMultiCloudTools(s *server.MCPServer, awsRegion, awsProfile, gcpProjectID, azureSubscriptionID, azureResourceGroup string) {
	s.AddTool(
		mcp.NewTool("multicloud_scan_unused_storage",
			mcp.WithDescription("Scan all configured cloud providers (AWS, GCP, Azure) for storage with no activity within the given number of days. Providers are included based on AWS_REGION/AWS_PROFILE, GCP_PROJECT_ID, and AZURE_SUBSCRIPTION_ID/AZURE_RESOURCE_GROUP."),
			mcp.WithNumber("days_ago",
				mcp.Required(),
				mcp.Description("Number of days without modifications before a store counts as unused"),
				mcp.Min(0),
			),
		),
		makeMultiCloudScanHandler(awsRegion, awsProfile, gcpProjectID, azureSubscriptionID, azureResourceGroup),
	)
}

func makeMultiCloudScanHandler(awsRegion, awsProfile, gcpProjectID, azureSubscriptionID, azureResourceGroup string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		daysAgo, err := request.RequireInt("days_ago")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Invalid days_ago argument: %v", err)), nil
		}
		if daysAgo < 0 {
			return mcp.NewToolResultError("days_ago must be zero or greater"), nil
		}

		var results []response.ScanSummary
		var mu sync.Mutex
		var wg sync.WaitGroup

		collect := func(summary *response.ScanSummary) {
			mu.Lock()
			results = append(results, *summary)
			mu.Unlock()
		}

		// AWS (always available via default credential chain)
		wg.Add(1)
		go func() {
			defer wg.Done()
			collect(collectAWSScan(ctx, awsRegion, awsProfile, daysAgo))
		}()

		// GCP (only if configured)
		if gcpProjectID != "" {
			wg.Add(1)
			go func() {
				defer wg.Done()
				collect(collectGCPScan(ctx, gcpProjectID, daysAgo))
			}()
		}

		// Azure (only if configured)
		if azureSubscriptionID != "" && azureResourceGroup != "" {
			wg.Add(1)
			go func() {
				defer wg.Done()
				collect(collectAzureScan(ctx, azureSubscriptionID, azureResourceGroup, daysAgo))
			}()
		}

		wg.Wait()

		data, _ := json.MarshalIndent(results, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}

func collectAWSScan(ctx context.Context, region, profile string, daysAgo int) *response.ScanSummary {
	failed := func(err error) *response.ScanSummary {
		return &response.ScanSummary{Provider: "aws", Scope: region, DaysAgo: daysAgo, Error: err.Error()}
	}

	awsCfg, err := awsconfig.NewService().GetAWSCfg(ctx, region, profile)
	if err != nil {
		return failed(err)
	}

	accountInfo, err := awssts.NewService(awsCfg).GetAccountInfo(ctx)
	if err != nil {
		return failed(err)
	}

	result, err := scanner.NewService(awss3.NewService(awsCfg), nil, nil).Scan(ctx, daysAgo)
	if err != nil {
		return failed(err)
	}

	return response.ConvertScanResult("aws", accountInfo.AccountID, region, daysAgo, result)
}

func collectGCPScan(ctx context.Context, projectID string, daysAgo int) *response.ScanSummary {
	failed := func(err error) *response.ScanSummary {
		return &response.ScanSummary{Provider: "gcp", AccountID: projectID, Scope: projectID, DaysAgo: daysAgo, Error: err.Error()}
	}

	storageSvc, err := gcpstorage.NewService(ctx, projectID)
	if err != nil {
		return failed(err)
	}

	result, err := scanner.NewService(storageSvc, nil, nil).Scan(ctx, daysAgo)
	if err != nil {
		return failed(err)
	}

	return response.ConvertScanResult("gcp", projectID, projectID, daysAgo, result)
}

func collectAzureScan(ctx context.Context, subscriptionID, resourceGroup string, daysAgo int) *response.ScanSummary {
	failed := func(err error) *response.ScanSummary {
		return &response.ScanSummary{Provider: "azure", AccountID: subscriptionID, Scope: resourceGroup, DaysAgo: daysAgo, Error: err.Error()}
	}

	cfgSvc, err := azureconfig.NewService(subscriptionID)
	if err != nil {
		return failed(err)
	}

	identitySvc, err := azureidentity.NewService(subscriptionID, cfgSvc.GetCredential())
	if err != nil {
		return failed(err)
	}

	accountInfo, err := identitySvc.GetAccountInfo(ctx)
	if err != nil {
		return failed(err)
	}

	storageSvc, err := azurestorage.NewService(subscriptionID, resourceGroup, cfgSvc.GetCredential())
	if err != nil {
		return failed(err)
	}

	result, err := scanner.NewService(storageSvc, nil, nil).Scan(ctx, daysAgo)
	if err != nil {
		return failed(err)
	}

	return response.ConvertScanResult("azure", accountInfo.AccountID, resourceGroup, daysAgo, result)
}
