package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armsubscriptions"
	"github.com/elC0mpa/storage-doctor/cmd/mcp/response"
	azureconfig "github.com/elC0mpa/storage-doctor/service/azure/config"
	azureidentity "github.com/elC0mpa/storage-doctor/service/azure/identity"
	azurestorage "github.com/elC0mpa/storage-doctor/service/azure/storage"
	"github.com/elC0mpa/storage-doctor/service/scanner"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterAzureTools registers all Azure tools with the MCP server
func RegisterAzureTools(s *server.MCPServer, subscriptionID, resourceGroup string) {
	// List subscriptions (works without specific subscription ID)
	s.AddTool(
		mcp.NewTool("azure_list_subscriptions",
			mcp.WithDescription("List all Azure subscriptions the current credential has access to"),
		),
		makeAzureListSubscriptionsHandler(),
	)

	// Subscription info
	s.AddTool(
		mcp.NewTool("azure_get_subscription_info",
			mcp.WithDescription("Get Azure subscription details including ID, display name, and state. Requires AZURE_SUBSCRIPTION_ID environment variable."),
		),
		makeAzureSubscriptionInfoHandler(subscriptionID),
	)

	// Unused storage scan
	s.AddTool(
		mcp.NewTool("azure_scan_unused_storage",
			mcp.WithDescription("Scan a resource group for storage accounts with no blob activity within the given number of days. Requires AZURE_SUBSCRIPTION_ID and AZURE_RESOURCE_GROUP (resource_group argument overrides the latter)."),
			mcp.WithNumber("days_ago",
				mcp.Required(),
				mcp.Description("Number of days without blob modifications before a storage account counts as unused"),
				mcp.Min(0),
			),
			mcp.WithString("resource_group",
				mcp.Description("Resource group to scan, overrides AZURE_RESOURCE_GROUP"),
			),
		),
		makeAzureScanUnusedStorageHandler(subscriptionID, resourceGroup),
	)
}

func makeAzureListSubscriptionsHandler() server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		credential, err := azidentity.NewDefaultAzureCredential(nil)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to create Azure credential: %v", err)), nil
		}

		client, err := armsubscriptions.NewClient(credential, nil)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to create subscriptions client: %v", err)), nil
		}

		var subscriptions []response.AzureSubscription
		pager := client.NewListPager(nil)
		for pager.More() {
			page, err := pager.NextPage(ctx)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to list subscriptions: %v", err)), nil
			}

			for _, sub := range page.Value {
				if sub.SubscriptionID == nil {
					continue
				}

				displayName := *sub.SubscriptionID
				if sub.DisplayName != nil {
					displayName = *sub.DisplayName
				}

				state := "Unknown"
				if sub.State != nil {
					state = string(*sub.State)
				}

				// Only include enabled subscriptions
				if state == "Enabled" {
					subscriptions = append(subscriptions, response.AzureSubscription{
						SubscriptionID: *sub.SubscriptionID,
						DisplayName:    displayName,
						State:          state,
					})
				}
			}
		}

		data, _ := json.MarshalIndent(subscriptions, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}

func makeAzureSubscriptionInfoHandler(subscriptionID string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if subscriptionID == "" {
			return mcp.NewToolResultError("AZURE_SUBSCRIPTION_ID environment variable is required"), nil
		}

		cfgSvc, err := azureconfig.NewService(subscriptionID)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to create Azure config: %v", err)), nil
		}

		identitySvc, err := azureidentity.NewService(subscriptionID, cfgSvc.GetCredential())
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to create Azure identity service: %v", err)), nil
		}

		info, err := identitySvc.GetAccountInfo(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to get subscription info: %v", err)), nil
		}

		resp := response.ConvertAccountInfo(info)
		data, _ := json.MarshalIndent(resp, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}

func makeAzureScanUnusedStorageHandler(subscriptionID, defaultResourceGroup string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if subscriptionID == "" {
			return mcp.NewToolResultError("AZURE_SUBSCRIPTION_ID environment variable is required"), nil
		}

		daysAgo, err := request.RequireInt("days_ago")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Invalid days_ago argument: %v", err)), nil
		}
		if daysAgo < 0 {
			return mcp.NewToolResultError("days_ago must be zero or greater"), nil
		}

		resourceGroup := request.GetString("resource_group", defaultResourceGroup)
		if resourceGroup == "" {
			return mcp.NewToolResultError("AZURE_RESOURCE_GROUP environment variable or resource_group argument is required"), nil
		}

		cfgSvc, err := azureconfig.NewService(subscriptionID)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to create Azure config: %v", err)), nil
		}

		identitySvc, err := azureidentity.NewService(subscriptionID, cfgSvc.GetCredential())
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to create Azure identity service: %v", err)), nil
		}

		accountInfo, err := identitySvc.GetAccountInfo(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to get subscription info: %v", err)), nil
		}

		storageSvc, err := azurestorage.NewService(subscriptionID, resourceGroup, cfgSvc.GetCredential())
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to create Azure storage service: %v", err)), nil
		}

		result, err := scanner.NewService(storageSvc, nil, nil).Scan(ctx, daysAgo)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to scan storage accounts: %v", err)), nil
		}

		resp := response.ConvertScanResult("azure", accountInfo.AccountID, resourceGroup, daysAgo, result)
		data, _ := json.MarshalIndent(resp, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}
