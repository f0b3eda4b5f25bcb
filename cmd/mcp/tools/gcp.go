package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/elC0mpa/storage-doctor/cmd/mcp/response"
	gcpidentity "github.com/elC0mpa/storage-doctor/service/gcp/identity"
	gcpstorage "github.com/elC0mpa/storage-doctor/service/gcp/storage"
	"github.com/elC0mpa/storage-doctor/service/scanner"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterGCPTools registers all GCP tools with the MCP server
func RegisterGCPTools(s *server.MCPServer, projectID string) {
	// Project info
	s.AddTool(
		mcp.NewTool("gcp_get_project_info",
			mcp.WithDescription("Get GCP project details including project ID and name. Requires GCP_PROJECT_ID environment variable."),
		),
		makeGCPProjectInfoHandler(projectID),
	)

	// Unused storage scan
	s.AddTool(
		mcp.NewTool("gcp_scan_unused_storage",
			mcp.WithDescription("Scan Cloud Storage buckets for buckets with no object activity within the given number of days. Requires GCP_PROJECT_ID environment variable."),
			mcp.WithNumber("days_ago",
				mcp.Required(),
				mcp.Description("Number of days without object modifications before a bucket counts as unused"),
				mcp.Min(0),
			),
		),
		makeGCPScanUnusedStorageHandler(projectID),
	)
}

func makeGCPProjectInfoHandler(projectID string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if projectID == "" {
			return mcp.NewToolResultError("GCP_PROJECT_ID environment variable is required"), nil
		}

		identitySvc, err := gcpidentity.NewService(ctx, projectID)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to create GCP identity service: %v", err)), nil
		}

		info, err := identitySvc.GetAccountInfo(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to get project info: %v", err)), nil
		}

		resp := response.ConvertAccountInfo(info)
		data, _ := json.MarshalIndent(resp, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}

func makeGCPScanUnusedStorageHandler(projectID string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if projectID == "" {
			return mcp.NewToolResultError("GCP_PROJECT_ID environment variable is required"), nil
		}

		daysAgo, err := request.RequireInt("days_ago")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Invalid days_ago argument: %v", err)), nil
		}
		if daysAgo < 0 {
			return mcp.NewToolResultError("days_ago must be zero or greater"), nil
		}

		storageSvc, err := gcpstorage.NewService(ctx, projectID)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to create GCP storage service: %v", err)), nil
		}

		result, err := scanner.NewService(storageSvc, nil, nil).Scan(ctx, daysAgo)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to scan buckets: %v", err)), nil
		}

		resp := response.ConvertScanResult("gcp", projectID, projectID, daysAgo, result)
		data, _ := json.MarshalIndent(resp, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}
