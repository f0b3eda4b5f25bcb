package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/elC0mpa/storage-doctor/cmd/mcp/response"
	awsconfig "github.com/elC0mpa/storage-doctor/service/aws/config"
	awss3 "github.com/elC0mpa/storage-doctor/service/aws/s3"
	awssts "github.com/elC0mpa/storage-doctor/service/aws/sts"
	"github.com/elC0mpa/storage-doctor/service/scanner"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterAWSTools registers all AWS tools with the MCP server
func RegisterAWSTools(s *server.MCPServer, region, profile string) {
	// Account info
	s.AddTool(
		mcp.NewTool("aws_get_account_info",
			mcp.WithDescription("Get AWS account details including account ID and IAM identity. Uses AWS_REGION and AWS_PROFILE environment variables."),
		),
		makeAWSAccountInfoHandler(region, profile),
	)

	// Unused storage scan
	s.AddTool(
		mcp.NewTool("aws_scan_unused_storage",
			mcp.WithDescription("Scan S3 buckets for buckets with no object activity within the given number of days. Uses AWS_REGION and AWS_PROFILE environment variables."),
			mcp.WithNumber("days_ago",
				mcp.Required(),
				mcp.Description("Number of days without object modifications before a bucket counts as unused"),
				mcp.Min(0),
			),
		),
		makeAWSScanUnusedStorageHandler(region, profile),
	)
}

func makeAWSAccountInfoHandler(region, profile string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		awsCfg, err := awsconfig.NewService().GetAWSCfg(ctx, region, profile)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to load AWS config: %v", err)), nil
		}

		info, err := awssts.NewService(awsCfg).GetAccountInfo(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to get account info: %v", err)), nil
		}

		resp := response.ConvertAccountInfo(info)
		data, _ := json.MarshalIndent(resp, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}

func makeAWSScanUnusedStorageHandler(region, profile string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		daysAgo, err := request.RequireInt("days_ago")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Invalid days_ago argument: %v", err)), nil
		}
		if daysAgo < 0 {
			return mcp.NewToolResultError("days_ago must be zero or greater"), nil
		}

		awsCfg, err := awsconfig.NewService().GetAWSCfg(ctx, region, profile)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to load AWS config: %v", err)), nil
		}

		accountInfo, err := awssts.NewService(awsCfg).GetAccountInfo(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to get account info: %v", err)), nil
		}

		result, err := scanner.NewService(awss3.NewService(awsCfg), nil, nil).Scan(ctx, daysAgo)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to scan buckets: %v", err)), nil
		}

		resp := response.ConvertScanResult("aws", accountInfo.AccountID, region, daysAgo, result)
		data, _ := json.MarshalIndent(resp, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}
