package main

import (
	"fmt"
	"os"

	"github.com/elC0mpa/storage-doctor/cmd/mcp/tools"
	"github.com/mark3labs/mcp-go/server"
)

func main() {
	cfg := LoadConfig()

	s := server.NewMCPServer(
		"storage-doctor-mcp",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	// Register tools for each provider
	tools.RegisterAzureTools(s, cfg.AzureSubscriptionID, cfg.AzureResourceGroup)
	tools.RegisterAWSTools(s, cfg.AWSRegion, cfg.AWSProfile)
	tools.RegisterGCPTools(s, cfg.GCPProjectID)
	tools.RegisterMultiCloudTools(s, cfg.AWSRegion, cfg.AWSProfile, cfg.GCPProjectID, cfg.AzureSubscriptionID, cfg.AzureResourceGroup)

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
