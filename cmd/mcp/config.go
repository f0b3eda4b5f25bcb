package main

import "os"

// Config holds environment-based configuration for all cloud providers
type Config struct {
	// AWS configuration
	AWSRegion  string
	AWSProfile string

	// GCP configuration
	GCPProjectID string

	// Azure configuration
	AzureSubscriptionID string
	AzureResourceGroup  string
}

// LoadConfig reads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		AWSRegion:           getEnvOrDefault("AWS_REGION", "us-east-1"),
		AWSProfile:          os.Getenv("AWS_PROFILE"),
		GCPProjectID:        os.Getenv("GCP_PROJECT_ID"),
		AzureSubscriptionID: os.Getenv("AZURE_SUBSCRIPTION_ID"),
		AzureResourceGroup:  os.Getenv("AZURE_RESOURCE_GROUP"),
	}
}

// HasAWS returns true if AWS is available (always true - uses default credential chain)
func (c *Config) HasAWS() bool {
	return true
}

// HasGCP returns true if GCP project is configured
func (c *Config) HasGCP() bool {
	return c.GCPProjectID != ""
}

// HasAzure returns true if Azure subscription and resource group are configured
func (c *Config) HasAzure() bool {
	return c.AzureSubscriptionID != "" && c.AzureResourceGroup != ""
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
