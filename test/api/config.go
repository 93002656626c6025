/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package api

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/unikorn-cloud/apim/pkg/constants"
)

type TestConfig struct {
	BaseURL             string
	GatewayURL          string
	SuperTenantUsername string
	SuperTenantPassword string
	TenantDomain        string
	TenantUsername      string
	TenantPassword      string
	ResourceDir         string
	RequestTimeout      time.Duration
	TestTimeout         time.Duration
	SkipIntegration     bool
	DebugLogging        bool
	LogRequests         bool
	LogResponses        bool
	ValidateResponses   bool
}

// LoadTestConfig loads configuration from environment variables and .env files.
// An empty base URL means the suites run against an in-process control plane.
// Returns an error if configuration values are invalid.
func LoadTestConfig() (*TestConfig, error) {
	loadEnvFile()

	tenantDomain := getWithDefault("APIM_TENANT_DOMAIN", "wso2.com")

	config := &TestConfig{
		BaseURL:             strings.TrimSuffix(os.Getenv("APIM_BASE_URL"), "/"),
		GatewayURL:          strings.TrimSuffix(getWithDefault("APIM_GATEWAY_URL", "http://localhost:8280"), "/"),
		SuperTenantUsername: getWithDefault("APIM_SUPER_TENANT_USERNAME", "admin"),
		SuperTenantPassword: getWithDefault("APIM_SUPER_TENANT_PASSWORD", "admin"),
		TenantDomain:        tenantDomain,
		TenantUsername:      getWithDefault("APIM_TENANT_USERNAME", "admin@"+tenantDomain),
		TenantPassword:      getWithDefault("APIM_TENANT_PASSWORD", "admin"),
		ResourceDir:         os.Getenv("APIM_RESOURCE_DIR"),
		RequestTimeout:      getDurationWithDefault("REQUEST_TIMEOUT", 30*time.Second),
		TestTimeout:         getDurationWithDefault("TEST_TIMEOUT", 5*time.Minute),
		SkipIntegration:     getBoolWithDefault("SKIP_INTEGRATION", false),
		DebugLogging:        getBoolWithDefault("DEBUG_LOGGING", false),
		LogRequests:         getBoolWithDefault("LOG_REQUESTS", false),
		LogResponses:        getBoolWithDefault("LOG_RESPONSES", false),
		ValidateResponses:   getBoolWithDefault("VALIDATE_RESPONSES", true),
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

// InProcess returns whether no external control plane has been configured.
func (c *TestConfig) InProcess() bool {
	return c.BaseURL == ""
}

func getWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

// getDurationWithDefault gets a duration from environment variable or returns default.
func getDurationWithDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}

	return duration
}

// getBoolWithDefault gets a boolean from environment variable or returns default.
func getBoolWithDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}

	return boolValue
}

func loadEnvFile() {
	envPaths := []string{
		"../../../test/.env", // From test/api/suites directory
		"../../test/.env",    // From test/api directory
	}

	var envPath string

	for _, path := range envPaths {
		if _, err := os.Stat(path); err == nil {
			absPath, err := filepath.Abs(path)
			if err == nil {
				envPath = absPath
				break
			}
		}
	}

	if envPath == "" {
		// .env file not found - this is OK in CI/CD where env vars are set directly
		return
	}

	if err := godotenv.Load(envPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env file from %s: %v\n", envPath, err)
	}
}

// validateConfig checks every configuration value and reports all problems at once.
func validateConfig(config *TestConfig) error {
	var problems []string

	urls := []struct {
		envVar string
		value  string
	}{
		{"APIM_BASE_URL", config.BaseURL},
		{"APIM_GATEWAY_URL", config.GatewayURL},
	}

	for _, u := range urls {
		if u.value == "" {
			continue
		}

		if parsed, err := url.Parse(u.value); err != nil || parsed.Scheme == "" || parsed.Host == "" {
			problems = append(problems, u.envVar+" must be an absolute URL")
		}
	}

	if strings.Contains(config.SuperTenantUsername, "@") && !strings.HasSuffix(config.SuperTenantUsername, "@"+constants.SuperTenantDomain) {
		problems = append(problems, "APIM_SUPER_TENANT_USERNAME must belong to "+constants.SuperTenantDomain)
	}

	if config.TenantDomain == constants.SuperTenantDomain {
		problems = append(problems, "APIM_TENANT_DOMAIN must not be the super tenant")
	}

	if !strings.HasSuffix(config.TenantUsername, "@"+config.TenantDomain) {
		problems = append(problems, "APIM_TENANT_USERNAME must belong to APIM_TENANT_DOMAIN")
	}

	if config.RequestTimeout <= 0 {
		problems = append(problems, "REQUEST_TIMEOUT must be positive")
	}

	if config.TestTimeout <= 0 {
		problems = append(problems, "TEST_TIMEOUT must be positive")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s. Please set these environment variables or add them to a .env file", strings.Join(problems, ", "))
	}

	return nil
}
