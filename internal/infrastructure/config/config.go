package config

import (
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultPort              = "8080"
	defaultOpenAPISpec       = "api/openapi.yaml"
	defaultShutdownTimeout   = 10 * time.Second
	defaultLedgerHTTPTimeout = 15 * time.Second
	defaultFundsMonitorPoll  = 2 * time.Second
	defaultMetadataCacheSize = 128
	defaultReferenceToken    = "0x716f0d674efeeca329f141d0ca0d97a98057bdbf"
	defaultRollupEndpointID  = "devtest"
	fundsMonitorEnabledEnv   = "FUNDS_MONITOR_ENABLED"
	fundsMonitorPollEnv      = "FUNDS_MONITOR_POLL_INTERVAL"
	metadataCacheSizeEnv     = "ASSET_METADATA_CACHE_SIZE"
	referenceTokenEnv        = "REFERENCE_TOKEN_ADDRESS"
	ledgerHTTPTimeoutEnv     = "LEDGER_HTTP_TIMEOUT"
	baseLedgerRPCURLEnv      = "BASE_LEDGER_RPC_URL"
	rollupLedgerRPCURLEnv    = "ROLLUP_LEDGER_RPC_URL"
	rollupEndpointURLEnv     = "ROLLUP_ENDPOINT_URL"
	rollupEndpointIDEnv      = "ROLLUP_ENDPOINT_ID"
	walletAddressEnv         = "WALLET_ADDRESS"
	bridgeContractAddressEnv = "BRIDGE_CONTRACT_ADDRESS"
)

type ConfigError struct {
	Code     string
	Message  string
	Metadata map[string]string
}

func (e *ConfigError) Error() string {
	if e == nil {
		return ""
	}

	return e.Message
}

type Config struct {
	Port                  string
	OpenAPISpecPath       string
	ShutdownTimeout       time.Duration
	BaseLedgerRPCURL      string
	RollupLedgerRPCURL    string
	RollupEndpointURL     string
	RollupEndpointID      string
	WalletAddress         string
	BridgeContractAddress string
	ReferenceTokenAddress string
	LedgerHTTPTimeout     time.Duration
	MetadataCacheSize     int
	FundsMonitorEnabled   bool
	FundsMonitorPoll      time.Duration
}

func LoadConfig() (Config, *ConfigError) {
	baseRPCURL, rpcErr := requireEndpointURL(baseLedgerRPCURLEnv)
	if rpcErr != nil {
		return Config{}, rpcErr
	}

	rollupRPCURL, rpcErr := requireEndpointURL(rollupLedgerRPCURLEnv)
	if rpcErr != nil {
		return Config{}, rpcErr
	}

	rollupEndpointURL, rpcErr := requireEndpointURL(rollupEndpointURLEnv)
	if rpcErr != nil {
		return Config{}, rpcErr
	}

	walletAddress := strings.TrimSpace(os.Getenv(walletAddressEnv))
	if walletAddress == "" {
		return Config{}, &ConfigError{
			Code:    "CONFIG_WALLET_ADDRESS_REQUIRED",
			Message: walletAddressEnv + " is required",
		}
	}

	bridgeContractAddress := strings.TrimSpace(os.Getenv(bridgeContractAddressEnv))
	if bridgeContractAddress == "" {
		return Config{}, &ConfigError{
			Code:    "CONFIG_BRIDGE_CONTRACT_ADDRESS_REQUIRED",
			Message: bridgeContractAddressEnv + " is required",
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}

	openAPISpecPath := os.Getenv("OPENAPI_SPEC_PATH")
	if openAPISpecPath == "" {
		openAPISpecPath = defaultOpenAPISpec
	}

	rollupEndpointID := strings.TrimSpace(os.Getenv(rollupEndpointIDEnv))
	if rollupEndpointID == "" {
		rollupEndpointID = defaultRollupEndpointID
	}

	referenceToken := strings.ToLower(strings.TrimSpace(os.Getenv(referenceTokenEnv)))
	if referenceToken == "" {
		referenceToken = defaultReferenceToken
	}

	ledgerHTTPTimeout, durationErr := parseDuration(ledgerHTTPTimeoutEnv, defaultLedgerHTTPTimeout)
	if durationErr != nil {
		return Config{}, durationErr
	}

	fundsMonitorPoll, durationErr := parseDuration(fundsMonitorPollEnv, defaultFundsMonitorPoll)
	if durationErr != nil {
		return Config{}, durationErr
	}

	fundsMonitorEnabled := true
	rawEnabled := strings.TrimSpace(os.Getenv(fundsMonitorEnabledEnv))
	if rawEnabled != "" {
		parsedEnabled, err := strconv.ParseBool(rawEnabled)
		if err != nil {
			return Config{}, &ConfigError{
				Code:    "CONFIG_FUNDS_MONITOR_ENABLED_INVALID",
				Message: fundsMonitorEnabledEnv + " must be a boolean",
			}
		}
		fundsMonitorEnabled = parsedEnabled
	}

	metadataCacheSize := defaultMetadataCacheSize
	rawCacheSize := strings.TrimSpace(os.Getenv(metadataCacheSizeEnv))
	if rawCacheSize != "" {
		parsedSize, err := strconv.Atoi(rawCacheSize)
		if err != nil || parsedSize <= 0 {
			return Config{}, &ConfigError{
				Code:    "CONFIG_METADATA_CACHE_SIZE_INVALID",
				Message: metadataCacheSizeEnv + " must be a positive integer",
			}
		}
		metadataCacheSize = parsedSize
	}

	return Config{
		Port:                  port,
		OpenAPISpecPath:       openAPISpecPath,
		ShutdownTimeout:       defaultShutdownTimeout,
		BaseLedgerRPCURL:      baseRPCURL,
		RollupLedgerRPCURL:    rollupRPCURL,
		RollupEndpointURL:     rollupEndpointURL,
		RollupEndpointID:      rollupEndpointID,
		WalletAddress:         walletAddress,
		BridgeContractAddress: bridgeContractAddress,
		ReferenceTokenAddress: referenceToken,
		LedgerHTTPTimeout:     ledgerHTTPTimeout,
		MetadataCacheSize:     metadataCacheSize,
		FundsMonitorEnabled:   fundsMonitorEnabled,
		FundsMonitorPoll:      fundsMonitorPoll,
	}, nil
}

func (c Config) Address() string {
	return ":" + c.Port
}

func requireEndpointURL(envName string) (string, *ConfigError) {
	raw := strings.TrimSpace(os.Getenv(envName))
	if raw == "" {
		return "", &ConfigError{
			Code:    "CONFIG_" + envName + "_REQUIRED",
			Message: envName + " is required",
		}
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "", &ConfigError{
			Code:    "CONFIG_" + envName + "_INVALID",
			Message: envName + " is invalid",
		}
	}

	switch parsed.Scheme {
	case "http", "https":
	default:
		return "", &ConfigError{
			Code:    "CONFIG_" + envName + "_SCHEME_INVALID",
			Message: envName + " must use http or https scheme",
		}
	}

	if parsed.Host == "" {
		return "", &ConfigError{
			Code:    "CONFIG_" + envName + "_HOST_MISSING",
			Message: envName + " host is required",
		}
	}

	return raw, nil
}

func parseDuration(envName string, fallback time.Duration) (time.Duration, *ConfigError) {
	raw := strings.TrimSpace(os.Getenv(envName))
	if raw == "" {
		return fallback, nil
	}

	parsed, err := time.ParseDuration(raw)
	if err != nil || parsed <= 0 {
		return 0, &ConfigError{
			Code:    "CONFIG_" + envName + "_INVALID",
			Message: envName + " must be a positive duration",
		}
	}

	return parsed, nil
}
