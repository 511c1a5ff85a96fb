package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

var errEnvVarNotFound error = errors.New("environment variable not found")
var errEnvVarInvalid error = errors.New("environment variable is invalid")

const (
	apiPortEnvKey      = "API_PORT"
	dbConnEnvKey       = "DB_CONNECTION_URL"
	jwtSecretEnvKey    = "JWT_SECRET"
	daemonURLEnvKey    = "DAEMON_RPC_URL"
	daemonUserEnvKey   = "DAEMON_RPC_USER"
	daemonPassEnvKey   = "DAEMON_RPC_PASSWORD"
	daemonPrefixEnvKey = "DAEMON_ADDRESS_PREFIX"
	daemonRPSEnvKey    = "DAEMON_RPS"
	daemonTimeoutKey   = "DAEMON_TIMEOUT"
	fallbackFeeEnvKey  = "DAEMON_FALLBACK_FEE"
	feeFactorEnvKey    = "FEE_SAFETY_FACTOR"
	observerEnvKey     = "OBSERVER_INTERVAL"
	dispatcherEnvKey   = "DISPATCHER_INTERVAL"
	poolEnvKey         = "POOL_INTERVAL"
	minConfEnvKey      = "DEFAULT_MINIMUM_CONFIRMATIONS"
	minPoolEnvKey      = "DEFAULT_MINIMUM_ADDRESS_POOL_SIZE"
	notifyAPIEnvKey    = "DEFAULT_NOTIFICATION_API"
	windowEnvKey       = "DEFAULT_PREVIOUS_BLOCKS_TO_CHECK"
	logLevelEnvKey     = "LOG_LEVEL"
)

type Daemon struct {
	URL           string
	User          string
	Password      string
	AddressPrefix string
	RPS           float64
	Timeout       time.Duration
	FallbackFee   decimal.Decimal
}

type Workers struct {
	ObserverInterval   time.Duration
	DispatcherInterval time.Duration
	PoolInterval       time.Duration
}

// Defaults seed the configuration table on first start.
type Defaults struct {
	MinimumConfirmations   int64
	MinimumAddressPoolSize int64
	NotificationAPI        string
	PreviousBlocksToCheck  int64
}

type App struct {
	Port            string
	DBConnectionURL string
	JWTSecret       string
	LogLevel        string
	FeeSafetyFactor decimal.Decimal
	Daemon          Daemon
	Workers         Workers
	Defaults        Defaults
}

func NewApp() (App, error) {
	port, ok := os.LookupEnv(apiPortEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, apiPortEnvKey)
	}

	dbConn, ok := os.LookupEnv(dbConnEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, dbConnEnvKey)
	}

	jwtSecret, ok := os.LookupEnv(jwtSecretEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, jwtSecretEnvKey)
	}

	daemonURL, ok := os.LookupEnv(daemonURLEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, daemonURLEnvKey)
	}

	app := App{
		Port:            port,
		DBConnectionURL: dbConn,
		JWTSecret:       jwtSecret,
		LogLevel:        lookupString(logLevelEnvKey, "info"),
		Daemon: Daemon{
			URL:           daemonURL,
			User:          lookupString(daemonUserEnvKey, ""),
			Password:      lookupString(daemonPassEnvKey, ""),
			AddressPrefix: lookupString(daemonPrefixEnvKey, ""),
		},
		Defaults: Defaults{
			NotificationAPI: lookupString(notifyAPIEnvKey, "http://localhost:3001/v1/transactions/notifications"),
		},
	}

	var err error
	if app.Daemon.RPS, err = lookupFloat(daemonRPSEnvKey, 20); err != nil {
		return App{}, err
	}
	if app.Daemon.Timeout, err = lookupDuration(daemonTimeoutKey, 30*time.Second); err != nil {
		return App{}, err
	}
	if app.Daemon.FallbackFee, err = lookupDecimal(fallbackFeeEnvKey, decimal.RequireFromString("0.0001")); err != nil {
		return App{}, err
	}
	if app.FeeSafetyFactor, err = lookupDecimal(feeFactorEnvKey, decimal.NewFromInt(2)); err != nil {
		return App{}, err
	}
	if app.Workers.ObserverInterval, err = lookupDuration(observerEnvKey, 10*time.Second); err != nil {
		return App{}, err
	}
	if app.Workers.DispatcherInterval, err = lookupDuration(dispatcherEnvKey, 10*time.Second); err != nil {
		return App{}, err
	}
	if app.Workers.PoolInterval, err = lookupDuration(poolEnvKey, time.Minute); err != nil {
		return App{}, err
	}
	if app.Defaults.MinimumConfirmations, err = lookupInt(minConfEnvKey, 6); err != nil {
		return App{}, err
	}
	if app.Defaults.MinimumAddressPoolSize, err = lookupInt(minPoolEnvKey, 100); err != nil {
		return App{}, err
	}
	if app.Defaults.PreviousBlocksToCheck, err = lookupInt(windowEnvKey, 1000); err != nil {
		return App{}, err
	}

	return app, nil
}

func lookupString(key, fallback string) string {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	return value
}

func lookupInt(key string, fallback int64) (int64, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil || parsed < 0 {
		return 0, fmt.Errorf("%w: %s=%q", errEnvVarInvalid, key, value)
	}
	return parsed, nil
}

func lookupFloat(key string, fallback float64) (float64, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil || parsed <= 0 {
		return 0, fmt.Errorf("%w: %s=%q", errEnvVarInvalid, key, value)
	}
	return parsed, nil
}

func lookupDuration(key string, fallback time.Duration) (time.Duration, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}
	parsed, err := time.ParseDuration(value)
	if err != nil || parsed <= 0 {
		return 0, fmt.Errorf("%w: %s=%q", errEnvVarInvalid, key, value)
	}
	return parsed, nil
}

func lookupDecimal(key string, fallback decimal.Decimal) (decimal.Decimal, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}
	parsed, err := decimal.NewFromString(value)
	if err != nil || parsed.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("%w: %s=%q", errEnvVarInvalid, key, value)
	}
	return parsed, nil
}
