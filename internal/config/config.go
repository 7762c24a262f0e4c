package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"walletfeed/internal/transaction"
)

var errEnvVarNotFound error = errors.New("environment variable not found")

const (
	apiPortEnvKey       = "API_PORT"
	ethNodeEnvKey       = "ETH_NODE_URL"
	dbConnEnvKey        = "DB_CONNECTION_URL"
	jwtSecretEnvKey     = "JWT_SECRET"
	indexerURLEnvKey    = "INDEXER_API_URL"
	orderAPIURLEnvKey   = "ORDER_API_URL"
	signerKeyEnvKey     = "SIGNER_PRIVATE_KEY"
	enabledChainsEnvKey = "ENABLED_CHAIN_IDS"
)

type App struct {
	Port            string
	NodeURL         string
	DBConnectionURL string
	JWTSecret       string
	IndexerURL      string
	OrderAPIURL     string
	SignerKey       string
	EnabledChains   []transaction.ChainID
}

func NewApp() (App, error) {
	values := make(map[string]string)
	for _, key := range []string{
		apiPortEnvKey,
		ethNodeEnvKey,
		dbConnEnvKey,
		jwtSecretEnvKey,
		indexerURLEnvKey,
		orderAPIURLEnvKey,
		signerKeyEnvKey,
		enabledChainsEnvKey,
	} {
		value, ok := os.LookupEnv(key)
		if !ok {
			return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, key)
		}
		values[key] = value
	}

	chains, err := parseChainIDs(values[enabledChainsEnvKey])
	if err != nil {
		return App{}, fmt.Errorf("parse %s: %w", enabledChainsEnvKey, err)
	}

	return App{
		Port:            values[apiPortEnvKey],
		NodeURL:         values[ethNodeEnvKey],
		DBConnectionURL: values[dbConnEnvKey],
		JWTSecret:       values[jwtSecretEnvKey],
		IndexerURL:      values[indexerURLEnvKey],
		OrderAPIURL:     values[orderAPIURLEnvKey],
		SignerKey:       values[signerKeyEnvKey],
		EnabledChains:   chains,
	}, nil
}

// parseChainIDs reads a comma-separated chain id list, e.g. "1,10,8453".
func parseChainIDs(raw string) ([]transaction.ChainID, error) {
	parts := strings.Split(raw, ",")
	chains := make([]transaction.ChainID, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseUint(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid chain id %q: %w", part, err)
		}
		chains = append(chains, transaction.ChainID(id))
	}
	if len(chains) == 0 {
		return nil, errors.New("no chain ids configured")
	}
	return chains, nil
}
