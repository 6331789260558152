package params

import (
	"encoding/hex"
	"errors"
	"fmt"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/golosnetwork/graphene-signer/log"
)

// ChainIDLen is the byte length of a graphene chain identifier.
const ChainIDLen = 32

// config errors
var (
	ErrInvalidChainID   = errors.New("invalid chain id")
	ErrMissingKeyPrefix = errors.New("missing public key address prefix")
	ErrUnknownCoreAsset = errors.New("unknown core asset")
	ErrInvalidPrecision = errors.New("invalid asset precision")
)

// ChainConfig holds the network constants that feed key text encoding and
// the transaction signing digest (decode from toml file to override).
type ChainConfig struct {
	Name string
	// ChainID is the hex form of the 32-byte network identifier mixed
	// into every signing digest to prevent cross-network replay.
	ChainID string
	// AddressPrefix is prepended to base58check public key text, e.g. "GLS".
	AddressPrefix string
	// CoreAssets maps an asset symbol to its canonical precision.
	CoreAssets map[string]uint8
}

// MainNetParams are the Golos production network constants.
var MainNetParams = ChainConfig{
	Name:          "mainnet",
	ChainID:       "782a3039b478c839e4cb0c941ff4eaeb7df40bdd68bd441afd444b9da763de12",
	AddressPrefix: "GLS",
	CoreAssets:    map[string]uint8{"GOLOS": 3, "GBG": 3, "GESTS": 6},
}

// TestNetParams use the graphene default test chain id (SHA256 of the
// empty string) and the same asset set as mainnet.
var TestNetParams = ChainConfig{
	Name:          "testnet",
	ChainID:       "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
	AddressPrefix: "GLS",
	CoreAssets:    map[string]uint8{"GOLOS": 3, "GBG": 3, "GESTS": 6},
}

var (
	chainConfig       = &MainNetParams
	loadConfigStarter sync.Once
)

// GetChainConfig returns the active chain config (mainnet by default).
func GetChainConfig() *ChainConfig {
	return chainConfig
}

// SetChainConfig replaces the active chain config after verifying it.
func SetChainConfig(config *ChainConfig) error {
	if err := config.CheckConfig(); err != nil {
		return err
	}
	chainConfig = config
	return nil
}

// LoadConfig decodes the chain config from the given toml file and makes
// it the active config. It is intended to be called once at startup.
func LoadConfig(configFile string) *ChainConfig {
	loadConfigStarter.Do(func() {
		config := &ChainConfig{}
		if _, err := toml.DecodeFile(configFile, config); err != nil {
			log.Fatalf("LoadConfig error (toml DecodeFile %v): %v", configFile, err)
		}
		if err := SetChainConfig(config); err != nil {
			log.Fatalf("LoadConfig error (check config %v): %v", configFile, err)
		}
		log.Info("LoadConfig success", "configFile", configFile, "chain", config.Name)
	})
	return chainConfig
}

// CheckConfig verifies the chain config is usable for signing.
func (c *ChainConfig) CheckConfig() error {
	if _, err := c.ChainIDBytes(); err != nil {
		return err
	}
	if c.AddressPrefix == "" {
		return ErrMissingKeyPrefix
	}
	for symbol, precision := range c.CoreAssets {
		if symbol == "" || len(symbol) > 7 {
			return fmt.Errorf("%w: bad symbol %q", ErrUnknownCoreAsset, symbol)
		}
		if precision > 15 {
			return fmt.Errorf("%w: %q has precision %v", ErrInvalidPrecision, symbol, precision)
		}
	}
	return nil
}

// ChainIDBytes decodes the hex chain id into its 32 raw bytes.
func (c *ChainConfig) ChainIDBytes() ([]byte, error) {
	chainID, err := hex.DecodeString(c.ChainID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidChainID, err)
	}
	if len(chainID) != ChainIDLen {
		return nil, fmt.Errorf("%w: length %v, want %v", ErrInvalidChainID, len(chainID), ChainIDLen)
	}
	return chainID, nil
}

// AssetPrecision returns the canonical precision of a core asset symbol.
func (c *ChainConfig) AssetPrecision(symbol string) (uint8, error) {
	precision, exist := c.CoreAssets[symbol]
	if !exist {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCoreAsset, symbol)
	}
	return precision, nil
}
