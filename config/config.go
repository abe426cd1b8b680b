// Package config provides configuration types, defaults, and persistence for nfcd.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"os"
	"path/filepath"
	"strings"

	"github.com/ethereum/go-ethereum/log"
	"gopkg.in/yaml.v3"

	"nfc_contract/contract"
	"nfc_contract/sdk"
)

// Config holds the daemon configuration.
type Config struct {
	Contract  ContractConfig    `mapstructure:"contract" yaml:"contract"`
	Server    ServerConfig      `mapstructure:"server" yaml:"server"`
	Log       LogConfig         `mapstructure:"log" yaml:"log"`
	StateFile string            `mapstructure:"state_file" yaml:"state_file"` // debug snapshot, empty disables it
	Alloc     map[string]string `mapstructure:"alloc" yaml:"alloc,omitempty"` // genesis balances: address -> wei
}

// ContractConfig is applied once, when the state holds no contract yet.
type ContractConfig struct {
	Name           string `mapstructure:"name" yaml:"name"`
	Symbol         string `mapstructure:"symbol" yaml:"symbol"`
	BaseContentURI string `mapstructure:"base_content_uri" yaml:"base_content_uri"`
	Admin          string `mapstructure:"admin" yaml:"admin"`
	Treasury       string `mapstructure:"treasury" yaml:"treasury"`
	FeeInBp        uint64 `mapstructure:"fee_in_bp" yaml:"fee_in_bp"`
}

type ServerConfig struct {
	Listen         string   `mapstructure:"listen" yaml:"listen"`
	AllowedOrigins []string `mapstructure:"allowed_origins" yaml:"allowed_origins"` // websocket origins
	Metrics        bool     `mapstructure:"metrics" yaml:"metrics"`                 // expose /metrics
}

type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"` // trace, debug, info, warn, error, crit
	JSON  bool   `mapstructure:"json" yaml:"json"`
}

const (
	devAdmin    = "0x00000000000000000000000000000000000Ad31E"
	devTreasury = "0x000000000000000000000000000000000000F33e"
)

// Defaults returns a development configuration.
func Defaults() Config {
	return Config{
		Contract: ContractConfig{
			Name:           "Non-Fungible Code",
			Symbol:         "NFC",
			BaseContentURI: "ipfs://",
			Admin:          devAdmin,
			Treasury:       devTreasury,
			FeeInBp:        500,
		},
		Server: ServerConfig{
			Listen:         "127.0.0.1:8645",
			AllowedOrigins: []string{"*"},
			Metrics:        true,
		},
		Log: LogConfig{
			Level: "info",
		},
		StateFile: "",
		Alloc: map[string]string{
			devAdmin: "100000000000000000000",
		},
	}
}

// Validate checks addresses, fee, amounts and the log level.
func (c Config) Validate() error {
	var errs []error
	if _, err := c.AdminAddress(); err != nil {
		errs = append(errs, fmt.Errorf("contract.admin: %w", err))
	}
	if _, err := c.InitArgs(); err != nil {
		errs = append(errs, err)
	}
	if c.Server.Listen == "" {
		errs = append(errs, errors.New("server.listen: must not be empty"))
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	if _, err := c.Allocation(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

var logLevels = map[string]slog.Level{
	"trace": log.LevelTrace,
	"debug": log.LevelDebug,
	"info":  log.LevelInfo,
	"warn":  log.LevelWarn,
	"error": log.LevelError,
	"crit":  log.LevelCrit,
}

// ParseLevel maps a level name (trace, debug, info, warn, error, crit) to the
// go-ethereum log level.
func ParseLevel(s string) (slog.Level, error) {
	lvl, ok := logLevels[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return log.LevelInfo, fmt.Errorf("unknown level %q", s)
	}
	return lvl, nil
}

// AdminAddress is the account deploying the contract on first start.
func (c Config) AdminAddress() (sdk.Address, error) {
	a, err := sdk.ParseAddress(c.Contract.Admin)
	if err != nil {
		return sdk.ZeroAddress, err
	}
	if sdk.IsZero(a) {
		return sdk.ZeroAddress, contract.ErrInvalidAddress
	}
	return a, nil
}

// InitArgs converts the contract section into construction parameters.
func (c Config) InitArgs() (contract.InitArgs, error) {
	treasury, err := sdk.ParseAddress(c.Contract.Treasury)
	if err != nil {
		return contract.InitArgs{}, fmt.Errorf("contract.treasury: %w", err)
	}
	if sdk.IsZero(treasury) {
		return contract.InitArgs{}, fmt.Errorf("contract.treasury: %w", contract.ErrInvalidAddress)
	}
	if c.Contract.FeeInBp >= contract.BpsBase {
		return contract.InitArgs{}, fmt.Errorf("contract.fee_in_bp: %w", contract.ErrInvalidFee)
	}
	return contract.InitArgs{
		Name:           c.Contract.Name,
		Symbol:         c.Contract.Symbol,
		BaseContentURI: c.Contract.BaseContentURI,
		Treasury:       treasury,
		FeeInBp:        c.Contract.FeeInBp,
	}, nil
}

// Allocation parses the genesis balances.
func (c Config) Allocation() (map[sdk.Address]*big.Int, error) {
	out := make(map[sdk.Address]*big.Int, len(c.Alloc))
	for raw, amount := range c.Alloc {
		addr, err := sdk.ParseAddress(raw)
		if err != nil {
			return nil, fmt.Errorf("alloc: %w", err)
		}
		v, err := sdk.ParseWei(amount)
		if err != nil {
			return nil, fmt.Errorf("alloc %s: %w", raw, err)
		}
		out[addr] = v
	}
	return out, nil
}

// WriteDefaultConfig writes Defaults() as yaml to configPath, creating parent dirs.
func WriteDefaultConfig(configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(Defaults())
	if err != nil {
		return fmt.Errorf("encoding default config: %w", err)
	}
	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
