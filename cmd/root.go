package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"nfc_contract/config"
)

var (
	version = "dev"
	cfgFile string
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:   "nfcd",
	Short: "Non-Fungible Code registry node",
	Long: `nfcd runs the Non-Fungible Code registry: limited edition projects minted into
numbered tokens against a wei price, served over JSON-RPC (namespace "nfc").`,
	Version:      version,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ./nfcd.yaml)")
	rootCmd.PersistentFlags().String("listen", "", "JSON-RPC listen address")
	rootCmd.PersistentFlags().String("state", "", "state snapshot file, loaded on start and written on shutdown")
	rootCmd.PersistentFlags().String("log-level", "", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("log-json", false, "log as JSON instead of terminal format")

	// Bind flags to viper
	_ = viper.BindPFlag("server.listen", rootCmd.PersistentFlags().Lookup("listen"))
	_ = viper.BindPFlag("state_file", rootCmd.PersistentFlags().Lookup("state"))
	_ = viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("log.json", rootCmd.PersistentFlags().Lookup("log-json"))
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("contract.name", defaults.Contract.Name)
	viper.SetDefault("contract.symbol", defaults.Contract.Symbol)
	viper.SetDefault("contract.base_content_uri", defaults.Contract.BaseContentURI)
	viper.SetDefault("contract.admin", defaults.Contract.Admin)
	viper.SetDefault("contract.treasury", defaults.Contract.Treasury)
	viper.SetDefault("contract.fee_in_bp", defaults.Contract.FeeInBp)
	viper.SetDefault("server.listen", defaults.Server.Listen)
	viper.SetDefault("server.allowed_origins", defaults.Server.AllowedOrigins)
	viper.SetDefault("server.metrics", defaults.Server.Metrics)
	viper.SetDefault("log.level", defaults.Log.Level)
	viper.SetDefault("log.json", defaults.Log.JSON)
	viper.SetDefault("state_file", defaults.StateFile)
	viper.SetDefault("alloc", defaults.Alloc)

	viper.SetEnvPrefix("NFC")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName("nfcd")
		viper.SetConfigType("yaml")
	}
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			fmt.Fprintf(os.Stderr, "nfcd: reading config: %v\n", err)
		}
	}

	_ = viper.Unmarshal(&cfg)
}

// setupLogging installs the root logger every component derives from.
func setupLogging(c config.LogConfig) error {
	lvl, err := config.ParseLevel(c.Level)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	if c.JSON {
		log.SetDefault(log.NewLogger(log.JSONHandlerWithLevel(os.Stderr, lvl)))
		return nil
	}
	log.SetDefault(log.NewLogger(log.NewTerminalHandlerWithLevel(os.Stderr, lvl, false)))
	return nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
