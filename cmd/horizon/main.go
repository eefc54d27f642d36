package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/horizon-client/cmd/horizon/commands"
	"github.com/fivetwenty-io/horizon-client/internal/constants"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "horizon",
	Short: "Stellar Horizon API CLI",
	Long: `A command-line interface for querying the Stellar Horizon API.

This CLI provides read access to ledgers, transactions, operations, accounts,
the decentralized exchange and the other resources Horizon serves.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.horizon/config.yml)")
	rootCmd.PersistentFlags().StringP("network", "n", constants.NetworkTestnet, "network to query (testnet, public)")
	rootCmd.PersistentFlags().StringP("horizon-url", "u", "", "Horizon URL, overrides --network")
	rootCmd.PersistentFlags().StringP("output", "o", "", "output format (table, json, yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log HTTP traffic to stderr")
	rootCmd.PersistentFlags().String("nats-url", "", "NATS server to publish fetched records to")
	rootCmd.PersistentFlags().String("nats-subject", constants.DefaultPublishSubject, "NATS subject prefix for published records")

	// Bind flags to viper
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("network", rootCmd.PersistentFlags().Lookup("network"))
	_ = viper.BindPFlag("url", rootCmd.PersistentFlags().Lookup("horizon-url"))
	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("nats_url", rootCmd.PersistentFlags().Lookup("nats-url"))
	_ = viper.BindPFlag("nats_subject", rootCmd.PersistentFlags().Lookup("nats-subject"))

	commands.SetUserAgentVersion(version)

	// Add commands
	rootCmd.AddCommand(commands.NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(commands.NewConfigCommand())
	rootCmd.AddCommand(commands.NewInfoCommand())
	rootCmd.AddCommand(commands.NewStatusCommand())
	rootCmd.AddCommand(commands.NewAccountsCommand())
	rootCmd.AddCommand(commands.NewAssetsCommand())
	rootCmd.AddCommand(commands.NewClaimableBalancesCommand())
	rootCmd.AddCommand(commands.NewEffectsCommand())
	rootCmd.AddCommand(commands.NewFeeStatsCommand())
	rootCmd.AddCommand(commands.NewLedgersCommand())
	rootCmd.AddCommand(commands.NewLiquidityPoolsCommand())
	rootCmd.AddCommand(commands.NewOffersCommand())
	rootCmd.AddCommand(commands.NewOperationsCommand())
	rootCmd.AddCommand(commands.NewOrderBookCommand())
	rootCmd.AddCommand(commands.NewPathsCommand())
	rootCmd.AddCommand(commands.NewPaymentsCommand())
	rootCmd.AddCommand(commands.NewTradeAggregationsCommand())
	rootCmd.AddCommand(commands.NewTradesCommand())
	rootCmd.AddCommand(commands.NewTransactionsCommand())
}

func initConfig() {
	cfgFile := viper.GetString("config")

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			_, _ = fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		// Search config in ~/.horizon/config.yml
		viper.AddConfigPath(filepath.Join(home, ".horizon"))
		viper.SetConfigType("yml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match
	viper.SetEnvPrefix("HORIZON")
	viper.AutomaticEnv()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			_, _ = fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
