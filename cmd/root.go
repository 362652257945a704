package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"near-pay/config"
	"near-pay/pkg/intents"
	"near-pay/pkg/logging"
	"near-pay/pkg/metrics"
)

var rootCmd = &cobra.Command{
	Use:   "near-pay",
	Short: "Pay into Sui from any supported chain using NEAR Intents 1Click",
	Long: `near-pay is a command-line tool for cross-chain payments that settle on Sui.
Pick any supported token on any supported chain, review a live preview, and
send the deposit; NEAR Intents takes care of the swap and delivery.

Examples:
  near-pay pay 10 USDC on arb --recipient 0x... --refund-to 0x...
  near-pay quote 0.5 ETH on base --recipient 0x... --refund-to 0x...
  near-pay status <deposit-address> --watch
  near-pay tokens --chain sol
  near-pay history`,
	Version: "0.1.0",
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "Output in JSON format")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
}

// env is what every command needs once configuration is loaded
type env struct {
	cfg    *config.Config
	logger *zap.Logger
	client *intents.Client
}

func setup(cmd *cobra.Command, recorder metrics.Recorder) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	level := cfg.LogLevel
	if l, _ := cmd.Flags().GetString("log-level"); l != "" {
		level = l
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = "debug"
	}

	logger, err := logging.New(level)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	client, err := intents.NewClient(intents.Config{
		APIKey:             cfg.APIKey,
		BaseURL:            cfg.BaseURL,
		Referral:           cfg.Referral,
		DefaultSlippageBps: cfg.DefaultSlippageBps,
		DeadlineHorizon:    cfg.DeadlineHorizon,
	}, intents.WithLogger(logger), intents.WithMetrics(recorder))
	if err != nil {
		return nil, fmt.Errorf("failed to create intents client: %w", err)
	}

	return &env{cfg: cfg, logger: logger, client: client}, nil
}

func isJSON(cmd *cobra.Command) bool {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	return jsonOutput
}

func printJSON(v interface{}) {
	jsonData, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(jsonData))
}

func printError(err error) {
	fmt.Printf("\nError: %v\n\n", err)
}

func printSuccess(message string) {
	fmt.Printf("\n%s\n\n", message)
}
