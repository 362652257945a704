package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"near-pay/config"
	"near-pay/pkg/receipt"
)

var historyStatus string

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past payments",
	Long: `List payments recorded on this machine, newest first.

Examples:
  near-pay history
  near-pay history --status failed`,
	Run: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().StringVar(&historyStatus, "status", "", "Filter by status (success, failed)")
}

func runHistory(cmd *cobra.Command, args []string) {
	// History does not need an API key, so only the receipts path is read
	path := ""
	if cfg, err := config.Load(); err == nil {
		path = cfg.ReceiptsPath
	}

	store, err := receipt.NewStore(path)
	if err != nil {
		printError(err)
		os.Exit(1)
	}

	var receipts []*receipt.Receipt
	if historyStatus != "" {
		receipts = store.ListByStatus(receipt.Status(strings.ToLower(historyStatus)))
	} else {
		receipts = store.List()
	}

	if isJSON(cmd) {
		printJSON(receipts)
		return
	}

	if len(receipts) == 0 {
		printSuccess("No payments recorded yet.")
		return
	}

	fmt.Println("\n" + rule(90))
	color.Green("                              PAYMENT HISTORY")
	fmt.Println(rule(90))

	for _, r := range receipts {
		outcome := color.GreenString(string(r.Status))
		if r.Status != receipt.StatusSuccess {
			outcome = color.RedString(string(r.Status))
		}
		fmt.Printf("\n  %s  %s\n", r.CreatedAt.Local().Format("2006-01-02 15:04:05"), outcome)
		fmt.Printf("    Deposit:   %s\n", color.CyanString(r.DepositAddress))
		fmt.Printf("    Paid:      %s (%s)\n", r.AmountIn, r.OriginAsset)
		fmt.Printf("    Delivered: %s (%s) to %s\n", r.AmountOut, r.DestinationAsset, truncate(r.Recipient, 24))
		if r.TxHash != "" {
			fmt.Printf("    Tx:        %s\n", color.HiBlackString(r.TxHash))
		}
		if r.Error != "" {
			fmt.Printf("    Error:     %s\n", r.Error)
		}
	}

	fmt.Println("\n" + rule(90))
	fmt.Printf("\nTotal: %d of %d payments\n\n", len(receipts), store.Count())
}
