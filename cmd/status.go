package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"near-pay/pkg/intents"
)

var (
	statusMemo    string
	watchStatus   bool
	watchInterval time.Duration
	watchTimeout  time.Duration
)

var statusCmd = &cobra.Command{
	Use:   "status <deposit-address>",
	Short: "Check the status of a payment",
	Long: `Check the settlement status of a payment by its deposit address.

Examples:
  near-pay status 0x1234...abcd
  near-pay status 0x1234...abcd --watch
  near-pay status 0x1234...abcd --watch --interval 10s --timeout 15m`,
	Args: cobra.ExactArgs(1),
	Run:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)

	statusCmd.Flags().StringVar(&statusMemo, "memo", "", "Deposit memo, for chains that need one")
	statusCmd.Flags().BoolVarP(&watchStatus, "watch", "w", false, "Watch until the payment completes")
	statusCmd.Flags().DurationVar(&watchInterval, "interval", 0, "Polling interval when watching (default from config)")
	statusCmd.Flags().DurationVar(&watchTimeout, "timeout", 0, "Give up watching after this long (default from config)")
}

func runStatus(cmd *cobra.Command, args []string) {
	depositAddress := args[0]
	jsonOutput := isJSON(cmd)

	e, err := setup(cmd, nil)
	if err != nil {
		printError(err)
		os.Exit(1)
	}
	defer e.logger.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if watchStatus {
		err = watchPaymentStatus(ctx, e, depositAddress, jsonOutput)
	} else {
		err = checkPaymentStatus(ctx, e, depositAddress, jsonOutput)
	}
	if err != nil {
		printError(err)
		os.Exit(1)
	}
}

func checkPaymentStatus(ctx context.Context, e *env, depositAddress string, jsonOutput bool) error {
	s := newSpinner("Checking payment status...")
	if !jsonOutput {
		s.Start()
	}

	status, err := e.client.GetStatus(ctx, depositAddress, statusMemo)
	s.Stop()
	if err != nil {
		return err
	}

	if jsonOutput {
		printJSON(status)
	} else {
		displayStatus(status, depositAddress)
	}
	return nil
}

func watchPaymentStatus(ctx context.Context, e *env, depositAddress string, jsonOutput bool) error {
	interval := watchInterval
	if interval <= 0 {
		interval = e.cfg.WatchInterval
	}
	timeout := watchTimeout
	if timeout <= 0 {
		timeout = e.cfg.WatchTimeout
	}

	if !jsonOutput {
		fmt.Printf("\nWatching payment status (Deposit Address: %s)\n", color.CyanString(depositAddress))
		fmt.Printf("Checking every %s for up to %s. Press Ctrl+C to stop.\n", interval, timeout)
	}

	final, err := intents.PollUntilComplete(ctx, e.client, depositAddress, intents.PollOptions{
		Memo:     statusMemo,
		Interval: interval,
		Timeout:  timeout,
		OnStatusChange: func(status *intents.StatusResult) {
			if jsonOutput {
				printJSON(status)
			} else {
				displayStatus(status, depositAddress)
			}
		},
	})
	if err != nil {
		return err
	}

	if !jsonOutput {
		if final.IsSuccess {
			color.Green("✓ Payment complete")
		} else {
			color.Red("Payment ended with status %s", final.Status)
		}
	}
	return nil
}
