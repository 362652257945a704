package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/fatih/color"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"near-pay/pkg/address"
	"near-pay/pkg/catalog"
	"near-pay/pkg/metrics"
	"near-pay/pkg/parser"
	"near-pay/pkg/payment"
	"near-pay/pkg/receipt"
)

var (
	payRecipient   string
	payRefundTo    string
	payDestination string
	payTxHash      string
	payNoConfirm   bool
	payNoWait      bool
	payMetricsFile string
)

var payCmd = &cobra.Command{
	Use:   "pay <amount> <token> on <chain>",
	Short: "Pay a Sui address from any supported chain",
	Long: `Start a payment that settles on Sui in SUI or USDC.

The command shows a live preview, asks for confirmation, prints the deposit
address and then waits until the payment settles.

IMPORTANT:
  - You MUST specify --recipient (the Sui address that gets paid)
  - You MUST specify --refund-to (your address on the paying chain)

Examples:
  near-pay pay 10 USDC on arb --recipient 0x... --refund-to 0x...
  near-pay pay 0.05 ETH on base --dest suiSUI --recipient 0x... --refund-to 0x... --yes
  near-pay pay 25 WIF on sol --recipient 0x... --refund-to <solana-addr> --no-wait`,
	Args: cobra.MinimumNArgs(1),
	Run:  runPay,
}

func init() {
	rootCmd.AddCommand(payCmd)

	payCmd.Flags().StringVar(&payRecipient, "recipient", "", "Sui address that receives the payment (REQUIRED)")
	payCmd.Flags().StringVar(&payRefundTo, "refund-to", "", "Refund address on the paying chain (REQUIRED)")
	payCmd.Flags().StringVar(&payDestination, "dest", catalog.DestinationUSDC, "Settlement token (suiUSDC or suiSUI)")
	payCmd.Flags().StringVar(&payTxHash, "tx-hash", "", "Deposit transaction hash, if already sent")
	payCmd.Flags().BoolVarP(&payNoConfirm, "yes", "y", false, "Skip confirmation prompt")
	payCmd.Flags().BoolVar(&payNoWait, "no-wait", false, "Exit after printing deposit instructions")
	payCmd.Flags().StringVar(&payMetricsFile, "metrics-textfile", "", "Write Prometheus metrics to this file on exit")
}

func runPay(cmd *cobra.Command, args []string) {
	if err := pay(cmd, args); err != nil {
		printError(err)
		os.Exit(1)
	}
}

func pay(cmd *cobra.Command, args []string) error {
	req, err := parser.ParsePaymentCommand(strings.Join(args, " "))
	if err != nil {
		return err
	}
	if _, err := parseAmount(req.Amount); err != nil {
		return err
	}

	cat := catalog.Default()
	token, err := req.Resolve(cat)
	if err != nil {
		return err
	}
	dest, ok := cat.DestinationToken(payDestination)
	if !ok {
		return fmt.Errorf("unsupported settlement token '%s' (use %s or %s)", payDestination, catalog.DestinationUSDC, catalog.DestinationSUI)
	}

	if err := address.ValidateRecipient(payRecipient); err != nil {
		return err
	}
	if err := address.ValidateRefund(token.Chain, payRefundTo); err != nil {
		return err
	}

	var recorder metrics.Recorder = metrics.NoopRecorder{}
	registry := prometheus.NewRegistry()
	if payMetricsFile != "" {
		if recorder, err = metrics.NewPrometheusRecorder(registry); err != nil {
			return fmt.Errorf("failed to register metrics: %w", err)
		}
		defer func() {
			if err := prometheus.WriteToTextfile(payMetricsFile, registry); err != nil {
				color.Red("Failed to write metrics: %v", err)
			}
		}()
	}

	e, err := setup(cmd, recorder)
	if err != nil {
		return err
	}
	defer e.logger.Sync() //nolint:errcheck

	store, err := receipt.NewStore(e.cfg.ReceiptsPath)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	ctrl, err := payment.New(e.client, e.client, payment.Options{
		Recipient:        payRecipient,
		RefundAddress:    payRefundTo,
		DestinationToken: dest.Name,
		Catalog:          cat,
		DebounceInterval: e.cfg.DebounceInterval,
		PollInterval:     e.cfg.PollInterval,
		SlippageBps:      e.cfg.DefaultSlippageBps,
		Referral:         e.cfg.Referral,
		Logger:           e.logger,
		Metrics:          recorder,
		Receipts:         store,
	})
	if err != nil {
		return err
	}
	defer ctrl.Close()

	if err := ctrl.SelectChain(token.Chain); err != nil {
		return err
	}
	if err := ctrl.SelectToken(token.Name); err != nil {
		return err
	}
	if err := ctrl.SetAmount(req.Amount); err != nil {
		return err
	}

	updates, unsubscribe := ctrl.Subscribe()
	defer unsubscribe()

	jsonOutput := isJSON(cmd)

	// Preview
	s := newSpinner("Fetching preview...")
	if !jsonOutput {
		s.Start()
	}
	snap, err := waitFor(ctx, updates, func(s payment.Snapshot) bool { return !s.LoadingPreview })
	s.Stop()
	if err != nil {
		return err
	}

	if !jsonOutput {
		if snap.Preview != nil {
			displayPreview(snap.Preview, req.Amount, token, dest)
		} else {
			color.Yellow("\nPreview unavailable, the final amount will be shown after confirmation.\n")
		}
		if !payNoConfirm && !confirmPayment() {
			fmt.Println("\nPayment cancelled.")
			return nil
		}
	}

	// Binding quote
	if err := ctrl.Confirm(); err != nil {
		return err
	}
	if !jsonOutput {
		s = newSpinner(stateLabel(payment.StateQuoting))
		s.Start()
	}
	snap, err = waitFor(ctx, updates, func(s payment.Snapshot) bool { return s.State != payment.StateQuoting })
	s.Stop()
	if err != nil {
		return err
	}
	if snap.State == payment.StateError {
		return snap.Err
	}

	if jsonOutput {
		printJSON(map[string]interface{}{
			"flow_id":         snap.FlowID,
			"deposit_address": snap.Quote.DepositAddress,
			"memo":            snap.Quote.Memo,
			"amount_in":       snap.Quote.AmountInFormatted,
			"origin_token":    token.Name,
			"amount_out":      snap.Quote.AmountOutFormatted,
			"dest_token":      dest.Name,
			"deadline":        snap.Quote.Deadline,
			"status":          snap.State,
		})
	} else {
		displayDepositInstructions(snap.Quote, token)
	}

	if payTxHash != "" {
		if err := ctrl.SubmitDepositTx(ctx, payTxHash); err != nil {
			e.logger.Warn("Deposit hash was not accepted", zap.Error(err))
		} else if !jsonOutput {
			color.Green("✓ Deposit transaction submitted")
		}
	}

	if payNoWait {
		if !jsonOutput {
			fmt.Println("You can monitor the payment using:")
			color.Cyan("  near-pay status %s\n", snap.Quote.DepositAddress)
		}
		return nil
	}

	depositAddress := snap.Quote.DepositAddress

	// Settlement
	if !jsonOutput {
		s = newSpinner(stateLabel(snap.State))
		s.Start()
	}
	snap, err = waitFor(ctx, updates, func(u payment.Snapshot) bool {
		s.Lock()
		s.Suffix = " " + stateLabel(u.State)
		s.Unlock()
		return u.State == payment.StateSuccess || u.State == payment.StateError
	})
	s.Stop()
	if err != nil {
		if errors.Is(err, context.Canceled) && !jsonOutput {
			fmt.Println("\nStopped watching. The payment continues; check it with:")
			color.Cyan("  near-pay status %s\n", depositAddress)
			return nil
		}
		return err
	}

	if jsonOutput {
		printJSON(map[string]interface{}{
			"flow_id": snap.FlowID,
			"state":   snap.State,
			"status":  snap.Status,
		})
	}

	if snap.State == payment.StateError {
		return snap.Err
	}

	if !jsonOutput {
		color.Green("\n✓ Payment complete!")
		if snap.Status != nil {
			displayStatus(snap.Status, depositAddress)
		}
	}
	return nil
}

// waitFor returns the first snapshot satisfying done. On cancellation the
// last snapshot seen is returned with the error.
func waitFor(ctx context.Context, updates <-chan payment.Snapshot, done func(payment.Snapshot) bool) (payment.Snapshot, error) {
	var last payment.Snapshot
	for {
		select {
		case <-ctx.Done():
			return last, ctx.Err()
		case snap, ok := <-updates:
			if !ok {
				return last, payment.ErrClosed
			}
			last = snap
			if done(snap) {
				return snap, nil
			}
		}
	}
}

func confirmPayment() bool {
	reader := bufio.NewReader(os.Stdin)
	fmt.Print("Proceed with payment? (y/N): ")

	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}
