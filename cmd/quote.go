package cmd

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"near-pay/pkg/address"
	"near-pay/pkg/catalog"
	"near-pay/pkg/intents"
	"near-pay/pkg/parser"
	"near-pay/pkg/payment"
)

var (
	quoteRecipient   string
	quoteRefundTo    string
	quoteDestination string
)

var quoteCmd = &cobra.Command{
	Use:   "quote <amount> <token> on <chain>",
	Short: "Preview what a payment would deliver",
	Long: `Request a dry-run quote. No deposit address is created and nothing is committed.

Examples:
  near-pay quote 10 USDC on arb --recipient 0x... --refund-to 0x...
  near-pay quote 1 SOL on sol --dest suiSUI --recipient 0x... --refund-to <solana-addr>`,
	Args: cobra.MinimumNArgs(1),
	Run:  runQuote,
}

func init() {
	rootCmd.AddCommand(quoteCmd)

	quoteCmd.Flags().StringVar(&quoteRecipient, "recipient", "", "Sui address that would receive the payment (REQUIRED)")
	quoteCmd.Flags().StringVar(&quoteRefundTo, "refund-to", "", "Refund address on the paying chain (REQUIRED)")
	quoteCmd.Flags().StringVar(&quoteDestination, "dest", catalog.DestinationUSDC, "Settlement token (suiUSDC or suiSUI)")
}

func runQuote(cmd *cobra.Command, args []string) {
	req, err := parser.ParsePaymentCommand(strings.Join(args, " "))
	if err == nil {
		_, err = parseAmount(req.Amount)
	}
	if err != nil {
		printError(err)
		os.Exit(1)
	}

	cat := catalog.Default()
	token, err := req.Resolve(cat)
	if err != nil {
		printError(err)
		os.Exit(1)
	}
	dest, ok := cat.DestinationToken(quoteDestination)
	if !ok {
		printError(payment.ErrUnknownToken)
		os.Exit(1)
	}
	if err := address.ValidateRecipient(quoteRecipient); err != nil {
		printError(err)
		os.Exit(1)
	}
	if err := address.ValidateRefund(token.Chain, quoteRefundTo); err != nil {
		printError(err)
		os.Exit(1)
	}

	e, err := setup(cmd, nil)
	if err != nil {
		printError(err)
		os.Exit(1)
	}
	defer e.logger.Sync() //nolint:errcheck

	jsonOutput := isJSON(cmd)
	s := newSpinner("Fetching quote...")
	if !jsonOutput {
		s.Start()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	result, err := e.client.GetQuote(ctx, intents.QuoteOptions{
		OriginToken:      token,
		DestinationToken: dest,
		Amount:           req.Amount,
		Recipient:        quoteRecipient,
		RefundTo:         quoteRefundTo,
		Dry:              true,
	})
	s.Stop()
	if err != nil {
		printError(err)
		os.Exit(1)
	}

	if jsonOutput {
		printJSON(map[string]interface{}{
			"origin_token":   token.Name,
			"amount_in":      req.Amount,
			"dest_token":     dest.Name,
			"amount_out":     result.AmountOutFormatted,
			"amount_out_usd": result.AmountOutUSD,
			"rate":           effectiveRate(req.Amount, result.AmountOutFormatted),
			"time_estimate":  result.TimeEstimate.Seconds(),
			"correlation_id": result.CorrelationID,
		})
		return
	}

	displayPreview(&payment.PreviewQuote{
		AmountIn:           result.AmountIn,
		AmountInFormatted:  result.AmountInFormatted,
		AmountOut:          result.AmountOut,
		AmountOutFormatted: result.AmountOutFormatted,
		AmountOutUSD:       result.AmountOutUSD,
		TimeEstimate:       result.TimeEstimate,
		CorrelationID:      result.CorrelationID,
	}, req.Amount, token, dest)
}
