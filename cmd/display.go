package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/shopspring/decimal"

	"near-pay/pkg/catalog"
	"near-pay/pkg/intents"
	"near-pay/pkg/payment"
)

func newSpinner(suffix string) *spinner.Spinner {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + suffix
	return s
}

// parseAmount checks that s is a positive decimal
func parseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount '%s'", s)
	}
	if !d.IsPositive() {
		return decimal.Zero, fmt.Errorf("amount must be greater than zero")
	}
	return d, nil
}

// effectiveRate is destination units received per origin unit, or "" when unknown
func effectiveRate(amountIn, amountOut string) string {
	in, err := decimal.NewFromString(amountIn)
	if err != nil || in.IsZero() {
		return ""
	}
	out, err := decimal.NewFromString(amountOut)
	if err != nil {
		return ""
	}
	return out.Div(in).StringFixed(6)
}

func rule(width int) string {
	return strings.Repeat("=", width)
}

func displayPreview(preview *payment.PreviewQuote, amount string, origin, dest catalog.Token) {
	fmt.Println("\n" + rule(60))
	color.Green("                    PAYMENT PREVIEW")
	fmt.Println(rule(60))

	fmt.Printf("\n  You Pay:           %s %s\n", amount, color.YellowString(origin.Symbol))
	fmt.Printf("  Network:           %s\n", origin.Chain)
	fmt.Printf("  Recipient Gets:    ~%s %s\n", preview.AmountOutFormatted, color.YellowString(dest.Symbol))
	if preview.AmountOutUSD != "" {
		fmt.Printf("  Value (USD):       ~$%s\n", preview.AmountOutUSD)
	}
	if rate := effectiveRate(amount, preview.AmountOutFormatted); rate != "" {
		fmt.Printf("  Rate:              1 %s = %s %s\n", origin.Symbol, rate, dest.Symbol)
	}
	if preview.TimeEstimate > 0 {
		fmt.Printf("  Estimated Time:    %.0f seconds\n", preview.TimeEstimate.Seconds())
	}

	fmt.Println("\n" + rule(60) + "\n")
}

func displayDepositInstructions(quote *payment.BindingQuote, origin catalog.Token) {
	fmt.Println("\n" + rule(60))
	color.Yellow("                 DEPOSIT INSTRUCTIONS")
	fmt.Println(rule(60))
	fmt.Printf("\nTo complete the payment, send %s %s on %s to:\n\n", quote.AmountInFormatted, origin.Symbol, origin.Chain)
	color.Cyan("  %s\n", quote.DepositAddress)

	if quote.Memo != "" {
		fmt.Printf("\nMemo (REQUIRED): %s\n", color.MagentaString(quote.Memo))
	}
	if !quote.Deadline.IsZero() {
		fmt.Printf("\nDeposit before:  %s\n", quote.Deadline.Local().Format("2006-01-02 15:04:05"))
	}

	fmt.Println("\n" + rule(60) + "\n")
}

func displayStatus(status *intents.StatusResult, depositAddress string) {
	fmt.Println("\n" + rule(70))
	color.Green("                       PAYMENT STATUS")
	fmt.Println(rule(70))

	fmt.Printf("\n  Deposit Address: %s\n", color.CyanString(depositAddress))
	fmt.Printf("  Status:          %s\n", coloredStatus(status.Status))
	if !status.UpdatedAt.IsZero() {
		fmt.Printf("  Last Updated:    %s\n", status.UpdatedAt.Format("2006-01-02 15:04:05"))
	}
	for _, hash := range status.OriginTxHashes {
		fmt.Printf("  Deposit Tx:      %s\n", color.HiBlackString(hash))
	}
	for _, hash := range status.DestinationTxHashes {
		fmt.Printf("  Delivery Tx:     %s\n", color.HiBlackString(hash))
	}
	if status.AmountOutFormatted != "" {
		fmt.Printf("  Amount Out:      %s\n", status.AmountOutFormatted)
	}

	fmt.Println("\n" + rule(70) + "\n")
}

func coloredStatus(status intents.ExecutionStatus) string {
	s := string(status)
	switch status {
	case intents.StatusSuccess:
		return color.GreenString(s)
	case intents.StatusPendingDeposit, intents.StatusKnownDepositTx, intents.StatusProcessing:
		return color.YellowString(s)
	case intents.StatusFailed, intents.StatusRefunded:
		return color.RedString(s)
	case intents.StatusIncompleteDeposit:
		return color.MagentaString(s)
	default:
		return s
	}
}

func stateLabel(state payment.PaymentState) string {
	switch state {
	case payment.StateAwaitingDeposit:
		return "Waiting for deposit..."
	case payment.StateProcessing:
		return "Processing payment..."
	case payment.StateQuoting:
		return "Fetching quote..."
	default:
		return string(state)
	}
}
