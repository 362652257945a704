package payment

import (
	"time"

	"near-pay/pkg/catalog"
	"near-pay/pkg/intents"
)

// PaymentState is the controller's lifecycle position
type PaymentState string

const (
	StateIdle            PaymentState = "idle"
	StateSelecting       PaymentState = "selecting"
	StateQuoting         PaymentState = "quoting"
	StateAwaitingDeposit PaymentState = "awaiting_deposit"
	StateProcessing      PaymentState = "processing"
	StateSuccess         PaymentState = "success"
	StateError           PaymentState = "error"
)

// acceptsSelection reports whether selection commands are allowed
func (s PaymentState) acceptsSelection() bool {
	return s == StateIdle || s == StateSelecting
}

// PreviewQuote is a dry-run estimate. It deliberately has no deposit address:
// nothing obtained from a dry run can be shown as a funding target.
type PreviewQuote struct {
	AmountIn           string
	AmountInFormatted  string
	AmountOut          string
	AmountOutFormatted string
	AmountOutUSD       string
	TimeEstimate       time.Duration
	CorrelationID      string
}

func newPreviewQuote(r *intents.QuoteResult) *PreviewQuote {
	return &PreviewQuote{
		AmountIn:           r.AmountIn,
		AmountInFormatted:  r.AmountInFormatted,
		AmountOut:          r.AmountOut,
		AmountOutFormatted: r.AmountOutFormatted,
		AmountOutUSD:       r.AmountOutUSD,
		TimeEstimate:       r.TimeEstimate,
		CorrelationID:      r.CorrelationID,
	}
}

// BindingQuote is a committed quote with a real deposit address. It is
// immutable once received.
type BindingQuote struct {
	DepositAddress     string
	Memo               string
	AmountIn           string
	AmountInFormatted  string
	AmountOut          string
	AmountOutFormatted string
	AmountOutUSD       string
	Deadline           time.Time
	TimeEstimate       time.Duration
	CorrelationID      string
}

func newBindingQuote(r *intents.QuoteResult) *BindingQuote {
	return &BindingQuote{
		DepositAddress:     r.DepositAddress,
		Memo:               r.Memo,
		AmountIn:           r.AmountIn,
		AmountInFormatted:  r.AmountInFormatted,
		AmountOut:          r.AmountOut,
		AmountOutFormatted: r.AmountOutFormatted,
		AmountOutUSD:       r.AmountOutUSD,
		Deadline:           r.Deadline,
		TimeEstimate:       r.TimeEstimate,
		CorrelationID:      r.CorrelationID,
	}
}

// SuccessResult is passed to OnSuccess. Amount is the quoted output amount in
// smallest units, not an amount confirmed on-chain.
type SuccessResult struct {
	TxHash string
	Amount string
}

// Snapshot is a read-only copy of the controller state
type Snapshot struct {
	FlowID           string
	State            PaymentState
	Quote            *BindingQuote
	Preview          *PreviewQuote
	LoadingPreview   bool
	Status           *intents.StatusResult
	Err              error
	SelectedChain    *catalog.Chain
	SelectedToken    *catalog.Token
	Amount           string
	RefundAddress    string
	Recipient        string
	DestinationToken catalog.Token
	Chains           []catalog.Chain
	Tokens           []catalog.Token
	Polling          bool
}
