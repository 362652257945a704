package intents

import (
	"time"

	"near-pay/pkg/catalog"
)

// SwapType selects how the intents service interprets the quoted amount
type SwapType string

const (
	SwapExactInput  SwapType = "EXACT_INPUT"
	SwapExactOutput SwapType = "EXACT_OUTPUT"
	SwapFlexInput   SwapType = "FLEX_INPUT"
	SwapAnyInput    SwapType = "ANY_INPUT"
)

// ExecutionStatus is the settlement status reported by the intents service
type ExecutionStatus string

const (
	StatusPendingDeposit    ExecutionStatus = "PENDING_DEPOSIT"
	StatusKnownDepositTx    ExecutionStatus = "KNOWN_DEPOSIT_TX"
	StatusProcessing        ExecutionStatus = "PROCESSING"
	StatusSuccess           ExecutionStatus = "SUCCESS"
	StatusIncompleteDeposit ExecutionStatus = "INCOMPLETE_DEPOSIT"
	StatusRefunded          ExecutionStatus = "REFUNDED"
	StatusFailed            ExecutionStatus = "FAILED"
)

// IsComplete reports whether no further status change is expected
func (s ExecutionStatus) IsComplete() bool {
	return s == StatusSuccess || s == StatusRefunded || s == StatusFailed
}

// IsSuccess reports whether the swap settled
func (s ExecutionStatus) IsSuccess() bool {
	return s == StatusSuccess
}

// QuoteOptions describes a quote request in human-readable units
type QuoteOptions struct {
	OriginToken      catalog.Token
	DestinationToken catalog.Token

	// Amount in origin token units, e.g. "1.5"
	Amount    string `validate:"required"`
	Recipient string `validate:"required"`
	RefundTo  string `validate:"required"`

	// SlippageBps of 0 uses the client default
	SlippageBps int `validate:"gte=0,lte=10000"`
	SwapType    SwapType

	// Zero deadline means now plus the client's deadline horizon
	Deadline time.Time

	// Dry quotes never commit a deposit address
	Dry      bool
	Referral string
}

// QuoteResult is the service's answer to a quote request
type QuoteResult struct {
	DepositAddress     string        `json:"depositAddress"`
	Memo               string        `json:"memo,omitempty"`
	AmountIn           string        `json:"amountIn"`
	AmountInFormatted  string        `json:"amountInFormatted"`
	AmountOut          string        `json:"amountOut"`
	AmountOutFormatted string        `json:"amountOutFormatted"`
	AmountOutUSD       string        `json:"amountOutUsd,omitempty"`
	Deadline           time.Time     `json:"deadline"`
	TimeEstimate       time.Duration `json:"timeEstimate"`
	CorrelationID      string        `json:"correlationId"`
	Dry                bool          `json:"dry"`
}

// StatusResult is the current settlement state of a deposit address
type StatusResult struct {
	Status              ExecutionStatus `json:"status"`
	IsComplete          bool            `json:"isComplete"`
	IsSuccess           bool            `json:"isSuccess"`
	CorrelationID       string          `json:"correlationId"`
	UpdatedAt           time.Time       `json:"updatedAt"`
	OriginTxHashes      []string        `json:"originTxHashes,omitempty"`
	DestinationTxHashes []string        `json:"destinationTxHashes,omitempty"`
	AmountOutFormatted  string          `json:"amountOutFormatted,omitempty"`
}

// NewStatusResult fills the derived completion flags from status
func NewStatusResult(status ExecutionStatus) *StatusResult {
	return &StatusResult{
		Status:     status,
		IsComplete: status.IsComplete(),
		IsSuccess:  status.IsSuccess(),
	}
}

// FirstDestinationTx returns the first withdrawal hash, or "" if none is known yet
func (s *StatusResult) FirstDestinationTx() string {
	if len(s.DestinationTxHashes) == 0 {
		return ""
	}
	return s.DestinationTxHashes[0]
}

// RemoteToken is a token entry from the live /tokens endpoint
type RemoteToken struct {
	AssetID         string  `json:"assetId"`
	Symbol          string  `json:"symbol"`
	Blockchain      string  `json:"blockchain"`
	Decimals        int     `json:"decimals"`
	ContractAddress string  `json:"contractAddress,omitempty"`
	PriceUSD        float64 `json:"price,omitempty"`
}
