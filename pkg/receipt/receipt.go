// Package receipt keeps a local history of payment flows that reached a
// binding quote.
package receipt

import "time"

// Status is the final outcome recorded for a flow
type Status string

const (
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
)

// Receipt records one payment attempt
type Receipt struct {
	ID               string    `json:"id"`
	FlowID           string    `json:"flowId"`
	DepositAddress   string    `json:"depositAddress"`
	Memo             string    `json:"memo,omitempty"`
	OriginChain      string    `json:"originChain"`
	OriginAsset      string    `json:"originAsset"`
	DestinationAsset string    `json:"destinationAsset"`
	Recipient        string    `json:"recipient"`
	AmountIn         string    `json:"amountIn"`
	AmountOut        string    `json:"amountOut"`
	TxHash           string    `json:"txHash,omitempty"`
	Status           Status    `json:"status"`
	Error            string    `json:"error,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}
