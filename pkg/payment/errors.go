package payment

import "errors"

var (
	ErrMissingFields     = errors.New("missing required fields")
	ErrInvalidTransition = errors.New("command not allowed in current payment state")
	ErrUnknownChain      = errors.New("unknown chain")
	ErrUnknownToken      = errors.New("unknown token")
	ErrNoChainSelected   = errors.New("no chain selected")
	ErrPaymentFailed     = errors.New("payment failed")
	ErrNoDepositAddress  = errors.New("quote returned no deposit address")
	ErrNoQuote           = errors.New("no binding quote")
	ErrClosed            = errors.New("payment controller closed")
)
