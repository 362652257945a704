package metrics

import "time"

// Recorder receives payment flow events
type Recorder interface {
	IncCounter(name string, labels map[string]string)
	ObserveLatency(name string, duration time.Duration, labels map[string]string)
}

// Event names emitted by the payment controller and intents client
const (
	EventTransition    = "state_transition"
	EventPreview       = "preview_quote"
	EventQuote         = "binding_quote"
	EventPoll          = "status_poll"
	EventPollError     = "status_poll_error"
	OperationGetQuote  = "get_quote"
	OperationGetStatus = "get_status"
)
