// Package payment drives a single cross-chain payment from token selection to
// settlement on Sui.
package payment

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"near-pay/pkg/catalog"
	"near-pay/pkg/intents"
	"near-pay/pkg/logging"
	"near-pay/pkg/metrics"
	"near-pay/pkg/receipt"
)

const (
	DefaultDebounceInterval = 3 * time.Second
	DefaultPollInterval     = 3 * time.Second
)

// ReceiptStore records the outcome of flows that got a binding quote
type ReceiptStore interface {
	Save(r *receipt.Receipt) error
}

// DepositSubmitter reports a deposit transaction to the intents service
type DepositSubmitter interface {
	SubmitDepositTx(ctx context.Context, depositAddress, txHash, memo string) error
}

// Options configures a Controller
type Options struct {
	// Recipient is the Sui address that receives the payment
	Recipient string
	// RefundAddress on the origin chain; may also be set later with SetRefundAddress
	RefundAddress string
	// DestinationToken is suiSUI or suiUSDC; empty means suiUSDC
	DestinationToken string
	Catalog          catalog.Catalog

	DebounceInterval time.Duration
	PollInterval     time.Duration
	SlippageBps      int
	Referral         string

	OnSuccess     func(SuccessResult)
	OnError       func(error)
	OnStateChange func(from, to PaymentState)

	Logger   *zap.Logger
	Metrics  metrics.Recorder
	Receipts ReceiptStore

	// Clock and Spawn exist for tests; Spawn runs outbound requests
	Clock Clock
	Spawn func(func())
}

// Controller owns the lifecycle of one payment: selection, preview, binding
// quote, deposit wait and settlement. All methods are safe for concurrent use
// and none of them wait on the network, except SubmitDepositTx.
type Controller struct {
	quotes   intents.QuoteClient
	statuses intents.StatusClient
	catalog  catalog.Catalog
	opts     Options
	logger   *zap.Logger
	metrics  metrics.Recorder
	clock    Clock
	spawn    func(func())

	mu sync.Mutex
	// effects queued under mu, run by unlock
	effects []func()

	flowCtx    context.Context
	cancelFlow context.CancelFunc
	generation uint64
	closed     bool
	flowID     string

	state          PaymentState
	selectedChain  *catalog.Chain
	selectedToken  *catalog.Token
	amount         string
	refundAddress  string
	destination    catalog.Token
	quote          *BindingQuote
	preview        *PreviewQuote
	loadingPreview bool
	status         *intents.StatusResult
	err            error

	previewTimer  Timer
	previewCancel context.CancelFunc
	previewSeq    uint64

	polling      bool
	pollTimer    Timer
	pollSeq      uint64
	lastStatus   intents.ExecutionStatus
	successFired bool

	subscribers map[int]chan Snapshot
	nextSubID   int
}

// New creates a controller in the idle state
func New(quotes intents.QuoteClient, statuses intents.StatusClient, opts Options) (*Controller, error) {
	if quotes == nil || statuses == nil {
		return nil, fmt.Errorf("quote and status clients are required")
	}
	if opts.Recipient == "" {
		return nil, fmt.Errorf("recipient address is required")
	}
	if opts.Catalog == nil {
		opts.Catalog = catalog.Default()
	}
	destination, ok := opts.Catalog.DestinationToken(opts.DestinationToken)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not a destination token", ErrUnknownToken, opts.DestinationToken)
	}
	if opts.DebounceInterval <= 0 {
		opts.DebounceInterval = DefaultDebounceInterval
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = DefaultPollInterval
	}
	if opts.Clock == nil {
		opts.Clock = realClock{}
	}
	if opts.Spawn == nil {
		opts.Spawn = func(f func()) { go f() }
	}

	c := &Controller{
		quotes:        quotes,
		statuses:      statuses,
		catalog:       opts.Catalog,
		opts:          opts,
		logger:        logging.OrNop(opts.Logger).Named("payment"),
		metrics:       metrics.OrNoop(opts.Metrics),
		clock:         opts.Clock,
		spawn:         opts.Spawn,
		state:         StateIdle,
		destination:   destination,
		refundAddress: opts.RefundAddress,
		subscribers:   make(map[int]chan Snapshot),
	}
	c.newFlowLocked()

	return c, nil
}

// newFlowLocked starts a fresh flow generation with its own request context
func (c *Controller) newFlowLocked() {
	if c.cancelFlow != nil {
		c.cancelFlow()
	}
	c.flowCtx, c.cancelFlow = context.WithCancel(context.Background())
	c.generation++
	c.flowID = uuid.New().String()
}

// unlock notifies subscribers, releases mu and then runs queued effects
func (c *Controller) unlock() {
	effects := c.effects
	c.effects = nil

	if len(c.subscribers) > 0 {
		snap := c.snapshotLocked()
		for _, ch := range c.subscribers {
			publish(ch, snap)
		}
	}
	c.mu.Unlock()

	for _, f := range effects {
		f()
	}
}

// publish replaces any unread snapshot with the latest one; it never blocks
func publish(ch chan Snapshot, snap Snapshot) {
	for {
		select {
		case ch <- snap:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}

func (c *Controller) after(f func()) {
	c.effects = append(c.effects, f)
}

func (c *Controller) setStateLocked(to PaymentState) {
	from := c.state
	if from == to {
		return
	}
	c.state = to
	c.metrics.IncCounter(metrics.EventTransition, map[string]string{"outcome": string(to)})
	c.logger.Debug("Payment state changed",
		zap.String("flow_id", c.flowID),
		zap.String("from", string(from)),
		zap.String("to", string(to)))

	if cb := c.opts.OnStateChange; cb != nil {
		c.after(func() { cb(from, to) })
	}
}

// failLocked moves the flow to the error state and queues OnError
func (c *Controller) failLocked(err error) {
	c.err = err
	c.setStateLocked(StateError)
	if cb := c.opts.OnError; cb != nil {
		c.after(func() { cb(err) })
	}
}

// SelectChain selects the origin chain and defaults the token to its first one
func (c *Controller) SelectChain(id catalog.ChainID) error {
	c.mu.Lock()
	defer c.unlock()

	if err := c.checkSelectableLocked(); err != nil {
		return err
	}

	chain, ok := c.catalog.Chain(id)
	if !ok || len(chain.Tokens) == 0 {
		return fmt.Errorf("%w: %s", ErrUnknownChain, id)
	}
	if chain.ID == catalog.DestinationChain {
		return fmt.Errorf("%w: %s is the destination chain", ErrUnknownChain, id)
	}

	token := chain.Tokens[0]
	c.selectedChain = &chain
	c.selectedToken = &token
	c.setStateLocked(StateSelecting)
	c.schedulePreviewLocked()

	return nil
}

// SelectToken selects a token of the currently selected chain by name
func (c *Controller) SelectToken(name string) error {
	c.mu.Lock()
	defer c.unlock()

	if err := c.checkSelectableLocked(); err != nil {
		return err
	}
	if c.selectedChain == nil {
		return ErrNoChainSelected
	}

	for _, t := range c.selectedChain.Tokens {
		if t.Name == name {
			token := t
			c.selectedToken = &token
			c.setStateLocked(StateSelecting)
			c.schedulePreviewLocked()
			return nil
		}
	}

	return fmt.Errorf("%w: %s on %s", ErrUnknownToken, name, c.selectedChain.ID)
}

// SetAmount records the human-decimal amount and reschedules the preview
func (c *Controller) SetAmount(amount string) error {
	c.mu.Lock()
	defer c.unlock()

	if err := c.checkSelectableLocked(); err != nil {
		return err
	}

	c.amount = amount
	c.schedulePreviewLocked()
	return nil
}

// SetRefundAddress records the origin-chain refund address
func (c *Controller) SetRefundAddress(addr string) error {
	c.mu.Lock()
	defer c.unlock()

	if err := c.checkSelectableLocked(); err != nil {
		return err
	}

	c.refundAddress = addr
	c.schedulePreviewLocked()
	return nil
}

func (c *Controller) checkSelectableLocked() error {
	if c.closed {
		return ErrClosed
	}
	if !c.state.acceptsSelection() {
		return fmt.Errorf("%w: %s", ErrInvalidTransition, c.state)
	}
	return nil
}

// quoteOptionsLocked builds a quote request from the current selection
func (c *Controller) quoteOptionsLocked(dry bool) intents.QuoteOptions {
	return intents.QuoteOptions{
		OriginToken:      *c.selectedToken,
		DestinationToken: c.destination,
		Amount:           c.amount,
		Recipient:        c.opts.Recipient,
		RefundTo:         c.refundAddress,
		SlippageBps:      c.opts.SlippageBps,
		Dry:              dry,
		Referral:         c.opts.Referral,
	}
}

// Confirm requests a binding quote for the current selection. Missing fields
// are reported without leaving the selecting state.
func (c *Controller) Confirm() error {
	c.mu.Lock()
	defer c.unlock()

	if c.closed {
		return ErrClosed
	}
	if !c.state.acceptsSelection() {
		return fmt.Errorf("%w: %s", ErrInvalidTransition, c.state)
	}
	if c.selectedToken == nil || c.amount == "" || c.refundAddress == "" {
		c.err = ErrMissingFields
		return ErrMissingFields
	}

	c.cancelPreviewLocked()
	c.loadingPreview = false
	c.err = nil
	c.setStateLocked(StateQuoting)

	gen := c.generation
	ctx := c.flowCtx
	opts := c.quoteOptionsLocked(false)

	c.after(func() {
		c.spawn(func() {
			result, err := c.quotes.GetQuote(ctx, opts)
			c.finishQuote(gen, result, err)
		})
	})

	return nil
}

func (c *Controller) finishQuote(gen uint64, result *intents.QuoteResult, err error) {
	c.mu.Lock()
	defer c.unlock()

	if c.closed || gen != c.generation || c.state != StateQuoting {
		c.logger.Debug("Discarding stale quote", zap.Uint64("generation", gen))
		return
	}

	if err == nil && (result == nil || result.DepositAddress == "") {
		err = ErrNoDepositAddress
	}
	if err != nil {
		c.metrics.IncCounter(metrics.EventQuote, map[string]string{"outcome": "error"})
		c.logger.Error("Failed to get quote", zap.String("flow_id", c.flowID), zap.Error(err))
		c.failLocked(fmt.Errorf("failed to get quote: %w", err))
		return
	}

	c.metrics.IncCounter(metrics.EventQuote, map[string]string{"outcome": "ok"})
	c.quote = newBindingQuote(result)
	c.logger.Info("Binding quote received",
		zap.String("flow_id", c.flowID),
		zap.String("deposit_address", c.quote.DepositAddress),
		zap.String("amount_out", c.quote.AmountOutFormatted))

	c.setStateLocked(StateAwaitingDeposit)
	c.startPollingLocked()
}

// SubmitDepositTx reports the deposit transaction hash for the current quote.
// Unlike the other commands it blocks on the request.
func (c *Controller) SubmitDepositTx(ctx context.Context, txHash string) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	quote := c.quote
	c.mu.Unlock()

	if quote == nil {
		return ErrNoQuote
	}
	submitter, ok := c.quotes.(DepositSubmitter)
	if !ok {
		return fmt.Errorf("quote client cannot submit deposit transactions")
	}
	if err := submitter.SubmitDepositTx(ctx, quote.DepositAddress, txHash, quote.Memo); err != nil {
		return fmt.Errorf("failed to submit deposit tx: %w", err)
	}

	c.logger.Info("Deposit transaction submitted",
		zap.String("deposit_address", quote.DepositAddress),
		zap.String("tx_hash", txHash))
	return nil
}

// Reset cancels every timer and pending request and returns to idle
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.unlock()

	if c.closed {
		return
	}

	c.cancelPreviewLocked()
	c.stopPollingLocked()
	c.newFlowLocked()

	c.selectedChain = nil
	c.selectedToken = nil
	c.amount = ""
	c.refundAddress = c.opts.RefundAddress
	c.quote = nil
	c.preview = nil
	c.loadingPreview = false
	c.status = nil
	c.err = nil
	c.lastStatus = ""
	c.successFired = false
	c.setStateLocked(StateIdle)
}

// Close stops all timers, cancels in-flight requests and closes subscriber
// channels. Later commands return ErrClosed.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.cancelPreviewLocked()
	c.stopPollingLocked()
	c.cancelFlow()
	c.generation++

	for id, ch := range c.subscribers {
		delete(c.subscribers, id)
		close(ch)
	}
	c.unlock()
}

// Subscribe returns a channel that always holds the latest snapshot after a
// change, and a function to unsubscribe
func (c *Controller) Subscribe() (<-chan Snapshot, func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ch := make(chan Snapshot, 1)
	if c.closed {
		close(ch)
		return ch, func() {}
	}

	id := c.nextSubID
	c.nextSubID++
	c.subscribers[id] = ch
	ch <- c.snapshotLocked()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			if _, ok := c.subscribers[id]; ok {
				delete(c.subscribers, id)
				close(ch)
			}
		})
	}
}

// Snapshot returns a copy of the current state
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.snapshotLocked()
}

func (c *Controller) snapshotLocked() Snapshot {
	s := Snapshot{
		FlowID:           c.flowID,
		State:            c.state,
		LoadingPreview:   c.loadingPreview,
		Err:              c.err,
		Amount:           c.amount,
		RefundAddress:    c.refundAddress,
		Recipient:        c.opts.Recipient,
		DestinationToken: c.destination,
		Polling:          c.polling,
	}
	if c.quote != nil {
		q := *c.quote
		s.Quote = &q
	}
	if c.preview != nil {
		p := *c.preview
		s.Preview = &p
	}
	if c.status != nil {
		st := *c.status
		s.Status = &st
	}
	if c.selectedChain != nil {
		ch := *c.selectedChain
		s.SelectedChain = &ch
		s.Tokens = append([]catalog.Token(nil), c.selectedChain.Tokens...)
	}
	if c.selectedToken != nil {
		t := *c.selectedToken
		s.SelectedToken = &t
	}
	for _, ch := range c.catalog.ListChains() {
		if ch.ID != catalog.DestinationChain {
			s.Chains = append(s.Chains, ch)
		}
	}
	return s
}

// recordLocked queues a receipt for the finished flow
func (c *Controller) recordLocked(status receipt.Status, txHash string, cause error) {
	store := c.opts.Receipts
	if store == nil || c.quote == nil {
		return
	}

	r := &receipt.Receipt{
		FlowID:           c.flowID,
		DepositAddress:   c.quote.DepositAddress,
		Memo:             c.quote.Memo,
		DestinationAsset: c.destination.AssetID,
		Recipient:        c.opts.Recipient,
		AmountIn:         c.quote.AmountIn,
		AmountOut:        c.quote.AmountOut,
		TxHash:           txHash,
		Status:           status,
	}
	if c.selectedToken != nil {
		r.OriginChain = string(c.selectedToken.Chain)
		r.OriginAsset = c.selectedToken.AssetID
	}
	if cause != nil && !errors.Is(cause, context.Canceled) {
		r.Error = cause.Error()
	}

	logger := c.logger
	c.after(func() {
		if err := store.Save(r); err != nil {
			logger.Warn("Failed to save receipt", zap.String("flow_id", r.FlowID), zap.Error(err))
		}
	})
}
