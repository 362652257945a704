package payment

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"near-pay/pkg/catalog"
	"near-pay/pkg/intents"
	"near-pay/pkg/receipt"
)

const (
	testRecipient = "0x7a1e3b5c9d2f4a6b8c0e1d3f5a7b9c2e4d6f8a0b1c3e5d7f9a2b4c6e8d0f1a3b"
	testRefund    = "0x1111111111111111111111111111111111111111"
)

type harness struct {
	clock    *fakeClock
	spawner  *spawner
	quotes   *fakeQuotes
	statuses *fakeStatuses
	receipts *memReceipts
	ctrl     *Controller

	mu          sync.Mutex
	successes   []SuccessResult
	errs        []error
	transitions []string
}

func newHarness(t *testing.T, mutate ...func(*Options)) *harness {
	t.Helper()

	clock := newFakeClock()
	h := &harness{
		clock:    clock,
		spawner:  &spawner{},
		quotes:   &fakeQuotes{clock: clock},
		statuses: &fakeStatuses{},
		receipts: &memReceipts{},
	}

	opts := Options{
		Recipient:     testRecipient,
		RefundAddress: testRefund,
		Clock:         clock,
		Spawn:         h.spawner.Spawn,
		Receipts:      h.receipts,
		OnSuccess: func(r SuccessResult) {
			h.mu.Lock()
			defer h.mu.Unlock()
			h.successes = append(h.successes, r)
		},
		OnError: func(err error) {
			h.mu.Lock()
			defer h.mu.Unlock()
			h.errs = append(h.errs, err)
		},
		OnStateChange: func(from, to PaymentState) {
			h.mu.Lock()
			defer h.mu.Unlock()
			h.transitions = append(h.transitions, fmt.Sprintf("%s->%s", from, to))
		},
	}
	for _, m := range mutate {
		m(&opts)
	}

	ctrl, err := New(h.quotes, h.statuses, opts)
	require.NoError(t, err)
	t.Cleanup(ctrl.Close)
	h.ctrl = ctrl

	return h
}

// selectPayment picks ethUSDC and sets the amount
func (h *harness) selectPayment(t *testing.T, amount string) {
	t.Helper()
	require.NoError(t, h.ctrl.SelectChain("eth"))
	require.NoError(t, h.ctrl.SelectToken("ethUSDC"))
	require.NoError(t, h.ctrl.SetAmount(amount))
}

func (h *harness) Successes() []SuccessResult {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]SuccessResult(nil), h.successes...)
}

func (h *harness) Errors() []error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]error(nil), h.errs...)
}

func (h *harness) Transitions() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.transitions...)
}

func TestNewValidation(t *testing.T) {
	quotes := &fakeQuotes{clock: newFakeClock()}
	statuses := &fakeStatuses{}

	_, err := New(quotes, statuses, Options{})
	assert.Error(t, err, "recipient is required")

	_, err = New(nil, statuses, Options{Recipient: testRecipient})
	assert.Error(t, err)

	_, err = New(quotes, statuses, Options{Recipient: testRecipient, DestinationToken: "suiWETH"})
	assert.ErrorIs(t, err, ErrUnknownToken)

	ctrl, err := New(quotes, statuses, Options{Recipient: testRecipient, DestinationToken: catalog.DestinationSUI})
	require.NoError(t, err)
	defer ctrl.Close()
	assert.Equal(t, catalog.DestinationSUI, ctrl.Snapshot().DestinationToken.Name)
}

func TestInitialSnapshot(t *testing.T) {
	h := newHarness(t)
	snap := h.ctrl.Snapshot()

	assert.Equal(t, StateIdle, snap.State)
	assert.NotEmpty(t, snap.FlowID)
	assert.Equal(t, catalog.DestinationUSDC, snap.DestinationToken.Name)
	assert.Equal(t, testRefund, snap.RefundAddress)
	assert.Nil(t, snap.SelectedChain)
	assert.Nil(t, snap.Quote)

	require.NotEmpty(t, snap.Chains)
	assert.Equal(t, catalog.ChainID("eth"), snap.Chains[0].ID)
	for _, c := range snap.Chains {
		assert.NotEqual(t, catalog.DestinationChain, c.ID)
	}
}

func TestSelectChainDefaultsToken(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.ctrl.SelectChain("eth"))
	snap := h.ctrl.Snapshot()
	assert.Equal(t, StateSelecting, snap.State)
	assert.Equal(t, catalog.Default().TokensOf("eth")[0].Name, snap.SelectedToken.Name)

	require.NoError(t, h.ctrl.SelectToken("ethUSDC"))
	assert.Equal(t, "ethUSDC", h.ctrl.Snapshot().SelectedToken.Name)

	// A different chain always re-defaults the token
	require.NoError(t, h.ctrl.SelectChain("arb"))
	snap = h.ctrl.Snapshot()
	arbTokens := catalog.Default().TokensOf("arb")
	assert.Equal(t, arbTokens[0].Name, snap.SelectedToken.Name)
	assert.Equal(t, catalog.ChainID("arb"), snap.SelectedToken.Chain)
	assert.Len(t, snap.Tokens, len(arbTokens))
}

func TestSelectChainRejectsUnknownAndDestination(t *testing.T) {
	h := newHarness(t)

	assert.ErrorIs(t, h.ctrl.SelectChain("sui"), ErrUnknownChain)
	assert.ErrorIs(t, h.ctrl.SelectChain("atlantis"), ErrUnknownChain)
	assert.Equal(t, StateIdle, h.ctrl.Snapshot().State)
}

func TestSelectTokenMustBelongToChain(t *testing.T) {
	h := newHarness(t)

	assert.ErrorIs(t, h.ctrl.SelectToken("ethUSDC"), ErrNoChainSelected)

	require.NoError(t, h.ctrl.SelectChain("eth"))
	assert.ErrorIs(t, h.ctrl.SelectToken("arbUSDC"), ErrUnknownToken)
	assert.NotEqual(t, "arbUSDC", h.ctrl.Snapshot().SelectedToken.Name)
}

func TestPreviewDebounceFiresOnceWithLatestAmount(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.ctrl.SelectChain("eth"))
	require.NoError(t, h.ctrl.SelectToken("ethUSDC"))
	start := h.clock.Now()

	require.NoError(t, h.ctrl.SetAmount("1"))
	h.clock.Advance(1000 * time.Millisecond)
	require.NoError(t, h.ctrl.SetAmount("12"))
	h.clock.Advance(1000 * time.Millisecond)
	require.NoError(t, h.ctrl.SetAmount("125"))

	h.clock.Advance(2999 * time.Millisecond)
	assert.Empty(t, h.quotes.Calls(true))
	snap := h.ctrl.Snapshot()
	assert.True(t, snap.LoadingPreview)
	assert.Nil(t, snap.Preview)

	h.clock.Advance(time.Millisecond)
	calls := h.quotes.Calls(true)
	require.Len(t, calls, 1)
	assert.Equal(t, start.Add(5000*time.Millisecond), calls[0].at)
	assert.Equal(t, "125", calls[0].opts.Amount)
	assert.True(t, calls[0].opts.Dry)
	assert.Equal(t, testRefund, calls[0].opts.RefundTo)
	assert.Equal(t, testRecipient, calls[0].opts.Recipient)
	assert.Equal(t, catalog.DestinationUSDC, calls[0].opts.DestinationToken.Name)

	snap = h.ctrl.Snapshot()
	assert.False(t, snap.LoadingPreview)
	require.NotNil(t, snap.Preview)
	assert.Equal(t, "0.99", snap.Preview.AmountOutFormatted)
	assert.Equal(t, "corr-125", snap.Preview.CorrelationID)

	h.clock.Advance(time.Minute)
	assert.Len(t, h.quotes.Calls(true), 1)
	assert.Equal(t, StateSelecting, h.ctrl.Snapshot().State)
}

func TestPreviewClearedWhenAmountRemoved(t *testing.T) {
	h := newHarness(t)
	h.selectPayment(t, "5")
	h.clock.Advance(3 * time.Second)
	require.NotNil(t, h.ctrl.Snapshot().Preview)

	require.NoError(t, h.ctrl.SetAmount(""))
	snap := h.ctrl.Snapshot()
	assert.Nil(t, snap.Preview)
	assert.False(t, snap.LoadingPreview)
	assert.Zero(t, h.clock.Pending())
}

func TestPreviewRequiresRefundAddress(t *testing.T) {
	h := newHarness(t, func(o *Options) { o.RefundAddress = "" })
	h.selectPayment(t, "5")

	assert.False(t, h.ctrl.Snapshot().LoadingPreview)
	assert.Zero(t, h.clock.Pending())

	require.NoError(t, h.ctrl.SetRefundAddress(testRefund))
	assert.True(t, h.ctrl.Snapshot().LoadingPreview)

	h.clock.Advance(3 * time.Second)
	assert.NotNil(t, h.ctrl.Snapshot().Preview)
}

func TestPreviewFailureIsNonFatal(t *testing.T) {
	h := newHarness(t)
	h.quotes.previewErr = errors.New("service unavailable")
	h.selectPayment(t, "5")

	h.clock.Advance(3 * time.Second)

	snap := h.ctrl.Snapshot()
	assert.Len(t, h.quotes.Calls(true), 1)
	assert.False(t, snap.LoadingPreview)
	assert.Nil(t, snap.Preview)
	assert.NoError(t, snap.Err)
	assert.Equal(t, StateSelecting, snap.State)
	assert.Empty(t, h.Errors())
}

func TestStalePreviewResponseIsDiscarded(t *testing.T) {
	h := newHarness(t)
	h.selectPayment(t, "1")

	h.spawner.Hold()
	h.clock.Advance(3 * time.Second)
	require.NoError(t, h.ctrl.SetAmount("2"))

	// The request for "1" completes after the amount changed
	h.spawner.Release()
	require.Len(t, h.quotes.Calls(true), 1)
	snap := h.ctrl.Snapshot()
	assert.Nil(t, snap.Preview)
	assert.True(t, snap.LoadingPreview)

	h.clock.Advance(3 * time.Second)
	snap = h.ctrl.Snapshot()
	require.NotNil(t, snap.Preview)
	assert.Equal(t, "corr-2", snap.Preview.CorrelationID)
}

func TestConfirmMissingFields(t *testing.T) {
	h := newHarness(t)

	assert.ErrorIs(t, h.ctrl.Confirm(), ErrMissingFields)
	assert.Equal(t, StateIdle, h.ctrl.Snapshot().State)

	require.NoError(t, h.ctrl.SelectChain("eth"))
	err := h.ctrl.Confirm()
	assert.ErrorIs(t, err, ErrMissingFields)

	snap := h.ctrl.Snapshot()
	assert.Equal(t, StateSelecting, snap.State)
	assert.ErrorIs(t, snap.Err, ErrMissingFields)
	assert.Empty(t, h.quotes.Calls(false))
}

func TestConfirmMissingRefundAddress(t *testing.T) {
	h := newHarness(t, func(o *Options) { o.RefundAddress = "" })
	h.selectPayment(t, "5")

	assert.ErrorIs(t, h.ctrl.Confirm(), ErrMissingFields)
	assert.Equal(t, StateSelecting, h.ctrl.Snapshot().State)
}

func TestPaymentSettles(t *testing.T) {
	h := newHarness(t)
	h.statuses.replies = []statusReply{
		{status: intents.StatusPendingDeposit},
		{status: intents.StatusPendingDeposit},
		{status: intents.StatusProcessing},
		{status: intents.StatusSuccess, hashes: []string{"0xdest", "0xother"}},
	}
	h.selectPayment(t, "1.5")

	require.NoError(t, h.ctrl.Confirm())

	// Pending preview was cancelled by confirm
	h.clock.Advance(0)
	assert.Empty(t, h.quotes.Calls(true))

	binding := h.quotes.Calls(false)
	require.Len(t, binding, 1)
	assert.False(t, binding[0].opts.Dry)
	assert.Equal(t, "1.5", binding[0].opts.Amount)
	assert.Equal(t, "ethUSDC", binding[0].opts.OriginToken.Name)

	snap := h.ctrl.Snapshot()
	assert.Equal(t, StateAwaitingDeposit, snap.State)
	require.NotNil(t, snap.Quote)
	assert.Equal(t, "0xdeposit", snap.Quote.DepositAddress)
	assert.True(t, snap.Polling)
	assert.Equal(t, 1, h.statuses.Calls(), "first check is immediate")
	assert.Equal(t, "0xdeposit/memo-1", h.statuses.addrs[0])

	before := len(h.Transitions())

	h.clock.Advance(3 * time.Second)
	assert.Equal(t, StateAwaitingDeposit, h.ctrl.Snapshot().State)
	h.clock.Advance(3 * time.Second)
	assert.Equal(t, StateProcessing, h.ctrl.Snapshot().State)
	h.clock.Advance(3 * time.Second)

	snap = h.ctrl.Snapshot()
	assert.Equal(t, StateSuccess, snap.State)
	assert.False(t, snap.Polling)
	assert.Equal(t, intents.StatusSuccess, snap.Status.Status)
	assert.Equal(t, 4, h.statuses.Calls())

	assert.Equal(t, []string{
		"awaiting_deposit->processing",
		"processing->success",
	}, h.Transitions()[before:])

	assert.Equal(t, []SuccessResult{{TxHash: "0xdest", Amount: "990000"}}, h.Successes())

	h.clock.Advance(time.Minute)
	assert.Equal(t, 4, h.statuses.Calls())
	assert.Len(t, h.Successes(), 1)

	receipts := h.receipts.All()
	require.Len(t, receipts, 1)
	assert.Equal(t, receipt.StatusSuccess, receipts[0].Status)
	assert.Equal(t, "0xdest", receipts[0].TxHash)
	assert.Equal(t, "0xdeposit", receipts[0].DepositAddress)
	assert.Equal(t, snap.FlowID, receipts[0].FlowID)
	assert.Equal(t, "eth", receipts[0].OriginChain)
}

func TestSuccessWithoutDestinationHash(t *testing.T) {
	h := newHarness(t)
	h.statuses.replies = []statusReply{{status: intents.StatusSuccess}}
	h.selectPayment(t, "1")

	require.NoError(t, h.ctrl.Confirm())
	h.clock.Advance(time.Minute)

	assert.Equal(t, []SuccessResult{{TxHash: "", Amount: "990000"}}, h.Successes())
	assert.Equal(t, 1, h.statuses.Calls())

	// Polling cannot restart once settled
	h.ctrl.StartPolling()
	h.clock.Advance(time.Minute)
	assert.Equal(t, 1, h.statuses.Calls())
	assert.Len(t, h.Successes(), 1)
}

func TestFailedStatusEndsFlow(t *testing.T) {
	h := newHarness(t)
	h.statuses.replies = []statusReply{
		{status: intents.StatusPendingDeposit},
		{status: intents.StatusFailed},
	}
	h.selectPayment(t, "1")
	require.NoError(t, h.ctrl.Confirm())

	h.clock.Advance(3 * time.Second)

	snap := h.ctrl.Snapshot()
	assert.Equal(t, StateError, snap.State)
	assert.ErrorIs(t, snap.Err, ErrPaymentFailed)
	assert.False(t, snap.Polling)

	errs := h.Errors()
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], ErrPaymentFailed)
	assert.Empty(t, h.Successes())

	receipts := h.receipts.All()
	require.Len(t, receipts, 1)
	assert.Equal(t, receipt.StatusFailed, receipts[0].Status)
	assert.NotEmpty(t, receipts[0].Error)

	h.clock.Advance(time.Minute)
	assert.Equal(t, 2, h.statuses.Calls())
}

func TestRefundedIsRecordedWithoutTransition(t *testing.T) {
	h := newHarness(t)
	h.statuses.replies = []statusReply{{status: intents.StatusRefunded}}
	h.selectPayment(t, "1")
	require.NoError(t, h.ctrl.Confirm())

	snap := h.ctrl.Snapshot()
	assert.Equal(t, StateAwaitingDeposit, snap.State)
	assert.Equal(t, intents.StatusRefunded, snap.Status.Status)
	assert.True(t, snap.Status.IsComplete)
	assert.Empty(t, h.Errors())
}

func TestStatusErrorsAreSwallowed(t *testing.T) {
	h := newHarness(t)
	h.statuses.replies = []statusReply{
		{err: errors.New("connection reset")},
		{status: intents.StatusProcessing},
	}
	h.selectPayment(t, "1")
	require.NoError(t, h.ctrl.Confirm())

	snap := h.ctrl.Snapshot()
	assert.Equal(t, StateAwaitingDeposit, snap.State)
	assert.NoError(t, snap.Err)
	assert.True(t, snap.Polling)

	h.clock.Advance(3 * time.Second)
	assert.Equal(t, StateProcessing, h.ctrl.Snapshot().State)
	assert.Empty(t, h.Errors())
}

func TestBindingQuoteFailure(t *testing.T) {
	h := newHarness(t)
	h.quotes.bindingErr = &intents.QuoteError{Op: "quote", HTTPStatus: 400, Body: "amount too low"}
	h.selectPayment(t, "0.0001")

	require.NoError(t, h.ctrl.Confirm())

	snap := h.ctrl.Snapshot()
	assert.Equal(t, StateError, snap.State)
	assert.Nil(t, snap.Quote)
	apiErr, ok := intents.IsAPIError(snap.Err)
	require.True(t, ok)
	assert.Equal(t, 400, apiErr.HTTPStatus)
	assert.Len(t, h.Errors(), 1)
	assert.Zero(t, h.statuses.Calls())
	assert.Empty(t, h.receipts.All())

	assert.ErrorIs(t, h.ctrl.Confirm(), ErrInvalidTransition)
	assert.ErrorIs(t, h.ctrl.SetAmount("1"), ErrInvalidTransition)

	h.ctrl.Reset()
	assert.Equal(t, StateIdle, h.ctrl.Snapshot().State)
	assert.NoError(t, h.ctrl.Snapshot().Err)
}

func TestBindingQuoteWithoutDepositAddress(t *testing.T) {
	h := newHarness(t)
	h.quotes.noAddress = true
	h.selectPayment(t, "1")

	require.NoError(t, h.ctrl.Confirm())

	snap := h.ctrl.Snapshot()
	assert.Equal(t, StateError, snap.State)
	assert.ErrorIs(t, snap.Err, ErrNoDepositAddress)
}

func TestQuotingNeverStuck(t *testing.T) {
	for _, fail := range []bool{false, true} {
		t.Run(fmt.Sprintf("fail=%v", fail), func(t *testing.T) {
			h := newHarness(t)
			if fail {
				h.quotes.bindingErr = errors.New("network down")
			}
			h.selectPayment(t, "1")
			require.NoError(t, h.ctrl.Confirm())

			assert.NotEqual(t, StateQuoting, h.ctrl.Snapshot().State)
		})
	}
}

func TestSelectionRejectedAfterConfirm(t *testing.T) {
	h := newHarness(t)
	h.selectPayment(t, "1")
	require.NoError(t, h.ctrl.Confirm())

	assert.ErrorIs(t, h.ctrl.SetAmount("2"), ErrInvalidTransition)
	assert.ErrorIs(t, h.ctrl.SelectChain("arb"), ErrInvalidTransition)
	assert.ErrorIs(t, h.ctrl.SelectToken("ethETH"), ErrInvalidTransition)
	assert.ErrorIs(t, h.ctrl.Confirm(), ErrInvalidTransition)
	assert.Equal(t, "1", h.ctrl.Snapshot().Amount)
}

func TestStartPollingTwiceKeepsOneLoop(t *testing.T) {
	h := newHarness(t)
	h.selectPayment(t, "1")
	require.NoError(t, h.ctrl.Confirm())
	require.Equal(t, 1, h.statuses.Calls())

	h.ctrl.StartPolling()
	h.ctrl.StartPolling()
	assert.Equal(t, 1, h.statuses.Calls())

	h.clock.Advance(3 * time.Second)
	assert.Equal(t, 2, h.statuses.Calls())
	h.clock.Advance(3 * time.Second)
	assert.Equal(t, 3, h.statuses.Calls())
}

func TestStopPolling(t *testing.T) {
	h := newHarness(t)

	// No-op without an active loop
	h.ctrl.StopPolling()
	h.ctrl.StartPolling()
	assert.Zero(t, h.clock.Pending())
	assert.Zero(t, h.statuses.Calls())

	h.selectPayment(t, "1")
	require.NoError(t, h.ctrl.Confirm())
	require.Equal(t, 1, h.statuses.Calls())

	h.ctrl.StopPolling()
	h.ctrl.StopPolling()
	h.clock.Advance(time.Minute)
	assert.Equal(t, 1, h.statuses.Calls())
	assert.False(t, h.ctrl.Snapshot().Polling)

	h.ctrl.StartPolling()
	assert.Equal(t, 2, h.statuses.Calls())
	assert.True(t, h.ctrl.Snapshot().Polling)
}

func TestStaleStatusAfterStopIsIgnored(t *testing.T) {
	h := newHarness(t)
	h.statuses.replies = []statusReply{
		{status: intents.StatusPendingDeposit},
		{status: intents.StatusSuccess},
	}
	h.selectPayment(t, "1")
	require.NoError(t, h.ctrl.Confirm())

	h.spawner.Hold()
	h.clock.Advance(3 * time.Second)
	h.ctrl.StopPolling()
	h.spawner.Release()

	assert.Equal(t, 2, h.statuses.Calls())
	assert.Equal(t, StateAwaitingDeposit, h.ctrl.Snapshot().State)
	assert.Empty(t, h.Successes())
}

func TestResetCancelsTimersAndRequests(t *testing.T) {
	h := newHarness(t)
	h.selectPayment(t, "1")
	require.True(t, h.ctrl.Snapshot().LoadingPreview)
	flowID := h.ctrl.Snapshot().FlowID

	h.ctrl.Reset()

	snap := h.ctrl.Snapshot()
	assert.Equal(t, StateIdle, snap.State)
	assert.Empty(t, snap.Amount)
	assert.Nil(t, snap.SelectedChain)
	assert.Nil(t, snap.SelectedToken)
	assert.False(t, snap.LoadingPreview)
	assert.NotEqual(t, flowID, snap.FlowID)
	assert.Equal(t, testRefund, snap.RefundAddress)
	assert.Zero(t, h.clock.Pending())

	h.clock.Advance(time.Minute)
	assert.Empty(t, h.quotes.Calls(true))
}

func TestResetStopsPolling(t *testing.T) {
	h := newHarness(t)
	h.selectPayment(t, "1")
	require.NoError(t, h.ctrl.Confirm())
	require.Equal(t, 1, h.statuses.Calls())

	h.ctrl.Reset()
	assert.Zero(t, h.clock.Pending())

	h.clock.Advance(time.Minute)
	assert.Equal(t, 1, h.statuses.Calls())
	assert.Nil(t, h.ctrl.Snapshot().Quote)
}

func TestQuoteFromPreviousFlowIsDiscarded(t *testing.T) {
	h := newHarness(t)
	h.selectPayment(t, "1")

	h.spawner.Hold()
	require.NoError(t, h.ctrl.Confirm())
	assert.Equal(t, StateQuoting, h.ctrl.Snapshot().State)

	h.ctrl.Reset()
	h.spawner.Release()

	snap := h.ctrl.Snapshot()
	assert.Len(t, h.quotes.Calls(false), 1)
	assert.Equal(t, StateIdle, snap.State)
	assert.Nil(t, snap.Quote)
	assert.Zero(t, h.statuses.Calls())
	assert.Empty(t, h.Errors())
}

func TestSuccessCanFireAgainInNewFlow(t *testing.T) {
	h := newHarness(t)
	h.statuses.replies = []statusReply{{status: intents.StatusSuccess, hashes: []string{"0xa"}}}

	h.selectPayment(t, "1")
	require.NoError(t, h.ctrl.Confirm())
	h.ctrl.Reset()
	h.selectPayment(t, "2")
	require.NoError(t, h.ctrl.Confirm())

	assert.Len(t, h.Successes(), 2)
	assert.Len(t, h.receipts.All(), 2)
}

func TestSubmitDepositTx(t *testing.T) {
	h := newHarness(t)

	assert.ErrorIs(t, h.ctrl.SubmitDepositTx(t.Context(), "0xhash"), ErrNoQuote)

	h.selectPayment(t, "1")
	require.NoError(t, h.ctrl.Confirm())
	require.NoError(t, h.ctrl.SubmitDepositTx(t.Context(), "0xhash"))
	assert.Equal(t, []string{"0xdeposit/0xhash/memo-1"}, h.quotes.submitted)
}

func TestSubscribe(t *testing.T) {
	h := newHarness(t)
	ch, cancel := h.ctrl.Subscribe()

	first := <-ch
	assert.Equal(t, StateIdle, first.State)

	require.NoError(t, h.ctrl.SelectChain("eth"))
	require.NoError(t, h.ctrl.SetAmount("3"))

	// Only the latest snapshot is kept
	latest := <-ch
	assert.Equal(t, StateSelecting, latest.State)
	assert.Equal(t, "3", latest.Amount)
	select {
	case <-ch:
		t.Fatal("expected no buffered snapshot")
	default:
	}

	cancel()
	cancel()
	_, ok := <-ch
	assert.False(t, ok)
}

func TestCloseStopsEverything(t *testing.T) {
	h := newHarness(t)
	ch, _ := h.ctrl.Subscribe()
	<-ch

	h.selectPayment(t, "1")
	require.NoError(t, h.ctrl.Confirm())

	h.ctrl.Close()
	h.ctrl.Close()

	assert.Zero(t, h.clock.Pending())
	assert.ErrorIs(t, h.ctrl.SelectChain("eth"), ErrClosed)
	assert.ErrorIs(t, h.ctrl.Confirm(), ErrClosed)

	calls := h.statuses.Calls()
	h.clock.Advance(time.Minute)
	assert.Equal(t, calls, h.statuses.Calls())

	for range ch {
	}
}
