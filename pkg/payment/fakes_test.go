package payment

import (
	"context"
	"sync"
	"time"

	"near-pay/pkg/intents"
	"near-pay/pkg/receipt"
)

type fakeTimer struct {
	clock   *fakeClock
	at      time.Time
	f       func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()

	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// fakeClock fires due callbacks synchronously from Advance
type fakeClock struct {
	mu     sync.Mutex
	now    time.Time
	timers []*fakeTimer
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := &fakeTimer{clock: c, at: c.now.Add(d), f: f}
	c.timers = append(c.timers, t)
	return t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now.Add(d)
	for {
		var next *fakeTimer
		for _, t := range c.timers {
			if t.stopped || t.fired || t.at.After(target) {
				continue
			}
			if next == nil || t.at.Before(next.at) {
				next = t
			}
		}
		if next == nil {
			break
		}
		c.now = next.at
		next.fired = true
		c.mu.Unlock()
		next.f()
		c.mu.Lock()
	}
	c.now = target
	c.mu.Unlock()
}

// Pending counts timers that have neither fired nor been stopped
func (c *fakeClock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for _, t := range c.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

// spawner runs work inline, or queues it while held
type spawner struct {
	mu     sync.Mutex
	hold   bool
	queued []func()
}

func (s *spawner) Spawn(f func()) {
	s.mu.Lock()
	if s.hold {
		s.queued = append(s.queued, f)
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()
	f()
}

func (s *spawner) Hold() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hold = true
}

// Release stops holding and runs everything queued so far
func (s *spawner) Release() {
	s.mu.Lock()
	queued := s.queued
	s.queued = nil
	s.hold = false
	s.mu.Unlock()

	for _, f := range queued {
		f()
	}
}

type quoteCall struct {
	at   time.Time
	opts intents.QuoteOptions
}

type fakeQuotes struct {
	clock *fakeClock

	mu         sync.Mutex
	calls      []quoteCall
	previewErr error
	bindingErr error
	noAddress  bool
	submitted  []string
}

func (q *fakeQuotes) GetQuote(ctx context.Context, opts intents.QuoteOptions) (*intents.QuoteResult, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.calls = append(q.calls, quoteCall{at: q.clock.Now(), opts: opts})
	if opts.Dry && q.previewErr != nil {
		return nil, q.previewErr
	}
	if !opts.Dry && q.bindingErr != nil {
		return nil, q.bindingErr
	}

	result := &intents.QuoteResult{
		AmountIn:           "1000000",
		AmountInFormatted:  opts.Amount,
		AmountOut:          "990000",
		AmountOutFormatted: "0.99",
		CorrelationID:      "corr-" + opts.Amount,
		Dry:                opts.Dry,
	}
	if !opts.Dry && !q.noAddress {
		result.DepositAddress = "0xdeposit"
		result.Memo = "memo-1"
	}
	return result, nil
}

func (q *fakeQuotes) SubmitDepositTx(ctx context.Context, depositAddress, txHash, memo string) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.submitted = append(q.submitted, depositAddress+"/"+txHash+"/"+memo)
	return nil
}

func (q *fakeQuotes) Calls(dry bool) []quoteCall {
	q.mu.Lock()
	defer q.mu.Unlock()

	var out []quoteCall
	for _, c := range q.calls {
		if c.opts.Dry == dry {
			out = append(out, c)
		}
	}
	return out
}

type statusReply struct {
	status intents.ExecutionStatus
	hashes []string
	err    error
}

// fakeStatuses replays scripted replies, repeating the last one
type fakeStatuses struct {
	mu      sync.Mutex
	replies []statusReply
	calls   int
	addrs   []string
}

func (s *fakeStatuses) GetStatus(ctx context.Context, depositAddress, memo string) (*intents.StatusResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls++
	s.addrs = append(s.addrs, depositAddress+"/"+memo)
	if len(s.replies) == 0 {
		return intents.NewStatusResult(intents.StatusPendingDeposit), nil
	}
	i := s.calls - 1
	if i >= len(s.replies) {
		i = len(s.replies) - 1
	}
	r := s.replies[i]
	if r.err != nil {
		return nil, r.err
	}
	result := intents.NewStatusResult(r.status)
	result.DestinationTxHashes = r.hashes
	return result, nil
}

func (s *fakeStatuses) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

type memReceipts struct {
	mu       sync.Mutex
	receipts []*receipt.Receipt
}

func (m *memReceipts) Save(r *receipt.Receipt) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.receipts = append(m.receipts, r)
	return nil
}

func (m *memReceipts) All() []*receipt.Receipt {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*receipt.Receipt(nil), m.receipts...)
}
