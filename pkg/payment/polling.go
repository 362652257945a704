package payment

import (
	"errors"

	"go.uber.org/zap"

	"near-pay/pkg/intents"
	"near-pay/pkg/metrics"
	"near-pay/pkg/receipt"
)

// StartPolling begins status polling for the binding quote. It is a no-op
// when polling is already active, there is no quote, or the flow is neither
// awaiting a deposit nor processing.
func (c *Controller) StartPolling() {
	c.mu.Lock()
	defer c.unlock()

	c.startPollingLocked()
}

// StopPolling halts polling; in-flight responses are ignored. Safe to call
// at any time.
func (c *Controller) StopPolling() {
	c.mu.Lock()
	defer c.unlock()

	c.stopPollingLocked()
}

func (c *Controller) startPollingLocked() {
	if c.closed || c.polling || c.quote == nil {
		return
	}
	if c.state != StateAwaitingDeposit && c.state != StateProcessing {
		return
	}

	c.polling = true
	c.pollSeq++
	gen, seq := c.generation, c.pollSeq

	c.logger.Debug("Polling started",
		zap.String("flow_id", c.flowID),
		zap.String("deposit_address", c.quote.DepositAddress))

	// First check runs immediately
	c.after(func() { c.pollTick(gen, seq) })
}

func (c *Controller) stopPollingLocked() {
	if c.pollTimer != nil {
		c.pollTimer.Stop()
		c.pollTimer = nil
	}
	if c.polling {
		c.logger.Debug("Polling stopped", zap.String("flow_id", c.flowID))
	}
	c.polling = false
	c.pollSeq++
}

func (c *Controller) isCurrentPollLocked(gen, seq uint64) bool {
	return !c.closed && c.polling && gen == c.generation && seq == c.pollSeq
}

// pollTick schedules the next tick before issuing the request, so ticks are
// spaced on wall-clock time regardless of response latency
func (c *Controller) pollTick(gen, seq uint64) {
	c.mu.Lock()
	defer c.unlock()

	if !c.isCurrentPollLocked(gen, seq) {
		return
	}

	c.pollTimer = c.clock.AfterFunc(c.opts.PollInterval, func() { c.pollTick(gen, seq) })

	ctx := c.flowCtx
	addr, memo := c.quote.DepositAddress, c.quote.Memo
	c.after(func() {
		c.spawn(func() {
			status, err := c.statuses.GetStatus(ctx, addr, memo)
			c.handleStatus(gen, seq, status, err)
		})
	})
}

func (c *Controller) handleStatus(gen, seq uint64, status *intents.StatusResult, err error) {
	c.mu.Lock()
	defer c.unlock()

	if !c.isCurrentPollLocked(gen, seq) {
		return
	}

	if err == nil && status == nil {
		err = errors.New("empty status response")
	}
	if err != nil {
		c.metrics.IncCounter(metrics.EventPollError, nil)
		c.logger.Warn("Status check failed", zap.String("flow_id", c.flowID), zap.Error(err))
		return
	}
	c.metrics.IncCounter(metrics.EventPoll, map[string]string{"outcome": string(status.Status)})

	c.status = status
	if status.Status == c.lastStatus {
		return
	}
	c.lastStatus = status.Status

	c.logger.Info("Payment status changed",
		zap.String("flow_id", c.flowID),
		zap.String("deposit_address", c.quote.DepositAddress),
		zap.String("status", string(status.Status)))

	switch status.Status {
	case intents.StatusProcessing:
		c.setStateLocked(StateProcessing)

	case intents.StatusSuccess:
		c.stopPollingLocked()
		c.setStateLocked(StateSuccess)
		if c.successFired {
			return
		}
		c.successFired = true

		result := SuccessResult{TxHash: status.FirstDestinationTx(), Amount: c.quote.AmountOut}
		c.recordLocked(receipt.StatusSuccess, result.TxHash, nil)
		if cb := c.opts.OnSuccess; cb != nil {
			c.after(func() { cb(result) })
		}

	case intents.StatusFailed:
		c.stopPollingLocked()
		c.recordLocked(receipt.StatusFailed, status.FirstDestinationTx(), ErrPaymentFailed)
		c.failLocked(ErrPaymentFailed)
	}
}
