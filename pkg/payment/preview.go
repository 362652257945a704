package payment

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"near-pay/pkg/intents"
	"near-pay/pkg/metrics"
)

// schedulePreviewLocked cancels any pending preview, clears the current one
// and, when the selection is complete, schedules a dry-run quote after the
// quiet period.
func (c *Controller) schedulePreviewLocked() {
	c.cancelPreviewLocked()
	c.preview = nil

	if c.amount == "" || c.selectedToken == nil || c.refundAddress == "" {
		c.loadingPreview = false
		return
	}

	c.loadingPreview = true
	gen, seq := c.generation, c.previewSeq
	c.previewTimer = c.clock.AfterFunc(c.opts.DebounceInterval, func() {
		c.firePreview(gen, seq)
	})
}

// cancelPreviewLocked stops the pending timer and aborts any in-flight preview
func (c *Controller) cancelPreviewLocked() {
	if c.previewTimer != nil {
		c.previewTimer.Stop()
		c.previewTimer = nil
	}
	if c.previewCancel != nil {
		c.previewCancel()
		c.previewCancel = nil
	}
	c.previewSeq++
}

func (c *Controller) isCurrentPreviewLocked(gen, seq uint64) bool {
	return !c.closed && gen == c.generation && seq == c.previewSeq
}

func (c *Controller) firePreview(gen, seq uint64) {
	c.mu.Lock()
	defer c.unlock()

	if !c.isCurrentPreviewLocked(gen, seq) {
		return
	}
	c.previewTimer = nil

	ctx, cancel := context.WithCancel(c.flowCtx)
	c.previewCancel = cancel
	opts := c.quoteOptionsLocked(true)

	c.logger.Debug("Requesting preview quote",
		zap.String("flow_id", c.flowID),
		zap.String("origin_asset", opts.OriginToken.AssetID),
		zap.String("amount", opts.Amount))

	c.after(func() {
		c.spawn(func() {
			result, err := c.quotes.GetQuote(ctx, opts)
			c.finishPreview(gen, seq, result, err)
		})
	})
}

func (c *Controller) finishPreview(gen, seq uint64, result *intents.QuoteResult, err error) {
	c.mu.Lock()
	defer c.unlock()

	if !c.isCurrentPreviewLocked(gen, seq) {
		return
	}
	if c.previewCancel != nil {
		c.previewCancel()
		c.previewCancel = nil
	}
	c.loadingPreview = false

	if err == nil && result == nil {
		err = errors.New("empty preview response")
	}
	if err != nil {
		c.metrics.IncCounter(metrics.EventPreview, map[string]string{"outcome": "error"})
		c.logger.Warn("Preview quote failed", zap.String("flow_id", c.flowID), zap.Error(err))
		return
	}

	c.metrics.IncCounter(metrics.EventPreview, map[string]string{"outcome": "ok"})
	c.preview = newPreviewQuote(result)
}
