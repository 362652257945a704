package intents

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	oneclick "github.com/defuse-protocol/one-click-sdk-go"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"near-pay/pkg/logging"
	"near-pay/pkg/metrics"
	"near-pay/pkg/units"
)

const (
	DefaultBaseURL         = "https://1click.chaindefuser.com"
	DefaultReferral        = "near-pay"
	DefaultSlippageBps     = 100
	DefaultDeadlineHorizon = time.Hour
)

// QuoteClient requests swap quotes
type QuoteClient interface {
	GetQuote(ctx context.Context, opts QuoteOptions) (*QuoteResult, error)
}

// StatusClient looks up the settlement status of a deposit address
type StatusClient interface {
	GetStatus(ctx context.Context, depositAddress, memo string) (*StatusResult, error)
}

// Config carries everything the client needs; nothing is read from process state
type Config struct {
	APIKey             string
	BaseURL            string
	Referral           string
	DefaultSlippageBps int
	DeadlineHorizon    time.Duration
}

// Client talks to the 1Click API through the generated SDK
type Client struct {
	api     *oneclick.APIClient
	cfg     Config
	logger  *zap.Logger
	metrics metrics.Recorder
	now     func() time.Time
}

// ClientOption customizes a Client
type ClientOption func(*Client, *oneclick.Configuration)

// WithHTTPClient sets the HTTP client used for API calls
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(_ *Client, conf *oneclick.Configuration) {
		conf.HTTPClient = hc
	}
}

// WithLogger sets the client logger
func WithLogger(l *zap.Logger) ClientOption {
	return func(c *Client, _ *oneclick.Configuration) {
		c.logger = logging.OrNop(l).Named("intents")
	}
}

// WithMetrics sets the metrics recorder
func WithMetrics(r metrics.Recorder) ClientOption {
	return func(c *Client, _ *oneclick.Configuration) {
		c.metrics = metrics.OrNoop(r)
	}
}

// WithClock overrides the time source used for default deadlines
func WithClock(now func() time.Time) ClientOption {
	return func(c *Client, _ *oneclick.Configuration) {
		c.now = now
	}
}

var validate = validator.New()

// NewClient creates a new 1Click API client
func NewClient(cfg Config, opts ...ClientOption) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Referral == "" {
		cfg.Referral = DefaultReferral
	}
	if cfg.DefaultSlippageBps <= 0 {
		cfg.DefaultSlippageBps = DefaultSlippageBps
	}
	if cfg.DeadlineHorizon <= 0 {
		cfg.DeadlineHorizon = DefaultDeadlineHorizon
	}

	conf := oneclick.NewConfiguration()
	conf.Servers = oneclick.ServerConfigurations{{URL: cfg.BaseURL}}

	c := &Client{
		cfg:     cfg,
		logger:  zap.NewNop(),
		metrics: metrics.NoopRecorder{},
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c, conf)
	}

	hc := conf.HTTPClient
	if hc == nil {
		hc = http.DefaultClient
	}
	wrapped := *hc
	wrapped.Transport = newExtrasTransport(hc.Transport)
	conf.HTTPClient = &wrapped

	c.api = oneclick.NewAPIClient(conf)
	return c, nil
}

// authorize attaches the bearer token to ctx
func (c *Client) authorize(ctx context.Context) context.Context {
	return context.WithValue(ctx, oneclick.ContextAccessToken, c.cfg.APIKey)
}

// buildQuoteRequest applies defaults and converts the amount to smallest units
func (c *Client) buildQuoteRequest(opts QuoteOptions) (*oneclick.QuoteRequest, error) {
	if err := validate.Struct(opts); err != nil {
		return nil, fmt.Errorf("invalid quote options: %w", err)
	}
	if opts.OriginToken.AssetID == "" {
		return nil, fmt.Errorf("origin token is required")
	}
	if opts.DestinationToken.AssetID == "" {
		return nil, fmt.Errorf("destination token is required")
	}

	slippage := opts.SlippageBps
	if slippage == 0 {
		slippage = c.cfg.DefaultSlippageBps
	}
	swapType := opts.SwapType
	if swapType == "" {
		swapType = SwapExactInput
	}
	deadline := opts.Deadline
	if deadline.IsZero() {
		deadline = units.GenerateDeadline(c.now(), c.cfg.DeadlineHorizon)
	}
	referral := opts.Referral
	if referral == "" {
		referral = c.cfg.Referral
	}

	amount := units.ToSmallestUnits(opts.Amount, opts.OriginToken.Decimals)

	req := oneclick.NewQuoteRequest(
		opts.Dry,                      // dry - true for a preview without a deposit address
		string(swapType),              // swapType
		float32(slippage),             // slippageTolerance in basis points
		opts.OriginToken.AssetID,      // originAsset
		"ORIGIN_CHAIN",                // depositType
		opts.DestinationToken.AssetID, // destinationAsset
		amount,                        // amount in smallest unit
		opts.RefundTo,                 // refundTo
		"ORIGIN_CHAIN",                // refundType
		opts.Recipient,                // recipient
		"DESTINATION_CHAIN",           // recipientType
		deadline,                      // deadline
	)
	req.SetReferral(referral)

	return req, nil
}

// GetQuote requests a quote; opts.Dry selects a non-binding preview
func (c *Client) GetQuote(ctx context.Context, opts QuoteOptions) (*QuoteResult, error) {
	req, err := c.buildQuoteRequest(opts)
	if err != nil {
		return nil, err
	}

	extras := &callExtras{}
	ctx = withCallExtras(c.authorize(ctx), extras)

	started := c.now()
	resp, httpResp, err := c.api.OneClickAPI.GetQuote(ctx).QuoteRequest(*req).Execute()
	if err != nil {
		c.observe(metrics.OperationGetQuote, started, "error")
		return nil, c.requestError("quote", httpResp, err)
	}
	defer httpResp.Body.Close()
	c.observe(metrics.OperationGetQuote, started, "ok")

	if resp == nil {
		return nil, fmt.Errorf("empty quote response")
	}

	quote := resp.GetQuote()
	result := &QuoteResult{
		DepositAddress:     quote.GetDepositAddress(),
		Memo:               quote.GetDepositMemo(),
		AmountIn:           quote.GetAmountIn(),
		AmountInFormatted:  quote.GetAmountInFormatted(),
		AmountOut:          quote.GetAmountOut(),
		AmountOutFormatted: quote.GetAmountOutFormatted(),
		AmountOutUSD:       quote.GetAmountOutUsd(),
		Deadline:           req.GetDeadline(),
		TimeEstimate:       time.Duration(float64(quote.GetTimeEstimate()) * float64(time.Second)),
		CorrelationID:      extras.correlationID,
		Dry:                opts.Dry,
	}

	c.logger.Debug("Quote received",
		zap.Bool("dry", opts.Dry),
		zap.String("origin_asset", opts.OriginToken.AssetID),
		zap.String("amount_out", result.AmountOutFormatted),
		zap.String("correlation_id", result.CorrelationID))

	return result, nil
}

// GetStatus checks the execution status of a swap
func (c *Client) GetStatus(ctx context.Context, depositAddress, memo string) (*StatusResult, error) {
	extras := &callExtras{memo: memo}
	ctx = withCallExtras(c.authorize(ctx), extras)

	started := c.now()
	resp, httpResp, err := c.api.OneClickAPI.GetExecutionStatus(ctx).DepositAddress(depositAddress).Execute()
	if err != nil {
		c.observe(metrics.OperationGetStatus, started, "error")
		return nil, c.requestError("status check", httpResp, err)
	}
	defer httpResp.Body.Close()
	c.observe(metrics.OperationGetStatus, started, "ok")

	if resp == nil {
		return nil, fmt.Errorf("empty status response")
	}

	result := NewStatusResult(ExecutionStatus(resp.GetStatus()))
	result.CorrelationID = extras.correlationID
	result.UpdatedAt = resp.GetUpdatedAt()

	swapDetails := resp.GetSwapDetails()
	for _, tx := range swapDetails.GetOriginChainTxHashes() {
		if hash := tx.GetHash(); hash != "" {
			result.OriginTxHashes = append(result.OriginTxHashes, hash)
		}
	}
	for _, tx := range swapDetails.GetDestinationChainTxHashes() {
		if hash := tx.GetHash(); hash != "" {
			result.DestinationTxHashes = append(result.DestinationTxHashes, hash)
		}
	}
	if swapDetails.HasAmountOutFormatted() {
		result.AmountOutFormatted = swapDetails.GetAmountOutFormatted()
	}

	return result, nil
}

// SubmitDepositTx tells the service about the deposit transaction to speed up processing
func (c *Client) SubmitDepositTx(ctx context.Context, depositAddress, txHash, memo string) error {
	req := oneclick.NewSubmitDepositTxRequest(txHash, depositAddress)
	ctx = withCallExtras(c.authorize(ctx), &callExtras{memo: memo})

	_, httpResp, err := c.api.OneClickAPI.SubmitDepositTx(ctx).SubmitDepositTxRequest(*req).Execute()
	if err != nil {
		return c.requestError("submit deposit", httpResp, err)
	}
	defer httpResp.Body.Close()

	return nil
}

// SupportedTokens retrieves the live token list
func (c *Client) SupportedTokens(ctx context.Context) ([]RemoteToken, error) {
	resp, httpResp, err := c.api.OneClickAPI.GetTokens(c.authorize(ctx)).Execute()
	if err != nil {
		return nil, c.requestError("get tokens", httpResp, err)
	}
	defer httpResp.Body.Close()

	tokens := make([]RemoteToken, 0, len(resp))
	for _, t := range resp {
		tokens = append(tokens, RemoteToken{
			AssetID:         t.GetAssetId(),
			Symbol:          t.GetSymbol(),
			Blockchain:      string(t.GetBlockchain()),
			Decimals:        int(t.GetDecimals()),
			ContractAddress: t.GetContractAddress(),
			PriceUSD:        float64(t.GetPrice()),
		})
	}

	return tokens, nil
}

// requestError turns an SDK failure into an APIError when the server answered,
// or wraps the transport error otherwise
func (c *Client) requestError(op string, httpResp *http.Response, err error) error {
	if httpResp == nil {
		return fmt.Errorf("failed to %s: %w", op, err)
	}
	defer httpResp.Body.Close()

	apiErr := &APIError{Op: op, HTTPStatus: httpResp.StatusCode}

	bodyBytes, readErr := io.ReadAll(httpResp.Body)
	if readErr == nil && len(bodyBytes) > 0 {
		apiErr.Body = string(bodyBytes)

		var errorResp map[string]interface{}
		if jsonErr := json.Unmarshal(bodyBytes, &errorResp); jsonErr == nil {
			if message, ok := errorResp["message"].(string); ok {
				apiErr.Message = message
			}
		}
	} else {
		apiErr.Body = err.Error()
	}

	c.logger.Debug("Intents API error",
		zap.String("op", op),
		zap.Int("status", apiErr.HTTPStatus),
		zap.String("body", apiErr.Body))

	return apiErr
}

func (c *Client) observe(op string, started time.Time, outcome string) {
	c.metrics.ObserveLatency(op, c.now().Sub(started), map[string]string{"outcome": outcome})
}
