package intents

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
)

// callExtras carries request fields the generated SDK has no setters for,
// and collects response fields its models do not declare.
type callExtras struct {
	memo          string
	correlationID string
}

type callExtrasKey struct{}

func withCallExtras(ctx context.Context, x *callExtras) context.Context {
	return context.WithValue(ctx, callExtrasKey{}, x)
}

func callExtrasFrom(ctx context.Context) *callExtras {
	x, _ := ctx.Value(callExtrasKey{}).(*callExtras)
	return x
}

// extrasTransport adds the deposit memo to outgoing requests (query parameter
// on GET, body field on POST) and lifts correlationId out of successful JSON
// responses. The SDK models reject unknown fields, so the id must be removed
// before the SDK decodes the body.
type extrasTransport struct {
	base http.RoundTripper
}

func newExtrasTransport(base http.RoundTripper) *extrasTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &extrasTransport{base: base}
}

func (t *extrasTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	x := callExtrasFrom(req.Context())
	if x == nil {
		return t.base.RoundTrip(req)
	}

	if x.memo != "" {
		var err error
		if req, err = withMemo(req, x.memo); err != nil {
			return nil, err
		}
	}

	resp, err := t.base.RoundTrip(req)
	if err != nil || resp.StatusCode >= 300 || resp.Body == nil {
		return resp, err
	}

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, err
	}

	if id, stripped, ok := stripCorrelationID(body); ok {
		x.correlationID = id
		body = stripped
		resp.Header.Del("Content-Length")
	}
	resp.Body = io.NopCloser(bytes.NewReader(body))
	resp.ContentLength = int64(len(body))

	return resp, nil
}

func withMemo(req *http.Request, memo string) (*http.Request, error) {
	req = req.Clone(req.Context())

	switch req.Method {
	case http.MethodGet:
		q := req.URL.Query()
		q.Set("depositMemo", memo)
		req.URL.RawQuery = q.Encode()
	case http.MethodPost:
		if req.Body == nil {
			return req, nil
		}
		raw, err := io.ReadAll(req.Body)
		req.Body.Close()
		if err != nil {
			return nil, err
		}

		var fields map[string]json.RawMessage
		if err := json.Unmarshal(raw, &fields); err == nil && fields != nil {
			fields["memo"], _ = json.Marshal(memo)
			if encoded, err := json.Marshal(fields); err == nil {
				raw = encoded
			}
		}

		req.Body = io.NopCloser(bytes.NewReader(raw))
		req.GetBody = func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(raw)), nil
		}
		req.ContentLength = int64(len(raw))
	}

	return req, nil
}

// stripCorrelationID removes correlationId from the top level of body and
// from a nested quoteResponse, returning the top-level value when present
// (or the nested one otherwise).
func stripCorrelationID(body []byte) (string, []byte, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil || fields == nil {
		return "", body, false
	}

	id, found := popString(fields, "correlationId")

	if nested, ok := fields["quoteResponse"]; ok {
		var inner map[string]json.RawMessage
		if err := json.Unmarshal(nested, &inner); err == nil && inner != nil {
			if innerID, ok := popString(inner, "correlationId"); ok {
				if !found {
					id, found = innerID, true
				}
				if encoded, err := json.Marshal(inner); err == nil {
					fields["quoteResponse"] = encoded
				}
			}
		}
	}

	if !found {
		return "", body, false
	}

	encoded, err := json.Marshal(fields)
	if err != nil {
		return "", body, false
	}
	return id, encoded, true
}

func popString(fields map[string]json.RawMessage, key string) (string, bool) {
	raw, ok := fields[key]
	if !ok {
		return "", false
	}
	delete(fields, key)

	var s string
	_ = json.Unmarshal(raw, &s)
	return s, true
}
