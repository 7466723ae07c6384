package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/url"
	"strconv"
)

// call describes one validated API operation.
type call struct {
	method string
	path   string
	query  url.Values

	body        any       // JSON body; shape-checked when non-nil
	rawBody     io.Reader // pre-encoded body (multipart uploads)
	contentType string

	out         any // envelope data target
	validateOut bool

	successMessage string
}

// invoke is the validated request factory: validate-in, dispatch,
// validate-out, then the optional one-shot success notification.
// Request-shape failures short-circuit before any network traffic.
func (c *Client) invoke(ctx context.Context, cl call) error {
	body := cl.rawBody
	contentType := cl.contentType

	if cl.body != nil {
		if verr := checkShape(cl.body); verr != nil {
			c.notifier.Error("invalid request: " + verr.Error())
			return &RequestShapeError{verr}
		}
		raw, err := json.Marshal(cl.body)
		if err != nil {
			return &RequestShapeError{&ValidationError{Issues: []Issue{{Path: "payload", Message: err.Error()}}}}
		}
		body = bytes.NewReader(raw)
		contentType = "application/json"
	}

	env, err := c.do(ctx, cl.method, cl.path, cl.query, body, contentType)
	if err != nil {
		return err
	}

	if cl.out != nil {
		if len(env.Data) > 0 {
			if err := json.Unmarshal(env.Data, cl.out); err != nil {
				verr := &ValidationError{Issues: []Issue{{Path: "data", Message: err.Error()}}}
				c.notifier.Error("invalid response: " + verr.Error())
				return &ResponseShapeError{verr}
			}
		}
		if cl.validateOut {
			if verr := checkShape(cl.out); verr != nil {
				c.notifier.Error("invalid response: " + verr.Error())
				return &ResponseShapeError{verr}
			}
		}
	}

	if cl.successMessage != "" {
		c.notifier.Success(cl.successMessage)
	}
	return nil
}

// checkQuery validates GET/DELETE parameters the same way bodies are.
func (c *Client) checkQuery(v any) error {
	if verr := checkShape(v); verr != nil {
		c.notifier.Error("invalid request: " + verr.Error())
		return &RequestShapeError{verr}
	}
	return nil
}

func itoa(n int) string { return strconv.Itoa(n) }

func utoa(n uint) string { return strconv.FormatUint(uint64(n), 10) }
