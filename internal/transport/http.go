// Package transport carries chat submissions to the chat backend.
package transport

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"quiz-widget/backend/internal/model"
)

const (
	dataPrefix = "data:"
	doneMarker = "[DONE]"

	// Tool outputs arrive as a single frame and can be much larger than
	// bufio's default token size.
	maxFrameSize = 1 << 20
)

// HTTPTransport posts a message to the chat endpoint and reads the reply as a
// server-sent event stream.
type HTTPTransport struct {
	client *http.Client
	url    string
}

func NewHTTPTransport(url string, client *http.Client) *HTTPTransport {
	if client == nil {
		client = &http.Client{}
	}
	return &HTTPTransport{client: client, url: url}
}

// Stream sends req and forwards every decoded event on ch. Frames that cannot
// be decoded are forwarded as model.EventMalformed so the caller can report
// them without losing the rest of the stream. ch is closed on return.
func (t *HTTPTransport) Stream(ctx context.Context, req *model.SendRequest, ch chan<- model.Event) error {
	defer close(ch)

	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("could not marshal request: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, t.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("could not create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "text/event-stream")

	resp, err := t.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("chat api returned non-200 status %d: %s", resp.StatusCode, strings.TrimSpace(string(bodyBytes)))
	}

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), maxFrameSize)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		// Blank separators, comments and non-data fields carry nothing for us.
		if !strings.HasPrefix(line, dataPrefix) {
			continue
		}
		payload := strings.TrimSpace(strings.TrimPrefix(line, dataPrefix))
		if payload == doneMarker {
			return nil
		}

		var ev model.Event
		if err := json.Unmarshal([]byte(payload), &ev); err != nil || ev.Type == "" {
			reason := "event has no type"
			if err != nil {
				reason = err.Error()
			}
			ev = model.Event{Type: model.EventMalformed, ErrorText: reason}
		}

		select {
		case ch <- ev:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if err := scanner.Err(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("reading stream: %w", err)
	}
	return nil
}
