package mcbook

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
)

// HTTPGenerateRequest configures HTTPGenerate.
type HTTPGenerateRequest struct {
	URL          string
	Client       *http.Client
	Writer       io.Writer
	Title        string
	Author       string
	Version      string
	InlineTitles bool
	Options      []Option
}

// HTTPGenerate fetches text over HTTP(S) and writes the book commands for it.
func HTTPGenerate(ctx context.Context, req HTTPGenerateRequest) error {
	if req.URL == "" {
		return fmt.Errorf("generate http: URL is required")
	}
	if req.Writer == nil {
		return fmt.Errorf("generate http: Writer is nil")
	}
	src, err := FetchText(ctx, req.Client, req.URL)
	if err != nil {
		return fmt.Errorf("generate http: %w", err)
	}
	return Generate(GenerateRequest{
		Reader:       bytes.NewReader(src),
		Writer:       req.Writer,
		Title:        req.Title,
		Author:       req.Author,
		Version:      req.Version,
		InlineTitles: req.InlineTitles,
		Options:      req.Options,
	})
}

// FetchText downloads the body of an http or https URL. A nil client uses
// http.DefaultClient. Responses outside the 2xx range are errors.
func FetchText(ctx context.Context, client *http.Client, rawURL string) ([]byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if client == nil {
		client = http.DefaultClient
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if httpReq.URL.Scheme != "http" && httpReq.URL.Scheme != "https" {
		return nil, fmt.Errorf("unsupported scheme %q", httpReq.URL.Scheme)
	}
	resp, err := client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%s: status %s", rawURL, resp.Status)
	}
	src, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: read body: %w", rawURL, err)
	}
	return src, nil
}
