package webhook

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"path/filepath"
	"strings"

	"github.com/kurochkinivan/receipt_cases/internal/config"
	"github.com/kurochkinivan/receipt_cases/internal/domain"
)

const (
	fileField          = "file"
	defaultContentType = "application/octet-stream"
	maxResponseBytes   = 10 << 20
)

const (
	OutcomeOK             = "ok"
	OutcomeUpstreamError  = "upstream_error"
	OutcomeTransportError = "transport_error"
	OutcomeNotConfigured  = "not_configured"
)

type DispatchRecorder interface {
	RecordDispatch(outcome string)
}

type Client struct {
	log        *slog.Logger
	url        string
	httpClient *http.Client
	recorder   DispatchRecorder
}

// New builds a webhook client. The timeout from cfg is applied to httpClient;
// a nil httpClient is accepted and reported as ErrClientUnavailable on use.
func New(log *slog.Logger, cfg config.Webhook, httpClient *http.Client, recorder DispatchRecorder) *Client {
	if httpClient != nil && cfg.Timeout > 0 {
		httpClient.Timeout = cfg.Timeout
	}

	return &Client{
		log:        log,
		url:        cfg.URL,
		httpClient: httpClient,
		recorder:   recorder,
	}
}

// Dispatch posts image as the multipart field "file". The image is closed on
// every path, including configuration errors.
func (c *Client) Dispatch(ctx context.Context, filename string, image io.ReadCloser) (_ *domain.DispatchResult, err error) {
	defer func() { err = errors.Join(err, closeError(image.Close())) }()

	if c.url == "" {
		c.record(OutcomeNotConfigured)
		return nil, domain.ErrWebhookNotConfigured
	}

	if c.httpClient == nil {
		c.record(OutcomeNotConfigured)
		return nil, domain.ErrClientUnavailable
	}

	if seeker, ok := image.(io.Seeker); ok {
		if _, err := seeker.Seek(0, io.SeekStart); err != nil {
			return nil, fmt.Errorf("failed to rewind image: %w", err)
		}
	}

	body, contentType, err := multipartBody(filename, image)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, body)
	if err != nil {
		c.record(OutcomeTransportError)
		return nil, fmt.Errorf("%w: failed to create request: %w", domain.ErrTransport, err)
	}
	req.Header.Set("Content-Type", contentType)

	log := c.log.With(slog.String("filename", filename))
	log.DebugContext(ctx, "dispatching image to webhook", slog.Int("bytes", body.Len()))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.record(OutcomeTransportError)
		return nil, fmt.Errorf("%w: %w", domain.ErrTransport, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		c.record(OutcomeTransportError)
		return nil, fmt.Errorf("%w: failed to read response: %w", domain.ErrTransport, err)
	}

	result := &domain.DispatchResult{
		StatusCode: resp.StatusCode,
		Body:       data,
	}

	if result.Successful() {
		c.record(OutcomeOK)
	} else {
		c.record(OutcomeUpstreamError)
	}

	log.DebugContext(ctx, "webhook responded",
		slog.Int("status", resp.StatusCode),
		slog.Int("bytes", len(data)),
	)

	return result, nil
}

func (c *Client) record(outcome string) {
	if c.recorder != nil {
		c.recorder.RecordDispatch(outcome)
	}
}

func multipartBody(filename string, image io.Reader) (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename="%s"`,
		fileField, quoteEscaper.Replace(filepath.Base(filename))))
	header.Set("Content-Type", GuessContentType(filename))

	part, err := mw.CreatePart(header)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create multipart part: %w", err)
	}

	if _, err := io.Copy(part, image); err != nil {
		return nil, "", fmt.Errorf("failed to read image: %w", err)
	}

	if err := mw.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to close multipart writer: %w", err)
	}

	return body, mw.FormDataContentType(), nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// GuessContentType maps the filename extension to a media type, falling back
// to application/octet-stream.
func GuessContentType(filename string) string {
	if ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(filename))); ct != "" {
		return ct
	}

	return defaultContentType
}

func closeError(err error) error {
	if err != nil {
		return fmt.Errorf("failed to close image: %w", err)
	}

	return nil
}
