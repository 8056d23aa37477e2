package v1

import (
	"bytes"
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/kurochkinivan/receipt_cases/internal/config"
	"github.com/kurochkinivan/receipt_cases/internal/domain"
	"github.com/kurochkinivan/receipt_cases/internal/normalizer"
)

const (
	secretHeader       = "X-N8N-SECRET"
	callbackFileField  = "file"
	defaultMaxBodySize = 10 << 20
)

type CallbackService interface {
	Callback(ctx context.Context, payload *normalizer.Payload) (*domain.Case, error)
}

type CallbackRecorder interface {
	RecordCallback(outcome string)
}

type CallbackHandler struct {
	log      *slog.Logger
	service  CallbackService
	cfg      config.Callback
	recorder CallbackRecorder
}

func NewCallbackHandler(log *slog.Logger, service CallbackService, cfg config.Callback, recorder CallbackRecorder) *CallbackHandler {
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = defaultMaxBodySize
	}

	return &CallbackHandler{
		log:      log,
		service:  service,
		cfg:      cfg,
		recorder: recorder,
	}
}

type CallbackResponse struct {
	Status string `json:"status"`
}

// Callback accepts the workflow result. The shared secret is checked before
// the body is touched.
func (h *CallbackHandler) Callback(w http.ResponseWriter, r *http.Request) {
	if !h.authorized(r) {
		h.record("forbidden")
		writeError(h.log, w, r, domain.ErrSecretMismatch)
		return
	}

	payload, err := h.readPayload(w, r)
	if err != nil {
		h.record("invalid")
		writeError(h.log, w, r, err)
		return
	}

	c, err := h.service.Callback(r.Context(), payload)
	if err != nil {
		h.record(outcome(err))
		h.log.WarnContext(r.Context(), "callback rejected", slog.String("err", err.Error()))
		writeError(h.log, w, r, err)
		return
	}

	h.record("ok")
	h.log.InfoContext(r.Context(), "callback stored", slog.Int64("case_id", c.ID))

	writeJSON(w, http.StatusOK, CallbackResponse{Status: "ok"})
}

func (h *CallbackHandler) authorized(r *http.Request) bool {
	if h.cfg.Secret == "" {
		return true
	}

	got := r.Header.Get(secretHeader)
	return subtle.ConstantTimeCompare([]byte(got), []byte(h.cfg.Secret)) == 1
}

// readPayload buffers the body once so the normalizer can try the JSON shape
// and the form shapes against the same bytes.
func (h *CallbackHandler) readPayload(w http.ResponseWriter, r *http.Request) (*normalizer.Payload, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.cfg.MaxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read body: %w", err)
	}

	payload := &normalizer.Payload{
		Body:        body,
		ContentType: r.Header.Get("Content-Type"),
	}

	mediaType, params, err := mime.ParseMediaType(payload.ContentType)
	if err != nil {
		return payload, nil
	}

	switch {
	case mediaType == "application/x-www-form-urlencoded":
		// Malformed forms fall through to the missing field errors.
		payload.Fields, _ = url.ParseQuery(string(body))

	case strings.HasPrefix(mediaType, "multipart/"):
		fields, files, err := parseMultipart(body, params["boundary"], h.cfg.MaxBodyBytes)
		if err != nil {
			h.log.DebugContext(r.Context(), "unreadable multipart callback", slog.String("err", err.Error()))
			return payload, nil
		}
		payload.Fields, payload.Files = fields, files
	}

	return payload, nil
}

func parseMultipart(body []byte, boundary string, maxMemory int64) (url.Values, map[string][]byte, error) {
	if boundary == "" {
		return nil, nil, errors.New("missing multipart boundary")
	}

	form, err := multipart.NewReader(bytes.NewReader(body), boundary).ReadForm(maxMemory)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse multipart form: %w", err)
	}
	defer form.RemoveAll()

	files := make(map[string][]byte)
	if headers := form.File[callbackFileField]; len(headers) > 0 {
		content, err := readFormFile(headers[0])
		if err != nil {
			return nil, nil, err
		}
		files[callbackFileField] = content
	}

	return url.Values(form.Value), files, nil
}

func readFormFile(header *multipart.FileHeader) (_ []byte, err error) {
	f, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open form file: %w", err)
	}
	defer func() { err = errors.Join(err, f.Close()) }()

	return io.ReadAll(f)
}

func outcome(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return "invalid"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	default:
		return "error"
	}
}

func (h *CallbackHandler) record(outcome string) {
	if h.recorder != nil {
		h.recorder.RecordCallback(outcome)
	}
}
