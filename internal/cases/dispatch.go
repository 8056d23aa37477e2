package cases

import (
	"context"
	"io"
	"log/slog"

	"github.com/kurochkinivan/receipt_cases/internal/domain"
)

// ManualDispatch re-sends the case image and returns the raw webhook answer.
// The case is never modified, whatever the webhook replies.
func (s *Service) ManualDispatch(ctx context.Context, ownerID, id int64) (*domain.DispatchResult, error) {
	c, err := s.cases.OwnedCase(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	result, err := s.dispatch(ctx, c)
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "case re-sent to webhook",
		slog.Int64("case_id", c.ID),
		slog.Int("status", result.StatusCode),
	)

	return result, nil
}

type Download struct {
	Case     *domain.Case
	Filename string
	// Content is set for processed cases and must be closed by the caller.
	Content io.ReadCloser
	// Dispatched is set when the case had no CSV and the image was sent
	// for processing instead.
	Dispatched bool
}

// Download opens the stored CSV. Without one it dispatches the image and
// reports that the caller should come back later; no CSV is made up.
func (s *Service) Download(ctx context.Context, ownerID, id int64) (*Download, error) {
	c, err := s.cases.OwnedCase(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	if c.Processed && c.CSVRef != nil {
		content, err := s.storage.Open(ctx, *c.CSVRef)
		if err != nil {
			return nil, err
		}

		return &Download{
			Case:     c,
			Filename: c.CSVFilename(),
			Content:  content,
		}, nil
	}

	result, err := s.dispatch(ctx, c)
	if err != nil {
		return nil, err
	}

	if !result.Successful() {
		return nil, upstreamStatusError(result)
	}

	s.log.InfoContext(ctx, "csv requested before processing, case dispatched", slog.Int64("case_id", c.ID))

	return &Download{
		Case:       c,
		Dispatched: true,
	}, nil
}
