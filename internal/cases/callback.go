package cases

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/kurochkinivan/receipt_cases/internal/domain"
	"github.com/kurochkinivan/receipt_cases/internal/normalizer"
)

// Callback stores the CSV delivered by the workflow. Normalization errors
// leave every case untouched. A repeated callback for the same case simply
// overwrites the CSV again; there is no idempotency key.
func (s *Service) Callback(ctx context.Context, payload *normalizer.Payload) (*domain.Case, error) {
	res, err := normalizer.Normalize(payload)
	if err != nil {
		return nil, err
	}

	id, err := strconv.ParseInt(res.CaseID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid id %q", domain.ErrCaseNotFound, res.CaseID)
	}

	c, err := s.cases.CaseByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.storeCSV(ctx, c, []byte(res.CSV)); err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "case processed by callback",
		slog.Int64("case_id", c.ID),
		slog.Int("csv_bytes", len(res.CSV)),
	)

	return c, nil
}
