package cases

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path"

	"github.com/kurochkinivan/receipt_cases/internal/domain"
)

const csvContentType = "text/csv"

type Service struct {
	log             *slog.Logger
	cases           CasesRepository
	storage         FileStorage
	dispatcher      Dispatcher
	reportGenerator ReportGenerator
}

func NewService(
	log *slog.Logger,
	cases CasesRepository,
	storage FileStorage,
	dispatcher Dispatcher,
	reportGenerator ReportGenerator,
) *Service {
	return &Service{
		log:             log,
		cases:           cases,
		storage:         storage,
		dispatcher:      dispatcher,
		reportGenerator: reportGenerator,
	}
}

func (s *Service) Case(ctx context.Context, ownerID, id int64) (*domain.Case, error) {
	return s.cases.OwnedCase(ctx, id, ownerID)
}

func (s *Service) Cases(ctx context.Context, ownerID int64, limit, offset uint64) ([]*domain.Case, int, error) {
	return s.cases.CasesByOwner(ctx, ownerID, limit, offset)
}

// dispatch opens the stored image and hands it to the dispatcher, which owns
// the handle from then on.
func (s *Service) dispatch(ctx context.Context, c *domain.Case) (*domain.DispatchResult, error) {
	if c.ImageRef == "" {
		return nil, domain.ErrCaseHasNoImage
	}

	image, err := s.storage.Open(ctx, c.ImageRef)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}

	filename := c.ImageName
	if filename == "" {
		filename = path.Base(c.ImageRef)
	}

	s.log.DebugContext(ctx, "dispatching case", slog.Int64("case_id", c.ID), slog.String("filename", filename))

	return s.dispatcher.Dispatch(ctx, filename, image)
}

// storeCSV overwrites the case CSV and marks the case processed. The blob is
// written before the row so a stored csv_ref always points at content.
func (s *Service) storeCSV(ctx context.Context, c *domain.Case, csvText []byte) error {
	key := domain.CSVKey(c.ID)

	if err := s.storage.Save(ctx, key, bytes.NewReader(csvText), csvContentType); err != nil {
		return fmt.Errorf("failed to store csv: %w", err)
	}

	if err := s.cases.SetCaseCSV(ctx, c.ID, key); err != nil {
		return fmt.Errorf("failed to update case: %w", err)
	}

	c.CSVRef = &key
	c.Processed = true

	return nil
}

func upstreamStatusError(result *domain.DispatchResult) error {
	return fmt.Errorf("%w: status %d", domain.ErrUpstreamStatus, result.StatusCode)
}
