package cases

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/kurochkinivan/receipt_cases/internal/domain"
)

const defaultImageName = "receipt"

type SubmitResult struct {
	Case *domain.Case
	// Dispatch is nil when the webhook could not be reached.
	Dispatch *domain.DispatchResult
	// DispatchErr reports a failed hand-off. The case is stored regardless.
	DispatchErr error
}

// Submit stores the image, creates the case and dispatches it once. A 200
// response with a body is taken as the CSV itself. Any dispatch problem is
// reported in the result and leaves the case unprocessed; only failures to
// persist the upload are returned as errors.
func (s *Service) Submit(ctx context.Context, ownerID int64, upload *domain.Upload) (*SubmitResult, error) {
	name := imageName(upload.Filename)
	key := fmt.Sprintf("receipts/%s_%s", uuid.NewString(), name)

	if err := s.storage.Save(ctx, key, upload.Content, upload.ContentType); err != nil {
		return nil, fmt.Errorf("failed to store image: %w", err)
	}

	c := &domain.Case{
		OwnerID:   ownerID,
		ImageRef:  key,
		ImageName: name,
	}
	if err := s.cases.CreateCase(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to create case: %w", err)
	}

	log := s.log.With(slog.Int64("case_id", c.ID), slog.Int64("owner_id", ownerID))
	log.InfoContext(ctx, "case created", slog.String("state", string(domain.StateNew)))

	res := &SubmitResult{Case: c}

	result, err := s.dispatch(ctx, c)
	if err != nil {
		log.WarnContext(ctx, "dispatch failed, case kept unprocessed", slog.String("err", err.Error()))
		res.DispatchErr = err
		return res, nil
	}
	res.Dispatch = result

	switch {
	case result.HasSyncResult():
		if err := s.storeCSV(ctx, c, result.Body); err != nil {
			log.ErrorContext(ctx, "failed to store synchronous result", slog.String("err", err.Error()))
			res.DispatchErr = err
			return res, nil
		}
		log.InfoContext(ctx, "case processed synchronously", slog.String("state", string(c.State())))

	case !result.Successful():
		res.DispatchErr = upstreamStatusError(result)
		log.WarnContext(ctx, "webhook rejected dispatch", slog.Int("status", result.StatusCode))

	default:
		log.InfoContext(ctx, "case dispatched, awaiting callback", slog.String("state", string(c.State())))
	}

	return res, nil
}

func imageName(filename string) string {
	name := filepath.Base(strings.ReplaceAll(filename, "\\", "/"))
	if name == "." || name == "/" || name == "" {
		return defaultImageName
	}

	return name
}
