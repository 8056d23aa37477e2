package cases

import (
	"context"
	"io"

	"github.com/kurochkinivan/receipt_cases/internal/domain"
)

type CasesRepository interface {
	CreateCase(ctx context.Context, c *domain.Case) error
	CaseByID(ctx context.Context, id int64) (*domain.Case, error)
	OwnedCase(ctx context.Context, id, ownerID int64) (*domain.Case, error)
	CasesByOwner(ctx context.Context, ownerID int64, limit, offset uint64) ([]*domain.Case, int, error)
	AllCasesByOwner(ctx context.Context, ownerID int64) ([]*domain.Case, error)
	SetCaseCSV(ctx context.Context, id int64, csvRef string) error
}

type FileStorage interface {
	Save(ctx context.Context, key string, data io.Reader, contentType string) error
	Open(ctx context.Context, key string) (io.ReadCloser, error)
}

// Dispatcher must close image before returning.
type Dispatcher interface {
	Dispatch(ctx context.Context, filename string, image io.ReadCloser) (*domain.DispatchResult, error)
}

type ReportGenerator interface {
	GenerateReport(w io.Writer, title string, header []string, records [][]string) error
}
