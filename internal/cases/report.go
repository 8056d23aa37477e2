package cases

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/jszwec/csvutil"
	"github.com/kurochkinivan/receipt_cases/internal/domain"
)

// Report renders the stored CSV of a processed case as a PDF.
func (s *Service) Report(ctx context.Context, ownerID, id int64, w io.Writer) error {
	c, err := s.cases.OwnedCase(ctx, id, ownerID)
	if err != nil {
		return err
	}

	if !c.Processed || c.CSVRef == nil {
		return domain.ErrCaseNotProcessed
	}

	records, err := s.readCSV(ctx, *c.CSVRef)
	if err != nil {
		return err
	}

	var header []string
	if len(records) > 0 {
		header, records = records[0], records[1:]
	}

	title := fmt.Sprintf("Receipt case #%d (%s)", c.ID, c.ImageName)
	if err := s.reportGenerator.GenerateReport(w, title, header, records); err != nil {
		return fmt.Errorf("failed to generate report: %w", err)
	}

	return nil
}

func (s *Service) readCSV(ctx context.Context, key string) (_ [][]string, err error) {
	rc, err := s.storage.Open(ctx, key)
	if err != nil {
		return nil, err
	}
	defer func() { err = errors.Join(err, rc.Close()) }()

	reader := csv.NewReader(rc)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse stored csv: %w", err)
	}

	return records, nil
}

type exportRow struct {
	domain.Case
	State domain.CaseState `csv:"state"`
}

// Export lists all of the owner's cases as CSV, newest first.
func (s *Service) Export(ctx context.Context, ownerID int64, w io.Writer) error {
	cases, err := s.cases.AllCasesByOwner(ctx, ownerID)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	enc := csvutil.NewEncoder(cw)

	if err := enc.EncodeHeader(exportRow{}); err != nil {
		return fmt.Errorf("failed to encode header: %w", err)
	}

	for _, c := range cases {
		if err := enc.Encode(exportRow{Case: *c, State: c.State()}); err != nil {
			return fmt.Errorf("failed to encode case %d: %w", c.ID, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush export: %w", err)
	}

	return nil
}
