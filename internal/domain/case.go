package domain

import (
	"fmt"
	"time"
)

type Case struct {
	ID        int64     `csv:"id"         db:"id"         json:"id"`
	OwnerID   int64     `csv:"owner_id"   db:"owner_id"   json:"owner_id"`
	ImageRef  string    `csv:"image_ref"  db:"image_ref"  json:"image_ref"`
	ImageName string    `csv:"image_name" db:"image_name" json:"image_name"`
	CSVRef    *string   `csv:"csv_ref"    db:"csv_ref"    json:"csv_ref,omitempty"`
	Processed bool      `csv:"processed"  db:"processed"  json:"processed"`
	CreatedAt time.Time `csv:"created_at" db:"created_at" json:"created_at"`
}

// State derives the lifecycle state. A stored case has always been handed to
// the dispatcher at least once, so anything without a CSV is dispatched.
func (c *Case) State() CaseState {
	if c.Processed {
		return StateProcessed
	}

	return StateDispatched
}

// CSVFilename is the attachment name used for downloads.
func (c *Case) CSVFilename() string {
	return fmt.Sprintf("case_%d.csv", c.ID)
}

func (c *Case) PDFFilename() string {
	return fmt.Sprintf("case_%d.pdf", c.ID)
}

// CSVKey is the storage key of the case CSV. It is stable per case so every
// processing event overwrites the previous content.
func CSVKey(id int64) string {
	return fmt.Sprintf("cases_csv/case_%d.csv", id)
}
