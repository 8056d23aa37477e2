// Package normalizer turns whatever the extraction workflow posts back into a
// case identifier and CSV text.
//
// Parsing is lenient on purpose: a body that claims to be JSON but does not
// parse is treated as if no JSON was sent, and the form and file fallbacks
// are tried instead. Only two situations are rejected outright: an element of
// a batch result that reports success other than true, and a payload from
// which no case identifier or no CSV could be recovered.
package normalizer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/buger/jsonparser"
	"github.com/kurochkinivan/receipt_cases/internal/domain"
)

const (
	fieldCaseID  = "case_id"
	fieldCSV     = "csv"
	fieldFile    = "file"
	fieldSuccess = "success"
	fieldData    = "data"
)

type Payload struct {
	Body        []byte
	ContentType string
	Fields      url.Values
	Files       map[string][]byte
}

type Result struct {
	CaseID string
	CSV    string
}

// UpstreamFailureError is returned when a batch element carries a success flag
// that is not literally true. Element holds the offending element as compact
// JSON.
type UpstreamFailureError struct {
	Index   int
	Element string
}

func (e *UpstreamFailureError) Error() string {
	return fmt.Sprintf("upstream reported failure for result #%d: %s", e.Index, e.Element)
}

func (e *UpstreamFailureError) Unwrap() error {
	return domain.ErrUpstreamReportedFailure
}

// Normalize resolves the case identifier and CSV text. Each source is tried in
// a fixed order and the first non-empty value wins per field: JSON body, then
// form fields, then (for the CSV only) the uploaded file named "file".
// Empty strings count as absent.
func Normalize(p *Payload) (*Result, error) {
	var res Result

	if isJSON(p.ContentType) {
		extracted, err := fromJSON(p.Body)
		if err != nil {
			return nil, err
		}
		res = extracted
	}

	if res.CaseID == "" {
		res.CaseID = strings.TrimSpace(p.Fields.Get(fieldCaseID))
	}

	if res.CSV == "" {
		res.CSV = p.Fields.Get(fieldCSV)
	}

	if res.CSV == "" {
		res.CSV = fileText(p.Files[fieldFile])
	}

	if res.CaseID == "" {
		return nil, domain.ErrMissingCaseID
	}

	if res.CSV == "" {
		return nil, domain.ErrMissingCSVContent
	}

	return &res, nil
}

func isJSON(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}

	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}

func fromJSON(body []byte) (Result, error) {
	if !json.Valid(body) {
		return Result{}, nil
	}

	value, typ, _, err := jsonparser.Get(body)
	if err != nil {
		return Result{}, nil
	}

	switch typ {
	case jsonparser.Object:
		return fromLegacy(value), nil
	case jsonparser.Array:
		return fromBatch(value)
	default:
		return Result{}, nil
	}
}

// fromLegacy reads the single object shape {"case_id": ..., "csv": "..."}.
func fromLegacy(object []byte) Result {
	var res Result

	_ = jsonparser.ObjectEach(object, func(key, value []byte, typ jsonparser.ValueType, _ int) error {
		switch string(key) {
		case fieldCaseID:
			res.CaseID = identifier(value, typ)
		case fieldCSV:
			res.CSV = text(value, typ)
		}

		return nil
	})

	return res
}

type element struct {
	hasSuccess bool
	succeeded  bool
	data       []byte
	caseID     string
}

func parseElement(object []byte) element {
	var el element

	_ = jsonparser.ObjectEach(object, func(key, value []byte, typ jsonparser.ValueType, _ int) error {
		switch string(key) {
		case fieldSuccess:
			el.hasSuccess = true
			el.succeeded = typ == jsonparser.Boolean && string(value) == "true"
		case fieldData:
			el.data = nil
			if typ == jsonparser.Object {
				el.data = value
			}
		case fieldCaseID:
			el.caseID = identifier(value, typ)
		}

		return nil
	})

	return el
}

// fromBatch reads the list-of-results shape. The first element reporting a
// failure aborts the whole batch.
func fromBatch(array []byte) (Result, error) {
	var (
		res     Result
		rows    []*Row
		failure error
		index   = -1
	)

	_, _ = jsonparser.ArrayEach(array, func(value []byte, typ jsonparser.ValueType, _ int, _ error) {
		index++

		if failure != nil || typ != jsonparser.Object {
			return
		}

		el := parseElement(value)

		if el.hasSuccess && !el.succeeded {
			failure = &UpstreamFailureError{Index: index, Element: compact(value)}
			return
		}

		if el.data != nil {
			rows = append(rows, rowFromObject(el.data))
		}

		if res.CaseID == "" {
			res.CaseID = el.caseID
		}
	})

	if failure != nil {
		return Result{}, failure
	}

	if len(rows) > 0 {
		csvText, err := BuildCSV(rows)
		if err != nil {
			return Result{}, fmt.Errorf("failed to build csv: %w", err)
		}
		res.CSV = csvText
	}

	return res, nil
}

func rowFromObject(object []byte) *Row {
	row := NewRow()

	_ = jsonparser.ObjectEach(object, func(key, value []byte, typ jsonparser.ValueType, _ int) error {
		row.Set(string(key), cell(value, typ))
		return nil
	})

	return row
}

func identifier(value []byte, typ jsonparser.ValueType) string {
	switch typ {
	case jsonparser.String:
		return strings.TrimSpace(unquote(value))
	case jsonparser.Number:
		return string(value)
	default:
		return ""
	}
}

func text(value []byte, typ jsonparser.ValueType) string {
	if typ != jsonparser.String {
		return ""
	}

	return unquote(value)
}

func cell(value []byte, typ jsonparser.ValueType) string {
	switch typ {
	case jsonparser.Null:
		return ""
	case jsonparser.String:
		return unquote(value)
	case jsonparser.Object, jsonparser.Array:
		return compact(value)
	default:
		return string(value)
	}
}

func unquote(value []byte) string {
	s, err := jsonparser.ParseString(value)
	if err != nil {
		return string(value)
	}

	return s
}

func compact(value []byte) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, value); err != nil {
		return string(value)
	}

	return buf.String()
}

func fileText(content []byte) string {
	if len(content) == 0 || !utf8.Valid(content) {
		return ""
	}

	return string(content)
}
