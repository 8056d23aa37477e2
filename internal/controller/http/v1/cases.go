package v1

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/kurochkinivan/receipt_cases/internal/auth"
	"github.com/kurochkinivan/receipt_cases/internal/cases"
	"github.com/kurochkinivan/receipt_cases/internal/domain"
)

const receiptImageField = "receipt_image"

type CasesService interface {
	Submit(ctx context.Context, ownerID int64, upload *domain.Upload) (*cases.SubmitResult, error)
	Cases(ctx context.Context, ownerID int64, limit, offset uint64) ([]*domain.Case, int, error)
	Case(ctx context.Context, ownerID, id int64) (*domain.Case, error)
	ManualDispatch(ctx context.Context, ownerID, id int64) (*domain.DispatchResult, error)
	Download(ctx context.Context, ownerID, id int64) (*cases.Download, error)
	Report(ctx context.Context, ownerID, id int64, w io.Writer) error
	Export(ctx context.Context, ownerID int64, w io.Writer) error
}

type CasesHandler struct {
	log            *slog.Logger
	service        CasesService
	maxUploadBytes int64
}

func NewCasesHandler(log *slog.Logger, service CasesService, maxUploadBytes int64) *CasesHandler {
	return &CasesHandler{
		log:            log,
		service:        service,
		maxUploadBytes: maxUploadBytes,
	}
}

type caseResponse struct {
	*domain.Case
	State domain.CaseState `json:"state"`
}

func newCaseResponse(c *domain.Case) caseResponse {
	return caseResponse{Case: c, State: c.State()}
}

type dispatchResponse struct {
	StatusCode int    `json:"status_code,omitempty"`
	Body       string `json:"body,omitempty"`
	Error      string `json:"error,omitempty"`
}

type SubmitResponse struct {
	Case     caseResponse     `json:"case"`
	Dispatch dispatchResponse `json:"dispatch"`
}

func (h *CasesHandler) Submit(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.owner(w, r)
	if !ok {
		return
	}

	if h.maxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	}

	file, header, err := r.FormFile(receiptImageField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if !errors.As(err, &tooLarge) {
			err = domain.ErrMissingReceiptImage
		}
		writeError(h.log, w, r, err)
		return
	}
	defer file.Close()
	if r.MultipartForm != nil {
		defer r.MultipartForm.RemoveAll()
	}

	res, err := h.service.Submit(r.Context(), ownerID, &domain.Upload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Content:     file,
	})
	if err != nil {
		writeError(h.log, w, r, err)
		return
	}

	resp := SubmitResponse{Case: newCaseResponse(res.Case)}
	if res.Dispatch != nil {
		resp.Dispatch.StatusCode = res.Dispatch.StatusCode
		resp.Dispatch.Body = string(res.Dispatch.Body)
	}
	if res.DispatchErr != nil {
		resp.Dispatch.Error = res.DispatchErr.Error()
	}

	writeJSON(w, http.StatusCreated, resp)
}

type ListCasesResponse struct {
	Cases      []caseResponse `json:"cases"`
	Pagination Pagination     `json:"pagination"`
}

func (h *CasesHandler) List(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.owner(w, r)
	if !ok {
		return
	}

	page, limit, err := parsePagination(r)
	if err != nil {
		writeError(h.log, w, r, err)
		return
	}

	offset := (page - 1) * limit

	list, total, err := h.service.Cases(r.Context(), ownerID, limit, offset)
	if err != nil {
		writeError(h.log, w, r, err)
		return
	}

	resp := ListCasesResponse{
		Cases:      make([]caseResponse, 0, len(list)),
		Pagination: newPagination(page, limit, total),
	}
	for _, c := range list {
		resp.Cases = append(resp.Cases, newCaseResponse(c))
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *CasesHandler) Get(w http.ResponseWriter, r *http.Request) {
	ownerID, id, ok := h.ownedID(w, r)
	if !ok {
		return
	}

	c, err := h.service.Case(r.Context(), ownerID, id)
	if err != nil {
		writeError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, newCaseResponse(c))
}

type ManualDispatchResponse struct {
	Status int    `json:"status"`
	Body   string `json:"body"`
}

func (h *CasesHandler) SendToN8n(w http.ResponseWriter, r *http.Request) {
	ownerID, id, ok := h.ownedID(w, r)
	if !ok {
		return
	}

	result, err := h.service.ManualDispatch(r.Context(), ownerID, id)
	if err != nil {
		writeError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, ManualDispatchResponse{
		Status: result.StatusCode,
		Body:   string(result.Body),
	})
}

func (h *CasesHandler) DownloadCSV(w http.ResponseWriter, r *http.Request) {
	ownerID, id, ok := h.ownedID(w, r)
	if !ok {
		return
	}

	d, err := h.service.Download(r.Context(), ownerID, id)
	if err != nil {
		writeError(h.log, w, r, err)
		return
	}

	if d.Dispatched {
		http.Redirect(w, r, fmt.Sprintf("/cases/%d/", id), http.StatusFound)
		return
	}
	defer d.Content.Close()

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", attachment(d.Filename))

	if _, err := io.Copy(w, d.Content); err != nil {
		h.log.ErrorContext(r.Context(), "failed to stream csv",
			slog.Int64("case_id", id),
			slog.String("err", err.Error()),
		)
	}
}

func (h *CasesHandler) DownloadPDF(w http.ResponseWriter, r *http.Request) {
	ownerID, id, ok := h.ownedID(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := h.service.Report(r.Context(), ownerID, id, &buf); err != nil {
		writeError(h.log, w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", attachment((&domain.Case{ID: id}).PDFFilename()))
	w.Write(buf.Bytes())
}

func (h *CasesHandler) Export(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.owner(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := h.service.Export(r.Context(), ownerID, &buf); err != nil {
		writeError(h.log, w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", attachment("cases.csv"))
	w.Write(buf.Bytes())
}

func (h *CasesHandler) owner(w http.ResponseWriter, r *http.Request) (int64, bool) {
	ownerID, ok := auth.UserID(r.Context())
	if !ok {
		writeError(h.log, w, r, domain.ErrUnauthenticated)
		return 0, false
	}

	return ownerID, true
}

func (h *CasesHandler) ownedID(w http.ResponseWriter, r *http.Request) (ownerID, id int64, ok bool) {
	ownerID, ok = h.owner(w, r)
	if !ok {
		return 0, 0, false
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(h.log, w, r, domain.ErrCaseNotFound)
		return 0, 0, false
	}

	return ownerID, id, true
}

func attachment(filename string) string {
	return fmt.Sprintf("attachment; filename=%q", filename)
}
