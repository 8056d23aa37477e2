package domain

import "net/http"

type DispatchResult struct {
	StatusCode int
	Body       []byte
}

// Successful reports a 2xx answer from the webhook.
func (r *DispatchResult) Successful() bool {
	return r.StatusCode >= http.StatusOK && r.StatusCode < http.StatusMultipleChoices
}

// HasSyncResult reports whether the response itself carries the CSV.
func (r *DispatchResult) HasSyncResult() bool {
	return r.StatusCode == http.StatusOK && len(r.Body) > 0
}
