package intake

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gomtb/validator/mtb"
)

// Forwarder pushes accepted case files to the downstream query service
// and propagates patient deletions.
type Forwarder interface {
	Forward(ctx context.Context, file *mtb.File) error
	Delete(ctx context.Context, patientID string) error
}

// HTTPForwarder talks to the query service over HTTP.
type HTTPForwarder struct {
	baseURL string
	client  *http.Client
}

// NewHTTPForwarder creates a forwarder for the query service at baseURL.
func NewHTTPForwarder(baseURL string) *HTTPForwarder {
	return &HTTPForwarder{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// Forward implements Forwarder.
func (f *HTTPForwarder) Forward(ctx context.Context, file *mtb.File) error {
	body, err := json.Marshal(file)
	if err != nil {
		return fmt.Errorf("marshal mtb file: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.baseURL+"/mtbfile", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("forward mtb file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("forward mtb file: query service returned %s", resp.Status)
	}
	return nil
}

// Delete implements Forwarder.
func (f *HTTPForwarder) Delete(ctx context.Context, patientID string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, f.baseURL+"/patient/"+patientID, nil)
	if err != nil {
		return err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("delete patient data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest && resp.StatusCode != http.StatusNotFound {
		return fmt.Errorf("delete patient data: query service returned %s", resp.Status)
	}
	return nil
}

// NopForwarder discards everything; used when no query service is
// configured.
type NopForwarder struct{}

// Forward implements Forwarder.
func (NopForwarder) Forward(context.Context, *mtb.File) error { return nil }

// Delete implements Forwarder.
func (NopForwarder) Delete(context.Context, string) error { return nil }
