package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/medibook/appointment-engine/models"
)

// Client talks JSON over HTTP to the system of record. It implements both
// Source and DoctorSource.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

func NewClient(baseURL string, log zerolog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
		log:     log,
	}
}

func (c *Client) FetchAppointments(ctx context.Context, view View) ([]models.AppointmentRecord, error) {
	q := url.Values{}
	q.Set("role", view.Role)
	q.Set("user_id", view.UserID)

	var recs []models.AppointmentRecord
	if err := c.do(ctx, http.MethodGet, "/appointments?"+q.Encode(), nil, &recs); err != nil {
		return nil, err
	}
	for i := range recs {
		recs[i].Provenance = models.ProvenanceRemote
	}
	return recs, nil
}

func (c *Client) Submit(ctx context.Context, rec models.AppointmentRecord) (string, error) {
	var resp struct {
		ID string `json:"id"`
	}
	if err := c.do(ctx, http.MethodPost, "/appointments", rec, &resp); err != nil {
		return "", err
	}
	return resp.ID, nil
}

func (c *Client) Cancel(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPost, "/appointments/"+url.PathEscape(id)+"/cancel", nil, nil)
}

func (c *Client) FetchDoctors(ctx context.Context, filter DoctorFilter) ([]models.Doctor, error) {
	q := url.Values{}
	if filter.Specialization != "" {
		q.Set("specialization", filter.Specialization)
	}
	if filter.Search != "" {
		q.Set("search", filter.Search)
	}
	path := "/doctors"
	if enc := q.Encode(); enc != "" {
		path += "?" + enc
	}

	var docs []models.Doctor
	if err := c.do(ctx, http.MethodGet, path, nil, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		return fmt.Errorf("%w: server returned %d", ErrNetwork, resp.StatusCode)
	}
	if resp.StatusCode >= 400 {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("remote rejected %s %s: %d %s", method, path, resp.StatusCode, bytes.TrimSpace(raw))
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
