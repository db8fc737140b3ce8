package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/wadjakorntonsri/cloud-resume/pkg/core/domain"
	"github.com/wadjakorntonsri/cloud-resume/pkg/ports"
)

var errMissingCount = errors.New("Failed to get visitor count: response has no visitorCount")

// APIError is a non-2xx answer from the API.
type APIError struct {
	Op         string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Op + ": " + e.Message
}

// Client calls the three resume API operations under BaseURL.
type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a client for baseURL. A nil httpClient gets a 10 second timeout.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: httpClient}
}

func (c *Client) AddVisitor(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/add-visitor", nil)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, "Failed to add visitor", nil)
}

func (c *Client) GetVisitorCount(ctx context.Context) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/get-visitor-count", nil)
	if err != nil {
		return 0, err
	}
	var out struct {
		VisitorCount *int `json:"visitorCount"`
	}
	if err := c.do(req, "Failed to get visitor count", &out); err != nil {
		return 0, err
	}
	if out.VisitorCount == nil {
		return 0, errMissingCount
	}
	return *out.VisitorCount, nil
}

// SendMessage posts the submission. A rejected request yields an *APIError
// reading "Failed to send email: <server message>".
func (c *Client) SendMessage(ctx context.Context, sub domain.ContactSubmission) error {
	payload, err := json.Marshal(sub)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/send-message", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, "Failed to send email", nil)
}

func (c *Client) do(req *http.Request, op string, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Op: op, StatusCode: resp.StatusCode}
		var msg struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(body, &msg) == nil && msg.Message != "" {
			apiErr.Message = msg.Message
		} else {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	return json.Unmarshal(body, out)
}

var (
	_ ports.VisitorAPI = (*Client)(nil)
	_ ports.MessageAPI = (*Client)(nil)
)
