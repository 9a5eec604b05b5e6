package calendar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/advisor-calendar/backend/internal/storage/models"
)

// Client is the HTTP implementation of Service, speaking the advisor
// calendar REST API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the service at baseURL, e.g.
// "http://localhost:8099".
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// ListEvents fetches events for the advisor, unioned server-side with
// any additional advisors.
func (c *Client) ListEvents(ctx context.Context, advisorID string, additionalAdvisors []string) ([]models.CalendarEvent, error) {
	u := c.eventsURL(advisorID, "")
	if len(additionalAdvisors) > 0 {
		q := url.Values{}
		q.Set("additionalAdvisors", strings.Join(additionalAdvisors, ","))
		u += "?" + q.Encode()
	}

	var events []models.CalendarEvent
	if err := c.do(ctx, http.MethodGet, u, nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// CreateEvent persists a new event and returns the server-confirmed payload.
func (c *Client) CreateEvent(ctx context.Context, advisorID string, ev models.CalendarEvent) (models.CalendarEvent, error) {
	var created models.CalendarEvent
	err := c.do(ctx, http.MethodPost, c.eventsURL(advisorID, ""), ev, &created)
	return created, err
}

// UpdateEvent applies a partial update and returns the updated event.
// A patch with status "inactive" is the delete path.
func (c *Client) UpdateEvent(ctx context.Context, advisorID, eventID string, patch models.EventPatch) (models.CalendarEvent, error) {
	var updated models.CalendarEvent
	err := c.do(ctx, http.MethodPut, c.eventsURL(advisorID, eventID), patch, &updated)
	return updated, err
}

func (c *Client) eventsURL(advisorID, eventID string) string {
	u := fmt.Sprintf("%s/api/advisors/%s/calendar-events", c.baseURL, url.PathEscape(advisorID))
	if eventID != "" {
		u += "/" + url.PathEscape(eventID)
	}
	return u
}

// apiError mirrors the service's JSON error envelope.
type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (c *Client) do(ctx context.Context, method, url string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr apiError
		if decErr := json.NewDecoder(resp.Body).Decode(&apiErr); decErr == nil && apiErr.Message != "" {
			return fmt.Errorf("%s %s: %s (%s)", method, url, apiErr.Message, apiErr.Error)
		}
		return fmt.Errorf("%s %s: unexpected status %d", method, url, resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}
