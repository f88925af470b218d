package trends

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client talks to the external analysis backend. The backend owns all
// the heavy work (10-K extraction, FRED series, trend computation);
// this client only preserves its wire contract.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP: &http.Client{
			Timeout: timeout,
		},
	}
}

// CompanySuggestions fetches candidate competitor records for a NAICS
// code. state and keywords are omitted from the query entirely when
// empty; the backend distinguishes absent from blank.
func (c *Client) CompanySuggestions(ctx context.Context, naicsCode, state, keywords string) ([]Company, error) {
	params := url.Values{}
	params.Set("naics_code", naicsCode)
	if state != "" {
		params.Set("state", state)
	}
	if keywords != "" {
		params.Set("key_words", keywords)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/add_company_data/?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("server error: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var companies []Company
	if err := json.Unmarshal(body, &companies); err != nil {
		return nil, err
	}
	return companies, nil
}

// GetTrends submits the composed analysis request as one JSON POST.
// A non-2xx status is terminal for the attempt: no retry, no partial
// result. The raw response body is returned alongside the decoded
// response so callers can archive it verbatim.
func (c *Client) GetTrends(ctx context.Context, request *Request) (*Response, []byte, error) {
	payload, err := json.Marshal(request)
	if err != nil {
		return nil, nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/get_trends/", bytes.NewReader(payload))
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, nil, fmt.Errorf("server error: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, err
	}

	var decoded Response
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, nil, err
	}
	return &decoded, body, nil
}
