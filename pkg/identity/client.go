// Package identity talks to the identity provider's management API to
// read and write the public metadata bag attached to each user. The
// saved form fields live there so they follow the user across devices.
package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2/clientcredentials"
)

// Profile metadata keys. The names match what the form surface has
// always stored, so existing user bags keep working.
const (
	KeyCompanyName   = "companyName"
	KeyNAICSCode     = "naicsCode"
	KeySelectedState = "selectedState"
	KeyKeywords      = "keywords"
)

// Client is a management-API client authenticated with client
// credentials.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a client. The token URL and credentials come from
// the identity provider's machine-to-machine application.
func NewClient(baseURL, tokenURL, clientID, clientSecret string) *Client {
	cc := clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     tokenURL,
	}
	httpClient := cc.Client(context.Background())
	httpClient.Timeout = 15 * time.Second

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

type userResource struct {
	PublicMetadata map[string]interface{} `json:"public_metadata"`
}

// LoadMetadata fetches the user's public metadata bag.
func (c *Client) LoadMetadata(ctx context.Context, userID string) (map[string]interface{}, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.userURL(userID), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("identity fetch user: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, fmt.Errorf("identity fetch user: status %d: %s", resp.StatusCode, string(body))
	}

	var user userResource
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("identity decode user: %w", err)
	}
	if user.PublicMetadata == nil {
		user.PublicMetadata = map[string]interface{}{}
	}
	return user.PublicMetadata, nil
}

// SaveMetadata overlays the given fields onto the user's current bag
// and writes the merged result back. Fields not in the patch survive.
func (c *Client) SaveMetadata(ctx context.Context, userID string, patch map[string]interface{}) error {
	current, err := c.LoadMetadata(ctx, userID)
	if err != nil {
		return err
	}
	for k, v := range patch {
		current[k] = v
	}

	payload, err := json.Marshal(userResource{PublicMetadata: current})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, c.userURL(userID)+"/metadata", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("identity update metadata: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("identity update metadata: status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

func (c *Client) userURL(userID string) string {
	return fmt.Sprintf("%s/v1/users/%s", c.baseURL, userID)
}
