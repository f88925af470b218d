package trends

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompanySuggestionsQuery(t *testing.T) {
	var query map[string][]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/add_company_data/", r.URL.Path)
		query = r.URL.Query()
		w.Write([]byte(`[{"name": "Torrid Holdings Inc.", "cik": "0001792781"}]`))
	}))
	defer server.Close()

	client := NewClient(server.URL+"/", 5*time.Second)

	companies, err := client.CompanySuggestions(context.Background(), "448120", "", "clothing")
	require.NoError(t, err)
	require.Len(t, companies, 1)
	assert.Equal(t, "Torrid Holdings Inc.", companies[0].Name)

	assert.Equal(t, []string{"448120"}, query["naics_code"])
	assert.Equal(t, []string{"clothing"}, query["key_words"])
	// Empty state must be absent, not blank
	_, hasState := query["state"]
	assert.False(t, hasState)
}

func TestCompanySuggestionsServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "warming up", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	_, err := client.CompanySuggestions(context.Background(), "448120", "", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestGetTrends(t *testing.T) {
	var posted []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/get_trends/", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		posted, _ = io.ReadAll(r.Body)
		w.Write([]byte(`{"summary": "ok", "user_data": [{"Year": 2023}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	name := "Tapestry Inc."
	response, raw, err := client.GetTrends(context.Background(), &Request{
		NaicsCode:       448120,
		CompanyCiks:     []CompanyRef{{Name: &name, Cik: "0001116132"}, {Cik: "0000896878"}},
		FredDataKeys:    []string{"Real GDP"},
		FredDataState:   "FL",
		CompanyName:     "Acme Stores",
		CompanyKeywords: []string{"clothing"},
		FormatExample:   "**Overview**",
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", response.Summary)
	assert.JSONEq(t, `{"summary": "ok", "user_data": [{"Year": 2023}]}`, string(raw))

	// Untouched competitor names travel as explicit nulls
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(posted, &body))
	ciks := body["company_ciks"].([]interface{})
	require.Len(t, ciks, 2)
	assert.Equal(t, "Tapestry Inc.", ciks[0].(map[string]interface{})["name"])
	second := ciks[1].(map[string]interface{})
	_, hasName := second["name"]
	assert.True(t, hasName)
	assert.Nil(t, second["name"])
}

func TestGetTrendsServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	_, _, err := client.GetTrends(context.Background(), &Request{NaicsCode: 448120})
	require.Error(t, err)
}
