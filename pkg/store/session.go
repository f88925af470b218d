package store

import (
	"time"

	"smart-summary-be/pkg/render"
	"smart-summary-be/pkg/trends"
)

// Upload is one validated spreadsheet held in the session arena until
// report generation encodes it.
type Upload struct {
	ID       string `json:"id"`
	Key      string `json:"key"` // report slot name or batch key
	Filename string `json:"filename"`
	MIMEType string `json:"mime_type"`
	Size     int64  `json:"size"`
	Data     []byte `json:"-"`
}

// CompanyRef is a competitor the user pinned to the report request.
type CompanyRef struct {
	Name string `json:"name"`
	Cik  string `json:"cik"`
}

// Profile holds the company identity fields the report is built from.
type Profile struct {
	CompanyName   string       `json:"company_name"`
	NAICSCode     string       `json:"naics_code"`
	State         string       `json:"state"`
	Keywords      string       `json:"keywords"`
	ExpertOpinion string       `json:"expert_opinion"`
	ExpertName    string       `json:"expert_name"`
	Competitors   []CompanyRef `json:"competitors"`
}

// Report is the rendered outcome of one generation run.
type Report struct {
	Summary     string              `json:"summary"`
	UserTables  []render.Table      `json:"user_tables"`
	Industry    []IndustryTables    `json:"industry"`
	Indicators  *render.SeriesGroup `json:"indicators"`
	Trends      *render.SeriesGroup `json:"trends"`
	GeneratedAt time.Time           `json:"generated_at"`
}

// IndustryTables groups the rendered tables of one public company.
type IndustryTables struct {
	Name   string         `json:"name"`
	Cik    string         `json:"cik"`
	Tables []render.Table `json:"tables"`
}

// ReportSession is the per-user working state: everything collected by
// the form surface, the upload arena, and the last generated report.
type ReportSession struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Profile    Profile   `json:"profile"`
	Template   string    `json:"template"` // label of a canned template, or "custom"
	CustomText string    `json:"custom_text"`
	Indicators []string  `json:"indicators"`
	Uploads    []Upload  `json:"uploads"`
	Loading    bool      `json:"loading"`
	Failed     bool      `json:"failed"`
	Report     *Report   `json:"report,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// UploadFor returns the upload bound to key, or nil.
func (s *ReportSession) UploadFor(key string) *Upload {
	for i := range s.Uploads {
		if s.Uploads[i].Key == key {
			return &s.Uploads[i]
		}
	}
	return nil
}

// RemoveUpload drops the upload bound to key and reports whether one
// was there.
func (s *ReportSession) RemoveUpload(key string) bool {
	for i := range s.Uploads {
		if s.Uploads[i].Key == key {
			s.Uploads = append(s.Uploads[:i], s.Uploads[i+1:]...)
			return true
		}
	}
	return false
}

// Suggestion is one cached competitor suggestion from the analysis
// backend.
type Suggestion struct {
	Name  string `json:"name"`
	Cik   string `json:"cik"`
	State string `json:"state,omitempty"`
}

// SuggestionsFromBackend converts the wire companies into session
// suggestions.
func SuggestionsFromBackend(companies []trends.Company) []Suggestion {
	out := make([]Suggestion, 0, len(companies))
	for _, c := range companies {
		out = append(out, Suggestion{Name: c.Name, Cik: c.Cik, State: c.State})
	}
	return out
}
