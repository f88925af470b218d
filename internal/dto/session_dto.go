package dto

import (
	"time"

	"smart-summary-be/pkg/store"
)

type CreateSessionResponse struct {
	Id string `json:"id"`
}

type UpdateProfileRequest struct {
	CompanyName   string           `json:"company_name"`
	NaicsCode     string           `json:"naics_code"`
	State         string           `json:"state"`
	Keywords      string           `json:"keywords"`
	ExpertOpinion string           `json:"expert_opinion"`
	ExpertName    string           `json:"expert_name"`
	Competitors   []CompetitorItem `json:"competitors" validate:"dive"`
	SaveToProfile bool             `json:"save_to_profile"`
}

type CompetitorItem struct {
	Name string `json:"name"`
	Cik  string `json:"cik" validate:"required"`
}

type UpdateTemplateRequest struct {
	Label      string `json:"label" validate:"required"`
	CustomText string `json:"custom_text"`
}

type AddIndicatorsRequest struct {
	Labels []string `json:"labels" validate:"required,min=1"`
}

type RemoveIndicatorRequest struct {
	Label string `json:"label" validate:"required"`
}

type UploadInfo struct {
	Key      string `json:"key"`
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
}

type BatchUploadResponse struct {
	Accepted []UploadInfo      `json:"accepted"`
	Rejected map[string]string `json:"rejected,omitempty"`
}

type ShowSessionResponse struct {
	Id         string        `json:"id"`
	Profile    store.Profile `json:"profile"`
	Template   string        `json:"template"`
	CustomText string        `json:"custom_text,omitempty"`
	Indicators []string      `json:"indicators"`
	Uploads    []UploadInfo  `json:"uploads"`
	Loading    bool          `json:"loading"`
	Failed     bool          `json:"failed"`
	HasReport  bool          `json:"has_report"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

type SuggestionsResponse struct {
	Suggestions []store.Suggestion `json:"suggestions"`
	Cached      bool               `json:"cached"`
}
