package dto

import (
	"time"

	"smart-summary-be/pkg/store"
)

type GenerateReportResponse struct {
	ReportId uint          `json:"report_id,omitempty"`
	Report   *store.Report `json:"report"`
	Failed   bool          `json:"failed"`
}

type ShowReportResponse struct {
	Report *store.Report `json:"report"`
	Failed bool          `json:"failed"`
}

type ReportHistoryItem struct {
	Id          uint      `json:"id"`
	CompanyName string    `json:"company_name"`
	NaicsCode   int       `json:"naics_code"`
	Succeeded   bool      `json:"succeeded"`
	CreatedAt   time.Time `json:"created_at"`
}

type ReportHistoryResponse struct {
	Items []ReportHistoryItem `json:"items"`
	Total int64               `json:"total"`
}

type ReportHistoryDetail struct {
	Id          uint        `json:"id"`
	CompanyName string      `json:"company_name"`
	NaicsCode   int         `json:"naics_code"`
	Succeeded   bool        `json:"succeeded"`
	CreatedAt   time.Time   `json:"created_at"`
	Request     interface{} `json:"request"`
	Response    interface{} `json:"response"`
}

type EmailReportRequest struct {
	To string `json:"to" validate:"required,email"`
}
