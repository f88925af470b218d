package constant

// ReportSlots are the named single-file upload targets. Slot names
// travel as-is in the files mapping of the analysis request.
var ReportSlots = []string{
	"executive_summary",
	"income_statement_by_department",
	"income_statement_yoy",
	"balance_sheet",
	"cash_flow",
	"finance_record",
	"workforce",
	"forecasted_executive_summary",
}

// BatchKeyPrefix marks files that arrived through the batch pathway.
// The backend classifies those by content, not by slot.
const BatchKeyPrefix = "folder_file_"

// AllowedUploadMIMETypes are accepted spreadsheet media types.
var AllowedUploadMIMETypes = []string{
	"text/csv",
	"application/vnd.ms-excel",
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
}

// AllowedUploadExtensions are accepted filename suffixes. The match is
// case-sensitive: the original client checked raw suffixes and the
// backend's classifier was tuned against that.
var AllowedUploadExtensions = []string{".csv", ".xlsx", ".xls"}

// UploadErrorMessage is the inline validation error for rejects.
const UploadErrorMessage = "Please upload a CSV or Excel file (.csv, .xlsx, .xls)"

func IsReportSlot(slot string) bool {
	for _, s := range ReportSlots {
		if s == slot {
			return true
		}
	}
	return false
}
