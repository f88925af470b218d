package trends

// CompanyRef identifies a competitor filing entity. Name is null (not
// omitted) for free-text CIK entries, mirroring what the backend
// receives from the browser client.
type CompanyRef struct {
	Name *string `json:"name"`
	Cik  string  `json:"cik"`
}

// FilePayload is one uploaded spreadsheet, base64 data-URL encoded.
type FilePayload struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
	Type     string `json:"type"`
}

// Request is the single composed analysis payload for POST
// /get_trends/. Optional fields are omitted, never sent as null or
// empty: absence is how "not provided" travels.
type Request struct {
	NaicsCode       int                    `json:"naics_code"`
	CompanyCiks     []CompanyRef           `json:"company_ciks,omitempty"`
	ExpertOpinion   string                 `json:"expert_opinion,omitempty"`
	ExpertName      string                 `json:"expert_name,omitempty"`
	FredDataKeys    []string               `json:"fred_data_keys"`
	FredDataState   string                 `json:"fred_data_state"`
	CompanyName     string                 `json:"company_name"`
	CompanyKeywords []string               `json:"company_keywords"`
	FormatExample   string                 `json:"format_example"`
	Files           map[string]FilePayload `json:"files,omitempty"`
}

// IndustryEntry is one competitor's extracted 10-K tables.
type IndustryEntry struct {
	Name string `json:"name"`
	Cik  string `json:"cik"`
	Data Tables `json:"data"`
}

// Response is the backend's answer: a markdown narrative plus the
// tabular and time-series structures the renderer turns into tables.
type Response struct {
	Summary        string          `json:"summary"`
	UserData       []Row           `json:"user_data"`
	IndustryTables []IndustryEntry `json:"industry_tables"`
	FredData       *Node           `json:"fred_data"`
	Trends         *Node           `json:"trends"`
}

// Company is a suggested competitor from GET /add_company_data/.
type Company struct {
	Name  string `json:"name"`
	Cik   string `json:"cik"`
	State string `json:"state,omitempty"`
}
