package dto

// SaveProfileMessage is the queue payload asking the consumer to push
// the form fields into the user's identity metadata bag.
type SaveProfileMessage struct {
	UserId      string `json:"user_id"`
	CompanyName string `json:"company_name"`
	NaicsCode   string `json:"naics_code"`
	State       string `json:"state"`
	Keywords    string `json:"keywords"`
}
