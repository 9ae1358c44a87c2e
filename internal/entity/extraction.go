package entity

// GuidanceGeneralKey holds tasks common to every requested university.
const GuidanceGeneralKey = "General"

// MaxScholarships is how many records a scholarship search asks for.
const MaxScholarships = 5

type GuidanceRequest struct {
	Universities []string `json:"universities"`
	Country      string   `json:"country"`
}

type GuidanceTask struct {
	Task    string `json:"task"`
	Details string `json:"details"`
}

// Guidance maps a university name (and GuidanceGeneralKey) to its ordered task list.
type Guidance map[string][]GuidanceTask

type Scholarship struct {
	Title       string `json:"title"`
	Amount      string `json:"amount"`
	Deadline    string `json:"deadline"`
	Description string `json:"description"`
	Link        string `json:"link"`
}

type ScholarshipSearchResponse struct {
	Scholarships []Scholarship `json:"scholarships"`
	Error        string        `json:"error,omitempty"`
}

// University is one record of the remote university directory.
type University struct {
	Name          string   `json:"name"`
	Country       string   `json:"country"`
	AlphaTwoCode  string   `json:"alpha_two_code"`
	StateProvince *string  `json:"state-province"`
	Domains       []string `json:"domains"`
	WebPages      []string `json:"web_pages"`
}
