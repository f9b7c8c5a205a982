package assessments

import "time"

// Assessment is a persisted submission. Only the raw responses and the
// computed channel sums are stored; percentages and recommendations are
// recomputed on every read.
type Assessment struct {
	ID           string    `json:"id"`
	Responses    Responses `json:"responses"`
	TotalScore   int       `json:"totalScore"`
	WebsiteScore int       `json:"websiteScore"`
	SocialScore  int       `json:"socialScore"`
	AdScore      int       `json:"adScore"`
	CompanyName  string    `json:"companyName,omitempty"`
	Email        string    `json:"email,omitempty"`
	Industry     string    `json:"industry,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Metadata holds the optional free-text fields accepted on submission.
type Metadata struct {
	CompanyName string
	Email       string
	Industry    string
}
