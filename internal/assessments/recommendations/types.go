package recommendations

// Channel mirrors the catalog's channel values so the engine stays
// free-standing; "all" marks cross-channel recommendations.
type Channel string

const (
	ChannelWebsite Channel = "website"
	ChannelSocial  Channel = "social"
	ChannelAds     Channel = "ads"
	ChannelAll     Channel = "all"
)

// Question is the minimal catalog representation the engine needs.
type Question struct {
	ID          string
	Category    string
	Channel     Channel
	Text        string
	Description string
	MaxScore    int
}

// Breakdown is the minimal score representation the engine needs.
type Breakdown struct {
	TotalScore        int
	WebsiteScore      int
	SocialScore       int
	AdScore           int
	Percentage        int
	WebsitePercentage int
	SocialPercentage  int
	AdPercentage      int
}

// Recommendation is a fully rendered suggestion; no further templating is
// required downstream.
type Recommendation struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Impact      string  `json:"impact"`
	Effort      string  `json:"effort"`
	Timeline    string  `json:"timeline"`
	Channel     Channel `json:"channel"`
}

const (
	ImpactHigh   = "High"
	ImpactMedium = "Medium"
	ImpactLow    = "Low"

	EffortLow    = "Low"
	EffortMedium = "Medium"
	EffortHigh   = "High"
)
