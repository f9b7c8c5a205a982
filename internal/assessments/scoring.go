package assessments

import "math"

// Responses maps question IDs to the respondent's integer rating. The map
// may be sparse; an absent question counts as a rating of 0.
type Responses map[string]int

// ScoreBreakdown is derived from responses on every read and never stored
// as an independent entity.
type ScoreBreakdown struct {
	TotalScore        int `json:"totalScore"`
	WebsiteScore      int `json:"websiteScore"`
	SocialScore       int `json:"socialScore"`
	AdScore           int `json:"adScore"`
	Percentage        int `json:"percentage"`
	WebsitePercentage int `json:"websitePercentage"`
	SocialPercentage  int `json:"socialPercentage"`
	AdPercentage      int `json:"adPercentage"`
}

// RatingOf returns the rating for a question, defaulting to 0 when the
// question was not answered.
func RatingOf(responses Responses, questionID string) int {
	return responses[questionID]
}

// CalculateScores reduces responses into per-channel sums and percentages
// against the fixed channel maxima. It is pure and performs no range
// validation; the HTTP boundary rejects out-of-range ratings before they
// reach this function.
func CalculateScores(questions []Question, responses Responses) ScoreBreakdown {
	var website, social, ads int
	for _, q := range questions {
		rating := RatingOf(responses, q.ID)
		switch q.Channel {
		case ChannelWebsite:
			website += rating
		case ChannelSocial:
			social += rating
		case ChannelAds:
			ads += rating
		}
	}

	total := website + social + ads
	return ScoreBreakdown{
		TotalScore:        total,
		WebsiteScore:      website,
		SocialScore:       social,
		AdScore:           ads,
		Percentage:        percentOf(total, MaxTotalScore),
		WebsitePercentage: percentOf(website, MaxWebsiteScore),
		SocialPercentage:  percentOf(social, MaxSocialScore),
		AdPercentage:      percentOf(ads, MaxAdScore),
	}
}

// percentOf rounds half away from zero, so 17/33 yields 52.
func percentOf(score, max int) int {
	return int(math.Round(float64(score) / float64(max) * 100))
}

// ScoreLabel maps an overall percentage to its maturity label.
func ScoreLabel(percentage int) string {
	switch {
	case percentage >= 75:
		return "Sophisticated"
	case percentage >= 50:
		return "Moderate"
	case percentage >= 25:
		return "Limited"
	default:
		return "Minimal"
	}
}
