package recommendations

import (
	"fmt"
	"sort"
)

const (
	// maxRecommendations caps the final list; whatever assembly puts past
	// this position is dropped without re-sorting.
	maxRecommendations = 6

	// significantGap is the smallest maxScore-minus-rating gap that makes a
	// question an improvement opportunity.
	significantGap = 2

	// topOpportunities bounds how many gap-ranked questions feed the
	// per-channel tactical picks.
	topOpportunities = 10

	// channelTacticalThreshold is the channel percentage below which a
	// tactical recommendation is produced.
	channelTacticalThreshold = 70

	// lowRawScoreThreshold is the absolute raw channel score below which a
	// fixed booster recommendation is appended.
	lowRawScoreThreshold = 20
)

type weakQuestion struct {
	Question
	gap int
}

// Generate builds at most six recommendations from the catalog, the raw
// responses, and the derived breakdown. Output is deterministic: identical
// inputs produce identical lists.
func Generate(questions []Question, responses map[string]int, scores Breakdown) []Recommendation {
	recs := make([]Recommendation, 0, 8)

	weak := weakQuestions(questions, responses)

	if top, ok := weakestInChannel(weak, ChannelWebsite); ok && scores.WebsitePercentage < channelTacticalThreshold {
		recs = append(recs, Recommendation{
			Title:       fmt.Sprintf("Enhance %s on Website", top.Category),
			Description: fmt.Sprintf("%s: %s This is currently underutilized and represents a significant opportunity for conversion improvement.", top.Text, top.Description),
			Impact:      gapImpact(top.gap),
			Effort:      EffortMedium,
			Timeline:    "2-4 weeks",
			Channel:     ChannelWebsite,
		})
	}

	if top, ok := weakestInChannel(weak, ChannelSocial); ok && scores.SocialPercentage < channelTacticalThreshold {
		recs = append(recs, Recommendation{
			Title:       fmt.Sprintf("Improve %s in Social Media", top.Category),
			Description: fmt.Sprintf("%s: %s Implementing this can significantly boost engagement and brand trust.", top.Text, top.Description),
			Impact:      gapImpact(top.gap),
			Effort:      EffortLow,
			Timeline:    "1-2 weeks",
			Channel:     ChannelSocial,
		})
	}

	if top, ok := weakestInChannel(weak, ChannelAds); ok && scores.AdPercentage < channelTacticalThreshold {
		recs = append(recs, Recommendation{
			Title:       fmt.Sprintf("Optimize %s in Advertising", top.Category),
			Description: fmt.Sprintf("%s: %s This optimization can improve ad performance and ROI.", top.Text, top.Description),
			Impact:      gapImpact(top.gap),
			Effort:      EffortMedium,
			Timeline:    "1-3 weeks",
			Channel:     ChannelAds,
		})
	}

	if scores.Percentage < 50 {
		recs = append(recs, Recommendation{
			Title:       "Establish Behavioral Science Foundation",
			Description: "Your current score indicates limited behavioral science application. Focus on implementing core principles like social proof, clear CTAs, and visual hierarchy across all channels. This will create a strong foundation for conversion optimization.",
			Impact:      ImpactHigh,
			Effort:      EffortHigh,
			Timeline:    "4-8 weeks",
			Channel:     ChannelAll,
		})
	} else if scores.Percentage < 75 {
		recs = append(recs, Recommendation{
			Title:       "Enhance Cross-Channel Consistency",
			Description: "You have moderate behavioral science application. Focus on creating consistent persuasion architecture across website, social, and ads. Ensure messaging, social proof, and urgency tactics are aligned for maximum impact.",
			Impact:      ImpactHigh,
			Effort:      EffortMedium,
			Timeline:    "3-6 weeks",
			Channel:     ChannelAll,
		})
	}

	if scores.WebsiteScore < lowRawScoreThreshold {
		recs = append(recs, Recommendation{
			Title:       "Implement Website Social Proof Suite",
			Description: "Add testimonials, reviews, case studies, and trust badges to your website. Display real-time activity notifications and customer counts to leverage social proof psychology.",
			Impact:      ImpactHigh,
			Effort:      EffortMedium,
			Timeline:    "2-3 weeks",
			Channel:     ChannelWebsite,
		})
	}

	if scores.SocialScore < lowRawScoreThreshold {
		recs = append(recs, Recommendation{
			Title:       "Develop Social Media Engagement Strategy",
			Description: "Create a content calendar focused on interactive posts (polls, questions, UGC). Use storytelling and emotional triggers to increase engagement and build community.",
			Impact:      ImpactMedium,
			Effort:      EffortLow,
			Timeline:    "1-2 weeks",
			Channel:     ChannelSocial,
		})
	}

	if scores.AdScore < lowRawScoreThreshold {
		recs = append(recs, Recommendation{
			Title:       "Rebuild Ad Creative with Behavioral Principles",
			Description: "Redesign ad creatives to include clear urgency signals, social proof elements, and benefit-focused headlines. Ensure landing pages match ad promises perfectly.",
			Impact:      ImpactHigh,
			Effort:      EffortHigh,
			Timeline:    "3-4 weeks",
			Channel:     ChannelAds,
		})
	}

	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}

// weakQuestions ranks questions by descending gap, keeping only significant
// gaps. The sort is stable so catalog order breaks ties, which keeps the
// output reproducible.
func weakQuestions(questions []Question, responses map[string]int) []weakQuestion {
	weak := make([]weakQuestion, 0, len(questions))
	for _, q := range questions {
		gap := q.MaxScore - responses[q.ID]
		if gap >= significantGap {
			weak = append(weak, weakQuestion{Question: q, gap: gap})
		}
	}
	sort.SliceStable(weak, func(i, j int) bool {
		return weak[i].gap > weak[j].gap
	})
	if len(weak) > topOpportunities {
		weak = weak[:topOpportunities]
	}
	return weak
}

// weakestInChannel returns the highest-gap surviving question for a channel.
func weakestInChannel(weak []weakQuestion, channel Channel) (weakQuestion, bool) {
	for _, w := range weak {
		if w.Channel == channel {
			return w, true
		}
	}
	return weakQuestion{}, false
}

func gapImpact(gap int) string {
	if gap >= 3 {
		return ImpactHigh
	}
	return ImpactMedium
}
