package assessments

import "fmt"

// Channel identifies the marketing channel a question belongs to.
type Channel string

const (
	ChannelWebsite Channel = "website"
	ChannelSocial  Channel = "social"
	ChannelAds     Channel = "ads"
	// ChannelAll marks recommendations that span every channel.
	ChannelAll Channel = "all"
)

// Question is one entry of the fixed questionnaire catalog.
type Question struct {
	ID          string  `json:"id"`
	Category    string  `json:"category"`
	Channel     Channel `json:"channel"`
	Text        string  `json:"text"`
	Description string  `json:"description"`
	MaxScore    int     `json:"maxScore"`
}

// Fixed channel maxima. The percentage math in scoring.go assumes the
// catalog below sums to exactly these values; VerifyCatalog checks that
// at startup so a catalog edit cannot silently skew percentages.
const (
	MaxWebsiteScore = 33
	MaxSocialScore  = 33
	MaxAdScore      = 34
	MaxTotalScore   = MaxWebsiteScore + MaxSocialScore + MaxAdScore
)

// VerifyCatalog checks the per-channel point sums against the fixed maxima
// and rejects duplicate question IDs. Callers should fail fast on error.
func VerifyCatalog(questions []Question) error {
	sums := map[Channel]int{}
	seen := make(map[string]bool, len(questions))
	for _, q := range questions {
		if q.MaxScore <= 0 {
			return fmt.Errorf("question %q has non-positive maxScore %d", q.ID, q.MaxScore)
		}
		if seen[q.ID] {
			return fmt.Errorf("duplicate question id %q", q.ID)
		}
		seen[q.ID] = true
		switch q.Channel {
		case ChannelWebsite, ChannelSocial, ChannelAds:
			sums[q.Channel] += q.MaxScore
		default:
			return fmt.Errorf("question %q has unknown channel %q", q.ID, q.Channel)
		}
	}
	if sums[ChannelWebsite] != MaxWebsiteScore {
		return fmt.Errorf("website questions sum to %d, want %d", sums[ChannelWebsite], MaxWebsiteScore)
	}
	if sums[ChannelSocial] != MaxSocialScore {
		return fmt.Errorf("social questions sum to %d, want %d", sums[ChannelSocial], MaxSocialScore)
	}
	if sums[ChannelAds] != MaxAdScore {
		return fmt.Errorf("ads questions sum to %d, want %d", sums[ChannelAds], MaxAdScore)
	}
	return nil
}

// Questions is the full questionnaire catalog. It is initialized once and
// never mutated; order matters because it is the tie-break for
// recommendation ranking.
var Questions = []Question{
	// Website (11 questions, 3 points each = 33)
	{
		ID:          "web_social_proof",
		Category:    "Social Proof",
		Channel:     ChannelWebsite,
		Text:        "Social Proof Implementation",
		Description: "Do you display customer testimonials, reviews, case studies, or user counts prominently?",
		MaxScore:    3,
	},
	{
		ID:          "web_trust_signals",
		Category:    "Trust Signals",
		Channel:     ChannelWebsite,
		Text:        "Trust & Authority Signals",
		Description: "Do you showcase certifications, awards, press mentions, or expert endorsements?",
		MaxScore:    3,
	},
	{
		ID:          "web_urgency",
		Category:    "Urgency & Scarcity",
		Channel:     ChannelWebsite,
		Text:        "Urgency and Scarcity",
		Description: "Do you use limited-time offers, stock indicators, or countdown timers effectively?",
		MaxScore:    3,
	},
	{
		ID:          "web_choice_architecture",
		Category:    "Choice Architecture",
		Channel:     ChannelWebsite,
		Text:        "Choice Architecture",
		Description: "Are your pricing tiers, product options, and CTAs strategically designed with clear defaults?",
		MaxScore:    3,
	},
	{
		ID:          "web_loss_aversion",
		Category:    "Loss Aversion",
		Channel:     ChannelWebsite,
		Text:        "Loss Aversion Framing",
		Description: "Do you frame benefits in terms of what customers might lose rather than gain?",
		MaxScore:    3,
	},
	{
		ID:          "web_visual_hierarchy",
		Category:    "Visual Psychology",
		Channel:     ChannelWebsite,
		Text:        "Visual Hierarchy",
		Description: "Is your design using color, contrast, and whitespace to guide attention effectively?",
		MaxScore:    3,
	},
	{
		ID:          "web_reciprocity",
		Category:    "Reciprocity",
		Channel:     ChannelWebsite,
		Text:        "Reciprocity Triggers",
		Description: "Do you offer free value (guides, tools, trials) before asking for commitment?",
		MaxScore:    3,
	},
	{
		ID:          "web_consistency",
		Category:    "Consistency",
		Channel:     ChannelWebsite,
		Text:        "Consistency & Commitment",
		Description: "Do you use micro-commitments (email signup, quiz, preferences) before the main ask?",
		MaxScore:    3,
	},
	{
		ID:          "web_anchoring",
		Category:    "Anchoring",
		Channel:     ChannelWebsite,
		Text:        "Price Anchoring",
		Description: "Do you strategically display higher prices first or show original vs. discounted prices?",
		MaxScore:    3,
	},
	{
		ID:          "web_friction_reduction",
		Category:    "Friction Reduction",
		Channel:     ChannelWebsite,
		Text:        "Friction Reduction",
		Description: "Have you minimized form fields, steps, and cognitive load in your conversion funnel?",
		MaxScore:    3,
	},
	{
		ID:          "web_progress_indicators",
		Category:    "Progress Tracking",
		Channel:     ChannelWebsite,
		Text:        "Progress Indicators",
		Description: "Do you show progress bars, step numbers, or completion percentages in multi-step processes?",
		MaxScore:    3,
	},

	// Social media (11 questions, 3 points each = 33)
	{
		ID:          "social_engagement_triggers",
		Category:    "Engagement",
		Channel:     ChannelSocial,
		Text:        "Engagement Triggers",
		Description: "Do you use questions, polls, and interactive content to boost engagement?",
		MaxScore:    3,
	},
	{
		ID:          "social_storytelling",
		Category:    "Storytelling",
		Channel:     ChannelSocial,
		Text:        "Narrative & Storytelling",
		Description: "Do you use compelling stories, customer journeys, and emotional narratives?",
		MaxScore:    3,
	},
	{
		ID:          "social_social_proof",
		Category:    "Social Proof",
		Channel:     ChannelSocial,
		Text:        "User-Generated Content",
		Description: "Do you showcase customer photos, reviews, testimonials, and success stories?",
		MaxScore:    3,
	},
	{
		ID:          "social_authority",
		Category:    "Authority",
		Channel:     ChannelSocial,
		Text:        "Authority Positioning",
		Description: "Do you share expertise, insights, and thought leadership content?",
		MaxScore:    3,
	},
	{
		ID:          "social_consistency",
		Category:    "Consistency",
		Channel:     ChannelSocial,
		Text:        "Posting Consistency",
		Description: "Do you maintain a consistent posting schedule and brand voice?",
		MaxScore:    3,
	},
	{
		ID:          "social_visual_appeal",
		Category:    "Visual Psychology",
		Channel:     ChannelSocial,
		Text:        "Visual Appeal",
		Description: "Are your visuals attention-grabbing, on-brand, and optimized for each platform?",
		MaxScore:    3,
	},
	{
		ID:          "social_fomo",
		Category:    "FOMO",
		Channel:     ChannelSocial,
		Text:        "FOMO Creation",
		Description: "Do you create fear of missing out through exclusive offers, limited spots, or trending content?",
		MaxScore:    3,
	},
	{
		ID:          "social_community",
		Category:    "Community",
		Channel:     ChannelSocial,
		Text:        "Community Building",
		Description: "Do you foster a sense of belonging and encourage user interaction and community?",
		MaxScore:    3,
	},
	{
		ID:          "social_cta_clarity",
		Category:    "Calls to Action",
		Channel:     ChannelSocial,
		Text:        "Clear CTAs",
		Description: "Are your calls-to-action clear, compelling, and easy to act on?",
		MaxScore:    3,
	},
	{
		ID:          "social_timing",
		Category:    "Timing",
		Channel:     ChannelSocial,
		Text:        "Strategic Timing",
		Description: "Do you post at optimal times based on audience analytics and platform algorithms?",
		MaxScore:    3,
	},
	{
		ID:          "social_emotional_triggers",
		Category:    "Emotional Triggers",
		Channel:     ChannelSocial,
		Text:        "Emotional Resonance",
		Description: "Do your posts trigger strong emotions (joy, curiosity, inspiration, urgency)?",
		MaxScore:    3,
	},

	// Paid advertising (11 questions; landing page question carries 4 points
	// so the channel rounds to 34)
	{
		ID:          "ads_headline_hooks",
		Category:    "Ad Creative",
		Channel:     ChannelAds,
		Text:        "Headline Hooks",
		Description: "Do your ad headlines use proven psychological triggers (curiosity, benefit, urgency)?",
		MaxScore:    3,
	},
	{
		ID:          "ads_visual_attention",
		Category:    "Visual Design",
		Channel:     ChannelAds,
		Text:        "Attention-Grabbing Visuals",
		Description: "Do your ad visuals stop the scroll and direct attention to key elements?",
		MaxScore:    3,
	},
	{
		ID:          "ads_social_proof",
		Category:    "Social Proof",
		Channel:     ChannelAds,
		Text:        "Social Proof in Ads",
		Description: "Do you include testimonials, ratings, user counts, or endorsements in ads?",
		MaxScore:    3,
	},
	{
		ID:          "ads_benefit_clarity",
		Category:    "Value Proposition",
		Channel:     ChannelAds,
		Text:        "Benefit Clarity",
		Description: "Is your unique value proposition instantly clear and compelling?",
		MaxScore:    3,
	},
	{
		ID:          "ads_urgency_scarcity",
		Category:    "Urgency",
		Channel:     ChannelAds,
		Text:        "Urgency & Scarcity",
		Description: "Do you use time-limited offers, exclusive access, or limited availability?",
		MaxScore:    3,
	},
	{
		ID:          "ads_cta_strength",
		Category:    "Call to Action",
		Channel:     ChannelAds,
		Text:        "CTA Effectiveness",
		Description: "Are your CTAs action-oriented, specific, and create urgency?",
		MaxScore:    3,
	},
	{
		ID:          "ads_targeting",
		Category:    "Targeting",
		Channel:     ChannelAds,
		Text:        "Audience Targeting",
		Description: "Are you using behavioral and psychographic targeting (not just demographics)?",
		MaxScore:    3,
	},
	{
		ID:          "ads_landing_congruence",
		Category:    "Message Match",
		Channel:     ChannelAds,
		Text:        "Ad-to-Landing Page Congruence",
		Description: "Does your landing page match the ad's promise, visuals, and messaging?",
		MaxScore:    3,
	},
	{
		ID:          "ads_landing_friction",
		Category:    "Landing Page",
		Channel:     ChannelAds,
		Text:        "Landing Page Optimization",
		Description: "Is your landing page optimized with minimal friction, clear path to conversion?",
		MaxScore:    4,
	},
	{
		ID:          "ads_testing",
		Category:    "Testing",
		Channel:     ChannelAds,
		Text:        "A/B Testing",
		Description: "Do you systematically test headlines, visuals, and CTAs based on behavioral principles?",
		MaxScore:    3,
	},
	{
		ID:          "ads_retargeting",
		Category:    "Retargeting",
		Channel:     ChannelAds,
		Text:        "Behavioral Retargeting",
		Description: "Do you use strategic retargeting with different messages for different behavior segments?",
		MaxScore:    3,
	},
}
