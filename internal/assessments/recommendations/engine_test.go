package recommendations

import (
	"fmt"
	"math"
	"reflect"
	"strings"
	"testing"
)

// fixtureCatalog mirrors the production catalog's shape: 11 questions per
// channel at 3 points each, except one ads question worth 4.
func fixtureCatalog() []Question {
	var out []Question
	for _, ch := range []Channel{ChannelWebsite, ChannelSocial, ChannelAds} {
		for i := 0; i < 11; i++ {
			max := 3
			if ch == ChannelAds && i == 8 {
				max = 4
			}
			out = append(out, Question{
				ID:          fmt.Sprintf("%s_q%02d", ch, i),
				Category:    fmt.Sprintf("Category %s %d", ch, i),
				Channel:     ch,
				Text:        fmt.Sprintf("Question %s %d", ch, i),
				Description: "Do you do the thing?",
				MaxScore:    max,
			})
		}
	}
	return out
}

func breakdownFor(questions []Question, responses map[string]int) Breakdown {
	var website, social, ads int
	for _, q := range questions {
		switch q.Channel {
		case ChannelWebsite:
			website += responses[q.ID]
		case ChannelSocial:
			social += responses[q.ID]
		case ChannelAds:
			ads += responses[q.ID]
		}
	}
	pct := func(score, max int) int {
		return int(math.Round(float64(score) / float64(max) * 100))
	}
	total := website + social + ads
	return Breakdown{
		TotalScore:        total,
		WebsiteScore:      website,
		SocialScore:       social,
		AdScore:           ads,
		Percentage:        pct(total, 100),
		WebsitePercentage: pct(website, 33),
		SocialPercentage:  pct(social, 33),
		AdPercentage:      pct(ads, 34),
	}
}

func ratedAt(questions []Question, value func(Question) int) map[string]int {
	responses := make(map[string]int, len(questions))
	for _, q := range questions {
		responses[q.ID] = value(q)
	}
	return responses
}

func channelsOf(recs []Recommendation) []Channel {
	out := make([]Channel, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.Channel)
	}
	return out
}

func findTitle(recs []Recommendation, title string) (Recommendation, bool) {
	for _, r := range recs {
		if r.Title == title {
			return r, true
		}
	}
	return Recommendation{}, false
}

func TestGenerateEmptyResponses(t *testing.T) {
	questions := fixtureCatalog()
	responses := map[string]int{}
	recs := Generate(questions, responses, breakdownFor(questions, responses))

	if len(recs) != 6 {
		t.Fatalf("expected cap of 6 recommendations, got %d", len(recs))
	}
	if _, ok := findTitle(recs, "Establish Behavioral Science Foundation"); !ok {
		t.Fatalf("expected foundation recommendation, got %v", channelsOf(recs))
	}
	if _, ok := findTitle(recs, "Implement Website Social Proof Suite"); !ok {
		t.Fatalf("expected website booster")
	}
	if _, ok := findTitle(recs, "Develop Social Media Engagement Strategy"); !ok {
		t.Fatalf("expected social booster")
	}
	if _, ok := findTitle(recs, "Rebuild Ad Creative with Behavioral Principles"); !ok {
		t.Fatalf("expected ads booster")
	}

	// The 4-point ads question sorts first on gap, and the top-10 cut then
	// holds only it plus nine website questions, so no social tactical is
	// produced and the six survivors fit the cap exactly.
	if _, ok := findTitle(recs, "Improve Category social 0 in Social Media"); ok {
		t.Fatalf("social channel has no surviving top-10 opportunity; no tactical expected")
	}

	want := []Channel{ChannelWebsite, ChannelAds, ChannelAll, ChannelWebsite, ChannelSocial, ChannelAds}
	if got := channelsOf(recs); !reflect.DeepEqual(got, want) {
		t.Fatalf("assembly order = %v, want %v", got, want)
	}
}

func TestGenerateAllMaxProducesNothing(t *testing.T) {
	questions := fixtureCatalog()
	responses := ratedAt(questions, func(q Question) int { return q.MaxScore })
	recs := Generate(questions, responses, breakdownFor(questions, responses))

	if len(recs) != 0 {
		t.Fatalf("expected no recommendations at full marks, got %d", len(recs))
	}
}

func TestGenerateDeterministic(t *testing.T) {
	questions := fixtureCatalog()
	responses := map[string]int{
		"website_q00": 1,
		"website_q03": 0,
		"social_q05":  2,
		"ads_q08":     1,
	}
	scores := breakdownFor(questions, responses)

	first := Generate(questions, responses, scores)
	second := Generate(questions, responses, scores)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected deterministic output")
	}
}

func TestGenerateGapThreshold(t *testing.T) {
	questions := fixtureCatalog()

	// All website questions rated maxScore-1 (gap 1): no opportunity survives
	// even though the channel percentage is below 70.
	responses := ratedAt(questions, func(q Question) int {
		if q.Channel == ChannelWebsite {
			return q.MaxScore - 1
		}
		return q.MaxScore
	})
	scores := breakdownFor(questions, responses)
	if scores.WebsitePercentage >= 70 {
		t.Fatalf("fixture broken: website percentage %d", scores.WebsitePercentage)
	}
	recs := Generate(questions, responses, scores)
	for _, r := range recs {
		if strings.HasPrefix(r.Title, "Enhance ") {
			t.Fatalf("gap of 1 must not produce a tactical recommendation: %+v", r)
		}
	}

	// Rated maxScore-2 (gap 2): qualifies.
	responses = ratedAt(questions, func(q Question) int {
		if q.Channel == ChannelWebsite {
			return q.MaxScore - 2
		}
		return q.MaxScore
	})
	recs = Generate(questions, responses, breakdownFor(questions, responses))
	if len(recs) == 0 || recs[0].Channel != ChannelWebsite {
		t.Fatalf("gap of 2 should produce a website tactical recommendation, got %v", channelsOf(recs))
	}
}

func TestGenerateTacticalImpactByGap(t *testing.T) {
	questions := fixtureCatalog()

	// Gap 2 across the channel: Medium impact.
	responses := ratedAt(questions, func(q Question) int {
		if q.Channel == ChannelSocial {
			return q.MaxScore - 2
		}
		return q.MaxScore
	})
	recs := Generate(questions, responses, breakdownFor(questions, responses))
	if len(recs) == 0 || recs[0].Channel != ChannelSocial {
		t.Fatalf("expected social tactical first, got %v", channelsOf(recs))
	}
	if recs[0].Impact != ImpactMedium {
		t.Fatalf("gap 2 impact = %q, want Medium", recs[0].Impact)
	}
	if recs[0].Effort != EffortLow || recs[0].Timeline != "1-2 weeks" {
		t.Fatalf("social tactical effort/timeline = %q/%q", recs[0].Effort, recs[0].Timeline)
	}

	// Gap 3: High impact.
	responses = ratedAt(questions, func(q Question) int {
		if q.Channel == ChannelSocial {
			return 0
		}
		return q.MaxScore
	})
	recs = Generate(questions, responses, breakdownFor(questions, responses))
	if len(recs) == 0 || recs[0].Impact != ImpactHigh {
		t.Fatalf("gap 3 should yield High impact, got %v", recs)
	}
}

func TestGenerateTieBreakIsCatalogOrder(t *testing.T) {
	questions := fixtureCatalog()
	responses := ratedAt(questions, func(q Question) int {
		if q.Channel == ChannelWebsite {
			return 0 // every website question ties at gap 3
		}
		return q.MaxScore
	})

	recs := Generate(questions, responses, breakdownFor(questions, responses))
	if len(recs) == 0 {
		t.Fatalf("expected recommendations")
	}
	// The first catalog entry wins the tie.
	wantTitle := "Enhance Category website 0 on Website"
	if recs[0].Title != wantTitle {
		t.Fatalf("title = %q, want %q", recs[0].Title, wantTitle)
	}
}

func TestGenerateStrategicThresholds(t *testing.T) {
	questions := fixtureCatalog()

	// Overall 78: no strategic recommendation.
	responses := ratedAt(questions, func(q Question) int {
		if q.Channel == ChannelWebsite {
			return 1
		}
		return q.MaxScore
	})
	scores := breakdownFor(questions, responses)
	if scores.Percentage != 78 {
		t.Fatalf("fixture broken: overall %d, want 78", scores.Percentage)
	}
	recs := Generate(questions, responses, scores)
	for _, r := range recs {
		if r.Channel == ChannelAll {
			t.Fatalf("no strategic recommendation expected at 78%%, got %+v", r)
		}
	}
	if _, ok := findTitle(recs, "Enhance Category website 0 on Website"); !ok {
		t.Fatalf("expected website tactical at 33%% channel score")
	}

	// Overall in [50, 75): cross-channel consistency.
	responses = ratedAt(questions, func(q Question) int { return 2 })
	scores = breakdownFor(questions, responses)
	if scores.Percentage < 50 || scores.Percentage >= 75 {
		t.Fatalf("fixture broken: overall %d", scores.Percentage)
	}
	recs = Generate(questions, responses, scores)
	rec, ok := findTitle(recs, "Enhance Cross-Channel Consistency")
	if !ok {
		t.Fatalf("expected consistency recommendation, got %v", channelsOf(recs))
	}
	if rec.Impact != ImpactHigh || rec.Effort != EffortMedium || rec.Timeline != "3-6 weeks" || rec.Channel != ChannelAll {
		t.Fatalf("consistency fields = %+v", rec)
	}
}

func TestGenerateLengthAlwaysWithinCap(t *testing.T) {
	questions := fixtureCatalog()
	cases := []map[string]int{
		{},
		ratedAt(questions, func(q Question) int { return q.MaxScore }),
		ratedAt(questions, func(q Question) int { return 1 }),
		ratedAt(questions, func(q Question) int { return 2 }),
		{"website_q00": 3, "ads_q08": 4},
	}
	for i, responses := range cases {
		recs := Generate(questions, responses, breakdownFor(questions, responses))
		if len(recs) > 6 {
			t.Fatalf("case %d: %d recommendations exceeds cap", i, len(recs))
		}
	}
}
