package usecase

import (
	"fmt"
	"strings"
	"time"

	"brandpulse-srv/internal/model"
)

const systemPrompt = "You are a senior influencer-marketing analyst. " +
	"You evaluate social media content for brand partnership fit and always answer with valid JSON only."

const responseSchema = `Respond with a single JSON object and nothing else, using exactly these keys:
{
  "overallSentiment": "Positive" | "Neutral" | "Negative",
  "sentimentScore": <integer from 0 to 100>,
  "brandAlignment": "Highly Aligned" | "Aligned" | "Partially Aligned" | "Not Aligned",
  "topKeywords": [<up to 5 short keywords>],
  "aiQuote": "<one-sentence verdict, at most 150 characters>",
  "contentAnalysis": [
    {
      "postIndex": <1-based post number>,
      "sentiment": "Positive" | "Neutral" | "Negative",
      "aiComment": "<short comment on this post>",
      "brandMention": true | false
    }
  ],
  "recommendations": [<up to 5 actionable recommendations>],
  "riskFactors": [<up to 3 risks>],
  "opportunities": [<up to 3 opportunities>],
  "engagementInsights": "<two or three sentences on audience engagement>"
}

Guidelines:
- Brand mention frequency: how often and how naturally the brand appears.
- Tone alignment: whether the creator's tone fits the brand's positioning.
- Engagement quality: comments and shares relative to likes, not raw volume alone.
- Authenticity: signs of genuine use versus scripted promotion.
- Risk: controversial topics, over-saturation with sponsors, audience mismatch.
- ROI: expected return of a partnership given reach and engagement.`

// buildPrompt renders the user prompt for one corpus. Output depends only on its arguments.
func buildPrompt(posts []model.Post, brand, influencer string) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Analyze the following %d social media posts by influencer %q for a potential partnership with brand %q.\n\n",
		len(posts), influencer, brand)

	for i, p := range posts {
		fmt.Fprintf(&sb, "Post %d:\n", i+1)
		fmt.Fprintf(&sb, "Caption: \"%s\"\n", p.CaptionText)
		fmt.Fprintf(&sb, "Engagement: %s\n", formatEngagement(p.Engagement))
		fmt.Fprintf(&sb, "Platform: %s\n", p.Platform)
		fmt.Fprintf(&sb, "Published: %s\n", p.PublishedAt.UTC().Format(time.RFC3339))
		fmt.Fprintf(&sb, "Hashtags: %s\n\n", formatHashtags(p.Hashtags))
	}

	sb.WriteString(responseSchema)
	return sb.String()
}

func formatEngagement(e model.Engagement) string {
	parts := []string{
		fmt.Sprintf("%d likes", e.Likes),
		fmt.Sprintf("%d comments", e.Comments),
	}
	if e.Shares > 0 {
		parts = append(parts, fmt.Sprintf("%d shares", e.Shares))
	}
	if e.Views != nil {
		parts = append(parts, fmt.Sprintf("%d views", *e.Views))
	}
	return strings.Join(parts, ", ")
}

func formatHashtags(tags []string) string {
	if len(tags) == 0 {
		return "None"
	}
	return strings.Join(tags, ", ")
}
