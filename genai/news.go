package genai

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"google.golang.org/genai"

	"github.com/hgapps/medicare-api/model"
)

// NewsQuery scopes a news fetch.
type NewsQuery struct {
	// Focus is an optional free-text topic or search query.
	Focus string
	// Region is an optional "City/Country" hint derived from the caller's
	// IP; when set the feed leans toward that region.
	Region   string
	Language model.Language
}

var newsSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"news": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"title":    {Type: genai.TypeString},
					"summary":  {Type: genai.TypeString},
					"category": {Type: genai.TypeString, Description: "One of: 'New Disease', 'Outbreak', 'New Medicine', 'Vaccine', 'Research', 'Health Alert'"},
					"location": {
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"country": {Type: genai.TypeString},
							"state":   {Type: genai.TypeString, Description: "State, Province, or Region"},
						},
						Required: []string{"country", "state"},
					},
					"date":     {Type: genai.TypeString, Description: "YYYY-MM-DD"},
					"content":  {Type: genai.TypeString, Description: "Full article text (3 paragraphs)."},
					"severity": {Type: genai.TypeString, Description: "High, Medium, or Low"},
					"source":   {Type: genai.TypeString, Description: "Source organization"},
				},
				Required: []string{"title", "summary", "category", "location", "date", "content", "severity", "source"},
			},
		},
	},
	Required: []string{"news"},
}

type newsDocument struct {
	News []model.NewsItem `json:"news"`
}

// FetchNews generates a feed of six news items. In demo mode the fixed demo
// feed is returned. Item ids and receive timestamps are assigned here;
// timestamps are staggered slightly back so the feed reads as a stream.
func (c *Client) FetchNews(ctx context.Context, q NewsQuery) ([]model.NewsItem, error) {
	if c.Demo() {
		return demoNews(), nil
	}

	prompt := fmt.Sprintf(`Act as a real-time medical news aggregator.
Generate 6 distinct, diverse global medical news items from the last 24 hours.
Categories: New Diseases, Outbreaks, New Medicines, Vaccine Updates, Research.

CRITICAL: Extract specific Country and State/Region.
CRITICAL: Assign severity (High for outbreaks, Low for routine).
%s%s
Target Language: %s.`, focusLine(q.Focus), regionLine(q.Region), q.Language.Name())

	var doc newsDocument
	if err := c.generateJSON(ctx, newsModel, prompt, "", newsSchema, nil, &doc); err != nil {
		return nil, err
	}

	now := time.Now()
	for i := range doc.News {
		doc.News[i].ID = uuid.NewString()
		doc.News[i].Timestamp = now.Add(-time.Duration(i) * time.Hour).UnixMilli()
	}
	return doc.News, nil
}

// BreakingNews generates a single live-update item. Demo mode returns nil so
// callers simply skip the pulse.
func (c *Client) BreakingNews(ctx context.Context, lang model.Language) (*model.NewsItem, error) {
	if c.Demo() {
		return nil, nil
	}

	prompt := fmt.Sprintf(`GENERATE A BREAKING MEDICAL NEWS ALERT.
Imagine a brand new medical event just happened RIGHT NOW.
It should be different from previous items.
Topics: Sudden Disease Outbreak, FDA Emergency Approval, Major Research Breakthrough.

Target Language: %s.`, lang.Name())

	var doc newsDocument
	if err := c.generateJSON(ctx, newsModel, prompt, "", newsSchema, nil, &doc); err != nil {
		return nil, err
	}
	if len(doc.News) == 0 {
		return nil, nil
	}

	item := doc.News[0]
	item.ID = uuid.NewString()
	item.Timestamp = time.Now().UnixMilli()
	item.Breaking = true
	return &item, nil
}

func focusLine(focus string) string {
	if focus == "" {
		return ""
	}
	return fmt.Sprintf("\nFocus on: %q.", focus)
}

func regionLine(region string) string {
	if region == "" {
		return ""
	}
	return fmt.Sprintf("\nPrefer items relevant to: %s.", region)
}
