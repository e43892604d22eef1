package model

// NewsSeverity grades a news item: High for outbreaks, Low for routine.
type NewsSeverity string

const (
	SeverityHigh   NewsSeverity = "High"
	SeverityMedium NewsSeverity = "Medium"
	SeverityLow    NewsSeverity = "Low"
)

// News categories produced by the content-generation service.
const (
	CategoryOutbreak    = "Outbreak"
	CategoryNewDisease  = "New Disease"
	CategoryNewMedicine = "New Medicine"
	CategoryVaccine     = "Vaccine"
	CategoryResearch    = "Research"
	CategoryHealthAlert = "Health Alert"
)

// NewsLocation pins a news item to a country and state/region.
type NewsLocation struct {
	Country string `json:"country" example:"India"`
	State   string `json:"state" example:"Kerala"`
}

// NewsItem is one generated medical news article.
// @Description Generated medical news article
type NewsItem struct {
	ID       string       `json:"id"`
	Title    string       `json:"title"`
	Summary  string       `json:"summary"`
	Category string       `json:"category"`
	Location NewsLocation `json:"location"`
	// Date is "YYYY-MM-DD" as produced by the service.
	Date     string       `json:"date"`
	Content  string       `json:"content"`
	Severity NewsSeverity `json:"severity"`
	Source   string       `json:"source"`
	// Timestamp is the receive time in Unix milliseconds, used for
	// "time ago" display ordering.
	Timestamp int64 `json:"timestamp"`
	Breaking  bool  `json:"breaking,omitempty"`
}
