package models

// Provider names the upstream system a Discount was sourced from.
type Provider string

const (
	ProviderStudentkortet Provider = "Studentkortet"
	ProviderMecenat       Provider = "Mecenat"
)

// StukScheme prefixes every Discount id. Mecenat records carry it as well.
const StukScheme = "stuk://"

// Discount is the unified record returned by the search endpoint.
type Discount struct {
	ID          string   `json:"id"`
	Brand       string   `json:"brand"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	LogoURL     string   `json:"logoUrl"`
	URL         string   `json:"url"`
	Provider    Provider `json:"provider"`
	Condition   *string  `json:"condition"`
}

type SearchResponse struct {
	Results []Discount `json:"results"`
}

func EmptySearchResponse() *SearchResponse {
	return &SearchResponse{Results: []Discount{}}
}
