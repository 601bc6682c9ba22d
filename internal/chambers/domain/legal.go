package domain

import "fmt"

// LegalLink is one external legal-search suggestion.
type LegalLink struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
}

// BuildLegalLinks interpolates the inputs verbatim into the four search
// templates. Inputs are not URL-encoded.
func BuildLegalLinks(query, act, section string) [4]LegalLink {
	return [4]LegalLink{
		{
			Title:   "Indian Kanoon - Legal Search",
			URL:     "https://indiankanoon.org/search/?formInput=" + query,
			Snippet: fmt.Sprintf("Search results for %s on Indian Kanoon", query),
		},
		{
			Title:   "Supreme Court Cases",
			URL:     "https://main.sci.gov.in/judgments?query=" + query,
			Snippet: fmt.Sprintf("Supreme Court judgments related to %s", query),
		},
		{
			Title:   fmt.Sprintf("%s Section %s", act, section),
			URL:     fmt.Sprintf("https://www.google.com/search?q=%s+section+%s", act, section),
			Snippet: fmt.Sprintf("Detailed information about %s Section %s", act, section),
		},
		{
			Title:   "Legal Database",
			URL:     "https://www.lawctopus.com/?s=" + query,
			Snippet: fmt.Sprintf("Legal articles and resources about %s", query),
		},
	}
}
