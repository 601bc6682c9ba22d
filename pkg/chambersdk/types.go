package chambersdk

import "github.com/aussiebroadwan/chambers/pkg/jwtx"

// ErrorResponse is the wire form of an API error.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// TokenResponse is returned by POST /v1/token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type" example:"Bearer"`
	ExpiresIn   int    `json:"expires_in" example:"900"`
}

// IdentityResponse describes the authenticated judge.
type IdentityResponse struct {
	ID          string `json:"id" example:"01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV"`
	Username    string `json:"username" example:"judge1"`
	DisplayName string `json:"display_name" example:"Justice Sharma"`
	Court       string `json:"court" example:"Delhi High Court"`
}

// CaseResponse is one case record.
type CaseResponse struct {
	ID           string `json:"id"`
	Judge        string `json:"judge" example:"Justice Sharma"`
	CaseNumber   string `json:"case_number" example:"CRL/2024/125"`
	CaseName     string `json:"case_name"`
	CaseCategory string `json:"case_category" example:"Criminal"`
	LegalSection string `json:"legal_section" example:"IPC 302"`
	Parties      string `json:"parties"`
	Status       string `json:"status" example:"Trial Stage"`
	FilingDate   string `json:"filing_date" example:"15 Jan 2024"`
	NextHearing  string `json:"next_hearing" example:"15 Dec 2024"`
	Description  string `json:"description"`
}

// CaseListResponse is the judge's case list in insertion order.
type CaseListResponse struct {
	Cases []CaseResponse `json:"cases"`
}

// LegalLink is one external search suggestion.
type LegalLink struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
}

// LegalSearchResponse always holds four links.
type LegalSearchResponse struct {
	Query   string      `json:"query"`
	Act     string      `json:"act"`
	Section string      `json:"section"`
	Results []LegalLink `json:"results"`
}

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime,omitempty"`
	Version string        `json:"version,omitempty"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks lists the readiness of each dependency.
type HealthChecks struct {
	Database string `json:"database"`
	Signer   string `json:"signer"`
}

// JWKSResponse holds the public keys that verify API tokens.
type JWKSResponse jwtx.JWKS
