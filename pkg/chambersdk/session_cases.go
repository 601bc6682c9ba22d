package chambersdk

import (
	"context"
	"net/http"
	"net/url"
)

// Me returns the authenticated judge.
func (s *Session) Me(ctx context.Context) (*IdentityResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/me")
	if err != nil {
		return nil, err
	}

	var out IdentityResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListCases returns the cases assigned to the authenticated judge.
func (s *Session) ListCases(ctx context.Context) (*CaseListResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/cases")
	if err != nil {
		return nil, err
	}

	var out CaseListResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetCase returns a single case by id.
func (s *Session) GetCase(ctx context.Context, id string) (*CaseResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/cases/"+url.PathEscape(id))
	if err != nil {
		return nil, err
	}

	var out CaseResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// LegalSearch returns the four search links for the inputs.
func (s *Session) LegalSearch(ctx context.Context, query, act, section string) (*LegalSearchResponse, error) {
	q := url.Values{
		"query":   {query},
		"act":     {act},
		"section": {section},
	}

	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/legal-search?"+q.Encode())
	if err != nil {
		return nil, err
	}

	var out LegalSearchResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
