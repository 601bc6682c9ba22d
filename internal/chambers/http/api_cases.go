package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/aussiebroadwan/chambers/internal/chambers/domain"
	"github.com/aussiebroadwan/chambers/internal/chambers/service"
	"github.com/aussiebroadwan/chambers/internal/chambers/store"
	"github.com/aussiebroadwan/chambers/pkg/chambersdk"
	"github.com/aussiebroadwan/chambers/pkg/httpx"
	"github.com/aussiebroadwan/chambers/pkg/slogx"
)

// APIHandler serves the bearer authenticated /v1 endpoints.
type APIHandler struct {
	Store store.Store
	Cases *service.CaseService
}

// bearerIdentity loads the identity named by the token subject. The token
// alone is not trusted for the display name: the case filter uses the stored
// value.
func (h *APIHandler) bearerIdentity(ctx context.Context) (domain.Identity, error) {
	id, ok := httpx.IdentityIDFromContext(ctx)
	if !ok {
		return domain.Identity{}, service.ErrUnauthenticated
	}
	ident, err := h.Store.Identities().GetIdentityByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Identity{}, service.ErrUnauthenticated
	}
	return ident, err
}

func (h *APIHandler) writeIdentityError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, service.ErrUnauthenticated) {
		chambersdk.ErrInvalidToken.WriteError(w)
		return
	}
	slogx.FromContext(r.Context()).Error("failed to load identity", "err", err)
	chambersdk.ErrServerError.WriteError(w)
}

// HandleMe returns the authenticated judge.
//
//	@Summary		Current identity
//	@Tags			Cases
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	chambersdk.IdentityResponse
//	@Failure		401	{object}	chambersdk.ErrorResponse	"Invalid or missing access token"
//	@Router			/v1/me [get].
func (h *APIHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	ident, err := h.bearerIdentity(r.Context())
	if err != nil {
		h.writeIdentityError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, chambersdk.IdentityResponse{
		ID:          ident.ID,
		Username:    ident.Username,
		DisplayName: ident.DisplayName,
		Court:       ident.Court,
	})
}

// HandleListCases returns the cases assigned to the authenticated judge.
//
//	@Summary		List my cases
//	@Description	Cases whose assigned judge is the caller, in the order they were filed into the system.
//	@Tags			Cases
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	chambersdk.CaseListResponse
//	@Failure		401	{object}	chambersdk.ErrorResponse	"Invalid or missing access token"
//	@Router			/v1/cases [get].
func (h *APIHandler) HandleListCases(w http.ResponseWriter, r *http.Request) {
	ident, err := h.bearerIdentity(r.Context())
	if err != nil {
		h.writeIdentityError(w, r, err)
		return
	}

	cases, err := h.Cases.ListForJudge(r.Context(), ident.DisplayName)
	if err != nil {
		slogx.FromContext(r.Context()).Error("failed to list cases", "err", err)
		chambersdk.ErrServerError.WriteError(w)
		return
	}

	out := chambersdk.CaseListResponse{Cases: make([]chambersdk.CaseResponse, 0, len(cases))}
	for _, c := range cases {
		out.Cases = append(out.Cases, toCaseResponse(c))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGetCase returns one case.
//
//	@Summary		Get a case
//	@Description	Returns 404 for unknown ids, and for other judges' cases when the server runs with CASE_ACCESS_POLICY=assigned.
//	@Tags			Cases
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Case id"
//	@Success		200	{object}	chambersdk.CaseResponse
//	@Failure		401	{object}	chambersdk.ErrorResponse	"Invalid or missing access token"
//	@Failure		404	{object}	chambersdk.ErrorResponse	"not_found"
//	@Router			/v1/cases/{id} [get].
func (h *APIHandler) HandleGetCase(w http.ResponseWriter, r *http.Request) {
	ident, err := h.bearerIdentity(r.Context())
	if err != nil {
		h.writeIdentityError(w, r, err)
		return
	}

	c, err := h.Cases.GetForIdentity(r.Context(), ident, r.PathValue("id"))
	if errors.Is(err, service.ErrCaseNotFound) {
		chambersdk.ErrNotFound.WriteError(w)
		return
	}
	if err != nil {
		slogx.FromContext(r.Context()).Error("failed to load case", "err", err)
		chambersdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toCaseResponse(c))
}

// HandleLegalSearch returns the four legal search links.
//
//	@Summary		Legal search links
//	@Description	Interpolates the inputs into four fixed search templates. Inputs are used verbatim.
//	@Tags			Legal
//	@Security		BearerAuth
//	@Produce		json
//	@Param			query	query		string	false	"Free text query"
//	@Param			act		query		string	false	"Act, e.g. IPC"
//	@Param			section	query		string	false	"Section, e.g. 302"
//	@Success		200		{object}	chambersdk.LegalSearchResponse
//	@Failure		401		{object}	chambersdk.ErrorResponse	"Invalid or missing access token"
//	@Router			/v1/legal-search [get].
func (h *APIHandler) HandleLegalSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query, act, section := q.Get("query"), q.Get("act"), q.Get("section")

	links := domain.BuildLegalLinks(query, act, section)

	out := chambersdk.LegalSearchResponse{
		Query:   query,
		Act:     act,
		Section: section,
		Results: make([]chambersdk.LegalLink, 0, len(links)),
	}
	for _, l := range links {
		out.Results = append(out.Results, chambersdk.LegalLink(l))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

func toCaseResponse(c domain.Case) chambersdk.CaseResponse {
	return chambersdk.CaseResponse{
		ID:           c.ID,
		Judge:        c.Judge,
		CaseNumber:   c.CaseNumber,
		CaseName:     c.CaseName,
		CaseCategory: c.CaseCategory,
		LegalSection: c.LegalSection,
		Parties:      c.Parties,
		Status:       c.Status,
		FilingDate:   c.FilingDate,
		NextHearing:  c.NextHearing,
		Description:  c.Description,
	}
}
