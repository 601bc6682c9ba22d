package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/chambers/internal/chambers/domain"
	"github.com/aussiebroadwan/chambers/internal/chambers/service"
)

// PagesHandler serves the authenticated HTML views. Every handler runs
// behind RequireSession.
type PagesHandler struct {
	Cases    *service.CaseService
	Renderer *Renderer
}

func (h *PagesHandler) listPage(page, title string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ident := identityFromContext(r.Context())

		cases, err := h.Cases.ListForJudge(r.Context(), ident.DisplayName)
		if err != nil {
			h.Renderer.ServerError(w, r, err)
			return
		}

		h.Renderer.Render(w, r, http.StatusOK, page, pageData{
			Title:    title,
			Identity: ident,
			Cases:    cases,
		})
	}
}

func (h *PagesHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	h.listPage(pageDashboard, "Dashboard")(w, r)
}

func (h *PagesHandler) HandleCases(w http.ResponseWriter, r *http.Request) {
	h.listPage(pageCases, "My Cases")(w, r)
}

func (h *PagesHandler) HandleCauseLists(w http.ResponseWriter, r *http.Request) {
	h.listPage(pageCauseLists, "Cause Lists")(w, r)
}

// HandleCaseDetails serves GET /case/{id}.
func (h *PagesHandler) HandleCaseDetails(w http.ResponseWriter, r *http.Request) {
	ident := identityFromContext(r.Context())

	c, err := h.Cases.GetForIdentity(r.Context(), *ident, r.PathValue("id"))
	if errors.Is(err, service.ErrCaseNotFound) {
		h.Renderer.NotFound(w, r, "Case not found.")
		return
	}
	if err != nil {
		h.Renderer.ServerError(w, r, err)
		return
	}

	h.Renderer.Render(w, r, http.StatusOK, pageCaseDetails, pageData{
		Title:    c.CaseNumber,
		Identity: ident,
		Case:     c,
	})
}

func (h *PagesHandler) HandleLegalResearch(w http.ResponseWriter, r *http.Request) {
	h.Renderer.Render(w, r, http.StatusOK, pageLegalResearch, pageData{
		Title:    "Legal Research",
		Identity: identityFromContext(r.Context()),
	})
}

// HandleSearchLegal serves POST /search-legal. Missing fields are empty
// strings.
func (h *PagesHandler) HandleSearchLegal(w http.ResponseWriter, r *http.Request) {
	_ = r.ParseForm()
	query := r.PostFormValue("query")
	act := r.PostFormValue("act")
	section := r.PostFormValue("section")

	links := domain.BuildLegalLinks(query, act, section)

	h.Renderer.Render(w, r, http.StatusOK, pageLegalResults, pageData{
		Title:    "Search Results",
		Identity: identityFromContext(r.Context()),
		Query:    query,
		Act:      act,
		Section:  section,
		Results:  links[:],
	})
}
