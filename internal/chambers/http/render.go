package http

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/aussiebroadwan/chambers/internal/chambers/domain"
	"github.com/aussiebroadwan/chambers/pkg/httpx"
	"github.com/aussiebroadwan/chambers/pkg/slogx"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page template names.
const (
	pageLogin         = "login"
	pageDashboard     = "dashboard"
	pageCases         = "cases"
	pageCaseDetails   = "case_details"
	pageCauseLists    = "cause_lists"
	pageLegalResearch = "legal_research"
	pageLegalResults  = "legal_results"
	pageNotFound      = "not_found"
	pageError         = "error"
)

var pages = []string{
	pageLogin,
	pageDashboard,
	pageCases,
	pageCaseDetails,
	pageCauseLists,
	pageLegalResearch,
	pageLegalResults,
	pageNotFound,
	pageError,
}

var templateFuncs = template.FuncMap{
	"inc": func(i int) int { return i + 1 },
}

// pageData is the model every page renders from. Pages use the fields they
// need.
type pageData struct {
	Title    string
	Identity *domain.Identity

	Cases []domain.Case
	Case  domain.Case

	Error    string
	Username string

	Query   string
	Act     string
	Section string
	Results []domain.LegalLink
}

// Renderer holds one parsed template set per page, each combining the page
// with the shared layout.
type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template, len(pages))}
	for _, name := range pages {
		t, err := template.New(name).Funcs(templateFuncs).ParseFS(templateFS,
			"templates/layout.html",
			"templates/search_form.html",
			"templates/"+name+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// MustNewRenderer panics on a template error. The templates are embedded, so
// a failure is a build defect.
func MustNewRenderer() *Renderer {
	r, err := NewRenderer()
	if err != nil {
		panic(err)
	}
	return r
}

// Render executes the page into a buffer first so a template error never
// leaves a half-written response.
func (rd *Renderer) Render(w http.ResponseWriter, r *http.Request, status int, page string, data pageData) {
	t, ok := rd.pages[page]
	if !ok {
		slogx.FromContext(r.Context()).Error("unknown page template", "page", page)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		slogx.FromContext(r.Context()).Error("failed to render page", "page", page, "err", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	httpx.NoCache(w)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// ServerError logs err and renders the generic error page.
func (rd *Renderer) ServerError(w http.ResponseWriter, r *http.Request, err error) {
	slogx.FromContext(r.Context()).Error("request failed", "err", err)
	rd.Render(w, r, http.StatusInternalServerError, pageError, pageData{
		Title:    "Error",
		Identity: identityFromContext(r.Context()),
	})
}

// NotFound renders the 404 page.
func (rd *Renderer) NotFound(w http.ResponseWriter, r *http.Request, msg string) {
	rd.Render(w, r, http.StatusNotFound, pageNotFound, pageData{
		Title:    "Not Found",
		Identity: identityFromContext(r.Context()),
		Error:    msg,
	})
}
