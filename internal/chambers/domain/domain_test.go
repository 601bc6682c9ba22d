package domain_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/chambers/internal/chambers/domain"
	"github.com/stretchr/testify/require"
)

func TestBuildLegalLinks(t *testing.T) {
	links := domain.BuildLegalLinks("bail", "CrPC", "439")

	require.Equal(t, domain.LegalLink{
		Title:   "Indian Kanoon - Legal Search",
		URL:     "https://indiankanoon.org/search/?formInput=bail",
		Snippet: "Search results for bail on Indian Kanoon",
	}, links[0])
	require.Equal(t, domain.LegalLink{
		Title:   "Supreme Court Cases",
		URL:     "https://main.sci.gov.in/judgments?query=bail",
		Snippet: "Supreme Court judgments related to bail",
	}, links[1])
	require.Equal(t, domain.LegalLink{
		Title:   "CrPC Section 439",
		URL:     "https://www.google.com/search?q=CrPC+section+439",
		Snippet: "Detailed information about CrPC Section 439",
	}, links[2])
	require.Equal(t, domain.LegalLink{
		Title:   "Legal Database",
		URL:     "https://www.lawctopus.com/?s=bail",
		Snippet: "Legal articles and resources about bail",
	}, links[3])
}

func TestBuildLegalLinksEmptyInputs(t *testing.T) {
	links := domain.BuildLegalLinks("", "", "")

	require.Equal(t, "https://indiankanoon.org/search/?formInput=", links[0].URL)
	require.Equal(t, " Section ", links[2].Title)
	require.Equal(t, "https://www.google.com/search?q=+section+", links[2].URL)
}

func TestBuildLegalLinksVerbatim(t *testing.T) {
	// Inputs are interpolated as given, spaces and all.
	links := domain.BuildLegalLinks("murder trial", "IPC", "302")
	require.Equal(t, "https://www.lawctopus.com/?s=murder trial", links[3].URL)
}

func TestAccessPolicy(t *testing.T) {
	viewer := domain.Identity{ID: "a"}
	own := domain.Case{JudgeID: "a"}
	other := domain.Case{JudgeID: "b"}

	require.True(t, domain.AccessOpen.CanView(viewer, other))
	require.True(t, domain.AccessAssigned.CanView(viewer, own))
	require.False(t, domain.AccessAssigned.CanView(viewer, other))

	p, ok := domain.ParseAccessPolicy("assigned")
	require.True(t, ok)
	require.Equal(t, domain.AccessAssigned, p)

	_, ok = domain.ParseAccessPolicy("everyone")
	require.False(t, ok)
}

func TestSessionIsExpired(t *testing.T) {
	now := time.Now()
	s := domain.Session{ExpiresAt: now}

	require.True(t, s.IsExpired(now))
	require.False(t, s.IsExpired(now.Add(-time.Second)))
}

func TestDefaultSeed(t *testing.T) {
	seed := domain.DefaultSeed("password123")

	require.Equal(t, "judge1", seed.Username)
	require.Equal(t, "Justice Sharma", seed.DisplayName)
	require.Len(t, seed.Cases, 4)
	require.Equal(t, "CRL/2024/125", seed.Cases[0].CaseNumber)
	require.Equal(t, "MAT/2024/67", seed.Cases[3].CaseNumber)
}
