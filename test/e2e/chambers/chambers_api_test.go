package chambers_test

import (
	"net/http"
	"testing"

	"github.com/aussiebroadwan/chambers/pkg/chambersdk"
	"github.com/stretchr/testify/require"
)

func TestAPICaseFlow(t *testing.T) {
	client := setupContainer(t)

	sess, err := client.Authenticate(t.Context(), judgeUsername, judgePassword)
	require.NoError(t, err)

	me, err := sess.Me(t.Context())
	require.NoError(t, err)
	require.Equal(t, judgeDisplayName, me.DisplayName)

	list, err := sess.ListCases(t.Context())
	require.NoError(t, err)
	require.Len(t, list.Cases, len(seededCaseNumbers))
	for i, n := range seededCaseNumbers {
		require.Equal(t, n, list.Cases[i].CaseNumber)
	}

	c, err := sess.GetCase(t.Context(), list.Cases[2].ID)
	require.NoError(t, err)
	require.Equal(t, "BAIL/2024/45", c.CaseNumber)
	require.Equal(t, "CrPC 439", c.LegalSection)

	_, err = sess.GetCase(t.Context(), "01ARZ3NDEKTSV4RRFFQ69G5FAV")
	var apiErr *chambersdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}

func TestAPIRejectsBadCredentials(t *testing.T) {
	client := setupContainer(t)

	_, err := client.RequestToken(t.Context(), judgeUsername, "wrong")
	var apiErr *chambersdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, chambersdk.ErrorCodeInvalidGrant, apiErr.Code)
}

func TestAPILegalSearch(t *testing.T) {
	client := setupContainer(t)

	sess, err := client.Authenticate(t.Context(), judgeUsername, judgePassword)
	require.NoError(t, err)

	res, err := sess.LegalSearch(t.Context(), "breach", "Contract Act", "73")
	require.NoError(t, err)
	require.Len(t, res.Results, 4)
	require.Equal(t, "Contract Act Section 73", res.Results[2].Title)
}
