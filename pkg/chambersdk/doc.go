/*
Package chambersdk is a Go client for the chambers case desk.

# Client vs Session

  - Client calls the public endpoints (health probes, JWKS) and exchanges
    credentials for an API Session.
  - Session carries a bearer token and calls the /v1 API. When the token is
    about to expire the Session asks for a new one with the credentials it was
    created from; there is no refresh grant.
  - Browser drives the HTML pages with a cookie jar, the way a judge's browser
    would.

	client := chambersdk.NewClient("http://localhost:8080")

	health, err := client.GetReadiness(ctx)

	session, err := client.Authenticate(ctx, "judge1", "password123")
	if err != nil {
		return err
	}

	me, err := session.Me(ctx)
	cases, err := session.ListCases(ctx)
	one, err := session.GetCase(ctx, cases.Cases[0].ID)
	links, err := session.LegalSearch(ctx, "bail", "CrPC", "439")

# Errors

Non-2xx responses come back as *APIError carrying the HTTP status and the
"error"/"error_description" pair from the body:

	_, err := session.GetCase(ctx, "missing")
	var apiErr *chambersdk.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
		// ...
	}

# Thread Safety

Client and Session are safe for concurrent use. Browser is not: it models a
single user clicking through pages.
*/
package chambersdk
