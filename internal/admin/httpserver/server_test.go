package httpserver_test

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Hec8/aissia-security-sub000/internal/admin/messages"
	"github.com/Hec8/aissia-security-sub000/internal/admin/session"
	"github.com/Hec8/aissia-security-sub000/internal/admin/testutil"
	"github.com/Hec8/aissia-security-sub000/internal/backend"
)

// noRedirect returns a client that surfaces redirects instead of following
// them.
func noRedirect() *http.Client {
	return &http.Client{
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func postForm(t *testing.T, client *http.Client, target string, form url.Values) *http.Response {
	t.Helper()
	resp, err := client.Post(target, "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestLoginWithValidCredentials(t *testing.T) {
	t.Parallel()

	store := &session.MemoryStore{}
	ts := testutil.NewServer(t, testutil.WithTokenStore(store))

	resp := postForm(t, noRedirect(), ts.URL+"/admin/login", url.Values{
		"email":    {"admin@aissia-security.com"},
		"password": {"secret"},
	})

	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	require.Equal(t, "/admin", resp.Header.Get("Location"))
	require.Equal(t, "test-token", store.Stored)
}

func TestLoginWithInvalidCredentials(t *testing.T) {
	t.Parallel()

	store := &session.MemoryStore{}
	ts := testutil.NewServer(t, testutil.WithTokenStore(store))

	resp := postForm(t, noRedirect(), ts.URL+"/admin/login", url.Values{
		"email":    {"admin@aissia-security.com"},
		"password": {"wrong"},
	})

	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Empty(t, store.Stored)

	doc := testutil.ParseHTML(t, readBody(t, resp))
	require.Contains(t, doc.Find("p.error").Text(), "Identifiants incorrects.")
	// The submitted email is preserved for correction.
	email, _ := doc.Find(`input[name="email"]`).Attr("value")
	require.Equal(t, "admin@aissia-security.com", email)
}

func TestLoginHonoursNextTarget(t *testing.T) {
	t.Parallel()

	store := &session.MemoryStore{}
	ts := testutil.NewServer(t, testutil.WithTokenStore(store))

	resp := postForm(t, noRedirect(), ts.URL+"/admin/login", url.Values{
		"email":    {"admin@aissia-security.com"},
		"password": {"secret"},
		"next":     {"/admin/messages?status=new"},
	})
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	require.Equal(t, "/admin/messages?status=new", resp.Header.Get("Location"))
}

func TestLoginRejectsForeignNextTarget(t *testing.T) {
	t.Parallel()

	store := &session.MemoryStore{}
	ts := testutil.NewServer(t, testutil.WithTokenStore(store))

	resp := postForm(t, noRedirect(), ts.URL+"/admin/login", url.Values{
		"email":    {"admin@aissia-security.com"},
		"password": {"secret"},
		"next":     {"https://evil.example/phish"},
	})
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	require.Equal(t, "/admin", resp.Header.Get("Location"))
}

func TestUnauthenticatedRequestRedirectsToLogin(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)

	resp, err := noRedirect().Get(ts.URL + "/admin/messages")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusFound, resp.StatusCode)
	loc, err := url.Parse(resp.Header.Get("Location"))
	require.NoError(t, err)
	require.Equal(t, "/admin/login", loc.Path)
	require.Equal(t, "/admin/messages", loc.Query().Get("next"))
}

func TestLogoutClearsToken(t *testing.T) {
	t.Parallel()

	store := &session.MemoryStore{Stored: "test-token"}
	ts := testutil.NewServer(t, testutil.WithTokenStore(store))

	resp := postForm(t, noRedirect(), ts.URL+"/admin/logout", url.Values{})
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	require.Equal(t, "/admin/login?status=logged_out", resp.Header.Get("Location"))
	require.Empty(t, store.Stored)
}

func TestMessagesPageRendersList(t *testing.T) {
	t.Parallel()

	store := &session.MemoryStore{Stored: "test-token"}
	ts := testutil.NewServer(t, testutil.WithTokenStore(store))

	resp, err := http.Get(ts.URL + "/admin/messages")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "no-store", resp.Header.Get("Cache-Control"))

	doc := testutil.ParseHTML(t, readBody(t, resp))
	rows := doc.Find("table.list tbody tr")
	require.Equal(t, 3, rows.Length())
	require.Contains(t, doc.Find("select[name=status]").Text(), "Tous (3)")
}

func TestMessagesPageOpensSelectedMessage(t *testing.T) {
	t.Parallel()

	store := &session.MemoryStore{Stored: "test-token"}
	ts := testutil.NewServer(t, testutil.WithTokenStore(store))

	resp, err := http.Get(ts.URL + "/admin/messages?selected=1")
	require.NoError(t, err)
	defer resp.Body.Close()

	doc := testutil.ParseHTML(t, readBody(t, resp))
	detail := doc.Find("section.detail")
	require.Equal(t, 1, detail.Length())
	require.Contains(t, detail.Find("h2").Text(), "Demande de devis")
	// Opening the message moved it from new to read.
	require.Contains(t, detail.Find(".badge").Text(), "read")
}

// expiredService reports 401 on every call, simulating a token the backend
// no longer accepts.
type expiredService struct{}

func (expiredService) List(context.Context, string) ([]backend.ContactMessage, error) {
	return nil, &backend.APIError{Status: http.StatusUnauthorized, Message: "token expiré"}
}

func (expiredService) Delete(context.Context, string, int64) error {
	return &backend.APIError{Status: http.StatusUnauthorized}
}

func (expiredService) Attachment(context.Context, string, int64, string) (*backend.Attachment, error) {
	return nil, &backend.APIError{Status: http.StatusUnauthorized}
}

func TestBackendRejectionForcesRelogin(t *testing.T) {
	t.Parallel()

	store := &session.MemoryStore{Stored: "stale-token"}
	ts := testutil.NewServer(t,
		testutil.WithTokenStore(store),
		testutil.WithMessagesService(expiredService{}),
	)

	resp, err := noRedirect().Get(ts.URL + "/admin/messages")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusFound, resp.StatusCode)
	loc, err := url.Parse(resp.Header.Get("Location"))
	require.NoError(t, err)
	require.Equal(t, "/admin/login", loc.Path)
	require.Equal(t, "expired", loc.Query().Get("reason"))
	require.Empty(t, store.Stored)
}

func TestMessageAttachmentDownload(t *testing.T) {
	t.Parallel()

	store := &session.MemoryStore{Stored: "test-token"}
	ts := testutil.NewServer(t, testutil.WithTokenStore(store))

	resp, err := http.Get(ts.URL + "/admin/messages/2/attachment")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "application/zip", resp.Header.Get("Content-Type"))
	require.Contains(t, resp.Header.Get("Content-Disposition"), "candidature.zip")
}

func TestMessageDeleteFailureShowsRollbackNotice(t *testing.T) {
	t.Parallel()

	svc := messages.NewStaticService()
	svc.DeleteErr = &backend.APIError{Status: http.StatusInternalServerError, Message: "erreur serveur"}
	store := &session.MemoryStore{Stored: "test-token"}
	ts := testutil.NewServer(t,
		testutil.WithTokenStore(store),
		testutil.WithMessagesService(svc),
	)

	client := &http.Client{} // follow the redirect back to the list
	resp := postForm(t, client, ts.URL+"/admin/messages/1/delete", url.Values{})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	doc := testutil.ParseHTML(t, readBody(t, resp))
	require.Contains(t, doc.Find("p.error").Text(), "restauré")
	// The list still contains all three messages.
	require.Equal(t, 3, doc.Find("table.list tbody tr").Length())
}

func TestNewsletterExportStreamsCSV(t *testing.T) {
	t.Parallel()

	store := &session.MemoryStore{Stored: "test-token"}
	ts := testutil.NewServer(t, testutil.WithTokenStore(store))

	resp, err := http.Get(ts.URL + "/admin/newsletter/export")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, resp.Header.Get("Content-Type"), "text/csv")

	body := string(readBody(t, resp))
	require.True(t, strings.HasPrefix(body, "email,subscribed_at,status"))
}

func TestOfferCreateValidation(t *testing.T) {
	t.Parallel()

	store := &session.MemoryStore{Stored: "test-token"}
	ts := testutil.NewServer(t, testutil.WithTokenStore(store))

	resp := postForm(t, noRedirect(), ts.URL+"/admin/job-offers", url.Values{
		"description": {"Une description"},
		"location":    {"Cotonou"},
	})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	doc := testutil.ParseHTML(t, readBody(t, resp))
	require.Greater(t, doc.Find(".field-error").Length(), 0)
}

func readBody(t *testing.T, resp *http.Response) []byte {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return body
}
