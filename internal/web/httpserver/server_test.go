package httpserver_test

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"

	"github.com/Hec8/aissia-security-sub000/internal/i18n"
	"github.com/Hec8/aissia-security-sub000/internal/web/cms"
	"github.com/Hec8/aissia-security-sub000/internal/web/handlers"
	"github.com/Hec8/aissia-security-sub000/internal/web/httpserver"
	"github.com/Hec8/aissia-security-sub000/internal/web/locales"
)

func newSite(t *testing.T, gw *handlers.StaticGateway) *httptest.Server {
	t.Helper()

	bundle, err := i18n.Load(locales.FS(), i18n.LocaleFR, []string{i18n.LocaleFR, i18n.LocaleEN})
	require.NoError(t, err)

	srv := httpserver.New(httpserver.Config{
		Address: ":0",
		Bundle:  bundle,
		Handlers: &handlers.Handlers{
			Gateway: gw,
			Bundle:  bundle,
			Content: cms.NewLibrary(cms.DefaultContent(), i18n.LocaleFR),
		},
	})
	ts := httptest.NewServer(srv.Handler)
	t.Cleanup(ts.Close)
	return ts
}

func parseHTML(t *testing.T, body []byte) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	require.NoError(t, err)
	return doc
}

func getDoc(t *testing.T, target string) *goquery.Document {
	t.Helper()
	resp, err := http.Get(target)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return parseHTML(t, body)
}

func noFollow() *http.Client {
	return &http.Client{
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func TestRootNegotiatesLocale(t *testing.T) {
	t.Parallel()

	ts := newSite(t, handlers.NewStaticGateway())

	cases := []struct {
		acceptLanguage string
		want           string
	}{
		{"", "/fr"},
		{"fr-FR,fr;q=0.9", "/fr"},
		{"en-US,en;q=0.9,fr;q=0.5", "/en"},
		{"de-DE,de;q=0.9", "/fr"},
	}
	for _, tc := range cases {
		req, err := http.NewRequest(http.MethodGet, ts.URL+"/", nil)
		require.NoError(t, err)
		if tc.acceptLanguage != "" {
			req.Header.Set("Accept-Language", tc.acceptLanguage)
		}
		resp, err := noFollow().Do(req)
		require.NoError(t, err)
		resp.Body.Close()
		require.Equal(t, http.StatusFound, resp.StatusCode)
		require.Equal(t, tc.want, resp.Header.Get("Location"), "Accept-Language %q", tc.acceptLanguage)
	}
}

func TestHomePage(t *testing.T) {
	t.Parallel()

	ts := newSite(t, handlers.NewStaticGateway())
	doc := getDoc(t, ts.URL+"/fr")

	require.Contains(t, doc.Find(".hero h1").Text(), "Des solutions de sécurité sur mesure")
	require.Equal(t, 3, doc.Find(".home-services .card").Length())

	newsHref, _ := doc.Find(".home-news a").First().Attr("href")
	require.Equal(t, "/fr/actualites/1", newsHref)
}

func TestHomeShowsBannerWhenBackendDown(t *testing.T) {
	t.Parallel()

	gw := handlers.NewStaticGateway()
	gw.Err = io.ErrUnexpectedEOF
	ts := newSite(t, gw)

	doc := getDoc(t, ts.URL+"/fr")
	require.Contains(t, doc.Find("main p.form-error").Text(), "Impossible de charger les données")
}

func TestLocaleSwitchPreservesPage(t *testing.T) {
	t.Parallel()

	ts := newSite(t, handlers.NewStaticGateway())

	doc := getDoc(t, ts.URL+"/fr/services")
	require.Contains(t, doc.Find("main h1").Text(), "Nos services")
	switchHref, _ := doc.Find("a.locale-switch").Attr("href")
	require.Equal(t, "/en/services", switchHref)

	doc = getDoc(t, ts.URL+"/en/services")
	switchHref, _ = doc.Find("a.locale-switch").Attr("href")
	require.Equal(t, "/fr/services", switchHref)
	lang, _ := doc.Find("html").Attr("lang")
	require.Equal(t, "en", lang)
}

func TestNotFoundPage(t *testing.T) {
	t.Parallel()

	ts := newSite(t, handlers.NewStaticGateway())

	resp, err := http.Get(ts.URL + "/fr/inexistante")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), "Page introuvable.")
}

func TestContactFormRoundTrip(t *testing.T) {
	t.Parallel()

	gw := handlers.NewStaticGateway()
	ts := newSite(t, gw)

	// Missing subject keeps the submitted values and shows the inline error.
	resp, err := http.PostForm(ts.URL+"/fr/contact", url.Values{
		"name":    {"Jean Mensah"},
		"email":   {"jean@example.com"},
		"message": {"Bonjour"},
	})
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)

	doc := parseHTML(t, body)
	require.Contains(t, doc.Find("p.form-error").Text(), "champs obligatoires")
	name, _ := doc.Find(`input[name="name"]`).Attr("value")
	require.Equal(t, "Jean Mensah", name)
	require.Empty(t, gw.Contacts)

	// Complete submission reaches the gateway and shows the confirmation.
	resp, err = http.PostForm(ts.URL+"/fr/contact", url.Values{
		"name":    {"Jean Mensah"},
		"email":   {"jean@example.com"},
		"subject": {"Question"},
		"message": {"Bonjour"},
	})
	require.NoError(t, err)
	body, err = io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)

	doc = parseHTML(t, body)
	require.Contains(t, doc.Find("main p.form-success").Text(), "Votre message a bien été envoyé")
	require.Len(t, gw.Contacts, 1)
	require.Equal(t, "Question", gw.Contacts[0].Subject)
}

func TestQuoteSubmitTagsSubject(t *testing.T) {
	t.Parallel()

	gw := handlers.NewStaticGateway()
	ts := newSite(t, gw)

	resp, err := http.PostForm(ts.URL+"/fr/devis", url.Values{
		"name":    {"Awa Teko"},
		"email":   {"awa@example.com"},
		"company": {"Teko SARL"},
		"service": {"gardiennage"},
		"message": {"Besoin d'agents pour un entrepôt."},
	})
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.Len(t, gw.Contacts, 1)
	require.Equal(t, "Demande de devis : gardiennage", gw.Contacts[0].Subject)
	require.Contains(t, gw.Contacts[0].Message, "Société : Teko SARL")
}

func TestOfferPageAndApplication(t *testing.T) {
	t.Parallel()

	gw := handlers.NewStaticGateway()
	ts := newSite(t, gw)

	doc := getDoc(t, ts.URL+"/fr/recrutement/agent-de-securite")
	require.Contains(t, doc.Find("h1").Text(), "Agent de sécurité")
	require.Equal(t, 2, doc.Find(".profiles li").Length())
	applyHref, _ := doc.Find("a.cta").Attr("href")
	require.Equal(t, "/fr/recrutement/agent-de-securite/postuler", applyHref)

	// Inactive offers are not reachable.
	resp, err := http.Get(ts.URL + "/fr/recrutement/operateur-video")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, err = http.PostForm(ts.URL+"/fr/recrutement/agent-de-securite/postuler", url.Values{
		"name":    {"Samuel Johnson"},
		"email":   {"s.johnson@example.com"},
		"message": {"Je suis disponible immédiatement."},
	})
	require.NoError(t, err)
	resp.Body.Close()

	require.Len(t, gw.Contacts, 1)
	require.Equal(t, "Postuler : Agent de sécurité", gw.Contacts[0].Subject)
}

func TestNewsletterSubscription(t *testing.T) {
	t.Parallel()

	gw := handlers.NewStaticGateway()
	ts := newSite(t, gw)

	post := func(email, referer string) *http.Response {
		req, err := http.NewRequest(http.MethodPost, ts.URL+"/fr/newsletter",
			strings.NewReader(url.Values{"email": {email}}.Encode()))
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		if referer != "" {
			req.Header.Set("Referer", referer)
		}
		resp, err := noFollow().Do(req)
		require.NoError(t, err)
		resp.Body.Close()
		return resp
	}

	resp := post("lecteur@example.com", ts.URL+"/fr/services")
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	require.Equal(t, "/fr/services?newsletter=ok", resp.Header.Get("Location"))
	require.Equal(t, []string{"lecteur@example.com"}, gw.Subscribers)

	resp = post("pas-une-adresse", "")
	require.Equal(t, "/fr?newsletter=invalid", resp.Header.Get("Location"))
	require.Len(t, gw.Subscribers, 1)

	// The flag renders the footer confirmation on the target page.
	doc := getDoc(t, ts.URL+"/fr/services?newsletter=ok")
	require.Contains(t, doc.Find("footer p.form-success").Text(), "Inscription confirmée")
}

func TestLegalPages(t *testing.T) {
	t.Parallel()

	ts := newSite(t, handlers.NewStaticGateway())

	doc := getDoc(t, ts.URL+"/fr/pages/mentions-legales")
	require.Contains(t, doc.Find("article.static-page h1").Text(), "Mentions légales")
	require.Greater(t, doc.Find("article.static-page .body h2").Length(), 0)

	doc = getDoc(t, ts.URL+"/en/pages/mentions-legales")
	require.Contains(t, doc.Find("article.static-page h1").Text(), "Legal notice")

	resp, err := http.Get(ts.URL + "/fr/pages/page-inconnue")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestNewsItemPage(t *testing.T) {
	t.Parallel()

	ts := newSite(t, handlers.NewStaticGateway())

	doc := getDoc(t, ts.URL+"/fr/actualites/1")
	require.Contains(t, doc.Find("main h1").Text(), "Ouverture de notre nouvelle agence")

	resp, err := http.Get(ts.URL + "/fr/actualites/99")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}
