package joboffers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Hec8/aissia-security-sub000/internal/backend"
)

func TestFormValidate(t *testing.T) {
	t.Parallel()

	valid := Form{Title: "Agent", Description: "Surveillance", Location: "Cotonou"}
	require.NoError(t, valid.Validate())

	var vErr *ValidationError
	err := Form{Description: "x", Location: "y"}.Validate()
	require.ErrorAs(t, err, &vErr)
	require.Contains(t, vErr.FieldErrors, "title")

	err = Form{}.Validate()
	require.ErrorAs(t, err, &vErr)
	require.Len(t, vErr.FieldErrors, 3)
}

func TestFormInputNormalizesLists(t *testing.T) {
	t.Parallel()

	form := Form{
		Title:       " Agent ",
		Description: "Surveillance de sites",
		Profiles:    "Carte professionnelle\nPermis B",
		Conditions:  "CDI\nPrimes de nuit",
		Location:    "Cotonou",
		IsActive:    true,
	}
	input := form.Input()

	require.Equal(t, "Agent", input.Title)
	require.Equal(t, "<ul><li>Carte professionnelle</li><li>Permis B</li></ul>", input.Profiles)
	require.Equal(t, "<ul><li>CDI</li><li>Primes de nuit</li></ul>", input.Conditions)
	require.True(t, input.IsActive)
}

func TestFormFromOfferSplitsStoredLists(t *testing.T) {
	t.Parallel()

	offer := backend.JobOffer{
		Title:      "Agent",
		Profiles:   "<ul><li>Carte professionnelle</li><li>Permis B</li></ul>",
		Conditions: "<ul><li>CDI</li></ul>",
	}
	form := FormFromOffer(offer)
	require.Equal(t, "Carte professionnelle\nPermis B", form.Profiles)
	require.Equal(t, "CDI", form.Conditions)
}

// Editing an offer and saving it unchanged must not alter the stored lists.
func TestEditRoundTrip(t *testing.T) {
	t.Parallel()

	stored := backend.JobOffer{
		Title:       "Agent",
		Description: "Surveillance",
		Profiles:    "<ul><li>Expérience de 2 ans</li><li>Permis B</li></ul>",
		Conditions:  "<ul><li>CDI</li><li>Travail de nuit</li></ul>",
		Location:    "Cotonou",
	}
	input := FormFromOffer(stored).Input()
	require.Equal(t, stored.Profiles, input.Profiles)
	require.Equal(t, stored.Conditions, input.Conditions)
}

func TestSafeDescriptionStripsScripts(t *testing.T) {
	t.Parallel()

	out := string(SafeDescription(`<p>ok</p><script>alert("x")</script>`))
	require.Contains(t, out, "<p>ok</p>")
	require.NotContains(t, out, "script")
}

func TestFilterAndCounts(t *testing.T) {
	t.Parallel()

	offers := []backend.JobOffer{
		{ID: 1, Title: "Agent de sécurité", Location: "Cotonou", IsActive: true},
		{ID: 2, Title: "Superviseur", Location: "Porto-Novo", IsActive: false},
		{ID: 3, Title: "Opérateur vidéo", Location: "Cotonou", IsActive: true},
	}

	counts := CountByActivity(offers)
	require.Equal(t, 3, counts.All)
	require.Equal(t, 2, counts.Active)
	require.Equal(t, 1, counts.Inactive)
	require.Equal(t, counts.All, counts.Active+counts.Inactive)

	active := Filter(offers, Query{Activity: "active"})
	require.Len(t, active, 2)

	cotonou := Filter(offers, Query{Search: "cotonou"})
	require.Len(t, cotonou, 2)

	both := Filter(offers, Query{Activity: "inactive", Search: "porto"})
	require.Len(t, both, 1)
	require.Equal(t, int64(2), both[0].ID)
}

func TestValidationErrorMessageNamesFields(t *testing.T) {
	t.Parallel()

	err := Form{Title: "x", Description: "y"}.Validate()
	require.Error(t, err)
	require.True(t, strings.Contains(err.Error(), "location"))
}
