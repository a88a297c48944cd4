package joboffers

import (
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/Hec8/aissia-security-sub000/internal/backend"
	"github.com/Hec8/aissia-security-sub000/internal/listfmt"
)

// descriptionPolicy strips anything beyond basic formatting from offer
// descriptions before they reach a template.
var descriptionPolicy = bluemonday.UGCPolicy()

// Form is the offer editor's view of an offer: profiles and conditions as
// freeform multi-line text rather than stored HTML lists.
type Form struct {
	Title       string
	Description string
	Profiles    string
	Conditions  string
	Location    string
	IsActive    bool
}

// ValidationError reports missing required fields keyed by form name.
type ValidationError struct {
	FieldErrors map[string]string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e == nil || len(e.FieldErrors) == 0 {
		return "invalid job offer"
	}
	fields := make([]string, 0, len(e.FieldErrors))
	for field := range e.FieldErrors {
		fields = append(fields, field)
	}
	return "invalid job offer: " + strings.Join(fields, ", ")
}

// Validate checks the required fields.
func (f Form) Validate() error {
	errs := map[string]string{}
	if strings.TrimSpace(f.Title) == "" {
		errs["title"] = "required"
	}
	if strings.TrimSpace(f.Description) == "" {
		errs["description"] = "required"
	}
	if strings.TrimSpace(f.Location) == "" {
		errs["location"] = "required"
	}
	if len(errs) > 0 {
		return &ValidationError{FieldErrors: errs}
	}
	return nil
}

// Input converts the form to the backend payload, normalizing the freeform
// profiles and conditions text into HTML lists.
func (f Form) Input() backend.JobOfferInput {
	return backend.JobOfferInput{
		Title:       strings.TrimSpace(f.Title),
		Description: strings.TrimSpace(f.Description),
		Profiles:    listfmt.NormalizeHTMLList(f.Profiles),
		Conditions:  listfmt.NormalizeHTMLList(f.Conditions),
		Location:    strings.TrimSpace(f.Location),
		IsActive:    f.IsActive,
	}
}

// FormFromOffer re-parses a stored offer into editable text, one item per
// line.
func FormFromOffer(offer backend.JobOffer) Form {
	return Form{
		Title:       offer.Title,
		Description: offer.Description,
		Profiles:    strings.Join(listfmt.SplitListItems(offer.Profiles), "\n"),
		Conditions:  strings.Join(listfmt.SplitListItems(offer.Conditions), "\n"),
		Location:    offer.Location,
		IsActive:    offer.IsActive,
	}
}

// SafeDescription sanitizes the stored description for template rendering.
func SafeDescription(html string) template.HTML {
	return template.HTML(descriptionPolicy.Sanitize(html))
}

// SafeList sanitizes a stored HTML list (profiles, conditions) for
// rendering.
func SafeList(html string) template.HTML {
	return template.HTML(descriptionPolicy.Sanitize(html))
}
