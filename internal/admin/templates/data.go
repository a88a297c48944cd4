package templates

import (
	"github.com/Hec8/aissia-security-sub000/internal/admin/joboffers"
	"github.com/Hec8/aissia-security-sub000/internal/admin/messages"
	"github.com/Hec8/aissia-security-sub000/internal/admin/newsletter"
	"github.com/Hec8/aissia-security-sub000/internal/admin/quotes"
	"github.com/Hec8/aissia-security-sub000/internal/backend"
)

// Shell carries the fields every admin page needs for the layout chrome.
type Shell struct {
	Title     string
	BasePath  string
	Active    string
	AdminName string
}

// LoginData feeds the login page.
type LoginData struct {
	Shell
	Email     string
	Next      string
	LoginPath string
	Error     string
	Message   string
}

// DashboardData aggregates the headline counts.
type DashboardData struct {
	Shell
	UnreadMessages   int
	ActiveOffers     int
	PendingQuotes    int
	TotalSubscribers int
	Error            string
}

// MessagesData feeds the contact-messages screen.
type MessagesData struct {
	Shell
	Messages []messages.Message
	Counts   messages.Counts
	Query    messages.Query
	Statuses []messages.Status
	Selected *messages.Message
	Error    string
}

// OffersData feeds the job-offers list screen.
type OffersData struct {
	Shell
	Offers []backend.JobOffer
	Counts joboffers.Counts
	Query  joboffers.Query
	Error  string
}

// OfferEditData feeds the job-offer editor.
type OfferEditData struct {
	Shell
	OfferID     int64
	Form        joboffers.Form
	FieldErrors map[string]string
	Error       string
}

// QuotesData feeds the quotes screen.
type QuotesData struct {
	Shell
	Quotes   []quotes.Quote
	Counts   quotes.Counts
	Query    quotes.Query
	Statuses []quotes.Status
	Selected *quotes.Quote
	Error    string
}

// NewsletterData feeds the subscribers screen.
type NewsletterData struct {
	Shell
	Subscribers []newsletter.Subscriber
	Counts      newsletter.Counts
	Status      string
	Search      string
	Error       string
}

// ProfileData feeds the profile screen.
type ProfileData struct {
	Shell
	Admin   backend.Admin
	Error   string
	Message string
}
