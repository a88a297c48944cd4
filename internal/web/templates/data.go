package templates

import (
	"github.com/Hec8/aissia-security-sub000/internal/backend"
	"github.com/Hec8/aissia-security-sub000/internal/web/cms"
	"github.com/Hec8/aissia-security-sub000/internal/web/nav"
)

// Shell carries the fields every public page needs for the layout chrome.
type Shell struct {
	Title      string
	Locale     string
	Path       string // locale-relative path of the current page
	Nav        []nav.RenderedItem
	T          map[string]string
	SwitchHref string // same page in the other locale
	Alternates map[string]string
	Year       int

	// Footer newsletter form state, driven by the ?newsletter= redirect flag.
	NewsletterSuccess bool
	NewsletterError   string
	NewsletterAction  string
}

// HomeData feeds the landing page.
type HomeData struct {
	Shell
	Services []backend.Service
	News     []backend.NewsItem
	QuoteURL string
	Error    string
}

// ServicesData feeds the services listing.
type ServicesData struct {
	Shell
	Services []backend.Service
	Error    string
}

// ProductsData feeds the products listing.
type ProductsData struct {
	Shell
	Products []backend.Product
	Error    string
}

// TrainingsData feeds the trainings listing.
type TrainingsData struct {
	Shell
	Trainings []backend.Training
	Error     string
}

// NewsData feeds the news listing.
type NewsData struct {
	Shell
	Items []backend.NewsItem
	Error string
}

// NewsItemData feeds a single news article.
type NewsItemData struct {
	Shell
	Item backend.NewsItem
}

// RecruitmentData feeds the job-offers listing.
type RecruitmentData struct {
	Shell
	Offers []backend.JobOffer
	Error  string
}

// OfferData feeds a single job-offer page.
type OfferData struct {
	Shell
	Offer    backend.JobOffer
	ApplyURL string
}

// ApplyData feeds the job-application form page.
type ApplyData struct {
	Shell
	Offer   backend.JobOffer
	Form    ApplicationForm
	Error   string
	Success bool
}

// ApplicationForm holds the job-application form values for re-rendering.
type ApplicationForm struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// ContactData feeds the contact page.
type ContactData struct {
	Shell
	Form    ContactForm
	Error   string
	Success bool
}

// ContactForm holds the contact form values for re-rendering.
type ContactForm struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

// QuoteData feeds the quote-request page.
type QuoteData struct {
	Shell
	Services []backend.Service
	Form     QuoteForm
	Error    string
	Success  bool
}

// QuoteForm holds the quote form values for re-rendering.
type QuoteForm struct {
	Name    string
	Email   string
	Phone   string
	Company string
	Service string
	Message string
}

// ContentData feeds a CMS-backed static page.
type ContentData struct {
	Shell
	Page cms.Page
}

// AboutData feeds the company presentation page.
type AboutData struct {
	Shell
}

// NotFoundData feeds the 404 page.
type NotFoundData struct {
	Shell
}
