package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"
	"time"
)

// requestTimeout bounds every backend call so a slow network surfaces as an
// error instead of hanging the page.
const requestTimeout = 30 * time.Second

// HTTPClient matches the subset of http.Client used by Client.
type HTTPClient interface {
	Do(*http.Request) (*http.Response, error)
}

// APIError is the typed failure returned for non-2xx responses and for
// envelopes reporting success:false. Status is zero when the body decoded
// but the backend flagged the operation as failed.
type APIError struct {
	Status  int
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	msg := strings.TrimSpace(e.Message)
	if msg == "" {
		if e.Status != 0 {
			msg = http.StatusText(e.Status)
		} else {
			msg = "request failed"
		}
	}
	if e.Status != 0 {
		return fmt.Sprintf("backend: %s (status %d)", msg, e.Status)
	}
	return "backend: " + msg
}

// IsUnauthorized reports whether err is an APIError carrying a 401, the
// signal the admin UI uses to force a fresh login.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}

// envelope is the uniform backend response shape.
type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message,omitempty"`
	Success bool            `json:"success"`
}

// Client is the single choke point for all calls to the backend REST API.
// It performs no retries, caching, or request deduplication; callers map
// errors to UI state.
type Client struct {
	base   *url.URL
	client HTTPClient
}

// New constructs a Client for the given base URL. A nil client gets a
// default with the standard request timeout applied.
func New(baseURL string, client HTTPClient) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.New("backend: base URL is required")
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("backend: parse base URL: %w", err)
	}
	if client == nil {
		client = &http.Client{Timeout: requestTimeout}
	}
	return &Client{base: parsed, client: client}, nil
}

// Services returns the public services list.
func (c *Client) Services(ctx context.Context) ([]Service, error) {
	var out []Service
	if err := c.getJSON(ctx, "/services", "", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Products returns the public product catalogue.
func (c *Client) Products(ctx context.Context) ([]Product, error) {
	var out []Product
	if err := c.getJSON(ctx, "/products", "", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Trainings returns the public training modules.
func (c *Client) Trainings(ctx context.Context) ([]Training, error) {
	var out []Training
	if err := c.getJSON(ctx, "/trainings", "", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// News returns the published news list.
func (c *Client) News(ctx context.Context) ([]NewsItem, error) {
	var out []NewsItem
	if err := c.getJSON(ctx, "/news", "", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// NewsItem returns one article by id.
func (c *Client) NewsItem(ctx context.Context, id int64) (*NewsItem, error) {
	var out NewsItem
	if err := c.getJSON(ctx, "/news/"+formatID(id), "", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Jobs returns the active public job offers.
func (c *Client) Jobs(ctx context.Context) ([]JobOffer, error) {
	var out []JobOffer
	if err := c.getJSON(ctx, "/jobs", "", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SubmitContact posts a contact form submission.
func (c *Client) SubmitContact(ctx context.Context, payload ContactRequest) error {
	return c.sendJSON(ctx, http.MethodPost, "/contact", payload, "", nil)
}

// SubscribeNewsletter registers an email address.
func (c *Client) SubscribeNewsletter(ctx context.Context, email string) error {
	body := map[string]string{"email": strings.TrimSpace(email)}
	return c.sendJSON(ctx, http.MethodPost, "/newsletter/subscribe", body, "", nil)
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	body := map[string]string{
		"email":    strings.TrimSpace(email),
		"password": password,
	}
	var out struct {
		Token string `json:"token"`
	}
	if err := c.sendJSON(ctx, http.MethodPost, "/auth/login", body, "", &out); err != nil {
		return "", err
	}
	if out.Token == "" {
		return "", &APIError{Message: "login response missing token"}
	}
	return out.Token, nil
}

// Me returns the authenticated admin profile.
func (c *Client) Me(ctx context.Context, token string) (*Admin, error) {
	var out Admin
	if err := c.getJSON(ctx, "/admin/me", token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfile saves admin profile changes.
func (c *Client) UpdateProfile(ctx context.Context, token string, payload ProfileUpdate) (*Admin, error) {
	var out Admin
	if err := c.sendJSON(ctx, http.MethodPut, "/admin/profile", payload, token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AdminJobOffers returns every job offer, active or not.
func (c *Client) AdminJobOffers(ctx context.Context, token string) ([]JobOffer, error) {
	var out []JobOffer
	if err := c.getJSON(ctx, "/admin/job-offers", token, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateJobOffer persists a new offer and returns the stored entity.
func (c *Client) CreateJobOffer(ctx context.Context, token string, input JobOfferInput) (*JobOffer, error) {
	var out JobOffer
	if err := c.sendJSON(ctx, http.MethodPost, "/admin/job-offers", input, token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateJobOffer saves changes to an existing offer.
func (c *Client) UpdateJobOffer(ctx context.Context, token string, id int64, input JobOfferInput) (*JobOffer, error) {
	var out JobOffer
	endpoint := "/admin/job-offers/" + formatID(id)
	if err := c.sendJSON(ctx, http.MethodPut, endpoint, input, token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteJobOffer removes an offer.
func (c *Client) DeleteJobOffer(ctx context.Context, token string, id int64) error {
	return c.sendJSON(ctx, http.MethodDelete, "/admin/job-offers/"+formatID(id), nil, token, nil)
}

// ContactMessages returns every stored contact message.
func (c *Client) ContactMessages(ctx context.Context, token string) ([]ContactMessage, error) {
	var out []ContactMessage
	if err := c.getJSON(ctx, "/admin/contact-messages", token, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteContactMessage removes a message.
func (c *Client) DeleteContactMessage(ctx context.Context, token string, id int64) error {
	return c.sendJSON(ctx, http.MethodDelete, "/admin/contact-messages/"+formatID(id), nil, token, nil)
}

// MessageAttachment downloads the binary attachment for a message. The
// filename is derived from Content-Disposition, falling back to fallbackName.
func (c *Client) MessageAttachment(ctx context.Context, token string, id int64, fallbackName string) (*Attachment, error) {
	endpoint := path.Join("/admin/contact-messages", formatID(id), "attachment")
	req, err := c.newRequest(ctx, http.MethodGet, endpoint, nil, token)
	if err != nil {
		return nil, err
	}
	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.errorFromResponse(resp)
	}

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("backend: read attachment: %w", err)
	}
	return &Attachment{
		Filename:    FilenameFromContentDisposition(resp.Header.Get("Content-Disposition"), fallbackName),
		ContentType: resp.Header.Get("Content-Type"),
		Content:     content,
	}, nil
}

// getJSON issues a GET and decodes the envelope's data field into out.
func (c *Client) getJSON(ctx context.Context, endpoint, token string, out any) error {
	req, err := c.newRequest(ctx, http.MethodGet, endpoint, nil, token)
	if err != nil {
		return err
	}
	return c.execute(req, out)
}

// sendJSON issues a request with a JSON body (nil payload sends none) and
// optionally decodes the envelope's data field into out.
func (c *Client) sendJSON(ctx context.Context, method, endpoint string, payload any, token string, out any) error {
	var body io.Reader
	if payload != nil {
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(payload); err != nil {
			return fmt.Errorf("backend: encode payload: %w", err)
		}
		body = &buf
	}
	req, err := c.newRequest(ctx, method, endpoint, body, token)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.execute(req, out)
}

func (c *Client) execute(req *http.Request, out any) error {
	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.errorFromResponse(resp)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		if err == io.EOF && out == nil {
			return nil
		}
		return fmt.Errorf("backend: decode response: %w", err)
	}
	if !env.Success {
		return &APIError{Message: env.Message}
	}
	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("backend: decode data: %w", err)
	}
	return nil
}

func (c *Client) do(req *http.Request) (*http.Response, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("backend: request failed: %w", err)
	}
	return resp, nil
}

func (c *Client) newRequest(ctx context.Context, method, endpoint string, body io.Reader, token string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.resolve(endpoint), body)
	if err != nil {
		return nil, fmt.Errorf("backend: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

func (c *Client) resolve(endpoint string) string {
	if endpoint == "" {
		return c.base.String()
	}
	trimmed := strings.TrimPrefix(endpoint, "/")
	base := *c.base
	if base.Path != "" && !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}
	ref := &url.URL{Path: trimmed}
	return base.ResolveReference(ref).String()
}

func (c *Client) errorFromResponse(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))

	var env envelope
	if len(body) > 0 {
		if err := json.Unmarshal(body, &env); err == nil && env.Message != "" {
			return &APIError{Status: resp.StatusCode, Message: env.Message}
		}
	}
	return &APIError{Status: resp.StatusCode}
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
