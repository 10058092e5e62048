package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/dkarpovs/libshelf/internal/client/models"
	"github.com/dkarpovs/libshelf/internal/logging"
)

// Service endpoint paths, relative to the configured base URL.
const (
	pathAuthLogin    = "/auth/login"
	pathUsersMe      = "/users/me"
	pathBooksGetAll  = "/books/getAll"
	pathBooksByID    = "/books/getBookById"
	pathBooksBorrow  = "/books/borrow"
	pathBooksReturn  = "/books/return"
	pathBooksSearch  = "/books/search"
	pathBooksByGenre = "/books/genre"
)

// HTTPClient is the single shared gateway all API calls flow through. Every
// request gets the current bearer token attached on the way out, and every
// failure is classified into one *Error category on the way back. A 401/403
// additionally invalidates the session through the injected capability.
type HTTPClient struct {
	baseURL string
	hc      *http.Client
	tokens  TokenSource
	session SessionInvalidator
	log     logging.Logger
}

func NewHTTPClient(baseURL string, timeout time.Duration, tokens TokenSource, session SessionInvalidator, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		hc:      &http.Client{Timeout: timeout},
		tokens:  tokens,
		session: session,
		log:     log,
	}
}

var _ Client = (*HTTPClient)(nil)

// do sends one request through the gateway pipeline and returns the raw
// response body of a 2xx reply. Request construction failures are returned
// unclassified; everything past that point maps to a *Error.
func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		rd = bytes.NewReader(b)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, rd)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	// A missing or unreadable token never blocks the outbound leg; the
	// service answers 401 and the inbound classification takes over.
	if token, err := c.tokens.BearerToken(ctx); err != nil {
		c.log.Warn(ctx, "failed to read auth token for request", "method", method, "path", path, "error", err)
	} else if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		c.log.Debug(ctx, "request failed before a response arrived", "method", method, "path", path, "error", err)
		return nil, networkError(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, networkError(err)
	}

	return c.classify(ctx, resp.StatusCode, data)
}

// classify maps a received response onto the error taxonomy, first match wins.
func (c *HTTPClient) classify(ctx context.Context, status int, body []byte) ([]byte, error) {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		c.log.Warn(ctx, "authorization failure, clearing session", "status", status)
		c.session.Invalidate(ctx)
		return nil, authorizationError()

	case status >= http.StatusInternalServerError:
		return nil, serverError()

	case status == http.StatusTooManyRequests:
		return nil, rateLimitError()

	case status >= 200 && status < 300:
		return body, nil

	default:
		var payload struct {
			Message string `json:"message"`
		}
		_ = json.Unmarshal(body, &payload)
		return nil, genericError(payload.Message)
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login exchanges credentials for a bearer token. The token is returned to
// the caller; storing it is the session layer's job.
func (c *HTTPClient) Login(ctx context.Context, email, password string) (string, error) {
	raw, err := c.do(ctx, http.MethodPost, pathAuthLogin, nil, loginRequest{Email: email, Password: password})
	if err != nil {
		return "", err
	}

	var resp loginResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", fmt.Errorf("failed to decode login response: %w", err)
	}
	return resp.Token, nil
}

// GetProfile fetches the current account; the endpoint wraps its payload in a
// {status, data} envelope.
func (c *HTTPClient) GetProfile(ctx context.Context) (*models.User, error) {
	raw, err := c.do(ctx, http.MethodGet, pathUsersMe, nil, nil)
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := json.Unmarshal(unwrapEnvelope(raw), &user); err != nil {
		return nil, fmt.Errorf("failed to decode profile: %w", err)
	}
	return &user, nil
}

func (c *HTTPClient) ListBooks(ctx context.Context) ([]models.Book, error) {
	raw, err := c.do(ctx, http.MethodGet, pathBooksGetAll, nil, nil)
	if err != nil {
		return nil, err
	}

	var books []models.Book
	if err := json.Unmarshal(unwrapEnvelope(raw), &books); err != nil {
		return nil, fmt.Errorf("failed to decode book list: %w", err)
	}
	return books, nil
}

func (c *HTTPClient) GetBook(ctx context.Context, id string) (*models.Book, error) {
	raw, err := c.do(ctx, http.MethodGet, pathBooksByID+"/"+url.PathEscape(id), nil, nil)
	if err != nil {
		return nil, err
	}

	var book models.Book
	if err := json.Unmarshal(unwrapEnvelope(raw), &book); err != nil {
		return nil, fmt.Errorf("failed to decode book: %w", err)
	}
	return &book, nil
}

func (c *HTTPClient) SearchBooks(ctx context.Context, query string) ([]models.Book, error) {
	q := url.Values{}
	q.Set("q", query)

	raw, err := c.do(ctx, http.MethodGet, pathBooksSearch, q, nil)
	if err != nil {
		return nil, err
	}

	var books []models.Book
	if err := json.Unmarshal(raw, &books); err != nil {
		return nil, fmt.Errorf("failed to decode search results: %w", err)
	}
	return books, nil
}

func (c *HTTPClient) BooksByGenre(ctx context.Context, genre string) ([]models.Book, error) {
	raw, err := c.do(ctx, http.MethodGet, pathBooksByGenre+"/"+url.PathEscape(genre), nil, nil)
	if err != nil {
		return nil, err
	}

	var books []models.Book
	if err := json.Unmarshal(raw, &books); err != nil {
		return nil, fmt.Errorf("failed to decode genre results: %w", err)
	}
	return books, nil
}

type bookActionRequest struct {
	BookID string `json:"bookId"`
}

func (c *HTTPClient) BorrowBook(ctx context.Context, id string) (*models.Book, error) {
	return c.bookAction(ctx, pathBooksBorrow, id)
}

func (c *HTTPClient) ReturnBook(ctx context.Context, id string) (*models.Book, error) {
	return c.bookAction(ctx, pathBooksReturn, id)
}

func (c *HTTPClient) bookAction(ctx context.Context, path, id string) (*models.Book, error) {
	raw, err := c.do(ctx, http.MethodPost, path, nil, bookActionRequest{BookID: id})
	if err != nil {
		return nil, err
	}

	var book models.Book
	if err := json.Unmarshal(raw, &book); err != nil {
		return nil, fmt.Errorf("failed to decode book: %w", err)
	}
	return &book, nil
}
