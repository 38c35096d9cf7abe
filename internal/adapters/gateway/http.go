package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/bnema/dcms-cli/internal/domain"
	"github.com/bnema/dcms-cli/internal/ports"
	"github.com/google/uuid"
)

const (
	maxResponseBytes      = 4 << 20
	defaultRequestTimeout = 30 * time.Second

	LoginPath = "/Mobile/Login"
	DataPath  = "/Mobile/GetData"
)

type API struct {
	BaseURL   string
	LoginPath string
	DataPath  string
}

func DefaultAPI(baseURL string) API {
	return API{BaseURL: baseURL, LoginPath: LoginPath, DataPath: DataPath}
}

// HTTPGateway implements ports.Gateway against the DCMS mobile endpoints.
type HTTPGateway struct {
	API            API
	HTTPClient     *http.Client
	RequestTimeout time.Duration
	Logger         *log.Logger
}

var _ ports.Gateway = (*HTTPGateway)(nil)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	User    *domain.Session `json:"user"`
}

type errorResponse struct {
	Message string `json:"message"`
}

func (g *HTTPGateway) Login(ctx context.Context, username, password string) (domain.Session, error) {
	endpoint, err := joinURL(g.API.BaseURL, g.API.LoginPath)
	if err != nil {
		return domain.Session{}, err
	}

	body, err := json.Marshal(loginRequest{Username: username, Password: password})
	if err != nil {
		return domain.Session{}, fmt.Errorf("encode login request: %w", err)
	}

	requestCtx, cancel := g.requestContext(ctx)
	defer cancel()
	req, err := http.NewRequestWithContext(requestCtx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return domain.Session{}, fmt.Errorf("create login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	requestID := g.decorate(req)

	g.logf("[gateway] login request=%s username=%q", requestID, username)
	resp, err := g.httpClient().Do(req)
	if err != nil {
		return domain.Session{}, &domain.ConnectivityError{Message: domain.MessageCannotReachServer, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	// The login endpoint reports rejection in the body, so the status code is not consulted.
	var payload loginResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&payload); err != nil {
		return domain.Session{}, &domain.ConnectivityError{
			Message: domain.MessageCannotReachServer,
			Err:     fmt.Errorf("decode login response (status %d): %w", resp.StatusCode, err),
		}
	}

	if !payload.Success || payload.User == nil {
		message := strings.TrimSpace(payload.Message)
		if message == "" {
			message = domain.MessageInvalidLogin
		}
		g.logf("[gateway] login request=%s rejected: %s", requestID, message)
		return domain.Session{}, &domain.AuthError{Message: message}
	}

	g.logf("[gateway] login request=%s accepted user=%s", requestID, payload.User.ID)
	return *payload.User, nil
}

func (g *HTTPGateway) FetchBundle(ctx context.Context, userID domain.UserID) (domain.Bundle, error) {
	endpoint, err := joinURL(g.API.BaseURL, g.API.DataPath)
	if err != nil {
		return domain.Bundle{}, err
	}
	if userID.Scoped() {
		endpoint += "?" + url.Values{"userId": []string{strconv.FormatInt(int64(userID), 10)}}.Encode()
	}

	requestCtx, cancel := g.requestContext(ctx)
	defer cancel()
	req, err := http.NewRequestWithContext(requestCtx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.Bundle{}, fmt.Errorf("create data request: %w", err)
	}
	requestID := g.decorate(req)

	g.logf("[gateway] fetch request=%s identity=%s", requestID, userID)
	resp, err := g.httpClient().Do(req)
	if err != nil {
		return domain.Bundle{}, &domain.ConnectivityError{Message: domain.MessageConnectivity, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		serverErr := decodeServerError(resp)
		g.logf("[gateway] fetch request=%s failed: status %d: %s", requestID, serverErr.StatusCode, serverErr.Message)
		return domain.Bundle{}, serverErr
	}

	var bundle domain.Bundle
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&bundle); err != nil {
		return domain.Bundle{}, &domain.ConnectivityError{
			Message: domain.MessageConnectivity,
			Err:     fmt.Errorf("decode data response: %w", err),
		}
	}
	bundle.Normalize()

	return bundle, nil
}

// ResolveAttachmentURL returns absolute http(s) links unchanged and joins anything else onto
// the base URL with exactly one slash. Empty input has no location.
func (g *HTTPGateway) ResolveAttachmentURL(rawURL string) (string, bool) {
	return ResolveAttachmentURL(g.API.BaseURL, rawURL)
}

func ResolveAttachmentURL(baseURL, rawURL string) (string, bool) {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return "", false
	}

	if isAbsoluteNetworkURL(trimmed) {
		return trimmed, true
	}

	return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(trimmed, "/"), true
}

func isAbsoluteNetworkURL(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}

	scheme := strings.ToLower(parsed.Scheme)
	return (scheme == "http" || scheme == "https") && parsed.Host != ""
}

func (g *HTTPGateway) decorate(req *http.Request) string {
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-cache, no-store, must-revalidate")
	req.Header.Set("Pragma", "no-cache")
	// Tunnelled dev backends otherwise answer with an HTML interstitial.
	req.Header.Set("ngrok-skip-browser-warning", "69420")
	req.Header.Set("X-Request-Id", requestID)

	return requestID
}

func (g *HTTPGateway) httpClient() *http.Client {
	if g.HTTPClient != nil {
		return g.HTTPClient
	}
	return http.DefaultClient
}

func (g *HTTPGateway) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	requestTimeout := g.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = defaultRequestTimeout
	}

	return context.WithTimeout(ctx, requestTimeout)
}

func (g *HTTPGateway) logf(format string, args ...any) {
	if g.Logger == nil {
		return
	}
	g.Logger.Printf(format, args...)
}

func decodeServerError(resp *http.Response) *domain.ServerError {
	var payload errorResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&payload); err != nil {
		return domain.NewServerError(resp.StatusCode, "")
	}

	return domain.NewServerError(resp.StatusCode, strings.TrimSpace(payload.Message))
}

func joinURL(baseURL string, path string) (string, error) {
	if baseURL == "" {
		return "", errors.New("api base url is required")
	}
	if path == "" {
		return "", errors.New("api path is required")
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse api base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("api base url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("api base url host is required")
	}

	return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(path, "/"), nil
}
