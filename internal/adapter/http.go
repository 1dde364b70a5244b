package adapter

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

// Remote endpoints, relative to the configured base URL.
const (
	pathIterations = "/iterations.php"
	pathLogin      = "/login.php"
	pathAccounts   = "/getaccts.php"
	pathLogout     = "/logout.php"

	// SessionCookie carries the escaped session id on authenticated calls.
	SessionCookie = "PHPSESSID"
)

type httpServerAdapter struct {
	client *resty.Client

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and
// request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Iterations implements [ServerAdapter]. It POSTs the form field email to
// /iterations.php and parses the plain-text body as a positive integer.
func (h *httpServerAdapter) Iterations(ctx context.Context, username string) (int, error) {
	req := h.newRequest(ctx).
		SetFormData(map[string]string{"email": username})

	resp, err := h.send(req, http.MethodPost, pathIterations, "iterations")
	if err != nil {
		return 0, err
	}

	body := strings.TrimSpace(resp.String())
	iterations, err := strconv.Atoi(body)
	if err != nil || iterations <= 0 {
		return 0, fmt.Errorf("%w: iterations: %q is not a positive integer", ErrProtocol, truncate(body, maxErrorBody))
	}

	return iterations, nil
}

type loginResponse struct {
	XMLName xml.Name `xml:"response"`
	OK      *struct {
		SessionID string `xml:"sessionid,attr"`
	} `xml:"ok"`
	Error *struct {
		Message string `xml:"message,attr"`
		Cause   string `xml:"cause,attr"`
	} `xml:"error"`
}

// Login implements [ServerAdapter]. It POSTs the challenge-response form to
// /login.php and reads the session id out of the XML reply.
func (h *httpServerAdapter) Login(ctx context.Context, username, authHash string, iterations int) (models.SessionID, error) {
	req := h.newRequest(ctx).
		SetFormData(map[string]string{
			"method":     "cr",
			"web":        "1",
			"xml":        "2",
			"username":   username,
			"hash":       authHash,
			"iterations": strconv.Itoa(iterations),
		})

	resp, err := h.send(req, http.MethodPost, pathLogin, "login")
	if err != nil {
		return "", err
	}

	var lr loginResponse
	if err = xml.Unmarshal(resp.Body(), &lr); err != nil {
		return "", fmt.Errorf("%w: login: decode response: %w", ErrProtocol, err)
	}

	switch {
	case lr.OK != nil && lr.OK.SessionID != "":
		return models.SessionID(lr.OK.SessionID), nil
	case lr.Error != nil:
		authErr := &AuthenticationError{Message: lr.Error.Message, Cause: lr.Error.Cause}
		if authErr.Message == "" {
			authErr.Message = DefaultAuthErrorMessage
		}
		return "", authErr
	default:
		return "", fmt.Errorf("%w: login: neither ok nor error in response", ErrProtocol)
	}
}

// Accounts implements [ServerAdapter]. It GETs /getaccts.php with the session
// cookie and returns the body unchanged.
func (h *httpServerAdapter) Accounts(ctx context.Context, sessionID models.SessionID) ([]byte, error) {
	req := h.sessionRequest(ctx, sessionID).
		SetQueryParams(map[string]string{"mobile": "1", "hash": "0.0"})

	resp, err := h.send(req, http.MethodGet, pathAccounts, "accounts")
	if err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

// Logout implements [ServerAdapter]. It GETs /logout.php with the session
// cookie.
func (h *httpServerAdapter) Logout(ctx context.Context, sessionID models.SessionID) error {
	req := h.sessionRequest(ctx, sessionID).
		SetQueryParam("mobile", "1")

	_, err := h.send(req, http.MethodGet, pathLogout, "logout")
	return err
}

func (h *httpServerAdapter) newRequest(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader(headerRequestID, newRequestID())
}

func (h *httpServerAdapter) sessionRequest(ctx context.Context, sessionID models.SessionID) *resty.Request {
	return h.newRequest(ctx).
		SetCookie(&http.Cookie{Name: SessionCookie, Value: url.PathEscape(string(sessionID))})
}

// send executes req and maps transport failures and non-2xx statuses to
// ErrNetwork.
func (h *httpServerAdapter) send(req *resty.Request, method, path, op string) (*resty.Response, error) {
	log := logger.FromContextOr(req.Context(), h.logger)
	requestID := req.Header.Get(headerRequestID)

	resp, err := req.Execute(method, path)
	if err != nil {
		log.Debug().Err(err).
			Str("op", op).
			Str("request_id", requestID).
			Msg("vault service request failed")
		return nil, fmt.Errorf("%w: %s request: %w", ErrNetwork, op, err)
	}

	log.Debug().
		Str("op", op).
		Str("request_id", requestID).
		Int("status", resp.StatusCode()).
		Dur("elapsed", resp.Time()).
		Msg("vault service request done")

	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return resp, nil
}
