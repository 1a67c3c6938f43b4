package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GoTrueProvider talks to a GoTrue-compatible auth endpoint, the identity
// service fronting the hosted backend.
type GoTrueProvider struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	serviceKey string
	logger     *zap.Logger
}

func NewGoTrue(baseURL string, apiKey string, serviceKey string, logger *zap.Logger) *GoTrueProvider {
	return &GoTrueProvider{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		serviceKey: serviceKey,
		logger:     logger,
	}
}

type signUpRequest struct {
	Email    string         `json:"email"`
	Password string         `json:"password"`
	Data     map[string]any `json:"data,omitempty"`
}

func (p *GoTrueProvider) SignUp(ctx context.Context, email string, password string, username string) (*User, error) {
	body := signUpRequest{
		Email:    email,
		Password: password,
	}
	if username != "" {
		body.Data = map[string]any{"username": username}
	}

	// Depending on provider configuration the signup response is either the
	// bare user or a session wrapping it.
	var out struct {
		User
		User2 *User `json:"user"`
	}
	if err := p.do(ctx, http.MethodPost, "/auth/v1/signup", p.apiKey, "", body, &out); err != nil {
		return nil, err
	}
	if out.User2 != nil {
		return out.User2, nil
	}
	return &out.User, nil
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (p *GoTrueProvider) SignIn(ctx context.Context, email string, password string) (*Session, error) {
	var session Session
	body := signInRequest{Email: email, Password: password}
	if err := p.do(ctx, http.MethodPost, "/auth/v1/token?grant_type=password", p.apiKey, "", body, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (p *GoTrueProvider) GetUser(ctx context.Context, accessToken string) (*User, error) {
	var user User
	if err := p.do(ctx, http.MethodGet, "/auth/v1/user", p.apiKey, accessToken, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (p *GoTrueProvider) DeleteUser(ctx context.Context, id uuid.UUID) error {
	return p.do(ctx, http.MethodDelete, "/auth/v1/admin/users/"+id.String(), p.serviceKey, "", nil, nil)
}

// do performs one provider call. bearer, when empty, falls back to the api
// key itself, matching how the hosted backend authenticates anonymous calls.
func (p *GoTrueProvider) do(ctx context.Context, method string, path string, apiKey string, bearer string, body any, dest any) error {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return err
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, p.baseURL+path, bodyReader)
	if err != nil {
		return err
	}
	req.Header.Set("apikey", apiKey)
	if bearer == "" {
		bearer = apiKey
	}
	req.Header.Set("Authorization", "Bearer "+bearer)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 && resp.StatusCode < 500 {
		respBody, _ := io.ReadAll(resp.Body)
		p.logger.Sugar().Errorf("identity provider rejected %s %s with %d: %s", method, path, resp.StatusCode, string(respBody))
		return ErrRejected
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		p.logger.Sugar().Errorf("identity provider responded %d on %s %s: %s", resp.StatusCode, method, path, string(respBody))
		return &ProviderError{Status: resp.StatusCode, Body: string(respBody)}
	}

	if dest != nil {
		if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
			return err
		}
	}
	return nil
}
