package backend

import (
	"context"
	"encoding/json"
	"net/http"

	apperrors "grocer/cli/internal/errors"
	"grocer/cli/internal/session"
)

// authResponse mirrors the body of /signin and /signup.
type authResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// SignIn posts credentials to /signin. The jwt_token cookie from the response
// is saved to the session store.
func (h *HTTP) SignIn(ctx context.Context, req SignInRequest) (*User, error) {
	if err := h.check(req); err != nil {
		return nil, err
	}
	return h.authenticate(ctx, "/signin", req)
}

// SignUp posts a new account to /signup and stores the issued session the same
// way SignIn does.
func (h *HTTP) SignUp(ctx context.Context, req SignUpRequest) (*User, error) {
	if err := h.check(req); err != nil {
		return nil, err
	}
	return h.authenticate(ctx, "/signup", req)
}

func (h *HTTP) authenticate(ctx context.Context, path string, body any) (*User, error) {
	resp, err := h.send(ctx, http.MethodPost, path, body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var out authResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, apperrors.Wrap(apperrors.Unexpected, "decode "+path+" response", err)
	}

	cookie := sessionCookie(resp)
	if cookie == nil && out.Token != "" {
		// Cross-site deployments may strip Set-Cookie; the body carries the same token.
		cookie = &http.Cookie{Name: session.CookieName, Value: out.Token}
	}
	if cookie == nil {
		return nil, apperrors.New(apperrors.Unexpected, path+" returned no session")
	}
	if h.store != nil {
		if err := h.store.Save(cookie); err != nil {
			return nil, apperrors.Wrap(apperrors.Unexpected, "store session", err)
		}
	}
	return out.User, nil
}

func sessionCookie(resp *http.Response) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == session.CookieName && c.Value != "" {
			return c
		}
	}
	return nil
}
