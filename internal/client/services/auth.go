package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/vltrn/datav/internal/client/client"
	"github.com/vltrn/datav/internal/client/models"
	"github.com/vltrn/datav/internal/client/plans"
)

// RegisterInput holds the sign-up form. An empty Plan means plans.DefaultID.
type RegisterInput struct {
	Email    string
	Password string
	Company  string
	Plan     string
}

// AuthService defines account operations for the CLI.
//
// Register and Login store the returned token, user and authenticated flag
// in the session store. Logout only clears local state.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*models.AuthResponse, error)
	Login(ctx context.Context, email, password string, rememberMe bool) (*models.AuthResponse, error)
	Me(ctx context.Context) (json.RawMessage, error)
	CurrentUser(ctx context.Context) json.RawMessage
	Logout(ctx context.Context) error
	Forget(ctx context.Context) error
}

type authService struct {
	client  client.Client
	store   SessionStore
	variant Variant
}

// NewAuthService constructs an AuthService bound to the given client and store.
func NewAuthService(c client.Client, store SessionStore, v Variant) AuthService {
	return &authService{client: c, store: store, variant: v}
}

var errNoToken = errors.New("response carries no access token")

func (a *authService) Register(ctx context.Context, in RegisterInput) (*models.AuthResponse, error) {
	if in.Plan == "" {
		in.Plan = plans.DefaultID
	}
	if _, ok := plans.Lookup(in.Plan); !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPlan, in.Plan)
	}

	raw, err := a.client.Request(ctx, client.Request{
		Path:   a.variant.path("/auth/register"),
		Method: http.MethodPost,
		Body: models.RegisterRequest{
			Email:    strings.TrimSpace(in.Email),
			Password: in.Password,
			Company:  in.Company,
			Plan:     in.Plan,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("register error: %w", err)
	}

	resp, err := a.establish(ctx, raw, false)
	if err != nil {
		return nil, fmt.Errorf("register error: %w", err)
	}
	return resp, nil
}

func (a *authService) Login(ctx context.Context, email, password string, rememberMe bool) (*models.AuthResponse, error) {
	email = strings.TrimSpace(email)
	body := models.LoginRequest{Email: email, Password: password}
	if a.variant == VariantLegacy {
		body.RememberMe = &rememberMe
	}

	raw, err := a.client.Request(ctx, client.Request{
		Path:   a.variant.path("/auth/login"),
		Method: http.MethodPost,
		Body:   body,
	})
	if err != nil {
		return nil, fmt.Errorf("login error: %w", err)
	}

	resp, err := a.establish(ctx, raw, rememberMe)
	if err != nil {
		return nil, fmt.Errorf("login error: %w", err)
	}

	if rememberMe {
		err = a.store.RememberEmail(ctx, email)
	} else {
		err = a.store.ForgetEmail(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("remembered email saving error: %w", err)
	}
	return resp, nil
}

func (a *authService) establish(ctx context.Context, raw json.RawMessage, remember bool) (*models.AuthResponse, error) {
	resp, err := decode[models.AuthResponse](raw, "auth response")
	if err != nil {
		return nil, err
	}
	if resp.AccessToken == "" {
		return nil, fmt.Errorf("%w: %w", client.ErrParse, errNoToken)
	}
	if err := a.store.Establish(ctx, resp.AccessToken, resp.User, remember); err != nil {
		return nil, fmt.Errorf("session saving error: %w", err)
	}
	return &resp, nil
}

// Me returns the raw account record of the current user.
func (a *authService) Me(ctx context.Context) (json.RawMessage, error) {
	return a.client.Request(ctx, client.Request{Path: a.variant.path("/auth/me"), Method: http.MethodGet})
}

// CurrentUser is Me with every failure mapped to nil.
func (a *authService) CurrentUser(ctx context.Context) json.RawMessage {
	raw, err := a.Me(ctx)
	if err != nil {
		return nil
	}
	return raw
}

// Logout clears the session in both scopes. No request is sent.
func (a *authService) Logout(ctx context.Context) error {
	return a.store.ClearToken(ctx)
}

// Forget drops everything stored on this device, the remembered email included.
func (a *authService) Forget(ctx context.Context) error {
	return a.store.Reset(ctx)
}
