// Package services contains the DataV domain API used by the CLI: account,
// project, file and dashboard operations. Each method maps one action to a
// single API call and keeps the session store up to date for register and
// login.
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/vltrn/datav/internal/client/client"
)

var (
	ErrUnknownPlan        = errors.New("unknown plan")
	ErrFileTooLarge       = errors.New("file too large")
	ErrFileTypeNotAllowed = errors.New("file type not allowed")
	ErrEmptyName          = errors.New("name is required")
)

// Variant selects the API flavour. The legacy API serves every route except
// /health under /api and accepts remember_me on login.
type Variant string

const (
	VariantFull   Variant = "full"
	VariantLegacy Variant = "legacy"
)

// ParseVariant accepts "full" or "legacy", case-insensitively. Empty means full.
func ParseVariant(s string) (Variant, error) {
	switch Variant(strings.ToLower(strings.TrimSpace(s))) {
	case "", VariantFull:
		return VariantFull, nil
	case VariantLegacy:
		return VariantLegacy, nil
	}
	return "", fmt.Errorf("unknown api variant %q", s)
}

func (v Variant) path(p string) string {
	if v == VariantLegacy && p != healthPath {
		return "/api" + p
	}
	return p
}

const healthPath = "/health"

// SessionStore is the part of session.Store the services write to.
type SessionStore interface {
	Establish(ctx context.Context, token string, user json.RawMessage, remember bool) error
	ClearToken(ctx context.Context) error
	Reset(ctx context.Context) error
	RememberEmail(ctx context.Context, email string) error
	ForgetEmail(ctx context.Context) error
}

// Services bundles every domain service over one client.
type Services struct {
	Auth      AuthService
	Projects  ProjectService
	Files     FileService
	Dashboard DashboardService
}

// New builds all services for the given variant.
func New(c client.Client, store SessionStore, v Variant) *Services {
	return &Services{
		Auth:      NewAuthService(c, store, v),
		Projects:  NewProjectService(c, v),
		Files:     NewFileService(c, v),
		Dashboard: NewDashboardService(c, v),
	}
}

func segment(id string) string {
	return url.PathEscape(id)
}

func decode[T any](raw json.RawMessage, what string) (T, error) {
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, fmt.Errorf("%w: %s: %v", client.ErrParse, what, err)
	}
	return v, nil
}
