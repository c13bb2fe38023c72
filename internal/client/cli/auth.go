package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/vltrn/datav/internal/client/models"
	"github.com/vltrn/datav/internal/client/plans"
	"github.com/vltrn/datav/internal/client/services"
	"github.com/vltrn/datav/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

var errEmptyEmail = errors.New("email is required")

// Register prompts for email, password, company and plan and creates the
// account. On success the new session is active immediately.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	if email == "" {
		return errEmptyEmail
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	company, err := getSimpleText(a.reader, "Enter company", a.out)
	if err != nil {
		return err
	}

	plan, err := getSimpleText(a.reader, fmt.Sprintf("Choose plan %s [%s]", planIDs(), plans.DefaultID), a.out)
	if err != nil {
		return err
	}

	_, err = a.auth.Register(ctx, services.RegisterInput{
		Email:    email,
		Password: string(password),
		Company:  company,
		Plan:     plan,
	})
	if err != nil {
		return err
	}

	a.logger.Info(ctx, "registered", "email", email)
	fmt.Fprintln(a.out, "Success! You are now logged in.")
	return nil
}

// Login prompts for credentials, pre-filling the remembered email, and asks
// whether the session should survive restarts.
func (a *App) Login(ctx context.Context) error {
	remembered, err := a.session.RememberedEmail(ctx)
	if err != nil {
		a.logger.Warn(ctx, "remembered email read error", "error", err)
	}

	prompt := "Enter email"
	if remembered != "" {
		prompt += fmt.Sprintf(" [%s]", remembered)
	}
	email, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return err
	}
	if email == "" {
		email = remembered
	}
	if email == "" {
		return errEmptyEmail
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	answer, err := getSimpleText(a.reader, "Remember me? (y/N)", a.out)
	if err != nil {
		return err
	}

	if _, err := a.auth.Login(ctx, email, string(password), isYes(answer)); err != nil {
		a.logger.Info(ctx, "login unsuccessful", "email", email)
		return err
	}

	a.logger.Info(ctx, "login successful", "email", email)
	fmt.Fprintln(a.out, "Login successful")
	return nil
}

// Logout clears the session in both scopes.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

// Forget logs out and drops the remembered email and any other local state.
func (a *App) Forget(ctx context.Context) error {
	if err := a.auth.Forget(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Local data cleared")
	return nil
}

// Me shows the account from /auth/me and the token's expiry when known.
func (a *App) Me(ctx context.Context) error {
	if err := a.requireAuth(ctx); err != nil {
		return err
	}

	raw, err := a.auth.Me(ctx)
	if err != nil {
		return err
	}

	var u models.User
	if err := json.Unmarshal(raw, &u); err != nil {
		return fmt.Errorf("decode user: %w", err)
	}

	fmt.Fprintf(a.out, "Email:   %s\n", u.Email)
	if u.Company != "" {
		fmt.Fprintf(a.out, "Company: %s\n", u.Company)
	}
	if u.Plan != "" {
		name := u.Plan
		if p, ok := plans.Lookup(u.Plan); ok {
			name = p.Name
		}
		fmt.Fprintf(a.out, "Plan:    %s\n", name)
	}

	if claims, err := a.session.TokenClaims(ctx); err == nil && !claims.ExpiresAt.IsZero() {
		at := claims.ExpiresAt.Local().Format(time.RFC1123)
		if claims.Expired(time.Now()) {
			fmt.Fprintf(a.out, "Session: expired %s\n", at)
		} else {
			fmt.Fprintf(a.out, "Session: expires %s\n", at)
		}
	}
	return nil
}
