package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/churchhub/internal/client/forms"
	"github.com/dmitrijs2005/churchhub/internal/client/identity"
	"github.com/dmitrijs2005/churchhub/internal/common"
)

// guestEmail is used by the "guest" quick login.
const guestEmail = "guest@church.com"

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

// Login prompts for credentials, validates them and signs in. The password
// byte slice is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	a.heading(a.text.Login)

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	f := &forms.LoginForm{Email: email, Password: string(password)}
	if err := a.validator.Validate(f); err != nil {
		return a.fail(err)
	}
	return a.signIn(ctx, f.Email, f.Password)
}

// Guest signs in with the demo guest account.
func (a *App) Guest(ctx context.Context) error {
	return a.signIn(ctx, guestEmail, "guest")
}

// Register prompts for a name, email and password, creates the account and
// signs it in.
func (a *App) Register(ctx context.Context) error {
	a.heading("Create account")

	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	f := &forms.SignUpForm{Name: name, Email: email, Password: string(password)}
	if err := a.validator.Validate(f); err != nil {
		return a.fail(err)
	}

	if err := a.session.SignUp(ctx, f.Name, f.Email, f.Password); err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			return a.fail(errors.New("an account with this email already exists"))
		}
		a.log.Error(ctx, "sign up failed", "error", err)
		return a.fail(err)
	}
	a.afterAuthChange(ctx)
	return nil
}

// Logout signs out; the navigator falls back to the login screen.
func (a *App) Logout(ctx context.Context) error {
	a.session.SignOut(ctx)
	a.println("Signed out.")
	a.afterAuthChange(ctx)
	return nil
}

func (a *App) signIn(ctx context.Context, email, password string) error {
	if err := a.session.SignIn(ctx, email, password); err != nil {
		if errors.Is(err, identity.ErrInvalidCredentials) {
			return a.fail(errors.New("wrong email or password"))
		}
		a.log.Error(ctx, "sign in failed", "error", err)
		return a.fail(err)
	}
	a.afterAuthChange(ctx)
	return nil
}

func (a *App) afterAuthChange(ctx context.Context) {
	a.nav.Sync()
	a.showCurrent(ctx)
}
