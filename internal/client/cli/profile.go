package cli

import (
	"context"

	"github.com/dmitrijs2005/churchhub/internal/client/forms"
	"github.com/dmitrijs2005/churchhub/internal/client/navigation"
	"github.com/dmitrijs2005/churchhub/internal/common"
)

// clearValue typed at an optional prompt empties the field.
const clearValue = "-"

// EditProfile prompts for the editable profile fields, pre-filled with the
// current values, and saves the changes.
func (a *App) EditProfile(ctx context.Context) error {
	u, ok := a.session.User()
	if !ok {
		return a.fail(common.ErrUnauthorized)
	}
	if _, err := a.nav.Navigate(navigation.RouteProfile, nil); err != nil {
		return a.fail(err)
	}
	a.heading(a.text.Profile)
	a.println("Press Enter to keep a value, '-' to clear phone or address.")

	var err error
	f := forms.ProfileFormFrom(u)
	if f.Name, err = GetTextWithDefault(a.reader, "Name", f.Name, a.out); err != nil {
		return err
	}
	if f.Email, err = GetTextWithDefault(a.reader, "Email", f.Email, a.out); err != nil {
		return err
	}
	if f.Phone, err = GetTextWithDefault(a.reader, "Phone", f.Phone, a.out); err != nil {
		return err
	}
	if f.Address, err = GetTextWithDefault(a.reader, "Address", f.Address, a.out); err != nil {
		return err
	}
	if f.Phone == clearValue {
		f.Phone = ""
	}
	if f.Address == clearValue {
		f.Address = ""
	}

	if err := a.validator.Validate(&f); err != nil {
		return a.fail(err)
	}

	patch := f.Patch(u)
	if patch.Empty() {
		a.println("Nothing changed.")
		return nil
	}
	a.session.UpdateProfile(ctx, patch)
	a.println("Profile updated.")
	a.profile()
	return nil
}
