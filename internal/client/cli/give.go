package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/churchhub/internal/client/forms"
	"github.com/dmitrijs2005/churchhub/internal/client/navigation"
)

// Give opens the Give tab, asks for an amount and an optional name, and on
// valid input opens the giving page in the browser. Invalid input stops
// before the browser is touched.
func (a *App) Give(ctx context.Context) error {
	if _, err := a.nav.Navigate(navigation.RouteGive, nil); err != nil {
		return a.fail(err)
	}
	a.heading(a.text.Give)

	amount, err := getSimpleText(a.reader, "Amount", a.out)
	if err != nil {
		return err
	}
	name, err := getSimpleText(a.reader, "Name (optional)", a.out)
	if err != nil {
		return err
	}

	f := &forms.GiveForm{Amount: amount, Name: name}
	if err := a.validator.Validate(f); err != nil {
		return a.fail(err)
	}

	value, _ := forms.ParseAmount(f.Amount)
	a.printf("Opening the giving page for $%.2f. Please confirm the amount there.\n", value)
	if err := a.openURL(a.givingURL); err != nil {
		a.log.Warn(ctx, "failed to open giving page", "url", a.givingURL, "error", err)
		return a.fail(fmt.Errorf("could not open %s: %w", a.givingURL, err))
	}
	return nil
}
