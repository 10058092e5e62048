package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dkarpovs/libshelf/internal/client/services"
)

// Login prompts for credentials, exchanges them for a token, and hands the
// token to the session store. A token that cannot be persisted is not kept:
// the user is told to retry instead of being left half logged in.
func (a *App) Login(ctx context.Context) {

	email, err := GetSimpleText(a.reader, "Enter email:", os.Stdout)
	if err != nil {
		fmt.Println("Error reading email:", err)
		return
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		fmt.Println("Error reading password:", err)
		return
	}

	token, err := a.api.Login(ctx, email, password)
	if err != nil {
		fmt.Println("Login failed:", err)
		return
	}

	if err := a.session.Login(ctx, token); err != nil {
		if errors.Is(err, services.ErrPersistence) {
			fmt.Println("Login failed:", a.session.LastError())
		} else {
			fmt.Println("Login failed:", err)
		}
		return
	}

	fmt.Println("Logged in.")
}

// Logout clears the session. Storage cleanup problems are reported but never
// keep the user signed in.
func (a *App) Logout(ctx context.Context) {
	a.session.Logout(ctx)
	if msg := a.session.LastError(); msg != "" {
		fmt.Println("Warning:", msg)
		a.session.ClearError()
	}
	fmt.Println("Logged out.")
}
