package cli

import (
	"context"
	"fmt"
	"time"
)

func (a *App) Profile(ctx context.Context) {
	user, err := a.api.GetProfile(ctx)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	fmt.Printf("Name:   %s\n", user.Name)
	fmt.Printf("Email:  %s\n", user.Email)
	fmt.Printf("Role:   %s\n", user.Role)
	if savedAt := a.session.SavedAt(); !savedAt.IsZero() {
		fmt.Printf("Signed in since: %s\n", savedAt.Local().Format(time.RFC822))
	}
}
