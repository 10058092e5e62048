package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	if a.isLoggedIn() {
		return "(signed in)"
	}
	return "(guest)"
}

func (a *App) Root(ctx context.Context) {

	fmt.Println("Welcome to LibShelf CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("libshelf %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		if quit := a.dispatch(ctx, cmd, args); quit {
			return
		}
	}
}

// dispatch runs a single REPL command; it reports true when the user asked
// to exit.
func (a *App) dispatch(ctx context.Context, cmd string, args []string) bool {
	switch cmd {
	case "help":
		if a.isLoggedIn() {
			fmt.Println("Available commands: profile, list, show <id>, search <query>, genre <genre>, borrow <id>, return <id>, logout, exit")
		} else {
			fmt.Println("Available commands: login, list, show <id>, search <query>, genre <genre>, exit")
		}

	case "login":
		a.Login(ctx)
	case "logout":
		a.Logout(ctx)
	case "profile":
		a.Profile(ctx)
	case "list":
		a.listBooks(ctx)
	case "show":
		if len(args) == 0 {
			fmt.Println("Usage: show <id>")
			return false
		}
		a.showBook(ctx, args[0])
	case "search":
		if len(args) == 0 {
			fmt.Println("Usage: search <query>")
			return false
		}
		a.searchBooks(ctx, strings.Join(args, " "))
	case "genre":
		if len(args) == 0 {
			fmt.Println("Usage: genre <genre>")
			return false
		}
		a.booksByGenre(ctx, strings.Join(args, " "))
	case "borrow":
		if len(args) == 0 {
			fmt.Println("Usage: borrow <id>")
			return false
		}
		a.borrowBook(ctx, args[0])
	case "return":
		if len(args) == 0 {
			fmt.Println("Usage: return <id>")
			return false
		}
		a.returnBook(ctx, args[0])
	case "exit", "quit":
		fmt.Println("Bye!")
		return true

	default:
		fmt.Println("Unknown command:", cmd)
	}
	return false
}
