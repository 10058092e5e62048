package cli

import (
	"context"
	"fmt"

	"github.com/dkarpovs/libshelf/internal/client/models"
)

func printBookLine(b *models.Book) {
	fmt.Printf("%s  %-30s  %-20s  %s (%d/%d)\n",
		b.ID, b.Title, b.Author, b.Status, b.Available, b.Quantity)
}

func printBookList(books []models.Book) {
	if len(books) == 0 {
		fmt.Println("No books found.")
		return
	}
	for i := range books {
		printBookLine(&books[i])
	}
}

func (a *App) listBooks(ctx context.Context) {
	books, err := a.api.ListBooks(ctx)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	printBookList(books)
}

func (a *App) showBook(ctx context.Context, id string) {
	book, err := a.api.GetBook(ctx, id)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	fmt.Printf("Title:       %s\n", book.Title)
	fmt.Printf("Author:      %s\n", book.Author)
	fmt.Printf("ISBN:        %s\n", book.ISBN)
	fmt.Printf("Genre:       %s\n", book.Genre)
	fmt.Printf("Status:      %s (%d of %d available)\n", book.Status, book.Available, book.Quantity)
	if book.Description != "" {
		fmt.Printf("Description: %s\n", book.Description)
	}
}

func (a *App) searchBooks(ctx context.Context, query string) {
	books, err := a.api.SearchBooks(ctx, query)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	printBookList(books)
}

func (a *App) booksByGenre(ctx context.Context, genre string) {
	books, err := a.api.BooksByGenre(ctx, genre)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	printBookList(books)
}

func (a *App) borrowBook(ctx context.Context, id string) {
	book, err := a.api.BorrowBook(ctx, id)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Printf("Borrowed %q.\n", book.Title)
}

func (a *App) returnBook(ctx context.Context, id string) {
	book, err := a.api.ReturnBook(ctx, id)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Printf("Returned %q.\n", book.Title)
}
