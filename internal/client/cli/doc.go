// Package cli provides the interactive LibShelf command-line client.
//
// It wires configuration, the local keystore, the session store, and the HTTP
// gateway into an interactive REPL. The session is restored from local
// storage before the first prompt renders, so the UI never shows an
// authenticated surface prematurely.
//
// Commands:
//   - login / logout
//   - profile
//   - list, show <id>, search <query>, genre <genre>
//   - borrow <id>, return <id>
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
