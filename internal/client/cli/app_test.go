package cli

import (
	"bufio"
	"context"
	"database/sql"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dkarpovs/libshelf/internal/client/models"
	"github.com/dkarpovs/libshelf/internal/client/services"
	"github.com/dkarpovs/libshelf/internal/logging"

	_ "modernc.org/sqlite"
)

// ------------ helpers ------------

func readerFromLines(lines ...string) *bufio.Reader {
	if len(lines) == 0 || lines[len(lines)-1] != "" {
		lines = append(lines, "")
	}
	return bufio.NewReader(strings.NewReader(strings.Join(lines, "\n")))
}

func newTestSession(t *testing.T, name string) *services.SessionStore {
	t.Helper()
	db, err := sql.Open("sqlite", "file:"+name+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE keystore (key TEXT PRIMARY KEY, value BLOB NOT NULL)`)
	require.NoError(t, err)

	s := services.NewSessionStore(db, logging.NewDefault())
	s.Initialize(context.Background())
	return s
}

// fakeAPI implements client.Client and records the calls it receives.
type fakeAPI struct {
	loginEmail    string
	loginPassword string
	loginToken    string
	loginErr      error

	listCalled bool
	listOut    []models.Book
	listErr    error

	getID  string
	getOut *models.Book
	getErr error

	searchQuery string
	searchOut   []models.Book
	searchErr   error

	genreName string
	genreOut  []models.Book
	genreErr  error

	borrowID  string
	borrowOut *models.Book
	borrowErr error

	returnID  string
	returnOut *models.Book
	returnErr error

	profileOut *models.User
	profileErr error
}

func (f *fakeAPI) Login(ctx context.Context, email, password string) (string, error) {
	f.loginEmail = email
	f.loginPassword = password
	return f.loginToken, f.loginErr
}

func (f *fakeAPI) GetProfile(ctx context.Context) (*models.User, error) {
	return f.profileOut, f.profileErr
}

func (f *fakeAPI) ListBooks(ctx context.Context) ([]models.Book, error) {
	f.listCalled = true
	return f.listOut, f.listErr
}

func (f *fakeAPI) GetBook(ctx context.Context, id string) (*models.Book, error) {
	f.getID = id
	return f.getOut, f.getErr
}

func (f *fakeAPI) SearchBooks(ctx context.Context, query string) ([]models.Book, error) {
	f.searchQuery = query
	return f.searchOut, f.searchErr
}

func (f *fakeAPI) BooksByGenre(ctx context.Context, genre string) ([]models.Book, error) {
	f.genreName = genre
	return f.genreOut, f.genreErr
}

func (f *fakeAPI) BorrowBook(ctx context.Context, id string) (*models.Book, error) {
	f.borrowID = id
	return f.borrowOut, f.borrowErr
}

func (f *fakeAPI) ReturnBook(ctx context.Context, id string) (*models.Book, error) {
	f.returnID = id
	return f.returnOut, f.returnErr
}

// ------------ tests ------------

func TestGetStatus_FollowsSessionState(t *testing.T) {
	session := newTestSession(t, "cli_status")
	app := &App{session: session, log: logging.NewDefault()}

	require.Equal(t, "(guest)", app.getStatus())

	require.NoError(t, session.Login(context.Background(), "abc123"))
	require.Equal(t, "(signed in)", app.getStatus())

	session.Logout(context.Background())
	require.Equal(t, "(guest)", app.getStatus())
}

func TestLogin_StoresTokenInSession(t *testing.T) {
	orig := readPassword
	t.Cleanup(func() { readPassword = orig })
	readPassword = func(fd int) ([]byte, error) { return []byte("hunter2"), nil }

	session := newTestSession(t, "cli_login")
	api := &fakeAPI{loginToken: "abc123"}
	app := &App{
		session: session,
		api:     api,
		reader:  readerFromLines("reader@example.com"),
		log:     logging.NewDefault(),
	}

	app.Login(context.Background())

	require.Equal(t, "reader@example.com", api.loginEmail)
	require.Equal(t, "hunter2", api.loginPassword)
	require.True(t, session.IsAuthenticated())
	require.Equal(t, "abc123", session.Token())
}

func TestLogout_ClearsSession(t *testing.T) {
	session := newTestSession(t, "cli_logout")
	require.NoError(t, session.Login(context.Background(), "abc123"))

	app := &App{session: session, api: &fakeAPI{}, log: logging.NewDefault()}
	app.Logout(context.Background())

	require.False(t, session.IsAuthenticated())
}

func TestDispatch_RoutesBookCommands(t *testing.T) {
	session := newTestSession(t, "cli_dispatch")
	book := &models.Book{ID: "b1", Title: "Dune"}
	api := &fakeAPI{
		getOut:    book,
		borrowOut: book,
		returnOut: book,
	}
	app := &App{session: session, api: api, log: logging.NewDefault()}
	ctx := context.Background()

	require.False(t, app.dispatch(ctx, "list", nil))
	require.True(t, api.listCalled)

	require.False(t, app.dispatch(ctx, "show", []string{"b1"}))
	require.Equal(t, "b1", api.getID)

	require.False(t, app.dispatch(ctx, "search", []string{"dune", "messiah"}))
	require.Equal(t, "dune messiah", api.searchQuery)

	require.False(t, app.dispatch(ctx, "genre", []string{"science", "fiction"}))
	require.Equal(t, "science fiction", api.genreName)

	require.False(t, app.dispatch(ctx, "borrow", []string{"b1"}))
	require.Equal(t, "b1", api.borrowID)

	require.False(t, app.dispatch(ctx, "return", []string{"b1"}))
	require.Equal(t, "b1", api.returnID)
}

func TestDispatch_MissingArgsDoNotCallAPI(t *testing.T) {
	session := newTestSession(t, "cli_dispatch_args")
	api := &fakeAPI{}
	app := &App{session: session, api: api, log: logging.NewDefault()}
	ctx := context.Background()

	require.False(t, app.dispatch(ctx, "show", nil))
	require.Empty(t, api.getID)

	require.False(t, app.dispatch(ctx, "borrow", nil))
	require.Empty(t, api.borrowID)
}

func TestDispatch_ExitReturnsTrue(t *testing.T) {
	session := newTestSession(t, "cli_dispatch_exit")
	app := &App{session: session, api: &fakeAPI{}, log: logging.NewDefault()}

	require.True(t, app.dispatch(context.Background(), "exit", nil))
	require.True(t, app.dispatch(context.Background(), "quit", nil))
	require.False(t, app.dispatch(context.Background(), "bogus", nil))
}
