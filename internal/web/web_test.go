package web_test

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/auranode/auranode/internal/model"
	"github.com/auranode/auranode/internal/panel"
	"github.com/auranode/auranode/internal/services/account"
	"github.com/auranode/auranode/internal/session"
	"github.com/auranode/auranode/internal/web"
)

// fakePanel is an in-memory stand-in for the Pterodactyl application API,
// covering the three endpoints the site uses.
type fakePanel struct {
	mu      sync.Mutex
	nextID  int
	users   map[string]*model.PanelUser // keyed by email
	servers map[int][]model.PanelServer // keyed by user ID

	createRequests int
	down           bool // when set, every endpoint answers 500
}

func newFakePanel() *fakePanel {
	return &fakePanel{
		nextID:  1,
		users:   make(map[string]*model.PanelUser),
		servers: make(map[int][]model.PanelServer),
	}
}

// addUser seeds an account directly, as if it already existed on the panel.
func (f *fakePanel) addUser(email, username string) *model.PanelUser {
	f.mu.Lock()
	defer f.mu.Unlock()

	user := &model.PanelUser{ID: f.nextID, Email: email, Username: username}
	f.nextID++
	f.users[email] = user
	return user
}

func (f *fakePanel) addServer(userID int, name string) model.PanelServer {
	f.mu.Lock()
	defer f.mu.Unlock()

	srv := model.PanelServer{
		ID:         len(f.servers[userID]) + 1,
		UUID:       uuid.New(),
		Identifier: name,
		Name:       name,
		Limits:     model.ServerLimits{Memory: 2048, Disk: 10240, CPU: 80},
	}
	f.servers[userID] = append(f.servers[userID], srv)
	return srv
}

func (f *fakePanel) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.down {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	switch {
	case r.Method == http.MethodPost && r.URL.Path == "/api/application/users":
		f.handleCreateUser(w, r)
	case r.Method == http.MethodGet && r.URL.Path == "/api/application/users":
		f.handleFilterUsers(w, r)
	case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/api/application/users/"):
		f.handleGetUser(w, r)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (f *fakePanel) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	f.createRequests++

	var req struct {
		Email     string `json:"email"`
		Username  string `json:"username"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if _, exists := f.users[req.Email]; exists {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"errors": [{"code": "ValidationException", "status": "422", "detail": "The email has already been taken."}]}`))
		return
	}

	user := &model.PanelUser{
		ID:        f.nextID,
		Email:     req.Email,
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}
	f.nextID++
	f.users[req.Email] = user

	w.WriteHeader(http.StatusCreated)
	writeJSON(w, userEnvelope(user, nil))
}

func (f *fakePanel) handleFilterUsers(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("filter[email]")

	data := []any{}
	if user, ok := f.users[email]; ok {
		data = append(data, userEnvelope(user, nil))
	}
	writeJSON(w, map[string]any{"object": "list", "data": data})
}

func (f *fakePanel) handleGetUser(w http.ResponseWriter, r *http.Request) {
	idStr := strings.TrimPrefix(r.URL.Path, "/api/application/users/")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	for _, user := range f.users {
		if user.ID == id {
			var servers []model.PanelServer
			if r.URL.Query().Get("include") == "servers" {
				servers = f.servers[id]
			}
			writeJSON(w, userEnvelope(user, servers))
			return
		}
	}
	w.WriteHeader(http.StatusNotFound)
}

// userEnvelope wraps a user (and optionally its servers) in the panel's
// {"object", "attributes"} wire shape.
func userEnvelope(user *model.PanelUser, servers []model.PanelServer) map[string]any {
	raw, _ := json.Marshal(user)
	attrs := map[string]any{}
	_ = json.Unmarshal(raw, &attrs)

	if servers != nil {
		data := make([]any, 0, len(servers))
		for _, srv := range servers {
			data = append(data, map[string]any{"object": "server", "attributes": srv})
		}
		attrs["relationships"] = map[string]any{
			"servers": map[string]any{"object": "list", "data": data},
		}
	}

	return map[string]any{"object": "user", "attributes": attrs}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// webTestServer provides a test server with a fake panel behind it.
type webTestServer struct {
	t        *testing.T
	handler  http.Handler
	panel    *fakePanel
	panelURL string
	accounts *account.Service
	cookies  *cookieJar
}

func newWebTestServer(t *testing.T) *webTestServer {
	t.Helper()

	fake := newFakePanel()
	panelSrv := httptest.NewServer(fake)
	t.Cleanup(panelSrv.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	panelClient := panel.New(panelSrv.URL, "ptla_test", logger)
	sessions := session.NewMemoryStore()
	accounts := account.New(panelClient, sessions, account.Config{PanelURL: panelSrv.URL}, logger)
	codec := session.NewCodec("test-secret")

	router := web.NewRouter(web.RouterConfig{
		Logger:   logger,
		Accounts: accounts,
		Codec:    codec,
	})

	return &webTestServer{
		t:        t,
		handler:  router,
		panel:    fake,
		panelURL: panelSrv.URL,
		accounts: accounts,
		cookies:  newCookieJar(),
	}
}

// request makes an HTTP request and returns the response.
func (ts *webTestServer) request(method, path string, form url.Values) *httptest.ResponseRecorder {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	ts.cookies.addTo(req)

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)

	ts.cookies.extract(rr)

	return rr
}

func (ts *webTestServer) get(path string) *httptest.ResponseRecorder {
	return ts.request(http.MethodGet, path, nil)
}

func (ts *webTestServer) post(path string, form url.Values) *httptest.ResponseRecorder {
	return ts.request(http.MethodPost, path, form)
}

// followRedirect follows a Location header and returns the response.
func (ts *webTestServer) followRedirect(rr *httptest.ResponseRecorder) *httptest.ResponseRecorder {
	ts.t.Helper()
	location := rr.Header().Get("Location")
	require.NotEmpty(ts.t, location, "Expected Location header for redirect")
	return ts.get(location)
}

// login seeds a panel account and logs in through the web flow.
func (ts *webTestServer) login(email string) *model.PanelUser {
	ts.t.Helper()
	user := ts.panel.addUser(email, strings.Split(email, "@")[0])

	rr := ts.post("/login", url.Values{"email": {email}})
	require.Equal(ts.t, http.StatusSeeOther, rr.Code, "Expected redirect after login")
	require.Equal(ts.t, "/dashboard", rr.Header().Get("Location"))
	require.True(ts.t, ts.cookies.hasSession(), "Expected session cookie after login")

	return user
}

// parseHTML parses the response body as HTML.
func parseHTML(r io.Reader) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		panic(err)
	}
	return doc
}

// cookieJar maintains cookies across requests (like a browser would).
type cookieJar struct {
	cookies map[string]*http.Cookie
}

func newCookieJar() *cookieJar {
	return &cookieJar{
		cookies: make(map[string]*http.Cookie),
	}
}

func (j *cookieJar) addTo(req *http.Request) {
	for _, cookie := range j.cookies {
		req.AddCookie(cookie)
	}
}

func (j *cookieJar) extract(rr *httptest.ResponseRecorder) {
	for _, cookie := range rr.Result().Cookies() {
		if cookie.MaxAge < 0 {
			delete(j.cookies, cookie.Name)
		} else {
			j.cookies[cookie.Name] = cookie
		}
	}
}

func (j *cookieJar) hasSession() bool {
	_, ok := j.cookies["session"]
	return ok
}

// Assertion helpers

func assertContainsElement(t *testing.T, doc *goquery.Document, selector string) {
	t.Helper()
	if doc.Find(selector).Length() == 0 {
		t.Errorf("Expected to find element matching %q, but none found", selector)
	}
}

func assertContainsText(t *testing.T, doc *goquery.Document, selector, text string) {
	t.Helper()
	el := doc.Find(selector)
	if el.Length() == 0 {
		t.Errorf("Expected to find element matching %q, but none found", selector)
		return
	}
	if !strings.Contains(el.Text(), text) {
		t.Errorf("Expected element %q to contain %q, but got %q", selector, text, el.Text())
	}
}

func assertFlash(t *testing.T, doc *goquery.Document, kind, text string) {
	t.Helper()
	assertContainsText(t, doc, fmt.Sprintf(".flash-%s", kind), text)
}
