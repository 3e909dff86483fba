package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func loginCookie(t *testing.T, h http.Handler, username, password string) *http.Cookie {
	t.Helper()
	w := doRequest(h, formRequest(http.MethodPost, "/admin/login", url.Values{
		"username": {username},
		"password": {password},
	}))
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/dashboard", w.Header().Get("Location"))
	for _, c := range w.Result().Cookies() {
		if c.Name == adminCookie {
			return c
		}
	}
	t.Fatal("no session cookie set")
	return nil
}

func TestAdminLogin(t *testing.T) {
	s, _ := newTestServer(t, nil)
	r := s.routes()

	cookie := loginCookie(t, r, "admin", "s3cret")
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, "/admin", cookie.Path)

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req.AddCookie(cookie)
	w := doRequest(r, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Unique visitors")
}

func TestAdminLogin_BadCredentials(t *testing.T) {
	s, _ := newTestServer(t, nil)
	w := doRequest(s.routes(), formRequest(http.MethodPost, "/admin/login", url.Values{
		"username": {"admin"},
		"password": {"wrong"},
	}))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")
	assert.Empty(t, w.Result().Cookies())
}

func TestAdminRoutes_RequireSession(t *testing.T) {
	s, _ := newTestServer(t, nil)
	r := s.routes()

	for _, path := range []string{"/admin/dashboard", "/admin/contacts", "/admin/visitors", "/admin/api/stats"} {
		w := doRequest(r, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusFound, w.Code, path)
		assert.Equal(t, "/admin/login", w.Header().Get("Location"), path)
	}

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: adminCookie, Value: "not-a-jwt"})
	w := doRequest(r, req)
	assert.Equal(t, http.StatusFound, w.Code)
}

func TestAdminContacts_ListsSubmissions(t *testing.T) {
	s, _ := newTestServer(t, nil)
	r := s.routes()

	w := doRequest(r, formRequest(http.MethodPost, "/contact", validContactValues()))
	require.Equal(t, http.StatusOK, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/admin/contacts", nil)
	req.AddCookie(loginCookie(t, r, "admin", "s3cret"))
	w = doRequest(r, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Project Inquiry")
	assert.Contains(t, w.Body.String(), "jane@example.com")
}

func TestAdminAuth_BcryptHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	a := newAdminAuth(AdminConfig{Username: "root", PasswordHash: string(hash), SessionSecret: "k"})
	assert.True(t, a.checkCredentials("root", "hunter2"))
	assert.False(t, a.checkCredentials("root", "hunter3"))
	assert.False(t, a.checkCredentials("admin", "hunter2"))
}

func TestAdminAuth_Defaults(t *testing.T) {
	a := newAdminAuth(AdminConfig{})
	assert.True(t, a.checkCredentials("admin", "admin123"))
	assert.NotEmpty(t, a.secret)
}

func TestAdminAuth_Sessions(t *testing.T) {
	a := newAdminAuth(AdminConfig{Username: "admin", Password: "pw", SessionSecret: "one"})
	now := time.Now()

	token, err := a.issueSession(now)
	require.NoError(t, err)
	assert.NoError(t, a.verifySession(token))

	other := newAdminAuth(AdminConfig{Username: "admin", Password: "pw", SessionSecret: "two"})
	assert.Error(t, other.verifySession(token), "signed with a different secret")

	renamed := newAdminAuth(AdminConfig{Username: "someone", Password: "pw", SessionSecret: "one"})
	assert.Error(t, renamed.verifySession(token), "subject mismatch")

	expired, err := a.issueSession(now.Add(-2 * adminSessionTTL))
	require.NoError(t, err)
	assert.Error(t, a.verifySession(expired))
}

func TestAdminAuth_HashIP(t *testing.T) {
	a := newAdminAuth(AdminConfig{})
	h := a.hashIP("203.0.113.7")
	assert.Len(t, h, 16)
	assert.Equal(t, h, a.hashIP("203.0.113.7"))
	assert.NotEqual(t, h, a.hashIP("203.0.113.8"))
	assert.NotContains(t, h, "203")
}

func TestVisitorTracking(t *testing.T) {
	s, _ := newTestServer(t, nil)
	r := s.routes()
	ctx := context.Background()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("DNT", "1")
	require.Equal(t, http.StatusOK, doRequest(r, req).Code)
	require.Equal(t, http.StatusOK, doRequest(r, httptest.NewRequest(http.MethodGet, "/health", nil)).Code)

	visitors, err := s.store.RecentVisitors(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, visitors)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("User-Agent", "tests")
	require.Equal(t, http.StatusOK, doRequest(r, req).Code)

	s.wait()
	visitors, err = s.store.RecentVisitors(ctx, 10)
	require.NoError(t, err)
	require.Len(t, visitors, 1)
	assert.Equal(t, "tests", visitors[0].UserAgent)
	assert.Equal(t, "/", visitors[0].Path)
}

func TestVisitorCutoff_TwelveCalendarMonths(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC), visitorCutoff(now))
}

func TestCleanupOldVisitorData(t *testing.T) {
	s, _ := newTestServer(t, nil) // clock fixed at 2025-06-01 12:00 UTC
	ctx := context.Background()

	old := VisitorMetric{ID: "old", HashedIP: "h", Path: "/", Timestamp: time.Date(2024, 5, 31, 12, 0, 0, 0, time.UTC)}
	// inside twelve months but more than 360 days back
	kept := VisitorMetric{ID: "kept", HashedIP: "h", Path: "/", Timestamp: time.Date(2024, 6, 3, 12, 0, 0, 0, time.UTC)}
	require.NoError(t, s.store.RecordVisit(ctx, old))
	require.NoError(t, s.store.RecordVisit(ctx, kept))

	s.cleanupOldVisitorData()

	visitors, err := s.store.RecentVisitors(ctx, 10)
	require.NoError(t, err)
	require.Len(t, visitors, 1)
	assert.Equal(t, "kept", visitors[0].ID)
}

func TestPrivacyCleanupRoute_FinishesBeforeWait(t *testing.T) {
	s, _ := newTestServer(t, nil)
	r := s.routes()
	ctx := context.Background()
	require.NoError(t, s.store.RecordVisit(ctx, VisitorMetric{
		ID: "old", HashedIP: "h", Path: "/", Timestamp: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
	}))

	req := httptest.NewRequest(http.MethodPost, "/admin/privacy/delete-visitor-data", nil)
	req.AddCookie(loginCookie(t, r, "admin", "s3cret"))
	w := doRequest(r, req)
	require.Equal(t, http.StatusOK, w.Code)

	s.wait()
	visitors, err := s.store.RecentVisitors(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, visitors)
}
