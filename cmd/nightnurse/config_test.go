package main

import (
	"encoding/base64"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"nightnurse/internal/server"
	"nightnurse/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopNotifier struct{}

func (noopNotifier) Notify(string, map[string]string) {}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func clearAuthEnv(t *testing.T) {
	t.Helper()
	t.Setenv("BASIC_AUTH_USER", "")
	t.Setenv("BASIC_AUTH_PASS", "")
	t.Setenv("COOKIE_HASH_KEY", "")
	t.Setenv("COOKIE_BLOCK_KEY", "")
}

func TestLoadConfigFallbacks(t *testing.T) {
	clearAuthEnv(t)
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/nightnurse")

	config, err := loadConfig(testLogger())
	require.NoError(t, err)

	assert.Equal(t, fallbackAdminUser, config.AdminUser)
	assert.Equal(t, fallbackAdminPass, config.AdminPass)
	assert.Equal(t, fallbackCookieHashKey, config.CookieHashKey)
	assert.Equal(t, fallbackCookieBlockKey, config.CookieBlockKey)
}

// A deploy with nothing but DATABASE_URL set must still have a working
// admin login on the built-in credentials.
func TestFallbackConfigAdminLogin(t *testing.T) {
	clearAuthEnv(t)
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/nightnurse")

	config, err := loadConfig(testLogger())
	require.NoError(t, err)

	svc, err := server.New(config, testLogger(),
		store.NewInMemoryParents(), store.NewInMemoryCaregivers(), noopNotifier{})
	require.NoError(t, err)

	form := url.Values{
		"username": {fallbackAdminUser},
		"password": {fallbackAdminPass},
	}
	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	svc.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin", rec.Header().Get("Location"))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	session := cookies[0]

	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(session)
	rec = httptest.NewRecorder()
	svc.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLoadConfigRejectsBadCookieKeys(t *testing.T) {
	t.Run("not base64", func(t *testing.T) {
		clearAuthEnv(t)
		t.Setenv("DATABASE_URL", "postgres://localhost:5432/nightnurse")
		t.Setenv("COOKIE_BLOCK_KEY", "not base64!!")

		_, err := loadConfig(testLogger())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "COOKIE_BLOCK_KEY")
	})

	t.Run("wrong block key length", func(t *testing.T) {
		clearAuthEnv(t)
		t.Setenv("DATABASE_URL", "postgres://localhost:5432/nightnurse")
		t.Setenv("COOKIE_BLOCK_KEY", base64.StdEncoding.EncodeToString([]byte("short")))

		_, err := loadConfig(testLogger())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "16, 24, or 32")
	})

	t.Run("missing database url", func(t *testing.T) {
		clearAuthEnv(t)
		t.Setenv("DATABASE_URL", "")

		_, err := loadConfig(testLogger())
		require.Error(t, err)
	})
}
