package session

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signed(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"exp": exp.Unix()})
	s, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func exerciseStore(t *testing.T, s Store) {
	ctx := context.Background()

	_, err := s.Token(ctx)
	assert.ErrorIs(t, err, ErrNoToken)

	require.NoError(t, s.SetToken(ctx, "abc"))
	token, err := s.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "abc", token)

	require.NoError(t, s.Clear(ctx))
	_, err = s.Token(ctx)
	assert.ErrorIs(t, err, ErrNoToken)

	require.NoError(t, s.Clear(ctx))
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	exerciseStore(t, NewFileStore(path))

	t.Run("survives a new store on the same file", func(t *testing.T) {
		ctx := context.Background()
		require.NoError(t, NewFileStore(path).SetToken(ctx, "persisted"))

		token, err := NewFileStore(path).Token(ctx)
		require.NoError(t, err)
		assert.Equal(t, "persisted", token)

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	})

	t.Run("corrupt file reads as empty", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "session.json")
		require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0o600))
		_, err := NewFileStore(bad).Token(context.Background())
		assert.ErrorIs(t, err, ErrNoToken)
	})
}

func TestCookieStore(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("round trip within a request", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		exerciseStore(t, NewCookieStore(c, CookieOptions{}))
	})

	t.Run("reads the request cookie and clears it", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		c.Request.AddCookie(&http.Cookie{Name: Key, Value: "from-browser"})

		s := NewCookieStore(c, CookieOptions{Secure: true})
		token, err := s.Token(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "from-browser", token)

		require.NoError(t, s.Clear(context.Background()))
		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, Key, cookies[0].Name)
		assert.Equal(t, "", cookies[0].Value)
		assert.True(t, cookies[0].MaxAge < 0)
		assert.True(t, cookies[0].HttpOnly)
		assert.True(t, cookies[0].Secure)
	})
}

func TestExpired(t *testing.T) {
	now := time.Now()
	assert.True(t, Expired(signed(t, now.Add(-time.Minute)), now))
	assert.False(t, Expired(signed(t, now.Add(time.Hour)), now))
	assert.False(t, Expired("opaque-laravel-token|123", now))
	assert.False(t, Expired("", now))
}

func TestActiveDropsExpiredTokens(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	require.NoError(t, s.SetToken(ctx, signed(t, time.Now().Add(-time.Minute))))
	_, err := Active(ctx, s)
	assert.ErrorIs(t, err, ErrNoToken)
	_, err = s.Token(ctx)
	assert.ErrorIs(t, err, ErrNoToken)

	live := signed(t, time.Now().Add(time.Hour))
	require.NoError(t, s.SetToken(ctx, live))
	token, err := Active(ctx, s)
	require.NoError(t, err)
	assert.Equal(t, live, token)
}

type stuckStore struct {
	*MemoryStore
}

func (stuckStore) Clear(context.Context) error {
	return errors.New("disk is read-only")
}

func TestActiveReportsFailedClear(t *testing.T) {
	ctx := context.Background()
	s := stuckStore{NewMemoryStore()}
	require.NoError(t, s.SetToken(ctx, signed(t, time.Now().Add(-time.Minute))))

	_, err := Active(ctx, s)
	assert.ErrorIs(t, err, ErrNoToken)
	assert.ErrorContains(t, err, "disk is read-only")
}
