package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"taskdesk/internal/api"
	"taskdesk/internal/config"
	"taskdesk/internal/database"
	"taskdesk/internal/model"
	"taskdesk/internal/service"
	"taskdesk/internal/store"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type stubValidator struct{ err error }

func (s *stubValidator) Validate(i interface{}) error { return s.err }

type realValidator struct{ v *validator.Validate }

func (r *realValidator) Validate(i interface{}) error { return r.v.Struct(i) }

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:      "testsecret",
		JWTAlgorithm:   "HS256",
		AccessTokenTTL: 15 * time.Minute,
	}
}

func newJSONCtx(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func newFormCtx(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func restore() {
	hashPassword = service.HashPassword
	authenticateUser = service.AuthenticateUser
	issueAccessToken = service.IssueAccessToken
	createUser = store.CreateUser
	getUserByUsername = store.GetUserByUsername
}

const registerBody = `{"username":"alice","first_name":"Alice","last_name":"Smith","password":"secret1","email":"alice@example.com","role":"member"}`

func TestRegisterHandler(t *testing.T) {
	e := echo.New()

	t.Run("bind error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		ctx, rec := newJSONCtx(e, "{")
		require.NoError(t, RegisterHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "invalid request payload")
	})

	t.Run("validate error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{err: errors.New("v")}
		ctx, rec := newJSONCtx(e, registerBody)
		require.NoError(t, RegisterHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "v")
	})

	t.Run("bad email", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		ctx, rec := newJSONCtx(e, `{"username":"alice","first_name":"Alice","last_name":"Smith","password":"secret1","email":"nonsense","role":"member"}`)
		require.NoError(t, RegisterHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "invalid email format")
	})

	t.Run("hash error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		hashPassword = func(string) (string, error) { return "", errors.New("hash") }
		ctx, rec := newJSONCtx(e, registerBody)
		require.NoError(t, RegisterHandler(nil)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("duplicate username or email", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		hashPassword = func(string) (string, error) { return "h", nil }
		createUser = func(_ context.Context, _ database.DB, _ *model.User) (*model.User, error) {
			return nil, fmt.Errorf("CreateUser: %w", &pgconn.PgError{Code: "23505"})
		}
		ctx, rec := newJSONCtx(e, registerBody)
		require.NoError(t, RegisterHandler(nil)(ctx))
		require.Equal(t, http.StatusConflict, rec.Code)
		require.Contains(t, rec.Body.String(), "already exists")
	})

	t.Run("create error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		hashPassword = func(string) (string, error) { return "h", nil }
		createUser = func(_ context.Context, _ database.DB, _ *model.User) (*model.User, error) {
			return nil, errors.New("c")
		}
		ctx, rec := newJSONCtx(e, registerBody)
		require.NoError(t, RegisterHandler(nil)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("success", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		hashPassword = func(p string) (string, error) { require.Equal(t, "secret1", p); return "h", nil }
		var got model.User
		createUser = func(_ context.Context, _ database.DB, u *model.User) (*model.User, error) {
			got = *u
			u.ID = 1
			return u, nil
		}
		ctx, rec := newJSONCtx(e, `{"username":"alice","first_name":"Alice","last_name":"Smith","password":"secret1","email":"Alice@EXAMPLE.com","role":"member"}`)
		require.NoError(t, RegisterHandler(nil)(ctx))
		require.Equal(t, http.StatusCreated, rec.Code)
		require.Equal(t, "\"alice\"\n", rec.Body.String())
		require.Equal(t, "alice@example.com", got.Email)
		require.Equal(t, "h", got.HashedPassword)
		require.True(t, got.IsActive)
	})

	t.Run("plaintext never stored", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		var stored string
		createUser = func(_ context.Context, _ database.DB, u *model.User) (*model.User, error) {
			stored = u.HashedPassword
			return u, nil
		}
		ctx, rec := newJSONCtx(e, registerBody)
		require.NoError(t, RegisterHandler(nil)(ctx))
		require.Equal(t, http.StatusCreated, rec.Code)
		require.NotEqual(t, "secret1", stored)
		require.NoError(t, service.ComparePassword(stored, "secret1"))
		require.Error(t, service.ComparePassword(stored, "secret2"))
	})
}

func TestTokenHandler(t *testing.T) {
	e := echo.New()
	cfg := testConfig()

	t.Run("bind error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		ctx, rec := newFormCtx(e, "%")
		require.NoError(t, TokenHandler(nil, cfg)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("validate error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{err: errors.New("v")}
		ctx, rec := newFormCtx(e, "username=alice&password=secret1")
		require.NoError(t, TokenHandler(nil, cfg)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown user", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		getUserByUsername = func(_ context.Context, _ database.DB, _ string) (*model.User, error) {
			return nil, pgx.ErrNoRows
		}
		ctx, rec := newFormCtx(e, "username=ghost&password=secret1")
		require.NoError(t, TokenHandler(nil, cfg)(ctx))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Body.String(), "incorrect username or password")
	})

	t.Run("wrong password", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		getUserByUsername = func(_ context.Context, _ database.DB, _ string) (*model.User, error) {
			return &model.User{ID: 1, Username: "alice"}, nil
		}
		authenticateUser = func(model.User, string) error { return errors.New("incorrect username or password") }
		ctx, rec := newFormCtx(e, "username=alice&password=wrong")
		require.NoError(t, TokenHandler(nil, cfg)(ctx))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Body.String(), "incorrect username or password")
	})

	t.Run("issue error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		getUserByUsername = func(_ context.Context, _ database.DB, _ string) (*model.User, error) {
			return &model.User{ID: 1, Username: "alice"}, nil
		}
		authenticateUser = func(model.User, string) error { return nil }
		issueAccessToken = func(model.User, string, string, time.Duration) (string, error) {
			return "", errors.New("sign")
		}
		ctx, rec := newFormCtx(e, "username=alice&password=secret1")
		require.NoError(t, TokenHandler(nil, cfg)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("success", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		getUserByUsername = func(_ context.Context, _ database.DB, _ string) (*model.User, error) {
			return &model.User{ID: 1, Username: "alice", Role: "member"}, nil
		}
		authenticateUser = func(model.User, string) error { return nil }
		ctx, rec := newFormCtx(e, "username=alice&password=secret1")
		require.NoError(t, TokenHandler(nil, cfg)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)

		var resp api.TokenResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, "bearer", resp.TokenType)

		claims, err := service.VerifyAccessToken(resp.AccessToken, cfg.JWTSecret)
		require.NoError(t, err)
		require.Equal(t, 1, claims.UserID)
		require.Equal(t, "alice", claims.Username())
		require.Equal(t, "member", claims.Role)
	})
}

// Register and login end to end through both handlers with real hashing,
// faking only the user table.
func TestRegisterThenLogin(t *testing.T) {
	t.Cleanup(restore)
	e := echo.New()
	e.Validator = &realValidator{v: validator.New()}
	cfg := testConfig()

	users := map[string]*model.User{}
	createUser = func(_ context.Context, _ database.DB, u *model.User) (*model.User, error) {
		u.ID = len(users) + 1
		users[u.Username] = u
		return u, nil
	}
	getUserByUsername = func(_ context.Context, _ database.DB, name string) (*model.User, error) {
		u, ok := users[name]
		if !ok {
			return nil, pgx.ErrNoRows
		}
		return u, nil
	}

	ctx, rec := newJSONCtx(e, registerBody)
	require.NoError(t, RegisterHandler(nil)(ctx))
	require.Equal(t, http.StatusCreated, rec.Code)

	ctx, rec = newFormCtx(e, "username=alice&password=secret1")
	require.NoError(t, TokenHandler(nil, cfg)(ctx))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.TokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	claims, err := service.VerifyAccessToken(resp.AccessToken, cfg.JWTSecret)
	require.NoError(t, err)
	require.Equal(t, users["alice"].ID, claims.UserID)

	ctx, rec = newFormCtx(e, "username=alice&password=wrong")
	require.NoError(t, TokenHandler(nil, cfg)(ctx))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
