package api

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogapi/internal/repository"
	"blogapi/internal/service"
	"blogapi/pkg/logger"
)

type envelope struct {
	Status    string          `json:"status"`
	Code      int             `json:"code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
	Errors    string          `json:"errors"`
	Timestamp time.Time       `json:"timestamp"`
}

func newTestServer(t *testing.T) *http.ServeMux {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	schema := []string{
		`CREATE TABLE roles (
			id BLOB PRIMARY KEY,
			role_name TEXT NOT NULL,
			description TEXT,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE users (
			id BLOB PRIMARY KEY,
			username TEXT NOT NULL UNIQUE,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			role_id BLOB NOT NULL,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE posts (
			id BLOB PRIMARY KEY,
			title TEXT NOT NULL,
			content TEXT NOT NULL,
			status TEXT NOT NULL,
			published_at TIMESTAMP,
			user_id BLOB NOT NULL,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)`,
	}
	for _, stmt := range schema {
		_, err := db.Exec(stmt)
		require.NoError(t, err)
	}

	log := logger.New(logger.ErrorLevel, io.Discard)

	roleService := service.NewRoleService(repository.NewRoleRepository(db, log), log)
	userService := service.NewUserService(repository.NewUserRepository(db, log), log)
	postService := service.NewPostService(repository.NewPostRepository(db, log), log)

	mux := http.NewServeMux()
	NewRoleHandler(roleService, log).RegisterRoutes(mux)
	NewUserHandler(userService, postService, log).RegisterRoutes(mux)
	NewPostHandler(postService, log).RegisterRoutes(mux)
	NewHealthHandler().RegisterRoutes(mux)

	return mux
}

func doRequest(t *testing.T, mux *http.ServeMux, method, path string, body interface{}) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return rec.Code, env
}

func dataMap(t *testing.T, env envelope) map[string]interface{} {
	t.Helper()

	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &m))
	return m
}

func TestHealthCheck(t *testing.T) {
	mux := newTestServer(t)

	code, env := doRequest(t, mux, http.MethodGet, "/api/health", nil)

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "200 OK", env.Status)
	assert.Equal(t, 200, env.Code)
	assert.Equal(t, "Uygulama ayakta!", env.Message)
	assert.False(t, env.Timestamp.IsZero())
}

func TestCreateRoleThenFetchByID(t *testing.T) {
	mux := newTestServer(t)

	code, env := doRequest(t, mux, http.MethodPost, "/api/role", map[string]interface{}{
		"role_name":   "admin",
		"description": "full access",
	})
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "201 Created", env.Status)

	created := dataMap(t, env)
	assert.Equal(t, "admin", created["role_name"])
	assert.Equal(t, "full access", created["description"])

	id, ok := created["id"].(string)
	require.True(t, ok)

	code, env = doRequest(t, mux, http.MethodGet, "/api/role/"+id, nil)
	require.Equal(t, http.StatusOK, code)

	fetched := dataMap(t, env)
	assert.Equal(t, "admin", fetched["role_name"])
	assert.Equal(t, "full access", fetched["description"])
}

func TestGetRolesEmptyList(t *testing.T) {
	mux := newTestServer(t)

	code, env := doRequest(t, mux, http.MethodGet, "/api/role", nil)
	require.Equal(t, http.StatusOK, code)

	var roles []json.RawMessage
	require.NoError(t, json.Unmarshal(env.Data, &roles))
	assert.Empty(t, roles)
}

func TestUpdateRolePartialViaHTTP(t *testing.T) {
	mux := newTestServer(t)

	_, env := doRequest(t, mux, http.MethodPost, "/api/role", map[string]interface{}{
		"role_name":   "editor",
		"description": "can edit",
	})
	id := dataMap(t, env)["id"].(string)

	code, env := doRequest(t, mux, http.MethodPut, "/api/role/"+id, map[string]interface{}{
		"description": "can edit posts",
	})
	require.Equal(t, http.StatusOK, code)

	updated := dataMap(t, env)
	assert.Equal(t, "editor", updated["role_name"])
	assert.Equal(t, "can edit posts", updated["description"])
}

func TestGetUserWithMalformedIDIsClientError(t *testing.T) {
	mux := newTestServer(t)

	code, env := doRequest(t, mux, http.MethodGet, "/api/user/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "400 Bad Request", env.Status)
	assert.Equal(t, "Geçersiz kullanıcı kimliği", env.Message)
	assert.NotEmpty(t, env.Errors)
}

func TestDeleteMissingUserReportsServerError(t *testing.T) {
	mux := newTestServer(t)

	// Bulunamadı şu an 404 değil 500 olarak raporlanıyor; bu eşleme bilinçli.
	code, env := doRequest(t, mux, http.MethodDelete, "/api/user/"+uuid.NewString(), nil)

	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "Kullanıcı silinemedi", env.Message)
	assert.Contains(t, env.Errors, "kullanıcı bulunamadı")
}

func TestGetMissingRoleReportsServerError(t *testing.T) {
	mux := newTestServer(t)

	code, env := doRequest(t, mux, http.MethodGet, "/api/role/"+uuid.NewString(), nil)

	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Contains(t, env.Errors, "rol bulunamadı")
}

func TestCreateUserHashesPassword(t *testing.T) {
	mux := newTestServer(t)

	code, env := doRequest(t, mux, http.MethodPost, "/api/user", map[string]interface{}{
		"username": "ayse",
		"email":    "ayse@example.com",
		"password": "gizli-parola",
		"role_id":  uuid.NewString(),
	})
	require.Equal(t, http.StatusCreated, code)

	created := dataMap(t, env)
	assert.Equal(t, "ayse", created["username"])
	// Parola özeti zarfta asla görünmez.
	assert.NotContains(t, string(env.Data), "gizli-parola")
	assert.NotContains(t, string(env.Data), "password_hash")
}

func TestCreateDraftPostRoundTrip(t *testing.T) {
	mux := newTestServer(t)

	code, env := doRequest(t, mux, http.MethodPost, "/api/post", map[string]interface{}{
		"title":        "İlk yazı",
		"content":      "merhaba",
		"status":       "draft",
		"published_at": nil,
		"user_id":      uuid.NewString(),
	})
	require.Equal(t, http.StatusCreated, code)

	created := dataMap(t, env)
	id := created["id"].(string)

	code, env = doRequest(t, mux, http.MethodGet, "/api/post/"+id, nil)
	require.Equal(t, http.StatusOK, code)

	fetched := dataMap(t, env)
	assert.Equal(t, "draft", fetched["status"])
	assert.Nil(t, fetched["published_at"])
}

func TestCreatePostRejectsUnknownStatusToken(t *testing.T) {
	mux := newTestServer(t)

	code, env := doRequest(t, mux, http.MethodPost, "/api/post", map[string]interface{}{
		"title":   "İlk yazı",
		"content": "merhaba",
		"status":  "removed",
		"user_id": uuid.NewString(),
	})

	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, env.Errors, "geçersiz gönderi durumu")
}

func TestUpdatePostWithoutStatusIsServerError(t *testing.T) {
	mux := newTestServer(t)

	userID := uuid.NewString()
	_, env := doRequest(t, mux, http.MethodPost, "/api/post", map[string]interface{}{
		"title":   "İlk yazı",
		"content": "merhaba",
		"status":  "draft",
		"user_id": userID,
	})
	id := dataMap(t, env)["id"].(string)

	code, env := doRequest(t, mux, http.MethodPut, "/api/post/"+id, map[string]interface{}{
		"title":   "Yeni başlık",
		"user_id": userID,
	})

	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Contains(t, env.Errors, "gönderi durumu zorunlu")
}

func TestGetPostsByUser(t *testing.T) {
	mux := newTestServer(t)

	userID := uuid.NewString()
	for i := 0; i < 2; i++ {
		code, _ := doRequest(t, mux, http.MethodPost, "/api/post", map[string]interface{}{
			"title":   fmt.Sprintf("yazı %d", i),
			"content": "içerik",
			"status":  "published",
			"user_id": userID,
		})
		require.Equal(t, http.StatusCreated, code)
	}

	code, env := doRequest(t, mux, http.MethodGet, "/api/user/"+userID+"/posts", nil)
	require.Equal(t, http.StatusOK, code)

	var posts []map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &posts))
	assert.Len(t, posts, 2)
}

func TestGetPostsByUserEmptyList(t *testing.T) {
	mux := newTestServer(t)

	code, env := doRequest(t, mux, http.MethodGet, "/api/user/"+uuid.NewString()+"/posts", nil)
	require.Equal(t, http.StatusOK, code)

	var posts []json.RawMessage
	require.NoError(t, json.Unmarshal(env.Data, &posts))
	assert.Empty(t, posts)
}

func TestDeletePostViaHTTP(t *testing.T) {
	mux := newTestServer(t)

	_, env := doRequest(t, mux, http.MethodPost, "/api/post", map[string]interface{}{
		"title":   "silinecek",
		"content": "içerik",
		"status":  "draft",
		"user_id": uuid.NewString(),
	})
	id := dataMap(t, env)["id"].(string)

	code, env := doRequest(t, mux, http.MethodDelete, "/api/post/"+id, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Gönderi silindi", env.Message)

	code, _ = doRequest(t, mux, http.MethodGet, "/api/post/"+id, nil)
	assert.Equal(t, http.StatusInternalServerError, code)
}
