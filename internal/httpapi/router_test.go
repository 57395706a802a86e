package httpapi_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dropDatabas3/userhabitat/internal/domain"
	"github.com/dropDatabas3/userhabitat/internal/httpapi"
	"github.com/dropDatabas3/userhabitat/internal/repository"
	"github.com/dropDatabas3/userhabitat/internal/storage/jsonfile"
)

const testToken = "mockToken"

func newTestServer(t *testing.T) (*httptest.Server, string) {
	t.Helper()
	dir := t.TempDir()

	usersStore := jsonfile.New[domain.User](filepath.Join(dir, "dbUsers.json"), "users")
	housesStore := jsonfile.New[domain.House](filepath.Join(dir, "dbHouses.json"), "houses")
	users := repository.NewUsers(usersStore, repository.NewGuard(housesStore))
	houses := repository.NewHouses(housesStore, users)

	handler, err := httpapi.NewRouter(httpapi.Deps{
		Users:     users,
		Houses:    houses,
		AuthToken: testToken,
	})
	require.NoError(t, err)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv, dir
}

type errBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func doJSON(t *testing.T, method, url string, body any) (*http.Response, []byte) {
	t.Helper()
	var rd *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	} else {
		rd = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, url, rd)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+testToken)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	var buf bytes.Buffer
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	return resp, buf.Bytes()
}

func TestAuth_MissingOrWrongTokenIs401(t *testing.T) {
	srv, _ := newTestServer(t)

	// no header at all
	resp, err := http.Get(srv.URL + "/users")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var body errBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, 401, body.Code)
	require.Equal(t, "Invalid token", body.Message)

	// wrong token
	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/users", nil)
	req.Header.Set("Authorization", "Bearer nope")
	resp2, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp2.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp2.StatusCode)
}

func TestHealthz_NoAuthRequired(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRoot_Welcome(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "Welcome to my UserHabitat API", string(body))
}

func TestUsers_CreateListGet(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/users", map[string]any{"name": "Ana"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created map[string]any
	require.NoError(t, json.Unmarshal(body, &created))
	require.Equal(t, "0001", created["id"])
	require.Equal(t, "Ana", created["name"])

	resp, body = doJSON(t, http.MethodPost, srv.URL+"/users", map[string]any{"name": "Bruno"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body, &created))
	require.Equal(t, "0002", created["id"])

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/users", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(body, &list))
	require.Len(t, list, 2)

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/users/0002", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body, &created))
	require.Equal(t, "Bruno", created["name"])
}

func TestUsers_CreateWithoutNameIs400(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/users", map[string]any{"nickname": "x"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var e errBody
	require.NoError(t, json.Unmarshal(body, &e))
	require.Equal(t, 400, e.Code)
	require.Equal(t, "Invalid request. Missing or incorrect NAME parameter", e.Message)
}

func TestHouses_RoundTrip(t *testing.T) {
	srv, _ := newTestServer(t)

	_, _ = doJSON(t, http.MethodPost, srv.URL+"/users", map[string]any{"name": "Ana"})

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/users/0001/houses", map[string]any{
		"address": "1 Main St", "city": "Springfield", "country": "USA",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var house map[string]any
	require.NoError(t, json.Unmarshal(body, &house))
	require.Equal(t, map[string]any{
		"id":      "001",
		"ownerId": "0001",
		"address": "1 Main St",
		"city":    "Springfield",
		"country": "USA",
	}, house)

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/users/0001/houses", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(body, &list))
	require.Len(t, list, 1)
	require.Equal(t, "001", list[0]["id"])
}

func TestHouses_CreateForMissingUser(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/users/0404/houses", map[string]any{
		"address": "1 Main St", "city": "Springfield", "country": "USA",
	})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var e errBody
	require.NoError(t, json.Unmarshal(body, &e))
	require.Equal(t, "User ID: 0404 not found", e.Message)
}

func TestHouses_ListWithFilters(t *testing.T) {
	srv, _ := newTestServer(t)

	_, _ = doJSON(t, http.MethodPost, srv.URL+"/users", map[string]any{"name": "Ana"})
	for _, b := range []map[string]any{
		{"address": "1 Rue A", "city": "Paris", "country": "France"},
		{"address": "2 Rue B", "city": "Paris", "country": "Belgium"},
		{"address": "3 Oak Ln", "city": "Springfield", "country": "France"},
	} {
		resp, _ := doJSON(t, http.MethodPost, srv.URL+"/users/0001/houses", b)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/users/0001/houses?city=Paris&country=France", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(body, &list))
	require.Len(t, list, 1)
	require.Equal(t, "1 Rue A", list[0]["address"])
}

func TestHouses_PutPinsIDAndOwner(t *testing.T) {
	srv, _ := newTestServer(t)

	_, _ = doJSON(t, http.MethodPost, srv.URL+"/users", map[string]any{"name": "Ana"})
	_, _ = doJSON(t, http.MethodPost, srv.URL+"/users/0001/houses", map[string]any{
		"address": "1 Main St", "city": "Springfield", "country": "USA", "garden": true,
	})

	resp, body := doJSON(t, http.MethodPut, srv.URL+"/users/0001/houses/001", map[string]any{
		"address": "2 Main St", "city": "Shelbyville", "country": "USA",
		"id": "999", "ownerId": "9999",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var house map[string]any
	require.NoError(t, json.Unmarshal(body, &house))
	require.Equal(t, "001", house["id"])
	require.Equal(t, "0001", house["ownerId"])
	require.NotContains(t, house, "garden") // replace drops fields not resubmitted
}

func TestHouses_PatchEmptyBodyVsSingleField(t *testing.T) {
	srv, _ := newTestServer(t)

	_, _ = doJSON(t, http.MethodPost, srv.URL+"/users", map[string]any{"name": "Ana"})
	_, _ = doJSON(t, http.MethodPost, srv.URL+"/users/0001/houses", map[string]any{
		"address": "1 Main St", "city": "Springfield", "country": "USA",
	})

	resp, body := doJSON(t, http.MethodPatch, srv.URL+"/users/0001/houses/001", map[string]any{})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var e errBody
	require.NoError(t, json.Unmarshal(body, &e))
	require.Equal(t, "Invalid request. Missing or incorrect parameter", e.Message)

	resp, body = doJSON(t, http.MethodPatch, srv.URL+"/users/0001/houses/001", map[string]any{"city": "X"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var house map[string]any
	require.NoError(t, json.Unmarshal(body, &house))
	require.Equal(t, "X", house["city"])
	require.Equal(t, "1 Main St", house["address"])
	require.Equal(t, "USA", house["country"])
}

func TestUsers_DeleteGuardedThenAllowed(t *testing.T) {
	srv, _ := newTestServer(t)

	_, _ = doJSON(t, http.MethodPost, srv.URL+"/users", map[string]any{"name": "Ana"})
	_, _ = doJSON(t, http.MethodPost, srv.URL+"/users/0001/houses", map[string]any{
		"address": "1 Main St", "city": "Springfield", "country": "USA",
	})

	resp, body := doJSON(t, http.MethodDelete, srv.URL+"/users/0001", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var e errBody
	require.NoError(t, json.Unmarshal(body, &e))
	require.Equal(t, "The user 0001 cannot be deleted because it has associated houses", e.Message)

	// user still listed
	_, body = doJSON(t, http.MethodGet, srv.URL+"/users", nil)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(body, &list))
	require.Len(t, list, 1)

	// remove the house, then the delete goes through with no body
	resp, _ = doJSON(t, http.MethodDelete, srv.URL+"/users/0001/houses/001", nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, body = doJSON(t, http.MethodDelete, srv.URL+"/users/0001", nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	require.Empty(t, body)

	// second delete is a 404
	resp, _ = doJSON(t, http.MethodDelete, srv.URL+"/users/0001", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestStorage_MalformedDocumentIs500(t *testing.T) {
	srv, dir := newTestServer(t)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "dbUsers.json"), []byte("{broken"), 0o644))

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/users", nil)
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var e errBody
	require.NoError(t, json.Unmarshal(body, &e))
	require.Equal(t, 500, e.Code)
}

func TestPersistence_SurvivesRestart(t *testing.T) {
	srv, dir := newTestServer(t)

	_, _ = doJSON(t, http.MethodPost, srv.URL+"/users", map[string]any{"name": "Ana"})
	srv.Close()

	// a fresh stack over the same data dir sees the records
	usersStore := jsonfile.New[domain.User](filepath.Join(dir, "dbUsers.json"), "users")
	housesStore := jsonfile.New[domain.House](filepath.Join(dir, "dbHouses.json"), "houses")
	users := repository.NewUsers(usersStore, repository.NewGuard(housesStore))

	list, err := users.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "Ana", list[0].Name)
}
