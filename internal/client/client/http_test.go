package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dmitrijs2005/findash/internal/client/models"
	"github.com/dmitrijs2005/findash/internal/client/tokenstore"
	"github.com/dmitrijs2005/findash/internal/logging"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorded struct {
	method string
	path   string
	auth   string
	ctype  string
	body   string
}

func newTestClient(t *testing.T, token string, h func(w http.ResponseWriter, r *http.Request)) (*HTTPClient, *[]recorded, *tokenstore.MemoryStore) {
	t.Helper()
	var calls []recorded
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		calls = append(calls, recorded{
			method: r.Method,
			path:   r.URL.Path,
			auth:   r.Header.Get("Authorization"),
			ctype:  r.Header.Get("Content-Type"),
			body:   string(b),
		})
		h(w, r)
	}))
	t.Cleanup(srv.Close)

	store := tokenstore.NewMemoryStore(token)
	return NewHTTPClient(srv.URL+"/api/", store, srv.Client(), logging.Nop()), &calls, store
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestDo_AttachesBearerWhenCredentialPresent(t *testing.T) {
	c, calls, _ := newTestClient(t, "abc", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []any{})
	})

	_, err := c.Do(context.Background(), http.MethodGet, "/accounts/", nil)
	require.NoError(t, err)

	require.Len(t, *calls, 1)
	got := (*calls)[0]
	assert.Equal(t, "/api/accounts/", got.path)
	assert.Equal(t, "Bearer abc", got.auth)
	assert.Equal(t, "application/json", got.ctype)
}

func TestDo_NoCredentialNoAuthorizationHeader(t *testing.T) {
	c, calls, _ := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{})
	})

	_, err := c.Do(context.Background(), http.MethodGet, "/auth/me", nil)
	require.NoError(t, err)
	assert.Empty(t, (*calls)[0].auth)
}

func TestDo_ReadsCredentialAtSendTime(t *testing.T) {
	c, calls, store := newTestClient(t, "first", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{})
	})
	ctx := context.Background()

	_, err := c.Do(ctx, http.MethodGet, "/auth/me", nil)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "second"))
	_, err = c.Do(ctx, http.MethodGet, "/auth/me", nil)
	require.NoError(t, err)

	assert.Equal(t, "Bearer first", (*calls)[0].auth)
	assert.Equal(t, "Bearer second", (*calls)[1].auth)
}

func TestDo_EmptyResults(t *testing.T) {
	tests := []struct {
		name string
		h    func(w http.ResponseWriter, r *http.Request)
	}{
		{name: "204", h: func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) }},
		{name: "content-length 0", h: func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Length", "0")
			w.WriteHeader(http.StatusOK)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _, _ := newTestClient(t, "", tt.h)
			raw, err := c.Do(context.Background(), http.MethodDelete, "/accounts/1", nil)
			require.NoError(t, err)
			assert.Nil(t, raw)
		})
	}
}

func TestDo_ErrorMessages(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
		wantIs  error
	}{
		{name: "backend msg", status: http.StatusUnauthorized, body: `{"msg":"Credenciales incorrectas"}`, wantMsg: "Credenciales incorrectas", wantIs: ErrUnauthorized},
		{name: "unparseable body", status: http.StatusInternalServerError, body: `<html>oops</html>`, wantMsg: MsgServerError},
		{name: "no msg field", status: http.StatusBadRequest, body: `{"error":"x"}`, wantMsg: MsgNetworkError},
		{name: "empty msg", status: http.StatusConflict, body: `{"msg":""}`, wantMsg: MsgNetworkError},
		{name: "not found", status: http.StatusNotFound, body: `{"msg":"Cuenta no encontrada"}`, wantMsg: "Cuenta no encontrada", wantIs: ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _, _ := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			_, err := c.Do(context.Background(), http.MethodGet, "/accounts/", nil)
			require.Error(t, err)
			assert.Equal(t, tt.wantMsg, err.Error())
			assert.Equal(t, tt.wantMsg, Message(err))

			var re *RequestError
			require.True(t, errors.As(err, &re))
			assert.Equal(t, tt.status, re.Status)
			if tt.wantIs != nil {
				assert.ErrorIs(t, err, tt.wantIs)
			}
		})
	}
}

func TestDo_TransportFailureIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewHTTPClient(url, tokenstore.NewMemoryStore(""), nil, logging.Nop())
	_, err := c.Do(context.Background(), http.MethodGet, "/auth/me", nil)
	require.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, MsgNetworkError, Message(err))
}

func TestLogin_SendsCredentialsAndDecodes(t *testing.T) {
	c, calls, _ := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"access_token": "tok",
			"user":         map[string]any{"id": 1, "username": "ana", "email": "ana@x.io"},
		})
	})

	res, err := c.Login(context.Background(), "ana@x.io", "pw")
	require.NoError(t, err)
	assert.Equal(t, "tok", res.AccessToken)
	assert.Equal(t, models.User{ID: 1, Username: "ana", Email: "ana@x.io"}, res.User)

	got := (*calls)[0]
	assert.Equal(t, http.MethodPost, got.method)
	assert.Equal(t, "/api/auth/login", got.path)
	assert.JSONEq(t, `{"email":"ana@x.io","password":"pw"}`, got.body)
}

func TestLogin_MissingTokenIsError(t *testing.T) {
	c, _, _ := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"user": map[string]any{"id": 1}})
	})

	_, err := c.Login(context.Background(), "a", "b")
	require.Error(t, err)
}

func TestRegister_ReturnsAck(t *testing.T) {
	c, calls, _ := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusCreated, map[string]any{"msg": "Usuario registrado correctamente"})
	})

	ack, err := c.Register(context.Background(), "ana", "ana@x.io", "pw")
	require.NoError(t, err)
	assert.Equal(t, "Usuario registrado correctamente", ack.Message)
	assert.JSONEq(t, `{"username":"ana","email":"ana@x.io","password":"pw"}`, (*calls)[0].body)
}

func TestCollection_RESTLayout(t *testing.T) {
	c, calls, _ := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			writeJSON(w, http.StatusOK, []map[string]any{{"id": 7, "account_name": "Checking", "card": "12345", "balance": 1000}})
		case http.MethodPost:
			writeJSON(w, http.StatusCreated, map[string]any{"msg": "Cuenta creada", "id": 7})
		default:
			writeJSON(w, http.StatusOK, map[string]any{"msg": "ok"})
		}
	})
	ctx := context.Background()
	accounts := c.Accounts()
	payload := models.AccountPayload{AccountName: "Checking", Card: "12345", Balance: decimal.NewFromInt(1000)}

	created, err := accounts.Create(ctx, payload)
	require.NoError(t, err)
	assert.Equal(t, int64(7), created.ID)

	list, err := accounts.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Checking", list[0].AccountName)
	assert.True(t, list[0].Balance.Equal(decimal.NewFromInt(1000)))

	_, err = accounts.Update(ctx, 7, payload)
	require.NoError(t, err)
	ack, err := accounts.Delete(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "ok", ack.Message)

	want := []struct{ method, path string }{
		{http.MethodPost, "/api/accounts/"},
		{http.MethodGet, "/api/accounts/"},
		{http.MethodPut, "/api/accounts/7"},
		{http.MethodDelete, "/api/accounts/7"},
	}
	require.Len(t, *calls, len(want))
	for i, w := range want {
		assert.Equal(t, w.method, (*calls)[i].method)
		assert.Equal(t, w.path, (*calls)[i].path)
	}
	assert.JSONEq(t, `{"account_name":"Checking","card":"12345","balance":1000}`, (*calls)[0].body)
}

func TestCollection_ListNullIsEmpty(t *testing.T) {
	c, _, _ := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "null")
	})

	list, err := c.Loans().List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestCollection_Paths(t *testing.T) {
	c, calls, _ := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "[]")
	})
	ctx := context.Background()

	_, _ = c.Incomes().List(ctx)
	_, _ = c.ScheduledIncomes().List(ctx)
	_, _ = c.Services().List(ctx)
	_, _ = c.Loans().List(ctx)
	_, _ = c.LoanPayments().List(ctx)
	_, _ = c.ServicePayments().List(ctx)

	var paths []string
	for _, r := range *calls {
		paths = append(paths, r.path)
	}
	assert.Equal(t, []string{
		"/api/incomes/", "/api/scheduled_incomes/", "/api/services/",
		"/api/loans/", "/api/loan_payments/", "/api/service_payments/",
	}, paths)
}
