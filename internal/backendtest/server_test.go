package backendtest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func do(t *testing.T, s *Server, method, path, token string, body any) (int, map[string]any, []byte) {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, s.URL()+path, rd)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := s.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var obj map[string]any
	_ = json.Unmarshal(raw, &obj)
	return resp.StatusCode, obj, raw
}

func TestRegisterLoginMe(t *testing.T) {
	s := New(t)

	status, body, _ := do(t, s, http.MethodPost, "/auth/register", "", map[string]string{"username": "ana", "email": "ana@x.io", "password": "pw"})
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "Usuario registrado correctamente", body["msg"])

	status, body, _ = do(t, s, http.MethodPost, "/auth/register", "", map[string]string{"username": "ana", "email": "ana@x.io", "password": "pw"})
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "El email ya está registrado", body["msg"])

	status, body, _ = do(t, s, http.MethodPost, "/auth/login", "", map[string]string{"email": "ana@x.io", "password": "bad"})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Credenciales incorrectas", body["msg"])

	status, body, _ = do(t, s, http.MethodPost, "/auth/login", "", map[string]string{"email": "ana@x.io", "password": "pw"})
	require.Equal(t, http.StatusOK, status)
	token, _ := body["access_token"].(string)
	require.NotEmpty(t, token)

	status, body, _ = do(t, s, http.MethodGet, "/auth/me", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ana@x.io", body["email"])

	status, _, _ = do(t, s, http.MethodGet, "/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	status, _, _ = do(t, s, http.MethodGet, "/auth/me", "garbage", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
}

func TestRegister_CreatesDefaultAccount(t *testing.T) {
	s := New(t)
	id := s.AddUser("ana", "ana@x.io", "pw")

	recs := s.Records("accounts", id)
	require.Len(t, recs, 1)
	assert.Equal(t, "Efectivo", recs[0]["account_name"])
}

func TestCollections_CRUDIsPerUser(t *testing.T) {
	s := New(t)
	ana := s.AddUser("ana", "ana@x.io", "pw")
	bob := s.AddUser("bob", "bob@x.io", "pw")
	anaTok, bobTok := s.TokenFor(ana), s.TokenFor(bob)

	status, body, _ := do(t, s, http.MethodPost, "/loan_payments/", anaTok, map[string]any{"amount": 100, "date": "2025-06-01", "loan_id": 1})
	require.Equal(t, http.StatusCreated, status)
	id := int64(body["id"].(float64))

	status, _, raw := do(t, s, http.MethodGet, "/loan_payments/", bobTok, nil)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[]`, string(raw))

	status, body, _ = do(t, s, http.MethodDelete, "/loan_payments/"+itoa(id), bobTok, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Pago de préstamo no encontrado", body["msg"])

	status, _, _ = do(t, s, http.MethodPut, "/loan_payments/"+itoa(id), anaTok, map[string]any{"amount": 150})
	require.Equal(t, http.StatusOK, status)
	recs := s.Records("loan_payments", ana)
	require.Len(t, recs, 1)
	assert.Equal(t, "150", recs[0]["amount"].(json.Number).String())

	status, _, _ = do(t, s, http.MethodDelete, "/loan_payments/"+itoa(id), anaTok, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, s.Records("loan_payments", ana))
}

func TestCreate_MissingFields(t *testing.T) {
	s := New(t)
	tok := s.TokenFor(s.AddUser("ana", "ana@x.io", "pw"))

	status, body, _ := do(t, s, http.MethodPost, "/services/", tok, map[string]any{"service_name": "Luz"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Faltan datos", body["msg"])
}

func TestFail_IsOneShot(t *testing.T) {
	s := New(t)
	tok := s.TokenFor(s.AddUser("ana", "ana@x.io", "pw"))
	s.Fail(http.MethodGet, "/api/incomes/", http.StatusInternalServerError, "boom")

	status, _, raw := do(t, s, http.MethodGet, "/incomes/", tok, nil)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "boom", string(raw))

	status, _, _ = do(t, s, http.MethodGet, "/incomes/", tok, nil)
	assert.Equal(t, http.StatusOK, status)

	reqs := s.Requests()
	require.Len(t, reqs, 2)
	assert.Equal(t, "Bearer "+tok, reqs[0].Authorization)
}

func TestTokens(t *testing.T) {
	secret := []byte("k")
	tok, err := GenerateToken(42, secret, time.Minute)
	require.NoError(t, err)

	id, err := UserIDFromToken(tok, secret)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	_, err = UserIDFromToken(tok, []byte("other"))
	assert.Error(t, err)

	expired, err := GenerateToken(42, secret, -time.Minute)
	require.NoError(t, err)
	_, err = UserIDFromToken(expired, secret)
	assert.Error(t, err)
}

func itoa(v int64) string {
	b, _ := json.Marshal(v)
	return string(b)
}
