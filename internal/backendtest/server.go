// Package backendtest runs an in-memory stand-in for the finance backend's
// REST API on an httptest server. It speaks the same JSON contract (paths,
// field names, {"msg": ...} error bodies, HS256 bearer tokens) and lets tests
// inject failures and observe requests.
package backendtest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"
)

type collection struct {
	required []string
	created  string
	updated  string
	deleted  string
	missing  string
}

var collections = map[string]collection{
	"accounts": {
		required: []string{"account_name", "card", "balance"},
		created:  "Cuenta creada", updated: "Cuenta actualizada", deleted: "Cuenta eliminada", missing: "Cuenta no encontrada",
	},
	"incomes": {
		required: []string{"income_name", "income_date", "category", "amount", "account_id"},
		created:  "Ingreso creado", updated: "Ingreso actualizado", deleted: "Ingreso eliminado", missing: "Ingreso no encontrado",
	},
	"scheduled_incomes": {
		required: []string{"income_name", "income_date", "description", "category", "next_income", "amount", "received_amount", "pending_amount", "account_id"},
		created:  "Ingreso programado creado", updated: "Ingreso programado actualizado", deleted: "Ingreso programado eliminado", missing: "Ingreso programado no encontrado",
	},
	"services": {
		required: []string{"service_name", "date", "category", "price", "reamining_price", "account_id", "expiration_date"},
		created:  "Servicio creado", updated: "Servicio actualizado", deleted: "Servicio eliminado", missing: "Servicio no encontrado",
	},
	"loans": {
		required: []string{"loan_name", "holder", "price", "date", "remaining_price", "account_id", "expiration_date"},
		created:  "Préstamo creado", updated: "Préstamo actualizado", deleted: "Préstamo eliminado", missing: "Préstamo no encontrado",
	},
	"loan_payments": {
		required: []string{"amount", "date", "loan_id"},
		created:  "Pago de préstamo creado", updated: "Pago de préstamo actualizado", deleted: "Pago de préstamo eliminado", missing: "Pago de préstamo no encontrado",
	},
	"service_payments": {
		required: []string{"amount", "date", "service_id"},
		created:  "Pago de servicio creado", updated: "Pago de servicio actualizado", deleted: "Pago de servicio eliminado", missing: "Pago de servicio no encontrado",
	},
}

type user struct {
	id       int64
	username string
	email    string
	password string
}

// Request is one request as seen by the server.
type Request struct {
	Method        string
	Path          string
	Authorization string
	Body          string
}

type failure struct {
	status int
	body   string
}

// Server is the fake backend. Create it with New.
type Server struct {
	srv    *httptest.Server
	secret []byte

	mu       sync.Mutex
	users    map[int64]*user
	nextUser int64
	records  map[string]map[int64]map[string]any
	owners   map[string]map[int64]int64
	nextID   int64
	failures map[string][]failure
	requests []Request

	// MeHook, when set, runs before /auth/me answers. Tests use it to hold
	// an identity lookup open.
	MeHook func()
}

// New starts a server and stops it when the test ends.
func New(t testing.TB) *Server {
	t.Helper()
	s := &Server{
		secret:   []byte("backendtest-secret"),
		users:    make(map[int64]*user),
		records:  make(map[string]map[int64]map[string]any),
		owners:   make(map[string]map[int64]int64),
		failures: make(map[string][]failure),
	}
	for name := range collections {
		s.records[name] = make(map[int64]map[string]any)
		s.owners[name] = make(map[int64]int64)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/register", s.handleRegister)
	mux.HandleFunc("POST /api/auth/login", s.handleLogin)
	mux.HandleFunc("GET /api/auth/me", s.handleMe)
	mux.HandleFunc("GET /api/{collection}/{$}", s.handleList)
	mux.HandleFunc("POST /api/{collection}/{$}", s.handleCreate)
	mux.HandleFunc("PUT /api/{collection}/{id}", s.handleUpdate)
	mux.HandleFunc("DELETE /api/{collection}/{id}", s.handleDelete)

	s.srv = httptest.NewServer(s.intercept(mux))
	t.Cleanup(s.srv.Close)
	return s
}

// URL is the API base URL, ending in "/api".
func (s *Server) URL() string {
	return s.srv.URL + "/api"
}

// Client returns an *http.Client wired to the server.
func (s *Server) Client() *http.Client {
	return s.srv.Client()
}

// AddUser registers a user directly and returns its id.
func (s *Server) AddUser(username, email, password string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addUserLocked(username, email, password)
}

func (s *Server) addUserLocked(username, email, password string) int64 {
	s.nextUser++
	id := s.nextUser
	s.users[id] = &user{id: id, username: username, email: email, password: password}
	s.insertLocked("accounts", id, map[string]any{"account_name": "Efectivo", "card": "N/A", "balance": 0})
	return id
}

// DeleteUser removes a user; tokens issued for it stop resolving.
func (s *Server) DeleteUser(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, id)
}

// TokenFor mints a valid bearer token for userID.
func (s *Server) TokenFor(userID int64) string {
	tok, err := GenerateToken(userID, s.secret, time.Hour)
	if err != nil {
		panic(err)
	}
	return tok
}

// Seed stores record in collection for userID and returns the new id.
func (s *Server) Seed(collectionName string, userID int64, record map[string]any) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insertLocked(collectionName, userID, record)
}

// Records returns the stored records of collection for userID, by id.
func (s *Server) Records(collectionName string, userID int64) []map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listLocked(collectionName, userID)
}

// Fail makes the next request matching method and path (e.g. "/api/incomes/")
// answer with status and the raw body. Calls queue up.
func (s *Server) Fail(method, path string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := method + " " + path
	s.failures[key] = append(s.failures[key], failure{status: status, body: body})
}

// Requests returns a copy of every request received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

func (s *Server) intercept(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body []byte
		if r.Body != nil {
			body, _ = io.ReadAll(r.Body)
			_ = r.Body.Close()
		}
		r.Body = io.NopCloser(bytes.NewReader(body))

		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method:        r.Method,
			Path:          r.URL.Path,
			Authorization: r.Header.Get("Authorization"),
			Body:          string(body),
		})
		key := r.Method + " " + r.URL.Path
		var f *failure
		if q := s.failures[key]; len(q) > 0 {
			f = &q[0]
			s.failures[key] = q[1:]
		}
		s.mu.Unlock()

		if f != nil {
			w.WriteHeader(f.status)
			_, _ = w.Write([]byte(f.body))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) insertLocked(name string, userID int64, record map[string]any) int64 {
	s.nextID++
	id := s.nextID
	rec := make(map[string]any, len(record)+1)
	for k, v := range record {
		rec[k] = v
	}
	rec["id"] = id
	s.records[name][id] = rec
	s.owners[name][id] = userID
	return id
}

func (s *Server) listLocked(name string, userID int64) []map[string]any {
	out := make([]map[string]any, 0)
	for id, rec := range s.records[name] {
		if s.owners[name][id] == userID {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return idOf(out[i]) < idOf(out[j])
	})
	return out
}

func idOf(rec map[string]any) int64 {
	id, _ := rec["id"].(int64)
	return id
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMsg(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"msg": msg})
}

func decode(r *http.Request) (map[string]any, bool) {
	var data map[string]any
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := dec.Decode(&data); err != nil || data == nil {
		return nil, false
	}
	return data, true
}

func hasAll(data map[string]any, keys ...string) bool {
	for _, k := range keys {
		v, ok := data[k]
		if !ok || v == nil || v == "" {
			return false
		}
	}
	return true
}

// authenticate resolves the bearer token the way flask-jwt-extended does:
// 401 when missing, 422 when malformed or badly signed.
func (s *Server) authenticate(w http.ResponseWriter, r *http.Request) (int64, bool) {
	h := r.Header.Get("Authorization")
	if h == "" {
		writeMsg(w, http.StatusUnauthorized, "Missing Authorization Header")
		return 0, false
	}
	tok, ok := strings.CutPrefix(h, "Bearer ")
	if !ok {
		writeMsg(w, http.StatusUnauthorized, "Missing 'Bearer' type in 'Authorization' header. Expected 'Authorization: Bearer <JWT>'")
		return 0, false
	}
	id, err := UserIDFromToken(tok, s.secret)
	if err != nil {
		writeMsg(w, http.StatusUnprocessableEntity, err.Error())
		return 0, false
	}
	return id, true
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	data, ok := decode(r)
	if !ok || !hasAll(data, "username", "email", "password") {
		writeMsg(w, http.StatusBadRequest, "Faltan datos")
		return
	}
	email := fmt.Sprint(data["email"])

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.email == email {
			writeMsg(w, http.StatusConflict, "El email ya está registrado")
			return
		}
	}
	s.addUserLocked(fmt.Sprint(data["username"]), email, fmt.Sprint(data["password"]))
	writeMsg(w, http.StatusCreated, "Usuario registrado correctamente")
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	data, ok := decode(r)
	if !ok || !hasAll(data, "email", "password") {
		writeMsg(w, http.StatusBadRequest, "Faltan datos")
		return
	}

	s.mu.Lock()
	var found *user
	for _, u := range s.users {
		if u.email == fmt.Sprint(data["email"]) && u.password == fmt.Sprint(data["password"]) {
			found = u
			break
		}
	}
	s.mu.Unlock()

	if found == nil {
		writeMsg(w, http.StatusUnauthorized, "Credenciales incorrectas")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"access_token": s.TokenFor(found.id),
		"user":         map[string]any{"id": found.id, "username": found.username, "email": found.email},
	})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	if s.MeHook != nil {
		s.MeHook()
	}
	id, ok := s.authenticate(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	u := s.users[id]
	s.mu.Unlock()

	if u == nil {
		writeMsg(w, http.StatusNotFound, "Usuario no encontrado")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"id": u.id, "username": u.username, "email": u.email})
}

func lookup(w http.ResponseWriter, r *http.Request) (string, collection, bool) {
	name := r.PathValue("collection")
	c, ok := collections[name]
	if !ok {
		writeMsg(w, http.StatusNotFound, "Not Found")
	}
	return name, c, ok
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	name, _, ok := lookup(w, r)
	if !ok {
		return
	}
	uid, ok := s.authenticate(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	out := s.listLocked(name, uid)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	name, c, ok := lookup(w, r)
	if !ok {
		return
	}
	uid, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	data, ok := decode(r)
	if !ok || !hasAll(data, c.required...) {
		writeMsg(w, http.StatusBadRequest, "Faltan datos")
		return
	}

	s.mu.Lock()
	id := s.insertLocked(name, uid, data)
	s.mu.Unlock()
	writeJSON(w, http.StatusCreated, map[string]any{"msg": c.created, "id": id})
}

func (s *Server) ownedRecord(name string, uid int64, r *http.Request) (map[string]any, int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return nil, 0, false
	}
	rec, ok := s.records[name][id]
	if !ok || s.owners[name][id] != uid {
		return nil, 0, false
	}
	return rec, id, true
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	name, c, ok := lookup(w, r)
	if !ok {
		return
	}
	uid, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	data, _ := decode(r)

	s.mu.Lock()
	defer s.mu.Unlock()
	rec, _, ok := s.ownedRecord(name, uid, r)
	if !ok {
		writeMsg(w, http.StatusNotFound, c.missing)
		return
	}
	for k, v := range data {
		if k != "id" {
			rec[k] = v
		}
	}
	writeMsg(w, http.StatusOK, c.updated)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	name, c, ok := lookup(w, r)
	if !ok {
		return
	}
	uid, ok := s.authenticate(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	_, id, ok := s.ownedRecord(name, uid, r)
	if !ok {
		writeMsg(w, http.StatusNotFound, c.missing)
		return
	}
	delete(s.records[name], id)
	delete(s.owners[name], id)
	writeMsg(w, http.StatusOK, c.deleted)
}
