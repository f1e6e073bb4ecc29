package authapi

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"lineage/cmd/identity"
	"lineage/cmd/internal/auth/session"
	"lineage/cmd/internal/auth/token"
	"lineage/cmd/internal/tree"
)

// Handler wires the HTTP surface to the session, token, identity, and tree
// services. Response status/body shapes are part of the public contract and
// must not drift.
type Handler struct {
	log *slog.Logger
	cfg Config

	sessions *session.Manager
	tokens   *token.Service
	accounts identity.AccountCreator
	trees    tree.Store
}

// NewHandler constructs an API Handler.
func NewHandler(log *slog.Logger, cfg Config, sessions *session.Manager, tokens *token.Service, accounts identity.AccountCreator, trees tree.Store) (*Handler, error) {
	if log == nil {
		log = slog.Default()
	}
	if sessions == nil || tokens == nil || accounts == nil || trees == nil {
		return nil, errors.New("authapi: missing dependency")
	}

	return &Handler{
		log:      log,
		cfg:      cfg,
		sessions: sessions,
		tokens:   tokens,
		accounts: accounts,
		trees:    trees,
	}, nil
}

// Register wires API routes onto the provided mux.
func (h *Handler) Register(mux *http.ServeMux) {
	if h == nil || mux == nil {
		return
	}
	mux.HandleFunc("/api/status", h.handleStatus)
	mux.HandleFunc("/api/signup", h.handleSignup)
	mux.HandleFunc("/api/signin", h.handleSignin)
	mux.HandleFunc("/api/token", h.handleToken)
	mux.HandleFunc("/api/trees", h.handleTrees)
	mux.HandleFunc("/api/tree/{treeID}", h.handleTree)
}

// ---- handlers ----

func (h *Handler) handleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Everything works."))
}

func (h *Handler) handleSignup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req signupRequest
	if err := decodeJSON(w, r, h.cfg.MaxBodyBytes, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid user data received")
		return
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		writeMessage(w, http.StatusBadRequest, "Invalid user data received")
		return
	}

	err := h.accounts.CreateAccount(r.Context(), identity.CreateAccountInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		// Duplicate usernames and store outages intentionally share one
		// response shape; see the signup/lookup conflation contract.
		h.log.Error("auth.signup.fail", "err", err)
		writeFailure(w, http.StatusNotFound, "")
		return
	}

	writeMessage(w, http.StatusOK, "Account creation successful")
}

func (h *Handler) handleSignin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req signinRequest
	if err := decodeJSON(w, r, h.cfg.MaxBodyBytes, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid user data received")
		return
	}

	hasPassword := req.Password != ""
	hasToken := req.UserToken != ""
	if req.Username == "" || hasPassword == hasToken {
		writeMessage(w, http.StatusBadRequest, "Invalid user data received")
		return
	}

	now := time.Now().UTC()

	if hasToken {
		hash, err := h.sessions.SignInWithToken(now, req.Username, req.UserToken)
		if err != nil {
			switch {
			case errors.Is(err, session.ErrTokenInvalid):
				h.log.Warn("auth.signin.token_invalid", "username", req.Username)
				writeMessage(w, http.StatusBadRequest, "Token invalid")
			case errors.Is(err, session.ErrInvalidCredentials):
				h.log.Warn("auth.signin.hash_mismatch", "username", req.Username)
				writeMessage(w, http.StatusBadRequest, "Invalid user data received")
			default:
				h.log.Error("auth.signin.token.fail", "err", err)
				writeFailure(w, http.StatusNotFound, "")
			}
			return
		}

		writeJSON(w, http.StatusOK, signinResponse{LoggedIn: true, Hash: hash, Message: "Signin successful"})
		return
	}

	hash, err := h.sessions.SignInWithPassword(r.Context(), now, req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrUserNotFound):
			h.log.Warn("auth.signin.unknown_user", "username", req.Username)
			writeFailure(w, http.StatusNotFound, "Username not found")
		case errors.Is(err, session.ErrInvalidCredentials):
			h.log.Warn("auth.signin.bad_password", "username", req.Username)
			writeFailure(w, http.StatusNotFound, "Invalid username or password")
		default:
			h.log.Error("auth.signin.fail", "err", err)
			writeFailure(w, http.StatusNotFound, "")
		}
		return
	}

	writeJSON(w, http.StatusOK, signinResponse{LoggedIn: true, Hash: hash, Message: "Signin successful"})
}

func (h *Handler) handleToken(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req tokenManageRequest
	if err := decodeJSON(w, r, h.cfg.MaxBodyBytes, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid data received")
		return
	}

	rec, err := h.tokens.Do(r.Context(), token.Request{
		Type:     req.Type,
		Token:    req.Token,
		Username: req.Username,
		AppName:  req.AppName,
	})
	if err != nil {
		var storeErr *token.StoreError
		switch {
		case errors.Is(err, token.ErrInvalidRequest):
			writeMessage(w, http.StatusBadRequest, "Invalid data received")
		case errors.Is(err, token.ErrNoSeed):
			writeFailure(w, http.StatusBadRequest, "Invalid data received")
		case identity.IsNotFound(err) || identity.IsInvalidInput(err):
			h.log.Warn("auth.token.unknown_user", "username", req.Username)
			writeFailure(w, http.StatusNotFound, "Invalid data received")
		case errors.As(err, &storeErr):
			h.log.Error("auth.token.store.fail", "err", err)
			writeJSON(w, http.StatusNotFound, failureResponse{
				Error:   true,
				Message: storeErr.Message,
				Hint:    storeErr.Hint,
			})
		default:
			h.log.Error("auth.token.fail", "err", err)
			writeFailure(w, http.StatusNotFound, "")
		}
		return
	}

	writeJSON(w, http.StatusOK, tokenResultResponse{Result: rec})
}

func (h *Handler) handleTrees(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	username := r.URL.Query().Get("username")
	tok := r.URL.Query().Get("token")
	if username == "" || tok == "" {
		writeFailure(w, http.StatusNotFound, "Invalid parameters")
		return
	}

	ownerID, ok := h.validateSession(w, r, username, tok)
	if !ok {
		return
	}

	rows, err := h.trees.ListByOwner(r.Context(), ownerID)
	if err != nil {
		h.log.Error("tree.list.fail", "err", err)
		writeFailure(w, http.StatusNotFound, "")
		return
	}

	writeJSON(w, http.StatusOK, treesResponse{Trees: rows})
}

func (h *Handler) handleTree(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	username := r.URL.Query().Get("username")
	tok := r.URL.Query().Get("token")
	if username == "" || tok == "" {
		writeFailure(w, http.StatusNotFound, "Invalid parameters")
		return
	}

	treeID := strings.TrimSpace(r.PathValue("treeID"))
	if treeID == "" {
		writeFailure(w, http.StatusNotFound, "Invalid parameters")
		return
	}

	ownerID, ok := h.validateSession(w, r, username, tok)
	if !ok {
		return
	}

	rows, err := h.trees.GetByID(r.Context(), ownerID, treeID)
	if err != nil {
		h.log.Error("tree.get.fail", "err", err, "tree_id", treeID)
		writeFailure(w, http.StatusNotFound, "")
		return
	}

	writeJSON(w, http.StatusOK, treesResponse{Trees: rows})
}

// ---- helpers ----

// validateSession runs the read-only session check for resource routes and
// writes the failure response itself. Returns the owner identity id on
// success.
func (h *Handler) validateSession(w http.ResponseWriter, r *http.Request, username, tok string) (string, bool) {
	now := time.Now().UTC()

	ownerID, err := h.sessions.Validate(r.Context(), now, username, tok)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrTokenInvalid):
			h.log.Warn("tree.token_invalid", "username", username)
			writeMessage(w, http.StatusBadRequest, "Token invalid")
		case errors.Is(err, session.ErrInvalidCredentials):
			h.log.Warn("tree.hash_mismatch", "username", username)
			writeMessage(w, http.StatusBadRequest, "Invalid user data received")
		case errors.Is(err, session.ErrUserNotFound):
			h.log.Warn("tree.unknown_user", "username", username)
			writeFailure(w, http.StatusNotFound, "Username not found")
		default:
			h.log.Error("tree.validate.fail", "err", err)
			writeFailure(w, http.StatusNotFound, "")
		}
		return "", false
	}

	return ownerID, true
}
