package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/rocketscienceinc/bingo-backend/internal/apperror"
	"github.com/rocketscienceinc/bingo-backend/internal/entity"
	"github.com/rocketscienceinc/bingo-backend/internal/usecase"
)

type Handlers interface {
	Health(w http.ResponseWriter, _ *http.Request)

	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)

	GetBoard(w http.ResponseWriter, r *http.Request)
	BoardStats(w http.ResponseWriter, r *http.Request)
	ToggleCell(w http.ResponseWriter, r *http.Request)
	ResetBoard(w http.ResponseWriter, r *http.Request)
	RegenerateBoard(w http.ResponseWriter, r *http.Request)

	WithAuth(next http.HandlerFunc) http.HandlerFunc
}

type userUseCase interface {
	Register(ctx context.Context, username, password string) (*entity.User, error)
	Login(ctx context.Context, username, password string) (*entity.User, error)
	GetByID(ctx context.Context, id string) (*entity.User, error)
}

type boardUseCase interface {
	GetOrCreateBoard(ctx context.Context, username string) (*entity.Board, error)
	RegenerateBoard(ctx context.Context, username string) (*entity.Board, error)
	ResetBoard(ctx context.Context, username string) (*entity.Board, error)
	ToggleCell(ctx context.Context, username string, index int) (*entity.Board, error)
	Stats(ctx context.Context, username string) (*usecase.BoardStats, error)
}

type authService interface {
	GenerateToken(userID string) (string, error)
	ParseToken(tokenString string) (string, error)
}

type handlers struct {
	logger *slog.Logger

	users  userUseCase
	boards boardUseCase
	auth   authService
}

func NewHandlers(logger *slog.Logger, users userUseCase, boards boardUseCase, auth authService) Handlers {
	return &handlers{
		logger: logger,

		users:  users,
		boards: boards,
		auth:   auth,
	}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type toggleRequest struct {
	Index int `json:"index"`
}

func (that *handlers) Health(w http.ResponseWriter, _ *http.Request) {
	that.respond(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (that *handlers) Register(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "Register")

	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		that.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := that.users.Register(r.Context(), req.Username, req.Password)
	switch {
	case errors.Is(err, apperror.ErrUsernameTooShort), errors.Is(err, apperror.ErrPasswordTooShort):
		that.respondError(w, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, apperror.ErrUserAlreadyExists):
		that.respondError(w, http.StatusConflict, err.Error())
		return
	case err != nil:
		log.Error("failed to register user", "error", err)
		that.respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	token, err := that.auth.GenerateToken(user.ID)
	if err != nil {
		log.Error("failed to generate token", "error", err)
		that.respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	that.respond(w, http.StatusCreated, map[string]any{
		"user":         user,
		"access_token": token,
	})
}

func (that *handlers) Login(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "Login")

	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		that.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := that.users.Login(r.Context(), req.Username, req.Password)
	if errors.Is(err, apperror.ErrInvalidCredentials) {
		that.respondError(w, http.StatusUnauthorized, err.Error())
		return
	}
	if err != nil {
		log.Error("failed to log user in", "error", err)
		that.respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	token, err := that.auth.GenerateToken(user.ID)
	if err != nil {
		log.Error("failed to generate token", "error", err)
		that.respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	that.respond(w, http.StatusOK, map[string]any{
		"user":         user,
		"access_token": token,
	})
}

func (that *handlers) Me(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	that.respond(w, http.StatusOK, map[string]any{"user": user})
}

func (that *handlers) GetBoard(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	board, err := that.boards.GetOrCreateBoard(r.Context(), user.Username)
	if err != nil {
		that.boardError(w, "GetBoard", err)
		return
	}

	that.respond(w, http.StatusOK, map[string]any{"board": board})
}

func (that *handlers) BoardStats(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	stats, err := that.boards.Stats(r.Context(), user.Username)
	if err != nil {
		that.boardError(w, "BoardStats", err)
		return
	}

	that.respond(w, http.StatusOK, stats)
}

func (that *handlers) ToggleCell(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	var req toggleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		that.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	board, err := that.boards.ToggleCell(r.Context(), user.Username, req.Index)
	if errors.Is(err, entity.ErrCellOutOfRange) {
		that.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		that.boardError(w, "ToggleCell", err)
		return
	}

	that.respond(w, http.StatusOK, map[string]any{"board": board})
}

func (that *handlers) ResetBoard(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	board, err := that.boards.ResetBoard(r.Context(), user.Username)
	if err != nil {
		that.boardError(w, "ResetBoard", err)
		return
	}

	that.respond(w, http.StatusOK, map[string]any{"board": board})
}

func (that *handlers) RegenerateBoard(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	board, err := that.boards.RegenerateBoard(r.Context(), user.Username)
	if err != nil {
		that.boardError(w, "RegenerateBoard", err)
		return
	}

	that.respond(w, http.StatusOK, map[string]any{"board": board})
}

func (that *handlers) boardError(w http.ResponseWriter, method string, err error) {
	that.logger.With("method", method).Error("board operation failed", "error", err)
	that.respondError(w, http.StatusInternalServerError, "internal server error")
}

func (that *handlers) respond(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}

func (that *handlers) respondError(w http.ResponseWriter, status int, message string) {
	that.respond(w, status, map[string]string{"error": message})
}

// used in handlers that sit behind WithAuth; the middleware guarantees the
// user is present.
func userFromContext(ctx context.Context) *entity.User {
	user, _ := ctx.Value(userContextKey).(*entity.User)
	return user
}
