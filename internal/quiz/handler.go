package quiz

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/saulo-duarte/hikma-lambda/internal/auth"
	"github.com/saulo-duarte/hikma-lambda/internal/config"
)

type Handler struct {
	service      QuizService
	cookieDomain string
	sessionTTL   time.Duration
}

func NewHandler(s QuizService, cookieDomain string, sessionTTL time.Duration) *Handler {
	return &Handler{service: s, cookieDomain: cookieDomain, sessionTTL: sessionTTL}
}

// StartQuiz godoc
// @Summary      Start a quiz session
// @Tags         quizzes
// @Produce      json
// @Success      201  {object}  quiz.StartResponse
// @Failure      500  {string}  string
// @Router       /quizzes [post]
func (h *Handler) StartQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	view, err := h.service.Start(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to start quiz")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	token, err := auth.GenerateJWT(view.ID.String(), auth.RoleLearner, h.sessionTTL)
	if err != nil {
		log.WithError(err).Error("Failed to sign session token")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	auth.SetSessionCookie(w, token, h.cookieDomain, h.sessionTTL)

	config.JSON(w, http.StatusCreated, StartResponse{Session: view, Token: token})
}

// GetQuiz godoc
// @Summary      Get a quiz session
// @Tags         quizzes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Session id"
// @Success      200  {object}  quiz.SessionView
// @Failure      401  {string}  string
// @Failure      404  {string}  string
// @Router       /quizzes/{id} [get]
func (h *Handler) GetQuiz(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	view, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, view)
}

// SubmitName godoc
// @Summary      Submit the learner name
// @Tags         quizzes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string            true  "Session id"
// @Param        request  body      quiz.NameRequest  true  "Learner name"
// @Success      200      {object}  quiz.SessionView
// @Failure      400      {string}  string
// @Failure      409      {string}  string
// @Router       /quizzes/{id}/name [post]
func (h *Handler) SubmitName(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	var req NameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	view, err := h.service.SubmitName(r.Context(), id, req.Name)
	if err != nil {
		writeError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, view)
}

// SubmitAnswer godoc
// @Summary      Answer the current question
// @Tags         quizzes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string              true  "Session id"
// @Param        request  body      quiz.AnswerRequest  true  "Selected option"
// @Success      200      {object}  quiz.AnswerResult
// @Failure      400      {string}  string
// @Failure      409      {string}  string
// @Router       /quizzes/{id}/answer [post]
func (h *Handler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	var req AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	res, err := h.service.Answer(r.Context(), id, req.Answer)
	if err != nil {
		writeError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, res)
}

// NextQuestion godoc
// @Summary      Advance to the next question
// @Tags         quizzes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Session id"
// @Success      200  {object}  quiz.SessionView
// @Failure      409  {string}  string
// @Router       /quizzes/{id}/next [post]
func (h *Handler) NextQuestion(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	view, err := h.service.Next(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, view)
}

// RestartQuiz godoc
// @Summary      Restart a quiz session with new questions
// @Tags         quizzes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Session id"
// @Success      200  {object}  quiz.SessionView
// @Failure      404  {string}  string
// @Router       /quizzes/{id}/restart [post]
func (h *Handler) RestartQuiz(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	view, err := h.service.Restart(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, view)
}

// GetCertificate godoc
// @Summary      Completion certificate of a session
// @Tags         quizzes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Session id"
// @Success      200  {object}  quiz.CompletionRecord
// @Failure      404  {string}  string
// @Failure      409  {string}  string
// @Router       /quizzes/{id}/certificate [get]
func (h *Handler) GetCertificate(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	record, err := h.service.Certificate(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, record)
}

// EndQuiz godoc
// @Summary      End a quiz session
// @Tags         quizzes
// @Security     BearerAuth
// @Param        id   path  string  true  "Session id"
// @Success      204
// @Failure      404  {string}  string
// @Router       /quizzes/{id} [delete]
func (h *Handler) EndQuiz(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	if err := h.service.End(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	auth.ClearSessionCookie(w, h.cookieDomain)
	w.WriteHeader(http.StatusNoContent)
}

// ListCertificates godoc
// @Summary      List recent certificates
// @Tags         certificates
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query     int  false  "Maximum records (default 50, max 200)"
// @Success      200    {array}   quiz.CompletionRecord
// @Failure      403    {string}  string
// @Router       /certificates [get]
func (h *Handler) ListCertificates(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	records, err := h.service.ListCertificates(r.Context(), limit)
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	config.JSON(w, http.StatusOK, records)
}

// sessionID parses the {id} URL param and checks the caller owns that session.
func (h *Handler) sessionID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	log := config.WithContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid quiz id", http.StatusBadRequest)
		return uuid.Nil, false
	}

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		log.Warn("Unauthenticated quiz request")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return uuid.Nil, false
	}
	if claims.Role != auth.RoleStaff && claims.UserID != id.String() {
		log.WithField("session_id", id).Warn("Token does not belong to quiz session")
		http.Error(w, "forbidden", http.StatusForbidden)
		return uuid.Nil, false
	}
	return id, true
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrSessionNotFound):
		http.Error(w, "quiz session not found", http.StatusNotFound)
	case errors.Is(err, ErrNameRequired), errors.Is(err, ErrUnknownOption):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrInvalidState), errors.Is(err, ErrNotAnswered):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		config.WithContext(r.Context()).WithError(err).Error("Quiz request failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
