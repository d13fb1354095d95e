package content

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/saulo-duarte/hikma-lambda/internal/config"
)

const ViewerHeader = "X-Viewer-ID"

var errInvalidViewer = errors.New("invalid viewer id")

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

// ListSections godoc
// @Summary      List content sections
// @Tags         content
// @Produce      json
// @Success      200  {array}   content.Section
// @Router       /content/sections [get]
func (h *Handler) ListSections(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, Catalog())
}

// GetSection godoc
// @Summary      Get one content section
// @Tags         content
// @Produce      json
// @Param        category  path      string  true  "Section category"
// @Success      200       {object}  content.Section
// @Failure      404       {string}  string
// @Router       /content/sections/{category} [get]
func (h *Handler) GetSection(w http.ResponseWriter, r *http.Request) {
	section, ok := FindSection(Category(chi.URLParam(r, "category")))
	if !ok {
		http.Error(w, "section not found", http.StatusNotFound)
		return
	}
	config.JSON(w, http.StatusOK, section)
}

// FetchTopic godoc
// @Summary      Generate content for a topic
// @Tags         content
// @Accept       json
// @Produce      json
// @Param        category   path      string                true   "Content category"
// @Param        X-Viewer-ID  header  string                false  "Viewer id (uuid)"
// @Param        request    body      content.FetchRequest  true   "Topic"
// @Success      200        {object}  content.FetchResponse
// @Failure      400        {string}  string
// @Router       /content/{category} [post]
func (h *Handler) FetchTopic(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())
	category := Category(chi.URLParam(r, "category"))

	var req FetchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Warn("Invalid content request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	h.respond(w, r, category, req.Topic)
}

// Ask godoc
// @Summary      Ask a free question
// @Tags         content
// @Accept       json
// @Produce      json
// @Param        X-Viewer-ID  header  string              false  "Viewer id (uuid)"
// @Param        request    body      content.AskRequest  true   "Question"
// @Success      200        {object}  content.FetchResponse
// @Failure      400        {string}  string
// @Router       /content/ask [post]
func (h *Handler) Ask(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Warn("Invalid ask request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	h.respond(w, r, CategoryAsk, req.Question)
}

// GetPanel godoc
// @Summary      Current panel state for a viewer
// @Tags         content
// @Produce      json
// @Param        category     path    string  true  "Content category"
// @Param        X-Viewer-ID  header  string  true  "Viewer id (uuid)"
// @Success      200  {object}  content.PanelState
// @Failure      400  {string}  string
// @Router       /content/{category}/panel [get]
func (h *Handler) GetPanel(w http.ResponseWriter, r *http.Request) {
	category := Category(chi.URLParam(r, "category"))
	if !category.IsContentCategory() {
		http.Error(w, ErrInvalidCategory.Error(), http.StatusBadRequest)
		return
	}

	viewer, err := viewerID(r)
	if err != nil || viewer == "" {
		http.Error(w, "X-Viewer-ID header required", http.StatusBadRequest)
		return
	}

	config.JSON(w, http.StatusOK, h.service.Panel(viewer, category))
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, category Category, topic string) {
	topic = strings.TrimSpace(topic)
	if err := Validate(category, topic); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	viewer, err := viewerID(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	config.JSON(w, http.StatusOK, h.service.Display(r.Context(), viewer, category, topic))
}

func viewerID(r *http.Request) (string, error) {
	raw := strings.TrimSpace(r.Header.Get(ViewerHeader))
	if raw == "" {
		return "", nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", errInvalidViewer
	}
	return id.String(), nil
}
