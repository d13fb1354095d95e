package aiquiz

import (
	"net/http"

	"github.com/saulo-duarte/hikma-lambda/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

// GenerateQuestions godoc
// @Summary      Generate a five question quiz
// @Description  Falls back to the built-in questions when the model is unavailable or answers badly.
// @Tags         ai-quiz
// @Produce      json
// @Success      200  {object}  aiquiz.GeneratedQuiz
// @Router       /ai-quiz [get]
// @Router       /ai-quiz [post]
func (h *Handler) GenerateQuestions(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, h.service.GenerateQuestions(r.Context()))
}
