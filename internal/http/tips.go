package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/strength-log/internal/tips"
)

// TipGenerator produces a training tip for a prompt.
type TipGenerator interface {
	GenerateTip(ctx context.Context, prompt string) (string, error)
}

type tipRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

type TipResponse struct {
	Tip string `json:"tip"`
}

type TipsController struct {
	generator TipGenerator
}

func NewTipsController(generator TipGenerator) *TipsController {
	return &TipsController{generator: generator}
}

// GenerateTip forwards the prompt to the configured generator
// POST /generate-tip
func (tc *TipsController) GenerateTip(c *gin.Context) {
	var req tipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	tip, err := tc.generator.GenerateTip(c.Request.Context(), req.Prompt)
	if errors.Is(err, tips.ErrEmptyPrompt) {
		respondValidationError(c, err.Error())
		return
	}
	if err != nil {
		respondInternalError(c, err, "generate tip")
		return
	}
	c.JSON(http.StatusOK, TipResponse{Tip: tip})
}
