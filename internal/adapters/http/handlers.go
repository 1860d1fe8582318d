// Package httpadapter exposes the engine as a JSON API. It is a thin
// shell: all outcomes come from the usecase layer and are mapped onto
// HTTP statuses here.
package httpadapter

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"svw.info/sudokulab/internal/domain"
	"svw.info/sudokulab/internal/solver"
	"svw.info/sudokulab/internal/usecase"
)

type Handler struct {
	UC *usecase.Service
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

// Register mounts the API routes on the engine.
func (h *Handler) Register(e *gin.Engine) {
	api := e.Group("/api")
	api.POST("/generate", h.generate)
	api.POST("/solve", h.solve)
	api.GET("/solve/stream", h.solveStream)
	api.POST("/validate", h.validate)
	api.POST("/hint", h.hint)
	api.POST("/save", h.save)
	api.POST("/load", h.load)
	api.GET("/list", h.list)
}

// statusFor maps the solver's outcome taxonomy onto HTTP statuses.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, solver.ErrInvalidInput):
		return http.StatusUnprocessableEntity, "invalid"
	case errors.Is(err, solver.ErrUnsolvable):
		return http.StatusConflict, "unsolvable"
	case errors.Is(err, solver.ErrCancelled):
		return http.StatusRequestTimeout, "cancelled"
	}
	return http.StatusInternalServerError, "error"
}

type generateReq struct {
	Difficulty string `json:"difficulty"`
	Seed       int64  `json:"seed,omitempty"`
}

func (h *Handler) generate(c *gin.Context) {
	var req generateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON: " + err.Error()})
		return
	}
	diff := domain.Medium
	if req.Difficulty != "" {
		var err error
		if diff, err = domain.ParseDifficulty(req.Difficulty); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	p, st, err := h.UC.Generate(c.Request.Context(), seed, diff)
	if err != nil {
		log.Err(err).Str("difficulty", diff.String()).Msg("generate puzzle")
		status, kind := statusFor(err)
		c.JSON(status, gin.H{"error": err.Error(), "status": kind})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"board":      p.Board,
		"seed":       seed,
		"difficulty": diff.String(),
		"clues":      p.Board.CountClues(),
		"durationMs": st.Duration.Milliseconds(),
		"nodes":      st.Nodes,
	})
}

type boardReq struct {
	Board [domain.Size][domain.Size]uint8 `json:"board"`
}

func (h *Handler) solve(c *gin.Context) {
	var req boardReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON: " + err.Error()})
		return
	}
	in := &domain.Board{Values: req.Board}
	out, st, err := h.UC.Solve(c.Request.Context(), in)
	if err != nil {
		status, kind := statusFor(err)
		c.JSON(status, gin.H{"error": err.Error(), "status": kind, "nodes": st.Nodes})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"board":      out.Values,
		"durationMs": st.Duration.Milliseconds(),
		"nodes":      st.Nodes,
	})
}

// solveStream animates a solve as server-sent events, one "step" event
// per committed placement or undo, followed by a single "result" event.
// The board is passed as an 81-character line in the board query param.
func (h *Handler) solveStream(c *gin.Context) {
	b, err := domain.ParseBoard(c.Query("board"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	steps, result := h.UC.StreamSolve(c.Request.Context(), b)
	c.Stream(func(w io.Writer) bool {
		s, ok := <-steps
		if !ok {
			res := <-result
			if res.Err != nil {
				_, kind := statusFor(res.Err)
				c.SSEvent("result", gin.H{"error": res.Err.Error(), "status": kind})
			} else {
				c.SSEvent("result", gin.H{"board": res.Board.Values, "steps": res.Stats.Steps, "nodes": res.Stats.Nodes})
			}
			return false
		}
		c.SSEvent("step", s)
		return true
	})
}

func (h *Handler) validate(c *gin.Context) {
	var req boardReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON: " + err.Error()})
		return
	}
	ok, conflicts, err := h.UC.Validate(c.Request.Context(), &domain.Board{Values: req.Board})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": ok, "conflicts": conflicts})
}

type hintReq struct {
	Board   [domain.Size][domain.Size]uint8 `json:"board"`
	MaxTier string                          `json:"maxTier,omitempty"`
}

func (h *Handler) hint(c *gin.Context) {
	var req hintReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON: " + err.Error()})
		return
	}
	max := domain.StrategySingles
	switch req.MaxTier {
	case "", "singles":
	case "pairs":
		max = domain.StrategyPairs
	case "advanced":
		max = domain.StrategyAdvanced
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown tier " + req.MaxTier})
		return
	}
	hh, found, err := h.UC.Hint(c.Request.Context(), &domain.Board{Values: req.Board}, max)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"found": found, "hint": hh})
}

func (h *Handler) save(c *gin.Context) {
	var p domain.Puzzle
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON: " + err.Error()})
		return
	}
	if err := h.UC.Save(c.Request.Context(), &p); err != nil {
		log.Err(err).Msg("save puzzle")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": p.ID})
}

type loadReq struct {
	ID string `json:"id" binding:"required"`
}

func (h *Handler) load(c *gin.Context) {
	var req loadReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON or missing id"})
		return
	}
	p, err := h.UC.Load(c.Request.Context(), req.ID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"puzzle": p})
}

func (h *Handler) list(c *gin.Context) {
	ps, err := h.UC.List(c.Request.Context())
	if err != nil {
		log.Err(err).Msg("list puzzles")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"puzzles": ps})
}
