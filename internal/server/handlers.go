package server

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vk/tombstone/internal/apperr"
	"github.com/vk/tombstone/internal/lang"
	"github.com/vk/tombstone/internal/render"
)

type programRequest struct {
	Name     string `json:"name" binding:"required"`
	Language string `json:"language" binding:"required"`
}

type interpreterRequest struct {
	Base     string `json:"base" binding:"required"`
	Language string `json:"language" binding:"required"`
}

type translatorRequest struct {
	Base   string `json:"base" binding:"required"`
	Source string `json:"source" binding:"required"`
	Target string `json:"target" binding:"required"`
}

type executableResponse struct {
	Name       string      `json:"name"`
	Language   lang.Name   `json:"language"`
	Executable bool        `json:"executable"`
	Path       []lang.Name `json:"path,omitempty"`
}

func (s *Server) handleDefineProgram(c *gin.Context) {
	var req programRequest
	if !bindJSON(c, &req) {
		return
	}

	s.mu.Lock()
	err := s.session.DefineProgram(c.Request.Context(), req.Name, req.Language)
	s.mu.Unlock()
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, req)
}

func (s *Server) handleDefineInterpreter(c *gin.Context) {
	var req interpreterRequest
	if !bindJSON(c, &req) {
		return
	}

	s.mu.Lock()
	err := s.session.DefineInterpreter(c.Request.Context(), req.Base, req.Language)
	s.mu.Unlock()
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, req)
}

func (s *Server) handleDefineTranslator(c *gin.Context) {
	var req translatorRequest
	if !bindJSON(c, &req) {
		return
	}

	s.mu.Lock()
	held, err := s.session.DefineTranslator(c.Request.Context(), req.Base, req.Source, req.Target)
	s.mu.Unlock()
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"base":    req.Base,
		"source":  req.Source,
		"target":  req.Target,
		"pending": held,
	})
}

// handleExecutable answers the executability query along with the language
// chain that makes the program runnable.
func (s *Server) handleExecutable(c *gin.Context) {
	name := c.Param("name")

	s.mu.Lock()
	exp, err := s.session.Explain(c.Request.Context(), name)
	s.mu.Unlock()
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, executableResponse{
		Name:       exp.Program,
		Language:   exp.Language,
		Executable: exp.Executable,
		Path:       exp.Path,
	})
}

func (s *Server) handleGraph(c *gin.Context) {
	s.mu.Lock()
	snap := s.session.Snapshot()
	s.mu.Unlock()
	c.JSON(http.StatusOK, snap)
}

func (s *Server) handleGraphDOT(c *gin.Context) {
	s.mu.Lock()
	snap := s.session.Snapshot()
	s.mu.Unlock()

	var buf bytes.Buffer
	if err := render.DOT(&buf, snap); err != nil {
		handleError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/vnd.graphviz; charset=utf-8", buf.Bytes())
}

func (s *Server) handleStats(c *gin.Context) {
	s.mu.Lock()
	stats := s.session.Stats()
	s.mu.Unlock()
	c.JSON(http.StatusOK, stats)
}

func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		handleError(c, apperr.New(http.StatusBadRequest, "Invalid request body", fmt.Errorf("%w: %v", apperr.ErrInvalidInput, err)))
		return false
	}
	return true
}

func handleError(c *gin.Context, err error) {
	appErr := apperr.MapError(err)
	body := gin.H{"error": appErr.Message}
	if appErr.Err != nil {
		body["detail"] = appErr.Err.Error()
	}
	c.JSON(appErr.Code, body)
}
