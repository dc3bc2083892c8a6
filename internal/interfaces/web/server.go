// Package web exposes the two user-triggerable actions and the read-only
// catalog views to a browser UI over HTTP. No rendering happens here; the UI
// is whatever consumes the JSON.
package web

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/herodex/herodex/internal/application/handlers"
	"github.com/herodex/herodex/internal/domain/entities"
)

// Server serves the herodex HTTP API.
type Server struct {
	create  *handlers.CreateHandler
	chapter *handlers.ChapterHandler
	roster  *handlers.RosterHandler
	log     *logrus.Logger

	router *gin.Engine
}

// NewServer builds the router. imagesDir is served statically so the UI can
// display portraits by their stored relative paths.
func NewServer(create *handlers.CreateHandler, chapter *handlers.ChapterHandler, roster *handlers.RosterHandler, imagesDir string, log *logrus.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		create:  create,
		chapter: chapter,
		roster:  roster,
		log:     log,
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
		MaxAge:       12 * time.Hour,
	}))

	api := router.Group("/api")
	api.GET("/heroes", s.handleList)
	api.POST("/heroes", s.handleCreate)
	api.GET("/heroes/:id", s.handleShow)
	api.POST("/heroes/:id/chapters", s.handleChapter)

	router.Static("/images", imagesDir)

	s.router = router
	return s
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:    addr,
		Handler: s.router,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.WithField("addr", addr).Info("herodex UI server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleList(c *gin.Context) {
	heroes, err := s.roster.HandleList(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"heroes": heroes})
}

func (s *Server) handleCreate(c *gin.Context) {
	result, err := s.create.Handle(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}

	resp := gin.H{"hero": result.Hero}
	if result.ImageWarning != nil {
		s.log.WithField("hero_id", result.Hero.ID).Warn(handlers.UserMessage(result.ImageWarning))
		resp["warning"] = "Portrait could not be fetched; the hero was saved without an image."
	}
	c.JSON(http.StatusCreated, resp)
}

func (s *Server) handleShow(c *gin.Context) {
	detail, err := s.roster.HandleShow(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"hero":         detail.Hero,
		"story_so_far": detail.StorySoFar,
	})
}

func (s *Server) handleChapter(c *gin.Context) {
	result, err := s.chapter.Handle(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"chapter": result.Chapter,
		"summary": result.Summary,
	})
}

// fail maps an action error to a status code and user-visible message.
func (s *Server) fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, entities.ErrHeroNotFound):
		status = http.StatusNotFound
	case errors.Is(err, entities.ErrMissingCredential):
		status = http.StatusServiceUnavailable
	case errors.Is(err, entities.ErrMalformedGeneration), errors.Is(err, entities.ErrGenerationRequest):
		status = http.StatusBadGateway
	}

	s.log.WithError(err).Error("action failed")
	c.JSON(status, gin.H{"error": handlers.UserMessage(err)})
}
