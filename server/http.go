package server

import (
	"collections/types"
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 5 * time.Second

// Router exposes the registry over HTTP for inspection and for applying
// commands without going through the queue.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())

	r.GET("/containers", s.listContainers)
	r.GET("/containers/:name", s.showContainer)
	r.POST("/commands", s.applyCommand)
	return r
}

func (s *Server) serveHTTP() error {
	srv := &http.Server{
		Addr:    s.httpAddr,
		Handler: s.Router(),
	}
	go func() {
		<-s.ctx.Done()
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			s.logger.Error("Error while stopping http server", "error", err)
		}
	}()

	s.logger.Info("Serving http", "addr", s.httpAddr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.logger.Error("Http server failed", "error", err)
		return err
	}
	return nil
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Debug("http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"took", time.Since(start))
	}
}

func (s *Server) listContainers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"containers": s.registry.List()})
}

func (s *Server) showContainer(c *gin.Context) {
	info, ok := s.registry.Info(c.Param("name"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": ErrUnknownContainer.Error()})
		return
	}
	c.JSON(http.StatusOK, info)
}

func (s *Server) applyCommand(c *gin.Context) {
	var cmd types.Command
	if err := c.ShouldBindJSON(&cmd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res := s.Apply(cmd)
	s.writeLog(describe(res))
	if res.Failed() {
		c.JSON(http.StatusUnprocessableEntity, res)
		return
	}
	c.JSON(http.StatusOK, res)
}
