package server

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Thoronador/hex2sv/internal/auth"
	"github.com/Thoronador/hex2sv/internal/literal"
	"github.com/Thoronador/hex2sv/internal/observability"
	"github.com/Thoronador/hex2sv/internal/record"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) registerRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"uptime":    time.Since(s.appeared).String(),
			"component": component,
			"version":   version,
		})
	})

	s.router.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"ready":     true,
			"uptime":    time.Since(s.appeared).String(),
			"component": component,
			"version":   version,
		})
	})

	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if s.cfg.AuthToken != "" {
		s.router.POST("/v1/encode", auth.Require(auth.StaticToken{Token: s.cfg.AuthToken}), s.handleEncode)
	} else {
		s.router.POST("/v1/encode", s.handleEncode)
	}
}

func (s *Server) handleEncode(c *gin.Context) {
	body := http.MaxBytesReader(c.Writer, c.Request.Body, s.cfg.MaxBodyBytes)
	raw, err := io.ReadAll(body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Input is too large!", "limit": tooLarge.Limit})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read request body! " + err.Error()})
		return
	}

	data, err := literal.Decode(strings.TrimSpace(string(raw)))
	if err != nil {
		s.respondDecodeError(c, err)
		return
	}
	observability.RecordEncode(observability.ResultOK, len(data))

	lit := literal.EncodeBytes(data)
	resp := gin.H{
		"literal":     lit,
		"declaration": s.decl.Format(lit),
		"bytes":       len(data),
	}
	if h, err := record.ParseHeader(data); err == nil {
		info := gin.H{
			"tag":       h.Name(),
			"data_size": h.DataSize,
			"form_id":   h.FormID,
		}
		if err := h.CheckBody(len(data) - record.HeaderSize); err != nil {
			info["warning"] = err.Error()
		}
		resp["record"] = info
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) respondDecodeError(c *gin.Context, err error) {
	if errors.Is(err, literal.ErrEmptyInput) {
		observability.RecordEncode(observability.ResultEmpty, 0)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Input is empty!"})
		return
	}
	observability.RecordEncode(observability.ResultFormat, 0)
	var fe *literal.FormatError
	if errors.As(err, &fe) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": fe.Error(),
			"value": fe.Value,
			"index": fe.Index,
		})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
