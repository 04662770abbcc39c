package server

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cleared-dev/ledgerform/internal/buildinfo"
	"github.com/cleared-dev/ledgerform/internal/importer"
	"github.com/cleared-dev/ledgerform/internal/ledger"
	"github.com/cleared-dev/ledgerform/internal/model"
)

const (
	rowCountHeader = "X-Row-Count"
	messageHeader  = "X-Ledger-Message"
	downloadHeader = "X-Ledger-Download-Label"
)

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "version": buildinfo.String()})
}

func (s *Server) formConfig(c *gin.Context) {
	c.JSON(http.StatusOK, FormResponse{
		Title:        s.labels.Title,
		Instructions: s.labels.Instructions,
		SaveButton:   s.labels.SaveButton,
		Fields:       s.layout.Fields,
		DynamicRows:  s.layout.DynamicRows,
		Rows:         s.layout.BlankGrid(),
	})
}

func (s *Server) save(c *gin.Context) {
	var snap importer.Snapshot
	if err := c.ShouldBindJSON(&snap); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	grid := snap.Rows
	if grid == nil {
		grid = model.Grid{}
	}
	if err := s.layout.CheckGrid(grid); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	doc, err := s.ledger.Save(grid)
	if err != nil {
		s.writeSaveError(c, err)
		return
	}

	c.Header("Content-Disposition", contentDisposition(doc.Filename))
	c.Header(rowCountHeader, strconv.Itoa(doc.Count))
	c.Header(messageHeader, url.PathEscape(doc.Message))
	c.Header(downloadHeader, url.PathEscape(doc.DownloadLabel))
	c.Data(http.StatusOK, ledger.MIMEType+"; charset=utf-8", doc.Content)
}

func (s *Server) writeSaveError(c *gin.Context, err error) {
	msg, ok := ledger.Warning(err, s.labels)
	if !ok {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	resp := WarningResponse{Warning: msg}
	var incomplete *ledger.IncompleteRowError
	if errors.As(err, &incomplete) {
		resp.Position = incomplete.Position
		resp.GridPosition = incomplete.GridPosition
		resp.Missing = incomplete.Missing
	}
	c.JSON(http.StatusUnprocessableEntity, resp)
}

// contentDisposition names the attachment with an ASCII fallback and the
// RFC 5987 UTF-8 form for localized prefixes.
func contentDisposition(filename string) string {
	fallback := strings.Map(func(r rune) rune {
		if r > 0x7e || r < 0x20 || r == '"' || r == '\\' {
			return '_'
		}
		return r
	}, filename)
	if fallback == filename {
		return fmt.Sprintf(`attachment; filename="%s"`, filename)
	}
	return fmt.Sprintf(`attachment; filename="%s"; filename*=UTF-8''%s`, fallback, url.PathEscape(filename))
}
