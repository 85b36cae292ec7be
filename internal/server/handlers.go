package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"barclash-core/barcode"
	"barclash-core/clash"

	"barclash/internal/barcodeio"
	"barclash/internal/jsonutil"
	"barclash/internal/output"
	"barclash/internal/writers"
)

// RequestIDHeader carries the run ID of every analysis response.
const RequestIDHeader = "X-Request-ID"

// SetRequest is one barcode set. Barcodes and Text (newline separated, as
// pasted into a text box) are alternatives.
type SetRequest struct {
	Name     string   `json:"name"`
	Barcodes []string `json:"barcodes"`
	Text     string   `json:"text"`
}

func (r SetRequest) values() []string {
	if r.Text != "" {
		return barcode.SplitLines(r.Text)
	}
	return r.Barcodes
}

// ClashRequest is the body of POST /v1/clashes. Mode is optional and is
// inferred from Set2 when empty; a nil Threshold means the server default.
type ClashRequest struct {
	Mode      string      `json:"mode"`
	Threshold *int        `json:"threshold"`
	Set1      SetRequest  `json:"set1"`
	Set2      *SetRequest `json:"set2"`
}

var contentTypes = map[string]string{
	output.FormatJSON:  "application/json; charset=utf-8",
	output.FormatJSONL: "application/x-ndjson",
	output.FormatCSV:   "text/csv; charset=utf-8",
	output.FormatText:  "text/tab-separated-values; charset=utf-8",
}

func fail(c *gin.Context, status int, err error) {
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}

// runID reuses a client-supplied UUID request ID, otherwise mints one.
func runID(c *gin.Context) string {
	if id, err := uuid.Parse(c.GetHeader(RequestIDHeader)); err == nil {
		return id.String()
	}
	return uuid.NewString()
}

func (s *Server) Clashes(c *gin.Context) {
	id := runID(c)
	c.Header(RequestIDHeader, id)

	format := c.DefaultQuery("format", output.FormatJSON)
	if !writers.Has(format) {
		s.metrics.analyses.WithLabelValues("unknown", OutcomeBadRequest).Inc()
		fail(c, http.StatusBadRequest, fmt.Errorf("unknown format %q (want %s)", format, strings.Join(writers.Formats(), " | ")))
		return
	}

	var req ClashRequest
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxBodyBytes)
	if err := jsonutil.DecodeStrict(c.Request.Body, &req); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			s.metrics.analyses.WithLabelValues("unknown", OutcomeTooLarge).Inc()
			fail(c, http.StatusRequestEntityTooLarge, err)
			return
		}
		s.metrics.analyses.WithLabelValues("unknown", OutcomeBadRequest).Inc()
		fail(c, http.StatusBadRequest, fmt.Errorf("invalid request: %w", err))
		return
	}

	mode, err := requestMode(req)
	if err != nil {
		s.metrics.analyses.WithLabelValues("unknown", OutcomeBadRequest).Inc()
		fail(c, http.StatusBadRequest, err)
		return
	}
	p := clash.Params{Mode: mode, Threshold: s.cfg.Threshold}
	if req.Threshold != nil {
		p.Threshold = *req.Threshold
	}
	if req.Set1.Text != "" && len(req.Set1.Barcodes) > 0 || req.Set2 != nil && req.Set2.Text != "" && len(req.Set2.Barcodes) > 0 {
		s.metrics.analyses.WithLabelValues(mode.String(), OutcomeBadRequest).Inc()
		fail(c, http.StatusBadRequest, errors.New("give barcodes or text for a set, not both"))
		return
	}

	start := time.Now()
	first, err := s.input(req.Set1, s.cfg.Name1)
	var second *clash.Input
	if err == nil && req.Set2 != nil {
		var in clash.Input
		in, err = s.input(*req.Set2, s.cfg.Name2)
		second = &in
	}
	if err != nil {
		s.metrics.analyses.WithLabelValues(mode.String(), OutcomeTooLarge).Inc()
		fail(c, http.StatusRequestEntityTooLarge, err)
		return
	}
	s.metrics.invalid.Add(float64(first.Summary.Invalid))
	if second != nil {
		s.metrics.invalid.Add(float64(second.Summary.Invalid))
	}

	res, err := clash.DetectContext(c.Request.Context(), p, first, second)
	s.metrics.duration.WithLabelValues(mode.String()).Observe(time.Since(start).Seconds())
	if err != nil {
		status, outcome := statusFor(err)
		s.metrics.analyses.WithLabelValues(mode.String(), outcome).Inc()
		fail(c, status, err)
		return
	}

	outcome := OutcomeOK
	if res.HasClashes() {
		outcome = OutcomeClash
	}
	s.metrics.analyses.WithLabelValues(mode.String(), outcome).Inc()
	s.metrics.clashes.WithLabelValues(mode.String()).Add(float64(len(res.Records)))

	if format == output.FormatJSON {
		c.JSON(http.StatusOK, output.ToAPIReport(res, id))
		return
	}
	c.Header("Content-Type", contentTypes[format])
	c.Status(http.StatusOK)
	if err := writers.Write(format, c.Writer, res, writers.Options{Header: true, RunID: id}); err != nil {
		log.Printf("run %s: write %s response: %v", id, format, err)
	}
}

// input normalizes one request set, enforcing the configured size limit.
func (s *Server) input(r SetRequest, defaultName string) (clash.Input, error) {
	values := r.values()
	if limit := s.cfg.Server.MaxBarcodes; limit > 0 && len(values) > limit {
		return clash.Input{}, fmt.Errorf("set %q has %d lines, limit is %d", nameOr(r.Name, defaultName), len(values), limit)
	}
	set, sum := barcode.NormalizeLines(barcodeio.Inline(values))
	return clash.Input{Label: nameOr(r.Name, defaultName), Set: set, Summary: sum}, nil
}

// requestMode checks an explicit mode against the sets present.
func requestMode(req ClashRequest) (clash.Mode, error) {
	inferred := clash.ModeSingle
	if req.Set2 != nil {
		inferred = clash.ModeCross
	}
	if req.Mode == "" {
		return inferred, nil
	}
	mode, err := clash.ParseMode(req.Mode)
	if err != nil {
		return 0, err
	}
	switch {
	case mode == clash.ModeCross && req.Set2 == nil:
		return 0, errors.New("mode cross needs set2")
	case mode == clash.ModeSingle && req.Set2 != nil:
		return 0, errors.New("mode single takes no set2")
	}
	return mode, nil
}

func nameOr(name, def string) string {
	if n := strings.TrimSpace(name); n != "" {
		return n
	}
	return def
}

func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, clash.ErrEmptyInput):
		return http.StatusUnprocessableEntity, OutcomeEmpty
	case errors.Is(err, clash.ErrConfiguration):
		return http.StatusBadRequest, OutcomeBadRequest
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, OutcomeCancelled
	}
	return http.StatusInternalServerError, OutcomeError
}
