package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/agbru/anybase/internal/config"
	"github.com/agbru/anybase/internal/service"
)

// handleHealth responds to health check requests.
// It returns a 200 OK status with a JSON payload indicating the service is
// healthy.
//
// Parameters:
//   - w: The HTTP response writer.
//   - r: The HTTP request.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	response := map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().Unix(),
	}

	s.writeJSONResponse(w, http.StatusOK, response)
}

// handleTables returns the preset digit tables accepted by name in the
// convert endpoints.
//
// Parameters:
//   - w: The HTTP response writer.
//   - r: The HTTP request.
func (s *Server) handleTables(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	names := config.PresetNames()
	tables := make([]TableInfo, 0, len(names))
	for _, name := range names {
		table, _ := config.PresetTable(name)
		tables = append(tables, TableInfo{
			Name:  name,
			Table: table,
			Base:  utf8.RuneCountInString(table),
		})
	}

	s.writeJSONResponse(w, http.StatusOK, map[string]any{"tables": tables})
}

// handleConvert processes single conversion requests.
// It parses the query parameters 'input', 'src' and 'dst', executes the
// conversion, and returns the result in JSON format.
//
// Parameters:
//   - w: The HTTP response writer.
//   - r: The HTTP request.
func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	input, srcTable, dstTable, err := s.parseConvertParams(r)
	if err != nil {
		var parseErr ConvertParseError
		if errors.As(err, &parseErr) {
			s.writeErrorResponse(w, parseErr.StatusCode, parseErr.Message)
		} else {
			s.writeErrorResponse(w, http.StatusBadRequest, err.Error())
		}
		return
	}

	svc, err := s.newService(srcTable, dstTable, s.securityConfig.MaxInputLen)
	if err != nil {
		// Table validation failure: the request named an unusable table.
		s.writeErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := s.requestContext(r)
	defer cancel()

	start := time.Now()
	result, err := svc.Convert(ctx, input)
	duration := time.Since(start)
	s.metrics.ObserveConversion(duration, err)

	if errors.Is(err, service.ErrMaxInputExceeded) {
		s.writeErrorResponse(w, http.StatusBadRequest,
			fmt.Sprintf("Input exceeds maximum allowed length (%d characters). This limit prevents resource exhaustion.", s.securityConfig.MaxInputLen))
		return
	}

	resp := ConvertResponse{
		Input:    input,
		SrcBase:  utf8.RuneCountInString(srcTable),
		DstBase:  utf8.RuneCountInString(dstTable),
		Duration: duration.String(),
	}
	if err != nil {
		resp.Error = err.Error()
	} else {
		resp.Result = result
	}
	s.writeJSONResponse(w, http.StatusOK, resp)
}

// handleConvertBatch processes batch conversion requests: a JSON body with a
// list of inputs sharing one pair of tables.
//
// Parameters:
//   - w: The HTTP response writer.
//   - r: The HTTP request.
func (s *Server) handleConvertBatch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req BatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if len(req.Inputs) == 0 {
		s.writeErrorResponse(w, http.StatusBadRequest, "Missing 'inputs'")
		return
	}
	if max := s.securityConfig.MaxBatchSize; max > 0 && len(req.Inputs) > max {
		s.writeErrorResponse(w, http.StatusBadRequest,
			fmt.Sprintf("Batch exceeds maximum size (%d inputs)", max))
		return
	}

	srcTable := s.resolveTable(req.Src, s.cfg.SrcTable)
	dstTable := s.resolveTable(req.Dst, s.cfg.DstTable)

	svc, err := s.newService(srcTable, dstTable, s.securityConfig.MaxInputLen)
	if err != nil {
		s.writeErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := s.requestContext(r)
	defer cancel()

	start := time.Now()
	results, err := svc.ConvertBatch(ctx, req.Inputs)
	duration := time.Since(start)
	s.metrics.ObserveConversion(duration, err)

	resp := BatchResponse{
		Count:    len(req.Inputs),
		Duration: duration.String(),
	}
	if err != nil {
		resp.Error = err.Error()
	} else {
		resp.Results = results
	}
	s.writeJSONResponse(w, http.StatusOK, resp)
}

// parseConvertParams extracts and validates the conversion parameters from
// the request. Table parameters accept preset names or literal tables and
// fall back to the server's configured defaults.
//
// Parameters:
//   - r: The HTTP request containing query parameters.
//
// Returns:
//   - input: The digit string to convert.
//   - srcTable: The resolved source table.
//   - dstTable: The resolved destination table.
//   - err: A ConvertParseError if validation fails, nil otherwise.
func (s *Server) parseConvertParams(r *http.Request) (input, srcTable, dstTable string, err error) {
	query := r.URL.Query()

	if !query.Has("input") {
		return "", "", "", ConvertParseError{
			Message:    "Missing 'input' parameter",
			StatusCode: http.StatusBadRequest,
		}
	}
	input = query.Get("input")

	srcTable = s.resolveTable(query.Get("src"), s.cfg.SrcTable)
	dstTable = s.resolveTable(query.Get("dst"), s.cfg.DstTable)
	return input, srcTable, dstTable, nil
}

// resolveTable maps a request table parameter to a digit table: empty falls
// back to the server default, preset names resolve to their tables, anything
// else is a literal table.
func (s *Server) resolveTable(param, fallback string) string {
	if param == "" {
		return fallback
	}
	return config.ResolveTable(param)
}

// requestContext derives the per-request execution context with the
// configured request timeout applied.
func (s *Server) requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), s.timeouts.RequestTimeout)
}

// writeJSONResponse helper function to write a JSON response with the correct
// content type.
//
// Parameters:
//   - w: The HTTP response writer.
//   - statusCode: The HTTP status code to write.
//   - data: The data to be encoded as JSON.
func (s *Server) writeJSONResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("encoding JSON response", err)
	}
}

// writeErrorResponse helper function to write a standardized error response.
//
// Parameters:
//   - w: The HTTP response writer.
//   - statusCode: The HTTP status code to write.
//   - message: The error message to be included in the response body.
func (s *Server) writeErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	errResp := ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	}
	s.writeJSONResponse(w, statusCode, errResp)
}
