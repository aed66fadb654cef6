package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"mcqgen/internal/export"
	"mcqgen/internal/generate"
	"mcqgen/internal/mcq"
	"mcqgen/internal/parser"
	"mcqgen/internal/pipeline"
)

// Route error messages. The two spreadsheet routes pin these strings as
// their contract.
const (
	msgNoPDF            = "No PDF file provided."
	msgNoAPIKey         = "API key is required."
	msgExtractionFailed = "Could not extract text from PDF."
	msgNoTextOrKey      = "Text input and API key are required."
	msgNoData           = "No data was generated from the provided text."
	msgInvalidJSON      = "Invalid JSON body."
	msgNoContent        = "No text or PDF content provided."
)

// handleGeneratePDF serves POST /api/generate-mcqs-pdf: multipart upload,
// XLSX attachment response.
func (s *Server) handleGeneratePDF(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, msgNoPDF, http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("pdf")
	if err != nil {
		jsonError(w, msgNoPDF, http.StatusBadRequest)
		return
	}
	defer file.Close()

	apiKey := r.FormValue("apiKey")
	if apiKey == "" {
		jsonError(w, msgNoAPIKey, http.StatusBadRequest)
		return
	}
	numOptions := s.numOptions(r.FormValue("numOptions"))

	text, err := s.extractUpload(file, header.Filename)
	if err != nil {
		s.log.Error("extraction failed", "filename", header.Filename, "error", err)
		jsonError(w, msgExtractionFailed, http.StatusInternalServerError)
		return
	}

	s.respondWorkbook(r.Context(), w, text, apiKey, numOptions)
}

// handleGenerateText serves POST /api/generate-mcqs-text: JSON body,
// XLSX attachment response.
func (s *Server) handleGenerateText(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text       string `json:"text"`
		APIKey     string `json:"apiKey"`
		NumOptions int    `json:"numOptions"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, msgNoTextOrKey, http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Text) == "" || req.APIKey == "" {
		jsonError(w, msgNoTextOrKey, http.StatusBadRequest)
		return
	}

	numOptions := mcq.ClampOptions(req.NumOptions, s.cfg.DefaultNumOptions)
	s.respondWorkbook(r.Context(), w, req.Text, req.APIKey, numOptions)
}

// handleGenerate serves POST /api/generate-mcqs: accepts multipart or
// JSON and returns the raw record sequence as a JSON array.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var (
		text       string
		upload     io.Reader
		filename   string
		apiKey     string
		numOptions int
	)

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024)
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
			return
		}
		defer r.MultipartForm.RemoveAll()

		apiKey = r.FormValue("apiKey")
		numOptions = s.numOptions(r.FormValue("numOptions"))
		if r.FormValue("source") == "pdf" {
			file, header, err := r.FormFile("pdf")
			if err == nil {
				defer file.Close()
				upload = file
				filename = header.Filename
			}
		} else {
			text = r.FormValue("text")
		}
	} else {
		var req struct {
			Text       string `json:"text"`
			NumOptions int    `json:"numOptions"`
			APIKey     string `json:"apiKey"`
			Source     string `json:"source"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			jsonError(w, msgInvalidJSON, http.StatusBadRequest)
			return
		}
		text = req.Text
		apiKey = req.APIKey
		numOptions = mcq.ClampOptions(req.NumOptions, s.cfg.DefaultNumOptions)
	}

	if apiKey == "" {
		jsonError(w, msgNoAPIKey, http.StatusUnauthorized)
		return
	}
	if upload == nil && strings.TrimSpace(text) == "" {
		jsonError(w, msgNoContent, http.StatusBadRequest)
		return
	}

	if upload != nil {
		extracted, err := s.extractUpload(upload, filename)
		if err != nil {
			s.log.Error("extraction failed", "filename", filename, "error", err)
			jsonError(w, err.Error(), http.StatusInternalServerError)
			return
		}
		text = extracted
	}

	records, err := s.run(r.Context(), text, apiKey, numOptions)
	if err != nil {
		jsonError(w, userMessage(err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(records)
}

func (s *Server) handleLLMStats(w http.ResponseWriter, r *http.Request) {
	if s.stats == nil {
		jsonError(w, "llm stats unavailable", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"model": s.cfg.GeminiModel,
		"stats": s.stats.Snapshot(),
	})
}

// respondWorkbook runs the pipeline and writes the XLSX attachment.
func (s *Server) respondWorkbook(ctx context.Context, w http.ResponseWriter, text, apiKey string, numOptions int) {
	records, err := s.run(ctx, text, apiKey, numOptions)
	if err != nil {
		jsonError(w, userMessage(err), http.StatusInternalServerError)
		return
	}

	book, err := export.Workbook(records, numOptions)
	if err != nil {
		jsonError(w, fmt.Sprintf("An error occurred while creating the Excel file: %s", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename))
	w.Write(book)
}

// run executes the chunk/generate/aggregate pipeline with a generator
// bound to the caller's API key.
func (s *Server) run(ctx context.Context, text, apiKey string, numOptions int) ([]mcq.Record, error) {
	gen := s.newGenerator(apiKey)
	return pipeline.Run(ctx, s.log, gen, text, pipeline.Options{
		NumOptions: numOptions,
		ChunkSize:  s.cfg.ChunkSize,
		Retry: generate.RetryPolicy{
			MaxAttempts: s.cfg.GenAttempts,
			Backoff:     generate.JitterBackoff,
		},
	})
}

// extractUpload parses an uploaded document and returns its plain text.
// Unknown extensions are treated as PDF, matching the upload routes'
// contract. In strict mode a document that yields no text is an error.
func (s *Server) extractUpload(f io.Reader, filename string) (string, error) {
	filename = sanitizeFilename(filename)

	p, err := parser.ForFile(filename)
	if err != nil {
		p = &parser.PDFParser{}
	}
	if pp, ok := p.(*parser.PDFParser); ok {
		pp.FallbackPdftotext = s.cfg.PDFFallbackPdftotext
	}

	doc, err := p.Parse(f, filename)
	if err != nil {
		return "", err
	}

	text := doc.PlainText()
	if s.cfg.ExtractionStrict && strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("no extractable text in %s", filename)
	}
	return text, nil
}

func (s *Server) numOptions(v string) int {
	n, err := strconv.Atoi(v)
	if err != nil {
		return s.cfg.DefaultNumOptions
	}
	return mcq.ClampOptions(n, s.cfg.DefaultNumOptions)
}

func userMessage(err error) string {
	if errors.Is(err, pipeline.ErrNoData) {
		return msgNoData
	}
	return err.Error()
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func sanitizeFilename(name string) string {
	// Strip path components, keep only the base name.
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}
