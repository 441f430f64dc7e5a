package report

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"Girder/internal/analysis"
	"Girder/internal/diagram"
	"Girder/internal/table"
)

const DefaultMaxUploadSize = 10 << 20 // 10MB

type Handler struct {
	// MaxUploadSize caps the multipart body; DefaultMaxUploadSize when zero.
	MaxUploadSize int64
}

// Generate accepts a multipart form with a tabular "data_file" (CSV or
// spreadsheet) and an optional "image_file" beam figure, runs the beam
// analysis and streams back the PDF report. All intermediate artifacts
// live in a per-request temp directory that is removed on every exit path.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	maxSize := h.MaxUploadSize
	if maxSize <= 0 {
		maxSize = DefaultMaxUploadSize
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxSize)
	if err := r.ParseMultipartForm(maxSize); err != nil {
		http.Error(w, "File too big", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("data_file")
	if err != nil {
		http.Error(w, "Data file required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	workDir, err := os.MkdirTemp("", "girder-report-")
	if err != nil {
		http.Error(w, "Storage error", http.StatusInternalServerError)
		return
	}
	defer os.RemoveAll(workDir)

	beamImage, err := h.beamImage(r, workDir)
	if err != nil {
		log.Printf("beam figure error: %v", err)
		http.Error(w, "Beam figure error", http.StatusInternalServerError)
		return
	}

	tbl, err := table.Load(file, header.Filename)
	if err != nil {
		http.Error(w, fmt.Sprintf("Unreadable input: %v", err), http.StatusBadRequest)
		return
	}
	tbl.MapColumns()
	if err := tbl.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	mode := tbl.Mode()
	var res analysis.Result
	if mode == analysis.ModePlotOnly {
		res = analysis.FromSamples(tbl.Samples())
	} else {
		res = analysis.Analyze(tbl.Loads())
	}
	log.Printf("beam report: mode=%s rows=%d samples=%d", mode, len(tbl.Rows), len(res.Samples))

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"beam_report.pdf\"")
	if err := Generate(w, tbl, res, mode, beamImage, workDir); err != nil {
		log.Printf("report generation error: %v", err)
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}

// beamImage saves the uploaded beam figure into workDir, or draws the
// default one when the request has none.
func (h *Handler) beamImage(r *http.Request, workDir string) (string, error) {
	img, hdr, err := r.FormFile("image_file")
	if err != nil {
		path := filepath.Join(workDir, "beam.png")
		if err := diagram.SaveDefaultBeam(path); err != nil {
			return "", fmt.Errorf("draw default beam figure: %w", err)
		}
		return path, nil
	}
	defer img.Close()

	path := filepath.Join(workDir, "beam"+filepath.Ext(hdr.Filename))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("save beam figure: %w", err)
	}
	defer f.Close()
	if _, err := io.Copy(f, img); err != nil {
		return "", fmt.Errorf("save beam figure: %w", err)
	}
	return path, nil
}
