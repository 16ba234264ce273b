package http

import (
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"ethocli/internal/config"
	"ethocli/internal/dataprocessing"
	apierrors "ethocli/internal/errors"
	"ethocli/internal/validation"
	"ethocli/pkg/contracts/domain"
)

// AnalysisHandler handles observation analysis HTTP requests
type AnalysisHandler struct {
	service       AnalysisServiceInterface
	cfg           config.AnalysisConfig
	validate      *validator.Validate
	fileValidator *validation.FileValidator
	logger        *slog.Logger
	errorHandler  *apierrors.ErrorHandler
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(service AnalysisServiceInterface, cfg config.AnalysisConfig, logger *slog.Logger, errorHandler *apierrors.ErrorHandler) *AnalysisHandler {
	return &AnalysisHandler{
		service:       service,
		cfg:           cfg,
		validate:      validator.New(),
		fileValidator: validation.NewFileValidator(logger),
		logger:        logger.With(slog.String("handler", "analysis")),
		errorHandler:  errorHandler,
	}
}

// Routes returns the analysis routes
func (h *AnalysisHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Post("/", h.AnalyzeUpload)    // multipart observation files
	r.Post("/rows", h.AnalyzeRows)  // pre-parsed rows as JSON

	return r
}

// AnalyzeUpload handles POST /api/analysis. It accepts one or more
// observation files (xlsx, xlsm, xls, csv) as multipart form fields
// named "files" and returns the analysis report.
func (h *AnalysisHandler) AnalyzeUpload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxUploadBytes)
	if err := r.ParseMultipartForm(h.cfg.MaxUploadBytes); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			h.errorHandler.HandleError(w, r, apierrors.ErrPayloadTooLarge)
			return
		}
		h.errorHandler.HandleError(w, r, apierrors.InvalidRequestWithError(err))
		return
	}
	defer r.MultipartForm.RemoveAll()

	uploads := r.MultipartForm.File["files"]
	if len(uploads) == 0 {
		h.errorHandler.HandleError(w, r, apierrors.ErrValidation("files", "At least one observation file is required"))
		return
	}
	if len(uploads) > h.cfg.MaxUploadFiles {
		h.errorHandler.HandleError(w, r, apierrors.ErrValidation("files",
			"Too many files in one request"))
		return
	}

	sets := make([]domain.PerFileRowSet, 0, len(uploads))
	for _, header := range uploads {
		set, err := h.parseUpload(header)
		if err != nil {
			h.errorHandler.HandleError(w, r, apierrors.FileRejected(header.Filename, err))
			return
		}
		sets = append(sets, set)
	}

	h.logger.InfoContext(ctx, "analysis upload accepted",
		slog.Int("files", len(sets)))

	render.JSON(w, r, h.service.Analyze(ctx, sets))
}

// parseUpload spools one multipart file to disk and parses it. The
// parsers need a seekable file, so streaming is not an option.
func (h *AnalysisHandler) parseUpload(header *multipart.FileHeader) (domain.PerFileRowSet, error) {
	if err := h.fileValidator.ValidateObservationFileName(header.Filename); err != nil {
		return domain.PerFileRowSet{}, err
	}

	src, err := header.Open()
	if err != nil {
		return domain.PerFileRowSet{}, err
	}
	defer src.Close()

	tmp, err := os.CreateTemp("", "upload-*"+filepath.Ext(header.Filename))
	if err != nil {
		return domain.PerFileRowSet{}, err
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, src); err != nil {
		tmp.Close()
		return domain.PerFileRowSet{}, err
	}
	if err := tmp.Close(); err != nil {
		return domain.PerFileRowSet{}, err
	}

	set, err := dataprocessing.ParseObservationFile(tmp.Name())
	if err != nil {
		return domain.PerFileRowSet{}, err
	}
	// The temp file name is meaningless to the caller.
	set.FileName = filepath.Base(header.Filename)
	return set, nil
}

// rowsRequest is the JSON body of POST /api/analysis/rows: rows that a
// client already extracted, keyed by source file name. Cell values may
// be null, numbers, or strings, matching the spreadsheet cell model.
type rowsRequest struct {
	Files []rowsFile `json:"files" validate:"required,min=1,dive"`
}

type rowsFile struct {
	FileName string          `json:"file_name" validate:"required"`
	Rows     [][]interface{} `json:"rows" validate:"required"`
}

// Bind implements render.Binder
func (req *rowsRequest) Bind(r *http.Request) error {
	return nil
}

// AnalyzeRows handles POST /api/analysis/rows
func (h *AnalysisHandler) AnalyzeRows(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req rowsRequest
	if err := render.Bind(r, &req); err != nil {
		h.errorHandler.HandleError(w, r, apierrors.InvalidRequestWithError(err))
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		h.errorHandler.HandleError(w, r, apierrors.InvalidRequestWithError(err))
		return
	}

	sets := make([]domain.PerFileRowSet, 0, len(req.Files))
	for _, file := range req.Files {
		rows := make([]domain.Row, 0, len(file.Rows))
		for _, raw := range file.Rows {
			row := make(domain.Row, len(raw))
			for i, cell := range raw {
				row[i] = cell
			}
			rows = append(rows, row)
		}
		sets = append(sets, domain.PerFileRowSet{FileName: file.FileName, Rows: rows})
	}

	h.logger.InfoContext(ctx, "analysis rows accepted",
		slog.Int("files", len(sets)))

	render.JSON(w, r, h.service.Analyze(ctx, sets))
}
