package http

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"bidscli/internal/dataprocessing"
	apierrors "bidscli/internal/errors"
	"bidscli/internal/services"
	"bidscli/internal/validation"
)

// BidsHandler exposes the bid analysis boundary over HTTP. It returns
// structured records and summaries only; charts, colors-as-styles and
// currency formatting are the caller's problem.
type BidsHandler struct {
	service       *services.BidService
	fileValidator *validation.FileValidator
	validate      *validator.Validate
	logger        *slog.Logger
	maxUploadSize int64
}

// NewBidsHandler creates a new bids handler.
func NewBidsHandler(service *services.BidService, fileValidator *validation.FileValidator, maxUploadSize int64, logger *slog.Logger) *BidsHandler {
	return &BidsHandler{
		service:       service,
		fileValidator: fileValidator,
		validate:      validator.New(),
		logger:        logger.With(slog.String("handler", "bids")),
		maxUploadSize: maxUploadSize,
	}
}

// Routes returns the bid analysis routes.
func (h *BidsHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Post("/workbook", h.UploadWorkbook)
	r.Get("/overview", h.GetOverview)
	r.Get("/routes", h.GetRouteSummaries)
	r.Get("/routes/detail", h.GetRouteDetail)
	r.Get("/carriers", h.GetCarrierSummaries)
	r.Get("/carriers/top", h.GetTopCarriers)
	r.Get("/origins", h.GetOrigins)
	r.Get("/origins/{origin}/destinations", h.GetDestinations)
	r.Get("/recommendation", h.GetRecommendation)

	return r
}

// routeQuery carries the origin/destination pair for route-scoped queries.
type routeQuery struct {
	Origin      string `validate:"required"`
	Destination string `validate:"required"`
}

// UploadWorkbook handles POST /workbook. It ingests the uploaded bid sheet
// and makes it the active data set.
func (h *BidsHandler) UploadWorkbook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		apierrors.WriteError(w, apierrors.InvalidRequestWithError(err))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		apierrors.WriteError(w, apierrors.ErrValidation("file", "Workbook file is required"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, h.maxUploadSize+1))
	if err != nil {
		apierrors.WriteError(w, apierrors.InvalidRequestWithError(err))
		return
	}

	if err := h.fileValidator.ValidateWorkbook(header.Filename, data); err != nil {
		apierrors.WriteError(w, apierrors.ErrValidation("file", err.Error()))
		return
	}

	set, err := h.service.LoadWorkbook(ctx, data)
	if err != nil {
		if errors.Is(err, dataprocessing.ErrSheetNotFound) {
			apierrors.WriteError(w, apierrors.SheetNotFoundError(err))
			return
		}
		h.logger.ErrorContext(ctx, "workbook ingestion failed",
			slog.String("filename", header.Filename),
			slog.String("error", err.Error()))
		apierrors.WriteError(w, apierrors.IngestFailedError(err))
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, map[string]interface{}{
		"success":     true,
		"source_hash": set.SourceHash,
		"records":     len(set.Records),
	})
}

// GetOverview handles GET /overview.
func (h *BidsHandler) GetOverview(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Overview(r.Context())
	if err != nil {
		apierrors.WriteError(w, apierrors.ErrNoDataLoaded)
		return
	}
	render.JSON(w, r, stats)
}

// GetRouteSummaries handles GET /routes.
func (h *BidsHandler) GetRouteSummaries(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.service.RouteSummaries(r.Context())
	if err != nil {
		apierrors.WriteError(w, apierrors.ErrNoDataLoaded)
		return
	}
	render.JSON(w, r, summaries)
}

// GetCarrierSummaries handles GET /carriers.
func (h *BidsHandler) GetCarrierSummaries(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.service.CarrierSummaries(r.Context())
	if err != nil {
		apierrors.WriteError(w, apierrors.ErrNoDataLoaded)
		return
	}
	render.JSON(w, r, summaries)
}

// GetTopCarriers handles GET /carriers/top?n=10.
func (h *BidsHandler) GetTopCarriers(w http.ResponseWriter, r *http.Request) {
	n := 10
	if raw := r.URL.Query().Get("n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			apierrors.WriteError(w, apierrors.ErrValidation("n", "must be a positive integer"))
			return
		}
		n = parsed
	}

	summaries, err := h.service.TopCarriers(r.Context(), n)
	if err != nil {
		apierrors.WriteError(w, apierrors.ErrNoDataLoaded)
		return
	}
	render.JSON(w, r, summaries)
}

// GetOrigins handles GET /origins.
func (h *BidsHandler) GetOrigins(w http.ResponseWriter, r *http.Request) {
	origins, err := h.service.Origins(r.Context())
	if err != nil {
		apierrors.WriteError(w, apierrors.ErrNoDataLoaded)
		return
	}
	render.JSON(w, r, origins)
}

// GetDestinations handles GET /origins/{origin}/destinations. An origin
// with no bids yields an empty list, not an error.
func (h *BidsHandler) GetDestinations(w http.ResponseWriter, r *http.Request) {
	origin := chi.URLParam(r, "origin")
	if origin == "" {
		apierrors.WriteError(w, apierrors.ErrValidation("origin", "Origin airport is required"))
		return
	}

	destinations, err := h.service.Destinations(r.Context(), origin)
	if err != nil {
		apierrors.WriteError(w, apierrors.ErrNoDataLoaded)
		return
	}
	render.JSON(w, r, destinations)
}

// GetRouteDetail handles GET /routes/detail?origin=JFK&destination=LHR.
func (h *BidsHandler) GetRouteDetail(w http.ResponseWriter, r *http.Request) {
	q, ok := h.routeQueryFrom(w, r)
	if !ok {
		return
	}

	bids, err := h.service.RouteDetail(r.Context(), q.Origin, q.Destination)
	if err != nil {
		apierrors.WriteError(w, apierrors.ErrNoDataLoaded)
		return
	}
	render.JSON(w, r, bids)
}

// GetRecommendation handles GET /recommendation?origin=JFK&destination=LHR.
// A route nobody serves returns an empty-result payload with 200, a state
// the UI renders as "no carriers serve this route".
func (h *BidsHandler) GetRecommendation(w http.ResponseWriter, r *http.Request) {
	q, ok := h.routeQueryFrom(w, r)
	if !ok {
		return
	}

	rec, found, err := h.service.Recommend(r.Context(), q.Origin, q.Destination)
	if err != nil {
		apierrors.WriteError(w, apierrors.ErrNoDataLoaded)
		return
	}
	if !found {
		render.JSON(w, r, map[string]interface{}{
			"found": false,
		})
		return
	}
	render.JSON(w, r, map[string]interface{}{
		"found":          true,
		"recommendation": rec,
	})
}

func (h *BidsHandler) routeQueryFrom(w http.ResponseWriter, r *http.Request) (routeQuery, bool) {
	q := routeQuery{
		Origin:      r.URL.Query().Get("origin"),
		Destination: r.URL.Query().Get("destination"),
	}
	if err := h.validate.Struct(q); err != nil {
		apierrors.WriteError(w, apierrors.ErrValidation("origin/destination", "Both origin and destination are required"))
		return routeQuery{}, false
	}
	return q, true
}
