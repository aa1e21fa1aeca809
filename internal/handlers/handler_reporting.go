package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/MihaiS-git/MovieRentalsSystem/internal/apperrors"
	portssvc "github.com/MihaiS-git/MovieRentalsSystem/internal/core/ports/services"
	"github.com/MihaiS-git/MovieRentalsSystem/internal/dto"
	"github.com/MihaiS-git/MovieRentalsSystem/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests for rental analytics and reports.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers the analytics and reporting routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/movies/by-rentals", h.rankMoviesByRentals)
		reports.GET("/clients/by-rentals", h.rankClientsByRentals)
		reports.GET("/clients/subscriptions", h.reportClientSubscriptions)
		reports.GET("/clients/:clientID/rentals", h.reportByClient)
		reports.GET("/movies/:movieID/rentals", h.reportByMovie)
	}
}

// reportClientSubscriptions godoc
// @Summary Client subscription report
// @Description Maps each registered client's last name to their newsletter subscription flag
// @Tags reports
// @Produce  json
// @Success 200 {object} map[string]bool
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Router /reports/clients/subscriptions [get]
func (h *reportingHandler) reportClientSubscriptions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	report, err := h.reportingService.ReportClientSubscriptions(c.Request.Context())
	if err != nil {
		logger.Error("Failed to generate client subscription report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate report"})
		return
	}

	c.JSON(http.StatusOK, report)
}

// rankMoviesByRentals godoc
// @Summary Rank movies by rent count
// @Description Returns the movies appearing in the ledger ordered by descending rent count
// @Tags reports
// @Produce  json
// @Success 200 {array} dto.MovieRentalsResponse
// @Failure 404 {object} map[string]string "Ledger references an unknown movie"
// @Failure 500 {object} map[string]string "Failed to rank movies"
// @Router /reports/movies/by-rentals [get]
func (h *reportingHandler) rankMoviesByRentals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	ranked, err := h.reportingService.RankMoviesByRentals(c.Request.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Movie ranking aborted on unresolvable reference", slog.String("error", err.Error()))
			c.JSON(http.StatusNotFound, gin.H{"error": "Ledger references an unknown movie"})
		} else {
			logger.Error("Failed to rank movies", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to rank movies"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToMovieRentalsResponse(ranked))
}

// rankClientsByRentals godoc
// @Summary Rank clients by rented movies
// @Description Returns the clients appearing in the ledger ordered by descending rent count
// @Tags reports
// @Produce  json
// @Success 200 {array} dto.ClientRentalsResponse
// @Failure 404 {object} map[string]string "Ledger references an unknown client"
// @Failure 500 {object} map[string]string "Failed to rank clients"
// @Router /reports/clients/by-rentals [get]
func (h *reportingHandler) rankClientsByRentals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	ranked, err := h.reportingService.RankClientsByRentals(c.Request.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Client ranking aborted on unresolvable reference", slog.String("error", err.Error()))
			c.JSON(http.StatusNotFound, gin.H{"error": "Ledger references an unknown client"})
		} else {
			logger.Error("Failed to rank clients", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to rank clients"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToClientRentalsResponse(ranked))
}

// reportByClient godoc
// @Summary Rent report for a client
// @Description Aggregates the rented movies, rent dates, total charges and rent count of one client
// @Tags reports
// @Produce  json
// @Param   clientID path string true "Client ID"
// @Success 200 {object} dto.ClientRentReportResponse
// @Failure 400 {object} map[string]string "Invalid client ID"
// @Failure 404 {object} map[string]string "Client or referenced movie not found"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Router /reports/clients/{clientID}/rentals [get]
func (h *reportingHandler) reportByClient(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	clientID := c.Param("clientID")

	report, err := h.reportingService.ReportByClient(c.Request.Context(), clientID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error generating client report", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Client report aborted on unresolvable reference", slog.String("client_id", clientID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Client or referenced movie not found"})
		default:
			logger.Error("Failed to generate client report", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate report"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToClientRentReportResponse(report))
}

// reportByMovie godoc
// @Summary Rent report for a movie
// @Description Aggregates the renting clients, rent dates, total charges and rent count of one movie
// @Tags reports
// @Produce  json
// @Param   movieID path string true "Movie ID"
// @Success 200 {object} dto.MovieRentReportResponse
// @Failure 400 {object} map[string]string "Invalid movie ID"
// @Failure 404 {object} map[string]string "Movie or referenced client not found"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Router /reports/movies/{movieID}/rentals [get]
func (h *reportingHandler) reportByMovie(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	movieID := c.Param("movieID")

	report, err := h.reportingService.ReportByMovie(c.Request.Context(), movieID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error generating movie report", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Movie report aborted on unresolvable reference", slog.String("movie_id", movieID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Movie or referenced client not found"})
		default:
			logger.Error("Failed to generate movie report", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate report"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToMovieRentReportResponse(report))
}
