package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/MihaiS-git/MovieRentalsSystem/internal/apperrors"
	"github.com/MihaiS-git/MovieRentalsSystem/internal/core/domain"
	portssvc "github.com/MihaiS-git/MovieRentalsSystem/internal/core/ports/services"
	"github.com/MihaiS-git/MovieRentalsSystem/internal/dto"
	"github.com/MihaiS-git/MovieRentalsSystem/internal/middleware"
	"github.com/gin-gonic/gin"
)

// rentalHandler handles HTTP requests related to the rental ledger.
type rentalHandler struct {
	rentalService portssvc.RentalSvcFacade
}

// newRentalHandler creates a new rentalHandler.
func newRentalHandler(rs portssvc.RentalSvcFacade) *rentalHandler {
	return &rentalHandler{rentalService: rs}
}

// registerRentalRoutes registers routes related to the rental ledger.
func registerRentalRoutes(rg *gin.RouterGroup, rentalService portssvc.RentalSvcFacade) {
	h := newRentalHandler(rentalService)

	rentals := rg.Group("/rentals")
	{
		rentals.POST("", h.rentMovie)
		rentals.GET("", h.listRentals)
		rentals.GET("/:rentalID", h.getRental)
		rentals.PUT("/:rentalID", h.updateRental)
		rentals.DELETE("/:rentalID", h.deleteRental)
	}
}

// rentMovie godoc
// @Summary Rent a movie
// @Description Creates a new rental: the charge is the movie's rental price, the due date is one day after the rental date
// @Tags rentals
// @Accept  json
// @Produce  json
// @Param   rental body dto.RentMovieRequest true "Client and movie identifiers"
// @Success 201 {object} dto.RentalResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Client or movie not found"
// @Failure 500 {object} map[string]string "Failed to create rental"
// @Router /rentals [post]
func (h *rentalHandler) rentMovie(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RentMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RentMovie", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	rental, err := h.rentalService.RentMovie(c.Request.Context(), req.ClientID, req.MovieID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error renting movie", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Client or movie not found for rental",
				slog.String("client_id", req.ClientID),
				slog.String("movie_id", req.MovieID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Client or movie not found"})
		default:
			logger.Error("Failed to rent movie in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create rental"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToRentalResponse(rental))
}

// getRental godoc
// @Summary Get a rental by ID
// @Description Retrieves a single rental ledger entry
// @Tags rentals
// @Produce  json
// @Param   rentalID path string true "Rental ID"
// @Success 200 {object} dto.RentalResponse
// @Failure 404 {object} map[string]string "Rental not found"
// @Failure 500 {object} map[string]string "Failed to retrieve rental"
// @Router /rentals/{rentalID} [get]
func (h *rentalHandler) getRental(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	rentalID := c.Param("rentalID")

	rental, err := h.rentalService.GetRentalByID(c.Request.Context(), rentalID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Rental not found", slog.String("rental_id", rentalID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Rental not found"})
		} else {
			logger.Error("Failed to get rental from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve rental"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToRentalResponse(rental))
}

// listRentals godoc
// @Summary List all rentals
// @Description Retrieves the full rental ledger in insertion order
// @Tags rentals
// @Produce  json
// @Success 200 {array} dto.RentalResponse
// @Failure 500 {object} map[string]string "Failed to list rentals"
// @Router /rentals [get]
func (h *rentalHandler) listRentals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rentals, err := h.rentalService.ListRentals(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list rentals from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list rentals"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListRentalResponse(rentals))
}

// updateRental godoc
// @Summary Update a rental
// @Description Fully replaces a ledger entry; the due date is derived from the rental date
// @Tags rentals
// @Accept  json
// @Produce  json
// @Param   rentalID path string true "Rental ID"
// @Param   rental body dto.UpdateRentalRequest true "Rental details"
// @Success 200 {object} dto.RentalResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Rental not found"
// @Failure 500 {object} map[string]string "Failed to update rental"
// @Router /rentals/{rentalID} [put]
func (h *rentalHandler) updateRental(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	rentalID := c.Param("rentalID")

	var req dto.UpdateRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateRental", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	rental, err := h.rentalService.UpdateRental(c.Request.Context(), domain.Rental{
		RentalID:     rentalID,
		ClientID:     req.ClientID,
		MovieID:      req.MovieID,
		RentalCharge: req.RentalCharge,
		RentalDate:   req.RentalDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error updating rental", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Rental not found for update", slog.String("rental_id", rentalID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Rental not found"})
		default:
			logger.Error("Failed to update rental in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update rental"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToRentalResponse(rental))
}

// deleteRental godoc
// @Summary Delete a rental
// @Description Removes a ledger entry and returns the removed record
// @Tags rentals
// @Produce  json
// @Param   rentalID path string true "Rental ID"
// @Success 200 {object} dto.RentalResponse
// @Failure 404 {object} map[string]string "Rental not found"
// @Failure 500 {object} map[string]string "Failed to delete rental"
// @Router /rentals/{rentalID} [delete]
func (h *rentalHandler) deleteRental(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	rentalID := c.Param("rentalID")

	rental, err := h.rentalService.DeleteRental(c.Request.Context(), rentalID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Rental not found for delete", slog.String("rental_id", rentalID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Rental not found"})
		} else {
			logger.Error("Failed to delete rental in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete rental"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToRentalResponse(rental))
}
