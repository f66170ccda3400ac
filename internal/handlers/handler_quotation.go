package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/jefremassingue/sales-plat-backend/internal/apperrors"
	portssvc "github.com/jefremassingue/sales-plat-backend/internal/core/ports/services"
	"github.com/jefremassingue/sales-plat-backend/internal/dto"
	"github.com/jefremassingue/sales-plat-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// quotationHandler handles HTTP requests related to quotations.
type quotationHandler struct {
	quotationService portssvc.QuotationSvcFacade
}

// newQuotationHandler creates a new quotationHandler.
func newQuotationHandler(qs portssvc.QuotationSvcFacade) *quotationHandler {
	return &quotationHandler{
		quotationService: qs,
	}
}

// registerQuotationRoutes registers routes related to quotations.
func registerQuotationRoutes(rg *gin.RouterGroup, quotationService portssvc.QuotationSvcFacade) {
	h := newQuotationHandler(quotationService)

	quotations := rg.Group("/quotations")
	{
		quotations.POST("", h.createQuotation)
		quotations.GET("", h.listQuotations)
		quotations.GET("/:id", h.getQuotationByID)
		quotations.PATCH("/:id/status", h.updateQuotationStatus)
		quotations.POST("/:id/convert", h.convertToSale)
		quotations.GET("/:id/document", h.getQuotationDocument)
	}
}

// createQuotation godoc
// @Summary Create a new quotation
// @Description Computes all line and document figures from the submitted lines and persists the quotation as a draft
// @Tags quotations
// @Accept  json
// @Produce  json
// @Param   quotation body dto.CreateQuotationRequest true "Quotation details"
// @Success 201 {object} dto.QuotationResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create quotation"
// @Security BearerAuth
// @Router /quotations [post]
func (h *quotationHandler) createQuotation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateQuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateQuotation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("creator_user_id", creatorUserID))
	logger.Info("Received request to create quotation", slog.String("currency_code", req.CurrencyCode), slog.Int("line_count", len(req.Lines)))

	created, err := h.quotationService.CreateQuotation(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating quotation", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create quotation in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create quotation"})
		}
		return
	}

	logger.Info("Quotation created successfully", slog.String("quotation_id", created.QuotationID), slog.String("quotation_number", created.QuotationNumber))
	c.JSON(http.StatusCreated, dto.ToQuotationResponse(created))
}

// getQuotationByID godoc
// @Summary Get a quotation by ID
// @Description Retrieves a quotation with its computed lines
// @Tags quotations
// @Produce  json
// @Param   id path string true "Quotation ID"
// @Success 200 {object} dto.QuotationResponse
// @Failure 404 {object} map[string]string "Quotation not found"
// @Failure 500 {object} map[string]string "Failed to retrieve quotation"
// @Security BearerAuth
// @Router /quotations/{id} [get]
func (h *quotationHandler) getQuotationByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	quotationID := c.Param("id")

	quotation, err := h.quotationService.GetQuotationByID(c.Request.Context(), quotationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Quotation not found"})
		} else {
			logger.Error("Failed to get quotation", slog.String("quotation_id", quotationID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve quotation"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToQuotationResponse(quotation))
}

// listQuotations godoc
// @Summary List quotations
// @Description Retrieves a page of quotations, newest first
// @Tags quotations
// @Produce  json
// @Param   limit query int false "Page size (default 20, max 100)"
// @Param   nextToken query string false "Pagination cursor from a previous page"
// @Success 200 {object} dto.ListQuotationsResponse
// @Failure 400 {object} map[string]string "Invalid pagination token"
// @Failure 500 {object} map[string]string "Failed to list quotations"
// @Security BearerAuth
// @Router /quotations [get]
func (h *quotationHandler) listQuotations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	nextToken := c.Query("nextToken")

	quotations, newToken, err := h.quotationService.ListQuotations(c.Request.Context(), limit, nextToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to list quotations", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list quotations"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ListQuotationsResponse{
		Quotations: dto.ToListQuotationResponse(quotations),
		NextToken:  newToken,
	})
}

// updateQuotationStatus godoc
// @Summary Update a quotation's status
// @Description Transitions a quotation through its lifecycle. The CONVERTED status can only be reached through the convert operation.
// @Tags quotations
// @Accept  json
// @Produce  json
// @Param   id path string true "Quotation ID"
// @Param   status body dto.UpdateQuotationStatusRequest true "Target status"
// @Success 200 {object} dto.QuotationResponse
// @Failure 400 {object} map[string]string "Invalid transition"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Quotation not found"
// @Failure 500 {object} map[string]string "Failed to update quotation status"
// @Security BearerAuth
// @Router /quotations/{id}/status [patch]
func (h *quotationHandler) updateQuotationStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	quotationID := c.Param("id")

	var req dto.UpdateQuotationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateQuotationStatus", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Updater user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("quotation_id", quotationID), slog.String("updater_user_id", updaterUserID))

	updated, err := h.quotationService.UpdateQuotationStatus(c.Request.Context(), quotationID, req.Status, updaterUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Quotation not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update quotation status", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update quotation status"})
		}
		return
	}

	logger.Info("Quotation status updated", slog.String("status", string(updated.Status)))
	c.JSON(http.StatusOK, dto.ToQuotationResponse(updated))
}

// convertToSale godoc
// @Summary Convert a quotation to a sale
// @Description Re-computes the quotation's figures into a new draft sale and marks the quotation converted, atomically. A quotation can only be converted once.
// @Tags quotations
// @Produce  json
// @Param   id path string true "Quotation ID"
// @Success 201 {object} dto.SaleResponse
// @Failure 400 {object} map[string]string "Quotation cannot be converted"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Quotation not found"
// @Failure 409 {object} map[string]string "Quotation already converted"
// @Failure 500 {object} map[string]string "Failed to convert quotation"
// @Security BearerAuth
// @Router /quotations/{id}/convert [post]
func (h *quotationHandler) convertToSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	quotationID := c.Param("id")

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("quotation_id", quotationID), slog.String("creator_user_id", creatorUserID))
	logger.Info("Received request to convert quotation to sale")

	sale, err := h.quotationService.ConvertToSale(c.Request.Context(), quotationID, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Quotation not found"})
		} else if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "Quotation has already been converted"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to convert quotation", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to convert quotation"})
		}
		return
	}

	logger.Info("Quotation converted to sale", slog.String("sale_id", sale.SaleID), slog.String("sale_number", sale.SaleNumber))
	c.JSON(http.StatusCreated, dto.ToSaleResponse(sale))
}

// getQuotationDocument godoc
// @Summary Get a quotation's printable document
// @Description Builds the quotation payload with every monetary value formatted per the quotation currency's display rules
// @Tags quotations
// @Produce  json
// @Param   id path string true "Quotation ID"
// @Success 200 {object} dto.DocumentResponse
// @Failure 404 {object} map[string]string "Quotation not found"
// @Failure 500 {object} map[string]string "Failed to build document"
// @Security BearerAuth
// @Router /quotations/{id}/document [get]
func (h *quotationHandler) getQuotationDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	quotationID := c.Param("id")

	doc, err := h.quotationService.GetQuotationDocument(c.Request.Context(), quotationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Quotation not found"})
		} else if errors.Is(err, apperrors.ErrInvalidDecimalPlaces) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to build quotation document", slog.String("quotation_id", quotationID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build document"})
		}
		return
	}

	c.JSON(http.StatusOK, doc)
}
