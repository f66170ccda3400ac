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

// saleHandler handles HTTP requests related to sales.
type saleHandler struct {
	saleService portssvc.SaleSvcFacade
}

// newSaleHandler creates a new saleHandler.
func newSaleHandler(ss portssvc.SaleSvcFacade) *saleHandler {
	return &saleHandler{
		saleService: ss,
	}
}

// registerSaleRoutes registers routes related to sales.
func registerSaleRoutes(rg *gin.RouterGroup, saleService portssvc.SaleSvcFacade) {
	h := newSaleHandler(saleService)

	sales := rg.Group("/sales")
	{
		sales.POST("", h.createSale)
		sales.GET("", h.listSales)
		sales.GET("/:id", h.getSaleByID)
		sales.PATCH("/:id/status", h.updateSaleStatus)
		sales.POST("/:id/payments", h.registerPayment)
		sales.GET("/:id/payments", h.listPayments)
		sales.GET("/:id/document", h.getSaleDocument)
	}
}

// createSale godoc
// @Summary Create a new sale
// @Description Computes all line and document figures from the submitted lines and persists the sale as a draft
// @Tags sales
// @Accept  json
// @Produce  json
// @Param   sale body dto.CreateSaleRequest true "Sale details"
// @Success 201 {object} dto.SaleResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create sale"
// @Security BearerAuth
// @Router /sales [post]
func (h *saleHandler) createSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateSale", slog.String("error", err.Error()))
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
	logger.Info("Received request to create sale", slog.String("currency_code", req.CurrencyCode), slog.Int("line_count", len(req.Lines)))

	created, err := h.saleService.CreateSale(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating sale", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create sale in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create sale"})
		}
		return
	}

	logger.Info("Sale created successfully", slog.String("sale_id", created.SaleID), slog.String("sale_number", created.SaleNumber))
	c.JSON(http.StatusCreated, dto.ToSaleResponse(created))
}

// getSaleByID godoc
// @Summary Get a sale by ID
// @Description Retrieves a sale with its computed lines
// @Tags sales
// @Produce  json
// @Param   id path string true "Sale ID"
// @Success 200 {object} dto.SaleResponse
// @Failure 404 {object} map[string]string "Sale not found"
// @Failure 500 {object} map[string]string "Failed to retrieve sale"
// @Security BearerAuth
// @Router /sales/{id} [get]
func (h *saleHandler) getSaleByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	saleID := c.Param("id")

	sale, err := h.saleService.GetSaleByID(c.Request.Context(), saleID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Sale not found"})
		} else {
			logger.Error("Failed to get sale", slog.String("sale_id", saleID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve sale"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToSaleResponse(sale))
}

// listSales godoc
// @Summary List sales
// @Description Retrieves a page of sales ordered by issue date, newest first
// @Tags sales
// @Produce  json
// @Param   limit query int false "Page size (default 20, max 100)"
// @Param   nextToken query string false "Pagination cursor from a previous page"
// @Success 200 {object} dto.ListSalesResponse
// @Failure 400 {object} map[string]string "Invalid pagination token"
// @Failure 500 {object} map[string]string "Failed to list sales"
// @Security BearerAuth
// @Router /sales [get]
func (h *saleHandler) listSales(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	nextToken := c.Query("nextToken")

	sales, newToken, err := h.saleService.ListSales(c.Request.Context(), limit, nextToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to list sales", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list sales"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ListSalesResponse{
		Sales:     dto.ToListSaleResponse(sales),
		NextToken: newToken,
	})
}

// updateSaleStatus godoc
// @Summary Update a sale's status
// @Description Transitions a sale through its lifecycle. Cancelled sales are final.
// @Tags sales
// @Accept  json
// @Produce  json
// @Param   id path string true "Sale ID"
// @Param   status body dto.UpdateSaleStatusRequest true "Target status"
// @Success 200 {object} dto.SaleResponse
// @Failure 400 {object} map[string]string "Invalid transition"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Sale not found"
// @Failure 500 {object} map[string]string "Failed to update sale status"
// @Security BearerAuth
// @Router /sales/{id}/status [patch]
func (h *saleHandler) updateSaleStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	saleID := c.Param("id")

	var req dto.UpdateSaleStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateSaleStatus", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Updater user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("sale_id", saleID), slog.String("updater_user_id", updaterUserID))

	updated, err := h.saleService.UpdateSaleStatus(c.Request.Context(), saleID, req.Status, updaterUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Sale not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update sale status", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update sale status"})
		}
		return
	}

	logger.Info("Sale status updated", slog.String("status", string(updated.Status)))
	c.JSON(http.StatusOK, dto.ToSaleResponse(updated))
}

// registerPayment godoc
// @Summary Register a payment against a sale
// @Description Records a payment and re-derives the sale's amount paid and amount due. Overpayment leaves a negative amount due.
// @Tags sales
// @Accept  json
// @Produce  json
// @Param   id path string true "Sale ID"
// @Param   payment body dto.RegisterPaymentRequest true "Payment details"
// @Success 200 {object} dto.SaleResponse
// @Failure 400 {object} map[string]string "Invalid payment"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Sale not found"
// @Failure 500 {object} map[string]string "Failed to register payment"
// @Security BearerAuth
// @Router /sales/{id}/payments [post]
func (h *saleHandler) registerPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	saleID := c.Param("id")

	var req dto.RegisterPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RegisterPayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("sale_id", saleID), slog.String("creator_user_id", creatorUserID))
	logger.Info("Received request to register payment", slog.String("amount", req.Amount.String()))

	updated, err := h.saleService.RegisterPayment(c.Request.Context(), saleID, req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Sale not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to register payment", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register payment"})
		}
		return
	}

	logger.Info("Payment registered", slog.String("amount_due", updated.AmountDue.String()), slog.String("status", string(updated.Status)))
	c.JSON(http.StatusOK, dto.ToSaleResponse(updated))
}

// listPayments godoc
// @Summary List payments for a sale
// @Description Retrieves the payments recorded against a sale, oldest first
// @Tags sales
// @Produce  json
// @Param   id path string true "Sale ID"
// @Success 200 {array} dto.PaymentResponse
// @Failure 404 {object} map[string]string "Sale not found"
// @Failure 500 {object} map[string]string "Failed to list payments"
// @Security BearerAuth
// @Router /sales/{id}/payments [get]
func (h *saleHandler) listPayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	saleID := c.Param("id")

	payments, err := h.saleService.ListPayments(c.Request.Context(), saleID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Sale not found"})
		} else {
			logger.Error("Failed to list payments", slog.String("sale_id", saleID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list payments"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToListPaymentResponse(payments))
}

// getSaleDocument godoc
// @Summary Get a sale's printable document
// @Description Builds the invoice payload with every monetary value formatted per the sale currency's display rules
// @Tags sales
// @Produce  json
// @Param   id path string true "Sale ID"
// @Success 200 {object} dto.DocumentResponse
// @Failure 404 {object} map[string]string "Sale not found"
// @Failure 500 {object} map[string]string "Failed to build document"
// @Security BearerAuth
// @Router /sales/{id}/document [get]
func (h *saleHandler) getSaleDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	saleID := c.Param("id")

	doc, err := h.saleService.GetSaleDocument(c.Request.Context(), saleID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Sale not found"})
		} else if errors.Is(err, apperrors.ErrInvalidDecimalPlaces) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to build sale document", slog.String("sale_id", saleID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build document"})
		}
		return
	}

	c.JSON(http.StatusOK, doc)
}
