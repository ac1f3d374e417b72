package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SamuelRomaoF/financas-bot/internal/apperrors"
	portssvc "github.com/SamuelRomaoF/financas-bot/internal/core/ports/services"
	"github.com/SamuelRomaoF/financas-bot/internal/dto"
	"github.com/SamuelRomaoF/financas-bot/internal/middleware"
	"github.com/SamuelRomaoF/financas-bot/internal/utils"
	"github.com/gin-gonic/gin"
)

// LinkHandler exposes the dashboard-facing link management API.
type LinkHandler struct {
	linkService portssvc.LinkSvcFacade
}

// NewLinkHandler creates a new LinkHandler.
func NewLinkHandler(ls portssvc.LinkSvcFacade) *LinkHandler {
	return &LinkHandler{linkService: ls}
}

// registerLinkRoutes sets up the routes for link management under the
// authenticated v1 group.
func registerLinkRoutes(rg *gin.RouterGroup, ls portssvc.LinkSvcFacade) {
	h := NewLinkHandler(ls)

	links := rg.Group("/links")
	{
		links.POST("/verify", h.VerifyLink)
		links.GET("/:phone", h.GetLink)
	}
}

// VerifyLink godoc
// @Summary Verify an account link
// @Description Confirms the verification code a user received on WhatsApp and binds the phone to an account.
// @Tags links
// @Accept json
// @Produce json
// @Param verify body dto.VerifyLinkRequest true "Verification data"
// @Success 200 {object} dto.LinkResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "Code mismatch"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /links/verify [post]
func (h *LinkHandler) VerifyLink(c *gin.Context) {
	var req dto.VerifyLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	phoneKey := utils.NormalizePhone(req.Phone)
	link, err := h.linkService.VerifyLink(c.Request.Context(), phoneKey, req.Code, req.AccountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "No link found for this phone"})
			return
		}
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "Verification code does not match"})
			return
		}
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to verify link",
			slog.String("phone", phoneKey),
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to verify link"})
		return
	}

	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	subject, _ := middleware.GetSubjectFromCtx(c.Request.Context())
	logger.Info("Link verified via dashboard",
		slog.String("phone", phoneKey),
		slog.String("subject", subject))

	c.JSON(http.StatusOK, dto.ToLinkResponse(link))
}

// GetLink godoc
// @Summary Get an account link
// @Description Returns the link record for a phone, if any.
// @Tags links
// @Produce json
// @Param phone path string true "Phone number"
// @Success 200 {object} dto.LinkResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /links/{phone} [get]
func (h *LinkHandler) GetLink(c *gin.Context) {
	phoneKey := utils.NormalizePhone(c.Param("phone"))

	link, err := h.linkService.GetLink(c.Request.Context(), phoneKey)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "No link found for this phone"})
			return
		}
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to fetch link",
			slog.String("phone", phoneKey),
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch link"})
		return
	}

	c.JSON(http.StatusOK, dto.ToLinkResponse(link))
}
