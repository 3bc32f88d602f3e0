package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"filmoteca_backend/internal/services"
	"filmoteca_backend/internal/services/dto"
)

type CastHandler struct {
	*BaseHandler
	castService services.CastService
}

func NewCastHandler(base *BaseHandler, castService services.CastService) *CastHandler {
	return &CastHandler{
		BaseHandler: base,
		castService: castService,
	}
}

func (h *CastHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reparto := rg.Group("/reparto")
	{
		reparto.GET("", h.ListCast)
		reparto.GET("/:id", h.GetCastEntry)
		reparto.POST("", h.CreateCastEntry)
		reparto.PUT("/:id", h.ReplaceCastEntry)
		reparto.DELETE("/:id", h.DeleteCastEntry)
	}
}

func (h *CastHandler) ListCast(c *gin.Context) {
	entries, err := h.castService.ListCast(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (h *CastHandler) GetCastEntry(c *gin.Context) {
	id, err := ParseParamInt(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	entry, err := h.castService.GetCastEntry(h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (h *CastHandler) CreateCastEntry(c *gin.Context) {
	var req dto.CastEntryRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	entry, err := h.castService.CreateCastEntry(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.CreatedResponse{
		ID:  entry.ID,
		Msg: "Reparto creado correctamente",
	})
}

func (h *CastHandler) ReplaceCastEntry(c *gin.Context) {
	id, err := ParseParamInt(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.CastEntryRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	entry, err := h.castService.ReplaceCastEntry(h.GetDB(c), id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (h *CastHandler) DeleteCastEntry(c *gin.Context) {
	id, err := ParseParamInt(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.castService.DeleteCastEntry(h.GetDB(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Msg: "Reparto eliminado correctamente"})
}
