package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"filmoteca_backend/internal/services"
	"filmoteca_backend/internal/services/dto"
)

type MovieHandler struct {
	*BaseHandler
	movieService services.MovieService
}

func NewMovieHandler(base *BaseHandler, movieService services.MovieService) *MovieHandler {
	return &MovieHandler{
		BaseHandler:  base,
		movieService: movieService,
	}
}

func (h *MovieHandler) RegisterRoutes(rg *gin.RouterGroup) {
	peliculas := rg.Group("/peliculas")
	{
		peliculas.GET("", h.ListMovies)
		peliculas.GET("/:id", h.GetMovie)
		// gin keeps one radix tree per method and refuses a static
		// segment next to a wildcard, so the by-person listing
		// (/peliculas/personas/:personaId/peliculas) rides the :id
		// wildcard; the handler checks the literal itself
		peliculas.GET("/:id/:personaId/peliculas", h.GetMoviesByPerson)
		peliculas.POST("", h.CreateMovie)
		peliculas.PUT("/:id", h.ReplaceMovie)
		peliculas.PATCH("/:id", h.PatchMovie)
		peliculas.DELETE("/:id", h.DeleteMovie)
		peliculas.POST("/:id/upload-picture", h.UploadPicture)
	}
}

func (h *MovieHandler) ListMovies(c *gin.Context) {
	movies, err := h.movieService.ListMovies(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, movies)
}

func (h *MovieHandler) GetMovie(c *gin.Context) {
	id, err := ParseParamInt(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	movie, err := h.movieService.GetMovie(h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, movie)
}

func (h *MovieHandler) GetMoviesByPerson(c *gin.Context) {
	if c.Param("id") != "personas" {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Ruta no encontrada"})
		return
	}

	personID, err := ParseParamInt(c, "personaId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	movies, err := h.movieService.GetMoviesByPerson(h.GetDB(c), personID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, movies)
}

func (h *MovieHandler) CreateMovie(c *gin.Context) {
	var req dto.MovieRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	movie, err := h.movieService.CreateMovie(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.CreatedResponse{
		ID:  movie.ID,
		Msg: "Película creada correctamente",
	})
}

func (h *MovieHandler) ReplaceMovie(c *gin.Context) {
	id, err := ParseParamInt(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.MovieRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	movie, err := h.movieService.ReplaceMovie(h.GetDB(c), id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, movie)
}

func (h *MovieHandler) PatchMovie(c *gin.Context) {
	id, err := ParseParamInt(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.MoviePatchRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	movie, err := h.movieService.PatchMovie(h.GetDB(c), id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, movie)
}

func (h *MovieHandler) DeleteMovie(c *gin.Context) {
	id, err := ParseParamInt(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.movieService.DeleteMovie(h.GetDB(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Msg: "Película eliminada correctamente"})
}

func (h *MovieHandler) UploadPicture(c *gin.Context) {
	id, err := ParseParamInt(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	// a missing file is checked in the service, after the 404 check;
	// absent movie wins over absent file
	file, _ := c.FormFile("fotpelicula")

	movie, err := h.movieService.AttachImage(c.Request.Context(), h.GetDB(c), id, file)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, movie)
}
