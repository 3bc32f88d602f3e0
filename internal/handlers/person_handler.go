package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"filmoteca_backend/internal/services"
	"filmoteca_backend/internal/services/dto"
)

type PersonHandler struct {
	*BaseHandler
	personService services.PersonService
}

func NewPersonHandler(base *BaseHandler, personService services.PersonService) *PersonHandler {
	return &PersonHandler{
		BaseHandler:   base,
		personService: personService,
	}
}

func (h *PersonHandler) RegisterRoutes(rg *gin.RouterGroup) {
	personas := rg.Group("/personas")
	{
		personas.GET("", h.ListPeople)
		personas.GET("/:id", h.GetPerson)
		personas.POST("", h.CreatePerson)
		personas.PUT("/:id", h.ReplacePerson)
		personas.PATCH("/:id", h.PatchPerson)
		personas.DELETE("/:id", h.DeletePerson)
		personas.POST("/:id/upload-picture", h.UploadPicture)
	}
}

func (h *PersonHandler) ListPeople(c *gin.Context) {
	people, err := h.personService.ListPeople(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, people)
}

func (h *PersonHandler) GetPerson(c *gin.Context) {
	id, err := ParseParamInt(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	person, err := h.personService.GetPerson(c.Request.Context(), h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, person)
}

func (h *PersonHandler) CreatePerson(c *gin.Context) {
	var req dto.PersonRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	person, err := h.personService.CreatePerson(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.CreatedResponse{
		ID:  person.ID,
		Msg: "Persona creada correctamente",
	})
}

func (h *PersonHandler) ReplacePerson(c *gin.Context) {
	id, err := ParseParamInt(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.PersonRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	person, err := h.personService.ReplacePerson(h.GetDB(c), id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, person)
}

func (h *PersonHandler) PatchPerson(c *gin.Context) {
	id, err := ParseParamInt(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.PersonPatchRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	person, err := h.personService.PatchPerson(h.GetDB(c), id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, person)
}

func (h *PersonHandler) DeletePerson(c *gin.Context) {
	id, err := ParseParamInt(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.personService.DeletePerson(h.GetDB(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Msg: "Persona eliminada correctamente"})
}

func (h *PersonHandler) UploadPicture(c *gin.Context) {
	id, err := ParseParamInt(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	// absent person wins over absent file, see service
	file, _ := c.FormFile("fotpersona")

	person, err := h.personService.AttachImage(c.Request.Context(), h.GetDB(c), id, file)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, person)
}
