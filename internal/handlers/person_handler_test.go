package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type personBody struct {
	ID              uint   `json:"id"`
	Nombre          string `json:"nombre"`
	Apellido        string `json:"apellido"`
	FechaNacimiento string `json:"fechaNacimiento"`
	LugarNacimiento string `json:"lugarNacimiento"`
	Imagen          string `json:"imagen"`
	ImagenURL       string `json:"imagen_url"`
}

func TestListPeopleEmpty(t *testing.T) {
	env := newTestEnv(t)

	w := env.send(t, http.MethodGet, "/personas", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestCreatePerson(t *testing.T) {
	env := newTestEnv(t)

	w := env.send(t, http.MethodPost, "/personas", gin.H{
		"nombre":          "Alfonso",
		"apellido":        "Cuarón",
		"fechaNacimiento": "1961-11-28",
		"lugarNacimiento": "Ciudad de México",
	})

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created createdBody
	decodeBody(t, w, &created)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Persona creada correctamente", created.Msg)

	w = env.send(t, http.MethodGet, fmt.Sprintf("/personas/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var person personBody
	decodeBody(t, w, &person)
	assert.Equal(t, "Alfonso", person.Nombre)
	assert.Equal(t, "Cuarón", person.Apellido)
	assert.Equal(t, "1961-11-28", person.FechaNacimiento)
	assert.Equal(t, "Ciudad de México", person.LugarNacimiento)
}

func TestCreatePersonMissingFields(t *testing.T) {
	env := newTestEnv(t)

	w := env.send(t, http.MethodPost, "/personas", gin.H{
		"nombre": "Solo nombre",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp struct {
		Msg string `json:"msg"`
	}
	decodeBody(t, w, &resp)
	assert.Contains(t, resp.Msg, "Faltan campos obligatorios")
	assert.Contains(t, resp.Msg, "apellido")
}

func TestGetPersonNotFound(t *testing.T) {
	env := newTestEnv(t)

	w := env.send(t, http.MethodGet, "/personas/4321", nil)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"msg": "Persona no encontrada"}`, w.Body.String())
}

func TestReplacePersonKeepsOptionalFieldsWhenOmitted(t *testing.T) {
	env := newTestEnv(t)

	w := env.send(t, http.MethodPost, "/personas", gin.H{
		"nombre":          "Isabelle",
		"apellido":        "Huppert",
		"fechaNacimiento": "1953-03-16",
		"lugarNacimiento": "París",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created createdBody
	decodeBody(t, w, &created)

	// optional fields follow the presence rule even on full update
	w = env.send(t, http.MethodPut, fmt.Sprintf("/personas/%d", created.ID), gin.H{
		"nombre":   "Isabelle Anne",
		"apellido": "Huppert",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = env.send(t, http.MethodGet, fmt.Sprintf("/personas/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var person personBody
	decodeBody(t, w, &person)
	assert.Equal(t, "Isabelle Anne", person.Nombre)
	assert.Equal(t, "1953-03-16", person.FechaNacimiento)
	assert.Equal(t, "París", person.LugarNacimiento)
}

func TestPatchPersonIgnoresEmptyStrings(t *testing.T) {
	env := newTestEnv(t)
	personID := env.createPerson(t, "Javier", "Bardem")

	w := env.send(t, http.MethodPatch, fmt.Sprintf("/personas/%d", personID), gin.H{
		"nombre":          "",
		"lugarNacimiento": "Las Palmas",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = env.send(t, http.MethodGet, fmt.Sprintf("/personas/%d", personID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var person personBody
	decodeBody(t, w, &person)
	assert.Equal(t, "Javier", person.Nombre)
	assert.Equal(t, "Las Palmas", person.LugarNacimiento)
}

func TestDeletePersonCascadesToCast(t *testing.T) {
	env := newTestEnv(t)
	personID := env.createPerson(t, "Ana", "de Armas")
	movieID := env.createMovie(t, "Blade Runner 2049", []gin.H{
		{"personaId": personID},
	})

	w := env.send(t, http.MethodDelete, fmt.Sprintf("/personas/%d", personID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"msg": "Persona eliminada correctamente"}`, w.Body.String())

	// cast rows vanish with the person, the movie stays
	assert.EqualValues(t, 0, env.castCountForMovie(t, movieID))
	w = env.send(t, http.MethodGet, fmt.Sprintf("/peliculas/%d", movieID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDeletePersonNotFound(t *testing.T) {
	env := newTestEnv(t)

	w := env.send(t, http.MethodDelete, "/personas/4321", nil)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"msg": "Persona no encontrada"}`, w.Body.String())
}

func TestUploadPersonPicture(t *testing.T) {
	env := newTestEnv(t)
	personID := env.createPerson(t, "Ricardo", "Darín")

	content := []byte("retrato")
	w := env.upload(t, fmt.Sprintf("/personas/%d/upload-picture", personID), "fotpersona", "darin.jpg", content)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var person personBody
	decodeBody(t, w, &person)
	assert.Equal(t, fmt.Sprintf("%d.jpg", personID), person.Imagen)

	// detail carries the computed public URL
	w = env.send(t, http.MethodGet, fmt.Sprintf("/personas/%d", personID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &person)
	assert.Equal(t, fmt.Sprintf("/public/personas/%d.jpg", personID), person.ImagenURL)

	w = env.send(t, http.MethodGet, fmt.Sprintf("/public/personas/%d.jpg", personID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, content, w.Body.Bytes())
}

func TestUploadPersonPictureNoFile(t *testing.T) {
	env := newTestEnv(t)
	personID := env.createPerson(t, "Cecilia", "Roth")

	w := env.send(t, http.MethodPost, fmt.Sprintf("/personas/%d/upload-picture", personID), nil)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"msg": "No se ha subido ninguna imagen"}`, w.Body.String())
}

func TestUploadPersonPicturePersonNotFound(t *testing.T) {
	env := newTestEnv(t)

	w := env.send(t, http.MethodPost, "/personas/555/upload-picture", nil)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"msg": "Persona no encontrada"}`, w.Body.String())
}
