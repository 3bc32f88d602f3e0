package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"filmoteca_backend/internal/app"
	"filmoteca_backend/internal/config"
	"filmoteca_backend/internal/database"
	"filmoteca_backend/internal/logger"
)

func TestMain(m *testing.M) {
	logger.Init("production")
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// each test gets its own named in-memory database; the name keeps the
// shared-cache dbs of parallel tests apart
var dbSeq atomic.Int64

type testEnv struct {
	router    *gin.Engine
	db        *gorm.DB
	imagesDir string
}

// newTestEnv builds the real router over an in-memory sqlite database
// with foreign keys enforced, and a throwaway directory for images.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:handlers_test_%d?mode=memory&cache=shared&_fk=1", dbSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	require.NoError(t, database.AutoMigrate(db))

	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.Storage.Type = "local"
	cfg.Storage.BasePath = t.TempDir()
	cfg.Storage.BaseURL = "/public"
	cfg.Upload.MaxSize = 10 << 20
	cfg.Upload.ImageQuality = 85

	return &testEnv{
		router:    app.SetupRouter(cfg, db),
		db:        db,
		imagesDir: cfg.Storage.BasePath,
	}
}

// send performs a request with an optional JSON body and returns the
// recorded response.
func (e *testEnv) send(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// upload performs a multipart POST carrying a single file field.
func (e *testEnv) upload(t *testing.T, path, field, fileName string, content []byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(field, fileName)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, target any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), target))
}

type createdBody struct {
	ID  uint   `json:"id"`
	Msg string `json:"msg"`
}

// createPerson inserts a person through the API and returns the new id.
func (e *testEnv) createPerson(t *testing.T, nombre, apellido string) uint {
	t.Helper()

	w := e.send(t, http.MethodPost, "/personas", gin.H{
		"nombre":   nombre,
		"apellido": apellido,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created createdBody
	decodeBody(t, w, &created)
	require.NotZero(t, created.ID)
	return created.ID
}

// createMovie inserts a movie with the given cast through the API and
// returns the new id.
func (e *testEnv) createMovie(t *testing.T, nombre string, reparto []gin.H) uint {
	t.Helper()

	body := gin.H{
		"nombre":                       nombre,
		"sinopsis":                     "Sinopsis de " + nombre,
		"fecha_lanzamiento":            "2006-03-17",
		"calificacion_rotten_tomatoes": 91.5,
		"trailer_youtube":              "https://youtu.be/abc123",
	}
	if reparto != nil {
		body["reparto"] = reparto
	}

	w := e.send(t, http.MethodPost, "/peliculas", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created createdBody
	decodeBody(t, w, &created)
	require.NotZero(t, created.ID)
	return created.ID
}

func (e *testEnv) castCountForMovie(t *testing.T, movieID uint) int64 {
	t.Helper()
	var count int64
	require.NoError(t, e.db.Table("cast_entries").Where("movie_id = ?", movieID).Count(&count).Error)
	return count
}
