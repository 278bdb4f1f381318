package handler

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupSwagger(t *testing.T) {
	dir := t.TempDir()
	doc := filepath.Join(dir, "swagger.json")
	require.NoError(t, os.WriteFile(doc, []byte(`{"openapi":"3.0.3"}`), 0o600))

	prev := SwaggerDocPath
	SwaggerDocPath = doc
	t.Cleanup(func() { SwaggerDocPath = prev })

	gin.SetMode(gin.TestMode)
	router := gin.New()
	SetupSwagger(router)

	get := func(path string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", path, nil)
		router.ServeHTTP(w, req)
		return w
	}

	w := get("/swagger/doc.json")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"openapi":"3.0.3"}`, w.Body.String())

	w = get("/swagger/index.html")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Axoxia Shipping Quotes")

	w = get("/swagger/elsewhere")
	assert.Equal(t, http.StatusMovedPermanently, w.Code)
}
