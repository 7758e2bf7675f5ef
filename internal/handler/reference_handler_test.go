package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusdesk/events-api/internal/service"
)

func TestReferenceEndpoints(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewReferenceHandler(service.NewReferenceService())
	router := gin.New()
	router.GET("/reference/buildings", h.Buildings)
	router.GET("/reference/departments", h.Departments)

	req, _ := http.NewRequest(http.MethodGet, "/reference/buildings", nil)
	resp := performRequest(router, req)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "Main Auditorium")

	req, _ = http.NewRequest(http.MethodGet, "/reference/departments", nil)
	resp = performRequest(router, req)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "Computer Science")
}
