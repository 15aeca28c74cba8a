package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestParseIDParam_Valid(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "123"}}

	id, ok := parseIDParam(c, "id")

	assert.True(t, ok)
	assert.Equal(t, int64(123), id)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestParseIDParam_Invalid(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "abc"}}

	id, ok := parseIDParam(c, "id")

	assert.False(t, ok)
	assert.Equal(t, int64(0), id)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "invalid id")
}

func TestParseIDParam_Negative(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "-1"}}

	id, ok := parseIDParam(c, "id")

	assert.False(t, ok)
	assert.Equal(t, int64(0), id)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestRespondInternalError(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	respondInternalError(c, errors.New("disk I/O error"), "list workouts")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"detail":"disk I/O error"}`, w.Body.String())
}

func TestRespondNotFound(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	respondNotFound(c, "Workout not found")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"detail":"Workout not found"}`, w.Body.String())
}
