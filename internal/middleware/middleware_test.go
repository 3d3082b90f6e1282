package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID_Generated(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RequestID())

	var seen string
	router.GET("/ping", func(c *gin.Context) {
		seen = GetRequestID(c)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	router.ServeHTTP(w, req)

	require.NotEmpty(t, seen)
	assert.Equal(t, seen, w.Header().Get(RequestIDHeader))
}

func TestRequestID_Propagated(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RequestID())

	var seen string
	router.GET("/ping", func(c *gin.Context) {
		seen = GetRequestID(c)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "upstream-42")
	router.ServeHTTP(w, req)

	assert.Equal(t, "upstream-42", seen)
	assert.Equal(t, "upstream-42", w.Header().Get(RequestIDHeader))
}

func TestRequestLogger_StatusLevels(t *testing.T) {
	gin.SetMode(gin.TestMode)

	logger := logrus.New()
	hook := &capturingHook{}
	logger.AddHook(hook)

	router := gin.New()
	router.Use(RequestID(), RequestLogger(logger))
	router.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/bad", func(c *gin.Context) { c.Status(http.StatusBadRequest) })
	router.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	for path, level := range map[string]logrus.Level{
		"/ok":   logrus.InfoLevel,
		"/bad":  logrus.WarnLevel,
		"/boom": logrus.ErrorLevel,
	} {
		hook.entries = nil
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

		require.Len(t, hook.entries, 1, "path %s", path)
		entry := hook.entries[0]
		assert.Equal(t, level, entry.Level, "path %s", path)
		assert.Equal(t, path, entry.Data["path"])
		assert.NotEmpty(t, entry.Data["request_id"])
	}
}

type capturingHook struct {
	entries []*logrus.Entry
}

func (h *capturingHook) Levels() []logrus.Level { return logrus.AllLevels }

func (h *capturingHook) Fire(e *logrus.Entry) error {
	h.entries = append(h.entries, e)
	return nil
}
