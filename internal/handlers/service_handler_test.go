package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/esteticapro/clinic-manager/internal/gateway"
	"github.com/esteticapro/clinic-manager/internal/httpresp"
	"github.com/esteticapro/clinic-manager/internal/logger"
	"github.com/esteticapro/clinic-manager/internal/models"
	"github.com/esteticapro/clinic-manager/internal/store"
	"gorm.io/gorm"
)

// memCollection guarda as linhas em memória, com ids sequenciais.
type memCollection[T any] struct {
	rows     []T
	nextID   int
	assignID func(row *T, id string)
	getID    func(row T) string
}

func (m *memCollection[T]) Select(_ context.Context, _ gateway.Query) ([]T, error) {
	out := make([]T, len(m.rows))
	copy(out, m.rows)
	return out, nil
}

func (m *memCollection[T]) Insert(_ context.Context, row *T) error {
	m.nextID++
	m.assignID(row, string(rune('a'+m.nextID)))
	m.rows = append(m.rows, *row)
	return nil
}

func (m *memCollection[T]) Update(_ context.Context, id string, _ map[string]any) error {
	for i := range m.rows {
		if m.getID(m.rows[i]) == id {
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *memCollection[T]) Delete(_ context.Context, id string) error {
	for i := range m.rows {
		if m.getID(m.rows[i]) == id {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func newServiceRouter(t *testing.T) (*gin.Engine, *memCollection[models.Service]) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	services := &memCollection[models.Service]{
		assignID: func(row *models.Service, id string) { row.ID = id },
		getID:    func(row models.Service) string { return row.ID },
	}

	tables := gateway.Tables{Services: services}
	s := store.New(tables, logger.New("error"))
	h := NewServiceHandler(s)

	r := gin.New()
	r.GET("/services", h.List)
	r.POST("/services", h.Create)
	r.PATCH("/services/:id", h.Update)
	r.DELETE("/services/:id", h.Delete)
	return r, services
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestServiceCreateAndList(t *testing.T) {
	r, _ := newServiceRouter(t)

	w := doJSON(r, http.MethodPost, "/services", gin.H{
		"name":         "Limpeza de pele",
		"duration_min": 60,
		"price":        150.0,
		"category":     "Facial",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp httpresp.ListResponse[models.Service]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Total)
	assert.NotEmpty(t, resp.Data[0].ID)
	assert.Equal(t, "Limpeza de pele", resp.Data[0].Name)
	assert.Equal(t, "facial", resp.Data[0].Category)
	assert.True(t, resp.Data[0].Active)

	w = doJSON(r, http.MethodGet, "/services", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Total)
}

func TestServiceCreateRequiresDuration(t *testing.T) {
	r, _ := newServiceRouter(t)

	w := doJSON(r, http.MethodPost, "/services", gin.H{
		"name":  "Limpeza de pele",
		"price": 150.0,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestServiceUpdateValidation(t *testing.T) {
	r, services := newServiceRouter(t)
	services.rows = []models.Service{{ID: "s1", Name: "Massagem", DurationMin: 30}}

	w := doJSON(r, http.MethodPatch, "/services/s1", gin.H{"duration_min": 0})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = doJSON(r, http.MethodPatch, "/services/s1", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestServiceUpdateNotFound(t *testing.T) {
	r, _ := newServiceRouter(t)

	w := doJSON(r, http.MethodPatch, "/services/missing", gin.H{"name": "Novo nome"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestServiceDelete(t *testing.T) {
	r, services := newServiceRouter(t)
	services.rows = []models.Service{{ID: "s1", Name: "Massagem"}}

	w := doJSON(r, http.MethodDelete, "/services/s1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp httpresp.ListResponse[models.Service]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Zero(t, resp.Total)

	w = doJSON(r, http.MethodDelete, "/services/s1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
