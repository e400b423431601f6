package moveset

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type stubStore struct {
	data []byte
	err  error
}

func (s stubStore) Load(context.Context) ([]byte, error) { return s.data, s.err }
func (s stubStore) Location() string                     { return "/srv/moveset.json" }

func TestGetMovesetLoadFailureIsInternal(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	h := NewMovesetHandler(zap.New(core).Sugar(), stubStore{err: errors.New("permission denied")})

	rec := httptest.NewRecorder()
	h.GetMoveset(rec, httptest.NewRequest(http.MethodGet, "/moveset", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"detail": "Internal server error"}`, rec.Body.String())
	assert.Equal(t, 1, logs.Len())
}

func TestGetMovesetPassesUnknownFieldsThrough(t *testing.T) {
	doc := `{"Armbar": {"video": "armbar.mp4", "children": []}}`
	h := NewMovesetHandler(zap.NewNop().Sugar(), stubStore{data: []byte(doc)})

	rec := httptest.NewRecorder()
	h.GetMoveset(rec, httptest.NewRequest(http.MethodGet, "/moveset", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, doc, rec.Body.String())
}
