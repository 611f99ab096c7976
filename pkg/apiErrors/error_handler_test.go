package apiErrors

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		wantStatus int
	}{
		{name: "Seleção inválida", code: ErrInvalidSelection, wantStatus: http.StatusBadRequest},
		{name: "Rota não encontrada", code: ErrNotFound, wantStatus: http.StatusNotFound},
		{name: "Erro interno", code: ErrInternalServer, wantStatus: http.StatusInternalServerError},
		{name: "Código desconhecido", code: "XYZ_999", wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(rec, tt.code, "mensagem", map[string]string{"selection": "weekly"})

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t,
				`{"code":"`+tt.code+`","message":"mensagem","details":{"selection":"weekly"}}`,
				rec.Body.String(),
			)
		})
	}
}

func TestFromError(t *testing.T) {
	assert.Equal(t, APIError{Code: ErrInternalServer, Message: "Erro desconhecido"}, FromError(nil, ErrRendering))
	assert.Equal(t, APIError{Code: ErrRendering, Message: "boom"}, FromError(errors.New("boom"), ErrRendering))
}

func TestWriteAPIError(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteAPIError(rec, FromError(errors.New("unknown table selection"), ErrInternalServer))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"code":"SRV_001","message":"unknown table selection"}`, rec.Body.String())
}
