package apiErrors

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		wantStatus int
	}{
		{name: "Requisição inválida", code: ErrInvalidRequest, wantStatus: http.StatusBadRequest},
		{name: "Formato inválido", code: ErrInvalidFormat, wantStatus: http.StatusBadRequest},
		{name: "Gráfico inexistente", code: ErrChartNotFound, wantStatus: http.StatusNotFound},
		{name: "Erro interno", code: ErrInternalServer, wantStatus: http.StatusInternalServerError},
		{name: "Código desconhecido", code: "XYZ_999", wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(rec, tt.code, "mensagem", map[string]string{"field": "year"})

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, "mensagem", body.Message)
		})
	}
}

func TestFromError(t *testing.T) {
	apiErr := FromError(errors.New("falhou"), ErrInvalidRequest)
	assert.Equal(t, APIError{Code: ErrInvalidRequest, Message: "falhou"}, apiErr)

	apiErr = FromError(nil, ErrInvalidRequest)
	assert.Equal(t, ErrInternalServer, apiErr.Code)
}
