package httperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vindecoder/internal/app/client"
	"vindecoder/internal/domain/history"
	"vindecoder/internal/domain/vehicle"
	"vindecoder/internal/domain/vin"
)

func TestFromDomain(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"invalid vin", vin.Validate("SHORT"), http.StatusUnprocessableEntity},
		{"wrapped length sentinel", fmt.Errorf("%w: bad", vin.ErrInvalidLength), http.StatusUnprocessableEntity},
		{"wrapped characters sentinel", fmt.Errorf("%w: bad", vin.ErrInvalidCharacters), http.StatusUnprocessableEntity},
		{"busy", client.ErrBusy, http.StatusConflict},
		{"decode failed", vehicle.ErrDecodeFailed, http.StatusUnprocessableEntity},
		{"transport", fmt.Errorf("%w: timeout", vehicle.ErrTransport), http.StatusBadGateway},
		{"history index", history.ErrEntryNotFound, http.StatusNotFound},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			err := FromDomain(tt.err)

			// Assert
			var se huma.StatusError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, tt.status, se.GetStatus())
		})
	}

	assert.NoError(t, FromDomain(nil))
}
