package handling

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"paintvault_server/lib"
	"testing"

	"github.com/MonkyMars/gecho"
	"github.com/stretchr/testify/assert"
)

func TestRespondErrorStatusMapping(t *testing.T) {
	logger := gecho.NewDefaultLogger()
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "not found", err: lib.NewNotFound("vendor not found"), want: http.StatusNotFound},
		{name: "duplicate key", err: lib.NewDuplicateKey("slug already taken"), want: http.StatusConflict},
		{name: "validation", err: lib.NewValidation("bad body", nil), want: http.StatusBadRequest},
		{name: "unauthorized sentinel", err: lib.ErrInvalidCredentials, want: http.StatusUnauthorized},
		{name: "opaque error stays internal", err: errors.New("driver exploded"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			RespondError(w, logger, tt.err)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

// The create handlers rely on the Created helper emitting 201 with the
// same envelope Success uses.
func TestSuccessEnvelopeStatuses(t *testing.T) {
	w := httptest.NewRecorder()
	gecho.Created(w, gecho.WithMessage("Vendor created successfully"), gecho.Send())
	assert.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	gecho.Success(w, gecho.Send())
	assert.Equal(t, http.StatusOK, w.Code)
}
