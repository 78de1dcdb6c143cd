package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-catalog-keeper/internal/store"
	"github.com/MKhiriev/go-catalog-keeper/internal/validators"
)

var errorStatusMap = map[error]int{
	validators.ErrMissingRequiredField: http.StatusBadRequest,
	validators.ErrInvalidPrice:         http.StatusBadRequest,
	validators.ErrInvalidID:            http.StatusBadRequest,
	validators.ErrUnsupportedType:      http.StatusBadRequest,
	validators.ErrUnknownField:         http.StatusBadRequest,

	store.ErrItemNotFound: http.StatusNotFound,
	store.ErrItemNotSaved: http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
