package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/doc-query/internal/session"
	"github.com/MKhiriev/doc-query/internal/store"
)

var errorStatusMap = map[error]int{
	session.ErrEmptyCredential: http.StatusBadRequest,

	store.ErrBuildingSQLQuery:     http.StatusServiceUnavailable,
	store.ErrBeginningTransaction: http.StatusServiceUnavailable,
	store.ErrCommitingTransaction: http.StatusServiceUnavailable,
	store.ErrExecutingQuery:       http.StatusServiceUnavailable,
	store.ErrExecutingStatement:   http.StatusServiceUnavailable,

	session.ErrSessionStorage: http.StatusServiceUnavailable,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
