package main

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/campuskit/leave-tracker/internal/model"
	"github.com/go-chi/chi/v5"
)

func kindFromRequest(r *http.Request) (model.RequestKind, error) {
	kind := model.RequestKind(chi.URLParam(r, "kind"))
	if !kind.Valid() {
		return "", fmt.Errorf("unknown request kind %q", string(kind))
	}
	return kind, nil
}

func requestIDFromRequest(r *http.Request) (string, error) {
	id := chi.URLParam(r, "requestId")
	if id == "" {
		return "", errors.New("missing request id")
	}
	return id, nil
}
