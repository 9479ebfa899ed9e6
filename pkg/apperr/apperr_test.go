package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		kind Kind
		want int
	}{
		{KindInvalidInput, http.StatusBadRequest},
		{KindUnauthorized, http.StatusUnauthorized},
		{KindForbidden, http.StatusForbidden},
		{KindNotFound, http.StatusNotFound},
		{KindConflict, http.StatusConflict},
		{KindInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			if got := HTTPStatus(New(tt.kind, "boom")); got != tt.want {
				t.Errorf("HTTPStatus = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestUntaggedErrorIsInternal(t *testing.T) {
	err := errors.New("plain")
	if KindOf(err) != KindInternal {
		t.Errorf("KindOf(plain) = %v, want internal", KindOf(err))
	}
	if HTTPStatus(err) != http.StatusInternalServerError {
		t.Errorf("HTTPStatus(plain) = %d", HTTPStatus(err))
	}
	if MessageOf(err) != "Internal server error" {
		t.Errorf("MessageOf(plain) = %q", MessageOf(err))
	}
}

func TestWrapPreservesKindThroughChain(t *testing.T) {
	inner := New(KindNotFound, "Order not found")
	outer := fmt.Errorf("handling request: %w", inner)

	if KindOf(outer) != KindNotFound {
		t.Errorf("KindOf(wrapped) = %v, want not found", KindOf(outer))
	}
	if !IsKind(outer, KindNotFound) {
		t.Errorf("IsKind(wrapped, not found) = false")
	}
	if MessageOf(outer) != "Order not found" {
		t.Errorf("MessageOf(wrapped) = %q", MessageOf(outer))
	}
}

func TestWrapUnwraps(t *testing.T) {
	cause := errors.New("db down")
	err := Wrap(KindInternal, "Failed to find order", cause)

	if !errors.Is(err, cause) {
		t.Errorf("wrapped cause lost")
	}
	if err.Error() != "Failed to find order: db down" {
		t.Errorf("Error() = %q", err.Error())
	}
}
