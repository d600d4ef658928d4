package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError_ToHTTPError(t *testing.T) {
	cause := errors.New("dial tcp: timeout")
	appErr := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	body := appErr.ToHTTPError()
	if body.Error != "INTERNAL_ERROR" || body.Message != "An internal error occurred" {
		t.Fatalf("unexpected body: %+v", body)
	}
	if body.Debug != "" {
		t.Fatalf("debug must not leak outside debug mode: %+v", body)
	}
	if body.StatusCode != 0 {
		t.Fatalf("statusCode only set with details: %+v", body)
	}

	debug := appErr.ToDebugHTTPError()
	if debug.Debug != cause.Error() {
		t.Fatalf("expected debug cause, got %+v", debug)
	}
	if !errors.Is(appErr, cause) {
		t.Fatalf("expected Unwrap to expose cause")
	}
}

func TestAppError_WithDetails(t *testing.T) {
	appErr := NewDomainErrorSimple("PAYMENT_GATEWAY_ERROR", "invalid document", http.StatusUnprocessableEntity).
		WithDetails(map[string]any{"message": "invalid document"})

	body := appErr.ToHTTPError()
	if body.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("expected statusCode 422, got %d", body.StatusCode)
	}
	if body.Details == nil {
		t.Fatalf("expected details")
	}
	if appErr.Error() != "PAYMENT_GATEWAY_ERROR: invalid document" {
		t.Fatalf("unexpected error string %q", appErr.Error())
	}
}
