package response

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestInternalServerErrorKeepsCause(t *testing.T) {
	var buf bytes.Buffer
	orig := log.Logger
	log.Logger = zerolog.New(&buf)
	defer func() { log.Logger = orig }()

	cause := errors.New("mysql: connection refused")
	err := InternalServerError(cause)

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", apiErr.Code)
	}
	if apiErr.Message != "internal_server_error" {
		t.Fatalf("unexpected message %q", apiErr.Message)
	}

	// The cause is logged at wrap time and recoverable through the chain.
	if !errors.Is(err, cause) {
		t.Fatal("cause not reachable through Unwrap")
	}
	if !strings.Contains(buf.String(), "mysql: connection refused") {
		t.Fatalf("cause not logged: %q", buf.String())
	}
}

func TestInternalServerErrorHidesCauseFromClient(t *testing.T) {
	orig := log.Logger
	log.Logger = zerolog.New(nil)
	defer func() { log.Logger = orig }()

	err := InternalServerError(errors.New("mysql: connection refused"))

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}

	payload, marshalErr := json.Marshal(apiErr)
	if marshalErr != nil {
		t.Fatalf("marshal failed: %v", marshalErr)
	}
	if strings.Contains(string(payload), "mysql") {
		t.Fatalf("cause leaked into the payload: %s", payload)
	}
	if apiErr.Details != nil {
		t.Fatalf("expected nil details, got %v", apiErr.Details)
	}
}
