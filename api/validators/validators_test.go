package validators

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	pkgerrors "github.com/angelmondragon/zencrm-backend/pkg/errors"
	"github.com/angelmondragon/zencrm-backend/pkg/pagination"
)

type samplePayload struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"required"`
}

func assertValidationError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error")
	}
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestDecodeJSONBodyAcceptsValidPayload(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"tester@example.com","name":"Tester"}`))
	var payload samplePayload
	if err := DecodeJSONBody(req, &payload); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payload.Email != "tester@example.com" {
		t.Fatalf("unexpected email: %s", payload.Email)
	}
}

func TestDecodeJSONBodyRejectsUnknownFields(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"tester@example.com","name":"Tester","extra":true}`))
	var payload samplePayload
	assertValidationError(t, DecodeJSONBody(req, &payload))
}

func TestDecodeJSONBodyReportsFieldsByJSONTag(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Tester"}`))
	var payload samplePayload
	err := DecodeJSONBody(req, &payload)
	assertValidationError(t, err)

	details, ok := pkgerrors.As(err).Details().(map[string]string)
	if !ok {
		t.Fatalf("expected detail map, got %T", pkgerrors.As(err).Details())
	}
	if _, found := details["email"]; !found {
		t.Fatalf("expected email key in details, got %v", details)
	}
}

func TestParsePaginationDefaults(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?limit=0", nil)
	page, err := ParsePagination(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Skip != 0 || page.Limit != pagination.DefaultLimit {
		t.Fatalf("unexpected params: %+v", page)
	}
}

func TestParsePaginationRejectsNegatives(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?skip=-5", nil)
	_, err := ParsePagination(req)
	assertValidationError(t, err)
}

func TestParsePaginationRejectsNonNumeric(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?limit=many", nil)
	_, err := ParsePagination(req)
	assertValidationError(t, err)
}

func TestParseQueryUUID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?contact_id=not-a-uuid", nil)
	_, err := ParseQueryUUID(req, "contact_id")
	assertValidationError(t, err)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	id, err := ParseQueryUUID(req, "contact_id")
	if err != nil || id != nil {
		t.Fatalf("expected nil id for absent param, got %v %v", id, err)
	}
}

func TestParsePathUUID(t *testing.T) {
	if _, err := ParsePathUUID("garbage", "contact_id"); err == nil {
		t.Fatal("expected error for malformed uuid")
	}
	if _, err := ParsePathUUID("2f9d3b0a-8c1e-4f7b-9a64-0d5cf6c2a111", "contact_id"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
