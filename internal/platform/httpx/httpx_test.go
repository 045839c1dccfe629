package httpx

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pet-daycare/internal/domain/errs"

	"github.com/go-chi/chi/v5"
)

func TestWriteError_MapsDomainErrors(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{errs.NotFound("pet", 7), http.StatusNotFound},
		{errs.Invalid("name is required"), http.StatusBadRequest},
		{fmt.Errorf("wrapped: %w", errs.ErrNotFound), http.StatusNotFound},
		{errors.New("db down"), http.StatusInternalServerError},
	}
	for _, c := range cases {
		rec := httptest.NewRecorder()
		WriteError(rec, httptest.NewRequest(http.MethodGet, "/x", nil), c.err)
		if rec.Code != c.want {
			t.Fatalf("err %v: expected %d, got %d", c.err, c.want, rec.Code)
		}
	}
}

func TestWriteError_HidesInternalDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, httptest.NewRequest(http.MethodGet, "/x", nil), errors.New("password=secret"))
	if strings.Contains(rec.Body.String(), "secret") {
		t.Fatalf("internal error leaked: %q", rec.Body.String())
	}
}

func TestPathID(t *testing.T) {
	withParam := func(v string) *http.Request {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("petID", v)
		req := httptest.NewRequest(http.MethodGet, "/pet/"+v, nil)
		return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}

	id, err := PathID(withParam("42"), "petID")
	if err != nil || id != 42 {
		t.Fatalf("expected 42, got %d err=%v", id, err)
	}
	for _, bad := range []string{"abc", "0", "-3", ""} {
		if _, err := PathID(withParam(bad), "petID"); !errors.Is(err, errs.ErrInvalidInput) {
			t.Fatalf("%q: expected ErrInvalidInput, got %v", bad, err)
		}
	}
}

func TestParseAndFormatDate(t *testing.T) {
	d, err := ParseDate("date", "2019-12-25")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if FormatDate(&d) != "2019-12-25" {
		t.Fatalf("FormatDate mismatch: %s", FormatDate(&d))
	}
	if _, err := ParseDate("date", "25/12/2019"); !errors.Is(err, errs.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if FormatDate(nil) != "" {
		t.Fatalf("nil date should format empty")
	}
}
