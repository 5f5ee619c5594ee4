package httpx

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	catalogapp "github.com/vibevapes/storefront/internal/catalog/app"
	checkoutapp "github.com/vibevapes/storefront/internal/checkout/app"
	vibeapp "github.com/vibevapes/storefront/internal/vibe/app"
)

func TestHTTPStatusFromErr(t *testing.T) {
	t.Run("invalid input -> 400", func(t *testing.T) {
		gotStatus, gotCode := httpStatusFromErr(catalogapp.ErrInvalidInput)
		if gotStatus != http.StatusBadRequest || gotCode != "INVALID_ARGUMENT" {
			t.Fatalf("got (%d,%s)", gotStatus, gotCode)
		}
	})

	t.Run("not found -> 404", func(t *testing.T) {
		gotStatus, gotCode := httpStatusFromErr(catalogapp.ErrNotFound)
		if gotStatus != http.StatusNotFound || gotCode != "NOT_FOUND" {
			t.Fatalf("got (%d,%s)", gotStatus, gotCode)
		}
	})

	t.Run("unknown quiz session -> 404", func(t *testing.T) {
		gotStatus, gotCode := httpStatusFromErr(vibeapp.ErrUnknownSession)
		if gotStatus != http.StatusNotFound || gotCode != "NOT_FOUND" {
			t.Fatalf("got (%d,%s)", gotStatus, gotCode)
		}
	})

	t.Run("empty cart -> 409", func(t *testing.T) {
		gotStatus, gotCode := httpStatusFromErr(checkoutapp.ErrEmptyCart)
		if gotStatus != http.StatusConflict || gotCode != "EMPTY_CART" {
			t.Fatalf("got (%d,%s)", gotStatus, gotCode)
		}
	})

	t.Run("checkout busy -> 409", func(t *testing.T) {
		gotStatus, gotCode := httpStatusFromErr(checkoutapp.ErrBusy)
		if gotStatus != http.StatusConflict || gotCode != "CHECKOUT_IN_PROGRESS" {
			t.Fatalf("got (%d,%s)", gotStatus, gotCode)
		}
	})

	t.Run("wrapped sentinel keeps its mapping", func(t *testing.T) {
		err := fmt.Errorf("loading product: %w", catalogapp.ErrNotFound)
		gotStatus, _ := httpStatusFromErr(err)
		if gotStatus != http.StatusNotFound {
			t.Fatalf("got %d", gotStatus)
		}
	})

	t.Run("unknown error -> 500", func(t *testing.T) {
		gotStatus, gotCode := httpStatusFromErr(errors.New("boom"))
		if gotStatus != http.StatusInternalServerError || gotCode != "INTERNAL" {
			t.Fatalf("got (%d,%s)", gotStatus, gotCode)
		}
	})
}
