package validate

import (
	"net/http"
	"reflect"
	"testing"

	"github.com/andean-bank/movements-backend/internal/errs"
	"github.com/andean-bank/movements-backend/internal/models"
)

func TestMissingHeadersPreservesDeclaredOrder(t *testing.T) {
	h := http.Header{}
	required := []string{"x_numero_cuenta", "x_movimiento_id"}

	missing := MissingHeaders(required, h)
	if !reflect.DeepEqual(missing, required) {
		t.Fatalf("missing = %v, want %v", missing, required)
	}
}

func TestMissingHeadersCaseInsensitive(t *testing.T) {
	h := http.Header{}
	h.Set("X_NUMERO_CUENTA", "AHO-123456")

	missing := MissingHeaders([]string{"x_numero_cuenta", "x_movimiento_id"}, h)
	if !reflect.DeepEqual(missing, []string{"x_movimiento_id"}) {
		t.Fatalf("missing = %v", missing)
	}
}

func TestMissingHeadersTreatsEmptyValueAsMissing(t *testing.T) {
	h := http.Header{}
	h.Set("x_numero_cuenta", "")

	missing := MissingHeaders([]string{"x_numero_cuenta"}, h)
	if len(missing) != 1 {
		t.Fatalf("empty header value should count as missing, got %v", missing)
	}
}

func TestMissingHeadersAllPresent(t *testing.T) {
	h := http.Header{}
	h.Set("x_numero_cuenta", "AHO-123456")
	h.Set("x_movimiento_id", "mov-123")

	if missing := MissingHeaders([]string{"x_numero_cuenta", "x_movimiento_id"}, h); missing != nil {
		t.Fatalf("missing = %v, want nil", missing)
	}
}

func TestAccountIdentifierFormats(t *testing.T) {
	cases := []struct {
		name       string
		kind       models.AccountKind
		identifier string
		wantCode   string
	}{
		{"savings ok", models.KindSavings, "AHO-123456", ""},
		{"savings too short", models.KindSavings, "AHO-12345", errs.CodeInvalidAccountNumber},
		{"savings too long", models.KindSavings, "AHO-1234567", errs.CodeInvalidAccountNumber},
		{"savings wrong prefix", models.KindSavings, "COR-123456", errs.CodeInvalidAccountNumber},
		{"savings letters", models.KindSavings, "AHO-12345a", errs.CodeInvalidAccountNumber},
		{"checking ok", models.KindChecking, "COR-654321", ""},
		{"checking wrong prefix", models.KindChecking, "AHO-654321", errs.CodeInvalidAccountNumber},
		{"card ok", models.KindCard, "TARJ-4567890123", ""},
		{"card nine digits", models.KindCard, "TARJ-456789012", errs.CodeInvalidCardNumber},
		{"card account format", models.KindCard, "AHO-123456", errs.CodeInvalidCardNumber},
		{"unknown kind", models.AccountKind("hipoteca"), "AHO-123456", errs.CodeInvalidAccountNumber},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := AccountIdentifier(tc.kind, tc.identifier)
			if tc.wantCode == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			ve, ok := err.(*errs.ValidationError)
			if !ok {
				t.Fatalf("error = %T, want *errs.ValidationError", err)
			}
			if ve.Code != tc.wantCode {
				t.Fatalf("code = %s, want %s", ve.Code, tc.wantCode)
			}
		})
	}
}

func TestMovementIDFormat(t *testing.T) {
	for _, id := range []string{"mov-123", "mov-abc_9", "mov-X"} {
		if err := MovementID(id); err != nil {
			t.Fatalf("MovementID(%q) = %v, want nil", id, err)
		}
	}
	for _, id := range []string{"", "mov-", "MOV-123", "mov-12 3", "tx-123", "mov-12-3"} {
		err := MovementID(id)
		ve, ok := err.(*errs.ValidationError)
		if !ok || ve.Code != errs.CodeInvalidMovementID {
			t.Fatalf("MovementID(%q) = %v, want ID_MOVIMIENTO_INVALIDO", id, err)
		}
	}
}
