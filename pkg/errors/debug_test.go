package errors

import (
	stdErrors "errors"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

func TestDumpCapturesPgxFields(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:           "23505",
		ConstraintName: "ux_applications_user_vacancy",
		TableName:      "applications",
		Message:        "duplicate key value violates unique constraint",
	}
	err := Wrap(CodeConflict, pgErr, "create application")

	d := Dump(err)
	if d.Code != CodeConflict {
		t.Fatalf("expected conflict code, got %s", d.Code)
	}
	if d.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409, got %d", d.HTTPStatus)
	}
	if d.PGCode != "23505" || d.PGConstraint != "ux_applications_user_vacancy" {
		t.Fatalf("pg fields not captured: %+v", d)
	}
	if len(d.Chain) != 2 {
		t.Fatalf("expected chain of 2, got %v", d.Chain)
	}
	if _, ok := d.Fields()["pg_constraint"]; !ok {
		t.Fatalf("expected pg fields in log fields")
	}
}

func TestDumpCapturesPqFields(t *testing.T) {
	err := Wrap(CodeInternal, &pq.Error{Code: "23503", Table: "applications"}, "insert")
	d := Dump(err)
	if d.PGCode != "23503" || d.PGTable != "applications" {
		t.Fatalf("pq fields not captured: %+v", d)
	}
}

func TestDumpUntypedErrorDefaultsToInternal(t *testing.T) {
	d := Dump(stdErrors.New("boom"))
	if d.Code != CodeInternal || d.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("unexpected dump %+v", d)
	}
	if _, ok := d.Fields()["pg_code"]; ok {
		t.Fatalf("pg fields should be omitted without a postgres error")
	}
	if got := Dump(nil); got.TopMessage != "" {
		t.Fatalf("expected empty dump for nil error")
	}
}
