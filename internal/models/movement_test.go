package models

import (
	"encoding/json"
	"testing"
)

func TestMovementDetailMarshalMergesExtras(t *testing.T) {
	d := MovementDetail{
		ID:              "mov-123",
		Fecha:           "2023-05-15T10:30:00Z",
		Descripcion:     "Depósito inicial",
		Monto:           1000,
		Tipo:            "CREDITO",
		Referencia:      "DEP-001",
		Establecimiento: "Banco Principal",
		SaldoPosterior:  1000,
		Extras:          map[string]string{"comentario": "sin novedad"},
	}

	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var obj map[string]any
	if err := json.Unmarshal(b, &obj); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if obj["comentario"] != "sin novedad" {
		t.Fatalf("extra field not merged: %v", obj)
	}
	if obj["monto"] != float64(1000) {
		t.Fatalf("monto = %v, want 1000", obj["monto"])
	}
}

func TestMovementDetailMarshalExtrasCannotShadowSchema(t *testing.T) {
	d := MovementDetail{
		ID:     "mov-123",
		Monto:  10,
		Extras: map[string]string{"monto": "999", "tipoCuenta": "ahorro"},
	}

	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var obj map[string]any
	if err := json.Unmarshal(b, &obj); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if obj["monto"] != float64(10) {
		t.Fatalf("schema field shadowed by extra: %v", obj["monto"])
	}
	if _, ok := obj["tipoCuenta"]; ok {
		t.Fatalf("owning account fields must never be exposed: %v", obj)
	}
}

func TestMovementDetailMarshalWithoutExtras(t *testing.T) {
	b, err := json.Marshal(MovementDetail{ID: "mov-1"})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var obj map[string]any
	if err := json.Unmarshal(b, &obj); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if _, ok := obj["establecimiento"]; ok {
		t.Fatalf("empty establecimiento should be omitted: %v", obj)
	}
}
