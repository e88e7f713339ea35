package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/andean-bank/movements-backend/internal/bootstrap"
	"github.com/andean-bank/movements-backend/internal/config"
)

type movement struct {
	id     string
	fields map[string]string
}

type index struct {
	key string
	ids []string
}

// Demo data set. Index lists are pushed most-recent-first.
var movements = []movement{
	{"mov-123", map[string]string{
		"id":              "mov-123",
		"tipoCuenta":      "ahorro",
		"cuenta":          "AHO-123456",
		"fecha":           "2023-05-15T10:30:00Z",
		"descripcion":     "Depósito inicial",
		"monto":           "1000.00",
		"tipo":            "CREDITO",
		"referencia":      "DEP-001",
		"establecimiento": "Banco Principal",
		"saldoPosterior":  "1000.00",
	}},
	{"mov-124", map[string]string{
		"id":              "mov-124",
		"tipoCuenta":      "ahorro",
		"cuenta":          "AHO-123456",
		"fecha":           "2023-05-16T11:20:00Z",
		"descripcion":     "Retiro en cajero",
		"monto":           "200.00",
		"tipo":            "DEBITO",
		"referencia":      "RET-002",
		"establecimiento": "Cajero Principal",
		"saldoPosterior":  "800.00",
	}},
	{"mov-456", map[string]string{
		"id":              "mov-456",
		"tipoCuenta":      "corriente",
		"cuenta":          "COR-654321",
		"fecha":           "2023-05-16T14:45:00Z",
		"descripcion":     "Pago de servicios",
		"monto":           "150.50",
		"tipo":            "DEBITO",
		"referencia":      "PAGO-002",
		"establecimiento": "Compañía de Agua",
		"saldoPosterior":  "849.50",
	}},
	{"mov-457", map[string]string{
		"id":              "mov-457",
		"tipoCuenta":      "corriente",
		"cuenta":          "COR-654321",
		"fecha":           "2023-05-17T09:30:00Z",
		"descripcion":     "Transferencia recibida",
		"monto":           "500.00",
		"tipo":            "CREDITO",
		"referencia":      "TRF-003",
		"establecimiento": "Cliente XYZ",
		"saldoPosterior":  "1349.50",
	}},
	{"mov-789", map[string]string{
		"id":              "mov-789",
		"tipoCuenta":      "tarjeta",
		"cuenta":          "TARJ-4567890123",
		"fecha":           "2023-05-17T09:15:00Z",
		"descripcion":     "Compra en supermercado",
		"monto":           "45.99",
		"tipo":            "DEBITO",
		"referencia":      "COMP-003",
		"establecimiento": "Supermercado XYZ",
		"saldoPosterior":  "954.01",
	}},
	{"mov-790", map[string]string{
		"id":              "mov-790",
		"tipoCuenta":      "tarjeta",
		"cuenta":          "TARJ-4567890123",
		"fecha":           "2023-05-18T12:45:00Z",
		"descripcion":     "Pago de tarjeta",
		"monto":           "300.00",
		"tipo":            "CREDITO",
		"referencia":      "PAGO-004",
		"establecimiento": "Pago en línea",
		"saldoPosterior":  "1254.01",
	}},
}

var indexes = []index{
	{"movimientos:ahorro:AHO-123456", []string{"mov-124", "mov-123"}},
	{"movimientos:corriente:COR-654321", []string{"mov-457", "mov-456"}},
	{"movimientos:tarjeta:TARJ-4567890123", []string{"mov-790", "mov-789"}},
}

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

func main() {
	godotenv.Load()

	cfg := config.New()
	bs, err := bootstrap.Run(cfg)
	exitOnError("bootstrap failed", err, bs.Log)
	defer bs.Close()

	ctx := context.Background()

	n, err := bs.Redis.Exists(ctx, "movimiento:mov-123").Result()
	exitOnError("existence check failed", err, bs.Log)
	if n > 0 {
		bs.Log.Info("demo data already loaded")
		return
	}

	for _, m := range movements {
		err := bs.Redis.HSet(ctx, "movimiento:"+m.id, m.fields).Err()
		exitOnError("failed to write movement", err, bs.Log)
	}

	for _, idx := range indexes {
		args := make([]interface{}, len(idx.ids))
		for i, id := range idx.ids {
			args[i] = id
		}
		err := bs.Redis.RPush(ctx, idx.key, args...).Err()
		exitOnError("failed to write index", err, bs.Log)
	}

	bs.Log.Info("demo data loaded", "movements", len(movements), "indexes", len(indexes))
}
