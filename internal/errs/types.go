package errs

// Domain error codes. They drive the HTTP status mapping in
// internal/response and travel in the detalles field outside production.
const (
	CodeInvalidAccountNumber = "NUMERO_CUENTA_INVALIDO"
	CodeInvalidCardNumber    = "NUMERO_TARJETA_INVALIDO"
	CodeInvalidMovementID    = "ID_MOVIMIENTO_INVALIDO"
	CodeMovementNotFound     = "MOVIMIENTO_NO_ENCONTRADO"
	CodeAccountKindMismatch  = "TIPO_CUENTA_NO_COINCIDE"
	CodeAccountMismatch      = "CUENTA_NO_COINCIDE"
	CodeInvalidNumericValue  = "VALOR_NUMERICO_INVALIDO"
)

type ErrorMessage struct {
	Code    string
	Message string
}

func (e *ErrorMessage) Error() string { return e.Message }

// ValidationError covers client-correctable input: malformed identifiers and
// an account kind that does not match the stored movement.
type ValidationError struct {
	ErrorMessage
}

type NotFoundError struct {
	ErrorMessage
}

// OwnershipError means the movement exists but belongs to another account.
type OwnershipError struct {
	ErrorMessage
}

// DataIntegrityError means the store itself holds malformed data; not the
// caller's fault and not recoverable here.
type DataIntegrityError struct {
	ErrorMessage
}

func NewInvalidAccountNumberError() *ValidationError {
	return &ValidationError{
		ErrorMessage: ErrorMessage{Code: CodeInvalidAccountNumber, Message: "Número de cuenta no válido"},
	}
}

func NewInvalidCardNumberError() *ValidationError {
	return &ValidationError{
		ErrorMessage: ErrorMessage{Code: CodeInvalidCardNumber, Message: "Número de tarjeta no válido"},
	}
}

func NewInvalidMovementIDError() *ValidationError {
	return &ValidationError{
		ErrorMessage: ErrorMessage{Code: CodeInvalidMovementID, Message: "ID de movimiento no válido"},
	}
}

func NewMovementNotFoundError() *NotFoundError {
	return &NotFoundError{
		ErrorMessage: ErrorMessage{Code: CodeMovementNotFound, Message: "Movimiento no encontrado"},
	}
}

func NewAccountKindMismatchError() *ValidationError {
	return &ValidationError{
		ErrorMessage: ErrorMessage{Code: CodeAccountKindMismatch, Message: "Tipo de cuenta no coincide con el movimiento"},
	}
}

func NewAccountMismatchError() *OwnershipError {
	return &OwnershipError{
		ErrorMessage: ErrorMessage{Code: CodeAccountMismatch, Message: "La cuenta no coincide con el movimiento"},
	}
}

func NewInvalidNumericValueError() *DataIntegrityError {
	return &DataIntegrityError{
		ErrorMessage: ErrorMessage{Code: CodeInvalidNumericValue, Message: "Error en los datos almacenados"},
	}
}
