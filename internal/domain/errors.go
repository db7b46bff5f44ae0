package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicateCode      = errors.New("ya existe un producto con este código en la filial")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrStorageUnavailable = errors.New("almacenamiento no disponible")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
)

// StockShortageError detalla un rechazo de Saída: la cantidad pedida supera el stock derivado.
// errors.Is(err, ErrInsufficientStock) es verdadero para este error.
type StockShortageError struct {
	ProductID string
	Available int64
	Requested int64
}

func (e *StockShortageError) Error() string {
	return fmt.Sprintf("%s: disponible %d, solicitado %d", ErrInsufficientStock, e.Available, e.Requested)
}

func (e *StockShortageError) Unwrap() error { return ErrInsufficientStock }
