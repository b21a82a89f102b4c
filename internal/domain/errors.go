package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidInput   = errors.New("entrada inválida")
	ErrSourceNotFound = errors.New("archivo de origen no encontrado")
	ErrMissingColumn  = errors.New("columna requerida ausente")
	ErrQueryFailed    = errors.New("consulta a la base de datos fallida")
)
