package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrUserNotFound        = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists  = errors.New("el email ya está registrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrUnauthorized        = errors.New("no autorizado")
	ErrForbidden           = errors.New("acceso denegado")
	ErrDuplicateSubmission = errors.New("el usuario ya participó en este ciclo")
	ErrPhaseClosed         = errors.New("la fase del ciclo no admite esta acción")
	ErrCycleAlreadyActive  = errors.New("ya existe un ciclo activo")
	ErrInvalidPeriod       = errors.New("periodo del ciclo inválido")
	ErrInvalidTransition   = errors.New("transición de estado inválida")
	ErrNoVotesRecorded     = errors.New("no hay votos registrados en el ciclo")
	ErrInvalidCandidate    = errors.New("el nominado no es un candidato válido")
	ErrSelfNomination      = errors.New("no es posible nominarse a sí mismo")
	ErrUnavailable         = errors.New("almacenamiento no disponible")
)
