package analyzing

import (
	"errors"
	"fmt"
	"strings"
)

// Etapas del pipeline, usadas para dar contexto a los errores.
const (
	StageLoad      = "carga"
	StageCombine   = "combinacion"
	StageNormalize = "normalizacion"
	StageValidate  = "validacion"
	StageDerive    = "derivacion"
	StageAggregate = "agregacion"
)

// Errores específicos del pipeline de análisis
var (
	// Errores de entrada
	ErrWorkbookNotFound = errors.New("archivo de ventas no encontrado")
	ErrSheetMissing     = errors.New("hoja requerida ausente en el archivo")

	// Errores de combinación
	ErrJoinKeyMissing = errors.New("columna de cruce de vehículos ausente")

	// Errores de derivación numérica
	ErrDerivationFailure = errors.New("valor numérico inválido en los precios")
)

// PipelineError es un error con contexto adicional de la corrida
type PipelineError struct {
	Err     error  // Error base
	Stage   string // Etapa del pipeline donde ocurrió
	Details string // Detalles adicionales (hoja, columna, fila)
}

// Error implementa la interfaz error
func (e *PipelineError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna el error subyacente
func (e *PipelineError) Unwrap() error {
	return e.Err
}

// NewPipelineError crea un nuevo PipelineError
func NewPipelineError(err error, stage string, details string) *PipelineError {
	return &PipelineError{
		Err:     err,
		Stage:   stage,
		Details: details,
	}
}

// SchemaError reporta todas las columnas canónicas ausentes tras la
// normalización, no solamente la primera encontrada.
type SchemaError struct {
	Missing []string
}

// Error implementa la interfaz error
func (e *SchemaError) Error() string {
	return fmt.Sprintf("columnas requeridas faltantes: %s", strings.Join(e.Missing, ", "))
}

// IsInputError indica si el error corresponde a un problema con el archivo de entrada
func IsInputError(err error) bool {
	return errors.Is(err, ErrWorkbookNotFound) || errors.Is(err, ErrSheetMissing)
}
