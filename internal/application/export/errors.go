package export

import (
	"errors"
	"fmt"
)

// Stage etapa del pipeline de exportación en la que ocurrió un fallo. Permite
// informar al usuario de la fase exacta (descarga del logo, decodificación o
// generación del documento) sin inspeccionar el error subyacente.
type Stage string

const (
	StageFetch  Stage = "fetch"  // descarga del logo
	StageDecode Stage = "decode" // verificación/decodificación de la imagen
	StageRender Stage = "render" // generación del documento
)

// StageError envuelve un error de exportación con su etapa.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("exportación (etapa %s): %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// StageOf devuelve la etapa de un error de exportación, o "" si el error no
// viene etiquetado.
func StageOf(err error) Stage {
	var se *StageError
	if errors.As(err, &se) {
		return se.Stage
	}
	return ""
}
