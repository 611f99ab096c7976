package rendering

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownSelection indica um valor fora do enum do seletor. O controle da página
	// só emite primary/repeat, então chegar aqui é erro interno.
	ErrUnknownSelection = errors.New("unknown table selection")
	ErrDatasetMissing   = errors.New("dataset not registered for selection")
)

// RenderError é um erro com contexto adicional para a renderização
type RenderError struct {
	Err       error  // Erro base
	Code      string // Código de erro para API
	Selection string // Valor recebido do seletor
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("%s: %q", e.Err.Error(), e.Selection)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

func NewRenderError(err error, code string, selection string) *RenderError {
	return &RenderError{
		Err:       err,
		Code:      code,
		Selection: selection,
	}
}
