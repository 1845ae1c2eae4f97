package paginacion

import (
	"github.com/pkg/errors"
)

var (
	ErrPidDuplicado          = errors.New("ya existe un proceso con ese PID")
	ErrPidInexistente        = errors.New("no existe el proceso")
	ErrPidInvalido           = errors.New("el PID no puede estar vacío")
	ErrMarcosInsuficientes   = errors.New("no hay suficientes marcos disponibles")
	ErrTamanioInvalido       = errors.New("el tamaño del proceso debe ser positivo")
	ErrDireccionFueraDeRango = errors.New("dirección lógica fuera del espacio del proceso")
	ErrTransicionInvalida    = errors.New("transición de estado inválida")
	ErrConfiguracionInvalida = errors.New("configuración de memoria inválida")

	// ErrPaginaNoMapeada indica que la tabla de páginas quedó inconsistente.
	// No es un error de usuario.
	ErrPaginaNoMapeada = errors.New("página no encontrada en la tabla de páginas")
)

// Codigo devuelve un identificador estable del tipo de error, para informarlo
// a otros módulos. Devuelve "INTERNO" para errores desconocidos.
func Codigo(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrPidDuplicado):
		return "PID_DUPLICADO"
	case errors.Is(err, ErrPidInexistente):
		return "PID_INEXISTENTE"
	case errors.Is(err, ErrPidInvalido):
		return "PID_INVALIDO"
	case errors.Is(err, ErrMarcosInsuficientes):
		return "MARCOS_INSUFICIENTES"
	case errors.Is(err, ErrTamanioInvalido):
		return "TAMANIO_INVALIDO"
	case errors.Is(err, ErrDireccionFueraDeRango):
		return "DIRECCION_FUERA_DE_RANGO"
	case errors.Is(err, ErrPaginaNoMapeada):
		return "PAGINA_NO_MAPEADA"
	case errors.Is(err, ErrTransicionInvalida):
		return "TRANSICION_INVALIDA"
	case errors.Is(err, ErrConfiguracionInvalida):
		return "CONFIGURACION_INVALIDA"
	default:
		return "INTERNO"
	}
}
