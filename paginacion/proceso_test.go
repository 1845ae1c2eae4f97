package paginacion

import (
	"math"
	"testing"

	"github.com/pkg/errors"
)

func TestCalcularNumeroPaginas(t *testing.T) {
	casos := []struct {
		tamanio, tamanioPagina, esperado int
	}{
		{10, 4, 3},
		{1, 4, 1},
		{4, 4, 1},
		{5, 4, 2},
		{64, 4, 16},
		{7, 1, 7},
		{math.MaxInt, 4, math.MaxInt/4 + 1},
		{math.MaxInt, 1, math.MaxInt},
	}

	for _, c := range casos {
		if got := calcularNumeroPaginas(c.tamanio, c.tamanioPagina); got != c.esperado {
			t.Errorf("calcularNumeroPaginas(%d, %d) = %d, esperado %d", c.tamanio, c.tamanioPagina, got, c.esperado)
		}
	}
}

func TestNuevoProceso_TamanioInvalido(t *testing.T) {
	for _, tamanio := range []int{0, -1, -10} {
		p, err := nuevoProceso("P1", tamanio, 4)
		if !errors.Is(err, ErrTamanioInvalido) {
			t.Errorf("tamaño %d: esperaba ErrTamanioInvalido, obtuve %v", tamanio, err)
		}
		if p != nil {
			t.Errorf("tamaño %d: no esperaba proceso", tamanio)
		}
	}
}

func TestProceso_Traducir(t *testing.T) {
	p, err := nuevoProceso("P1", 10, 4)
	if err != nil {
		t.Fatalf("Error inesperado: %v", err)
	}
	p.asignarMarcos([]int{7, 3, 12})

	tr, err := p.Traducir(9)
	if err != nil {
		t.Fatalf("Error inesperado: %v", err)
	}
	esperado := Traduccion{Pagina: 2, Desplazamiento: 1, Marco: 12, DireccionFisica: 49}
	if tr != esperado {
		t.Errorf("Esperaba %+v, obtuve %+v", esperado, tr)
	}

	tr, err = p.Traducir(0)
	if err != nil || tr.Marco != 7 || tr.DireccionFisica != 28 {
		t.Errorf("Traducción de 0 incorrecta: %+v, %v", tr, err)
	}

	for _, dir := range []int{-1, 10, 11, 100} {
		if _, err := p.Traducir(dir); !errors.Is(err, ErrDireccionFueraDeRango) {
			t.Errorf("dirección %d: esperaba ErrDireccionFueraDeRango, obtuve %v", dir, err)
		}
	}

	if p.metricas.Traducciones != 2 {
		t.Errorf("Esperaba 2 traducciones, obtuve %d", p.metricas.Traducciones)
	}
}

func TestProceso_TraducirSinTabla(t *testing.T) {
	p, _ := nuevoProceso("P1", 10, 4)

	_, err := p.Traducir(5)
	if !errors.Is(err, ErrPaginaNoMapeada) {
		t.Errorf("Esperaba ErrPaginaNoMapeada, obtuve %v", err)
	}
}

func TestProceso_CambiarEstado(t *testing.T) {
	p, _ := nuevoProceso("P1", 4, 4)

	if p.Estado() != EstadoListo {
		t.Fatalf("Estado inicial %s, esperaba Ready", p.Estado())
	}
	if err := p.CambiarEstado(EstadoListo); !errors.Is(err, ErrTransicionInvalida) {
		t.Errorf("Ready -> Ready debería fallar, obtuve %v", err)
	}
	if err := p.CambiarEstado(EstadoTerminado); err != nil {
		t.Errorf("Ready -> Terminated no debería fallar: %v", err)
	}
	if err := p.CambiarEstado(EstadoTerminado); !errors.Is(err, ErrTransicionInvalida) {
		t.Errorf("Terminated -> Terminated debería fallar, obtuve %v", err)
	}
	if err := p.CambiarEstado(EstadoListo); !errors.Is(err, ErrTransicionInvalida) {
		t.Errorf("Terminated -> Ready debería fallar, obtuve %v", err)
	}
	if p.Estado().String() != "Terminated" {
		t.Errorf("Esperaba Terminated, obtuve %s", p.Estado())
	}
}

func TestCodigo(t *testing.T) {
	casos := map[error]string{
		nil:                                 "",
		ErrPidDuplicado:                     "PID_DUPLICADO",
		ErrPidInvalido:                      "PID_INVALIDO",
		errors.Wrap(ErrPidInexistente, "x"): "PID_INEXISTENTE",
		ErrMarcosInsuficientes:              "MARCOS_INSUFICIENTES",
		ErrTamanioInvalido:                  "TAMANIO_INVALIDO",
		ErrDireccionFueraDeRango:            "DIRECCION_FUERA_DE_RANGO",
		ErrPaginaNoMapeada:                  "PAGINA_NO_MAPEADA",
		errors.New("otro"):                  "INTERNO",
	}

	for err, esperado := range casos {
		if got := Codigo(err); got != esperado {
			t.Errorf("Codigo(%v) = %q, esperado %q", err, got, esperado)
		}
	}
}
