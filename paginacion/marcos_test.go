package paginacion

import (
	"slices"
	"testing"

	"github.com/pkg/errors"
)

func TestPoolMarcos_AsignaMenoresPrimero(t *testing.T) {
	pool := nuevoPoolMarcos(8)

	marcos, err := pool.asignar(3)
	if err != nil {
		t.Fatalf("Error inesperado: %v", err)
	}
	if !slices.Equal(marcos, []int{0, 1, 2}) {
		t.Errorf("Esperaba [0 1 2], obtuve %v", marcos)
	}

	pool.liberar(1)
	pool.liberar(0)

	marcos, _ = pool.asignar(3)
	if !slices.Equal(marcos, []int{0, 1, 3}) {
		t.Errorf("Esperaba [0 1 3], obtuve %v", marcos)
	}
	if !slices.Equal(pool.disponibles(), []int{4, 5, 6, 7}) {
		t.Errorf("Disponibles incorrectos: %v", pool.disponibles())
	}
}

func TestPoolMarcos_AsignacionAtomica(t *testing.T) {
	pool := nuevoPoolMarcos(4)
	pool.asignar(2)
	antes := pool.disponibles()

	marcos, err := pool.asignar(3)
	if !errors.Is(err, ErrMarcosInsuficientes) {
		t.Errorf("Esperaba ErrMarcosInsuficientes, obtuve %v", err)
	}
	if marcos != nil {
		t.Errorf("No esperaba marcos, obtuve %v", marcos)
	}
	if !slices.Equal(pool.disponibles(), antes) || pool.contarLibres() != 2 {
		t.Errorf("El pool cambió tras una asignación fallida: %v", pool.disponibles())
	}
}

func TestPoolMarcos_CantidadNegativa(t *testing.T) {
	pool := nuevoPoolMarcos(4)

	if _, err := pool.asignar(-1); !errors.Is(err, ErrMarcosInsuficientes) {
		t.Errorf("Esperaba ErrMarcosInsuficientes, obtuve %v", err)
	}
	if pool.contarLibres() != 4 {
		t.Errorf("Esperaba 4 marcos libres, obtuve %d", pool.contarLibres())
	}
}

func TestPoolMarcos_LiberarDosVeces(t *testing.T) {
	pool := nuevoPoolMarcos(2)
	pool.asignar(1)

	pool.liberar(0)
	pool.liberar(0)
	pool.liberar(5)

	if pool.contarLibres() != 2 {
		t.Errorf("Esperaba 2 marcos libres, obtuve %d", pool.contarLibres())
	}
}

func TestPoolMarcos_Vacio(t *testing.T) {
	pool := nuevoPoolMarcos(0)

	if _, err := pool.asignar(1); !errors.Is(err, ErrMarcosInsuficientes) {
		t.Errorf("Esperaba ErrMarcosInsuficientes, obtuve %v", err)
	}
	if len(pool.disponibles()) != 0 {
		t.Errorf("No esperaba marcos disponibles")
	}
}
