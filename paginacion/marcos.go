package paginacion

import (
	"github.com/pkg/errors"
)

// poolMarcos lleva la cuenta de los marcos físicos libres.
// Siempre entrega primero los marcos de menor índice.
type poolMarcos struct {
	libres   []bool // true = libre, false = ocupado
	cantidad int    // cantidad de marcos libres
}

func nuevoPoolMarcos(totalMarcos int) *poolMarcos {
	libres := make([]bool, totalMarcos)
	for i := range libres {
		libres[i] = true // Inicialmente, todos los marcos están libres
	}
	return &poolMarcos{libres: libres, cantidad: totalMarcos}
}

// asignar reserva los n marcos libres de menor índice, en orden ascendente.
// Si no alcanzan no modifica nada.
func (p *poolMarcos) asignar(n int) ([]int, error) {
	if n < 0 || n > p.cantidad {
		return nil, errors.Wrapf(ErrMarcosInsuficientes, "necesarios %d, disponibles %d", n, p.cantidad)
	}

	marcos := make([]int, 0, n)
	for i := 0; i < len(p.libres) && len(marcos) < n; i++ {
		if p.libres[i] {
			marcos = append(marcos, i)
		}
	}
	for _, marco := range marcos {
		p.libres[marco] = false
	}
	p.cantidad -= n

	return marcos, nil
}

// liberar devuelve un marco al pool. Liberar un marco ya libre no hace nada.
func (p *poolMarcos) liberar(marco int) {
	if marco < 0 || marco >= len(p.libres) || p.libres[marco] {
		return
	}
	p.libres[marco] = true
	p.cantidad++
}

// disponibles devuelve los marcos libres ordenados de forma ascendente
func (p *poolMarcos) disponibles() []int {
	marcos := make([]int, 0, p.cantidad)
	for i, libre := range p.libres {
		if libre {
			marcos = append(marcos, i)
		}
	}
	return marcos
}

func (p *poolMarcos) contarLibres() int {
	return p.cantidad
}

func (p *poolMarcos) total() int {
	return len(p.libres)
}
