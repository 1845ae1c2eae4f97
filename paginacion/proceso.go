package paginacion

import (
	"github.com/pkg/errors"
)

// EstadoProceso es el estado de un proceso dentro del administrador.
type EstadoProceso int

const (
	EstadoListo EstadoProceso = iota
	EstadoTerminado
)

func (e EstadoProceso) String() string {
	switch e {
	case EstadoListo:
		return "Ready"
	case EstadoTerminado:
		return "Terminated"
	default:
		return "Desconocido"
	}
}

// Traduccion es el resultado de traducir una dirección lógica
type Traduccion struct {
	Pagina          int `json:"pagina"`
	Desplazamiento  int `json:"desplazamiento"`
	Marco           int `json:"marco"`
	DireccionFisica int `json:"direccion_fisica"`
}

// MetricasProceso almacena estadísticas de uso de memoria de un proceso
type MetricasProceso struct {
	AccesosTablaPaginas int `json:"accesos_tabla_paginas"`
	Traducciones        int `json:"traducciones"`
}

// Proceso mantiene la tabla de páginas de un proceso. Solo el
// AdministradorMemoria crea procesos y les asigna marcos.
type Proceso struct {
	pid             string
	tamanio         int
	tamanioPagina   int
	cantidadPaginas int
	tablaPaginas    []int // índice = página lógica, valor = marco físico
	estado          EstadoProceso
	metricas        MetricasProceso
}

func nuevoProceso(pid string, tamanio int, tamanioPagina int) (*Proceso, error) {
	if tamanio <= 0 {
		return nil, errors.Wrapf(ErrTamanioInvalido, "PID %s, tamaño %d", pid, tamanio)
	}

	return &Proceso{
		pid:             pid,
		tamanio:         tamanio,
		tamanioPagina:   tamanioPagina,
		cantidadPaginas: calcularNumeroPaginas(tamanio, tamanioPagina),
		estado:          EstadoListo,
	}, nil
}

// calcularNumeroPaginas redondea hacia arriba tamanio / tamanioPagina.
// No suma antes de dividir para no desbordar con tamaños cercanos a MaxInt.
func calcularNumeroPaginas(tamanio int, tamanioPagina int) int {
	paginas := tamanio / tamanioPagina
	if tamanio%tamanioPagina != 0 {
		paginas++
	}
	return paginas
}

// asignarMarcos completa la tabla de páginas en orden de página.
// marcos debe tener exactamente cantidadPaginas elementos.
func (p *Proceso) asignarMarcos(marcos []int) {
	p.tablaPaginas = make([]int, p.cantidadPaginas)
	copy(p.tablaPaginas, marcos)
}

// entradasTabla copia la tabla de páginas como filas (página, marco)
func (p *Proceso) entradasTabla() []EntradaTabla {
	tabla := make([]EntradaTabla, len(p.tablaPaginas))
	for pagina, marco := range p.tablaPaginas {
		tabla[pagina] = EntradaTabla{Pagina: pagina, Marco: marco}
	}
	return tabla
}

func (p *Proceso) Pid() string {
	return p.pid
}

func (p *Proceso) Tamanio() int {
	return p.tamanio
}

func (p *Proceso) CantidadPaginas() int {
	return p.cantidadPaginas
}

func (p *Proceso) Estado() EstadoProceso {
	return p.estado
}

// Traducir convierte una dirección lógica del proceso en una física
func (p *Proceso) Traducir(dirLogica int) (Traduccion, error) {
	if dirLogica < 0 || dirLogica >= p.tamanio {
		return Traduccion{}, errors.Wrapf(ErrDireccionFueraDeRango,
			"PID %s, dirección %d, tamaño %d", p.pid, dirLogica, p.tamanio)
	}

	pagina := dirLogica / p.tamanioPagina
	desplazamiento := dirLogica % p.tamanioPagina

	p.metricas.AccesosTablaPaginas++
	if pagina >= p.cantidadPaginas || pagina >= len(p.tablaPaginas) {
		return Traduccion{}, errors.Wrapf(ErrPaginaNoMapeada,
			"PID %s, página %d, páginas %d", p.pid, pagina, len(p.tablaPaginas))
	}

	marco := p.tablaPaginas[pagina]
	p.metricas.Traducciones++

	return Traduccion{
		Pagina:          pagina,
		Desplazamiento:  desplazamiento,
		Marco:           marco,
		DireccionFisica: marco*p.tamanioPagina + desplazamiento,
	}, nil
}

// CambiarEstado solo admite la transición Ready -> Terminated
func (p *Proceso) CambiarEstado(nuevo EstadoProceso) error {
	if p.estado != EstadoListo || nuevo != EstadoTerminado {
		return errors.Wrapf(ErrTransicionInvalida, "PID %s: %s -> %s", p.pid, p.estado, nuevo)
	}
	p.estado = nuevo
	return nil
}
