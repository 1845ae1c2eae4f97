// Package paginacion simula la administración de memoria con paginación
// simple: asignación de marcos, traducción de direcciones y liberación.
package paginacion

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/pkg/errors"
)

// EntradaTabla es una fila de la tabla de páginas de un proceso
type EntradaTabla struct {
	Pagina int `json:"pagina"`
	Marco  int `json:"marco"`
}

// EstadoMarco indica a quién pertenece un marco físico
type EstadoMarco struct {
	Marco int    `json:"marco"`
	Pid   string `json:"pid,omitempty"`
	Libre bool   `json:"libre"`
}

// InformacionProceso resume un proceso registrado
type InformacionProceso struct {
	Pid             string          `json:"pid"`
	Tamanio         int             `json:"tamanio"`
	CantidadPaginas int             `json:"cantidad_paginas"`
	Estado          string          `json:"estado"`
	Metricas        MetricasProceso `json:"metricas"`
}

// ResumenMemoria describe la configuración y ocupación de la memoria
type ResumenMemoria struct {
	MemoriaTotal   int `json:"memoria_total"`
	TamanioPagina  int `json:"tamanio_pagina"`
	TotalMarcos    int `json:"total_marcos"`
	MarcosLibres   int `json:"marcos_libres"`
	MarcosOcupados int `json:"marcos_ocupados"`
}

// AdministradorMemoria es dueño de los procesos, del pool de marcos y del
// mapa de marcos. Todas sus operaciones se serializan con un único mutex.
type AdministradorMemoria struct {
	mutex         sync.Mutex
	memoriaTotal  int
	tamanioPagina int
	pool          *poolMarcos
	duenioMarco   []string // PID dueño; solo vale si el marco está ocupado en pool
	procesos      map[string]*Proceso
	logger        *slog.Logger
}

// NuevoAdministradorMemoria crea un administrador con memoriaTotal/tamanioPagina
// marcos. El resto de la división se descarta.
func NuevoAdministradorMemoria(memoriaTotal int, tamanioPagina int, logger *slog.Logger) (*AdministradorMemoria, error) {
	if tamanioPagina <= 0 || memoriaTotal < 0 {
		return nil, errors.Wrapf(ErrConfiguracionInvalida, "memoria %d, página %d", memoriaTotal, tamanioPagina)
	}
	if logger == nil {
		logger = slog.Default()
	}

	totalMarcos := memoriaTotal / tamanioPagina
	adm := &AdministradorMemoria{
		memoriaTotal:  memoriaTotal,
		tamanioPagina: tamanioPagina,
		pool:          nuevoPoolMarcos(totalMarcos),
		duenioMarco:   make([]string, totalMarcos),
		procesos:      make(map[string]*Proceso),
		logger:        logger,
	}

	logger.Info("Memoria inicializada",
		"tamaño_total", memoriaTotal,
		"tamaño_página", tamanioPagina,
		"total_marcos", totalMarcos)

	return adm, nil
}

// CrearProceso registra un proceso y le asigna todos sus marcos, o falla sin
// modificar nada. Devuelve la tabla de páginas resultante.
func (a *AdministradorMemoria) CrearProceso(pid string, tamanio int) ([]EntradaTabla, error) {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	if pid == "" {
		a.logger.Warn("PID vacío", "tamanio", tamanio)
		return nil, errors.WithStack(ErrPidInvalido)
	}

	if _, existe := a.procesos[pid]; existe {
		a.logger.Warn("PID duplicado", "pid", pid)
		return nil, errors.Wrapf(ErrPidDuplicado, "PID %s", pid)
	}

	proceso, err := nuevoProceso(pid, tamanio, a.tamanioPagina)
	if err != nil {
		a.logger.Warn("Tamaño de proceso inválido", "pid", pid, "tamanio", tamanio)
		return nil, err
	}

	marcos, err := a.pool.asignar(proceso.CantidadPaginas())
	if err != nil {
		a.logger.Warn("Marcos insuficientes",
			"pid", pid,
			"paginas_requeridas", proceso.CantidadPaginas(),
			"marcos_libres", a.pool.contarLibres())
		return nil, errors.Wrapf(err, "PID %s", pid)
	}

	proceso.asignarMarcos(marcos)
	for _, marco := range marcos {
		a.duenioMarco[marco] = pid
	}
	a.procesos[pid] = proceso

	a.logger.Info(fmt.Sprintf("## PID: %s - Proceso Creado - Tamaño: %d", pid, tamanio))
	a.logger.Debug("Marcos asignados", "pid", pid, "marcos", marcos)
	return proceso.entradasTabla(), nil
}

// FinalizarProceso libera los marcos del proceso y lo quita del registro
func (a *AdministradorMemoria) FinalizarProceso(pid string) error {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	proceso, existe := a.procesos[pid]
	if !existe {
		a.logger.Warn("No existe el proceso", "pid", pid)
		return errors.Wrapf(ErrPidInexistente, "PID %s", pid)
	}

	if err := proceso.CambiarEstado(EstadoTerminado); err != nil {
		a.logger.Error("Estado inconsistente al finalizar", "pid", pid, "error", err)
		return err
	}

	for _, marco := range proceso.tablaPaginas {
		a.pool.liberar(marco)
		a.duenioMarco[marco] = ""
	}
	delete(a.procesos, pid)

	a.logger.Info(fmt.Sprintf("## PID: %s - Proceso Destruido - Métricas: ATP;%d;Traducciones;%d",
		pid, proceso.metricas.AccesosTablaPaginas, proceso.metricas.Traducciones))
	a.logger.Debug("Marcos liberados", "pid", pid, "cantidad", len(proceso.tablaPaginas))
	return nil
}

// TraducirDireccion traduce una dirección lógica de pid a dirección física
func (a *AdministradorMemoria) TraducirDireccion(pid string, dirLogica int) (Traduccion, error) {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	proceso, existe := a.procesos[pid]
	if !existe {
		a.logger.Warn("No existe el proceso", "pid", pid)
		return Traduccion{}, errors.Wrapf(ErrPidInexistente, "PID %s", pid)
	}

	if dirLogica < 0 || dirLogica >= proceso.Tamanio() {
		a.logger.Warn("Dirección fuera de rango", "pid", pid, "dir_logica", dirLogica, "tamanio", proceso.Tamanio())
		return Traduccion{}, errors.Wrapf(ErrDireccionFueraDeRango,
			"PID %s, dirección %d, tamaño %d", pid, dirLogica, proceso.Tamanio())
	}

	traduccion, err := proceso.Traducir(dirLogica)
	if err != nil {
		if errors.Is(err, ErrPaginaNoMapeada) {
			a.logger.Error("Tabla de páginas inconsistente", "pid", pid, "dir_logica", dirLogica, "error", err)
		}
		return Traduccion{}, err
	}

	a.logger.Info("Dirección traducida",
		"pid", pid,
		"dir_logica", dirLogica,
		"pagina", traduccion.Pagina,
		"desplazamiento", traduccion.Desplazamiento,
		"marco", traduccion.Marco,
		"dir_fisica", traduccion.DireccionFisica)

	return traduccion, nil
}

// TablaPaginas devuelve la tabla de páginas de pid ordenada por página
func (a *AdministradorMemoria) TablaPaginas(pid string) ([]EntradaTabla, error) {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	proceso, existe := a.procesos[pid]
	if !existe {
		return nil, errors.Wrapf(ErrPidInexistente, "PID %s", pid)
	}

	return proceso.entradasTabla(), nil
}

// MapaMemoria devuelve el estado de todos los marcos, en orden
func (a *AdministradorMemoria) MapaMemoria() []EstadoMarco {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	mapa := make([]EstadoMarco, len(a.duenioMarco))
	for marco, pid := range a.duenioMarco {
		if a.pool.libres[marco] {
			mapa[marco] = EstadoMarco{Marco: marco, Libre: true}
			continue
		}
		mapa[marco] = EstadoMarco{Marco: marco, Pid: pid}
	}
	return mapa
}

// MarcosDisponibles devuelve los marcos libres en orden ascendente
func (a *AdministradorMemoria) MarcosDisponibles() []int {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	return a.pool.disponibles()
}

func (a *AdministradorMemoria) InfoProceso(pid string) (InformacionProceso, error) {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	proceso, existe := a.procesos[pid]
	if !existe {
		return InformacionProceso{}, errors.Wrapf(ErrPidInexistente, "PID %s", pid)
	}

	return InformacionProceso{
		Pid:             pid,
		Tamanio:         proceso.Tamanio(),
		CantidadPaginas: proceso.CantidadPaginas(),
		Estado:          proceso.Estado().String(),
		Metricas:        proceso.metricas,
	}, nil
}

func (a *AdministradorMemoria) Resumen() ResumenMemoria {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	libres := a.pool.contarLibres()
	return ResumenMemoria{
		MemoriaTotal:   a.memoriaTotal,
		TamanioPagina:  a.tamanioPagina,
		TotalMarcos:    a.pool.total(),
		MarcosLibres:   libres,
		MarcosOcupados: a.pool.total() - libres,
	}
}

// EspacioLibre calcula el espacio libre total en unidades de memoria
func (a *AdministradorMemoria) EspacioLibre() int {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	return a.pool.contarLibres() * a.tamanioPagina
}
