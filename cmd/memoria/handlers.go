package main

import (
	"github.com/sisoputnfrba/simulador-memoria/paginacion"
	"github.com/sisoputnfrba/simulador-memoria/utils"
)

// servicioMemoria atiende los mensajes de otros módulos sobre un único
// administrador de memoria
type servicioMemoria struct {
	adm    *paginacion.AdministradorMemoria
	config *MemoryConfig
}

func nuevoServicioMemoria(adm *paginacion.AdministradorMemoria, config *MemoryConfig) *servicioMemoria {
	return &servicioMemoria{adm: adm, config: config}
}

func respuestaError(err error) map[string]interface{} {
	return map[string]interface{}{
		"error":  err.Error(),
		"codigo": paginacion.Codigo(err),
	}
}

func respuestaDatosInvalidos(err error) map[string]interface{} {
	utils.ErrorLog.Error("Datos de mensaje inválidos", "error", err)
	return map[string]interface{}{
		"error":  err.Error(),
		"codigo": "DATOS_INVALIDOS",
	}
}

// extraerPid devuelve los datos del mensaje y el PID que contienen
func extraerPid(msg *utils.Mensaje) (map[string]interface{}, string, error) {
	datos, err := utils.ExtraerDatos(msg)
	if err != nil {
		return nil, "", err
	}
	pid, err := utils.ExtraerTexto(datos, "pid")
	if err != nil {
		return nil, "", err
	}
	return datos, pid, nil
}

// Handler para handshake
func (s *servicioMemoria) handlerHandshake(msg *utils.Mensaje) (interface{}, error) {
	utils.InfoLog.Info("Handshake recibido", "origen", msg.Origen)

	resumen := s.adm.Resumen()
	return map[string]interface{}{
		"status":       "OK",
		"tam_pagina":   resumen.TamanioPagina,
		"total_marcos": resumen.TotalMarcos,
	}, nil
}

func (s *servicioMemoria) handlerCrearProceso(msg *utils.Mensaje) (interface{}, error) {
	datos, pid, err := extraerPid(msg)
	if err != nil {
		return respuestaDatosInvalidos(err), nil
	}
	tamanio, err := utils.ExtraerEntero(datos, "tamanio")
	if err != nil {
		return respuestaDatosInvalidos(err), nil
	}

	utils.InfoLog.Info("Solicitud de creación de proceso", "pid", pid, "tamanio", tamanio, "origen", msg.Origen)

	tabla, err := s.adm.CrearProceso(pid, tamanio)
	if err != nil {
		return respuestaError(err), nil
	}

	return map[string]interface{}{
		"status":        "OK",
		"tabla_paginas": tabla,
	}, nil
}

func (s *servicioMemoria) handlerFinalizarProceso(msg *utils.Mensaje) (interface{}, error) {
	_, pid, err := extraerPid(msg)
	if err != nil {
		return respuestaDatosInvalidos(err), nil
	}

	utils.InfoLog.Info("Solicitud de finalización de proceso", "pid", pid, "origen", msg.Origen)

	if err := s.adm.FinalizarProceso(pid); err != nil {
		return respuestaError(err), nil
	}

	return map[string]interface{}{
		"status": "OK",
	}, nil
}

func (s *servicioMemoria) handlerTraducirDireccion(msg *utils.Mensaje) (interface{}, error) {
	datos, pid, err := extraerPid(msg)
	if err != nil {
		return respuestaDatosInvalidos(err), nil
	}
	dirLogica, err := utils.ExtraerEntero(datos, "direccion_logica")
	if err != nil {
		return respuestaDatosInvalidos(err), nil
	}

	traduccion, err := s.adm.TraducirDireccion(pid, dirLogica)
	if err != nil {
		return respuestaError(err), nil
	}

	return map[string]interface{}{
		"status":     "OK",
		"traduccion": traduccion,
	}, nil
}

func (s *servicioMemoria) handlerTablaPaginas(msg *utils.Mensaje) (interface{}, error) {
	_, pid, err := extraerPid(msg)
	if err != nil {
		return respuestaDatosInvalidos(err), nil
	}

	tabla, err := s.adm.TablaPaginas(pid)
	if err != nil {
		return respuestaError(err), nil
	}

	return map[string]interface{}{
		"status":        "OK",
		"tabla_paginas": tabla,
	}, nil
}

func (s *servicioMemoria) handlerInfoProceso(msg *utils.Mensaje) (interface{}, error) {
	_, pid, err := extraerPid(msg)
	if err != nil {
		return respuestaDatosInvalidos(err), nil
	}

	info, err := s.adm.InfoProceso(pid)
	if err != nil {
		return respuestaError(err), nil
	}

	return map[string]interface{}{
		"status":  "OK",
		"proceso": info,
	}, nil
}

func (s *servicioMemoria) handlerMapaMemoria(msg *utils.Mensaje) (interface{}, error) {
	return map[string]interface{}{
		"status": "OK",
		"marcos": s.adm.MapaMemoria(),
	}, nil
}

func (s *servicioMemoria) handlerMarcosDisponibles(msg *utils.Mensaje) (interface{}, error) {
	return map[string]interface{}{
		"status": "OK",
		"marcos": s.adm.MarcosDisponibles(),
	}, nil
}

func (s *servicioMemoria) handlerResumenMemoria(msg *utils.Mensaje) (interface{}, error) {
	return map[string]interface{}{
		"status":  "OK",
		"resumen": s.adm.Resumen(),
	}, nil
}

func (s *servicioMemoria) handlerEspacioLibre(msg *utils.Mensaje) (interface{}, error) {
	espacioLibre := s.adm.EspacioLibre()

	utils.InfoLog.Info("Espacio libre consultado", "espacio_libre", espacioLibre)

	return map[string]interface{}{
		"status":        "OK",
		"espacio_libre": espacioLibre,
	}, nil
}
