package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/sisoputnfrba/simulador-memoria/paginacion"
	"github.com/sisoputnfrba/simulador-memoria/utils"
)

func main() {
	// Verificar argumentos
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Uso: %s <archivo_configuracion>\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Ejemplo: %s configs/memoria.json\n", os.Args[0])
		os.Exit(1)
	}
	rutaConfig := os.Args[1]

	// Inicializar logger ANTES de usarlo
	utils.InicializarLogger("info", "Memoria")

	config := utils.CargarConfiguracion[MemoryConfig](rutaConfig)
	logger := inicializarLogger(config)
	logger.Info("Configuración cargada", "nivel_log", config.LogLevel, "config_path", rutaConfig)

	adm, err := paginacion.NuevoAdministradorMemoria(config.MemorySize, config.PageSize, logger)
	if err != nil {
		logger.Error("Error inicializando memoria", "error", err)
		os.Exit(1)
	}

	modulo := utils.NuevoModulo("Memoria")
	registrarHandlers(modulo, nuevoServicioMemoria(adm, config))
	modulo.IniciarServidor(config.IPMemory, config.PortMemory)

	logger.Info("Memoria inicializada correctamente")

	// Mantener el programa corriendo hasta recibir una señal
	senales := make(chan os.Signal, 1)
	signal.Notify(senales, os.Interrupt, syscall.SIGTERM)
	<-senales

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := modulo.Server.Detener(ctx); err != nil {
		logger.Error("Error deteniendo servidor", "error", err)
	}
	logger.Info("Módulo Memoria finalizado")
}

func inicializarLogger(config *MemoryConfig) *slog.Logger {
	if config.LogFile == "" {
		return utils.InicializarLogger(config.LogLevel, "Memoria")
	}

	logger, err := utils.InicializarLoggerConArchivo(config.LogFile, config.LogLevel, "Memoria")
	if err != nil {
		utils.ErrorLog.Warn("No se pudo abrir el archivo de log, se usa solo consola", "error", err)
		return utils.InicializarLogger(config.LogLevel, "Memoria")
	}
	return logger
}

func registrarHandlers(modulo *utils.Modulo, s *servicioMemoria) {
	retardo := s.config.MemoryDelay
	registrar := func(tipo int, operacion string, handler utils.HTTPHandlerFunc) {
		modulo.RegistrarHandler(strconv.Itoa(tipo), "default", utils.HandlerConRetardo(operacion, retardo, handler))
	}

	modulo.RegistrarHandler(strconv.Itoa(utils.MensajeHandshake), "default", s.handlerHandshake)
	registrar(utils.MensajeCrearProceso, "crear_proceso", s.handlerCrearProceso)
	registrar(utils.MensajeFinalizarProceso, "finalizar_proceso", s.handlerFinalizarProceso)
	registrar(utils.MensajeTraducirDireccion, "traducir_direccion", s.handlerTraducirDireccion)
	registrar(utils.MensajeTablaPaginas, "tabla_paginas", s.handlerTablaPaginas)
	registrar(utils.MensajeInfoProceso, "info_proceso", s.handlerInfoProceso)
	registrar(utils.MensajeMapaMemoria, "mapa_memoria", s.handlerMapaMemoria)
	registrar(utils.MensajeMarcosDisponibles, "marcos_disponibles", s.handlerMarcosDisponibles)
	registrar(utils.MensajeResumenMemoria, "resumen_memoria", s.handlerResumenMemoria)
	registrar(utils.MensajeEspacioLibre, "espacio_libre", s.handlerEspacioLibre)

	utils.InfoLog.Info("Handlers registrados correctamente")
}
