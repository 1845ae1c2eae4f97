package utils

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
)

// Modulo representa un módulo genérico del sistema
type Modulo struct {
	Nombre      string
	Server      *HTTPServer
	HandlerFunc map[string]map[string]HTTPHandlerFunc
}

// NuevoModulo crea una nueva instancia de un módulo
func NuevoModulo(nombre string) *Modulo {
	return &Modulo{
		Nombre:      nombre,
		HandlerFunc: make(map[string]map[string]HTTPHandlerFunc),
	}
}

// RegistrarHandler registra un handler para un tipo de mensaje y operación específicos
func (m *Modulo) RegistrarHandler(tipo string, operacion string, handler HTTPHandlerFunc) {
	if _, existe := m.HandlerFunc[tipo]; !existe {
		m.HandlerFunc[tipo] = make(map[string]HTTPHandlerFunc)
	}
	m.HandlerFunc[tipo][operacion] = handler
}

// Despachar busca el handler de la operación del mensaje, o el "default" del tipo
func (m *Modulo) Despachar(msg *Mensaje) (interface{}, error) {
	handlersPorOperacion, existe := m.HandlerFunc[strconv.Itoa(msg.Tipo)]
	if !existe {
		return nil, fmt.Errorf("no hay handler para el tipo de mensaje %d", msg.Tipo)
	}

	operacion := msg.Operacion
	if operacion == "" {
		operacion = "default"
	}

	handler, existe := handlersPorOperacion[operacion]
	if !existe {
		handler, existe = handlersPorOperacion["default"]
		if !existe {
			slog.Error("No hay handler para operación", "tipo", msg.Tipo, "operacion", operacion)
			return nil, fmt.Errorf("no hay handler para operación %s", operacion)
		}
	}

	return handler(msg)
}

// PrepararServidor crea el servidor HTTP del módulo y le registra los handlers
func (m *Modulo) PrepararServidor(ip string, puerto int) *HTTPServer {
	m.Server = NewHTTPServer(ip, puerto, m.Nombre)

	for tipoStr := range m.HandlerFunc {
		tipo, err := strconv.Atoi(tipoStr)
		if err != nil {
			slog.Error("Error al convertir tipo de mensaje a entero", "tipo", tipoStr, "error", err)
			continue
		}
		m.Server.RegisterHTTPHandler(tipo, m.Despachar)
	}

	return m.Server
}

// IniciarServidor crea e inicializa el servidor HTTP del módulo
func (m *Modulo) IniciarServidor(ip string, puerto int) {
	m.PrepararServidor(ip, puerto)

	go func() {
		err := m.Server.Start()
		if err != nil {
			slog.Error("Error al iniciar servidor HTTP", "error", err)
			os.Exit(1)
		}
	}()

	slog.Info("Servidor HTTP iniciado", "módulo", m.Nombre, "dirección", fmt.Sprintf("%s:%d", ip, puerto))
}

// LeerConfiguracion decodifica el archivo JSON de ruta en un valor de tipo T
func LeerConfiguracion[T any](ruta string) (*T, error) {
	absPath, err := filepath.Abs(ruta)
	if err != nil {
		return nil, fmt.Errorf("error obteniendo ruta absoluta %s: %v", ruta, err)
	}

	file, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("error abriendo archivo de configuración %s: %v", absPath, err)
	}
	defer file.Close()

	var config T
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&config); err != nil {
		return nil, fmt.Errorf("error decodificando configuración %s: %v", absPath, err)
	}

	return &config, nil
}

// CargarConfiguracion es como LeerConfiguracion pero termina el programa si falla
func CargarConfiguracion[T any](ruta string) *T {
	slog.Info("Cargando configuración", "ruta", ruta)

	config, err := LeerConfiguracion[T](ruta)
	if err != nil {
		slog.Error("Error cargando configuración", "error", err)
		os.Exit(1)
	}

	slog.Info("Configuración cargada correctamente")
	return config
}

// ============================================================================
// Constantes para tipos de mensajes entre módulos
// ============================================================================
const (
	// === COMUNICACIÓN BÁSICA (1-9) ===
	MensajeHandshake = 1 // Conexión inicial

	// === CONSULTAS DE MEMORIA (10-19) ===
	MensajeTraducirDireccion = 12 // Traducir dirección lógica
	MensajeEspacioLibre      = 14 // Consultar espacio
	MensajeTablaPaginas      = 16 // Tabla de páginas de un proceso
	MensajeMapaMemoria       = 17 // Estado de todos los marcos
	MensajeMarcosDisponibles = 18 // Lista de marcos libres
	MensajeResumenMemoria    = 19 // Configuración y ocupación

	// === GESTIÓN DE PROCESOS (20-29) ===
	MensajeCrearProceso     = 20 // Crear proceso
	MensajeFinalizarProceso = 21 // Terminar proceso
	MensajeInfoProceso      = 24 // Tamaño, páginas y estado
)
