package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"net/http"
)

// HTTPHandlerFunc es el tipo para los manejadores de mensajes HTTP
type HTTPHandlerFunc func(*Mensaje) (interface{}, error)

// HTTPServer representa un servidor HTTP para cualquier módulo
type HTTPServer struct {
	IP       string
	Puerto   int
	Nombre   string
	server   *http.Server
	handlers map[int]HTTPHandlerFunc
	Listener net.Listener
}

// NewHTTPServer crea un nuevo servidor HTTP
func NewHTTPServer(ip string, puerto int, nombre string) *HTTPServer {
	s := &HTTPServer{
		IP:       ip,
		Puerto:   puerto,
		Nombre:   nombre,
		handlers: make(map[int]HTTPHandlerFunc),
	}
	s.server = &http.Server{Handler: s.Handler()}
	return s
}

// RegisterHTTPHandler registra un manejador para un tipo específico de mensaje
func (s *HTTPServer) RegisterHTTPHandler(tipoMensaje int, handler HTTPHandlerFunc) {
	s.handlers[tipoMensaje] = handler
}

// Handler arma el mux con /mensaje y /health
func (s *HTTPServer) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/mensaje", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Método no permitido", http.StatusMethodNotAllowed)
			return
		}

		var mensaje Mensaje
		err := json.NewDecoder(r.Body).Decode(&mensaje)
		if err != nil {
			http.Error(w, fmt.Sprintf("Error decodificando mensaje: %v", err), http.StatusBadRequest)
			return
		}

		handler, exists := s.handlers[mensaje.Tipo]
		if !exists {
			http.Error(w, fmt.Sprintf("No hay manejador para el tipo de mensaje %d", mensaje.Tipo), http.StatusBadRequest)
			return
		}

		respuesta, err := handler(&mensaje)
		if err != nil {
			http.Error(w, fmt.Sprintf("Error en el manejador: %v", err), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(respuesta)
	})

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok", "module": s.Nombre})
	})

	return mux
}

// Start inicia el servidor HTTP. Bloquea hasta que el servidor se detiene.
func (s *HTTPServer) Start() error {
	// Si ya tiene Listener asignado se usa ese
	if s.Listener != nil {
		slog.Info("Servidor HTTP escuchando", "módulo", s.Nombre, "dirección", s.Listener.Addr().String())
		err := s.server.Serve(s.Listener)
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}

	s.server.Addr = fmt.Sprintf("%s:%d", s.IP, s.Puerto)
	slog.Info("Servidor HTTP escuchando", "módulo", s.Nombre, "dirección", s.server.Addr)
	err := s.server.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Detener cierra el servidor esperando las peticiones en curso
func (s *HTTPServer) Detener(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
