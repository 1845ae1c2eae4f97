package utils

import (
	"context"
	"net"
	"testing"
	"time"
)

func TestHTTPServer_IdaYVuelta(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Error abriendo listener: %v", err)
	}

	m := NuevoModulo("Memoria")
	m.RegistrarHandler("20", "default", func(msg *Mensaje) (interface{}, error) {
		datos, err := ExtraerDatos(msg)
		if err != nil {
			return nil, err
		}
		pid, err := ExtraerTexto(datos, "pid")
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"status": "OK", "pid": pid, "origen": msg.Origen}, nil
	})

	servidor := m.PrepararServidor("127.0.0.1", 0)
	servidor.Listener = listener
	terminado := make(chan error, 1)
	go func() { terminado <- servidor.Start() }()
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		servidor.Detener(ctx)
		if err := <-terminado; err != nil {
			t.Errorf("Error del servidor: %v", err)
		}
	}()

	cliente := NewHTTPClientURL("http://"+listener.Addr().String(), "Prueba")
	if err := cliente.VerificarConexion(); err != nil {
		t.Fatalf("Error verificando conexión: %v", err)
	}

	var respuesta map[string]string
	err = cliente.EnviarHTTPMensajeEn(20, "", map[string]interface{}{"pid": "P1"}, &respuesta)
	if err != nil {
		t.Fatalf("Error inesperado: %v", err)
	}
	if respuesta["status"] != "OK" || respuesta["pid"] != "P1" || respuesta["origen"] != "Prueba" {
		t.Errorf("Respuesta inesperada: %v", respuesta)
	}

	// Tipo sin handler
	if _, err := cliente.EnviarHTTPMensaje(99, "", nil); err == nil {
		t.Error("Esperaba error para un tipo sin handler")
	}

	// Error del handler
	if _, err := cliente.EnviarHTTPMensaje(20, "", "no es un mapa"); err == nil {
		t.Error("Esperaba error del handler")
	}
}

func TestExtraerCampos(t *testing.T) {
	datos := map[string]interface{}{
		"pid":      "P1",
		"pid_num":  float64(7),
		"tamanio":  float64(10),
		"decimal":  2.5,
		"vacio":    "",
		"booleano": true,
	}

	if v, err := ExtraerEntero(datos, "tamanio"); err != nil || v != 10 {
		t.Errorf("tamanio: %d, %v", v, err)
	}
	if _, err := ExtraerEntero(datos, "decimal"); err == nil {
		t.Error("Esperaba error para un número con decimales")
	}
	if _, err := ExtraerEntero(datos, "falta"); err == nil {
		t.Error("Esperaba error para un campo ausente")
	}
	if v, err := ExtraerTexto(datos, "pid"); err != nil || v != "P1" {
		t.Errorf("pid: %q, %v", v, err)
	}
	if v, err := ExtraerTexto(datos, "pid_num"); err != nil || v != "7" {
		t.Errorf("pid_num: %q, %v", v, err)
	}
	if _, err := ExtraerTexto(datos, "vacio"); err == nil {
		t.Error("Esperaba error para texto vacío")
	}
	if _, err := ExtraerTexto(datos, "booleano"); err == nil {
		t.Error("Esperaba error para un booleano")
	}
}
