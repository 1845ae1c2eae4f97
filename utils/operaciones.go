package utils

import (
	"fmt"
	"log/slog"
	"time"
)

// AplicarRetardo aplica un retardo simulado y lo registra
func AplicarRetardo(operacion string, duracionMs int) {
	if duracionMs <= 0 {
		return
	}
	slog.Debug("Aplicando retardo", "operación", operacion, "duración_ms", duracionMs)
	time.Sleep(time.Duration(duracionMs) * time.Millisecond)
}

// ExtraerDatos devuelve los datos del mensaje como mapa
func ExtraerDatos(msg *Mensaje) (map[string]interface{}, error) {
	datos, ok := msg.Datos.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("formato de datos incorrecto: %T", msg.Datos)
	}
	return datos, nil
}

// ExtraerEntero lee un campo numérico de datos. JSON decodifica los números
// como float64; se rechazan los que tienen parte decimal.
func ExtraerEntero(datos map[string]interface{}, campo string) (int, error) {
	switch v := datos[campo].(type) {
	case float64:
		if v != float64(int(v)) {
			return 0, fmt.Errorf("el campo %s debe ser un número entero", campo)
		}
		return int(v), nil
	case int:
		return v, nil
	default:
		return 0, fmt.Errorf("%s no proporcionado o formato incorrecto", campo)
	}
}

// ExtraerTexto lee un campo de datos como texto. Acepta también números
// enteros, que se convierten a su representación decimal.
func ExtraerTexto(datos map[string]interface{}, campo string) (string, error) {
	switch v := datos[campo].(type) {
	case string:
		if v == "" {
			return "", fmt.Errorf("%s vacío", campo)
		}
		return v, nil
	case float64, int:
		n, err := ExtraerEntero(datos, campo)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%d", n), nil
	default:
		return "", fmt.Errorf("%s no proporcionado o formato incorrecto", campo)
	}
}

// HandlerConRetardo envuelve un handler aplicando antes el retardo indicado
func HandlerConRetardo(operacion string, retardoMs int, handler HTTPHandlerFunc) HTTPHandlerFunc {
	return func(msg *Mensaje) (interface{}, error) {
		slog.Debug("Operación recibida", "origen", msg.Origen, "tipo", msg.Tipo, "operacion", operacion)
		AplicarRetardo(operacion, retardoMs)
		return handler(msg)
	}
}
