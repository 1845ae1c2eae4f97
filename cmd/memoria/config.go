package main

// MemoryConfig representa la configuración específica del módulo Memoria
type MemoryConfig struct {
	IPMemory    string `json:"IP_MEMORIA"`
	PortMemory  int    `json:"PUERTO_MEMORIA"`
	LogLevel    string `json:"LOG_LEVEL"`
	LogFile     string `json:"LOG_FILE"`        // Vacío = solo consola
	MemorySize  int    `json:"TAM_MEMORIA"`     // Tamaño de la memoria
	PageSize    int    `json:"TAM_PAGINA"`      // Tamaño de página, misma unidad que la memoria
	MemoryDelay int    `json:"RETARDO_MEMORIA"` // Retardo de acceso a memoria en ms
}
