// seed carga datos de demostración (usuarios, tareas, pedidos, documentos y
// actividades) en el motor indicado.
//
// Uso:
//
//	go run ./cmd/seed --backend sqlite
//	go run ./cmd/seed migrate --backend postgres
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
