package main

import (
	"os"

	"shelter-adoptions/internal/cli"
)

// @title Shelter Adoptions API
// @version 1.0
// @description Registro de animales resgatados, adoptantes, atendentes y adopciones.
// @BasePath /
func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
