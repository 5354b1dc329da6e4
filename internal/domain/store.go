package domain

// RegionCentro é a única região com regra de exclusão de dias: lojas do
// centro fecham aos domingos, então os domingos saem do divisor da meta diária.
const RegionCentro = "centro"

// Store representa uma loja (tabela lojas). Region é uma tag livre; qualquer
// valor diferente de "centro" é tratado uniformemente, sem exclusão de dias.
type Store struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Region string `json:"region"`
}
