package service

import "errors"

// Sentinel errors returned by the service layer. Handlers translate these into
// HTTP status codes; the texts themselves never reach the client.
var (
	ErrEntradaInvalida      = errors.New("entrada inválida")
	ErrNaoEncontrado        = errors.New("registro não encontrado")
	ErrEmailEmUso           = errors.New("email já cadastrado")
	ErrCredenciaisInvalidas = errors.New("credenciais inválidas")
)
