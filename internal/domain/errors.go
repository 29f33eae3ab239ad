package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound           = errors.New("recurso não encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidQuantity    = errors.New("quantidade deve ser maior que zero")
	ErrInvalidKind        = errors.New("tipo de movimentação inválido")
	ErrInvalidDate        = errors.New("data inválida, formato esperado AAAA-MM-DD")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("não autorizado")
	ErrForbidden          = errors.New("acesso negado")
	ErrPrescriptionClosed = errors.New("prescrição encerrada")
)
