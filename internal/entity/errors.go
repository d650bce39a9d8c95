package entity

import "errors"

var (
	ErrLeadNotFound     = errors.New("lead não encontrado")
	ErrPropertyNotFound = errors.New("imóvel não encontrado")
	ErrReleaseNotFound  = errors.New("empreendimento não encontrado")
	ErrPhoneAlreadyUsed = errors.New("já existe um lead com este telefone")
)
