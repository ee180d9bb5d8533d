package service

import "errors"

var (
	// ErrInvalidInbound - во входящем письме нет отправителя, темы или текста
	ErrInvalidInbound = errors.New("invalid inbound email")
	// ErrInvalidTransition - недопустимая смена статуса обращения
	ErrInvalidTransition = errors.New("invalid report status transition")
	// ErrResponderInactive - ответственный деактивирован
	ErrResponderInactive = errors.New("responder is inactive")
)
