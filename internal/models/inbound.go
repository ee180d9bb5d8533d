package models

// InboundEmail - письмо пациента, пришедшее через inbound-вебхук
type InboundEmail struct {
	From     string
	FromName string
	Subject  string
	TextBody string
	HTMLBody string
}
