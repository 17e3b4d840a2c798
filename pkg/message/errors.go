package message

import "errors"

var (
	ErrInvalidRecordKey = errors.New("message: invalid record key")
	ErrRecordNotFound   = errors.New("message: record not found")
	ErrInvalidRecord    = errors.New("message: invalid record")
	ErrInvalidFile      = errors.New("message: invalid message file")
	ErrNilRepository    = errors.New("message: repository cannot be nil")
	ErrNilProcessor     = errors.New("message: processor cannot be nil")
	ErrNilSender        = errors.New("message: sender cannot be nil")
	ErrNilReplacer      = errors.New("message: replacer cannot be nil")
	ErrNoLanguages      = errors.New("message: no languages loaded")
)
