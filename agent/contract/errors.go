package contract

import "errors"

var (
	ErrModelInvoke = errors.New("model invoke failed")
	ErrRetrieval   = errors.New("context retrieval failed")
	ErrValidation  = errors.New("validation failed")
	ErrEmptyQuery  = errors.New("customer query is empty")
)
