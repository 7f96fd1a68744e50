package domain

import "errors"

var (
	ErrNotFound   = errors.New("project not found")
	ErrEmptyField = errors.New("name and description are required")
)
