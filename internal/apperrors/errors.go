package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnbalanced indicates that a journal entry's debits and credits do not match.
var ErrUnbalanced = errors.New("journal entry is not balanced")

// ErrMissingAccount indicates that a named account required for automated posting is absent.
var ErrMissingAccount = errors.New("required ledger account is missing")

// ErrInsufficientStock indicates that a sale would drive a product's stock below zero.
var ErrInsufficientStock = errors.New("insufficient stock")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the acting user lacks the required role.
var ErrForbidden = errors.New("forbidden")

// ErrConflict indicates the operation conflicts with the current state of the resource.
var ErrConflict = errors.New("conflicting state")

// ErrInternal indicates an unexpected storage or infrastructure failure.
var ErrInternal = errors.New("internal error")
