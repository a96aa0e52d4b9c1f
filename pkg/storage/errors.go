package storage

import "errors"

// ErrRevisionConflict is returned when the stored document changed since it was loaded.
var ErrRevisionConflict = errors.New("document revision conflict")

// ErrDuplicateTransaction is returned when a transaction with the same origin id is already stored.
var ErrDuplicateTransaction = errors.New("duplicate transaction")

// ErrTransactionNotFound is returned when no transaction has the requested id.
var ErrTransactionNotFound = errors.New("transaction not found")

// ErrTaskNotFound is returned when no task has the requested date and id.
var ErrTaskNotFound = errors.New("task not found")

// ErrCorruptDocument is returned when the stored document cannot be decoded.
var ErrCorruptDocument = errors.New("corrupt data document")
