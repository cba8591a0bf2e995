package models

import (
	"errors"
	"fmt"
)

// ErrVersionConflict возвращается репозиторием, когда условное обновление
// не нашло запись с ожидаемой версией
var ErrVersionConflict = errors.New("version conflict")

// ValidationError - некорректные входные данные, ничего не сохранено
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s: %s", e.Field, e.Reason)
}

// PermissionError - операция требует другой роли, состояние не изменено
type PermissionError struct {
	Role      Role
	Operation string
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("role %q is not permitted to perform %s", e.Role, e.Operation)
}

// InvalidTransitionError - недопустимый переход статуса тревоги,
// состояние не изменено
type InvalidTransitionError struct {
	From AlertStatus
	To   AlertStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid alert transition: %s -> %s", e.From, e.To)
}

// NotFoundError - запись по указанному идентификатору отсутствует
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %s not found", e.Entity, e.ID)
}

// CollaboratorError - отказ внешнего хранилища или службы доставки.
// Для записи пробрасывается вызывающему как повторяемая ошибка.
type CollaboratorError struct {
	Op  string
	Err error
}

func (e *CollaboratorError) Error() string {
	return fmt.Sprintf("collaborator failure in %s: %v", e.Op, e.Err)
}

func (e *CollaboratorError) Unwrap() error {
	return e.Err
}
