// Package apperr описывает ошибки вызывающей стороны, которые ядро
// обнаруживает до любой записи. Ошибки хранилища сюда не заворачиваются.
package apperr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Leganyst/rentlok/internal/model"
)

type Code string

const (
	CodeInvalidIdentity      Code = "invalid_identity"
	CodeNotFound             Code = "not_found"
	CodeInvalidReference     Code = "invalid_reference"
	CodeReferenceNotFound    Code = "reference_not_found"
	CodeReferenceNotActive   Code = "reference_not_active"
	CodeInvalidEnumValue     Code = "invalid_enum_value"
	CodeRelationshipMismatch Code = "relationship_mismatch"
	CodeRoomUnavailable      Code = "room_unavailable"
)

// Sentinel-значения для errors.Is: совпадают с любой *Error того же кода.
var (
	ErrInvalidIdentity      = &Error{Code: CodeInvalidIdentity}
	ErrNotFound             = &Error{Code: CodeNotFound}
	ErrInvalidReference     = &Error{Code: CodeInvalidReference}
	ErrReferenceNotFound    = &Error{Code: CodeReferenceNotFound}
	ErrReferenceNotActive   = &Error{Code: CodeReferenceNotActive}
	ErrInvalidEnumValue     = &Error{Code: CodeInvalidEnumValue}
	ErrRelationshipMismatch = &Error{Code: CodeRelationshipMismatch}
	ErrRoomUnavailable      = &Error{Code: CodeRoomUnavailable}
)

// Error — ошибка вызывающей стороны с указанием сущности и поля.
type Error struct {
	Code   Code
	Entity model.Kind
	Field  string
	ID     model.ID
	Detail string
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(string(e.Code))
	if e.Entity != "" {
		b.WriteString(": ")
		b.WriteString(string(e.Entity))
		if !e.ID.IsZero() {
			fmt.Fprintf(&b, " %d", e.ID)
		}
	}
	if e.Field != "" {
		fmt.Fprintf(&b, " (field %s)", e.Field)
	}
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	return b.String()
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// CodeOf возвращает код ошибки ядра или пустую строку для прочих ошибок.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

func InvalidIdentity(kind model.Kind) *Error {
	return &Error{Code: CodeInvalidIdentity, Entity: kind, Field: "id", Detail: "id must be set"}
}

func NotFound(kind model.Kind, id model.ID) *Error {
	return &Error{Code: CodeNotFound, Entity: kind, ID: id}
}

func InvalidReference(kind model.Kind, field string) *Error {
	return &Error{Code: CodeInvalidReference, Entity: kind, Field: field, Detail: "reference must be set"}
}

func ReferenceNotFound(kind model.Kind, field string, id model.ID) *Error {
	return &Error{Code: CodeReferenceNotFound, Entity: kind, Field: field, ID: id}
}

func ReferenceNotActive(kind model.Kind, field string, id model.ID) *Error {
	return &Error{Code: CodeReferenceNotActive, Entity: kind, Field: field, ID: id, Detail: "referenced record is inactive"}
}

func InvalidEnumValue(kind model.Kind, field, value string) *Error {
	return &Error{Code: CodeInvalidEnumValue, Entity: kind, Field: field, Detail: fmt.Sprintf("unsupported value %q", value)}
}

func RelationshipMismatch(kind model.Kind, field string, id model.ID, relation string) *Error {
	return &Error{Code: CodeRelationshipMismatch, Entity: kind, Field: field, ID: id, Detail: relation}
}

func RoomUnavailable(id model.ID) *Error {
	return &Error{Code: CodeRoomUnavailable, Entity: model.KindRoom, Field: "room_id", ID: id, Detail: "room is not vacant"}
}
