package apperr

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// GRPCCode сопоставляет код ошибки ядра с кодом gRPC.
func (c Code) GRPCCode() codes.Code {
	switch c {
	case CodeInvalidIdentity, CodeInvalidReference, CodeInvalidEnumValue:
		return codes.InvalidArgument
	case CodeNotFound:
		return codes.NotFound
	case CodeReferenceNotFound, CodeReferenceNotActive, CodeRelationshipMismatch, CodeRoomUnavailable:
		return codes.FailedPrecondition
	default:
		return codes.Unknown
	}
}

// GRPCStatus позволяет status.FromError / status.Code работать с *Error напрямую.
func (e *Error) GRPCStatus() *status.Status {
	return status.New(e.Code.GRPCCode(), e.Error())
}
