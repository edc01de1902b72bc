package errors

import (
	"errors"

	"github.com/louisbranch/subway/internal/platform/errors/i18n"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// DefaultLocale is the locale used when a caller names none.
const DefaultLocale = i18n.BaseLocale

// HandleError turns err into the status returned to gRPC clients. Coded errors
// keep their code and gain a message localized for locale; anything else is
// reported as Internal without leaking its text.
func HandleError(err error, locale string) error {
	if err == nil {
		return nil
	}
	var appErr *Error
	if !errors.As(err, &appErr) {
		return status.Error(codes.Internal, i18n.For(DefaultLocale).Format(string(CodeUnknown), nil))
	}
	catalog := i18n.For(locale)
	return appErr.Status(catalog.Locale(), catalog.Format(string(appErr.Code), appErr.Metadata)).Err()
}

// LocalizedMessage renders the client-facing message for err in locale.
func LocalizedMessage(err error, locale string) string {
	catalog := i18n.For(locale)
	var appErr *Error
	if errors.As(err, &appErr) {
		return catalog.Format(string(appErr.Code), appErr.Metadata)
	}
	return catalog.Format(string(CodeUnknown), nil)
}
