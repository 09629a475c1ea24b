package errors

import stderrors "errors"

// KindOf reports the Kind of the first DomainError in err's chain. A
// ValidationError reports KindValidation. Unknown errors report "".
func KindOf(err error) Kind {
	var verr *ValidationError
	if stderrors.As(err, &verr) {
		return KindValidation
	}
	var derr *DomainError
	if stderrors.As(err, &derr) {
		return derr.Kind
	}
	return ""
}

// CodeOf reports the Code of the first DomainError in err's chain.
func CodeOf(err error) string {
	if stderrors.Is(err, ErrValidationFailed) {
		return ErrValidationFailed.Code
	}
	var derr *DomainError
	if stderrors.As(err, &derr) {
		return derr.Code
	}
	return ""
}
