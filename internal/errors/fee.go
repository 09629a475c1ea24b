package errors

var (
	ErrValidationFailed = &DomainError{
		Kind:    KindValidation,
		Code:    "VALIDATION_FAILED",
		Message: "validation failed",
	}
)

// Computation errors are hard per-request failures; a fee is never silently
// reported as zero when one of these occurs.
var (
	ErrTierNotFound = &DomainError{
		Kind:    KindComputation,
		Code:    "TIER_NOT_FOUND",
		Message: "no volume tier matches the cumulative volume",
	}
	ErrMalformedTier = &DomainError{
		Kind:    KindComputation,
		Code:    "MALFORMED_TIER",
		Message: "volume tier is missing min_volume or fee_value",
	}
	ErrMalformedRule = &DomainError{
		Kind:    KindComputation,
		Code:    "MALFORMED_RULE",
		Message: "fee rule is missing fee_value",
	}
	ErrUnsupportedRuleType = &DomainError{
		Kind:    KindComputation,
		Code:    "UNSUPPORTED_RULE_TYPE",
		Message: "unsupported rule type",
	}
	ErrInvalidAmount = &DomainError{
		Kind:    KindComputation,
		Code:    "INVALID_AMOUNT",
		Message: "transaction amount must be positive",
	}
	ErrInvalidVolume = &DomainError{
		Kind:    KindComputation,
		Code:    "INVALID_VOLUME",
		Message: "cumulative volume must not be negative",
	}
	ErrCurrencyNotSupported = &DomainError{
		Kind:    KindComputation,
		Code:    "CURRENCY_NOT_SUPPORTED",
		Message: "currency is not supported by the fee structure or pricing plan",
	}
)

var (
	ErrStructureNotFound = &DomainError{
		Kind:    KindAssignment,
		Code:    "FEE_STRUCTURE_NOT_FOUND",
		Message: "fee structure does not exist",
	}
	ErrStructureInactive = &DomainError{
		Kind:    KindAssignment,
		Code:    "FEE_STRUCTURE_INACTIVE",
		Message: "fee structure is not active",
	}
	ErrMerchantRequired = &DomainError{
		Kind:    KindAssignment,
		Code:    "MERCHANT_REQUIRED",
		Message: "merchant id is required",
	}
)

var (
	ErrNotFound = &DomainError{
		Kind:    KindNotFound,
		Code:    "NOT_FOUND",
		Message: "record not found",
	}
	ErrNoAssignment = &DomainError{
		Kind:    KindNotFound,
		Code:    "NO_ASSIGNMENT",
		Message: "merchant has no fee structure assigned",
	}
	ErrNoPricingPlan = &DomainError{
		Kind:    KindNotFound,
		Code:    "NO_PRICING_PLAN",
		Message: "merchant has no pricing plan",
	}
)
