package errors

var (
	ErrInvalidAmount = &DomainError{
		Code:    "INVALID_AMOUNT",
		Message: "amount must be greater than zero",
	}
	ErrUnsupportedMethod = &DomainError{
		Code:    "UNSUPPORTED_METHOD",
		Message: "unsupported payment method",
	}
	ErrCryptoTypeRequired = &DomainError{
		Code:    "CRYPTO_TYPE_REQUIRED",
		Message: "a supported crypto type is required for crypto payments",
	}
	ErrTransactionNotFound = &DomainError{
		Code:    "TRANSACTION_NOT_FOUND",
		Message: "transaction not found",
	}
	ErrCheckoutNotFound = &DomainError{
		Code:    "CHECKOUT_NOT_FOUND",
		Message: "checkout session not found",
	}
)
