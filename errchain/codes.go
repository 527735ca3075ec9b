package errchain

// Reserved and common codes
const (
	// OK is the reserved success code. A chain is OK if and only if its
	// code equals OK.
	OK Code = "ok"

	CodeGeneric        Code = "generic_error"
	CodeInternal       Code = "internal_error"
	CodeAssert         Code = "assertion_failed"
	CodeNotImplemented Code = "not_implemented"
)

// Default messages for codes created without one
var codeMessages = map[Code]string{
	OK:                 "ok",
	CodeGeneric:        "An error occurred",
	CodeInternal:       "Internal error occurred",
	CodeAssert:         "Assertion failed",
	CodeNotImplemented: "Operation not implemented",
}

// Message returns the default message for a given code
func Message(code Code) string {
	if msg, ok := codeMessages[code]; ok {
		return msg
	}

	return string(code)
}
