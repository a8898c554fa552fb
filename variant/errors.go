package variant

// ErrorCategory is the type used to tag errors raised by this module.
// All errors returned by the variant, enum, result and option packages carry
// one of these categories via errcat, so callers can branch on the class of
// failure without string matching.
type ErrorCategory string

const (
	// Declaration-time errors.  These are fatal to library setup: the Must*
	// declaration helpers panic on them.
	ErrDuplicateCase ErrorCategory = "variant-duplicate-case" // a case (or type) name was declared twice
	ErrEmptySet      ErrorCategory = "variant-empty-set"      // a case set was declared with no cases
	ErrBadCaseName   ErrorCategory = "variant-bad-case-name"  // a case name was empty or not valid UTF-8

	// Caller-time errors.
	ErrNonExhaustiveMatch ErrorCategory = "variant-non-exhaustive-match" // a match omitted declared cases and had no default arm
	ErrUnknownCase        ErrorCategory = "variant-unknown-case"         // a name referenced a case outside the declared set

	// Input-time errors.  Recoverable; the caller decides the fallback.
	ErrDeserialize ErrorCategory = "variant-deserialize" // encoded input did not decode to a declared case

	// Programmer errors.  Unwrap on the wrong case panics with an error in
	// this category; it signals a logic defect, not a condition to catch.
	ErrUnwrapOnErr ErrorCategory = "variant-unwrap-on-err"
)
