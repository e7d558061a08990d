// Package errors provides the coded error type used across the battle API.
//
// Every layer returns *Error values (or wraps lower errors with Wrap) so the
// transport handlers can map them without type switches:
//
//	INVALID_ARGUMENT  missing or malformed request input (ValidationBuilder)
//	NOT_FOUND         species, move or type unknown to the data provider
//	UNAVAILABLE       data provider unreachable or failing
//	INTERNAL          anything else, including battle history write failures
//
// Creating errors:
//
//	err := errors.NotFoundf("pokemon %s not found", name)
//
// Wrapping keeps the original code:
//
//	if err != nil {
//	    return errors.Wrap(err, "failed to load move")
//	}
//
// Validation:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("pokemon1", input.Pokemon1, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// At the boundary use ClientCode, Code.HTTPStatus and ToGRPCError. ClientCode
// reports UNAVAILABLE as NOT_FOUND because callers cannot act on the difference.
package errors
