// Package horizon is a typed query client for the Stellar Horizon REST API.
//
// Requests are assembled with per-resource builders. Builders are values:
// every setter returns a new builder, and setters that validate their input
// return the unchanged builder together with a *ValidationError. Filters that
// Horizon treats as mutually exclusive form a filter group; choosing one moves
// the builder into a type that offers no further filter setters, so a request
// carrying two members of a group cannot be written. Build exists only on
// states that have every required parameter.
//
//	builder, err := horizon.Accounts().Signer("GA...")
//	if err != nil {
//		return err
//	}
//
//	builder, err = builder.Limit(50)
//	if err != nil {
//		return err
//	}
//
//	page, err := client.Accounts().List(ctx, builder.Build())
//
// A Page exposes its next and previous links as requests of the same type,
// so walking a collection never re-derives query parameters:
//
//	next, ok := page.Next()
//	if ok {
//		page, err = client.Accounts().List(ctx, next)
//	}
//
// Errors returned by a client are one of *TransportError, *ProblemError or
// *DecodeError; builders return *ValidationError.
package horizon
