// Package errors provides the coded error type shared by every layer of the
// monster catalog.
//
// Errors carry a Code, a user-facing Message, an optional Cause and free-form
// metadata. The code decides how an error leaves the process: HTTP handlers
// use Code.HTTPStatus, the gRPC health server uses Code.GRPCCode.
//
// # Basic Usage
//
//	err := errors.NotFound("モンスターが見つかりませんでした。").
//	    WithMeta("monster_id", id)
//
//	if err := upstream.ListMonsters(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to list monsters")
//	}
//
// # Cancellation
//
// A request abandoned by its caller is not a failure worth showing. Client
// layers translate context errors with FromContext so callers can filter them:
//
//	if errors.IsCanceled(err) {
//	    return // stale request, nothing to report
//	}
//
// # Layer-Specific Guidelines
//
// Client layer:
//   - Network and HTTP failures are Unavailable
//   - Context cancellation is Canceled, deadlines are DeadlineExceeded
//
// Orchestrator layer:
//   - Validate inputs and return InvalidArgument errors
//   - Return NotFound with the localized message shown to users
//
// Handler layer:
//   - Never write a response for Canceled errors
//   - Map everything else with HTTPStatus and expose GetMessage
package errors
