// Package errors provides the structured error type shared by every layer of pokedex-cli.
//
// Errors carry a Code, a user-facing Message, an optional Cause and free-form
// metadata. The fetch pipeline classifies every upstream failure into one of
// the following codes at the component boundary that issued the call:
//   - NotFound: the identifier has no matching record (HTTP 404)
//   - Service: the upstream answered with an unexpected status; the status is
//     kept in metadata and read back with ServiceStatus
//   - Transport: network failure, timeout or cancellation; IsTimeout reports
//     whether a deadline was the cause
//   - MalformedData: a successful response was missing expected fields
//   - InvalidArgument: the caller supplied an unusable identifier or config
//
// # Basic Usage
//
//	err := errors.NotFoundf("pokemon %q not found", name)
//	err := errors.Service(http.StatusBadGateway, "unexpected status")
//
// Wrapping keeps the original code:
//
//	if err := client.Get(ctx, id); err != nil {
//	    return errors.Wrap(err, "failed to fetch pokemon")
//	}
//
// # Error Checking
//
//	if errors.IsNotFound(err) {
//	    // render "not found"
//	}
//	status := errors.ServiceStatus(err)
//
// # Validation Errors
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateAbsoluteURL("base_url", cfg.BaseURL, vb)
//	errors.ValidateRange("fallback_count", cfg.FallbackCount, 1, 100000, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
package errors
