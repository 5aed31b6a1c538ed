// Package errors provides the structured error type used across spellbook.
//
// Errors carry a Code, a user-facing Message, an optional Cause and a bag of
// metadata. Wrapping preserves the code of the innermost *Error, so a fetch
// failure raised by the API client is still recognisable after the
// orchestrator and CLI have added their own context:
//
//	detail, err := client.GetSpell(ctx, "fireball")
//	if err != nil {
//	    return nil, errors.Wrapf(err, "failed to load spell %s", "fireball")
//	}
//
// Metadata is attached fluently:
//
//	err := errors.Unavailable("spell API request failed").
//	    WithMeta("url", reqURL).
//	    WithMeta("status", resp.StatusCode)
//
// # Codes used by this module
//
//   - Unavailable: the spell API rejected or failed a request (a fetch error)
//   - NotFound: an unknown spell index, or a cache miss
//   - InvalidArgument: bad input or configuration
//   - Canceled: the screen that issued a fetch went away
//   - DeadlineExceeded: the HTTP timeout elapsed
//   - DataLoss: a cached or remote payload could not be decoded
//   - FailedPrecondition: an operation needs a non-empty catalog
//   - Internal: everything else
package errors
