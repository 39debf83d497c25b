// Package resilience provides opt-in retry and client-side rate limiting.
//
// Nothing here is active by default: the API client never retries on its
// own, and callers enable these behaviors explicitly through the transport
// configuration.
package resilience
