// Package resilience provides retry with exponential backoff and a
// token-bucket rate limiter.
//
// Retry backs the remote catalog snapshot fetch; the rate limiter backs
// the transport's polite-crawling option.
package resilience
