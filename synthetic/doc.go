// Package synthetic generates user-agent strings with gofakeit.
//
// Generation methods form a closed named set resolved at call time;
// unknown names return an error so the caller can decide on a fallback.
// The package-level gofakeit generators are safe for concurrent use.
package synthetic
