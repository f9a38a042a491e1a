// Package client contains the client-side API for the user directory.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (see the Client interface) covering the
//     six directory operations.
//  2. A concrete gRPC implementation (see GRPCClient) that manages the
//     connection and maps gRPC status codes to sentinel errors.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors that callers can match with
// errors.Is: ErrNotFound, ErrInvalidArgument, ErrRateLimited, ErrUnavailable.
// The server's message is kept in the wrapped error text.
//
// Concurrency & Contexts
//
// GRPCClient is safe for concurrent use. All operations accept
// context.Context and honor cancellation/timeouts.
package client
