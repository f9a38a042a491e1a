// Package cli implements the user directory command-line client on top of
// cobra. Each subcommand maps onto one directory operation; the gRPC
// client is created lazily through a factory so tests can inject fakes.
package cli
