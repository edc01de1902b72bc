// Package timeouts holds the durations shared by subway servers and clients.
package timeouts

import "time"

// GRPCDial caps how long subwayctl waits to connect to the server.
const GRPCDial = 2 * time.Second

// GRPCRequest caps one subwayctl call.
const GRPCRequest = 5 * time.Second

// ReadHeader limits how long the REST server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown bounds graceful shutdown of the REST server.
const Shutdown = 5 * time.Second
