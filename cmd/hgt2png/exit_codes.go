package main

// Exit codes for the hgt2png CLI: usage-only invocations and successful
// conversions exit 0; every validation or I/O failure exits 1.
const (
	ExitSuccess = 0
	ExitFailure = 1
)
