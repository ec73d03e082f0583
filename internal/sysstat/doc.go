// Package sysstat reads the operating-system counters shown on the panel:
// filesystem capacity and identity, CPU busy fraction, memory usage, uptime
// and hostname.
//
// Each source is a small concrete type. Consumers declare the interface they
// need, so tests substitute fakes without touching the OS.
package sysstat
