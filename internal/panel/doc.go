// Package panel wires configuration, data sources, the scheduler and the
// drawer into the running display loop.
package panel
