// Package logging wires go.uber.org/zap into the structured-logging seam
// xcproof's core operations accept (xcproof.Logger), so a caller can plug
// in either a production JSON logger or a development console logger
// without xcproof itself importing zap directly.
package logging
