// Package tracking provides the LocationSample value object for live
// position sharing during an order's active window.
//
// One sample exists per order in flight; it is overwritten in place on every
// publish and no trajectory history is retained. Access rules (who may write
// and who may read a sample) live in the services package, not here.
package tracking
