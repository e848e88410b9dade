// Package runner provides the Runner aggregate for independent delivery
// agents who claim and carry network-fulfilled orders.
//
// A runner's availability is a simple global enum (offline, online, busy),
// not a scheduler queue: online runners may claim exactly one order, become
// busy while carrying it, and return to online when it reaches a terminal
// status.
package runner
