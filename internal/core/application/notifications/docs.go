// Package notifications implements the real-time fan-out core: the hub that
// tracks connected observers and the events pushed to them after committed
// order mutations.
//
// Delivery semantics are explicitly at-most-once and best-effort. There is
// no queue and no replay; a disconnected observer that reconnects gets a
// fresh order list from the store, not the events it missed. Per-order
// causal ordering holds because handlers broadcast synchronously after
// commit and fan-outs are serialized.
package notifications
