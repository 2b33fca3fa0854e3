// Package log defines the logging interface and typed fields used across the
// money module.
//
// The core money package never logs; only infrastructure such as the currency
// registry loader accepts a Logger. Adapters (such as the zap package)
// implement Logger so applications can route these events to their own backend.
package log
