// SPDX-License-Identifier: EPL-2.0

// Package soft is a software implementation of native.Engine.
//
// It tracks the objects and properties of the real engine: sounds are
// probed with the audio format registry, channels advance their play
// cursors on update according to a Clock, and banks are YAML manifests
// describing events, buses, VCAs and parameters (see Manifest). No audio
// is mixed or output.
//
// The engine backs the tests of the wrapper packages and the "soft"
// backend of the command line player, where it stands in for the native
// library on machines that do not have it installed.
package soft
