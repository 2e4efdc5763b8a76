// Package model declares the read-only views the island discovery
// routine consumes from its collaborators: a per-simulation Model
// (kinematic trees, tendons) and a per-step Data (active constraint
// rows and their Jacobian, contacts).
//
// Neither type is constructed or mutated here — construction of the
// Jacobian and constraint arrays, and the physics model definition
// itself, belong to the engine that owns them. This package only
// fixes the shapes island discovery reads.
package model
