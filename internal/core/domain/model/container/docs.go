// Package container provides the domain model for shipping containers
// (conteneurs) and the subcases and tools they carry.
//
// A container moves forward through a fixed seven-stage logistics
// progression, EN_ATTENTE through VERIFIE. The generic advance operation
// refuses the TRANSITE -> RENSEIGNE step; filing customs information goes
// through the dedicated mark-informed operation, which is unconditional and
// idempotent.
package container
