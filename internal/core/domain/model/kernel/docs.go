// Package kernel contains shared value objects used across the domain model.
//
// ItemRef is the dual-key reference a kiosk client may send for a catalog
// item: a numeric identifier or a slug. The two cases are kept as an explicit
// tagged union so every lookup site branches once instead of duck-typing.
//
// Document is an opaque JSON object (user profiles, survey responses, item
// customizations). The backend validates only its top-level shape; the
// internal schema belongs to the kiosk clients.
package kernel
