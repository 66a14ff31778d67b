// Package catalog contains the catalog entities: items orderable from
// kiosks and the kiosks themselves.
//
// Catalog records are plain storage with field validation — the order engine
// only reads them (resolve an item by id or slug, check availability, fetch a
// kiosk). The one real invariant lives on Kiosk: a client kiosk binding is
// present exactly when the kiosk's role is fulfill, and must reference an
// existing kiosk.
package catalog
