// Package order contains the order aggregate: the order itself, its line
// items, and the status value object.
//
// An order is created by an order-role kiosk from one or more catalog items
// and serviced by fulfill-role kiosks. The order exclusively owns its lines;
// deleting the order deletes them. Status carries no transition machine —
// any of the three values is settable through update — but creation is
// restricted to pending and completed.
package order
