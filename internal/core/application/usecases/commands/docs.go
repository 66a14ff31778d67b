// Package commands contains the business operations that modify system
// state: the order lifecycle and the catalog CRUD. Each command is an
// immutable, constructor-validated value; its handler manages the unit of
// work and persists through the repository ports.
package commands
