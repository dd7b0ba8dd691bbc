// Package ports holds the interfaces that connect the HTTP adapter to the
// page services and the services to their outbound dependencies (catalog
// content, rendering, health).
package ports
