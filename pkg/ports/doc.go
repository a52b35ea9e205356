/*
Package ports defines the driven-side interfaces of the Verdict engine.

Adapters (in pkg/adapters) implement these interfaces; the core and the
HTTP surface depend only on the interfaces, following Hexagonal
Architecture principles.
*/
package ports
