// Package platform wraps the operating-system facilities used by the
// terminal client: the system clipboard, the terminal password prompt and
// process hardening.
package platform
