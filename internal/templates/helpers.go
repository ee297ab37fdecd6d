package templates

import "fmt"

// money formats an amount for display. Locale-aware currency formatting is
// out of scope; amounts arrive already rounded from the service.
func money(v float64) string { return fmt.Sprintf("%.2f", v) }
