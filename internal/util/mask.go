// Package util contiene helpers chicos sin dependencias del dominio.
package util

import "strings"

// MaskEmail deja visible la primera letra del local-part y del primer label
// del dominio: "neo@matrix.io" -> "n…@m….io". Sin '@' enmascara todo salvo
// los extremos.
func MaskEmail(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}

	local, domain, ok := strings.Cut(s, "@")
	if !ok || local == "" {
		if len(s) <= 3 {
			return "***"
		}
		return s[:1] + "…" + s[len(s)-1:]
	}

	labels := strings.Split(domain, ".")
	labels[0] = maskHead(labels[0])
	return maskHead(local) + "@" + strings.Join(labels, ".")
}

func maskHead(s string) string {
	if len(s) <= 1 {
		return s
	}
	return s[:1] + "…"
}
