// Package health contiene el DTO de /readyz.
package health

import "time"

// HealthResponse es la respuesta de /readyz.
type HealthResponse struct {
	Status    string    `json:"status"`
	Version   string    `json:"version,omitempty"`
	Upstream  string    `json:"upstream"`
	Timestamp time.Time `json:"timestamp"`
}
