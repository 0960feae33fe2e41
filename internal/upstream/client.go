// Package upstream habla con el backend-as-a-service: el recurso Auth
// (alta de identidades) y el recurso Database (REST filtrado sobre users).
//
// El cliente no reintenta ni cachea. Cualquier status non-2xx vuelve como
// *StatusError con el body textual; los fallos de red envuelven ErrTransport.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dropDatabas3/usergate/internal/metrics"
	"github.com/dropDatabas3/usergate/internal/observability/logger"
)

// Resource identifica el grupo de endpoints upstream.
type Resource string

const (
	ResourceAuth     Resource = "auth"
	ResourceDatabase Resource = "database"
)

// Paths del upstream.
const (
	AuthSignUpPath = "/auth/v1/signup"
	UsersPath      = "/rest/v1/users"
)

// Config es la parte inmutable de la configuración que necesita el cliente.
type Config struct {
	BaseURL string
	APIKey  string
	// Timeout por llamada; 0 = sin límite más allá del contexto.
	Timeout time.Duration
}

// Request describe una llamada al upstream.
type Request struct {
	Resource Resource
	Method   string
	Path     string
	Query    url.Values
	// Body se serializa a JSON; nil = sin body.
	Body any
	// Prefer se envía como header Prefer (PostgREST), ej. "return=minimal".
	Prefer string
}

// Response es el status y el body crudo de una llamada.
type Response struct {
	Status int
	Body   []byte
}

// OK indica status 2xx.
func (r *Response) OK() bool {
	return r != nil && r.Status >= 200 && r.Status < 300
}

// Decode deserializa el body en v.
func (r *Response) Decode(v any) error {
	return json.Unmarshal(r.Body, v)
}

// Client es seguro para uso concurrente.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// New crea un cliente. hc puede ser nil; en ese caso se usa uno propio con
// cfg.Timeout.
func New(cfg Config, hc *http.Client) *Client {
	if hc == nil {
		hc = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		http:    hc,
	}
}

// Do ejecuta la llamada. Devuelve la respuesta y, si el status no es 2xx,
// además un *StatusError. Un error sin respuesta es de transporte.
func (c *Client) Do(ctx context.Context, req Request) (*Response, error) {
	method := strings.ToUpper(req.Method)
	target := c.baseURL + req.Path
	if len(req.Query) > 0 {
		target += "?" + req.Query.Encode()
	}

	log := logger.From(ctx).With(
		logger.Layer("upstream"),
		logger.Resource(string(req.Resource)),
		logger.Method(method),
		logger.URL(target),
	)
	log.Info("upstream call")

	start := time.Now()
	resp, err := c.send(ctx, method, target, req)
	elapsed := time.Since(start)

	if err != nil {
		metrics.ObserveUpstream(string(req.Resource), method, "transport", elapsed)
		log.Error("upstream call failed", logger.Err(err), logger.Elapsed(elapsed))
		return nil, fmt.Errorf("%w: %s %s: %w", ErrTransport, method, req.Path, err)
	}

	if !resp.OK() {
		metrics.ObserveUpstream(string(req.Resource), method, "rejected", elapsed)
		se := &StatusError{
			Resource: req.Resource,
			Method:   method,
			Status:   resp.Status,
			Body:     string(resp.Body),
		}
		log.Error("upstream call rejected",
			logger.Status(resp.Status),
			logger.String("body", se.Body),
			logger.Elapsed(elapsed),
		)
		return resp, se
	}

	metrics.ObserveUpstream(string(req.Resource), method, "ok", elapsed)
	log.Info("upstream call succeeded", logger.Status(resp.Status), logger.Elapsed(elapsed))
	return resp, nil
}

func (c *Client) send(ctx context.Context, method, target string, req Request) (*Response, error) {
	var body io.Reader
	if req.Body != nil {
		b, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encode body: %w", err)
		}
		body = bytes.NewReader(b)
	}

	hreq, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, err
	}
	hreq.Header.Set("apikey", c.apiKey)
	if req.Resource == ResourceDatabase {
		hreq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	if body != nil {
		hreq.Header.Set("Content-Type", "application/json")
	}
	if req.Prefer != "" {
		hreq.Header.Set("Prefer", req.Prefer)
	}

	hresp, err := c.http.Do(hreq)
	if err != nil {
		return nil, err
	}
	defer hresp.Body.Close()

	b, err := io.ReadAll(hresp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return &Response{Status: hresp.StatusCode, Body: b}, nil
}

// FilterByID arma el filtro PostgREST id=eq.<id>.
func FilterByID(id string) url.Values {
	return url.Values{"id": []string{"eq." + id}}
}
