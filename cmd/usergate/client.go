package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// client habla con una instancia de usergate.
type client struct {
	BaseURL   string
	OutFormat string // "json" | "text"
	HTTP      *http.Client
	Out       io.Writer
}

func (c *client) do(method, path string, body []byte) (int, []byte, error) {
	url := strings.TrimRight(c.BaseURL, "/") + path
	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}
	req, err := http.NewRequest(method, url, rd)
	if err != nil {
		return 0, nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, err
	}
	return resp.StatusCode, b, nil
}

func (c *client) print(status int, body []byte) {
	if c.OutFormat == "json" {
		var v any
		if json.Unmarshal(body, &v) == nil {
			p, _ := json.MarshalIndent(v, "", "  ")
			fmt.Fprintln(c.Out, string(p))
			return
		}
	}
	if len(body) > 0 {
		fmt.Fprintln(c.Out, string(body))
	} else {
		fmt.Fprintf(c.Out, "status=%d\n", status)
	}
}

// call ejecuta el request e imprime la respuesta; non-2xx es error.
func (c *client) call(op, method, path string, body []byte) error {
	status, resp, err := c.do(method, path, body)
	if err != nil {
		return err
	}
	if status/100 != 2 {
		return fmt.Errorf("%s fallo: status=%d body=%s", op, status, string(resp))
	}
	c.print(status, resp)
	return nil
}
