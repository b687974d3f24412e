// Package apiconnect wires the household.v1 services onto Connect.
//
// Messages are plain Go structs from package api, so every handler and client
// is built with JSONCodec in place of Connect's protobuf codecs.
package apiconnect

import (
	"encoding/json"
	"fmt"
	"net/http"

	"connectrpc.com/connect"
)

// JSONCodec marshals messages with encoding/json under the "json" codec
// name, so browsers can keep posting application/json.
type JSONCodec struct{}

var _ connect.Codec = JSONCodec{}

func (JSONCodec) Name() string { return "json" }

func (JSONCodec) Marshal(msg any) ([]byte, error) {
	return json.Marshal(msg)
}

func (JSONCodec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, msg); err != nil {
		return fmt.Errorf("unmarshal %T: %w", msg, err)
	}
	return nil
}

// handlerOptions puts the JSON codec ahead of caller options.
func handlerOptions(opts []connect.HandlerOption) []connect.HandlerOption {
	return append([]connect.HandlerOption{connect.WithCodec(JSONCodec{})}, opts...)
}

func clientOptions(opts []connect.ClientOption) []connect.ClientOption {
	return append([]connect.ClientOption{connect.WithCodec(JSONCodec{})}, opts...)
}

// router dispatches a service's requests by exact procedure path.
type router struct {
	handlers map[string]*connect.Handler
}

func route(handlers map[string]*connect.Handler) *router {
	return &router{handlers: handlers}
}

func (r *router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	h, ok := r.handlers[req.URL.Path]
	if !ok {
		http.NotFound(w, req)
		return
	}
	h.ServeHTTP(w, req)
}
