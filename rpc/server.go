package rpc

import (
	"fmt"
	"net/http"
	"strings"

	gethrpc "github.com/ethereum/go-ethereum/rpc"

	"nfc_contract/contract"
)

// NewServer returns a JSON-RPC server with the nfc namespace registered.
func NewServer(c *contract.Contract) (*gethrpc.Server, error) {
	srv := gethrpc.NewServer()
	if err := srv.RegisterName(Namespace, NewService(c)); err != nil {
		return nil, fmt.Errorf("register %s service: %w", Namespace, err)
	}
	return srv, nil
}

// Handler serves HTTP POST calls and upgrades websocket requests on the same path.
func Handler(srv *gethrpc.Server, allowedOrigins []string) http.Handler {
	ws := srv.WebsocketHandler(allowedOrigins)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.EqualFold(r.Header.Get("Upgrade"), "websocket") {
			ws.ServeHTTP(w, r)
			return
		}
		srv.ServeHTTP(w, r)
	})
}
