// Command web serves the WebAssembly build of the visualizer to a browser.
//
// Build the assets into WEB_DIR first:
//
//	GOOS=js GOARCH=wasm go build -o web/photoelectric.wasm .
//	cp "$(go env GOROOT)/lib/wasm/wasm_exec.js" web/
package main

import (
	_ "embed"
	"fmt"
	"log"
	"net/http"
	"path/filepath"

	"github.com/olivierh59500/photoelectric-go/internal/config"
)

const (
	defaultHost = "0.0.0.0"
	defaultPort = "8080"
	defaultDir  = "web"
)

//go:embed index.html
var htmlPage string

func newHandler(dir string) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, htmlPage)
	})
	mux.HandleFunc("/photoelectric.wasm", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/wasm")
		http.ServeFile(w, r, filepath.Join(dir, "photoelectric.wasm"))
	})
	mux.HandleFunc("/wasm_exec.js", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/javascript; charset=utf-8")
		http.ServeFile(w, r, filepath.Join(dir, "wasm_exec.js"))
	})
	return mux
}

func main() {
	host := config.GetEnv("WEB_HOST", defaultHost)
	port := config.GetEnv("WEB_PORT", defaultPort)
	dir := config.GetEnv("WEB_DIR", defaultDir)

	addr := fmt.Sprintf("%s:%s", host, port)
	log.Printf("Serving %s on http://%s", dir, addr)
	if err := http.ListenAndServe(addr, newHandler(dir)); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
