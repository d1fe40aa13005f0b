package server

import "net/http"

// indexPage is a minimal landing page pointing at the patch stream. Real
// deployments embed the stream into their own client; this page exists so
// a bare `classbind serve` shows something useful.
const indexPage = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>classbind</title>
  <style>
    body { font-family: monospace; max-width: 40rem; margin: 3rem auto; }
    code { background: #eee; padding: 0 0.3rem; }
  </style>
</head>
<body>
  <h1>classbind</h1>
  <p>Class patch frames are streamed on <code>/ws</code> as
     msgpack-encoded binary messages.</p>
  <p>Health: <a href="/healthz">/healthz</a> &middot;
     Metrics: <a href="/metrics">/metrics</a></p>
</body>
</html>
`

// handleIndex serves the landing page.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(indexPage))
}
