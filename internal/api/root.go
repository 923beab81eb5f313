package api

import "net/http"

// rootHTML is the human-facing service document served at /.
const rootHTML = `<!DOCTYPE html>
<html>
<head>
    <title>Mem0 Webhook API</title>
    <style>
        body { font-family: Arial, sans-serif; max-width: 800px; margin: 50px auto; padding: 20px; }
        h1 { color: #333; }
        .endpoint { background: #f5f5f5; padding: 10px; margin: 10px 0; border-radius: 5px; }
        code { background: #e0e0e0; padding: 2px 5px; border-radius: 3px; }
        .status { color: green; font-weight: bold; }
    </style>
</head>
<body>
    <h1>&#129504; Mem0 Webhook API</h1>
    <p class="status">&#9989; Service is running!</p>

    <h2>Available Endpoints:</h2>

    <div class="endpoint">
        <strong>POST /webhook/memory</strong><br>
        Create a single memory<br>
        <code>{"content": "your memory", "user_id": "quinn_may"}</code>
    </div>

    <div class="endpoint">
        <strong>POST /webhook/memories/batch</strong><br>
        Create multiple memories<br>
        <code>{"memories": [{"content": "memory 1"}, {"content": "memory 2"}]}</code>
    </div>

    <div class="endpoint">
        <strong>POST /webhook/zapier</strong><br>
        Zapier integration endpoint
    </div>

    <div class="endpoint">
        <strong>POST /webhook/generic</strong><br>
        Generic webhook (accepts any JSON)
    </div>

    <div class="endpoint">
        <strong>GET /health</strong><br>
        Health check endpoint
    </div>

    <h3>Test with curl:</h3>
    <pre>curl -X POST http://localhost:8000/webhook/memory \
  -H "Content-Type: application/json" \
  -d '{"content": "Test memory", "user_id": "quinn_may"}'</pre>
</body>
</html>
`

// RootPage handles GET /, serving a short HTML description of the service.
func RootPage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(rootHTML))
}
