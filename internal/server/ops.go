package server

// Operations carries the server state into the HTTP handlers. Methods
// named Register* are picked up by huma.AutoRegister.
type Operations struct {
	server *Server
}
