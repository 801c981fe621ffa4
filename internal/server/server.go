// Package server streams generated geometry to websocket clients so it can
// be inspected in a browser viewer without any GPU plumbing in this module.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/madw0lf/cesium/pkg/geometry"
)

// MeshMessage is the wire format sent to every connected client.
type MeshMessage struct {
	Type           string    `json:"type"`
	Positions      []float32 `json:"positions,omitempty"`
	Normals        []float32 `json:"normals,omitempty"`
	Indices        []uint32  `json:"indices"`
	BoundingRadius float64   `json:"boundingRadius"`
}

// Info summarizes the served geometry.
type Info struct {
	Vertices       int     `json:"vertices"`
	Triangles      int     `json:"triangles"`
	BoundingRadius float64 `json:"boundingRadius"`
}

// Server serves one immutable geometry. The geometry is never mutated after
// construction, so no locking is needed around it.
type Server struct {
	geom     *geometry.Geometry
	log      *zap.Logger
	upgrader websocket.Upgrader
}

// New creates a server for the given geometry. A nil logger disables logging.
func New(geom *geometry.Geometry, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		geom: geom,
		log:  log,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Handler returns the HTTP handler: geometry stats at / and the websocket
// mesh stream at /ws.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleInfo)
	mux.HandleFunc("/ws", s.handleWebSocket)
	return mux
}

// ListenAndServe blocks serving the geometry on the given address.
func (s *Server) ListenAndServe(addr string) error {
	s.log.Info("geometry server listening", zap.String("addr", addr))
	return http.ListenAndServe(addr, s.Handler())
}

func (s *Server) handleInfo(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	info := Info{
		Vertices:       s.geom.VertexCount(),
		Triangles:      s.geom.TriangleCount(),
		BoundingRadius: s.geom.BoundingSphere.Radius,
	}
	if err := json.NewEncoder(w).Encode(info); err != nil {
		s.log.Warn("writing info response", zap.Error(err))
	}
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	s.log.Debug("client connected", zap.String("remote", conn.RemoteAddr().String()))

	if err := conn.WriteJSON(s.meshMessage()); err != nil {
		s.log.Warn("writing mesh message", zap.Error(err))
		return
	}

	// Drain the connection until the client goes away.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			s.log.Debug("client disconnected", zap.String("remote", conn.RemoteAddr().String()))
			return
		}
	}
}

func (s *Server) meshMessage() MeshMessage {
	msg := MeshMessage{
		Type:           "mesh",
		Indices:        s.geom.Indices,
		BoundingRadius: s.geom.BoundingSphere.Radius,
	}
	if positions, ok := s.geom.Attributes[geometry.AttributePosition]; ok {
		msg.Positions = positions.Values
	}
	if normals, ok := s.geom.Attributes[geometry.AttributeNormal]; ok {
		msg.Normals = normals.Values
	}
	return msg
}
