package core

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"sync"

	"github.com/leap-fish/necs/esync"
	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
	"github.com/wandermere/verse/shared/messages"
	"github.com/wandermere/verse/shared/netcomponents"
	"github.com/yohamta/donburi"
)

// Server relays avatar presence between clients. Movement is
// client-authoritative: updates are applied to the sender's entity verbatim
// and fanned out through esync snapshots.
type Server struct {
	world     donburi.World
	loop      *Loop
	transport *transports.WsServerTransport

	name    string
	version string // required client version, empty accepts any

	// Track which network client owns which entity
	clientEntities map[*router.NetworkClient]donburi.Entity
	mu             sync.RWMutex
}

// NewServer creates a new presence server.
func NewServer(tickRate int, name, version string) *Server {
	world := donburi.NewWorld()

	s := &Server{
		world:          world,
		name:           name,
		version:        version,
		clientEntities: make(map[*router.NetworkClient]donburi.Entity),
	}
	s.loop = NewLoop(tickRate)

	// Set up the world for esync
	srvsync.UseEsync(world)

	s.setupRouterCallbacks()

	return s
}

// Start begins the server on the given port.
func (s *Server) Start(port uint) error {
	go s.loop.Run()

	s.transport = transports.NewWsServerTransport(port, "", nil)
	return s.transport.Start()
}

// Stop gracefully shuts down the server.
func (s *Server) Stop() {
	s.loop.Stop()
}

func (s *Server) setupRouterCallbacks() {
	router.OnConnect(func(client *router.NetworkClient) {
		// Nothing to spawn yet; the entity is created on JoinRequest.
		log.Printf("Client connected: %s", client.Id())
	})

	router.OnDisconnect(func(client *router.NetworkClient, err error) {
		s.onDisconnect(client, err)
	})

	router.On(func(client *router.NetworkClient, msg messages.JoinRequest) {
		s.onJoinRequest(client, msg)
	})

	router.On(func(client *router.NetworkClient, msg messages.MovementUpdate) {
		s.onMovementUpdate(client, msg)
	})

	router.OnError(func(client *router.NetworkClient, err error) {
		log.Printf("Client error: %v", err)
	})
}

func (s *Server) onJoinRequest(client *router.NetworkClient, msg messages.JoinRequest) {
	if s.version != "" && msg.Version != s.version {
		log.Printf("Rejecting client %s: version %q, want %q", client.Id(), msg.Version, s.version)
		s.reply(client, messages.JoinRejected{Reason: "version mismatch, server requires " + s.version})
		return
	}

	entity := s.world.Create(netcomponents.NetPose)
	entry := s.world.Entry(entity)
	netcomponents.NetPose.Set(entry, &netcomponents.NetPoseData{
		QW:    1,
		Emote: "idle",
	})

	if err := srvsync.NetworkSync(s.world, &entity,
		srvsync.WithInterp(netcomponents.NetPose),
	); err != nil {
		log.Printf("Failed to setup network sync for %s: %v", client.Id(), err)
		s.world.Remove(entity)
		s.reply(client, messages.JoinRejected{Reason: "internal error"})
		return
	}

	var netID esync.NetworkId
	if id := esync.GetNetworkId(s.world.Entry(entity)); id != nil {
		netID = *id
	}

	s.mu.Lock()
	s.clientEntities[client] = entity
	s.mu.Unlock()

	s.reply(client, messages.JoinAccepted{
		NetworkID:      netID,
		ReconnectToken: newToken(),
		ServerName:     s.name,
		TickRate:       s.loop.TickRate(),
	})
	log.Printf("Player %q joined as network id %d", msg.PlayerName, netID)
}

func (s *Server) onMovementUpdate(client *router.NetworkClient, msg messages.MovementUpdate) {
	s.mu.RLock()
	entity, exists := s.clientEntities[client]
	s.mu.RUnlock()

	if !exists || !s.world.Valid(entity) {
		return
	}

	// Client-authoritative: the sender's word is taken as-is.
	pose := netcomponents.NetPose.Get(s.world.Entry(entity))
	pose.X, pose.Y, pose.Z = msg.Position[0], msg.Position[1], msg.Position[2]
	pose.QX, pose.QY, pose.QZ, pose.QW = msg.Rotation[0], msg.Rotation[1], msg.Rotation[2], msg.Rotation[3]
	pose.Emote = msg.Emote
	pose.LastUpdateTimestamp = msg.Timestamp
}

func (s *Server) onDisconnect(client *router.NetworkClient, err error) {
	if err != nil {
		log.Printf("Client %s disconnected with error: %v", client.Id(), err)
	} else {
		log.Printf("Client %s disconnected", client.Id())
	}

	s.mu.Lock()
	entity, exists := s.clientEntities[client]
	if exists {
		delete(s.clientEntities, client)
	}
	s.mu.Unlock()

	if exists && s.world.Valid(entity) {
		s.world.Remove(entity)
	}
}

func (s *Server) reply(client *router.NetworkClient, msg any) {
	payload, err := router.Serialize(msg)
	if err != nil {
		log.Printf("Failed to serialize reply: %v", err)
		return
	}
	if err := client.SendMessage(payload); err != nil {
		log.Printf("Failed to send reply to %s: %v", client.Id(), err)
	}
}

// World returns the ECS world.
func (s *Server) World() donburi.World {
	return s.world
}

// PlayerCount returns the number of joined players.
func (s *Server) PlayerCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clientEntities)
}

func newToken() string {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		return ""
	}
	return hex.EncodeToString(b[:])
}
