package session

// Gate answers authorization questions from the current Session. It only
// drives what the client offers; the server enforces access on its own.
type Gate struct {
	sessions *Service
}

func NewGate(sessions *Service) *Gate {
	return &Gate{sessions: sessions}
}

func (g *Gate) IsAuthenticated() bool {
	return g.sessions.Current() != nil
}

func (g *Gate) IsAdmin() bool {
	s := g.sessions.Current()
	return s != nil && s.Role == RoleAdmin
}
