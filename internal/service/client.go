package service

import (
	"fmt"

	"motion-pcs-backend/internal/repository"
)

// ClientService handles business logic for clients
type ClientService struct {
	clients repository.ClientRepositoryInterface
}

// NewClientService creates a new client service
func NewClientService(clients repository.ClientRepositoryInterface) *ClientService {
	return &ClientService{clients: clients}
}

// List returns ACTIVE clients with their project summaries. Clients are not
// team-scoped; every authenticated user sees the same roster.
func (s *ClientService) List() ([]ClientResponse, error) {
	clients, err := s.clients.GetActiveWithProjects()
	if err != nil {
		return nil, fmt.Errorf("failed to get clients: %w", err)
	}

	responses := make([]ClientResponse, 0, len(clients))
	for i := range clients {
		responses = append(responses, NewClientResponse(&clients[i]))
	}
	return responses, nil
}
