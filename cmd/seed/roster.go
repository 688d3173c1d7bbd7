package main

import (
	"fmt"
	"io"

	"github.com/Dosada05/championship/services"
	"gopkg.in/yaml.v3"
)

type rosterFile struct {
	Players []rosterEntry `yaml:"players"`
}

type rosterEntry struct {
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
	Email     string `yaml:"email"`
	Address   string `yaml:"address"`
	League    string `yaml:"league"`
	Club      string `yaml:"club"`
}

func (e rosterEntry) input() services.RegisterPlayerInput {
	return services.RegisterPlayerInput{
		FirstName: e.FirstName,
		LastName:  e.LastName,
		Email:     e.Email,
		Address:   e.Address,
		League:    e.League,
		Club:      e.Club,
	}
}

func loadRoster(r io.Reader) ([]services.RegisterPlayerInput, error) {
	var file rosterFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("roster file is empty")
		}
		return nil, fmt.Errorf("parsing roster: %w", err)
	}
	if len(file.Players) == 0 {
		return nil, fmt.Errorf("roster has no players")
	}

	inputs := make([]services.RegisterPlayerInput, len(file.Players))
	for i, e := range file.Players {
		inputs[i] = e.input()
	}
	return inputs, nil
}

// sampleRoster gives every player a different club.
var sampleRoster = []rosterEntry{
	{"John", "Smith", "john.smith@example.com", "123 Main St, London", "Premier League", "Arsenal"},
	{"Emma", "Johnson", "emma.johnson@example.com", "456 Oak Ave, Manchester", "Premier League", "Liverpool"},
	{"Michael", "Williams", "michael.williams@example.com", "789 Pine Rd, Birmingham", "Premier League", "Chelsea"},
	{"Sarah", "Brown", "sarah.brown@example.com", "321 Elm St, Leeds", "La Liga", "Real Madrid"},
	{"David", "Jones", "david.jones@example.com", "654 Maple Dr, Barcelona", "La Liga", "Barcelona"},
	{"Lisa", "Garcia", "lisa.garcia@example.com", "987 Cedar Ln, Madrid", "La Liga", "Atlético Madrid"},
	{"Robert", "Miller", "robert.miller@example.com", "147 Birch Way, Milan", "Serie A", "AC Milan"},
	{"Jennifer", "Davis", "jennifer.davis@example.com", "258 Spruce St, Rome", "Serie A", "Inter Milan"},
	{"William", "Rodriguez", "william.rodriguez@example.com", "369 Willow Ave, Turin", "Serie A", "Juventus"},
	{"Amanda", "Martinez", "amanda.martinez@example.com", "741 Ash Blvd, Munich", "Bundesliga", "Bayern Munich"},
	{"James", "Hernandez", "james.hernandez@example.com", "852 Poplar Rd, Dortmund", "Bundesliga", "Borussia Dortmund"},
	{"Michelle", "Lopez", "michelle.lopez@example.com", "963 Fir St, Paris", "Ligue 1", "Paris Saint-Germain"},
	{"Christopher", "Wilson", "christopher.wilson@example.com", "159 Oakwood Dr, Lyon", "Ligue 1", "Lyon"},
	{"Jessica", "Anderson", "jessica.anderson@example.com", "357 Pinecrest Ave, Marseille", "Ligue 1", "Marseille"},
	{"Daniel", "Thomas", "daniel.thomas@example.com", "468 Elmwood Ln, Monaco", "Ligue 1", "AS Monaco"},
}

func sampleInputs() []services.RegisterPlayerInput {
	inputs := make([]services.RegisterPlayerInput, len(sampleRoster))
	for i, e := range sampleRoster {
		inputs[i] = e.input()
	}
	return inputs
}
