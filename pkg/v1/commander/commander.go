package commander

import (
	"context"
	"encoding/json"
	"fmt"
)

//go:generate mockery --name Sender --filename sender.go

// Sender sends messages.
type Sender interface {
	Send(context.Context, []byte) error
}

// RunCommand requests run of saved search.
type RunCommand struct {
	SearchID int `json:"searchId"`
}

// RunCommander sends run commands.
type RunCommander struct {
	sender Sender
}

// NewRunCommander returns new RunCommander using provided sender for sending messages.
func NewRunCommander(sender Sender) RunCommander {
	return RunCommander{
		sender: sender,
	}
}

// SendRunCommand sends run command of search with provided ID.
func (c RunCommander) SendRunCommand(ctx context.Context, searchID int) error {
	cmd := RunCommand{
		SearchID: searchID,
	}

	cmdMsg, err := json.Marshal(cmd)
	if err != nil {
		return fmt.Errorf("can't marshal run command: %w", err)
	}

	if err := c.sender.Send(ctx, cmdMsg); err != nil {
		return fmt.Errorf("can't send run command: %w", err)
	}

	return nil
}
