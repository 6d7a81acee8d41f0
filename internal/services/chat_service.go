// Package services – ChatService
//
// This file implements the chat flows for both audiences. A turn is: trim
// and validate the message, compute the canned reply (employee responders see
// the sender's name and leave counter), and append the user and bot rows as
// one transactional pair. Transcripts are append-only and returned in stable
// order for display.
package services

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/Neha-N8242/HR-Insight-Dashboard/internal/chatbot"
	"github.com/Neha-N8242/HR-Insight-Dashboard/internal/domain"
	"github.com/Neha-N8242/HR-Insight-Dashboard/internal/repo"
)

// ChatMessageView is one transcript bubble for the templates.
type ChatMessageView struct {
	Role    string
	Content string
	IsUser  bool
}

// ChatService persists transcripts and produces bot replies.
type ChatService struct {
	DB *gorm.DB
}

// EmployeeTurn handles one employee chat message: it looks up the sender's
// name and leave counter for the responder, then appends both turns.
func (s *ChatService) EmployeeTurn(ctx context.Context, employeeID, message string) error {
	message = strings.TrimSpace(message)
	if message == "" {
		return Validation("Message must not be empty.")
	}

	name, leaves := "Employee", 0
	if emp, err := repo.GetEmployee(ctx, s.DB, employeeID); err == nil {
		name, leaves = emp.Name, emp.LeavesTaken
	}

	reply := chatbot.EmployeeReply(name, leaves, message)
	return repo.AppendChatTurn(ctx, s.DB, employeeID, message, reply)
}

// ApplicantTurn handles one applicant chat message.
func (s *ChatService) ApplicantTurn(ctx context.Context, ownerID, message string) error {
	message = strings.TrimSpace(message)
	if message == "" {
		return Validation("Message must not be empty.")
	}
	reply := chatbot.ApplicantReply(message)
	return repo.AppendChatTurn(ctx, s.DB, ownerID, message, reply)
}

// History returns the transcript for an owner in display order.
func (s *ChatService) History(ctx context.Context, ownerID string) ([]ChatMessageView, error) {
	msgs, err := repo.ListChatMessages(ctx, s.DB, ownerID)
	if err != nil {
		return nil, err
	}
	out := make([]ChatMessageView, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, ChatMessageView{
			Role:    m.Role,
			Content: m.Content,
			IsUser:  m.Role == domain.RoleUser,
		})
	}
	return out, nil
}
