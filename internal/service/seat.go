package service

import (
	"context"
	"fmt"
	"time"

	"legal-workspace-backend/internal/database/models"
	"legal-workspace-backend/internal/repository"

	"github.com/google/uuid"
)

// SeatUsageResponse reports how many of an owner's seats are taken
type SeatUsageResponse struct {
	SeatLimit int   `json:"seat_limit"`
	Used      int64 `json:"used"`
	Members   int64 `json:"members"`
	Pending   int64 `json:"pending"`
	Available int64 `json:"available"`
}

// SeatService computes seat usage for owners
type SeatService struct {
	repos            *repository.Repositories
	defaultSeatLimit int
	now              func() time.Time
}

// NewSeatService creates a new seat service
func NewSeatService(repos *repository.Repositories, defaultSeatLimit int) *SeatService {
	return &SeatService{
		repos:            repos,
		defaultSeatLimit: defaultSeatLimit,
		now:              time.Now,
	}
}

// ComputeSeatUsage counts the distinct members and pending invites of the owner
func (s *SeatService) ComputeSeatUsage(ctx context.Context, ownerID uuid.UUID) (*SeatUsageResponse, error) {
	owner, err := s.repos.Users.GetByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return computeSeatUsage(ctx, s.repos, owner, s.defaultSeatLimit, s.now())
}

// computeSeatUsage is shared with the invite workflow, which runs it inside its transaction
func computeSeatUsage(ctx context.Context, repos *repository.Repositories, owner *models.User, defaultSeatLimit int, now time.Time) (*SeatUsageResponse, error) {
	members, err := repos.Memberships.CountDistinctMembers(ctx, owner.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count members: %w", err)
	}

	pending, err := repos.Invites.CountPending(ctx, owner.ID, now)
	if err != nil {
		return nil, fmt.Errorf("failed to count pending invites: %w", err)
	}

	limit := owner.EffectiveSeatLimit(defaultSeatLimit)
	used := members + pending
	available := int64(limit) - used
	if available < 0 {
		available = 0
	}

	return &SeatUsageResponse{
		SeatLimit: limit,
		Used:      used,
		Members:   members,
		Pending:   pending,
		Available: available,
	}, nil
}

// Exhausted reports whether no further invite fits within the limit
func (u *SeatUsageResponse) Exhausted() bool {
	return u.Used >= int64(u.SeatLimit)
}
