package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestDeriveInviteStatus(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		used      bool
		expiresAt time.Time
		expected  InviteStatus
	}{
		{"unused and in the future", false, now.Add(time.Hour), InviteStatusPending},
		{"unused and in the past", false, now.Add(-time.Second), InviteStatusExpired},
		{"used and in the future", true, now.Add(time.Hour), InviteStatusAccepted},
		{"used and in the past", true, now.Add(-time.Hour), InviteStatusAccepted},
		{"expiring exactly now", false, now, InviteStatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DeriveInviteStatus(tt.used, tt.expiresAt, now))
		})
	}
}

func TestInviteStatusMethod(t *testing.T) {
	now := time.Now()
	invite := &Invite{ExpiresAt: now.Add(-time.Minute)}
	assert.Equal(t, InviteStatusExpired, invite.Status(now))

	invite.Used = true
	assert.Equal(t, InviteStatusAccepted, invite.Status(now))
}

func TestUserSeatLimit(t *testing.T) {
	owner := &User{Role: RoleOwner}
	assert.True(t, owner.IsOwner())
	assert.Equal(t, 5, owner.EffectiveSeatLimit(5))

	owner.SeatLimit = 8
	assert.Equal(t, 8, owner.EffectiveSeatLimit(5))

	member := &User{Role: RoleMember}
	assert.False(t, member.IsOwner())
}

func TestRoleIsValid(t *testing.T) {
	assert.True(t, RoleOwner.IsValid())
	assert.True(t, RoleMember.IsValid())
	assert.False(t, Role("Admin").IsValid())
}

func TestDocumentObjectKeys(t *testing.T) {
	doc := &Document{S3KeyOriginal: "workspace_1/original/a.docx"}
	assert.Equal(t, []string{"workspace_1/original/a.docx"}, doc.ObjectKeys())

	doc.S3KeyConverted = "workspace_1/converted/a.md"
	assert.Len(t, doc.ObjectKeys(), 2)
}

func TestBeforeCreateAssignsID(t *testing.T) {
	base := &BaseModel{}
	assert.NoError(t, base.BeforeCreate(nil))
	assert.NotEqual(t, uuid.Nil, base.ID)

	existing := uuid.New()
	record := &RecordModel{ID: existing}
	assert.NoError(t, record.BeforeCreate(nil))
	assert.Equal(t, existing, record.ID)

	fc := &FollowedCase{}
	assert.NoError(t, fc.BeforeCreate(nil))
	assert.NotEqual(t, uuid.Nil, fc.ID)
	assert.False(t, fc.FollowedAt.IsZero())
}
