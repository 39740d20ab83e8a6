package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Dan9191/saveeasy/internal/models"
	"github.com/Dan9191/saveeasy/internal/utils"
)

var pendingReasons = []string{
	"Group is currently at maximum capacity",
	"Application requires additional verification",
	"Group criteria not fully met",
	"Waiting list is currently full",
}

// JoinGroupRequest joins a known group by ID, or applies to a circle of
// the given type
type JoinGroupRequest struct {
	GroupID   string           `json:"group_id,omitempty"`
	GroupType models.GroupType `json:"group_type,omitempty"`
}

// JoinGroup simulates a group membership application
func (s *Service) JoinGroup(ctx context.Context, req JoinGroupRequest) Result[models.GroupMembership] {
	const op = "join_group"
	start := time.Now()

	if req.GroupID == "" && req.GroupType == "" {
		return observe(s, op, start, fail[models.GroupMembership]("Invalid group",
			"A group ID or group type is required"))
	}
	template, known := s.rules.GroupTemplates[string(req.GroupType)]
	if req.GroupType != "" && !known {
		return observe(s, op, start, fail[models.GroupMembership]("Invalid group type",
			fmt.Sprintf("Unknown group type %q", req.GroupType)))
	}

	if err := s.wait(ctx, s.rules.Delays.GroupJoin); err != nil {
		return observe(s, op, start, cancelled[models.GroupMembership](err))
	}
	now := s.now()

	if req.GroupType == "" {
		if s.rnd.Float64() < s.rules.GroupJoinFailureRate {
			return observe(s, op, start, fail[models.GroupMembership]("Group is full",
				"This group has reached maximum capacity"))
		}
		return observe(s, op, start, ok(models.GroupMembership{
			GroupID:  req.GroupID,
			JoinedAt: now,
		}, "Successfully joined the group! Welcome aboard."))
	}

	i := s.rnd.Intn(len(template.Names))
	if s.rnd.Float64() > template.SuccessRate {
		return observe(s, op, start, fail[models.GroupMembership]("Group application pending", s.pick(pendingReasons)))
	}

	m := models.GroupMembership{
		GroupID:            fmt.Sprintf("GRP_%s_%d", strings.ToUpper(string(req.GroupType)), now.UnixMilli()),
		GroupName:          template.Names[i],
		GroupType:          req.GroupType,
		ContributionAmount: template.Contributions[i],
		JoinedAt:           now,
	}
	return observe(s, op, start, ok(m, fmt.Sprintf("Successfully joined %s! Welcome aboard.", m.GroupName)))
}

// GroupRequest describes a new savings circle
type GroupRequest struct {
	Name               string           `json:"name"`
	ContributionAmount float64          `json:"contribution_amount"`
	Frequency          models.Frequency `json:"frequency,omitempty"`
	Rules              string           `json:"rules,omitempty"`
	AdminID            string           `json:"admin_id,omitempty"`
}

// CreateGroup simulates creating a savings circle administered by the user
func (s *Service) CreateGroup(ctx context.Context, req GroupRequest) Result[models.Group] {
	const op = "create_group"
	start := time.Now()

	if req.ContributionAmount < 0 {
		return observe(s, op, start, invalidAmount[models.Group]())
	}

	if err := s.wait(ctx, s.rules.Delays.GroupCreate); err != nil {
		return observe(s, op, start, cancelled[models.Group](err))
	}

	now := s.now()
	g := models.Group{
		ID:                 utils.GenerateID(),
		Name:               req.Name,
		Members:            []models.GroupMember{},
		ContributionAmount: req.ContributionAmount,
		Frequency:          req.Frequency,
		NextContribution:   now.Add(7 * 24 * time.Hour),
		AdminID:            req.AdminID,
		Rules:              req.Rules,
		IsActive:           true,
		CreatedAt:          now,
	}
	if g.Name == "" {
		g.Name = "New Group"
	}
	if g.ContributionAmount == 0 {
		g.ContributionAmount = 1000
	}
	if g.Frequency == "" {
		g.Frequency = models.Monthly
	}
	if g.Rules == "" {
		g.Rules = "Standard group rules apply"
	}

	return observe(s, op, start, ok(g, "Group created successfully"))
}

// ContributeToGroup simulates a contribution to a circle's pool
func (s *Service) ContributeToGroup(ctx context.Context, groupID string, amount float64) Result[models.Transaction] {
	const op = "group_contribution"
	start := time.Now()

	if amount <= 0 {
		return observe(s, op, start, invalidAmount[models.Transaction]())
	}
	if groupID == "" {
		return observe(s, op, start, fail[models.Transaction]("Invalid group", "A group ID is required"))
	}

	if err := s.wait(ctx, s.rules.Delays.GroupContribution); err != nil {
		return observe(s, op, start, cancelled[models.Transaction](err))
	}

	now := s.now()
	tx := models.Transaction{
		ID:          utils.GeneratePrefixedID("GRP", now),
		Type:        models.TxGroupContribution,
		Amount:      amount,
		Description: "Group contribution",
		Date:        now,
		Category:    "group_savings",
		GroupID:     groupID,
		Status:      models.StatusCompleted,
		Method:      models.MethodMobileMoney,
	}
	return observe(s, op, start, ok(tx, "Contribution made successfully"))
}
