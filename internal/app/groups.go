package app

import (
	"context"
	"fmt"

	"github.com/Dan9191/saveeasy/internal/models"
	"github.com/Dan9191/saveeasy/internal/service"
	"github.com/Dan9191/saveeasy/internal/store"
)

// JoinGroup joins a circle and records the user as a member. An explicit
// group ID must name a circle already in the store.
func (a *App) JoinGroup(ctx context.Context, req service.JoinGroupRequest) service.Result[models.GroupMembership] {
	var existing *models.Group
	if req.GroupID != "" {
		existing = a.findGroup(req.GroupID)
		if existing == nil {
			return notFound[models.GroupMembership]("group")
		}
	}

	res := a.svc.JoinGroup(ctx, req)
	if !res.Success {
		a.notify("Failed to Join Group", res.Error, models.NotifyError)
		return res
	}

	u := a.user()
	m := res.Data
	if m.GroupName == "" && existing != nil {
		m.GroupName = existing.Name
		m.ContributionAmount = existing.ContributionAmount
		res.Data = m
	}
	a.commit(store.RecordGroupMembership{
		Membership: m,
		Member: models.GroupMember{
			ID:       u.ID,
			Name:     u.Name,
			JoinDate: m.JoinedAt,
			Status:   "active",
		},
	})
	a.notify("Group Joined Successfully!", fmt.Sprintf("Welcome to %s!", m.GroupName), models.NotifySuccess)
	return res
}

// CreateGroup creates a circle administered by the user
func (a *App) CreateGroup(ctx context.Context, req service.GroupRequest) service.Result[models.Group] {
	u := a.user()
	req.AdminID = u.ID
	res := a.svc.CreateGroup(ctx, req)
	if !res.Success {
		return res
	}

	g := res.Data
	g.Members = append(g.Members, models.GroupMember{
		ID:       u.ID,
		Name:     u.Name,
		JoinDate: g.CreatedAt,
		Status:   "active",
	})
	res.Data = g
	a.commit(store.AddGroup{Group: g})
	return res
}

// ContributeToGroup pays into a circle the user belongs to
func (a *App) ContributeToGroup(ctx context.Context, groupID string, amount float64) service.Result[models.Transaction] {
	group := a.findGroup(groupID)
	if group == nil {
		return notFound[models.Transaction]("group")
	}

	res := a.svc.ContributeToGroup(ctx, groupID, amount)
	if !res.Success {
		return res
	}
	res.Data.Description = fmt.Sprintf("%s contribution", group.Name)
	a.commit(store.RecordGroupContribution{Transaction: res.Data, MemberID: a.user().ID})
	return res
}

func (a *App) findGroup(id string) *models.Group {
	for _, g := range a.store.Snapshot().Groups {
		if g.ID == id {
			return &g
		}
	}
	return nil
}
