package models

import "time"

// GroupMember tracks one participant of a savings circle
type GroupMember struct {
	ID                      string    `json:"id"`
	Name                    string    `json:"name"`
	JoinDate                time.Time `json:"join_date"`
	TotalContributions      float64   `json:"total_contributions"`
	Status                  string    `json:"status"`
	HasContributedThisCycle bool      `json:"has_contributed_this_cycle"`
}

// Group represents an Ajo/Esusu savings circle
type Group struct {
	ID                 string        `json:"id"`
	Name               string        `json:"name"`
	Members            []GroupMember `json:"members"`
	ContributionAmount float64       `json:"contribution_amount"`
	Frequency          Frequency     `json:"frequency"`
	NextContribution   time.Time     `json:"next_contribution"`
	TotalPool          float64       `json:"total_pool"`
	AdminID            string        `json:"admin_id"`
	Rules              string        `json:"rules"`
	IsActive           bool          `json:"is_active"`
	CreatedAt          time.Time     `json:"created_at"`
}

// GroupType selects the membership template used when joining a circle
type GroupType string

const (
	GroupProfessional GroupType = "professional"
	GroupCommunity    GroupType = "community"
	GroupFamily       GroupType = "family"
	GroupBusiness     GroupType = "business"
	GroupStudent      GroupType = "student"
)

// GroupMembership is the outcome of an accepted join request
type GroupMembership struct {
	GroupID            string    `json:"group_id"`
	GroupName          string    `json:"group_name"`
	GroupType          GroupType `json:"group_type,omitempty"`
	ContributionAmount float64   `json:"contribution_amount"`
	JoinedAt           time.Time `json:"joined_at"`
}
