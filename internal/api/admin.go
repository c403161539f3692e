package api

import (
	"context"
	"net/http"
	"strconv"
)

// DashboardStats summarizes the catalog and user base for the admin
// dashboard.
type DashboardStats struct {
	TotalComponents  int            `json:"totalComponents"`
	TotalUsers       int            `json:"totalUsers"`
	TotalBuilds      int            `json:"totalBuilds"`
	ComponentsByType map[string]int `json:"componentsByType"`
}

// GetDashboardStats fetches the admin dashboard summary.
func (c *Client) GetDashboardStats(ctx context.Context) (DashboardStats, error) {
	var stats DashboardStats
	if err := c.do(ctx, http.MethodGet, "/api/admin/dashboard/stats", nil, nil, &stats); err != nil {
		return DashboardStats{}, err
	}
	return stats, nil
}

// ListUsers fetches all accounts (admin only).
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var users []User
	if err := c.do(ctx, http.MethodGet, "/api/admin/users", nil, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// DeleteUser removes an account (admin only).
func (c *Client) DeleteUser(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, "/api/admin/users/"+strconv.Itoa(id), nil, nil, nil)
}
