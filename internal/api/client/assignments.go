package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/testhub/client/internal/core/domain"
)

type assignedTestsResponse struct {
	Tests []domain.TestAssignment `json:"tests"`
}

// AssignedTests lists the tests assigned to the student with userID. A
// response without a tests field yields an empty list.
func (c *Client) AssignedTests(ctx context.Context, userID domain.UserID) (tests []domain.TestAssignment, err error) {
	defer func() { c.record(opAssignedTests, err) }()

	var resp assignedTestsResponse
	path := "/api/assigned-tests/" + url.PathEscape(string(userID))
	if err := c.exchange(ctx, opAssignedTests, http.MethodGet, path, nil, &resp, "failed to load assigned tests"); err != nil {
		return nil, err
	}
	if resp.Tests == nil {
		return []domain.TestAssignment{}, nil
	}
	return resp.Tests, nil
}
