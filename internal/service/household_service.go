package service

import (
	"context"

	"connectrpc.com/connect"

	"github.com/SchwenderOne/roscher4gpt5/pkg/api"
	"github.com/SchwenderOne/roscher4gpt5/pkg/api/apiconnect"
)

var _ apiconnect.HouseholdServiceHandler = (*HouseholdService)(nil)

// HouseholdService exposes who lives in the household.
type HouseholdService struct {
	env Env
}

func NewHouseholdService(env Env) *HouseholdService {
	return &HouseholdService{env: env.withDefaults()}
}

// ListMembers returns the members in rotation order and the caller's name.
func (s *HouseholdService) ListMembers(ctx context.Context, req *connect.Request[api.ListMembersRequest]) (*connect.Response[api.ListMembersResponse], error) {
	members, err := s.env.Directory.Members(ctx)
	if err != nil {
		s.env.Logger.Error("ListMembers: failed to list members", "error", err)
		return nil, connectError(err)
	}

	resp := &api.ListMembersResponse{Members: make([]api.Member, 0, len(members))}
	names := make([]string, 0, len(members))
	for _, m := range members {
		resp.Members = append(resp.Members, api.Member{ID: m.ID, DisplayName: m.DisplayName})
		names = append(names, m.DisplayName)
	}
	resp.Current = s.env.caller(ctx, names)
	return connect.NewResponse(resp), nil
}
