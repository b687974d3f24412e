package service

import (
	"context"
	"strings"

	"connectrpc.com/connect"

	"github.com/SchwenderOne/roscher4gpt5/internal/models"
	"github.com/SchwenderOne/roscher4gpt5/internal/quickadd"
	"github.com/SchwenderOne/roscher4gpt5/internal/storage"
	"github.com/SchwenderOne/roscher4gpt5/pkg/api"
	"github.com/SchwenderOne/roscher4gpt5/pkg/api/apiconnect"
)

var _ apiconnect.ShoppingServiceHandler = (*ShoppingService)(nil)

// ShoppingService implements the Connect ShoppingService.
type ShoppingService struct {
	store storage.ShoppingStore
	env   Env
}

func NewShoppingService(store storage.ShoppingStore, env Env) *ShoppingService {
	return &ShoppingService{store: store, env: env.withDefaults()}
}

// assigned resolves "Both" or a member name.
func (s *ShoppingService) assigned(members []string, requested string) (string, error) {
	requested = strings.TrimSpace(requested)
	if requested == "" || strings.EqualFold(requested, models.AssignedBoth) {
		return models.AssignedBoth, nil
	}
	if m, ok := member(members, requested); ok {
		return m, nil
	}
	return "", invalidArg("assigned %q is neither %s nor a household member", requested, models.AssignedBoth)
}

func parseOptionalDate(s string) (*models.Date, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	d, err := models.ParseDate(strings.TrimSpace(s))
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *ShoppingService) ListItems(ctx context.Context, req *connect.Request[api.ListItemsRequest]) (*connect.Response[api.ListItemsResponse], error) {
	items, err := s.store.ListItems(ctx)
	if err != nil {
		s.env.Logger.Error("ListItems: failed to list", "error", err)
		return nil, connectError(err)
	}

	resp := &api.ListItemsResponse{Items: make([]api.Item, 0, len(items))}
	for _, i := range items {
		resp.Items = append(resp.Items, itemToAPI(i))
		switch {
		case i.Status != models.ItemOpen:
		case i.LongTerm:
			resp.LongTerm++
		default:
			resp.Open++
			if i.PickToday {
				resp.Picks++
			}
		}
	}
	return connect.NewResponse(resp), nil
}

// CreateItem adds an item. It is shared evenly by the household unless
// assigned to one member or given an explicit split.
func (s *ShoppingService) CreateItem(ctx context.Context, req *connect.Request[api.CreateItemRequest]) (*connect.Response[api.CreateItemResponse], error) {
	msg := req.Msg
	members, err := s.env.Directory.Names(ctx)
	if err != nil {
		return nil, connectError(err)
	}

	item := &models.ShoppingItem{
		Name:      strings.TrimSpace(msg.Name),
		Quantity:  msg.Quantity,
		Price:     msg.Price,
		PickToday: msg.PickToday,
		LongTerm:  msg.LongTerm,
		Status:    models.ItemOpen,
	}
	if item.Quantity == 0 {
		item.Quantity = 1
	}
	if item.Assigned, err = s.assigned(members, msg.Assigned); err != nil {
		return nil, err
	}
	if item.Shared() {
		if len(msg.Split) > 0 {
			if item.Split, err = checkSplit(members, splitFromAPI(msg.Split)); err != nil {
				return nil, err
			}
		} else {
			item.Split = models.EvenSplit(members)
		}
	}
	if item.TargetDate, err = parseOptionalDate(msg.TargetDate); err != nil {
		return nil, connectError(err)
	}
	return s.create(ctx, item)
}

func (s *ShoppingService) create(ctx context.Context, item *models.ShoppingItem) (*connect.Response[api.CreateItemResponse], error) {
	if err := item.Validate(); err != nil {
		return nil, connectError(err)
	}
	if err := s.store.CreateItem(ctx, item); err != nil {
		s.env.Logger.Error("CreateItem: failed to save", "name", item.Name, "error", err)
		return nil, connectError(err)
	}
	s.env.Logger.Info("Shopping item created", "item_id", item.ID, "name", item.Name, "quantity", item.Quantity)
	return connect.NewResponse(&api.CreateItemResponse{Item: itemToAPI(item)}), nil
}

func (s *ShoppingService) UpdateItem(ctx context.Context, req *connect.Request[api.UpdateItemRequest]) (*connect.Response[api.UpdateItemResponse], error) {
	msg := req.Msg
	item, err := s.store.GetItem(ctx, msg.ID)
	if err != nil {
		return nil, connectError(err)
	}
	members, err := s.env.Directory.Names(ctx)
	if err != nil {
		return nil, connectError(err)
	}

	if msg.Name != nil {
		item.Name = strings.TrimSpace(*msg.Name)
	}
	if msg.Quantity != nil {
		item.Quantity = *msg.Quantity
	}
	if msg.Price != nil {
		item.Price = msg.Price
	}
	if msg.Assigned != nil {
		if item.Assigned, err = s.assigned(members, *msg.Assigned); err != nil {
			return nil, err
		}
	}
	if len(msg.Split) > 0 {
		if item.Split, err = checkSplit(members, splitFromAPI(msg.Split)); err != nil {
			return nil, err
		}
	}
	if !item.Shared() {
		item.Split = nil
	} else if len(item.Split) == 0 {
		item.Split = models.EvenSplit(members)
	}
	if msg.PickToday != nil {
		item.PickToday = *msg.PickToday
	}
	if msg.LongTerm != nil {
		item.LongTerm = *msg.LongTerm
	}
	if msg.TargetDate != nil {
		if item.TargetDate, err = parseOptionalDate(*msg.TargetDate); err != nil {
			return nil, connectError(err)
		}
	}
	if msg.Status != nil {
		item.Status = models.ItemStatus(strings.ToLower(strings.TrimSpace(*msg.Status)))
	}

	if err := item.Validate(); err != nil {
		return nil, connectError(err)
	}
	if err := s.store.UpdateItem(ctx, item); err != nil {
		s.env.Logger.Error("UpdateItem: failed to save", "item_id", item.ID, "error", err)
		return nil, connectError(err)
	}
	return connect.NewResponse(&api.UpdateItemResponse{Item: itemToAPI(item)}), nil
}

func (s *ShoppingService) DeleteItem(ctx context.Context, req *connect.Request[api.DeleteItemRequest]) (*connect.Response[api.DeleteItemResponse], error) {
	if err := s.store.DeleteItem(ctx, req.Msg.ID); err != nil {
		return nil, connectError(err)
	}
	s.env.Logger.Info("Shopping item deleted", "item_id", req.Msg.ID)
	return connect.NewResponse(&api.DeleteItemResponse{}), nil
}

// ToggleBought flips an item between open and bought. Buying an item also
// clears its pick for today.
func (s *ShoppingService) ToggleBought(ctx context.Context, req *connect.Request[api.ToggleBoughtRequest]) (*connect.Response[api.ToggleBoughtResponse], error) {
	item, err := s.store.GetItem(ctx, req.Msg.ID)
	if err != nil {
		return nil, connectError(err)
	}

	if item.Status == models.ItemBought {
		item.Status = models.ItemOpen
	} else {
		item.Status = models.ItemBought
		item.PickToday = false
	}
	if err := s.store.UpdateItem(ctx, item); err != nil {
		return nil, connectError(err)
	}

	s.env.Logger.Info("Shopping item toggled", "item_id", item.ID, "status", item.Status)
	return connect.NewResponse(&api.ToggleBoughtResponse{Item: itemToAPI(item)}), nil
}

// QuickAddItem adds an item from text such as "add Milk x2 split 70/30".
func (s *ShoppingService) QuickAddItem(ctx context.Context, req *connect.Request[api.QuickAddItemRequest]) (*connect.Response[api.QuickAddItemResponse], error) {
	members, err := s.env.Directory.Names(ctx)
	if err != nil {
		return nil, connectError(err)
	}
	item, err := quickadd.ShoppingItem(req.Msg.Text, members)
	if err != nil {
		return nil, connectError(err)
	}
	resp, err := s.create(ctx, &item)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&api.QuickAddItemResponse{Item: resp.Msg.Item}), nil
}
