package rpc

import (
	"context"

	"github.com/vmkteam/zenrpc/v2"

	"github.com/daniilsolovey/content-admin/internal/content"
)

//go:generate zenrpc

// ContentService provides RPC methods for banners, FAQs, notices and terms.
type ContentService struct {
	zenrpc.Service
	engine   *content.Engine
	sessions *content.Sessions
	coord    *content.Coordinator
}

func NewContentService(engine *content.Engine, sessions *content.Sessions, coord *content.Coordinator) *ContentService {
	return &ContentService{engine: engine, sessions: sessions, coord: coord}
}

// List returns one page of a content type with effective statuses.
//
//zenrpc:req listing request
//zenrpc:return page of items
//zenrpc:400 unknown content type
//zenrpc:409 request superseded by a newer one of the same session
//zenrpc:422 invalid paging or filters
//zenrpc:502 repository unavailable
//zenrpc:504 repository timed out
func (s ContentService) List(ctx context.Context, req ListRequest) (Page, error) {
	t, err := parseType(req.Type)
	if err != nil {
		return Page{}, err
	}

	page, err := s.sessions.List(ctx, req.Session, content.ListParams{
		Type:     t,
		Search:   req.Search,
		Filters:  req.Filters,
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		return Page{}, newError(err)
	}

	return NewPage(page), nil
}

// Get returns a single item.
//
//zenrpc:contentType content type
//zenrpc:id item id
//zenrpc:return item with its effective status
//zenrpc:404 item not found
func (s ContentService) Get(ctx context.Context, contentType, id string) (Content, error) {
	t, err := parseType(contentType)
	if err != nil {
		return Content{}, err
	}

	item, err := s.engine.Get(ctx, t, id)
	if err != nil {
		return Content{}, newError(err)
	}

	return NewContent(item), nil
}

// Summary counts all items of a type by effective status.
//
//zenrpc:contentType content type
//zenrpc:return status counts
func (s ContentService) Summary(ctx context.Context, contentType string) (Summary, error) {
	t, err := parseType(contentType)
	if err != nil {
		return Summary{}, err
	}

	sum, err := s.engine.Summary(ctx, t)
	if err != nil {
		return Summary{}, newError(err)
	}

	return NewSummary(sum), nil
}

// Create stores a new item on behalf of the calling admin.
//
//zenrpc:contentType content type
//zenrpc:item new item fields
//zenrpc:return created item
//zenrpc:422 validation failed
func (s ContentService) Create(ctx context.Context, contentType string, item ContentInput) (Content, error) {
	t, err := parseType(contentType)
	if err != nil {
		return Content{}, err
	}

	actor, _ := content.ActorFrom(ctx)
	created, err := s.coord.Create(ctx, t, actor, item.Fields())
	if err != nil {
		return Content{}, newError(err)
	}

	return s.listed(ctx, created), nil
}

// Update changes the given fields of an item.
//
//zenrpc:contentType content type
//zenrpc:id item id
//zenrpc:item changed fields
//zenrpc:return updated item
//zenrpc:404 item not found
//zenrpc:409 item changed concurrently
//zenrpc:422 validation failed
func (s ContentService) Update(ctx context.Context, contentType, id string, item ContentInput) (Content, error) {
	t, err := parseType(contentType)
	if err != nil {
		return Content{}, err
	}

	updated, err := s.coord.Update(ctx, t, id, item.Fields())
	if err != nil {
		return Content{}, newError(err)
	}

	return s.listed(ctx, updated), nil
}

// Delete removes an item.
//
//zenrpc:contentType content type
//zenrpc:id item id
//zenrpc:return true on success
//zenrpc:404 item not found
func (s ContentService) Delete(ctx context.Context, contentType, id string) (bool, error) {
	t, err := parseType(contentType)
	if err != nil {
		return false, err
	}

	if err := s.coord.Delete(ctx, t, id); err != nil {
		return false, newError(err)
	}

	return true, nil
}

func (s ContentService) listed(ctx context.Context, it content.Item) Content {
	got, err := s.engine.Get(ctx, it.Type, it.ID)
	if err != nil {
		return NewContent(content.Listed{Item: it, Effective: it.Status})
	}
	return NewContent(got)
}
