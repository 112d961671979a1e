package rpc

import (
	"errors"

	"github.com/vmkteam/zenrpc/v2"

	"github.com/daniilsolovey/content-admin/internal/content"
	"github.com/daniilsolovey/content-admin/internal/settings"
)

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

func NewContent(l content.Listed) Content {
	d := content.Describe(l.Type)

	return Content{
		ID:              l.ID,
		Type:            string(l.Type),
		Status:          string(l.Status),
		StatusLabel:     d.StatusLabel(l.Status),
		EffectiveStatus: string(l.Effective),
		CreatedAt:       l.CreatedAt,
		UpdatedAt:       l.UpdatedAt,
		CreatedBy:       l.CreatedBy,
		Title:           l.Title,
		Description:     l.Description,
		Question:        l.Question,
		Answer:          l.Answer,
		Content:         l.Content,
		Category:        l.Category,
		BannerType:      l.BannerType,
		Position:        l.Position,
		LinkURL:         l.LinkURL,
		ImagePath:       l.ImagePath,
		Priority:        l.Priority,
		Order:           l.Order,
		Version:         l.Version,
		IsPopular:       l.IsPopular,
		IsImportant:     l.IsImportant,
		IsRequired:      l.IsRequired,
		ViewCount:       l.ViewCount,
		StartDate:       l.StartDate,
		EndDate:         l.EndDate,
		EffectiveDate:   l.EffectiveDate,
	}
}

func NewPage(p content.Page) Page {
	return Page{
		Items:      Map(p.Items, NewContent),
		Total:      p.Total,
		Page:       p.Page,
		PerPage:    p.PerPage,
		TotalPages: p.TotalPages,
	}
}

func NewSummary(s content.Summary) Summary {
	byStatus := make(map[string]int, len(s.ByStatus))
	for st, n := range s.ByStatus {
		byStatus[string(st)] = n
	}

	return Summary{Type: string(s.Type), Total: s.Total, ByStatus: byStatus}
}

func (in ContentInput) Fields() content.Fields {
	f := content.Fields{
		Title:         in.Title,
		Description:   in.Description,
		Question:      in.Question,
		Answer:        in.Answer,
		Content:       in.Content,
		Category:      in.Category,
		BannerType:    in.BannerType,
		Position:      in.Position,
		LinkURL:       in.LinkURL,
		ImagePath:     in.ImagePath,
		Priority:      in.Priority,
		Order:         in.Order,
		Version:       in.Version,
		IsPopular:     in.IsPopular,
		IsImportant:   in.IsImportant,
		IsRequired:    in.IsRequired,
		StartDate:     in.StartDate,
		EndDate:       in.EndDate,
		EffectiveDate: in.EffectiveDate,
	}
	if in.Status != nil {
		st := content.Status(*in.Status)
		f.Status = &st
	}

	return f
}

func NewSite(s settings.Site) Site {
	return Site(s)
}

func (in SiteInput) Patch() settings.SitePatch {
	return settings.SitePatch(in)
}

func NewGateway(g settings.Gateway) Gateway {
	return Gateway(g)
}

func (in GatewayInput) Patch() settings.GatewayPatch {
	return settings.GatewayPatch(in)
}

// newError converts domain errors into JSON-RPC errors with HTTP-like codes.
func newError(err error) error {
	var (
		verr *content.ValidationError
		rerr *content.RepositoryError
	)

	switch {
	case err == nil:
		return nil
	case errors.As(err, &verr):
		return &zenrpc.Error{Code: 422, Message: "validation failed", Data: verr.Fields}
	case errors.Is(err, content.ErrNotFound):
		return zenrpc.NewStringError(404, err.Error())
	case errors.Is(err, content.ErrSuperseded), errors.Is(err, content.ErrConflict):
		return zenrpc.NewStringError(409, err.Error())
	case errors.Is(err, content.ErrTimeout):
		return zenrpc.NewStringError(504, "repository timed out")
	case errors.As(err, &rerr):
		return zenrpc.NewStringError(502, "repository unavailable")
	}

	return zenrpc.NewStringError(500, "internal error")
}

func parseType(s string) (content.Type, error) {
	t, err := content.ParseType(s)
	if err != nil {
		return "", zenrpc.NewStringError(400, err.Error())
	}
	return t, nil
}
