package rest

import (
	"sort"

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
	it := l.Item

	c := Content{
		ID:              it.ID,
		Status:          string(it.Status),
		StatusLabel:     d.StatusLabel(it.Status),
		EffectiveStatus: string(l.Effective),
		CreatedAt:       it.CreatedAt,
		UpdatedAt:       it.UpdatedAt,
		CreatedBy:       it.CreatedBy,
	}

	switch it.Type {
	case content.TypeBanner:
		c.Title = &it.Title
		c.Description = &it.Description
		c.Type = &it.BannerType
		c.Position = &it.Position
		c.LinkURL = &it.LinkURL
		c.ImagePath = &it.ImagePath
		c.Priority = &it.Priority
		c.StartDate = it.StartDate
		c.EndDate = it.EndDate
	case content.TypeFAQ:
		c.Question = &it.Question
		c.Answer = &it.Answer
		c.Order = &it.Order
		c.IsPopular = &it.IsPopular
		c.ViewCount = &it.ViewCount
	case content.TypeNotice:
		c.Title = &it.Title
		c.Content = &it.Content
		c.IsImportant = &it.IsImportant
		c.ViewCount = &it.ViewCount
		c.StartDate = it.StartDate
		c.EndDate = it.EndDate
	case content.TypeTerm:
		c.Title = &it.Title
		c.Content = &it.Content
		c.Version = &it.Version
		c.IsRequired = &it.IsRequired
		c.EffectiveDate = it.EffectiveDate
	}

	if it.Type != content.TypeBanner {
		label := d.CategoryLabel(it.Category)
		c.Category = &it.Category
		c.CategoryLabel = &label
	}

	return c
}

func NewListResponse(p content.Page) ListResponse {
	return ListResponse{
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

	return Summary{
		Type:     string(s.Type),
		Total:    s.Total,
		ByStatus: byStatus,
	}
}

func NewMeta(d *content.Descriptor) Meta {
	statuses := make([]Option, len(d.Statuses))
	for i, st := range d.Statuses {
		statuses[i] = Option{Value: string(st), Label: d.StatusLabel(st)}
	}

	return Meta{
		Type:        string(d.Type),
		Label:       d.Label,
		Statuses:    statuses,
		Categories:  options(d.Categories),
		BannerTypes: options(d.BannerTypes),
		Positions:   options(d.Positions),
		Filters:     d.Filters,
	}
}

func options(labels map[string]string) []Option {
	if len(labels) == 0 {
		return nil
	}

	result := make([]Option, 0, len(labels))
	for value, label := range labels {
		result = append(result, Option{Value: value, Label: label})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Value < result[j].Value })

	return result
}

func (in ContentInput) Fields() content.Fields {
	f := content.Fields{
		Title:         in.Title,
		Description:   in.Description,
		Question:      in.Question,
		Answer:        in.Answer,
		Content:       in.Content,
		Category:      in.Category,
		BannerType:    in.Type,
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

func (r ListRequest) Filters() map[string]string {
	return map[string]string{
		content.FilterStatus:          r.Status,
		content.FilterEffectiveStatus: r.EffectiveStatus,
		content.FilterCategory:        r.Category,
		content.FilterType:            r.Type,
		content.FilterPosition:        r.Position,
		content.FilterPopular:         r.Popular,
		content.FilterImportant:       r.Important,
		content.FilterRequired:        r.Required,
		content.FilterVersion:         r.Version,
	}
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
