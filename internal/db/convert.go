package db

import "github.com/daniilsolovey/content-admin/internal/content"

func (b *Banner) toItem() content.Item {
	return content.Item{
		ID:          b.ID,
		Type:        content.TypeBanner,
		Status:      content.Status(b.Status),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
		CreatedBy:   b.CreatedBy,
		Title:       b.Title,
		Description: b.Description,
		BannerType:  b.Type,
		Position:    b.Position,
		LinkURL:     b.LinkURL,
		ImagePath:   b.ImagePath,
		Priority:    b.Priority,
		StartDate:   utc(b.StartDate),
		EndDate:     utc(b.EndDate),
	}
}

func (b *Banner) fromItem(it content.Item) {
	*b = Banner{
		ID:          it.ID,
		Status:      string(it.Status),
		Title:       it.Title,
		Description: it.Description,
		Type:        it.BannerType,
		Position:    it.Position,
		LinkURL:     it.LinkURL,
		ImagePath:   it.ImagePath,
		Priority:    it.Priority,
		StartDate:   it.StartDate,
		EndDate:     it.EndDate,
		CreatedBy:   it.CreatedBy,
		CreatedAt:   it.CreatedAt,
		UpdatedAt:   it.UpdatedAt,
	}
}

func (f *Faq) toItem() content.Item {
	return content.Item{
		ID:        f.ID,
		Type:      content.TypeFAQ,
		Status:    content.Status(f.Status),
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
		CreatedBy: f.CreatedBy,
		Question:  f.Question,
		Answer:    f.Answer,
		Category:  f.Category,
		IsPopular: f.IsPopular,
		Order:     f.OrderNumber,
		ViewCount: f.ViewCount,
	}
}

func (f *Faq) fromItem(it content.Item) {
	*f = Faq{
		ID:          it.ID,
		Status:      string(it.Status),
		Question:    it.Question,
		Answer:      it.Answer,
		Category:    it.Category,
		IsPopular:   it.IsPopular,
		OrderNumber: it.Order,
		ViewCount:   it.ViewCount,
		CreatedBy:   it.CreatedBy,
		CreatedAt:   it.CreatedAt,
		UpdatedAt:   it.UpdatedAt,
	}
}

func (n *Notice) toItem() content.Item {
	return content.Item{
		ID:          n.ID,
		Type:        content.TypeNotice,
		Status:      content.Status(n.Status),
		CreatedAt:   n.CreatedAt,
		UpdatedAt:   n.UpdatedAt,
		CreatedBy:   n.CreatedBy,
		Title:       n.Title,
		Content:     n.Content,
		Category:    n.Category,
		IsImportant: n.IsImportant,
		ViewCount:   n.ViewCount,
		StartDate:   utc(n.StartDate),
		EndDate:     utc(n.EndDate),
	}
}

func (n *Notice) fromItem(it content.Item) {
	*n = Notice{
		ID:          it.ID,
		Status:      string(it.Status),
		Title:       it.Title,
		Content:     it.Content,
		Category:    it.Category,
		IsImportant: it.IsImportant,
		ViewCount:   it.ViewCount,
		StartDate:   it.StartDate,
		EndDate:     it.EndDate,
		CreatedBy:   it.CreatedBy,
		CreatedAt:   it.CreatedAt,
		UpdatedAt:   it.UpdatedAt,
	}
}

func (t *Term) toItem() content.Item {
	return content.Item{
		ID:            t.ID,
		Type:          content.TypeTerm,
		Status:        content.Status(t.Status),
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
		CreatedBy:     t.CreatedBy,
		Title:         t.Title,
		Content:       t.Content,
		Category:      t.Category,
		Version:       t.Version,
		IsRequired:    t.IsRequired,
		EffectiveDate: utc(t.EffectiveDate),
	}
}

func (t *Term) fromItem(it content.Item) {
	*t = Term{
		ID:            it.ID,
		Status:        string(it.Status),
		Title:         it.Title,
		Content:       it.Content,
		Category:      it.Category,
		Version:       it.Version,
		IsRequired:    it.IsRequired,
		EffectiveDate: it.EffectiveDate,
		CreatedBy:     it.CreatedBy,
		CreatedAt:     it.CreatedAt,
		UpdatedAt:     it.UpdatedAt,
	}
}
