package handler

import (
	"time"

	"pluma/internal/domain/entity"
	"pluma/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductView is the JSON shape of a catalog entry.
type ProductView struct {
	ID              int64           `json:"id"`
	Title           string          `json:"titulo"`
	Author          string          `json:"autor"`
	Description     string          `json:"descricao"`
	Genre           string          `json:"genero"`
	Language        string          `json:"idioma"`
	PageCount       int             `json:"numero_paginas"`
	PublicationYear int             `json:"ano_publicacao"`
	Price           decimal.Decimal `json:"preco"`
	CoverURL        string          `json:"url_capa"`
	Favorited       *bool           `json:"favorited,omitempty"`
	Owned           *bool           `json:"owned,omitempty"`
}

// CartLineView is one line of the cart.
type CartLineView struct {
	ItemID    int64           `json:"id"`
	ProductID int64           `json:"produto_id"`
	Title     string          `json:"titulo"`
	Price     decimal.Decimal `json:"preco"`
	CoverURL  string          `json:"url_capa"`
	Quantity  int             `json:"quantidade"`
}

// OrderView is a committed order.
type OrderView struct {
	ID            int64           `json:"id"`
	Total         decimal.Decimal `json:"total"`
	Status        string          `json:"status"`
	ProductIDs    []int64         `json:"produtos_ids"`
	PaymentMethod string          `json:"metodo_pagamento"`
	CreatedAt     time.Time       `json:"created_at"`
}

// ProfileView is the account as shown on the profile page.
type ProfileView struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	AvatarURL string    `json:"avatar_url"`
}

// SessionView is the identity attached to the request.
type SessionView struct {
	Authenticated bool     `json:"authenticated"`
	UserID        string   `json:"user_id,omitempty"`
	Email         string   `json:"email,omitempty"`
	Roles         []string `json:"roles"`
}

func toProductView(p *entity.Product) ProductView {
	return ProductView{
		ID:              p.ID,
		Title:           p.Title,
		Author:          p.Author,
		Description:     p.Description,
		Genre:           p.Genre,
		Language:        p.Language,
		PageCount:       p.PageCount,
		PublicationYear: p.PublicationYear,
		Price:           p.Price,
		CoverURL:        p.CoverURL,
	}
}

func toProductViews(products []*entity.Product) []ProductView {
	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, toProductView(p))
	}

	return views
}

func toCatalogItemViews(items []*usecase.CatalogItem) []ProductView {
	views := make([]ProductView, 0, len(items))
	for _, item := range items {
		view := toProductView(item.Product)
		favorited, owned := item.Favorited, item.Owned
		view.Favorited = &favorited
		view.Owned = &owned
		views = append(views, view)
	}

	return views
}

func toCartLineViews(lines []entity.CartLine) []CartLineView {
	views := make([]CartLineView, 0, len(lines))
	for _, line := range lines {
		views = append(views, CartLineView{
			ItemID:    line.ItemID,
			ProductID: line.ProductID,
			Title:     line.Title,
			Price:     line.Price,
			CoverURL:  line.CoverURL,
			Quantity:  line.Quantity,
		})
	}

	return views
}

func toOrderView(o *entity.Order) OrderView {
	return OrderView{
		ID:            o.ID,
		Total:         o.Total,
		Status:        string(o.Status),
		ProductIDs:    o.ProductIDs,
		PaymentMethod: string(o.PaymentMethod),
		CreatedAt:     o.CreatedAt,
	}
}

func toProfileView(p *entity.Profile) ProfileView {
	return ProfileView{
		ID:        p.ID,
		Username:  p.UsernameOrEmpty(),
		Email:     p.Email,
		FullName:  p.FullName,
		AvatarURL: p.AvatarURL,
	}
}

func toSessionView(s entity.Session) SessionView {
	view := SessionView{Roles: []string{}}
	if s.IsAnonymous() {
		return view
	}

	view.Authenticated = true
	view.UserID = s.UserID.String()
	view.Email = s.Email
	view.Roles = s.Roles.ToStrings()

	return view
}
